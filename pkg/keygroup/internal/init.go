// Package internal contains the shared infrastructure for keygroup:
// structured logging, directional repeat tracking and the listener emitter.
// Types and functions in this package are not part of the public API.
package internal
