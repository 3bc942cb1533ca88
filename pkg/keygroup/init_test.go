package keygroup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keygroup.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level = "debug"
language = "de"
vertical = false
mapping_file = "/etc/keygroup/mapping.toml"
repeat_delay = "250ms"
`), 0644))

	options, err := LoadOptions(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", options.LogLevel)
	assert.Equal(t, "de", options.Language)
	assert.False(t, options.Vertical)
	assert.Equal(t, "/etc/keygroup/mapping.toml", options.MappingFile)
	assert.Equal(t, 250*time.Millisecond, options.RepeatDelay)
	assert.Equal(t, DefaultOptions().RepeatInterval, options.RepeatInterval)
}

func TestLoadOptionsMissingFile(t *testing.T) {
	_, err := LoadOptions(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestInitEnvironmentOverrides(t *testing.T) {
	t.Setenv("KEYGROUP_LOG_LEVEL", "warn")
	t.Setenv("INPUT_MAPPING", "/tmp/mapping.toml")

	options := Init(DefaultOptions())

	assert.Equal(t, "warn", options.LogLevel)
	assert.Equal(t, "/tmp/mapping.toml", options.MappingFile)
}

func TestNewBindingsFromOptions(t *testing.T) {
	b := NewBindingsFromOptions(Options{})
	assert.False(t, b.repeat)

	b = NewBindingsFromOptions(DefaultOptions())
	assert.True(t, b.repeat)
}
