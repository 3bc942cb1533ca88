package keygroup

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigationError(t *testing.T) {
	err := &NavigationError{Op: "select_next", Err: ErrEmptyGroup}

	assert.Equal(t, "keygroup: select_next: group has no children", err.Error())
	assert.True(t, IsEmptyGroup(fmt.Errorf("menu: %w", err)))
	assert.False(t, IsEmptyGroup(ErrNilChild))
}

func TestInputError(t *testing.T) {
	err := NewInputError("open_device", os.ErrNotExist)

	assert.Equal(t, "keygroup: open_device: file does not exist", err.Error())
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.True(t, IsInputError(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsInputError(os.ErrNotExist))

	assert.Equal(t, "keygroup: sdl_init", NewInputError("sdl_init", nil).Error())
}
