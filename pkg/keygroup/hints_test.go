package keygroup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/keygroup/pkg/keygroup/constants"
)

func TestHintsEmptyGroup(t *testing.T) {
	g := NewGroup(newRecordingBinder(), true, nil)

	hints, err := Hints(g, nil)
	require.NoError(t, err)
	require.Len(t, hints, 1)

	assert.Equal(t, "Up/Down", hints[0].ButtonText)
	assert.Equal(t, "Select", hints[0].Label)
	assert.Equal(t, []constants.VirtualButton{constants.VirtualButtonUp, constants.VirtualButtonDown}, hints[0].Buttons)
}

func TestHintsHorizontalWithChild(t *testing.T) {
	g, _, _ := newFilledGroup(t, false, "A")

	hints, err := Hints(g, nil)
	require.NoError(t, err)
	require.Len(t, hints, 2)

	assert.Equal(t, "Left/Right", hints[0].ButtonText)
	assert.Equal(t, "Up/Down", hints[1].ButtonText)
	assert.Equal(t, "Change", hints[1].Label)
}

func TestHintsLocalized(t *testing.T) {
	g, _, _ := newFilledGroup(t, true, "A")

	loc, err := NewLocalizer("de-DE", "en")
	require.NoError(t, err)

	hints, err := Hints(g, loc)
	require.NoError(t, err)
	require.Len(t, hints, 2)

	assert.Equal(t, "Hoch/Runter", hints[0].ButtonText)
	assert.Equal(t, "Auswählen", hints[0].Label)
	assert.Equal(t, "Links/Rechts", hints[1].ButtonText)
	assert.Equal(t, "Ändern", hints[1].Label)
}

func TestHintsFallBackToEnglish(t *testing.T) {
	g := NewGroup(newRecordingBinder(), true, nil)

	loc, err := NewLocalizer("fr")
	require.NoError(t, err)

	hints, err := Hints(g, loc)
	require.NoError(t, err)
	assert.Equal(t, "Select", hints[0].Label)
}
