package keygroup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/keygroup/pkg/keygroup/constants"
)

func TestStackRestoresParentGroup(t *testing.T) {
	b := NewBindings(WithoutRepeat())
	stack := NewStack()

	root := NewGroup(b, true, "main")
	rootItems := newChildren("Play", "Settings", "Quit")
	for _, c := range rootItems {
		require.NoError(t, root.AddChild(c))
	}
	stack.Push(root)

	b.Press(constants.VirtualButtonDown)
	assert.Same(t, rootItems[1], root.Selected())

	sub := NewGroup(b, false, "settings")
	subItems := newChildren("Audio", "Video")
	for _, c := range subItems {
		require.NoError(t, sub.AddChild(c))
	}
	stack.Push(sub)

	assert.False(t, rootItems[1].focused)
	assert.True(t, subItems[0].focused)

	// Up now belongs to the submenu's selected entry, not the root menu
	b.Press(constants.VirtualButtonUp)
	assert.Equal(t, 1, subItems[0].ups)
	assert.Same(t, rootItems[1], root.Selected())

	// horizontal submenu: Right moves, Down goes to the selected entry
	b.Press(constants.VirtualButtonRight)
	b.Press(constants.VirtualButtonDown)
	assert.Same(t, subItems[1], sub.Selected())
	assert.Equal(t, 1, subItems[1].downs)
	assert.Same(t, rootItems[1], root.Selected())

	require.Same(t, sub, stack.Pop())
	assert.False(t, subItems[1].focused)
	assert.True(t, rootItems[1].focused)

	b.Press(constants.VirtualButtonDown)
	assert.Same(t, rootItems[2], root.Selected())

	b.Press(constants.VirtualButtonRight)
	assert.Equal(t, 1, rootItems[2].downs)
	assert.Equal(t, 1, subItems[1].downs)
	assert.Equal(t, 1, stack.Len())
}

func TestStackEmpty(t *testing.T) {
	stack := NewStack()

	assert.True(t, stack.IsEmpty())
	assert.Nil(t, stack.Peek())
	assert.Nil(t, stack.Pop())
}

func TestPopLastGroupUnbindsEverything(t *testing.T) {
	b := NewBindings(WithoutRepeat())
	stack := NewStack()

	g := NewGroup(b, true, nil)
	require.NoError(t, g.AddChild(&testChild{}))
	stack.Push(g)

	stack.Pop()

	assert.Zero(t, b.Len())
	assert.True(t, stack.IsEmpty())
}

func TestReleasedGroupLeavesBinderAlone(t *testing.T) {
	b := NewBindings(WithoutRepeat())
	stack := NewStack()

	root := NewGroup(b, true, "main")
	rootItems := newChildren("Play", "Settings")
	for _, c := range rootItems {
		require.NoError(t, root.AddChild(c))
	}
	stack.Push(root)

	sub := NewGroup(b, false, "settings")
	subItems := newChildren("Audio", "Video")
	for _, c := range subItems {
		require.NoError(t, sub.AddChild(c))
	}
	stack.Push(sub)
	require.False(t, root.Active())

	late := &testChild{name: "Credits"}
	require.NoError(t, root.AddChild(late))
	require.NoError(t, root.SelectNext())

	assert.Same(t, rootItems[1], root.Selected())
	assert.False(t, rootItems[1].focused)
	assert.False(t, rootItems[0].focused)

	b.Press(constants.VirtualButtonRight)
	assert.Same(t, subItems[1], sub.Selected())
	assert.Zero(t, rootItems[0].downs)
	assert.Zero(t, rootItems[1].downs)

	b.Press(constants.VirtualButtonDown)
	assert.Equal(t, 1, subItems[1].downs)
	assert.Same(t, rootItems[1], root.Selected())

	stack.Pop()
	assert.True(t, root.Active())
	assert.True(t, rootItems[1].focused)

	b.Press(constants.VirtualButtonRight)
	assert.Equal(t, 1, rootItems[1].downs)
}
