package keygroup

import (
	"github.com/BrandonKowalski/keygroup/pkg/keygroup/constants"
	"github.com/BrandonKowalski/keygroup/pkg/keygroup/internal"
)

// Child is anything a Group can select. Once selected, the child receives
// the pair of directional buttons the group does not use for its own
// navigation: Left/Right for a vertical group, Up/Down for a horizontal one.
type Child interface {
	MoveUp()
	MoveDown()
}

// Focusable is implemented by children that want to know when they gain or
// lose the selection.
type Focusable interface {
	SetFocused(focused bool)
}

// Binder is the host input source a Group installs its handlers on.
// Bind must replace any handler already bound to the button.
type Binder interface {
	Bind(button constants.VirtualButton, handler func())
	Unbind(button constants.VirtualButton)
}

// Event names a group notification.
type Event string

const (
	EventPrevious Event = "previous" // Selection moved to the previous child
	EventNext     Event = "next"     // Selection moved to the next child
)

// Listener receives group notifications along with the callback context
// given to NewGroup.
type Listener func(g *Group, callbackContext any)

// ListenerID identifies a listener registered with On.
type ListenerID = internal.ListenerID

// GroupOption configures a Group.
type GroupOption func(*Group)

// WithKeepSelection makes AddChild keep the current selection once the
// group has children. By default every AddChild resets the selection to
// the first child.
func WithKeepSelection() GroupOption {
	return func(g *Group) {
		g.keepSelection = true
	}
}

type notification struct {
	group           *Group
	callbackContext any
}

// Group is a wrap-around selection cursor over an ordered list of children.
//
// The group owns two pairs of button bindings on its Binder. The group pair
// is bound once at construction and always moves the cursor. The child pair
// is rebound to the selected child every time the selection changes.
//
// A Group is not safe for concurrent use; call it from the goroutine that
// dispatches input.
type Group struct {
	binder          Binder
	vertical        bool
	callbackContext any
	keepSelection   bool
	active          bool // buttons are bound; cleared by Release

	children []Child
	selected Child
	idx      int

	emitter *internal.Emitter[Event, notification]
}

// NewGroup creates a group bound to binder and activates its navigation
// buttons immediately. Vertical groups navigate with Up/Down and hand
// Left/Right to the selected child; horizontal groups do the opposite.
func NewGroup(binder Binder, vertical bool, callbackContext any, opts ...GroupOption) *Group {
	g := &Group{
		binder:          binder,
		vertical:        vertical,
		callbackContext: callbackContext,
		emitter:         internal.NewEmitter[Event, notification](),
	}

	for _, opt := range opts {
		opt(g)
	}

	g.activateGroupControls()
	g.active = true

	return g
}

// AddChild appends child to the end of the group. Duplicates are kept as
// separate slots.
func (g *Group) AddChild(child Child) error {
	if child == nil {
		return ErrNilChild
	}

	g.children = append(g.children, child)

	if g.keepSelection && len(g.children) > 1 {
		internal.GetInternalLogger().Debug("Child added", "count", len(g.children), "index", g.idx)
		return nil
	}

	g.selectIndex(0)

	internal.GetInternalLogger().Debug("Child added, selection reset", "count", len(g.children))

	return nil
}

// SelectPrevious moves the selection one child back, wrapping from the first
// child to the last, and emits EventPrevious.
func (g *Group) SelectPrevious() error {
	if len(g.children) == 0 {
		return &NavigationError{Op: "select_previous", Err: ErrEmptyGroup}
	}

	g.selectIndex(modulo(g.idx-1, len(g.children)))
	g.emitter.Emit(EventPrevious, notification{group: g, callbackContext: g.callbackContext})

	return nil
}

// SelectNext moves the selection one child forward, wrapping from the last
// child to the first, and emits EventNext.
func (g *Group) SelectNext() error {
	if len(g.children) == 0 {
		return &NavigationError{Op: "select_next", Err: ErrEmptyGroup}
	}

	g.selectIndex(modulo(g.idx+1, len(g.children)))
	g.emitter.Emit(EventNext, notification{group: g, callbackContext: g.callbackContext})

	return nil
}

// On registers l for event. Listeners run in registration order.
func (g *Group) On(event Event, l Listener) ListenerID {
	return g.emitter.On(event, func(n notification) {
		l(n.group, n.callbackContext)
	})
}

// Off removes a listener registered with On.
func (g *Group) Off(event Event, id ListenerID) bool {
	return g.emitter.Off(event, id)
}

// Activate binds the group's buttons again after Release and hands the
// child buttons back to the selected child.
func (g *Group) Activate() {
	prev, next := g.GroupButtons()
	g.binder.Unbind(prev)
	g.binder.Unbind(next)
	g.activateGroupControls()
	g.active = true

	if g.selected == nil {
		return
	}

	if f, ok := g.selected.(Focusable); ok {
		f.SetFocused(true)
	}
	g.rebindChildControls()
}

// Release unbinds every button the group installed and unfocuses the
// selected child. Activate undoes it.
func (g *Group) Release() {
	g.active = false

	prev, next := g.GroupButtons()
	up, down := g.ChildButtons()

	for _, b := range []constants.VirtualButton{prev, next, up, down} {
		g.binder.Unbind(b)
	}

	if f, ok := g.selected.(Focusable); ok {
		f.SetFocused(false)
	}
}

// Active reports whether the group's buttons are bound.
func (g *Group) Active() bool {
	return g.active
}

// Selected returns the selected child, or nil if the group is empty.
func (g *Group) Selected() Child {
	return g.selected
}

// Index returns the index of the selected child.
func (g *Group) Index() int {
	return g.idx
}

// Len returns the number of children.
func (g *Group) Len() int {
	return len(g.children)
}

// Children returns a copy of the children in navigation order.
func (g *Group) Children() []Child {
	out := make([]Child, len(g.children))
	copy(out, g.children)
	return out
}

// Vertical reports whether the group navigates with Up/Down.
func (g *Group) Vertical() bool {
	return g.vertical
}

// CallbackContext returns the value passed to NewGroup and handed to listeners.
func (g *Group) CallbackContext() any {
	return g.callbackContext
}

// GroupButtons returns the buttons bound to SelectPrevious and SelectNext.
func (g *Group) GroupButtons() (previous, next constants.VirtualButton) {
	if g.vertical {
		return constants.VirtualButtonUp, constants.VirtualButtonDown
	}
	return constants.VirtualButtonLeft, constants.VirtualButtonRight
}

// ChildButtons returns the buttons bound to the selected child's MoveUp and MoveDown.
func (g *Group) ChildButtons() (up, down constants.VirtualButton) {
	if g.vertical {
		return constants.VirtualButtonLeft, constants.VirtualButtonRight
	}
	return constants.VirtualButtonUp, constants.VirtualButtonDown
}

func (g *Group) selectIndex(idx int) {
	previous := g.selected

	g.idx = idx
	g.selected = g.children[idx]

	// a released group tracks its selection but leaves focus and the
	// binder alone until Activate
	if !g.active {
		return
	}

	if f, ok := previous.(Focusable); ok {
		f.SetFocused(false)
	}
	if f, ok := g.selected.(Focusable); ok {
		f.SetFocused(true)
	}

	g.rebindChildControls()
}

func (g *Group) activateGroupControls() {
	prev, next := g.GroupButtons()

	// the handlers ignore ErrEmptyGroup: a key press on an empty group is a no-op
	g.binder.Bind(prev, func() {
		if err := g.SelectPrevious(); err != nil {
			internal.GetInternalLogger().Debug("Ignoring navigation", "button", prev, "error", err)
		}
	})
	g.binder.Bind(next, func() {
		if err := g.SelectNext(); err != nil {
			internal.GetInternalLogger().Debug("Ignoring navigation", "button", next, "error", err)
		}
	})
}

// rebindChildControls points the child pair at the selected child.
// The old pair is always unbound first so no stale handler survives.
func (g *Group) rebindChildControls() {
	up, down := g.ChildButtons()

	g.binder.Unbind(up)
	g.binder.Unbind(down)

	if g.selected == nil {
		return
	}

	child := g.selected
	g.binder.Bind(up, child.MoveUp)
	g.binder.Bind(down, child.MoveDown)

	internal.GetInternalLogger().Debug("Child controls rebound", "index", g.idx, "up", up, "down", down)
}

func modulo(n, m int) int {
	return ((n % m) + m) % m
}
