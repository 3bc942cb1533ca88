package keygroup

import "fmt"

// MenuItem holds the display state of a single entry in a group.
type MenuItem struct {
	Text     string      // Display text for the item
	Focused  bool        // Whether this item has the selection (managed by Group)
	Metadata interface{} // Application-specific data attached to the item
}

// Option represents a single choice for an OptionItem.
// DisplayName is the text shown to the user, Value is what Value() returns
// while the option is chosen, and OnUpdate, if set, is called with Value
// whenever the option becomes the chosen one.
type Option struct {
	DisplayName string
	Value       interface{}
	OnUpdate    func(newValue interface{})
}

// OptionItem is a Child that cycles through its options when it is the
// selected child of a group: MoveUp picks the previous option and MoveDown
// the next, both wrapping around.
type OptionItem struct {
	Item           MenuItem
	Options        []Option
	SelectedOption int
}

var (
	_ Child     = (*OptionItem)(nil)
	_ Focusable = (*OptionItem)(nil)
)

// NewOptionItem creates an OptionItem with the first option chosen.
func NewOptionItem(text string, options ...Option) *OptionItem {
	return &OptionItem{
		Item:    MenuItem{Text: text},
		Options: options,
	}
}

func (oi *OptionItem) MoveUp() {
	oi.cycle(-1)
}

func (oi *OptionItem) MoveDown() {
	oi.cycle(1)
}

func (oi *OptionItem) SetFocused(focused bool) {
	oi.Item.Focused = focused
}

// Value returns the chosen option's value formatted as a string, or "" when
// there is none.
func (oi *OptionItem) Value() interface{} {
	current, ok := oi.Current()
	if !ok || current.Value == nil {
		return ""
	}

	return fmt.Sprintf("%v", current.Value)
}

// Current returns the chosen option. ok is false when there are no options
// or SelectedOption is out of range.
func (oi *OptionItem) Current() (option Option, ok bool) {
	if oi.SelectedOption < 0 || oi.SelectedOption >= len(oi.Options) {
		return Option{}, false
	}
	return oi.Options[oi.SelectedOption], true
}

func (oi *OptionItem) cycle(step int) {
	if len(oi.Options) == 0 {
		return
	}

	oi.SelectedOption = modulo(oi.SelectedOption+step, len(oi.Options))

	current := oi.Options[oi.SelectedOption]
	if current.OnUpdate != nil {
		current.OnUpdate(current.Value)
	}
}
