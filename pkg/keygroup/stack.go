package keygroup

// Stack manages nested groups that share one Binder, such as a settings
// menu that opens a submenu. Only the group on top has its buttons bound;
// popping it restores the group below with its selection intact.
type Stack struct {
	entries []*Group
}

// NewStack creates a new empty stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]*Group, 0),
	}
}

// Push releases the current top group and makes g the active group.
// g may already be bound; Activate replaces its bindings.
func (s *Stack) Push(g *Group) {
	if top := s.Peek(); top != nil {
		top.Release()
	}

	g.Activate()
	s.entries = append(s.entries, g)
}

// Pop releases and removes the top group, then reactivates the group below.
// Returns nil if the stack is empty.
func (s *Stack) Pop() *Group {
	if len(s.entries) == 0 {
		return nil
	}

	top := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	top.Release()

	if next := s.Peek(); next != nil {
		next.Activate()
	}

	return top
}

// Peek returns the active group without removing it.
// Returns nil if the stack is empty.
func (s *Stack) Peek() *Group {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1]
}

// IsEmpty returns true if the stack has no groups.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of groups in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}
