package router

// StackEntry is one entry in the navigation stack: the screen, the input it was
// called with, and the resume state it returned (scroll position and the like).
type StackEntry struct {
	Screen Screen
	Input  any
	Resume any
}

// Stack is the navigation history used for back navigation.
type Stack struct {
	entries []StackEntry
}

// NewStack creates an empty stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]StackEntry, 0),
	}
}

// Push adds an entry when navigating forward.
func (s *Stack) Push(screen Screen, input any, resume any) {
	s.entries = append(s.entries, StackEntry{
		Screen: screen,
		Input:  input,
		Resume: resume,
	})
}

// Pop removes and returns the top entry, or nil if the stack is empty.
func (s *Stack) Pop() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// PopIf pops the top entry only when match accepts it.
func (s *Stack) PopIf(match func(StackEntry) bool) *StackEntry {
	top := s.Peek()
	if top == nil || !match(*top) {
		return nil
	}
	return s.Pop()
}

// Peek returns the top entry without removing it, or nil if the stack is empty.
func (s *Stack) Peek() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

// IsEmpty reports whether the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear removes all entries.
func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}
