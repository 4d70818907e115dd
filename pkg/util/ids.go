package util

import "fmt"

// IDSequence hands out prefixed, zero padded identifiers such as PLY_00042.
// Identifiers never repeat within one sequence.
type IDSequence struct {
	prefix string
	width  int
	next   int
}

// NewIDSequence starts a sequence at start with five digits of padding
func NewIDSequence(prefix string, start int) *IDSequence {
	return &IDSequence{prefix: prefix, width: 5, next: start}
}

// Next returns the next identifier
func (s *IDSequence) Next() string {
	id := fmt.Sprintf("%s_%0*d", s.prefix, s.width, s.next)
	s.next++
	return id
}

// Peek returns the number the next identifier will carry
func (s *IDSequence) Peek() int {
	return s.next
}
