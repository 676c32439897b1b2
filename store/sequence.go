package store

import "sync"

// Sequence hands out monotonically increasing order numbers. Numbers are never
// reused, even when the order they were minted for fails validation.
type Sequence struct {
	mu   sync.Mutex
	next int
}

func NewSequence(start int) *Sequence {
	if start < 1 {
		start = 1
	}
	return &Sequence{next: start}
}

func (s *Sequence) Next() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.next
	s.next++
	return n
}
