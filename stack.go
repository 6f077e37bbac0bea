package notation

type stack[T any] struct {
	items []T
}

func (s *stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

func (s *stack[T]) Pop() (v T, ok bool) {
	if len(s.items) == 0 {
		return v, false
	}
	v = s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return v, true
}

func (s *stack[T]) Peek() (v T, ok bool) {
	if len(s.items) == 0 {
		return v, false
	}
	return s.items[len(s.items)-1], true
}

func (s *stack[T]) Len() int {
	return len(s.items)
}
