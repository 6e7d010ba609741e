package ecs

// List is a contiguous sequence with a fixed capacity. Its backing array is
// allocated once by NewList and never grows.
type List[T any] struct {
	data []T
	size int
}

// NewList creates an empty list able to hold capacity elements.
func NewList[T any](capacity int) List[T] {
	if capacity <= 0 {
		Violate("NewList", "capacity must be positive, got %d", capacity)
	}
	return List[T]{data: make([]T, capacity)}
}

// Push appends v. Pushing onto a full list is a contract violation.
func (l *List[T]) Push(v T) {
	if l.size == len(l.data) {
		Violate("List.Push", "list is at capacity %d", len(l.data))
	}
	l.data[l.size] = v
	l.size++
}

// SwapRemove removes the element at i by moving the last element into its
// place. Order is not preserved.
func (l *List[T]) SwapRemove(i int) {
	l.check("List.SwapRemove", i)
	last := l.size - 1
	l.data[i] = l.data[last]

	var zero T
	l.data[last] = zero
	l.size = last
}

// Remove removes the element at i and shifts the tail down, preserving order.
func (l *List[T]) Remove(i int) {
	l.check("List.Remove", i)
	copy(l.data[i:], l.data[i+1:l.size])

	var zero T
	l.data[l.size-1] = zero
	l.size--
}

// At returns a copy of the element at i.
func (l *List[T]) At(i int) T {
	l.check("List.At", i)
	return l.data[i]
}

// Ref returns a pointer to the element at i. The pointer is invalidated by
// the next SwapRemove, Remove or Clear.
func (l *List[T]) Ref(i int) *T {
	l.check("List.Ref", i)
	return &l.data[i]
}

// Set overwrites the element at i.
func (l *List[T]) Set(i int, v T) {
	l.check("List.Set", i)
	l.data[i] = v
}

// Clear drops every element without releasing the backing array.
func (l *List[T]) Clear() {
	clear(l.data[:l.size])
	l.size = 0
}

// Slice returns the live elements. Callers must treat it as read-only and
// must not retain it across mutations.
func (l *List[T]) Slice() []T {
	return l.data[:l.size:l.size]
}

func (l *List[T]) Len() int    { return l.size }
func (l *List[T]) Cap() int    { return len(l.data) }
func (l *List[T]) Full() bool  { return l.size == len(l.data) }
func (l *List[T]) Empty() bool { return l.size == 0 }

func (l *List[T]) check(op string, i int) {
	if i < 0 || i >= l.size {
		Violate(op, "index %d out of range [0, %d)", i, l.size)
	}
}
