package buffer

import "fmt"

// Buffer is a fixed-capacity vector view over externally owned memory.
//
// The capacity is set at construction and never changes. Writes always land
// at index Len which then advances; slots at or beyond Len are logically
// uninitialized and unreachable through the accessors.
type Buffer[T any] struct {
	mem []T
	len int
}

// New creates a Buffer using the memory in mem up to capacity as storage.
//
// The length is initially zero. This is the one construction site where the
// caller-region trust is extended, so it validates that mem actually covers
// capacity elements and panics otherwise.
func New[T any](mem []T, capacity int) *Buffer[T] {
	if capacity < 0 || capacity > len(mem) {
		panic(fmt.Sprintf("buffer: capacity %d outside caller region of %d elements", capacity, len(mem)))
	}
	return &Buffer[T]{mem: mem[:capacity]}
}

// Len returns the number of elements written so far.
func (b *Buffer[T]) Len() int {
	return b.len
}

// Cap returns the fixed capacity of the underlying region.
func (b *Buffer[T]) Cap() int {
	return len(b.mem)
}

// IsEmpty reports whether Len is zero.
func (b *Buffer[T]) IsEmpty() bool {
	return b.len == 0
}

// IsFull reports whether Len has reached Cap.
func (b *Buffer[T]) IsFull() bool {
	return b.len >= len(b.mem)
}

// Push appends value at index Len.
//
// Pushing into a full buffer exceeds the declared capacity and panics.
func (b *Buffer[T]) Push(value T) {
	if b.IsFull() {
		panic(fmt.Sprintf("buffer: push into full buffer of capacity %d", len(b.mem)))
	}
	b.mem[b.len] = value
	b.len++
}

// Resize sets the length to n.
//
// Shrinking tears down the discarded trailing slots; growing appends copies
// of fill. Resizing beyond the capacity panics.
func (b *Buffer[T]) Resize(n int, fill T) {
	if n < 0 || n > len(b.mem) {
		panic(fmt.Sprintf("buffer: resize to %d outside capacity %d", n, len(b.mem)))
	}
	if n <= b.len {
		var zero T
		for i := n; i < b.len; i++ {
			b.mem[i] = zero
		}
		b.len = n
		return
	}
	for b.len < n {
		b.Push(fill)
	}
}

// Extend appends all elements of values.
//
// Panics if values do not fit into the remaining free slots.
func (b *Buffer[T]) Extend(values []T) {
	if len(values) > len(b.mem)-b.len {
		panic(fmt.Sprintf("buffer: extend by %d exceeds %d free slots", len(values), len(b.mem)-b.len))
	}
	b.len += copy(b.mem[b.len:], values)
}

// At returns the element at index i. Panics outside [0, Len).
func (b *Buffer[T]) At(i int) T {
	b.check(i)
	return b.mem[i]
}

// Set overwrites the element at index i. Panics outside [0, Len).
func (b *Buffer[T]) Set(i int, value T) {
	b.check(i)
	b.mem[i] = value
}

// Values returns the written prefix of the underlying region.
//
// The slice aliases caller memory and is only valid while the region is.
func (b *Buffer[T]) Values() []T {
	return b.mem[:b.len]
}

func (b *Buffer[T]) check(i int) {
	if i < 0 || i >= b.len {
		panic(fmt.Sprintf("buffer: index %d outside length %d", i, b.len))
	}
}
