package ast

import (
	"fmt"

	"fortio.org/safecast"
)

// Arena is append-only typed storage with 1-based indices, so the zero
// index stays free for the "no node" sentinel.
type Arena[T any] struct {
	data []T
}

func NewArena[T any](capHint uint) *Arena[T] {
	return &Arena[T]{
		data: make([]T, 0, capHint),
	}
}

// Allocate stores value and returns its 1-based index.
func (a *Arena[T]) Allocate(value T) uint32 {
	a.data = append(a.data, value)
	idx, err := safecast.Conv[uint32](len(a.data))
	if err != nil {
		panic(fmt.Errorf("arena size overflow: %w", err))
	}
	return idx
}

// Get returns a pointer into the arena, or nil for index 0.
func (a *Arena[T]) Get(index uint32) *T {
	if index == 0 {
		return nil
	}
	return &a.data[index-1]
}

func (a *Arena[T]) Len() int {
	return len(a.data)
}
