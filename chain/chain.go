// SPDX-License-Identifier: MIT
//
// File: chain.go
// Role: Construction, read-only traversal and teardown of a Chain.
// Policy:
//   - Construction appends through a pointer to the current tail slot; no
//     second pass and no temporary slice.
//   - Traversal never mutates the chain.

package chain

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// New builds a chain holding values in the given order.
// Calling New with no values yields an empty chain.
//
// Complexity: O(n) time, one allocation per node.
func New[T any](values ...T) *Chain[T] {
	return FromSlice(values)
}

// FromSlice builds a chain holding a copy of every element of values,
// preserving order. The slice itself is not retained.
//
// Complexity: O(n) time, one allocation per node.
func FromSlice[T any](values []T) *Chain[T] {
	c := &Chain[T]{}
	slot := &c.head
	for _, v := range values {
		*slot = &Node[T]{Value: v}
		slot = &(*slot).next
	}
	c.size = len(values)

	return c
}

// FromSeq builds a chain from a finite sequence, preserving order.
//
// Complexity: O(n) time, one allocation per node.
func FromSeq[T any](seq iter.Seq[T]) *Chain[T] {
	c := &Chain[T]{}
	slot := &c.head
	for v := range seq {
		*slot = &Node[T]{Value: v}
		slot = &(*slot).next
		c.size++
	}

	return c
}

// Len returns the number of values in the chain. A nil chain is empty.
//
// Complexity: O(1).
func (c *Chain[T]) Len() int {
	if c == nil {
		return 0
	}
	return c.size
}

// Front returns the first node, or nil for an empty chain.
// The node remains owned by the chain.
func (c *Chain[T]) Front() *Node[T] {
	if c == nil {
		return nil
	}
	return c.head
}

// All returns a sequence over the chain values in current order.
// The sequence is lazy and may be ranged over any number of times; each
// traversal observes the chain as it is when that traversal starts.
//
// Complexity: O(n) per traversal, O(1) memory.
func (c *Chain[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if c == nil {
			return
		}
		for n := c.head; n != nil; n = n.next {
			if !yield(n.Value) {
				return
			}
		}
	}
}

// Values copies the chain values into a new slice, in current order.
//
// Complexity: O(n) time and memory.
func (c *Chain[T]) Values() []T {
	out := make([]T, 0, c.Len())
	for v := range c.All() {
		out = append(out, v)
	}
	return out
}

// String renders the chain as "[v0 v1 …]".
func (c *Chain[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	for v := range c.All() {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')

	return sb.String()
}

// Print writes the values to w on one line, each preceded by a space and the
// line terminated by a newline: " 1 2 3\n". An empty chain prints "\n".
func (c *Chain[T]) Print(w io.Writer) error {
	var sb strings.Builder
	for v := range c.All() {
		sb.WriteByte(' ')
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte('\n')
	_, err := io.WriteString(w, sb.String())

	return err
}

// Release detaches every node head-first and clears the values they hold,
// leaving c empty. Nodes handed out earlier through Front/Next no longer
// reach the rest of the chain afterwards.
//
// The loop keeps stack usage constant regardless of chain length.
//
// Complexity: O(n) time, O(1) memory.
func (c *Chain[T]) Release() {
	if c == nil {
		return
	}
	var zero T
	n := c.head
	c.head, c.size = nil, 0
	for n != nil {
		next := n.next
		n.next = nil
		n.Value = zero
		n = next
	}
}
