package chain

import "fmt"

// Validate checks the structural invariants of c: the nodes form a finite,
// acyclic list and the cached count matches the number of nodes.
// A nil chain is valid.
//
// Cycle detection uses two cursors advancing at different speeds, so the
// check needs no storage proportional to the chain length.
//
// Errors:
//   - ErrCycle       - following next references loops forever.
//   - ErrLenMismatch - the cached length differs from the node count.
//
// Complexity: O(n) time, O(1) memory.
func Validate[T any](c *Chain[T]) error {
	if c == nil {
		return nil
	}

	count := 0
	slow, fast := c.head, c.head
	for fast != nil {
		count++
		fast = fast.next
		if fast == nil {
			break
		}
		count++
		fast = fast.next
		slow = slow.next
		if fast == slow && fast != nil {
			return ErrCycle
		}
	}
	if count != c.size {
		return fmt.Errorf("%w: cached %d, counted %d", ErrLenMismatch, c.size, count)
	}

	return nil
}

// Overlaps reports whether two acyclic chains share at least one node.
// Two such chains can only share a common suffix, so they overlap exactly
// when their last nodes coincide. Empty chains never overlap.
//
// Complexity: O(len(a)+len(b)) time, O(1) memory.
func Overlaps[T any](a, b *Chain[T]) bool {
	la, lb := last(a), last(b)
	return la != nil && la == lb
}

// last returns the final node of c, or nil when c is empty.
func last[T any](c *Chain[T]) *Node[T] {
	if c == nil || c.head == nil {
		return nil
	}
	n := c.head
	for n.next != nil {
		n = n.next
	}
	return n
}
