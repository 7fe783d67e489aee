package chain

// Merge splices the nodes of head and tail alternately, starting with head,
// and returns head holding the result. tail is left empty.
//
// While tail still has nodes, one node is taken from each side in turn. Once
// tail runs out, the remaining head nodes follow in their original order.
// When called directly with a tail longer than head, the tail remainder is
// appended the same way. Merging a chain with itself is a no-op.
//
// No value is copied and no node is allocated; every step moves one node
// reference from a side into the result's tail slot.
//
// Complexity: O(len(head)+len(tail)) time, O(1) extra memory.
func Merge[T any](head, tail *Chain[T]) *Chain[T] {
	if head == nil {
		head = &Chain[T]{}
	}
	if tail == nil || tail == head {
		return head
	}

	left, right := head.head, tail.head
	head.head, tail.head = nil, nil
	slot := &head.head
	for left != nil && right != nil {
		*slot, left = left, left.next
		slot = &(*slot).next

		*slot, right = right, right.next
		slot = &(*slot).next
	}
	if left != nil {
		*slot = left
	} else {
		*slot = right
	}

	head.size += tail.size
	tail.size = 0

	return head
}

// Repack reorders c in place into x0, x(n-1), x1, x(n-2), … and returns it.
//
// Implementation:
//   - Stage 1: Split c into head (ceil(n/2)) and tail (floor(n/2)).
//   - Stage 2: Reverse the tail.
//   - Stage 3: Merge head with the reversed tail.
//
// Repack is not idempotent: applying it twice to five or more values yields
// a third ordering, not the original one. Empty and single-node chains are
// returned unchanged.
//
// Complexity: O(n) time, O(1) extra memory.
func Repack[T any](c *Chain[T]) *Chain[T] {
	if c == nil || c.size == 0 {
		return c
	}

	head, tail := Split(c)
	return Merge(head, Reverse(tail))
}
