package chain

// Split divides c into a head of ceil(n/2) nodes and a tail of floor(n/2)
// nodes, preserving the relative order within each half.
//
// The head is c itself, truncated in place; the tail is a new Chain that
// takes over ownership of every node past the cut. For n == 0 and n == 1
// the tail is empty and c is unchanged. A nil c is treated as empty.
//
// Algorithm:
//  1. Walk ceil(n/2)-1 hops from the first node to the cut node.
//  2. Move cut.next into the tail's head slot; cut.next becomes nil.
//  3. Rebalance the cached counts.
//
// Complexity: O(n/2) time, O(1) extra memory.
func Split[T any](c *Chain[T]) (head, tail *Chain[T]) {
	if c == nil {
		c = &Chain[T]{}
	}
	tail = &Chain[T]{}
	if c.size < 2 {
		return c, tail
	}

	headLen := c.size/2 + c.size%2
	cut := c.head
	for i := 1; i < headLen; i++ {
		cut = cut.next
	}

	tail.head, cut.next = cut.next, nil
	tail.size = c.size - headLen
	c.size = headLen

	return c, tail
}

// Concat moves every node of tail to the end of head and returns head.
// tail is left empty. Concatenating a chain with itself is a no-op.
//
// Complexity: O(len(head)) time to find the last node, O(1) extra memory.
func Concat[T any](head, tail *Chain[T]) *Chain[T] {
	if head == nil {
		head = &Chain[T]{}
	}
	if tail == nil || tail == head || tail.head == nil {
		return head
	}

	slot := &head.head
	for *slot != nil {
		slot = &(*slot).next
	}
	*slot, tail.head = tail.head, nil
	head.size += tail.size
	tail.size = 0

	return head
}
