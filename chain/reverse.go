package chain

// Reverse reverses c in place and returns it.
//
// Each step detaches the first remaining node and points it at the node
// detached before it, so only three references are live at any time.
// Empty and single-node chains are returned unchanged.
//
// Complexity: O(n) time, O(1) extra memory, no allocation.
func Reverse[T any](c *Chain[T]) *Chain[T] {
	if c == nil || c.head == nil {
		return c
	}

	var prev *Node[T]
	rest := c.head
	for rest != nil {
		n := rest
		rest, n.next = n.next, prev
		prev = n
	}
	c.head = prev

	return c
}
