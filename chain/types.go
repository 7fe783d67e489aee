// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node and Chain declarations plus the sentinel errors of package chain.
// Invariants:
//   - size equals the number of nodes reachable from head.
//   - The node graph is acyclic and no node is shared between chains.

package chain

import "errors"

// Sentinel errors reported by Validate. The reordering operations themselves
// never fail on well-formed chains.
var (
	// ErrCycle indicates that following next references never reaches the end.
	ErrCycle = errors.New("chain: cycle detected")

	// ErrLenMismatch indicates that the cached count disagrees with the nodes.
	ErrLenMismatch = errors.New("chain: cached length does not match node count")
)

// Node is a single chain element. It holds one value and the only reference
// to the remainder of the chain.
type Node[T any] struct {
	// Value is the payload carried by this node.
	Value T

	next *Node[T] // sole owner of the downstream nodes
}

// Next returns the node that follows n, or nil if n is the last node.
// The returned node is still owned by n.
func (n *Node[T]) Next() *Node[T] {
	if n == nil {
		return nil
	}
	return n.next
}

// Chain is an ordered, singly-linked, acyclic sequence of owned nodes.
//
// The zero value is an empty chain ready to use.
type Chain[T any] struct {
	head *Node[T] // first node, nil when empty
	size int      // cached node count
}
