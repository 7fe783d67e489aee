// Package chain implements a singly-linked, single-owner chain of values and
// the in-place "repack" reordering over it.
//
// 🚀 What is repack?
//
//	Given x0, x1, …, x(n-1), Repack relinks the existing nodes into
//
//	  x0, x(n-1), x1, x(n-2), x2, x(n-3), …
//
//	without copying a single value and without any auxiliary storage that
//	grows with n. It runs in three passes over the nodes:
//
//	  Split   - cut after ceil(n/2) nodes; the tail is moved out.
//	  Reverse - turn the tail around, one relink per node.
//	  Merge   - splice head and reversed tail alternately.
//
// ✨ Ownership model:
//
//   - Every node is referenced by exactly one slot: the chain's head slot or
//     the next slot of its predecessor.
//   - Each relink is a move: the source slot is cleared or overwritten in the
//     same step, so no node ever becomes reachable from two chains.
//   - Split halves, merged chains and concatenations keep the count cached in
//     each Chain consistent with the reachable nodes.
//   - Release tears the chain down head-first in a loop, never by recursion.
//
// ⚙️ Usage:
//
//	c := chain.New(1, 2, 3, 4, 5)
//	chain.Repack(c)
//	fmt.Println(c) // [1 5 2 4 3]
//
// Complexity:
//
//   - New, Split, Reverse, Merge, Repack, Concat: O(n) time, O(1) extra memory.
//   - All: O(n) per full traversal, O(1) memory; the chain is not mutated.
//   - Validate: O(n) time, O(1) memory (Floyd cycle detection).
//
// Chains are not safe for concurrent use; a chain has one owner at a time.
package chain
