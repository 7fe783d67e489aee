// Package lvlist is a small collection of self-contained algorithm
// exercises, centred on in-place relinking of singly-linked chains.
//
// 🚀 What is inside?
//
//	Three independent packages that share no runtime state:
//		• chain  - build, split, reverse, merge and repack a singly-linked chain
//		          in O(n) time and O(1) extra memory
//		• sieve  - smallest-prime-factor table and factorizer up to N
//		• optset - declarative --name[=value] option set with YAML declarations
//
// ✨ Guarantees:
//
//   - Reordering never copies values; every step moves one node reference.
//   - Chain teardown is iterative, so chain length never drives stack depth.
//   - Sentinel errors per package; branch with errors.Is.
//
// Layout:
//
//	chain/      - the repack core (Split, Reverse, Merge, Repack, Validate)
//	sieve/      - Table, Factorize, Report
//	optset/     - Set, Flag, Value[T], Decode
//	cmd/lvlist/ - cobra CLI driving all three
//
// Quick example:
//
//	c := chain.New(1, 2, 3, 4, 5)
//	chain.Repack(c) // [1 5 2 4 3]
//
//	go install github.com/katalvlaran/lvlist/cmd/lvlist@latest
package lvlist
