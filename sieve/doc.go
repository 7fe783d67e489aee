// Package sieve builds a smallest-prime-factor table with the sieve of
// Eratosthenes and factorizes every integer up to a fixed limit.
//
// What:
//
//   - Table holds, for each n in [0, limit], its smallest prime factor.
//   - Primes lists all primes ≤ limit in ascending order.
//   - Factorize walks the table: n → spf(n) → n/spf(n) → … until 1.
//
// Complexity:
//
//   - New:       O(N log log N) time, O(N) memory.
//   - Factorize: O(log n) per query.
//
// Errors:
//
//   - ErrNegativeLimit: New called with limit < 0.
//   - ErrOutOfRange:    query outside [2, limit].
//
// A Table is immutable once built and safe for concurrent readers.
package sieve
