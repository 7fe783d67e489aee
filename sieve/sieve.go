package sieve

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	// ErrNegativeLimit indicates New was called with a negative limit.
	ErrNegativeLimit = errors.New("sieve: limit must be non-negative")

	// ErrOutOfRange indicates a query for a number outside [2, limit].
	ErrOutOfRange = errors.New("sieve: number out of table range")
)

// Table is a smallest-prime-factor table for 0..limit.
type Table struct {
	limit  int
	spf    []int // spf[n] is the smallest prime dividing n; 0 for n < 2
	primes []int
}

// New sieves 0..limit. A limit below 2 yields a table without primes.
//
// Algorithm:
//  1. For i = 2..limit: if spf[i] is unset, i is prime; record it.
//  2. For a prime i, mark j = i², i²+i, … ≤ limit with spf[j] = i unless
//     a smaller prime already claimed j.
//
// Complexity: O(N log log N) time, O(N) memory.
func New(limit int) (*Table, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeLimit, limit)
	}

	t := &Table{limit: limit, spf: make([]int, limit+1)}
	for i := 2; i <= limit; i++ {
		if t.spf[i] != 0 {
			continue
		}
		t.spf[i] = i
		t.primes = append(t.primes, i)
		if i > limit/i { // i*i would exceed limit (or overflow)
			continue
		}
		for j := i * i; j <= limit; j += i {
			if t.spf[j] == 0 {
				t.spf[j] = i
			}
		}
	}

	return t, nil
}

// Limit returns the largest number covered by the table.
func (t *Table) Limit() int { return t.limit }

// Primes returns all primes ≤ Limit in ascending order. The slice is a copy.
func (t *Table) Primes() []int {
	out := make([]int, len(t.primes))
	copy(out, t.primes)
	return out
}

// IsPrime reports whether n is a prime within the table range.
func (t *Table) IsPrime(n int) bool {
	return n >= 2 && n <= t.limit && t.spf[n] == n
}

// SmallestFactor returns the smallest prime dividing n.
func (t *Table) SmallestFactor(n int) (int, error) {
	if err := t.check(n); err != nil {
		return 0, err
	}
	return t.spf[n], nil
}

// Factorize returns the prime factors of n in ascending order, with
// multiplicity. A prime n factorizes to itself.
//
// Complexity: O(log n).
func (t *Table) Factorize(n int) ([]int, error) {
	if err := t.check(n); err != nil {
		return nil, err
	}
	var factors []int
	for n > 1 {
		p := t.spf[n]
		factors = append(factors, p)
		n /= p
	}
	return factors, nil
}

// Report writes every prime and the factorization of each n in 2..Limit
// to w:
//
//	Primes:
//	 2 3 5 7
//
//	Factors:
//	2 = 2
//	4 = 2 * 2
func (t *Table) Report(w io.Writer) error {
	var sb strings.Builder
	sb.WriteString("Primes:\n")
	for _, p := range t.primes {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(p))
	}
	sb.WriteString("\n\nFactors:\n")
	for n := 2; n <= t.limit; n++ {
		factors, _ := t.Factorize(n) // n is always in range here
		sb.WriteString(Format(n, factors))
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())

	return err
}

// Format renders a factorization as "n = p1 * p2 * …".
func Format(n int, factors []int) string {
	parts := make([]string, len(factors))
	for i, p := range factors {
		parts[i] = strconv.Itoa(p)
	}
	return strconv.Itoa(n) + " = " + strings.Join(parts, " * ")
}

// check validates that n can be looked up.
func (t *Table) check(n int) error {
	if n < 2 || n > t.limit {
		return fmt.Errorf("%w: %d not in [2, %d]", ErrOutOfRange, n, t.limit)
	}
	return nil
}
