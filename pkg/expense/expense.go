// Package expense finds expense report entries that sum to a target.
package expense

import "fmt"

// Pair is two entries summing to the target, in the order they were found.
type Pair struct {
	A, B int
}

func (p Pair) Product() int {
	return p.A * p.B
}

func (p Pair) String() string {
	return fmt.Sprintf("%d * %d = %d", p.A, p.B, p.Product())
}

// Triplet is three entries summing to the target.
type Triplet struct {
	A, B, C int
}

func (t Triplet) Product() int {
	return t.A * t.B * t.C
}

func (t Triplet) String() string {
	return fmt.Sprintf("%d * %d * %d = %d", t.A, t.B, t.C, t.Product())
}

// FindPair returns the first pair of entries summing to target. Entries are
// scanned once; the pair is reported as (earlier entry, later entry).
func FindPair(entries []int, target int) (Pair, bool) {
	seen := make(map[int]struct{}, len(entries))
	for _, x := range entries {
		want := target - x
		if _, ok := seen[want]; ok {
			return Pair{A: want, B: x}, true
		}
		seen[x] = struct{}{}
	}
	return Pair{}, false
}

// FindTriplet returns the first triplet of entries summing to target. The
// first element is fixed in input order and the remaining two are searched
// among the entries after it.
func FindTriplet(entries []int, target int) (Triplet, bool) {
	for i, a := range entries {
		if p, ok := FindPair(entries[i+1:], target-a); ok {
			return Triplet{A: a, B: p.A, C: p.B}, true
		}
	}
	return Triplet{}, false
}
