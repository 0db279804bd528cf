package bellmanford

import (
	"math/big"
	"math/bits"
)

// wide is a 128-bit two's-complement integer. Distances are accumulated in it
// so that intermediate sums below math.MinInt64 or above math.MaxInt64 still
// compare correctly; only the final answer must fit in int64.
//
// Every intermediate value is the cost of a walk of at most V³ edges, each in
// the int64 range, so the sum stays inside 128 bits for any graph whose dense
// matrix fits in memory (V < 2^21).
type wide struct {
	hi int64
	lo uint64
}

// widen sign-extends x.
func widen(x int64) wide {
	hi := int64(0)
	if x < 0 {
		hi = -1
	}
	return wide{hi: hi, lo: uint64(x)}
}

func (a wide) add(b wide) wide {
	lo, carry := bits.Add64(a.lo, b.lo, 0)
	return wide{hi: a.hi + b.hi + int64(carry), lo: lo}
}

func (a wide) less(b wide) bool {
	if a.hi != b.hi {
		return a.hi < b.hi
	}
	return a.lo < b.lo
}

// int64 narrows a; ok is false when a is outside the int64 range.
func (a wide) int64() (v int64, ok bool) {
	v = int64(a.lo)
	return v, widen(v) == a
}

// String renders the exact decimal value, used in overflow errors.
func (a wide) String() string {
	n := new(big.Int).SetInt64(a.hi)
	n.Lsh(n, 64)
	n.Add(n, new(big.Int).SetUint64(a.lo))
	return n.String()
}
