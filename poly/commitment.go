package poly

import (
	"sort"

	"github.com/vihu/go-tc/curve"
)

// Commitment is the public counterpart of a Poly: an ordered vector of G1
// points (C0, ..., Cd) with Ci = ai*g1. Holds no secret material.
type Commitment struct {
	points []curve.G1
}

// NewCommitment wraps an explicit point vector, stripping trailing
// identities so the invariant holds regardless of how the caller built it.
func NewCommitment(points []curve.G1) *Commitment {
	c := &Commitment{points: append([]curve.G1(nil), points...)}
	c.trim()
	return c
}

func (c *Commitment) trim() {
	n := len(c.points)
	for n > 0 && c.points[n-1].IsIdentity() {
		n--
	}
	c.points = c.points[:n]
}

// Degree returns len-1, or 0 if empty.
func (c *Commitment) Degree() int {
	if len(c.points) == 0 {
		return 0
	}
	return len(c.points) - 1
}

// Points returns the backing point vector.
func (c *Commitment) Points() []curve.G1 { return c.points }

// Evaluate computes C(x) = Σ Ci * x^i via Horner's method in G1.
func (c *Commitment) Evaluate(x curve.Scalar) curve.G1 {
	result := curve.IdentityG1()
	for i := len(c.points) - 1; i >= 0; i-- {
		result = result.Mul(x).Add(c.points[i])
	}
	return result
}

// Add returns the coefficient-wise sum of c and o, extending the shorter
// operand with identities and stripping trailing identities from the result.
func (c *Commitment) Add(o *Commitment) *Commitment {
	n := len(c.points)
	if len(o.points) > n {
		n = len(o.points)
	}
	points := make([]curve.G1, n)
	for i := 0; i < n; i++ {
		a, b := curve.IdentityG1(), curve.IdentityG1()
		if i < len(c.points) {
			a = c.points[i]
		}
		if i < len(o.points) {
			b = o.points[i]
		}
		points[i] = a.Add(b)
	}
	r := &Commitment{points: points}
	r.trim()
	return r
}

// PublicKey returns C0, the commitment's constant term.
func (c *Commitment) PublicKey() curve.G1 {
	if len(c.points) == 0 {
		return curve.IdentityG1()
	}
	return c.points[0]
}

// Compare defines a total order over commitments: shorter commitments sort
// first; among equal lengths, the first unequal point is compared by its
// 48-byte compressed encoding.
func (c *Commitment) Compare(o *Commitment) int {
	if len(c.points) != len(o.points) {
		if len(c.points) < len(o.points) {
			return -1
		}
		return 1
	}
	for i := range c.points {
		if d := curve.CompareG1(c.points[i], o.points[i]); d != 0 {
			return d
		}
	}
	return 0
}

// HashBytes returns a deterministic byte representation suitable for
// hashing a Commitment into a map key: the length followed by each
// compressed point.
func (c *Commitment) HashBytes() []byte {
	out := make([]byte, 0, 8+len(c.points)*curve.G1CompressedSize)
	out = appendUvarint(out, uint64(len(c.points)))
	for _, p := range c.points {
		b := p.Bytes()
		out = append(out, b[:]...)
	}
	return out
}

func appendUvarint(b []byte, v uint64) []byte {
	var buf [10]byte
	n := 0
	for v >= 0x80 {
		buf[n] = byte(v) | 0x80
		v >>= 7
		n++
	}
	buf[n] = byte(v)
	return append(b, buf[:n+1]...)
}

// SortCommitments sorts a slice of commitments by the total order above —
// used when committing to a canonical dealer ordering during DKG.
func SortCommitments(cs []*Commitment) {
	sort.Slice(cs, func(i, j int) bool { return cs[i].Compare(cs[j]) < 0 })
}
