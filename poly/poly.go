// Package poly implements univariate polynomial arithmetic over the BLS12-381
// scalar field (component B) and its coefficient-wise commitment into G1
// (component C), following the shape of kyber's share.PriPoly/PubPoly pair
// (see gopkg.in/dedis/kyber.v1/share/poly_test.go in the reference corpus)
// but built directly on this module's curve façade instead of an abstract
// kyber.Group.
package poly

import (
	"io"

	"github.com/vihu/go-tc/common"
	"github.com/vihu/go-tc/curve"
	"github.com/vihu/go-tc/zeroize"
)

// Poly is an ordered sequence of scalar coefficients (a0, a1, ..., ad) with
// ad != 0, or the empty sequence representing the zero polynomial. No
// trailing zero coefficient is ever stored.
type Poly struct {
	coeffs []curve.Scalar
}

// Zero returns the zero polynomial.
func Zero() *Poly { return &Poly{} }

// One returns the constant polynomial 1.
func One() *Poly { return Constant(curve.OneScalar()) }

// Constant returns the degree-0 polynomial c (or the zero polynomial if c is 0).
func Constant(c curve.Scalar) *Poly {
	p := &Poly{coeffs: []curve.Scalar{c}}
	p.trim()
	return p
}

// Monomial returns x^d.
func Monomial(d int) *Poly {
	coeffs := make([]curve.Scalar, d+1)
	coeffs[d] = curve.OneScalar()
	return &Poly{coeffs: coeffs}
}

// Random returns a polynomial of degree d with uniformly random coefficients
// drawn from rng (or the OS RNG if rng is nil). The leading coefficient is
// guaranteed non-zero so the returned degree is always exactly d, unless
// d < 0, which returns the zero polynomial.
func Random(d int, rng io.Reader) (*Poly, error) {
	if d < 0 {
		return Zero(), nil
	}
	coeffs := make([]curve.Scalar, d+1)
	for i := 0; i <= d; i++ {
		s, err := curve.RandomScalar(rng)
		if err != nil {
			return nil, err
		}
		coeffs[i] = s
	}
	for coeffs[d].IsZero() {
		s, err := curve.RandomScalar(rng)
		if err != nil {
			return nil, err
		}
		coeffs[d] = s
	}
	return &Poly{coeffs: coeffs}, nil
}

// WithSecret returns a random polynomial of degree d whose constant
// coefficient is overwritten to secret. Used by SecretKeySet.
func WithSecret(secret curve.Scalar, d int, rng io.Reader) (*Poly, error) {
	p, err := Random(d, rng)
	if err != nil {
		return nil, err
	}
	if len(p.coeffs) == 0 {
		p.coeffs = []curve.Scalar{secret}
		return p, nil
	}
	p.coeffs[0] = secret
	return p, nil
}

// NewFromCoeffs wraps an explicit coefficient vector (a0, a1, ..., ad),
// trimming any trailing zero coefficients. Used by packages that build up a
// Poly's coefficients directly, such as bivar's row extraction.
func NewFromCoeffs(coeffs []curve.Scalar) *Poly {
	p := &Poly{coeffs: coeffs}
	p.trim()
	return p
}

// trim drops any trailing zero coefficients, restoring the invariant that
// the stored slice has no trailing zero (or is empty).
func (p *Poly) trim() {
	n := len(p.coeffs)
	for n > 0 && p.coeffs[n-1].IsZero() {
		n--
	}
	p.coeffs = p.coeffs[:n]
}

// Degree returns len-1, or 0 for the zero polynomial (IsZero is the
// authoritative emptiness test).
func (p *Poly) Degree() int {
	if len(p.coeffs) == 0 {
		return 0
	}
	return len(p.coeffs) - 1
}

// IsZero reports whether p is the zero polynomial.
func (p *Poly) IsZero() bool { return len(p.coeffs) == 0 }

// Coeffs returns the backing coefficient slice. Callers must not retain it
// past the Poly's lifetime without copying: it aliases p's owned scalars.
func (p *Poly) Coeffs() []curve.Scalar { return p.coeffs }

// Evaluate computes p(x) via Horner's method.
func (p *Poly) Evaluate(x curve.Scalar) curve.Scalar {
	result := curve.ZeroScalar()
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		result = result.Mul(x).Add(p.coeffs[i])
	}
	return result
}

// Add returns p + q.
func (p *Poly) Add(q *Poly) *Poly {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	coeffs := make([]curve.Scalar, n)
	for i := 0; i < n; i++ {
		var a, b curve.Scalar
		if i < len(p.coeffs) {
			a = p.coeffs[i]
		}
		if i < len(q.coeffs) {
			b = q.coeffs[i]
		}
		coeffs[i] = a.Add(b)
	}
	r := &Poly{coeffs: coeffs}
	r.trim()
	return r
}

// Sub returns p - q.
func (p *Poly) Sub(q *Poly) *Poly {
	return p.Add(q.Neg())
}

// Neg returns -p.
func (p *Poly) Neg() *Poly {
	coeffs := make([]curve.Scalar, len(p.coeffs))
	for i, c := range p.coeffs {
		coeffs[i] = c.Neg()
	}
	return &Poly{coeffs: coeffs}
}

// Mul returns p * q.
func (p *Poly) Mul(q *Poly) *Poly {
	if p.IsZero() || q.IsZero() {
		return Zero()
	}
	coeffs := make([]curve.Scalar, len(p.coeffs)+len(q.coeffs)-1)
	for i := range coeffs {
		coeffs[i] = curve.ZeroScalar()
	}
	for i, a := range p.coeffs {
		if a.IsZero() {
			continue
		}
		for j, b := range q.coeffs {
			term := a.Mul(b)
			coeffs[i+j] = coeffs[i+j].Add(term)
			term.Zeroize()
		}
	}
	r := &Poly{coeffs: coeffs}
	r.trim()
	return r
}

// MulScalar returns s * p. A scratch scalar used internally is zeroized
// before return, and multiplying by zero yields the (empty) zero polynomial.
func (p *Poly) MulScalar(s curve.Scalar) *Poly {
	if s.IsZero() {
		return Zero()
	}
	coeffs := make([]curve.Scalar, len(p.coeffs))
	scratch := s
	for i, c := range p.coeffs {
		coeffs[i] = c.Mul(scratch)
	}
	scratch.Zeroize()
	r := &Poly{coeffs: coeffs}
	r.trim()
	return r
}

// Sample is one (x, y) pair used for interpolation.
type Sample struct {
	X curve.Scalar
	Y curve.Scalar
}

// Interpolate returns the unique polynomial of degree <= len(samples)-1
// fitting the given (x, y) pairs, using an incremental Newton-like
// construction. It fails with ErrInterpolationInvalid if two samples share
// an x-coordinate.
func Interpolate(samples []Sample) (*Poly, error) {
	if len(samples) == 0 {
		return nil, common.ErrEmptyInput
	}
	p := Constant(samples[0].Y)
	base := baseFactor(samples[0].X)
	for k := 1; k < len(samples); k++ {
		xj, yj := samples[k].X, samples[k].Y
		baseAtXj := base.Evaluate(xj)
		if baseAtXj.IsZero() {
			return nil, common.ErrInterpolationInvalid
		}
		inv, err := baseAtXj.Invert()
		if err != nil {
			return nil, common.ErrInterpolationInvalid
		}
		delta := yj.Sub(p.Evaluate(xj)).Mul(inv)
		p = p.Add(base.MulScalar(delta))
		base = base.Mul(baseFactor(xj))
	}
	return p, nil
}

// baseFactor returns the monomial (x - x0).
func baseFactor(x0 curve.Scalar) *Poly {
	return &Poly{coeffs: []curve.Scalar{x0.Neg(), curve.OneScalar()}}
}

// Commitment maps each coefficient a_i to a_i*g1, yielding the vector of G1
// points used to verify evaluations without revealing the polynomial.
func (p *Poly) Commitment() *Commitment {
	points := make([]curve.G1, len(p.coeffs))
	g1 := curve.G1Generator()
	for i, c := range p.coeffs {
		points[i] = g1.Mul(c)
	}
	c := &Commitment{points: points}
	c.trim()
	return c
}

// Zeroize overwrites every coefficient this Poly owns with zero bytes. Call
// it when a Poly holding secret material goes out of scope.
func (p *Poly) Zeroize() {
	zeroize.Scalars(p.coeffs)
	p.coeffs = nil
}

// Clone returns a deep copy of p with independently owned coefficients.
func (p *Poly) Clone() *Poly {
	coeffs := make([]curve.Scalar, len(p.coeffs))
	copy(coeffs, p.coeffs)
	return &Poly{coeffs: coeffs}
}
