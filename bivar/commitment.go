package bivar

import (
	"github.com/vihu/go-tc/curve"
	"github.com/vihu/go-tc/poly"
)

// BivarCommitment is the public counterpart of a BivarPoly: the same
// triangular layout, but each entry is a G1 point c_ij*g1.
type BivarCommitment struct {
	degree int
	points []curve.G1
}

// NewBivarCommitment wraps an explicit triangular point vector of the given
// degree.
func NewBivarCommitment(degree int, points []curve.G1) *BivarCommitment {
	return &BivarCommitment{degree: degree, points: append([]curve.G1(nil), points...)}
}

// Degree returns the commitment's degree in each variable.
func (c *BivarCommitment) Degree() int { return c.degree }

// Point returns c_ij*g1.
func (c *BivarCommitment) Point(i, j int) curve.G1 {
	return c.points[coeffPos(i, j)]
}

// Points returns the backing triangular point vector.
func (c *BivarCommitment) Points() []curve.G1 { return c.points }

// Evaluate computes f(x,y)*g1 by summing c_ij*x^i*y^j over the full
// [0,d]^2 rectangle, mirroring BivarPoly.Evaluate in G1.
func (c *BivarCommitment) Evaluate(x, y curve.Scalar) curve.G1 {
	xs := powers(x, c.degree)
	ys := powers(y, c.degree)
	result := curve.IdentityG1()
	for i := 0; i <= c.degree; i++ {
		for j := 0; j <= c.degree; j++ {
			coeff := xs[i].Mul(ys[j])
			result = result.Add(c.Point(i, j).Mul(coeff))
			coeff.Zeroize()
		}
	}
	return result
}

// Row returns g(y) = f(m, y)*g1 as a Commitment of degree d, matching
// BivarPoly.Row(m).Commitment() for the same m.
func (c *BivarCommitment) Row(m curve.Scalar) *poly.Commitment {
	ms := powers(m, c.degree)
	points := make([]curve.G1, c.degree+1)
	for j := 0; j <= c.degree; j++ {
		acc := curve.IdentityG1()
		for i := 0; i <= c.degree; i++ {
			acc = acc.Add(c.Point(i, j).Mul(ms[i]))
		}
		points[j] = acc
	}
	return poly.NewCommitment(points)
}

// Add returns the coefficient-wise sum of two same-degree BivarCommitments,
// used to aggregate dealer commitments into a joint public commitment
// during DKG.
func (c *BivarCommitment) Add(o *BivarCommitment) *BivarCommitment {
	points := make([]curve.G1, len(c.points))
	for i := range points {
		points[i] = c.points[i].Add(o.points[i])
	}
	return &BivarCommitment{degree: c.degree, points: points}
}
