// Package bivar implements the symmetric bivariate polynomial (component D)
// used by the Pedersen-VSS / Joint-Feldman DKG layer: BivarPoly carries the
// secret coefficients a dealer samples, BivarCommitment is its public
// counterpart. Both use the same triangular coefficient packing, and they
// generalize poly.Poly and poly.Commitment to two indices.
package bivar

import (
	"io"
	"math"

	"github.com/vihu/go-tc/common"
	"github.com/vihu/go-tc/curve"
	"github.com/vihu/go-tc/poly"
	"github.com/vihu/go-tc/zeroize"
)

// BivarPoly is a symmetric bivariate polynomial of degree d in each
// variable, f(x,y) = Σ_{i,j<=d} c_ij x^i y^j with c_ij = c_ji, stored in
// triangular packing of length (d+1)(d+2)/2.
type BivarPoly struct {
	degree int
	coeffs []curve.Scalar
}

// coeffPos maps (i, j) to the triangular storage index. Both BivarPoly and
// BivarCommitment must share this exact formula: it is what makes row
// extraction and the commitment-row identity line up. It panics with
// common.ErrDegreeOverflow when the index does not fit in an int.
func coeffPos(i, j int) int {
	lo, hi := i, j
	if lo > hi {
		lo, hi = hi, lo
	}
	if hi > 0 && (hi == math.MaxInt || hi+1 > math.MaxInt/hi) {
		panic(common.ErrDegreeOverflow)
	}
	return lo + hi*(hi+1)/2
}

func storageLen(d int) int { return (d + 1) * (d + 2) / 2 }

// Random returns a symmetric bivariate polynomial of degree d with
// independently random coefficients above and on the diagonal.
func Random(d int, rng io.Reader) (*BivarPoly, error) {
	if d < 0 {
		return nil, common.ErrDegreeOverflow
	}
	coeffs := make([]curve.Scalar, storageLen(d))
	for i := range coeffs {
		s, err := curve.RandomScalar(rng)
		if err != nil {
			return nil, err
		}
		coeffs[i] = s
	}
	return &BivarPoly{degree: d, coeffs: coeffs}, nil
}

// WithSecret returns a random symmetric bivariate polynomial of degree d
// whose constant coefficient c_00 is overwritten to secret.
func WithSecret(secret curve.Scalar, d int, rng io.Reader) (*BivarPoly, error) {
	f, err := Random(d, rng)
	if err != nil {
		return nil, err
	}
	f.coeffs[coeffPos(0, 0)] = secret
	return f, nil
}

// Degree returns f's degree in each variable.
func (f *BivarPoly) Degree() int { return f.degree }

// Coeff returns c_ij.
func (f *BivarPoly) Coeff(i, j int) curve.Scalar {
	return f.coeffs[coeffPos(i, j)]
}

// powers returns [x^0, x^1, ..., x^d].
func powers(x curve.Scalar, d int) []curve.Scalar {
	p := make([]curve.Scalar, d+1)
	p[0] = curve.OneScalar()
	for i := 1; i <= d; i++ {
		p[i] = p[i-1].Mul(x)
	}
	return p
}

// Evaluate computes f(x, y) by summing c_ij * x^i * y^j over the full
// [0,d]^2 rectangle.
func (f *BivarPoly) Evaluate(x, y curve.Scalar) curve.Scalar {
	xs := powers(x, f.degree)
	ys := powers(y, f.degree)
	result := curve.ZeroScalar()
	for i := 0; i <= f.degree; i++ {
		for j := 0; j <= f.degree; j++ {
			term := f.Coeff(i, j).Mul(xs[i]).Mul(ys[j])
			result = result.Add(term)
			term.Zeroize()
		}
	}
	return result
}

// Row returns g(y) = f(m, y) as a univariate Poly of degree d.
func (f *BivarPoly) Row(m curve.Scalar) *poly.Poly {
	ms := powers(m, f.degree)
	coeffs := make([]curve.Scalar, f.degree+1)
	for j := 0; j <= f.degree; j++ {
		acc := curve.ZeroScalar()
		for i := 0; i <= f.degree; i++ {
			term := f.Coeff(i, j).Mul(ms[i])
			acc = acc.Add(term)
			term.Zeroize()
		}
		coeffs[j] = acc
	}
	return poly.NewFromCoeffs(coeffs)
}

// Commitment maps every coefficient c_ij to c_ij*g1, producing the public
// BivarCommitment a dealer publishes alongside its rows.
func (f *BivarPoly) Commitment() *BivarCommitment {
	g1 := curve.G1Generator()
	points := make([]curve.G1, len(f.coeffs))
	for i, c := range f.coeffs {
		points[i] = g1.Mul(c)
	}
	return &BivarCommitment{degree: f.degree, points: points}
}

// Zeroize overwrites every coefficient with zero and clears the stored
// degree.
func (f *BivarPoly) Zeroize() {
	zeroize.Scalars(f.coeffs)
	f.coeffs = nil
	f.degree = 0
}
