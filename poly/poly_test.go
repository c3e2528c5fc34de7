package poly

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vihu/go-tc/common"
	"github.com/vihu/go-tc/curve"
)

func s(v int64) curve.Scalar { return curve.NewScalarFromInt64(v) }

// TestPolyRoundTrip checks evaluation of p = 5x^3 + x - 2 at several points.
func TestPolyRoundTrip(t *testing.T) {
	p := &Poly{coeffs: []curve.Scalar{s(-2), s(1), s(0), s(5)}}

	cases := []struct {
		x, y int64
	}{
		{-1, -8},
		{2, 40},
		{3, 136},
		{5, 628},
	}
	samples := make([]Sample, len(cases))
	for i, c := range cases {
		got := p.Evaluate(s(c.x))
		require.True(t, got.Equal(s(c.y)), "p(%d) = %v, want %d", c.x, got, c.y)
		samples[i] = Sample{X: s(c.x), Y: s(c.y)}
	}

	interpolated, err := Interpolate(samples)
	require.NoError(t, err)
	for _, c := range cases {
		require.True(t, interpolated.Evaluate(s(c.x)).Equal(s(c.y)))
	}
}

func TestInterpolateDuplicateX(t *testing.T) {
	_, err := Interpolate([]Sample{
		{X: s(1), Y: s(1)},
		{X: s(1), Y: s(2)},
	})
	require.ErrorIs(t, err, common.ErrInterpolationInvalid)
}

func TestArithmeticEvaluationHomomorphism(t *testing.T) {
	p := &Poly{coeffs: []curve.Scalar{s(3), s(2)}}   // 2x + 3
	q := &Poly{coeffs: []curve.Scalar{s(-1), s(4)}}  // 4x - 1
	for _, x := range []int64{0, 1, 2, 7, -3} {
		xs := s(x)
		require.True(t, p.Add(q).Evaluate(xs).Equal(p.Evaluate(xs).Add(q.Evaluate(xs))))
		require.True(t, p.Sub(q).Evaluate(xs).Equal(p.Evaluate(xs).Sub(q.Evaluate(xs))))
		require.True(t, p.Mul(q).Evaluate(xs).Equal(p.Evaluate(xs).Mul(q.Evaluate(xs))))
	}
}

func TestZeroPolyInvariants(t *testing.T) {
	z := Zero()
	require.True(t, z.IsZero())
	require.Equal(t, 0, z.Degree())
	require.True(t, z.Evaluate(s(42)).IsZero())

	p := &Poly{coeffs: []curve.Scalar{s(1), s(2)}}
	require.True(t, p.MulScalar(curve.ZeroScalar()).IsZero())
}

func TestNoTrailingZeroCoefficient(t *testing.T) {
	p := &Poly{coeffs: []curve.Scalar{s(1), s(2), s(0)}}
	p.trim()
	require.Equal(t, 1, p.Degree())
	require.Len(t, p.coeffs, 2)
}

func TestRandomDegreeIsExact(t *testing.T) {
	p, err := Random(5, nil)
	require.NoError(t, err)
	require.Equal(t, 5, p.Degree())
}
