package poly

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vihu/go-tc/curve"
)

// TestCommitmentMatchesEvaluation checks that for any Poly p and scalar x,
// p.commitment().evaluate(x) == p.evaluate(x) * g1.
func TestCommitmentMatchesEvaluation(t *testing.T) {
	p, err := Random(6, nil)
	require.NoError(t, err)
	c := p.Commitment()

	g1 := curve.G1Generator()
	for _, x := range []int64{0, 1, 2, 3, 100, -7} {
		xs := s(x)
		want := g1.Mul(p.Evaluate(xs))
		got := c.Evaluate(xs)
		require.True(t, want.Equal(got))
	}
}

func TestCommitmentAddStripsTrailingIdentity(t *testing.T) {
	p1 := &Poly{coeffs: []curve.Scalar{s(1), s(2)}}
	p2 := &Poly{coeffs: []curve.Scalar{s(-1), s(-2)}}
	sum := p1.Commitment().Add(p2.Commitment())
	require.Equal(t, 0, sum.Degree())
	require.True(t, sum.PublicKey().Equal(curve.G1Generator().Mul(s(0))))
}

func TestCommitmentOrdering(t *testing.T) {
	short := NewCommitment([]curve.G1{curve.G1Generator()})
	long := NewCommitment([]curve.G1{curve.G1Generator(), curve.G1Generator()})
	require.Equal(t, -1, short.Compare(long))
	require.Equal(t, 1, long.Compare(short))
	require.Equal(t, 0, short.Compare(short))
}
