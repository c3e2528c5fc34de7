package curve

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScalarBytesRoundTrip(t *testing.T) {
	s, err := RandomScalar(nil)
	require.NoError(t, err)
	b := s.Bytes()
	got, err := ScalarFromBytes(b[:])
	require.NoError(t, err)
	require.True(t, s.Equal(got))
}

func TestScalarFromBytesRejectsNonCanonical(t *testing.T) {
	// All-0xff bytes, interpreted little-endian, is far larger than the
	// 255-bit field modulus and must be rejected.
	b := make([]byte, ScalarSize)
	for i := range b {
		b[i] = 0xff
	}
	_, err := ScalarFromBytes(b)
	require.ErrorIs(t, err, ErrNonCanonicalScalar)
}

func TestScalarFieldAxioms(t *testing.T) {
	a, err := RandomScalar(nil)
	require.NoError(t, err)
	b, err := RandomScalar(nil)
	require.NoError(t, err)

	require.True(t, a.Add(b).Sub(b).Equal(a))
	inv, err := a.Invert()
	require.NoError(t, err)
	require.True(t, a.Mul(inv).Equal(OneScalar()))
	require.True(t, a.Add(a.Neg()).IsZero())
}

func TestScalarZeroizeClearsLimbs(t *testing.T) {
	s, err := RandomScalar(nil)
	require.NoError(t, err)
	require.False(t, s.IsZero())
	s.Zeroize()
	require.True(t, s.IsZero())
}

func TestSignedScalarConversion(t *testing.T) {
	neg := NewScalarFromInt64(-5)
	pos := NewScalarFromInt64(5)
	require.True(t, neg.Equal(pos.Neg()))
}

func TestG1G2ScalarMulMatchesAdd(t *testing.T) {
	g1 := G1Generator()
	sum := g1.Add(g1).Add(g1)
	mul := g1.Mul(NewScalarFromUint64(3))
	require.True(t, sum.Equal(mul))

	g2 := G2Generator()
	sum2 := g2.Add(g2)
	mul2 := g2.Mul(NewScalarFromUint64(2))
	require.True(t, sum2.Equal(mul2))
}

func TestG1CompressedRoundTrip(t *testing.T) {
	p := G1Generator().Mul(NewScalarFromUint64(12345))
	b := p.Bytes()
	require.Len(t, b, G1CompressedSize)
	got, err := G1FromBytes(b[:])
	require.NoError(t, err)
	require.True(t, p.Equal(got))
}

func TestG2CompressedRoundTrip(t *testing.T) {
	p := G2Generator().Mul(NewScalarFromUint64(98765))
	b := p.Bytes()
	require.Len(t, b, G2CompressedSize)
	got, err := G2FromBytes(b[:])
	require.NoError(t, err)
	require.True(t, p.Equal(got))
}

func TestPairingBilinear(t *testing.T) {
	a := NewScalarFromUint64(7)
	b := NewScalarFromUint64(11)
	lhs := Pairing(G1Generator().Mul(a), G2Generator().Mul(b))
	rhs := Pairing(G1Generator().Mul(a.Mul(b)), G2Generator())
	require.True(t, lhs.Equal(&rhs))
}

func TestMultiPairingIsIdentity(t *testing.T) {
	a := NewScalarFromUint64(4)
	b := NewScalarFromUint64(9)
	// e(g1, b*g2)^a == e(a*g1, b*g2); check e(a*g1,b*g2) * e(g1,-(ab)*g2) == 1
	p1 := PairingPair{G1: G1Generator().Mul(a), G2: G2Generator().Mul(b)}
	p2 := PairingPair{G1: G1Generator(), G2: G2Generator().Mul(a.Mul(b)).Neg()}
	ok, err := MultiPairingIsIdentity([]PairingPair{p1, p2})
	require.NoError(t, err)
	require.True(t, ok)
}

func TestMultiPairingEmptyInputErrors(t *testing.T) {
	_, err := MultiPairingIsIdentity(nil)
	require.Error(t, err)
}
