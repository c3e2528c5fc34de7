package curve

import (
	"errors"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// G1CompressedSize and G2CompressedSize are the curve-standard compressed
// encoding lengths used on the wire.
const (
	G1CompressedSize = bls12381.SizeOfG1AffineCompressed
	G2CompressedSize = bls12381.SizeOfG2AffineCompressed
)

// G1 is a point in the prime-order G1 subgroup.
type G1 struct{ inner bls12381.G1Affine }

// G2 is a point in the prime-order G2 subgroup.
type G2 struct{ inner bls12381.G2Affine }

// GT is the pairing target group.
type GT = bls12381.GT

// G1Generator returns the canonical generator g1.
func G1Generator() G1 { return G1{inner: g1Aff} }

// G2Generator returns the canonical generator g2.
func G2Generator() G2 { return G2{inner: g2Aff} }

// IdentityG1 returns the point at infinity of G1. The zero value of
// G1Affine is already the identity, encoded as (0,0) in affine coordinates.
func IdentityG1() G1 { return G1{} }

// IdentityG2 returns the point at infinity of G2. The zero value of
// G2Affine is already the identity, encoded as (0,0) in affine coordinates.
func IdentityG2() G2 { return G2{} }

// IsIdentity reports whether p is the point at infinity.
func (p G1) IsIdentity() bool { return p.inner.IsInfinity() }

// IsIdentity reports whether p is the point at infinity.
func (p G2) IsIdentity() bool { return p.inner.IsInfinity() }

// Equal reports whether p and o are the same point.
func (p G1) Equal(o G1) bool { return p.inner.Equal(&o.inner) }

// Equal reports whether p and o are the same point.
func (p G2) Equal(o G2) bool { return p.inner.Equal(&o.inner) }

// Add returns p + o.
func (p G1) Add(o G1) G1 {
	var r bls12381.G1Affine
	r.Add(&p.inner, &o.inner)
	return G1{inner: r}
}

// Add returns p + o.
func (p G2) Add(o G2) G2 {
	var r bls12381.G2Affine
	r.Add(&p.inner, &o.inner)
	return G2{inner: r}
}

// Sub returns p - o.
func (p G1) Sub(o G1) G1 {
	var r bls12381.G1Affine
	r.Sub(&p.inner, &o.inner)
	return G1{inner: r}
}

// Sub returns p - o.
func (p G2) Sub(o G2) G2 {
	var r bls12381.G2Affine
	r.Sub(&p.inner, &o.inner)
	return G2{inner: r}
}

// Neg returns -p.
func (p G1) Neg() G1 {
	var r bls12381.G1Affine
	r.Neg(&p.inner)
	return G1{inner: r}
}

// Neg returns -p.
func (p G2) Neg() G2 {
	var r bls12381.G2Affine
	r.Neg(&p.inner)
	return G2{inner: r}
}

// Mul returns s*p.
func (p G1) Mul(s Scalar) G1 {
	var r bls12381.G1Affine
	r.ScalarMultiplication(&p.inner, s.bigInt())
	return G1{inner: r}
}

// Mul returns s*p.
func (p G2) Mul(s Scalar) G2 {
	var r bls12381.G2Affine
	r.ScalarMultiplication(&p.inner, s.bigInt())
	return G2{inner: r}
}

// Bytes returns the 48-byte compressed encoding of p.
func (p G1) Bytes() [G1CompressedSize]byte { return p.inner.Bytes() }

// Bytes returns the 96-byte compressed encoding of p.
func (p G2) Bytes() [G2CompressedSize]byte { return p.inner.Bytes() }

// G1FromBytes decodes the 48-byte compressed encoding of a G1 point,
// verifying it lies on the curve and in the prime-order subgroup.
func G1FromBytes(b []byte) (G1, error) {
	if len(b) != G1CompressedSize {
		return G1{}, errors.New("curve: invalid G1 encoding length")
	}
	var p bls12381.G1Affine
	if _, err := p.SetBytes(b); err != nil {
		return G1{}, err
	}
	return G1{inner: p}, nil
}

// G2FromBytes decodes the 96-byte compressed encoding of a G2 point,
// verifying it lies on the curve and in the prime-order subgroup.
func G2FromBytes(b []byte) (G2, error) {
	if len(b) != G2CompressedSize {
		return G2{}, errors.New("curve: invalid G2 encoding length")
	}
	var p bls12381.G2Affine
	if _, err := p.SetBytes(b); err != nil {
		return G2{}, err
	}
	return G2{inner: p}, nil
}

// CompareG1 defines the total order used to key G1 points (and, by
// extension, Commitment and Ciphertext values) into ordered maps: the
// lexicographic order of the 48-byte compressed encoding.
func CompareG1(a, b G1) int {
	ab, bb := a.Bytes(), b.Bytes()
	for i := range ab {
		if ab[i] != bb[i] {
			if ab[i] < bb[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Pairing computes e(p, q).
func Pairing(p G1, q G2) GT {
	gt, err := bls12381.Pair([]bls12381.G1Affine{p.inner}, []bls12381.G2Affine{q.inner})
	if err != nil {
		// Pair only fails on mismatched slice lengths, which cannot happen
		// for this single-pair call.
		panic(err)
	}
	return gt
}

// PairingPair is one (G1, G2) factor of a multi-pairing product.
type PairingPair struct {
	G1 G1
	G2 G2
}

// MultiPairingIsIdentity reports whether the product ∏ e(pair.G1, pair.G2)
// equals the identity of Gt, computed with a single multi-Miller-loop
// followed by one final exponentiation. Used by aggregate signature
// verification and the ciphertext well-formedness check.
func MultiPairingIsIdentity(pairs []PairingPair) (bool, error) {
	if len(pairs) == 0 {
		return false, errors.New("curve: empty pairing input")
	}
	g1s := make([]bls12381.G1Affine, len(pairs))
	g2s := make([]bls12381.G2Affine, len(pairs))
	for i, pr := range pairs {
		g1s[i] = pr.G1.inner
		g2s[i] = pr.G2.inner
	}
	ml, err := bls12381.MillerLoop(g1s, g2s)
	if err != nil {
		return false, err
	}
	result := bls12381.FinalExponentiation(&ml)
	var one GT
	one.SetOne()
	return result.Equal(&one), nil
}
