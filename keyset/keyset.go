// Package keyset implements the threshold key set layer (component F):
// SecretKeySet and PublicKeySet wrap a univariate Poly/Commitment pair and
// derive per-node shares, plus the Lagrange-at-zero combination of
// signature and decryption shares.
package keyset

import (
	"io"

	"github.com/vihu/go-tc/common"
	"github.com/vihu/go-tc/curve"
	"github.com/vihu/go-tc/key"
	"github.com/vihu/go-tc/poly"
)

// indexToScalar maps the caller-visible natural-number share index i to
// the field scalar i+1, rejecting the one index (-1) that would land on
// the reserved scalar 0 where the master secret lives.
func indexToScalar(i int64) (curve.Scalar, error) {
	if i == -1 {
		return curve.Scalar{}, common.ErrNonPositiveShareIndex
	}
	return curve.NewScalarFromInt64(i + 1), nil
}

// SecretKeySet wraps a random polynomial of degree t. It exclusively owns
// its scalars and must be zeroized on destruction.
type SecretKeySet struct {
	poly *poly.Poly
}

// RandomSecretKeySet samples a degree-t polynomial whose constant term is
// the master secret.
func RandomSecretKeySet(t int, rng io.Reader) (*SecretKeySet, error) {
	p, err := poly.Random(t, rng)
	if err != nil {
		return nil, err
	}
	return &SecretKeySet{poly: p}, nil
}

// SecretKeySetWithSecret samples a degree-t polynomial whose constant
// term is overwritten to secret.
func SecretKeySetWithSecret(secret curve.Scalar, t int, rng io.Reader) (*SecretKeySet, error) {
	p, err := poly.WithSecret(secret, t, rng)
	if err != nil {
		return nil, err
	}
	return &SecretKeySet{poly: p}, nil
}

// Threshold returns t, the polynomial's degree.
func (s *SecretKeySet) Threshold() int { return s.poly.Degree() }

// PublicKeySet returns the commitment to this key set's polynomial.
func (s *SecretKeySet) PublicKeySet() *PublicKeySet {
	return &PublicKeySet{commit: s.poly.Commitment()}
}

// SecretKeyShare returns node i's share, SecretKey(poly.evaluate(i+1)).
func (s *SecretKeySet) SecretKeyShare(i int64) (key.SecretKey, error) {
	x, err := indexToScalar(i)
	if err != nil {
		return key.SecretKey{}, err
	}
	return key.SecretKeyFromScalar(s.poly.Evaluate(x)), nil
}

// MasterSecret returns poly.evaluate(0), the master secret scalar. Only
// ever needed by test code or a dealer assembling shares out-of-band.
func (s *SecretKeySet) MasterSecret() curve.Scalar {
	return s.poly.Evaluate(curve.ZeroScalar())
}

// Zeroize overwrites every coefficient of the underlying polynomial.
func (s *SecretKeySet) Zeroize() {
	s.poly.Zeroize()
}

// PublicKeySet wraps a Commitment, the public counterpart of a
// SecretKeySet. It holds no secrets.
type PublicKeySet struct {
	commit *poly.Commitment
}

// NewPublicKeySet wraps an explicit commitment, e.g. one reconstructed
// from wire bytes or aggregated across dealers.
func NewPublicKeySet(c *poly.Commitment) *PublicKeySet {
	return &PublicKeySet{commit: c}
}

// Threshold returns t, the commitment's degree.
func (p *PublicKeySet) Threshold() int { return p.commit.Degree() }

// MasterPublicKey returns commit.C0.
func (p *PublicKeySet) MasterPublicKey() curve.G1 {
	return p.commit.PublicKey()
}

// PublicKeyShare returns node i's public key, PublicKey(commit.evaluate(i+1)).
func (p *PublicKeySet) PublicKeyShare(i int64) (key.PublicKey, error) {
	x, err := indexToScalar(i)
	if err != nil {
		return key.PublicKey{}, err
	}
	return key.PublicKeyFromPoint(p.commit.Evaluate(x)), nil
}

// Commitment exposes the underlying commitment, e.g. for serialization or
// DKG aggregation.
func (p *PublicKeySet) Commitment() *poly.Commitment { return p.commit }

// Combine returns a PublicKeySet whose commitment is the sum of p's and
// other's, the DKG aggregation step across accepted dealers.
func (p *PublicKeySet) Combine(other *PublicKeySet) *PublicKeySet {
	return &PublicKeySet{commit: p.commit.Add(other.commit)}
}

// IndexedSecretShare pairs a share index with the scalar node i holds,
// poly.evaluate(i+1).
type IndexedSecretShare struct {
	Index int64
	Value curve.Scalar
}
