// Package key implements BLS signatures and pairing-based ElGamal-style
// encryption (component E): SecretKey, PublicKey, Signature and Ciphertext,
// plus their aggregate and share variants used by the threshold layer.
package key

import (
	"io"

	"github.com/vihu/go-tc/curve"
	"github.com/vihu/go-tc/zeroize"
)

// SecretKey is a single scalar. It exclusively owns its scalar and must be
// zeroized when it goes out of scope.
type SecretKey struct {
	scalar curve.Scalar
}

// RandomSecretKey draws a SecretKey from rng (or the OS RNG if nil).
func RandomSecretKey(rng io.Reader) (SecretKey, error) {
	s, err := curve.RandomScalar(rng)
	if err != nil {
		return SecretKey{}, err
	}
	return SecretKey{scalar: s}, nil
}

// SecretKeyFromBytes decodes a 32-byte canonical little-endian scalar,
// rejecting non-canonical encodings.
func SecretKeyFromBytes(b []byte) (SecretKey, error) {
	s, err := curve.ScalarFromBytes(b)
	if err != nil {
		return SecretKey{}, err
	}
	return SecretKey{scalar: s}, nil
}

// SecretKeyFromScalar wraps an already-derived scalar, e.g. a threshold
// share evaluated from a SecretKeySet's polynomial.
func SecretKeyFromScalar(s curve.Scalar) SecretKey {
	return SecretKey{scalar: s}
}

// Bytes returns the 32-byte canonical little-endian encoding.
func (sk SecretKey) Bytes() [curve.ScalarSize]byte { return sk.scalar.Bytes() }

// PublicKey returns sk * g1.
func (sk SecretKey) PublicKey() PublicKey {
	return PublicKey{point: curve.G1Generator().Mul(sk.scalar)}
}

// Sign computes sk * H2(m), deterministic with no per-signature randomness.
func (sk SecretKey) Sign(m []byte) Signature {
	return Signature{point: curve.HashToG2(m).Mul(sk.scalar)}
}

// Decrypt verifies ct and, if well-formed, returns the plaintext. It
// returns (nil, false) on a malformed ciphertext; this refusal stays quiet
// and does not leak the failure category.
func (sk SecretKey) Decrypt(ct Ciphertext) ([]byte, bool) {
	if !ct.Verify() {
		return nil, false
	}
	d := ct.u.Mul(sk.scalar)
	db := d.Bytes()
	return curve.XorWithHash(db[:], ct.v), true
}

// DecryptionShare returns this key's share of the DH point sk*U used in
// threshold decryption, sk*U itself (a G1 point), to be combined with
// other nodes' shares via Lagrange interpolation before the XOR step.
func (sk SecretKey) DecryptionShare(ct Ciphertext) curve.G1 {
	return ct.u.Mul(sk.scalar)
}

// Zeroize overwrites the held scalar with zero.
func (sk *SecretKey) Zeroize() {
	zeroize.Scalar(&sk.scalar)
}

// PublicKey is a single G1 point. It holds no secret and need not zeroize.
type PublicKey struct {
	point curve.G1
}

// PublicKeyFromBytes decodes a 48-byte compressed G1 point.
func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	p, err := curve.G1FromBytes(b)
	if err != nil {
		return PublicKey{}, err
	}
	return PublicKey{point: p}, nil
}

// PublicKeyFromPoint wraps an already-derived G1 point, e.g. a threshold
// share evaluated from a PublicKeySet's commitment.
func PublicKeyFromPoint(p curve.G1) PublicKey {
	return PublicKey{point: p}
}

// Bytes returns the 48-byte compressed encoding.
func (pk PublicKey) Bytes() [curve.G1CompressedSize]byte { return pk.point.Bytes() }

// Equal reports whether pk and other encode the same point, comparing in
// constant time over the fixed-length compressed encoding.
func (pk PublicKey) Equal(other PublicKey) bool {
	a, b := pk.Bytes(), other.Bytes()
	return curve.ConstantTimeEqualBytes(a[:], b[:])
}

// Verify checks e(g1, sig) == e(pk, H2(m)).
func (pk PublicKey) Verify(sig Signature, m []byte) bool {
	ok, err := curve.MultiPairingIsIdentity([]curve.PairingPair{
		{G1: curve.G1Generator(), G2: sig.point.Neg()},
		{G1: pk.point, G2: curve.HashToG2(m)},
	})
	return err == nil && ok
}

// Encrypt draws r from rng (or the OS RNG), derives the DH point r*pk, and
// uses its hash as a keystream to mask the message.
func (pk PublicKey) Encrypt(m []byte, rng io.Reader) (Ciphertext, error) {
	r, err := curve.RandomScalar(rng)
	if err != nil {
		return Ciphertext{}, err
	}
	defer zeroize.Scalar(&r)

	u := curve.G1Generator().Mul(r)
	dh := pk.point.Mul(r)
	dhBytes := dh.Bytes()
	v := curve.XorWithHash(dhBytes[:], m)
	w := curve.HashToG2WithPoint(u, v).Mul(r)

	return Ciphertext{u: u, v: v, w: w}, nil
}
