// Package curve is the field/curve façade for the BLS12-381 pairing-friendly
// curve. Every other package in this module reaches the curve only through
// here: scalar and group arithmetic, pairing checks, and the hashing
// primitives the rest of the library is built on.
package curve

import (
	"crypto/subtle"
	"errors"
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// ScalarSize is the canonical little-endian encoding length of a Scalar.
const ScalarSize = fr.Bytes

// ErrNonCanonicalScalar is returned when decoding bytes that do not
// represent a value strictly less than the field modulus.
var ErrNonCanonicalScalar = errors.New("curve: non-canonical scalar encoding")

// Scalar is an element of the scalar field Fr of BLS12-381.
type Scalar struct {
	inner fr.Element
}

// NewScalarFromUint64 builds the scalar representing v.
func NewScalarFromUint64(v uint64) Scalar {
	var s Scalar
	s.inner.SetUint64(v)
	return s
}

// NewScalarFromInt64 builds the scalar representing v, correctly handling
// negative values as the field negation of their absolute value, needed
// for signed share indices.
func NewScalarFromInt64(v int64) Scalar {
	if v >= 0 {
		return NewScalarFromUint64(uint64(v))
	}
	s := NewScalarFromUint64(uint64(-v))
	return s.Neg()
}

// RandomScalar draws a uniformly random non-degenerate scalar from rng.
func RandomScalar(rng io.Reader) (Scalar, error) {
	var s Scalar
	if rng == nil {
		if _, err := s.inner.SetRandom(); err != nil {
			return Scalar{}, err
		}
		return s, nil
	}
	for {
		buf := make([]byte, ScalarSize)
		if _, err := io.ReadFull(rng, buf); err != nil {
			return Scalar{}, err
		}
		v := new(big.Int).SetBytes(buf)
		if v.Cmp(fr.Modulus()) >= 0 {
			continue
		}
		s.inner.SetBigInt(v)
		return s, nil
	}
}

// ScalarFromBytes decodes the canonical 32-byte little-endian encoding of a
// scalar, rejecting values that are not strictly less than the modulus.
func ScalarFromBytes(b []byte) (Scalar, error) {
	if len(b) != ScalarSize {
		return Scalar{}, errors.New("curve: invalid scalar length")
	}
	be := make([]byte, ScalarSize)
	for i, c := range b {
		be[ScalarSize-1-i] = c
	}
	v := new(big.Int).SetBytes(be)
	if v.Cmp(fr.Modulus()) >= 0 {
		return Scalar{}, ErrNonCanonicalScalar
	}
	var s Scalar
	s.inner.SetBigInt(v)
	return s, nil
}

// Bytes returns the canonical 32-byte little-endian encoding of s.
func (s Scalar) Bytes() [ScalarSize]byte {
	var v big.Int
	s.inner.ToBigInt(&v)
	be := v.FillBytes(make([]byte, ScalarSize))
	var out [ScalarSize]byte
	for i, c := range be {
		out[ScalarSize-1-i] = c
	}
	return out
}

// ZeroScalar returns the additive identity.
func ZeroScalar() Scalar { return Scalar{} }

// OneScalar returns the multiplicative identity.
func OneScalar() Scalar {
	var s Scalar
	s.inner.SetOne()
	return s
}

// IsZero reports whether s is the additive identity.
func (s Scalar) IsZero() bool { return s.inner.IsZero() }

// Equal reports whether s and o represent the same field element.
func (s Scalar) Equal(o Scalar) bool { return s.inner.Equal(&o.inner) }

// Add returns s + o.
func (s Scalar) Add(o Scalar) Scalar {
	var r Scalar
	r.inner.Add(&s.inner, &o.inner)
	return r
}

// Sub returns s - o.
func (s Scalar) Sub(o Scalar) Scalar {
	var r Scalar
	r.inner.Sub(&s.inner, &o.inner)
	return r
}

// Mul returns s * o.
func (s Scalar) Mul(o Scalar) Scalar {
	var r Scalar
	r.inner.Mul(&s.inner, &o.inner)
	return r
}

// Neg returns -s.
func (s Scalar) Neg() Scalar {
	var r Scalar
	r.inner.Neg(&s.inner)
	return r
}

// Invert returns the multiplicative inverse of s. It fails for the zero
// scalar, which has none.
func (s Scalar) Invert() (Scalar, error) {
	if s.inner.IsZero() {
		return Scalar{}, errors.New("curve: cannot invert zero scalar")
	}
	var r Scalar
	r.inner.Inverse(&s.inner)
	return r, nil
}

func (s Scalar) bigInt() *big.Int {
	var v big.Int
	s.inner.ToBigInt(&v)
	return &v
}

// Zeroize overwrites the four 64-bit limbs backing s with zero. Call this on
// any Scalar that held secret material before it goes out of scope; copies
// produced by the operators above are independent and must be zeroized on
// their own.
func (s *Scalar) Zeroize() {
	for i := range s.inner {
		s.inner[i] = 0
	}
}

// ConstantTimeEqualBytes compares two equal-length byte slices in constant
// time with respect to their length. Used by PublicKey equality.
func ConstantTimeEqualBytes(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}

// The curve generators, cached at init so every caller shares the same
// immutable base points.
var (
	g1Jac bls12381.G1Jac
	g2Jac bls12381.G2Jac
	g1Aff bls12381.G1Affine
	g2Aff bls12381.G2Affine
)

func init() {
	g1Jac, g2Jac, g1Aff, g2Aff = bls12381.Generators()
	_ = g1Jac
	_ = g2Jac
}
