// Package zeroize collects the secret-memory discipline required of every
// type that owns scalar material: Poly, BivarPoly, SecretKey, SecretKeySet
// and the dkg Node's accumulated share all route their destruction through here, a single
// shared location for scalar-clearing logic rather than each type
// reimplementing its own loop over limbs.
package zeroize

import "github.com/vihu/go-tc/curve"

// Scalar overwrites s's backing limbs with zero.
func Scalar(s *curve.Scalar) {
	if s != nil {
		s.Zeroize()
	}
}

// Scalars overwrites every element of ss with zero.
func Scalars(ss []curve.Scalar) {
	for i := range ss {
		ss[i].Zeroize()
	}
}

// Bytes overwrites b with zero in place.
func Bytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// Secret scopes the release of a piece of secret material: call Release (or
// defer it) to zeroize as soon as the value's useful lifetime ends, instead
// of waiting on the garbage collector.
type Secret struct {
	clear func()
}

// NewSecret wraps a clear function so callers can `defer s.Release()`.
func NewSecret(clear func()) Secret {
	return Secret{clear: clear}
}

// Release runs the scoped clear function. Safe to call multiple times.
func (s Secret) Release() {
	if s.clear != nil {
		s.clear()
	}
}
