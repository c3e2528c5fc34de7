// Package common holds the sentinel errors shared across the threshold
// cryptography packages: one exported var per error kind, checked with
// errors.Is.
package common

import "errors"

// ErrNotEnoughShares is returned by combine_signatures/combine_decryption
// when fewer than t+1 distinct shares were supplied.
var ErrNotEnoughShares = errors.New("tc: not enough shares to reconstruct")

// ErrDuplicateShare is returned when two shares passed to a combine
// operation carry the same index.
var ErrDuplicateShare = errors.New("tc: duplicate share index")

// ErrMalformedCiphertext is returned (never panicked) when a ciphertext
// fails its well-formedness check.
var ErrMalformedCiphertext = errors.New("tc: ciphertext failed verification")

// ErrInvalidSignature is returned when a point fails its compression
// round-trip, or aggregate-verify preconditions are violated.
var ErrInvalidSignature = errors.New("tc: invalid signature")

// ErrDegreeOverflow reports an unusable bivariate degree: bivar.Random
// returns it for a negative degree, and coeff_pos panics with it when its
// index computation would overflow the platform word size.
var ErrDegreeOverflow = errors.New("tc: bivariate degree overflows platform word size")

// ErrEmptyInput flags a caller-contract violation: an operation that
// requires at least one element (aggregate verify, interpolation) received
// none.
var ErrEmptyInput = errors.New("tc: empty input")

// ErrLengthMismatch flags mismatched parallel-slice lengths, e.g. messages
// and public keys in aggregate verify.
var ErrLengthMismatch = errors.New("tc: mismatched input lengths")

// ErrInterpolationInvalid is returned by Poly interpolation when two
// samples share an x-coordinate, so no unique base(x) inverse exists.
var ErrInterpolationInvalid = errors.New("tc: interpolation samples are not distinct")

// ErrNonPositiveShareIndex is returned when a share is requested for share
// index -1, which maps to scalar 0: the master secret lives at scalar 0 and
// is never handed out.
var ErrNonPositiveShareIndex = errors.New("tc: share index -1 maps to scalar 0, reserved for the master secret")
