package key

import (
	"github.com/vihu/go-tc/common"
	"github.com/vihu/go-tc/curve"
)

// Signature is a single G2 point, serializing to the canonical 96-byte
// compressed form.
type Signature struct {
	point curve.G2
}

// SignatureFromBytes decodes a 96-byte compressed G2 point, rejecting
// anything that does not round-trip through compress/decompress.
func SignatureFromBytes(b []byte) (Signature, error) {
	p, err := curve.G2FromBytes(b)
	if err != nil {
		return Signature{}, common.ErrInvalidSignature
	}
	return Signature{point: p}, nil
}

// Bytes returns the 96-byte compressed encoding.
func (sig Signature) Bytes() [curve.G2CompressedSize]byte { return sig.point.Bytes() }

// SignatureFromPoint wraps an already-derived G2 point, e.g. the result of
// combining threshold signature shares.
func SignatureFromPoint(p curve.G2) Signature {
	return Signature{point: p}
}

// Point returns the underlying G2 point, for callers (such as the
// threshold combiners) that need to do further group arithmetic.
func (sig Signature) Point() curve.G2 { return sig.point }

// Aggregate sums a set of signatures into one, e.g. for aggregate
// verification over distinct messages.
func Aggregate(sigs []Signature) (Signature, error) {
	if len(sigs) == 0 {
		return Signature{}, common.ErrEmptyInput
	}
	acc := sigs[0].point
	for i := 1; i < len(sigs); i++ {
		acc = acc.Add(sigs[i].point)
	}
	return Signature{point: acc}, nil
}

// AggregateVerify checks an aggregate signature against distinct messages
// and their public keys: it requires at least one pair, requires
// all H2(m_i) pairwise distinct, and checks
// prod_i e(pk_i, H2(m_i)) == e(g1, sigma) via a single multi-pairing check.
func AggregateVerify(sig Signature, msgs [][]byte, pks []PublicKey) (bool, error) {
	if len(msgs) == 0 || len(pks) == 0 {
		return false, common.ErrEmptyInput
	}
	if len(msgs) != len(pks) {
		return false, common.ErrLengthMismatch
	}

	hashes := make([]curve.G2, len(msgs))
	seen := make(map[[curve.G2CompressedSize]byte]struct{}, len(msgs))
	for i, m := range msgs {
		h := curve.HashToG2(m)
		b := h.Bytes()
		if _, dup := seen[b]; dup {
			return false, common.ErrInvalidSignature
		}
		seen[b] = struct{}{}
		hashes[i] = h
	}

	// Every pair from index 0 through len-1 participates; an earlier
	// implementation skipped index 0 here, which silently dropped the
	// first signer from the check.
	pairs := make([]curve.PairingPair, 0, len(msgs)+1)
	for i := 0; i < len(msgs); i++ {
		pairs = append(pairs, curve.PairingPair{G1: pks[i].point, G2: hashes[i]})
	}
	pairs = append(pairs, curve.PairingPair{G1: curve.G1Generator(), G2: sig.point.Neg()})

	ok, err := curve.MultiPairingIsIdentity(pairs)
	if err != nil {
		return false, err
	}
	return ok, nil
}
