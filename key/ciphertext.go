package key

import (
	"encoding/binary"

	"github.com/vihu/go-tc/common"
	"github.com/vihu/go-tc/curve"
)

// Ciphertext is the (U, V, W) triple produced by PublicKey.Encrypt: U in G1
// is the ephemeral DH point, V is the masked message, W in G2 is the
// well-formedness tag checked by Verify.
type Ciphertext struct {
	u curve.G1
	v []byte
	w curve.G2
}

// Verify is the CCA-lite guard: e(g1, W) == e(U, H12(U, V)). It MUST be
// called (and must pass) before any decryption or decryption-share
// emission.
func (ct Ciphertext) Verify() bool {
	h := curve.HashToG2WithPoint(ct.u, ct.v)
	ok, err := curve.MultiPairingIsIdentity([]curve.PairingPair{
		{G1: curve.G1Generator(), G2: ct.w.Neg()},
		{G1: ct.u, G2: h},
	})
	return err == nil && ok
}

// ExposeV returns the masked-message bytes V, needed by threshold
// decryption once a combined DH point has been reconstructed out of band.
func (ct Ciphertext) ExposeV() []byte { return ct.v }

// Bytes encodes the ciphertext as compressed_G1 || length_v || v ||
// compressed_G2, with length_v a fixed 8-byte big-endian length prefix.
func (ct Ciphertext) Bytes() []byte {
	ub := ct.u.Bytes()
	wb := ct.w.Bytes()
	out := make([]byte, 0, len(ub)+8+len(ct.v)+len(wb))
	out = append(out, ub[:]...)
	var lenBuf [8]byte
	binary.BigEndian.PutUint64(lenBuf[:], uint64(len(ct.v)))
	out = append(out, lenBuf[:]...)
	out = append(out, ct.v...)
	out = append(out, wb[:]...)
	return out
}

// CiphertextFromBytes decodes the encoding produced by Bytes.
func CiphertextFromBytes(b []byte) (Ciphertext, error) {
	if len(b) < curve.G1CompressedSize+8+curve.G2CompressedSize {
		return Ciphertext{}, common.ErrMalformedCiphertext
	}
	off := 0
	u, err := curve.G1FromBytes(b[off : off+curve.G1CompressedSize])
	if err != nil {
		return Ciphertext{}, common.ErrMalformedCiphertext
	}
	off += curve.G1CompressedSize

	vLen := binary.BigEndian.Uint64(b[off : off+8])
	off += 8
	if uint64(len(b)-off-curve.G2CompressedSize) != vLen {
		return Ciphertext{}, common.ErrMalformedCiphertext
	}
	v := append([]byte(nil), b[off:off+int(vLen)]...)
	off += int(vLen)

	w, err := curve.G2FromBytes(b[off : off+curve.G2CompressedSize])
	if err != nil {
		return Ciphertext{}, common.ErrMalformedCiphertext
	}
	return Ciphertext{u: u, v: v, w: w}, nil
}

// CompareCiphertexts defines a total order over ciphertexts: compressed G1
// bytes, then V bytes, then compressed G2 bytes, lexicographically.
func CompareCiphertexts(a, b Ciphertext) int {
	au, bu := a.u.Bytes(), b.u.Bytes()
	if c := compareBytes(au[:], bu[:]); c != 0 {
		return c
	}
	if c := compareBytes(a.v, b.v); c != 0 {
		return c
	}
	aw, bw := a.w.Bytes(), b.w.Bytes()
	return compareBytes(aw[:], bw[:])
}

func compareBytes(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}
