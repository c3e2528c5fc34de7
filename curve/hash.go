package curve

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/sha3"
)

// SHA3_256 hashes data with SHA3-256.
func SHA3_256(data []byte) [32]byte {
	return sha3.Sum256(data)
}

// chachaStream seeds a ChaCha20 keystream with a 32-byte digest, giving a
// deterministic RNG derived from a SHA3-256 digest.
func chachaStream(seed [32]byte) *chacha20.Cipher {
	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce[:])
	if err != nil {
		// seed and nonce are always correctly sized; this cannot fail.
		panic(err)
	}
	return c
}

// streamScalar draws a uniformly random, non-degenerate scalar from a
// ChaCha20 keystream via rejection sampling on the canonical 32-byte value.
func streamScalar(stream *chacha20.Cipher) Scalar {
	zero := make([]byte, ScalarSize)
	buf := make([]byte, ScalarSize)
	for {
		stream.XORKeyStream(buf, zero)
		v := new(big.Int).SetBytes(buf)
		if v.Cmp(fr.Modulus()) < 0 {
			var s Scalar
			s.inner.SetBigInt(v)
			return s
		}
	}
}

// HashToG2 is H₂(m): seeds a ChaCha20 stream with sha3_256(m) and samples a
// uniformly random element of G2 from it by drawing a uniform scalar and
// multiplying the G2 generator — a bijection on the prime-order group, so
// the result is distributed exactly as a direct rejection-sampled curve
// point would be. Reproducible: identical m yields identical output.
func HashToG2(m []byte) G2 {
	digest := SHA3_256(m)
	stream := chachaStream(digest)
	t := streamScalar(stream)
	return G2Generator().Mul(t)
}

// HashToG2WithPoint is H₁₂(U, v): the domain-separation policy that builds
// msg' as v itself when it is short, or sha3_256(v) when it is long, then
// appends the 48-byte compressed encoding of U before hashing to G2. This
// exact length branch (64-byte threshold) must be preserved bit-for-bit.
func HashToG2WithPoint(u G1, v []byte) G2 {
	var msg []byte
	if len(v) <= 64 {
		msg = append(msg, v...)
	} else {
		digest := SHA3_256(v)
		msg = append(msg, digest[:]...)
	}
	ub := u.Bytes()
	msg = append(msg, ub[:]...)
	return HashToG2(msg)
}

// XorWithHash seeds a ChaCha20 stream with sha3_256(compressed(p)) and XORs
// its keystream into data, returning a new slice of the same length.
func XorWithHash(compressedPoint []byte, data []byte) []byte {
	digest := SHA3_256(compressedPoint)
	stream := chachaStream(digest)
	out := make([]byte, len(data))
	stream.XORKeyStream(out, data)
	return out
}
