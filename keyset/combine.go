package keyset

import (
	"github.com/vihu/go-tc/common"
	"github.com/vihu/go-tc/curve"
	"github.com/vihu/go-tc/internal/log"
)

// lagrangeCoefficientsAtZero computes L_k(0) = prod_{j!=k} x_j / (x_j -
// x_k) for every k. The numerator uses the prefix/suffix product trick:
// prefix[k] = prod_{j<k} x_j, suffix[k] = prod_{j>k} x_j, so the numerator
// is prefix[k]*suffix[k]. The denominator is a direct product of the
// (x_j - x_k) terms over j != k, inverted once per share.
func lagrangeCoefficientsAtZero(xs []curve.Scalar) ([]curve.Scalar, error) {
	n := len(xs)
	numerPrefix := make([]curve.Scalar, n+1)
	numerPrefix[0] = curve.OneScalar()
	for k := 0; k < n; k++ {
		numerPrefix[k+1] = numerPrefix[k].Mul(xs[k])
	}
	numerSuffix := make([]curve.Scalar, n+1)
	numerSuffix[n] = curve.OneScalar()
	for k := n - 1; k >= 0; k-- {
		numerSuffix[k] = numerSuffix[k+1].Mul(xs[k])
	}

	coeffs := make([]curve.Scalar, n)
	for k := 0; k < n; k++ {
		numerator := numerPrefix[k].Mul(numerSuffix[k+1])

		denom := curve.OneScalar()
		for j := 0; j < n; j++ {
			if j == k {
				continue
			}
			diff := xs[j].Sub(xs[k])
			if diff.IsZero() {
				return nil, common.ErrDuplicateShare
			}
			denom = denom.Mul(diff)
		}

		inv, err := denom.Invert()
		if err != nil {
			return nil, common.ErrDuplicateShare
		}
		coeffs[k] = numerator.Mul(inv)
	}
	return coeffs, nil
}

// checkShareCount validates there are at least t+1 distinct indices and
// returns the corresponding x-coordinates (index+1).
func checkShareCount(indices []int64, t int) ([]curve.Scalar, error) {
	if len(indices) < t+1 {
		log.DefaultLogger().Warn("threshold", t, "got", len(indices), "reason", "not enough shares")
		return nil, common.ErrNotEnoughShares
	}
	seen := make(map[int64]struct{}, len(indices))
	xs := make([]curve.Scalar, len(indices))
	for k, i := range indices {
		if _, dup := seen[i]; dup {
			log.DefaultLogger().Warn("index", i, "reason", "duplicate share")
			return nil, common.ErrDuplicateShare
		}
		seen[i] = struct{}{}
		x, err := indexToScalar(i)
		if err != nil {
			log.DefaultLogger().Warn("index", i, "reason", "reserved share index")
			return nil, err
		}
		xs[k] = x
	}
	return xs, nil
}

// SignatureShare pairs a share index with node i's partial signature over
// some message, sk_i.sign(m).
type SignatureShare struct {
	Index int64
	Point curve.G2
}

// CombineSignatures reconstructs the master signature from t+1 shares via
// Lagrange interpolation at zero: sigma = sum_k L_k(0) * sigma_k.
func CombineSignatures(shares []SignatureShare, t int) (curve.G2, error) {
	indices := make([]int64, len(shares))
	for i, sh := range shares {
		indices[i] = sh.Index
	}
	xs, err := checkShareCount(indices, t)
	if err != nil {
		return curve.G2{}, err
	}
	coeffs, err := lagrangeCoefficientsAtZero(xs)
	if err != nil {
		return curve.G2{}, err
	}

	result := curve.IdentityG2()
	for k, sh := range shares {
		result = result.Add(sh.Point.Mul(coeffs[k]))
	}
	return result, nil
}

// DecryptionShare pairs a share index with node i's partial decryption
// sk_i * U for some ciphertext.
type DecryptionShare struct {
	Index int64
	Point curve.G1
}

// CombineDecryptionShares reconstructs sk*U from t+1 decryption shares,
// algebraically identical to CombineSignatures but in G1. The caller XORs
// the resulting point's hash against the ciphertext's V to recover the
// plaintext.
func CombineDecryptionShares(shares []DecryptionShare, t int) (curve.G1, error) {
	indices := make([]int64, len(shares))
	for i, sh := range shares {
		indices[i] = sh.Index
	}
	xs, err := checkShareCount(indices, t)
	if err != nil {
		return curve.G1{}, err
	}
	coeffs, err := lagrangeCoefficientsAtZero(xs)
	if err != nil {
		return curve.G1{}, err
	}

	result := curve.IdentityG1()
	for k, sh := range shares {
		result = result.Add(sh.Point.Mul(coeffs[k]))
	}
	return result, nil
}
