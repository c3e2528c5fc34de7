package keyset

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vihu/go-tc/common"
	"github.com/vihu/go-tc/curve"
	"github.com/vihu/go-tc/key"
)

// TestThresholdSignatures checks threshold t=10: combine 11 shares to
// recover the master signature; 10 shares must fail.
func TestThresholdSignatures(t *testing.T) {
	const threshold = 10
	sks, err := RandomSecretKeySet(threshold, nil)
	require.NoError(t, err)
	pks := sks.PublicKeySet()

	msg := []byte("threshold message")

	shares := make([]SignatureShare, 0, threshold+1)
	for i := int64(0); i <= threshold; i++ {
		sk, err := sks.SecretKeyShare(i)
		require.NoError(t, err)
		sig := sk.Sign(msg)
		shares = append(shares, SignatureShare{Index: i, Point: sig.Point()})
	}

	combined, err := CombineSignatures(shares, threshold)
	require.NoError(t, err)

	masterPK := key.PublicKeyFromPoint(pks.MasterPublicKey())
	require.True(t, masterPK.Verify(key.SignatureFromPoint(combined), msg))

	_, err = CombineSignatures(shares[:threshold], threshold)
	require.ErrorIs(t, err, common.ErrNotEnoughShares)
}

func TestPublicKeyShareMatchesSecretKeyShare(t *testing.T) {
	sks, err := RandomSecretKeySet(3, nil)
	require.NoError(t, err)
	pks := sks.PublicKeySet()

	for i := int64(0); i < 5; i++ {
		sk, err := sks.SecretKeyShare(i)
		require.NoError(t, err)
		pk, err := pks.PublicKeyShare(i)
		require.NoError(t, err)
		require.True(t, pk.Equal(sk.PublicKey()))
	}
}

func TestCombinePublicKeySets(t *testing.T) {
	sks1, err := RandomSecretKeySet(2, nil)
	require.NoError(t, err)
	sks2, err := RandomSecretKeySet(2, nil)
	require.NoError(t, err)

	combined := sks1.PublicKeySet().Combine(sks2.PublicKeySet())
	want := sks1.MasterSecret().Add(sks2.MasterSecret())
	require.True(t, curve.G1Generator().Mul(want).Equal(combined.MasterPublicKey()))
}

func TestDuplicateShareIndexErrors(t *testing.T) {
	sks, err := RandomSecretKeySet(2, nil)
	require.NoError(t, err)
	msg := []byte("m")

	sk0, err := sks.SecretKeyShare(0)
	require.NoError(t, err)
	sk1, err := sks.SecretKeyShare(1)
	require.NoError(t, err)
	shares := []SignatureShare{
		{Index: 0, Point: sk0.Sign(msg).Point()},
		{Index: 1, Point: sk1.Sign(msg).Point()},
		{Index: 0, Point: sk0.Sign(msg).Point()},
	}
	_, err = CombineSignatures(shares, 2)
	require.Error(t, err)
}

func TestThresholdDecryption(t *testing.T) {
	const threshold = 3
	sks, err := RandomSecretKeySet(threshold, nil)
	require.NoError(t, err)
	pks := sks.PublicKeySet()

	masterPK := key.PublicKeyFromPoint(pks.MasterPublicKey())
	msg := []byte("shared secret")
	ct, err := masterPK.Encrypt(msg, nil)
	require.NoError(t, err)
	require.True(t, ct.Verify())

	shares := make([]DecryptionShare, 0, threshold+1)
	for i := int64(0); i <= threshold; i++ {
		sk, err := sks.SecretKeyShare(i)
		require.NoError(t, err)
		shares = append(shares, DecryptionShare{Index: i, Point: sk.DecryptionShare(ct)})
	}

	combined, err := CombineDecryptionShares(shares, threshold)
	require.NoError(t, err)

	db := combined.Bytes()
	plain := curve.XorWithHash(db[:], ct.ExposeV())
	require.Equal(t, msg, plain)
}

func TestShareIndexReservedForMasterSecretRejected(t *testing.T) {
	sks, err := RandomSecretKeySet(2, nil)
	require.NoError(t, err)
	pks := sks.PublicKeySet()

	_, err = sks.SecretKeyShare(-1)
	require.ErrorIs(t, err, common.ErrNonPositiveShareIndex)

	_, err = pks.PublicKeyShare(-1)
	require.ErrorIs(t, err, common.ErrNonPositiveShareIndex)
}
