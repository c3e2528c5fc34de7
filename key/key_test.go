package key

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestSignVerify checks a fresh key pair signs and verifies correctly,
// and rejects a signature over a different message.
func TestSignVerify(t *testing.T) {
	sk, err := RandomSecretKey(nil)
	require.NoError(t, err)
	pk := sk.PublicKey()

	m := []byte("Rip and tear, until it's done")
	sig := sk.Sign(m)

	require.True(t, pk.Verify(sig, m))
	require.False(t, pk.Verify(sig, []byte("other")))
}

// TestEncryptDecrypt checks a fresh key pair's encrypt/decrypt round trip.
func TestEncryptDecrypt(t *testing.T) {
	sk, err := RandomSecretKey(nil)
	require.NoError(t, err)
	pk := sk.PublicKey()

	m := []byte("hello")
	ct, err := pk.Encrypt(m, nil)
	require.NoError(t, err)
	require.True(t, ct.Verify())

	got, ok := sk.Decrypt(ct)
	require.True(t, ok)
	require.Equal(t, m, got)

	other, err := RandomSecretKey(nil)
	require.NoError(t, err)
	gotOther, ok := other.Decrypt(ct)
	if ok {
		require.NotEqual(t, m, gotOther)
	}
}

// TestAggregateVerify checks an aggregated signature over distinct
// messages verifies against the aggregated public keys.
func TestAggregateVerify(t *testing.T) {
	sk1, err := RandomSecretKey(nil)
	require.NoError(t, err)
	sk2, err := RandomSecretKey(nil)
	require.NoError(t, err)
	pk1, pk2 := sk1.PublicKey(), sk2.PublicKey()

	m1, m2 := []byte("message one"), []byte("message two")
	sig1, sig2 := sk1.Sign(m1), sk2.Sign(m2)

	agg, err := Aggregate([]Signature{sig1, sig2})
	require.NoError(t, err)

	ok, err := AggregateVerify(agg, [][]byte{m1, m2}, []PublicKey{pk1, pk2})
	require.NoError(t, err)
	require.True(t, ok)

	m3 := []byte("message three")
	ok, err = AggregateVerify(agg, [][]byte{m1, m3}, []PublicKey{pk1, pk2})
	require.NoError(t, err)
	require.False(t, ok)
}

func TestAggregateVerifyRejectsDuplicateMessages(t *testing.T) {
	sk1, err := RandomSecretKey(nil)
	require.NoError(t, err)
	sk2, err := RandomSecretKey(nil)
	require.NoError(t, err)
	pk1, pk2 := sk1.PublicKey(), sk2.PublicKey()

	m := []byte("same message")
	sig1, sig2 := sk1.Sign(m), sk2.Sign(m)
	agg, err := Aggregate([]Signature{sig1, sig2})
	require.NoError(t, err)

	_, err = AggregateVerify(agg, [][]byte{m, m}, []PublicKey{pk1, pk2})
	require.Error(t, err)
}

func TestCiphertextBytesRoundTrip(t *testing.T) {
	sk, err := RandomSecretKey(nil)
	require.NoError(t, err)
	pk := sk.PublicKey()

	ct, err := pk.Encrypt([]byte("round trip me"), nil)
	require.NoError(t, err)

	b := ct.Bytes()
	got, err := CiphertextFromBytes(b)
	require.NoError(t, err)
	require.True(t, got.Verify())

	plain, ok := sk.Decrypt(got)
	require.True(t, ok)
	require.Equal(t, []byte("round trip me"), plain)
}

func TestSecretKeyBytesRoundTrip(t *testing.T) {
	sk, err := RandomSecretKey(nil)
	require.NoError(t, err)
	b := sk.Bytes()
	got, err := SecretKeyFromBytes(b[:])
	require.NoError(t, err)
	require.Equal(t, sk.PublicKey().Bytes(), got.PublicKey().Bytes())
}

func TestPublicKeyEqual(t *testing.T) {
	sk, err := RandomSecretKey(nil)
	require.NoError(t, err)
	pk1 := sk.PublicKey()
	pk2 := sk.PublicKey()
	require.True(t, pk1.Equal(pk2))

	other, err := RandomSecretKey(nil)
	require.NoError(t, err)
	require.False(t, pk1.Equal(other.PublicKey()))
}
