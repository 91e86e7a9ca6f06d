package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(t *testing.T) []byte {
	t.Helper()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return key
}

func TestSealOpenRoundTrip(t *testing.T) {
	c, err := New(testKey(t))
	require.NoError(t, err)

	sealed, err := c.Seal("sk-user-provided-key-12345")
	require.NoError(t, err)
	assert.NotContains(t, sealed, "sk-user")

	plain, err := c.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "sk-user-provided-key-12345", plain)
}

func TestSealProducesFreshNonce(t *testing.T) {
	c, err := New(testKey(t))
	require.NoError(t, err)

	a, err := c.Seal("same plaintext")
	require.NoError(t, err)
	b, err := c.Seal("same plaintext")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestOpenRejectsTampering(t *testing.T) {
	c, err := New(testKey(t))
	require.NoError(t, err)

	sealed, err := c.Seal("secret")
	require.NoError(t, err)

	// Flip a character in the body
	tampered := []byte(sealed)
	mid := len(tampered) / 2
	if tampered[mid] == 'A' {
		tampered[mid] = 'B'
	} else {
		tampered[mid] = 'A'
	}
	_, err = c.Open(string(tampered))
	assert.Error(t, err)
}

func TestOpenRejectsForeignKey(t *testing.T) {
	c1, err := New(testKey(t))
	require.NoError(t, err)
	c2, err := New(testKey(t))
	require.NoError(t, err)

	sealed, err := c1.Seal("secret")
	require.NoError(t, err)

	_, err = c2.Open(sealed)
	assert.Error(t, err)
}

func TestNewRejectsBadKeyLength(t *testing.T) {
	_, err := New(make([]byte, 16))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "32 bytes")
}

func TestNewFromHex(t *testing.T) {
	key := testKey(t)
	c, err := NewFromHex(hex.EncodeToString(key))
	require.NoError(t, err)

	sealed, err := c.Seal("value")
	require.NoError(t, err)
	plain, err := c.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "value", plain)

	_, err = NewFromHex(strings.Repeat("zz", 32))
	assert.Error(t, err)
}

func TestOpenRejectsGarbage(t *testing.T) {
	c, err := New(testKey(t))
	require.NoError(t, err)

	_, err = c.Open("not base64!!!")
	assert.Error(t, err)

	_, err = c.Open("c2hvcnQ=") // valid base64, shorter than a nonce
	assert.Error(t, err)
}
