package cryptox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaintext_EncodeIsIdentity(t *testing.T) {
	s := Plaintext{}
	got, err := s.Encode("pw1")
	require.NoError(t, err)
	assert.Equal(t, "pw1", got)
}

func TestPlaintext_Verify(t *testing.T) {
	s := Plaintext{}

	assert.True(t, s.Verify("pw1", "pw1"))
	assert.False(t, s.Verify("pw1", "PW1"), "comparison is case-sensitive")
	assert.False(t, s.Verify("pw1", "pw1 "))
	assert.False(t, s.Verify("pw1", ""))
	assert.True(t, s.Verify("", ""))
}

func TestBcrypt_EncodeVerify(t *testing.T) {
	s := Bcrypt{Cost: 4} // minimum cost keeps the test fast

	stored, err := s.Encode("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", stored)

	assert.True(t, s.Verify(stored, "secret"))
	assert.False(t, s.Verify(stored, "Secret"))
	assert.False(t, s.Verify(stored, ""))
}

func TestBcrypt_PlaintextRecordDoesNotVerify(t *testing.T) {
	// A record written under Plaintext is not a valid bcrypt hash.
	s := Bcrypt{Cost: 4}
	assert.False(t, s.Verify("pw1", "pw1"))
}

func TestWipe(t *testing.T) {
	b := []byte("secret")
	Wipe(b)
	assert.Equal(t, make([]byte, len("secret")), b)

	Wipe(nil) // must not panic
}
