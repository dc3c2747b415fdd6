package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAPIKeys(t *testing.T) {
	live, err := GenerateLiveKey()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(live, "pd_live_"))
	assert.Len(t, live, len("pd_live_")+64)

	sandbox, err := GenerateSandboxKey()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sandbox, "pd_sandbox_"))

	// Keys must be unique across calls.
	other, err := GenerateLiveKey()
	require.NoError(t, err)
	assert.NotEqual(t, live, other)
}

func TestSignatureRoundTrip(t *testing.T) {
	payload := []byte(`{"batchNumber":"GB-20260901-7C4E2A"}`)

	sig := GenerateSignature(payload, "secret")
	assert.True(t, VerifySignature(payload, sig, "secret"))
	assert.False(t, VerifySignature(payload, sig, "other-secret"))
	assert.False(t, VerifySignature([]byte("tampered"), sig, "secret"))
}

func TestJWTRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateJWT(7, "ops@printdeck.io")
	require.NoError(t, err)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "ops@printdeck.io", claims.Email)
}

func TestJWTRejectsBadToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := ValidateJWT("not-a-token")
	assert.Error(t, err)
}
