package identity

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("local-dev"))
	require.NoError(t, err)
	return token
}

func TestMockVerifierReadsEmailClaim(t *testing.T) {
	client, err := NewClient(context.Background(), "", true)
	require.NoError(t, err)

	email, err := client.VerifyIDToken(context.Background(), signedToken(t, jwt.MapClaims{"email": "alice@example.com"}))
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email)
}

func TestMockVerifierRejectsMissingEmail(t *testing.T) {
	client, err := NewClient(context.Background(), "", true)
	require.NoError(t, err)

	_, err = client.VerifyIDToken(context.Background(), signedToken(t, jwt.MapClaims{"sub": "uid-1"}))
	assert.Error(t, err)
}

func TestMockVerifierRejectsGarbage(t *testing.T) {
	client, err := NewClient(context.Background(), "", true)
	require.NoError(t, err)

	_, err = client.VerifyIDToken(context.Background(), "not-a-jwt")
	assert.Error(t, err)
}
