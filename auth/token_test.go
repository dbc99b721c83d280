package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssuer_RoundTrip(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("super-secret", time.Hour)

	token, err := issuer.Issue("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestIssuer_Expired(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("super-secret", -1*time.Second)

	token, err := issuer.Issue("user-123")
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	assert.Error(t, err)
}

func TestIssuer_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := NewIssuer("right-secret", time.Hour).Issue("user-123")
	require.NoError(t, err)

	_, err = NewIssuer("wrong-secret", time.Hour).Verify(token)
	assert.Error(t, err)
}

func TestIssuer_TamperedToken(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("super-secret", time.Hour)
	token, err := issuer.Issue("user-123")
	require.NoError(t, err)

	_, err = issuer.Verify(token + "x")
	assert.Error(t, err)
}

func TestIssuer_Malformed(t *testing.T) {
	t.Parallel()

	issuer := NewIssuer("super-secret", time.Hour)

	_, err := issuer.Verify("not.a.jwt")
	assert.Error(t, err)
}
