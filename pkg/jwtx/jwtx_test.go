package jwtx

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		Secret:     "test-secret-0123456789",
		Issuer:     "traveldiary",
		Audience:   "traveldiary-api",
		AccessTTL:  time.Hour,
		RefreshTTL: 24 * time.Hour,
	}
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	codec := NewCodec(testConfig())

	token, err := codec.Issue("user-1", time.Hour, "ana@x.com", "Ana")
	require.NoError(t, err)
	require.Len(t, strings.Split(token, "."), 3, "compact JWS has three segments")

	claims, err := codec.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.Subject)
	require.Equal(t, "ana@x.com", claims.Email)
	require.Equal(t, "Ana", claims.Name)
	require.Equal(t, "traveldiary", claims.Issuer)
	require.Contains(t, claims.Audience, "traveldiary-api")
	require.NotEmpty(t, claims.ID, "jti should be set")
	require.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestIssue_RefreshShape(t *testing.T) {
	codec := NewCodec(testConfig())

	token, err := codec.Issue("user-1", 24*time.Hour, "", "")
	require.NoError(t, err)

	claims, err := codec.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.Subject)
	require.Empty(t, claims.Email, "refresh tokens carry only the subject")
	require.Empty(t, claims.Name)
}

func TestVerify_Expired(t *testing.T) {
	codec := NewCodec(testConfig())

	token, err := codec.Issue("user-1", -time.Minute, "", "")
	require.NoError(t, err)

	_, err = codec.Verify(token)
	require.ErrorIs(t, err, ErrExpired)
}

func TestVerify_WrongSecret(t *testing.T) {
	signer := NewCodec(testConfig())

	other := testConfig()
	other.Secret = "a-different-secret"
	verifier := NewCodec(other)

	token, err := signer.Issue("user-1", time.Hour, "", "")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrInvalidSig)
}

func TestVerify_IssuerMismatch(t *testing.T) {
	signer := NewCodec(testConfig())

	other := testConfig()
	other.Issuer = "someone-else"
	verifier := NewCodec(other)

	token, err := signer.Issue("user-1", time.Hour, "", "")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrIssuer)
}

func TestVerify_AudienceMismatch(t *testing.T) {
	signer := NewCodec(testConfig())

	other := testConfig()
	other.Audience = "other-api"
	verifier := NewCodec(other)

	token, err := signer.Issue("user-1", time.Hour, "", "")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrAudience)
}

func TestVerify_Malformed(t *testing.T) {
	codec := NewCodec(testConfig())

	for _, raw := range []string{"", "garbage", "a.b", "a.b.c.d", "not even close"} {
		_, err := codec.Verify(raw)
		require.ErrorIs(t, err, ErrMalformed, "input %q", raw)
	}
}

func TestVerify_TamperedPayload(t *testing.T) {
	codec := NewCodec(testConfig())

	token, err := codec.Issue("user-1", time.Hour, "", "")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	parts[1] = strings.Repeat("A", len(parts[1]))
	_, err = codec.Verify(strings.Join(parts, "."))
	require.Error(t, err)
}

func TestIssue_EmptySecret(t *testing.T) {
	cfg := testConfig()
	cfg.Secret = ""
	codec := NewCodec(cfg)

	_, err := codec.Issue("user-1", time.Hour, "", "")
	require.ErrorIs(t, err, ErrBadConfig)
	require.True(t, IsConfigError(err))
}
