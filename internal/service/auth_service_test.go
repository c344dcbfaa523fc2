package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-be/internal/crypto"
)

// fakeUserRepo mimics the users table with a single account.
type fakeUserRepo struct {
	email  string
	digest string
	role   string
	err    error
}

func (f *fakeUserRepo) CountByCredentials(email, digest string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	if email == f.email && digest == f.digest {
		return 1, nil
	}
	return 0, nil
}

func (f *fakeUserRepo) RoleByEmail(email string) (string, bool, error) {
	if f.err != nil {
		return "", false, f.err
	}
	if email == f.email {
		return f.role, true, nil
	}
	return "", false, nil
}

func newTestAuth(t *testing.T) (AuthService, *crypto.Codec) {
	t.Helper()
	oneway := crypto.NewOneWay("test-salt", 1024, 8, 1)
	codec := crypto.NewCodec("session-secret")

	digest, err := oneway.Digest("correct-horse")
	require.NoError(t, err)

	repo := &fakeUserRepo{email: "me@example.com", digest: digest, role: "admin"}
	return NewAuthService(repo, oneway, codec), codec
}

func TestAuthenticate_CorrectPassword(t *testing.T) {
	auth, _ := newTestAuth(t)

	success, err := auth.Authenticate("me@example.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, 1, success)
}

func TestAuthenticate_WrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	auth, _ := newTestAuth(t)

	wrongPassword, err := auth.Authenticate("me@example.com", "battery-staple")
	require.NoError(t, err)
	unknownEmail, err2 := auth.Authenticate("nobody@example.com", "correct-horse")
	require.NoError(t, err2)

	assert.Equal(t, 0, wrongPassword)
	assert.Equal(t, 0, unknownEmail)
}

func TestRole_ValidToken(t *testing.T) {
	auth, codec := newTestAuth(t)

	token, err := codec.Encrypt("me@example.com")
	require.NoError(t, err)

	assert.Equal(t, "admin", auth.Role(token))
}

func TestRole_DefaultsToGuest(t *testing.T) {
	auth, codec := newTestAuth(t)

	// No token at all.
	assert.Equal(t, GuestRole, auth.Role(""))

	// A corrupted token.
	assert.Equal(t, GuestRole, auth.Role("garbage-token"))

	// A valid token for an email with no matching user.
	token, err := codec.Encrypt("stranger@example.com")
	require.NoError(t, err)
	assert.Equal(t, GuestRole, auth.Role(token))
}

func TestEmail_RecoversIdentity(t *testing.T) {
	auth, codec := newTestAuth(t)

	token, err := codec.Encrypt("me@example.com")
	require.NoError(t, err)

	assert.Equal(t, "me@example.com", auth.Email(token))
	assert.Equal(t, UnknownEmail, auth.Email(""))
	assert.Equal(t, UnknownEmail, auth.Email("garbage-token"))
}

func TestEncryptIdentity_RoundTripsThroughSession(t *testing.T) {
	auth, _ := newTestAuth(t)

	token, err := auth.EncryptIdentity("me@example.com")
	require.NoError(t, err)
	assert.Equal(t, "me@example.com", auth.Email(token))
}
