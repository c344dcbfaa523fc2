package service

import (
	"portfolio-be/internal/crypto"
	"portfolio-be/internal/repository"
)

// GuestRole is resolved whenever a session carries no usable identity.
const GuestRole = "guest"

// UnknownEmail is rendered when the session identity cannot be recovered.
const UnknownEmail = "Unknown"

// AuthService defines authentication and session-identity business logic.
type AuthService interface {
	Authenticate(email, password string) (int, error)
	EncryptIdentity(email string) (string, error)
	Email(token string) string
	Role(token string) string
}

type authService struct {
	users  repository.UserRepository
	oneway *crypto.OneWay
	codec  *crypto.Codec
}

// NewAuthService creates a new auth service
func NewAuthService(users repository.UserRepository, oneway *crypto.OneWay, codec *crypto.Codec) AuthService {
	return &authService{users: users, oneway: oneway, codec: codec}
}

// Authenticate reports 1 when the email/password pair matches a stored user
// and 0 otherwise. Comparison happens on digests, never plaintext, and an
// unknown email is indistinguishable from a wrong password.
func (s *authService) Authenticate(email, password string) (int, error) {
	digest, err := s.oneway.Digest(password)
	if err != nil {
		return 0, err
	}

	count, err := s.users.CountByCredentials(email, digest)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 1, nil
	}
	return 0, nil
}

// EncryptIdentity seals an email into the opaque session token.
func (s *authService) EncryptIdentity(email string) (string, error) {
	return s.codec.Encrypt(email)
}

// Email recovers the email behind a session token, or UnknownEmail when the
// token is absent or fails its integrity check.
func (s *authService) Email(token string) string {
	if token == "" {
		return UnknownEmail
	}
	email, err := s.codec.Decrypt(token)
	if err != nil {
		return UnknownEmail
	}
	return email
}

// Role resolves the role stored for the session identity. It never fails: a
// missing token, an undecryptable token, and an unknown user all resolve to
// the guest role.
func (s *authService) Role(token string) string {
	if token == "" {
		return GuestRole
	}

	email, err := s.codec.Decrypt(token)
	if err != nil {
		return GuestRole
	}

	role, found, err := s.users.RoleByEmail(email)
	if err != nil || !found {
		return GuestRole
	}
	return role
}
