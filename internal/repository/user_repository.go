package repository

import (
	"fmt"

	"portfolio-be/internal/database"
)

// UserRepository defines the credential and role lookups used by auth.
type UserRepository interface {
	CountByCredentials(email, digest string) (int, error)
	RoleByEmail(email string) (string, bool, error)
}

type userRepository struct {
	store database.Executor
}

// NewUserRepository creates a new user repository
func NewUserRepository(store database.Executor) UserRepository {
	return &userRepository{store: store}
}

// CountByCredentials counts users matching the email and password digest
// pair. Authentication succeeds iff the count is non-zero.
func (r *userRepository) CountByCredentials(email, digest string) (int, error) {
	rows, err := r.store.Execute(
		"SELECT COUNT(*) AS success FROM users WHERE email = $1 AND password = $2",
		email, digest,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to check credentials: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return int(rowInt64(rows[0], "success")), nil
}

// RoleByEmail returns the stored role for email. The second return is false
// when no such user exists; that is expected absence, not an error.
func (r *userRepository) RoleByEmail(email string) (string, bool, error) {
	rows, err := r.store.Execute("SELECT role FROM users WHERE email = $1", email)
	if err != nil {
		return "", false, fmt.Errorf("failed to look up role: %w", err)
	}
	if len(rows) == 0 {
		return "", false, nil
	}
	return rowString(rows[0], "role"), true, nil
}
