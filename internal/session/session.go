// Package session holds the only shared mutable state in the backend: the
// per-client session, keyed by a cookie-borne session id.
package session

import (
	"context"

	"portfolio-be/internal/models"
)

// Store is the narrow session surface the core depends on. Implementations
// persist the encrypted identity token and the chat history per session id;
// the core never sees the backing storage. Getters treat every failure as
// absence - a session that cannot be read is an empty session.
type Store interface {
	IdentityToken(ctx context.Context, sid string) string
	SetIdentityToken(ctx context.Context, sid, token string) error
	History(ctx context.Context, sid string) []models.ChatTurn
	SetHistory(ctx context.Context, sid string, history []models.ChatTurn) error
	Clear(ctx context.Context, sid string) error
}
