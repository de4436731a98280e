package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/herd-lab/follow-the-herd/internal/core/storage"
)

// SessionAdapter implements storage.SessionStore for PostgreSQL.
// Sessions are written by the OAuth install flow (outside this service);
// this adapter only reads them to build auth contexts.
type SessionAdapter struct {
	db *sql.DB
}

// NewSessionAdapter creates a session store on an existing connection.
func NewSessionAdapter(db *sql.DB) *SessionAdapter {
	return &SessionAdapter{db: db}
}

// Get returns the stored session for shop, or storage.ErrNotFound when the
// shop has no install record.
func (a *SessionAdapter) Get(ctx context.Context, shop string) (*storage.Session, error) {
	var sess storage.Session
	err := a.db.QueryRowContext(ctx, queryGetSession, shop).Scan(
		&sess.Shop,
		&sess.AccessToken,
		&sess.Scope,
		&sess.InstalledAt,
		&sess.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &sess, nil
}
