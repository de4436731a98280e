package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/herd-lab/follow-the-herd/internal/core/storage"
)

func TestSessionAdapter_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	adapter := NewSessionAdapter(db)
	installedAt := time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(queryGetSession)).
		WithArgs("herd-demo.myshopify.com").
		WillReturnRows(sqlmock.NewRows([]string{"shop", "access_token", "scope", "installed_at", "updated_at"}).
			AddRow("herd-demo.myshopify.com", "shpat_abc123", "write_products,read_orders", installedAt, installedAt))

	sess, err := adapter.Get(context.Background(), "herd-demo.myshopify.com")
	require.NoError(t, err)
	require.Equal(t, "herd-demo.myshopify.com", sess.Shop)
	require.Equal(t, "shpat_abc123", sess.AccessToken)
	require.Equal(t, "write_products,read_orders", sess.Scope)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionAdapter_GetNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	adapter := NewSessionAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta(queryGetSession)).
		WithArgs("never-installed.myshopify.com").
		WillReturnRows(sqlmock.NewRows([]string{"shop", "access_token", "scope", "installed_at", "updated_at"}))

	sess, err := adapter.Get(context.Background(), "never-installed.myshopify.com")
	require.ErrorIs(t, err, storage.ErrNotFound)
	require.Nil(t, sess)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionAdapter_GetQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	adapter := NewSessionAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta(queryGetSession)).
		WithArgs("herd-demo.myshopify.com").
		WillReturnError(errors.New("connection reset"))

	_, err = adapter.Get(context.Background(), "herd-demo.myshopify.com")
	require.Error(t, err)
	require.ErrorContains(t, err, "failed to get session")
	require.NoError(t, mock.ExpectationsWereMet())
}
