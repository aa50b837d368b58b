package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"eventhub/internal/domain"
)

func TestNotificationRepository_ListByContexts(t *testing.T) {
	ctx := context.Background()

	// Both arguments are compared against the context column only; the first
	// one being an email does not widen the match to any other column.
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`WHERE context = \$1 OR context = \$2`).
		WithArgs("alice@example.com", "event").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "message", "context"}).
			AddRow(int64(1), int64(2), "You were invited", "alice@example.com").
			AddRow(int64(2), int64(2), "Event updated", "event"))

	repo := NewNotificationRepository(db)
	ns, err := repo.ListByContexts(ctx, "alice@example.com", "event")
	require.NoError(t, err)
	require.Len(t, ns, 2)
	require.Equal(t, "alice@example.com", ns[0].Context)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("only message and context change", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`UPDATE notifications\s+SET message = \$1, context = \$2\s+WHERE id = \$3`).
			WithArgs("updated", "reminder", int64(4)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewNotificationRepository(db)
		err = repo.Update(ctx, &domain.Notification{ID: 4, UserID: 9, Message: "updated", Context: "reminder"})
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero rows is not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`UPDATE notifications`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewNotificationRepository(db)
		err = repo.Update(ctx, &domain.Notification{ID: 404, Message: "m", Context: "c"})
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNotificationRepository_CreateBatch(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO notifications`).
		WithArgs(int64(1), "hello", "event").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(10)))
	mock.ExpectQuery(`INSERT INTO notifications`).
		WithArgs(int64(2), "hello", "event").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))

	repo := NewNotificationRepository(db)
	ns := []*domain.Notification{
		{UserID: 1, Message: "hello", Context: "event"},
		{UserID: 2, Message: "hello", Context: "event"},
	}
	require.NoError(t, repo.CreateBatch(ctx, ns))
	require.Equal(t, int64(10), ns[0].ID)
	require.Equal(t, int64(11), ns[1].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}
