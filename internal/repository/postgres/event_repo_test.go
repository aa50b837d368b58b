package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"eventhub/internal/domain"
)

func TestEventRepository_Create(t *testing.T) {
	ctx := context.Background()
	event := func() *domain.Event {
		return &domain.Event{
			Name:        "Launch party",
			Description: "Office rooftop",
			Location:    "Berlin",
			Date:        "2026-09-01",
			Time:        "19:00",
			Image:       "uploads/party.png",
		}
	}

	t.Run("inserts event and membership rows in one transaction", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO events`).
			WithArgs("Launch party", "Office rooftop", "Berlin", "2026-09-01", "19:00", "uploads/party.png").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))
		mock.ExpectExec(`INSERT INTO event_users`).
			WithArgs(int64(11), int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO event_users`).
			WithArgs(int64(11), int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		repo := NewEventRepository(db)
		e := event()
		require.NoError(t, repo.Create(ctx, e, []int64{1, 2}))
		require.Equal(t, int64(11), e.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("membership insert failure rolls back the event row", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO events`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))
		mock.ExpectExec(`INSERT INTO event_users`).
			WithArgs(int64(11), int64(1)).
			WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		repo := NewEventRepository(db)
		err = repo.Create(ctx, event(), []int64{1})
		require.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no members still commits", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO events`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(12)))
		mock.ExpectCommit()

		repo := NewEventRepository(db)
		require.NoError(t, repo.Create(ctx, event(), nil))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEventRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, name, description, location, date, time, image`).
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "location", "date", "time", "image"}))

		repo := NewEventRepository(db)
		_, err = repo.GetByID(ctx, 99)
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEventRepository_ListMemberIDs(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT user_id\s+FROM event_users\s+WHERE event_id = \$1`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(int64(2)).AddRow(int64(4)))

	repo := NewEventRepository(db)
	ids, err := repo.ListMemberIDs(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, []int64{2, 4}, ids)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("absent id is not an error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
			WithArgs(int64(404)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewEventRepository(db)
		require.NoError(t, repo.Delete(ctx, 404))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
