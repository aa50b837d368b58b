package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"eventhub/internal/domain"
)

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		user    *domain.User
		mock    func(mock sqlmock.Sqlmock)
		wantErr bool
		errIs   error
	}{
		{
			name: "success",
			user: &domain.User{Username: "alice", Email: "alice@example.com", Password: "secret"},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO users`).
					WithArgs("alice", "alice@example.com", "secret").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
			},
		},
		{
			name: "unique violation returns ErrDuplicate",
			user: &domain.User{Username: "alice", Email: "taken@example.com", Password: "secret"},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO users`).
					WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr: true,
			errIs:   domain.ErrDuplicate,
		},
		{
			name: "db error",
			user: &domain.User{Username: "alice", Email: "alice@example.com", Password: "secret"},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO users`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewUserRepository(db)
			err = repo.Create(ctx, tt.user)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errIs != nil {
					require.ErrorIs(t, err, tt.errIs)
				}
			} else {
				require.NoError(t, err)
				require.Equal(t, int64(7), tt.user.ID)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByLogin(t *testing.T) {
	ctx := context.Background()
	userRows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "username", "email", "password"})
	}

	tests := []struct {
		name       string
		credential string
		password   string
		mock       func(mock sqlmock.Sqlmock)
		want       *domain.User
		errIs      error
	}{
		{
			name:       "match by username",
			credential: "alice",
			password:   "secret",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, username, email, password\s+FROM users\s+WHERE \(username = \$1 OR email = \$1\) AND password = \$2`).
					WithArgs("alice", "secret").
					WillReturnRows(userRows().AddRow(int64(1), "alice", "alice@example.com", "secret"))
			},
			want: &domain.User{ID: 1, Username: "alice", Email: "alice@example.com", Password: "secret"},
		},
		{
			name:       "match by email",
			credential: "alice@example.com",
			password:   "secret",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`WHERE \(username = \$1 OR email = \$1\) AND password = \$2`).
					WithArgs("alice@example.com", "secret").
					WillReturnRows(userRows().AddRow(int64(1), "alice", "alice@example.com", "secret"))
			},
			want: &domain.User{ID: 1, Username: "alice", Email: "alice@example.com", Password: "secret"},
		},
		{
			name:       "wrong password is not found, never a partial match",
			credential: "alice",
			password:   "wrong",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`WHERE \(username = \$1 OR email = \$1\) AND password = \$2`).
					WithArgs("alice", "wrong").
					WillReturnRows(userRows())
			},
			errIs: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewUserRepository(db)
			got, err := repo.GetByLogin(ctx, tt.credential, tt.password)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
			} else {
				require.NoError(t, err)
				require.Equal(t, tt.want, got)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByUsernameOrEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("found by either field", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`WHERE username = \$1 OR email = \$2`).
			WithArgs("bob", "bob@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password"}).
				AddRow(int64(3), "bob", "other@example.com", "pw"))

		repo := NewUserRepository(db)
		got, err := repo.GetByUsernameOrEmail(ctx, "bob", "bob@example.com")
		require.NoError(t, err)
		require.Equal(t, int64(3), got.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`WHERE username = \$1 OR email = \$2`).
			WithArgs("bob", "bob@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password"}))

		repo := NewUserRepository(db)
		_, err = repo.GetByUsernameOrEmail(ctx, "bob", "bob@example.com")
		require.ErrorIs(t, err, domain.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deleting an absent id is not an error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
			WithArgs(int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewUserRepository(db)
		require.NoError(t, repo.Delete(ctx, 42))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
