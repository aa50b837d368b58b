package postgres

import (
	"context"
	"database/sql"

	"eventhub/internal/domain"
)

type commentRepository struct {
	DB *sql.DB
}

func NewCommentRepository(db *sql.DB) domain.CommentRepository {
	return &commentRepository{
		DB: db,
	}
}

func (r *commentRepository) Create(ctx context.Context, c *domain.Comment) error {
	// Username is enrichment-only and never persisted.
	query := `
		INSERT INTO comments (user_id, event_id, message, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, c.UserID, c.EventID, c.Message, c.Date).Scan(&c.ID)
}

func (r *commentRepository) List(ctx context.Context) ([]*domain.Comment, error) {
	query := `
		SELECT id, user_id, event_id, message, date
		FROM comments
		ORDER BY id
	`
	return r.queryComments(ctx, query)
}

func (r *commentRepository) ListByEventID(ctx context.Context, eventID int64) ([]*domain.Comment, error) {
	query := `
		SELECT id, user_id, event_id, message, date
		FROM comments
		WHERE event_id = $1
		ORDER BY id
	`
	return r.queryComments(ctx, query, eventID)
}

func (r *commentRepository) queryComments(ctx context.Context, query string, args ...any) ([]*domain.Comment, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]*domain.Comment, 0)
	for rows.Next() {
		c := &domain.Comment{}
		if err := rows.Scan(&c.ID, &c.UserID, &c.EventID, &c.Message, &c.Date); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
