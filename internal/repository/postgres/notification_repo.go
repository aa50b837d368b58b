package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventhub/internal/domain"
)

type notificationRepository struct {
	DB *sql.DB
}

func NewNotificationRepository(db *sql.DB) domain.NotificationRepository {
	return &notificationRepository{
		DB: db,
	}
}

func (r *notificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	query := `
		INSERT INTO notifications (user_id, message, context)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, n.UserID, n.Message, n.Context).Scan(&n.ID)
}

func (r *notificationRepository) CreateBatch(ctx context.Context, ns []*domain.Notification) error {
	query := `
		INSERT INTO notifications (user_id, message, context)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	for _, n := range ns {
		if err := r.DB.QueryRowContext(ctx, query, n.UserID, n.Message, n.Context).Scan(&n.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *notificationRepository) GetByID(ctx context.Context, id int64) (*domain.Notification, error) {
	query := `
		SELECT id, user_id, message, context
		FROM notifications
		WHERE id = $1
	`
	n := &domain.Notification{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&n.ID, &n.UserID, &n.Message, &n.Context)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return n, nil
}

func (r *notificationRepository) List(ctx context.Context) ([]*domain.Notification, error) {
	query := `
		SELECT id, user_id, message, context
		FROM notifications
		ORDER BY id
	`
	return r.queryNotifications(ctx, query)
}

func (r *notificationRepository) ListByUserID(ctx context.Context, userID int64) ([]*domain.Notification, error) {
	query := `
		SELECT id, user_id, message, context
		FROM notifications
		WHERE user_id = $1
		ORDER BY id
	`
	return r.queryNotifications(ctx, query, userID)
}

// ListByContexts matches the context column against both arguments. The route
// feeding this passes a user email as context1, so emails match only when a
// notification's context literally holds that email (documented quirk).
func (r *notificationRepository) ListByContexts(ctx context.Context, context1, context2 string) ([]*domain.Notification, error) {
	query := `
		SELECT id, user_id, message, context
		FROM notifications
		WHERE context = $1 OR context = $2
		ORDER BY id
	`
	return r.queryNotifications(ctx, query, context1, context2)
}

func (r *notificationRepository) Update(ctx context.Context, n *domain.Notification) error {
	query := `
		UPDATE notifications
		SET message = $1, context = $2
		WHERE id = $3
	`
	result, err := r.DB.ExecContext(ctx, query, n.Message, n.Context, n.ID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *notificationRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM notifications WHERE id = $1`
	_, err := r.DB.ExecContext(ctx, query, id)
	return err
}

func (r *notificationRepository) queryNotifications(ctx context.Context, query string, args ...any) ([]*domain.Notification, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ns := make([]*domain.Notification, 0)
	for rows.Next() {
		n := &domain.Notification{}
		if err := rows.Scan(&n.ID, &n.UserID, &n.Message, &n.Context); err != nil {
			return nil, err
		}
		ns = append(ns, n)
	}
	return ns, rows.Err()
}
