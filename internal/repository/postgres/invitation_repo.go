package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventhub/internal/domain"
)

type invitationRepository struct {
	DB *sql.DB
}

func NewInvitationRepository(db *sql.DB) domain.InvitationRepository {
	return &invitationRepository{
		DB: db,
	}
}

func (r *invitationRepository) Create(ctx context.Context, inv *domain.Invitation) error {
	query := `
		INSERT INTO invitations (event_id, user_email, status)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, inv.EventID, inv.UserEmail, inv.Status).Scan(&inv.ID)
}

// CreateBatch inserts every invitation without a duplicate pre-check; the
// schema has no unique (user_email, event_id) constraint either, so the batch
// path is intentionally looser than single create.
func (r *invitationRepository) CreateBatch(ctx context.Context, invs []*domain.Invitation) error {
	query := `
		INSERT INTO invitations (event_id, user_email, status)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	for _, inv := range invs {
		if err := r.DB.QueryRowContext(ctx, query, inv.EventID, inv.UserEmail, inv.Status).Scan(&inv.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *invitationRepository) GetByID(ctx context.Context, id int64) (*domain.Invitation, error) {
	query := `
		SELECT id, event_id, user_email, status
		FROM invitations
		WHERE id = $1
	`
	inv := &domain.Invitation{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&inv.ID, &inv.EventID, &inv.UserEmail, &inv.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return inv, nil
}

func (r *invitationRepository) List(ctx context.Context) ([]*domain.Invitation, error) {
	query := `
		SELECT id, event_id, user_email, status
		FROM invitations
		ORDER BY id
	`
	return r.queryInvitations(ctx, query)
}

func (r *invitationRepository) ListByStatus(ctx context.Context, status string) ([]*domain.Invitation, error) {
	query := `
		SELECT id, event_id, user_email, status
		FROM invitations
		WHERE status = $1
		ORDER BY id
	`
	return r.queryInvitations(ctx, query, status)
}

func (r *invitationRepository) ListByEmail(ctx context.Context, email string) ([]*domain.Invitation, error) {
	query := `
		SELECT id, event_id, user_email, status
		FROM invitations
		WHERE user_email = $1
		ORDER BY id
	`
	return r.queryInvitations(ctx, query, email)
}

func (r *invitationRepository) ListByEventAndStatus(ctx context.Context, eventID int64, status string) ([]*domain.Invitation, error) {
	query := `
		SELECT id, event_id, user_email, status
		FROM invitations
		WHERE event_id = $1 AND status = $2
		ORDER BY id
	`
	return r.queryInvitations(ctx, query, eventID, status)
}

func (r *invitationRepository) GetByEmailAndEvent(ctx context.Context, email string, eventID int64) (*domain.Invitation, error) {
	query := `
		SELECT id, event_id, user_email, status
		FROM invitations
		WHERE user_email = $1 AND event_id = $2
		LIMIT 1
	`
	inv := &domain.Invitation{}
	err := r.DB.QueryRowContext(ctx, query, email, eventID).Scan(&inv.ID, &inv.EventID, &inv.UserEmail, &inv.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return inv, nil
}

func (r *invitationRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `
		UPDATE invitations
		SET status = $1
		WHERE id = $2
	`
	result, err := r.DB.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *invitationRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM invitations WHERE id = $1`
	_, err := r.DB.ExecContext(ctx, query, id)
	return err
}

func (r *invitationRepository) queryInvitations(ctx context.Context, query string, args ...any) ([]*domain.Invitation, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invs := make([]*domain.Invitation, 0)
	for rows.Next() {
		inv := &domain.Invitation{}
		if err := rows.Scan(&inv.ID, &inv.EventID, &inv.UserEmail, &inv.Status); err != nil {
			return nil, err
		}
		invs = append(invs, inv)
	}
	return invs, rows.Err()
}
