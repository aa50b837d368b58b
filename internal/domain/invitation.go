package domain

import "context"

// Invitation statuses are free-text; "accepted" is the only literal the code
// matches against (attendee listing).
const StatusAccepted = "accepted"

// Invitation represents a per-event, per-email invitation. UserEmail is not a
// foreign key; the inviting user is joined ad hoc at read time.
// swagger:model Invitation
type Invitation struct {
	ID        int64  `json:"id"`
	EventID   int64  `json:"eventId"`
	UserEmail string `json:"userEmail"`
	Status    string `json:"status"`
}

// InvitationDetail is the flat enrichment projection served by invitation
// read endpoints: invitation fields joined with the referenced event and the
// inviting user's username. Date holds the event date and time concatenated
// with a space.
// swagger:model InvitationDetail
type InvitationDetail map[string]string

// InvitationRepository defines storage operations for invitations.
type InvitationRepository interface {
	Create(ctx context.Context, inv *Invitation) error
	// CreateBatch inserts all invitations with no duplicate pre-check. The
	// asymmetry with the single-create path is intentional.
	CreateBatch(ctx context.Context, invs []*Invitation) error
	GetByID(ctx context.Context, id int64) (*Invitation, error)
	List(ctx context.Context) ([]*Invitation, error)
	ListByStatus(ctx context.Context, status string) ([]*Invitation, error)
	ListByEmail(ctx context.Context, email string) ([]*Invitation, error)
	ListByEventAndStatus(ctx context.Context, eventID int64, status string) ([]*Invitation, error)
	// GetByEmailAndEvent is the duplicate pre-check lookup for the single
	// create path.
	GetByEmailAndEvent(ctx context.Context, email string, eventID int64) (*Invitation, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
}
