package domain

import "context"

// Notification represents a per-user message with a free-text context
// category.
// swagger:model Notification
type Notification struct {
	ID      int64  `json:"id"`
	UserID  int64  `json:"userId"`
	Message string `json:"message"`
	Context string `json:"context"`
}

// NotificationRepository defines storage operations for notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *Notification) error
	CreateBatch(ctx context.Context, ns []*Notification) error
	GetByID(ctx context.Context, id int64) (*Notification, error)
	List(ctx context.Context) ([]*Notification, error)
	ListByUserID(ctx context.Context, userID int64) ([]*Notification, error)
	// ListByContexts returns notifications whose context column equals either
	// argument. The user-facing route feeds an email path segment as the
	// first argument, so this matches context = <email> OR context = <context>
	// — a documented quirk carried over from the original API surface.
	ListByContexts(ctx context.Context, context1, context2 string) ([]*Notification, error)
	// Update overwrites message and context only.
	Update(ctx context.Context, n *Notification) error
	Delete(ctx context.Context, id int64) error
}
