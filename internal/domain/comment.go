package domain

import "context"

// Comment represents a user comment on an event. Username is never stored; it
// is populated at read time by joining the commenter's user record and is not
// authoritative.
// swagger:model Comment
type Comment struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"userId"`
	EventID  int64  `json:"eventId"`
	Message  string `json:"message"`
	Date     string `json:"date"`
	Username string `json:"username"`
}

// CommentRepository defines storage operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	List(ctx context.Context) ([]*Comment, error)
	ListByEventID(ctx context.Context, eventID int64) ([]*Comment, error)
}
