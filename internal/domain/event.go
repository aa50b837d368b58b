package domain

import (
	"context"
	"io"
)

// Event represents an event. Date and Time are free-form strings supplied by
// clients; Image is the relative path of the uploaded image file.
//
// Membership (the user many-to-many) is write-side only and never serialized
// back to clients, so it is not part of this struct: it travels as a separate
// id slice on create and is read back through ListMemberIDs.
// swagger:model Event
type Event struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Image       string `json:"image"`
}

// EventRepository defines storage operations for events and their membership
// relation. Event owns the relation: membership rows are written only through
// Create and removed only by delete cascade.
type EventRepository interface {
	// Create inserts the event and its membership rows in one transaction.
	Create(ctx context.Context, event *Event, memberIDs []int64) error
	GetByID(ctx context.Context, id int64) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	// Update overwrites the scalar fields and image path. Membership is never
	// touched by update.
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id int64) error
	ListMemberIDs(ctx context.Context, eventID int64) ([]int64, error)
}

// FileStore persists uploaded files and returns the path to store on the
// owning record.
type FileStore interface {
	Save(file io.Reader, filename string) (path string, err error)
}

// EventService defines the business logic for events.
type EventService interface {
	List(ctx context.Context) ([]*Event, error)
	GetByID(ctx context.Context, id int64) (*Event, error)
	// Upcoming returns every event that has at least one member whose id
	// differs from userID. This is intentionally not "events the user has not
	// joined"; the literal semantic is load-bearing for existing clients.
	Upcoming(ctx context.Context, userID int64) ([]*Event, error)
	Create(ctx context.Context, event *Event, image io.Reader, filename string, userIDs []int64) (*Event, error)
	Update(ctx context.Context, id int64, name, description, location, date, timeOfDay string, image io.Reader, filename string) (*Event, error)
	Delete(ctx context.Context, id int64) error
}
