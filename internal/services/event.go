package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"eventhub/internal/domain"
)

type eventService struct {
	eventRepo domain.EventRepository
	userRepo  domain.UserRepository
	files     domain.FileStore
}

// NewEventService creates an EventService with the given repositories and
// file store.
func NewEventService(eventRepo domain.EventRepository, userRepo domain.UserRepository, files domain.FileStore) domain.EventService {
	return &eventService{
		eventRepo: eventRepo,
		userRepo:  userRepo,
		files:     files,
	}
}

func (s *eventService) List(ctx context.Context) ([]*domain.Event, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *eventService) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

// Upcoming includes every event with at least one member whose id differs
// from userID. Events whose only member is the user are excluded; events the
// user never joined are included as long as they have any member at all.
func (s *eventService) Upcoming(ctx context.Context, userID int64) ([]*domain.Event, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	// Membership is fetched per event (N+1); event counts are small and this
	// keeps the filter a plain in-memory scan.
	upcoming := make([]*domain.Event, 0)
	for _, event := range events {
		memberIDs, err := s.eventRepo.ListMemberIDs(ctx, event.ID)
		if err != nil {
			return nil, fmt.Errorf("list event members: %w", err)
		}
		for _, id := range memberIDs {
			if id != userID {
				upcoming = append(upcoming, event)
				break
			}
		}
	}
	return upcoming, nil
}

// Create resolves every member id to an existing user, persists the image,
// and inserts the event with its membership rows. Any missing user id fails
// the whole operation. The image path is set on the event only after the file
// write succeeds.
func (s *eventService) Create(ctx context.Context, event *domain.Event, image io.Reader, filename string, userIDs []int64) (*domain.Event, error) {
	for _, id := range userIDs {
		if _, err := s.userRepo.GetByID(ctx, id); err != nil {
			return nil, fmt.Errorf("resolve user %d: %w", id, err)
		}
	}

	path, err := s.files.Save(image, filename)
	if err != nil {
		return nil, fmt.Errorf("save image: %w", err)
	}
	event.Image = path

	if err := s.eventRepo.Create(ctx, event, userIDs); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

// Update overwrites the five scalar fields and re-saves the image through the
// same path logic as create. Membership is left untouched.
func (s *eventService) Update(ctx context.Context, id int64, name, description, location, date, timeOfDay string, image io.Reader, filename string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	event.Name = name
	event.Description = description
	event.Location = location
	event.Date = date
	event.Time = timeOfDay

	path, err := s.files.Save(image, filename)
	if err != nil {
		return nil, fmt.Errorf("save image: %w", err)
	}
	event.Image = path

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

func (s *eventService) Delete(ctx context.Context, id int64) error {
	return s.eventRepo.Delete(ctx, id)
}
