package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"eventhub/internal/domain"
)

type fakeCommentRepo struct {
	createFn        func(ctx context.Context, c *domain.Comment) error
	listFn          func(ctx context.Context) ([]*domain.Comment, error)
	listByEventIDFn func(ctx context.Context, eventID int64) ([]*domain.Comment, error)
}

func (f *fakeCommentRepo) Create(ctx context.Context, c *domain.Comment) error {
	return f.createFn(ctx, c)
}

func (f *fakeCommentRepo) List(ctx context.Context) ([]*domain.Comment, error) {
	return f.listFn(ctx)
}

func (f *fakeCommentRepo) ListByEventID(ctx context.Context, eventID int64) ([]*domain.Comment, error) {
	return f.listByEventIDFn(ctx, eventID)
}

func TestCommentController_ListForEvent(t *testing.T) {
	t.Run("usernames are resolved, failed lookups leave the field empty", func(t *testing.T) {
		comments := &fakeCommentRepo{
			listByEventIDFn: func(ctx context.Context, eventID int64) ([]*domain.Comment, error) {
				return []*domain.Comment{
					{ID: 1, UserID: 2, EventID: eventID, Message: "first", Date: "2026-08-01"},
					{ID: 2, UserID: 404, EventID: eventID, Message: "second", Date: "2026-08-02"},
				}, nil
			},
		}
		users := &fakeUserRepo{
			getByIDFn: func(ctx context.Context, id int64) (*domain.User, error) {
				if id == 2 {
					return &domain.User{ID: 2, Username: "alice"}, nil
				}
				return nil, domain.ErrNotFound
			},
		}
		c := NewCommentController(testLogger(), comments, users)

		req := httptest.NewRequest(http.MethodGet, "/comments/events/5", nil)
		req.SetPathValue("id", "5")
		rec := httptest.NewRecorder()
		c.ListForEvent(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got []*domain.Comment
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 2)
		require.Equal(t, "alice", got[0].Username)
		require.Empty(t, got[1].Username)
	})
}

func TestCommentController_Create(t *testing.T) {
	t.Run("success is an empty 200", func(t *testing.T) {
		comments := &fakeCommentRepo{
			createFn: func(ctx context.Context, c *domain.Comment) error {
				require.Equal(t, int64(2), c.UserID)
				require.Equal(t, "hi", c.Message)
				return nil
			},
		}
		c := NewCommentController(testLogger(), comments, &fakeUserRepo{})

		req := httptest.NewRequest(http.MethodPost, "/comments", strings.NewReader(`{"userId":2,"eventId":5,"message":"hi","date":"2026-08-28"}`))
		rec := httptest.NewRecorder()
		c.Create(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Empty(t, rec.Body.String())
	})

	t.Run("persistence failure is reported as a bad request", func(t *testing.T) {
		comments := &fakeCommentRepo{
			createFn: func(ctx context.Context, c *domain.Comment) error {
				return context.DeadlineExceeded
			},
		}
		c := NewCommentController(testLogger(), comments, &fakeUserRepo{})

		req := httptest.NewRequest(http.MethodPost, "/comments", strings.NewReader(`{"userId":2,"eventId":5,"message":"hi"}`))
		rec := httptest.NewRecorder()
		c.Create(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
