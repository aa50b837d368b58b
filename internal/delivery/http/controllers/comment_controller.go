package controllers

import (
	"log/slog"
	"net/http"

	"eventhub/internal/domain"
)

// CommentController handles comment endpoints. Comments have no service
// layer; the controller talks to the repositories directly.
type CommentController struct {
	Logger   *slog.Logger
	Comments domain.CommentRepository
	Users    domain.UserRepository
}

// NewCommentController creates a CommentController with the given logger and repositories.
func NewCommentController(logger *slog.Logger, comments domain.CommentRepository, users domain.UserRepository) *CommentController {
	return &CommentController{
		Logger:   logger,
		Comments: comments,
		Users:    users,
	}
}

// List godoc
// @Summary List all comments
// @Description Comments are returned unenriched: username is populated only on the per-event listing.
// @Tags comments
// @Produce json
// @Success 200 {array} domain.Comment
// @Failure 500 {string} string
// @Router /comments [get]
func (c *CommentController) List(w http.ResponseWriter, r *http.Request) {
	comments, err := c.Comments.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteStatus(w, http.StatusInternalServerError)
		return
	}
	WriteJSON(w, http.StatusOK, comments)
}

// ListForEvent godoc
// @Summary List an event's comments with commenter usernames
// @Description Each comment's username is resolved from its user id. When the lookup fails the username is left as-is rather than failing the request.
// @Tags comments
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {array} domain.Comment
// @Failure 500 {string} string
// @Router /comments/events/{id} [get]
func (c *CommentController) ListForEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	comments, err := c.Comments.ListByEventID(r.Context(), eventID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteStatus(w, http.StatusInternalServerError)
		return
	}
	for _, comment := range comments {
		user, err := c.Users.GetByID(r.Context(), comment.UserID)
		if err != nil {
			continue
		}
		comment.Username = user.Username
	}
	WriteJSON(w, http.StatusOK, comments)
}

// Create godoc
// @Summary Post a comment
// @Tags comments
// @Accept json
// @Success 200 {string} string
// @Failure 400 {string} string
// @Router /comments [post]
func (c *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	var comment domain.Comment
	if !DecodeJSON(w, r, &comment) {
		return
	}
	if err := c.Comments.Create(r.Context(), &comment); err != nil {
		// Any persistence failure is reported as a client error here.
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteStatus(w, http.StatusBadRequest)
		return
	}
	WriteStatus(w, http.StatusOK)
}
