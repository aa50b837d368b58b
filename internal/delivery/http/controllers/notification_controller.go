package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"eventhub/internal/domain"
)

// NotificationController handles notification endpoints. Notifications have
// no service layer and no cross-entity enrichment.
type NotificationController struct {
	Logger        *slog.Logger
	Notifications domain.NotificationRepository
}

// NewNotificationController creates a NotificationController with the given logger and repository.
func NewNotificationController(logger *slog.Logger, notifications domain.NotificationRepository) *NotificationController {
	return &NotificationController{
		Logger:        logger,
		Notifications: notifications,
	}
}

// List godoc
// @Summary List all notifications
// @Tags notifications
// @Produce json
// @Success 200 {array} domain.Notification
// @Failure 500 {string} string
// @Router /notifications [get]
func (c *NotificationController) List(w http.ResponseWriter, r *http.Request) {
	ns, err := c.Notifications.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteStatus(w, http.StatusInternalServerError)
		return
	}
	WriteJSON(w, http.StatusOK, ns)
}

// GetByID godoc
// @Summary Get a notification by id
// @Tags notifications
// @Produce json
// @Param id path int true "Notification ID"
// @Success 200 {object} domain.Notification
// @Failure 404 {string} string
// @Failure 500 {string} string
// @Router /notifications/{id} [get]
func (c *NotificationController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	n, err := c.Notifications.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteStatus(w, http.StatusNotFound)
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteStatus(w, http.StatusInternalServerError)
		return
	}
	WriteJSON(w, http.StatusOK, n)
}

// ListForUser godoc
// @Summary List a user's notifications
// @Tags notifications
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} domain.Notification
// @Failure 500 {string} string
// @Router /notifications/users/{id} [get]
func (c *NotificationController) ListForUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	ns, err := c.Notifications.ListByUserID(r.Context(), userID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteStatus(w, http.StatusInternalServerError)
		return
	}
	WriteJSON(w, http.StatusOK, ns)
}

// ListByEmailAndContext godoc
// @Summary List notifications by email and context
// @Description Despite the route, both path values are matched against the context column: the result is every notification whose context equals the email segment or the context segment. Clients depend on the literal behavior.
// @Tags notifications
// @Produce json
// @Param email path string true "Email (matched against context)"
// @Param context path string true "Context"
// @Success 200 {array} domain.Notification
// @Failure 500 {string} string
// @Router /notifications/users/{email}/context/{context} [get]
func (c *NotificationController) ListByEmailAndContext(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")
	context := r.PathValue("context")
	ns, err := c.Notifications.ListByContexts(r.Context(), email, context)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteStatus(w, http.StatusInternalServerError)
		return
	}
	WriteJSON(w, http.StatusOK, ns)
}

// Create godoc
// @Summary Create a notification
// @Tags notifications
// @Accept json
// @Success 201 {string} string
// @Failure 500 {string} string
// @Router /notifications [post]
func (c *NotificationController) Create(w http.ResponseWriter, r *http.Request) {
	var n domain.Notification
	if !DecodeJSON(w, r, &n) {
		return
	}
	if err := c.Notifications.Create(r.Context(), &n); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteStatus(w, http.StatusInternalServerError)
		return
	}
	WriteStatus(w, http.StatusCreated)
}

// CreateBatch godoc
// @Summary Create many notifications
// @Tags notifications
// @Accept json
// @Success 201 {string} string
// @Failure 500 {string} string
// @Router /notifications/all [post]
func (c *NotificationController) CreateBatch(w http.ResponseWriter, r *http.Request) {
	var ns []*domain.Notification
	if !DecodeJSON(w, r, &ns) {
		return
	}
	if err := c.Notifications.CreateBatch(r.Context(), ns); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteStatus(w, http.StatusInternalServerError)
		return
	}
	WriteStatus(w, http.StatusCreated)
}

// Update godoc
// @Summary Update a notification
// @Description Overwrites message and context only. All failures, including an unknown id, are reported as a server error.
// @Tags notifications
// @Accept json
// @Param id path int true "Notification ID"
// @Param body body domain.Notification true "New message and context"
// @Success 200 {string} string
// @Failure 500 {string} string
// @Router /notifications/{id} [put]
func (c *NotificationController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var body domain.Notification
	if !DecodeJSON(w, r, &body) {
		return
	}
	n, err := c.Notifications.GetByID(r.Context(), id)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteStatus(w, http.StatusInternalServerError)
		return
	}
	n.Message = body.Message
	n.Context = body.Context
	if err := c.Notifications.Update(r.Context(), n); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteStatus(w, http.StatusInternalServerError)
		return
	}
	WriteStatus(w, http.StatusOK)
}

// Delete godoc
// @Summary Delete a notification
// @Tags notifications
// @Param id path int true "Notification ID"
// @Success 200 {string} string
// @Failure 500 {string} string
// @Router /notifications/{id} [delete]
func (c *NotificationController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := c.Notifications.Delete(r.Context(), id); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteStatus(w, http.StatusInternalServerError)
		return
	}
	WriteStatus(w, http.StatusOK)
}
