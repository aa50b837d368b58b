package controllers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"eventhub/internal/domain"
)

// InvitationController handles invitation endpoints. Invitations have no
// service layer; the controller talks to the repositories directly and does
// the event/user enrichment itself.
type InvitationController struct {
	Logger      *slog.Logger
	Invitations domain.InvitationRepository
	Events      domain.EventRepository
	Users       domain.UserRepository
	Email       domain.EmailService
}

// NewInvitationController creates an InvitationController. email may be nil,
// in which case no invitation emails are sent.
func NewInvitationController(logger *slog.Logger, invitations domain.InvitationRepository, events domain.EventRepository, users domain.UserRepository, email domain.EmailService) *InvitationController {
	return &InvitationController{
		Logger:      logger,
		Invitations: invitations,
		Events:      events,
		Users:       users,
		Email:       email,
	}
}

// detail builds the flat enrichment projection for one invitation. A missing
// event or inviter is a hard failure: there is no recovery path for an
// invitation whose references are broken.
func (c *InvitationController) detail(ctx context.Context, inv *domain.Invitation) (domain.InvitationDetail, error) {
	event, err := c.Events.GetByID(ctx, inv.EventID)
	if err != nil {
		return nil, fmt.Errorf("can't find event with id %d: %w", inv.EventID, err)
	}
	user, err := c.Users.GetByEmail(ctx, inv.UserEmail)
	if err != nil {
		return nil, fmt.Errorf("can't find user with email %s: %w", inv.UserEmail, err)
	}
	return domain.InvitationDetail{
		"event_id":    strconv.FormatInt(event.ID, 10),
		"name":        event.Name,
		"description": event.Description,
		"location":    event.Location,
		"date":        event.Date + " " + event.Time,
		"id":          strconv.FormatInt(inv.ID, 10),
		"status":      inv.Status,
		"username":    user.Username,
		"user_email":  inv.UserEmail,
	}, nil
}

func (c *InvitationController) details(ctx context.Context, invs []*domain.Invitation) ([]domain.InvitationDetail, error) {
	list := make([]domain.InvitationDetail, 0, len(invs))
	for _, inv := range invs {
		d, err := c.detail(ctx, inv)
		if err != nil {
			return nil, err
		}
		list = append(list, d)
	}
	return list, nil
}

// List godoc
// @Summary List all invitations with event and inviter details
// @Tags invitations
// @Produce json
// @Success 200 {array} domain.InvitationDetail
// @Failure 500 {string} string
// @Router /invitations [get]
func (c *InvitationController) List(w http.ResponseWriter, r *http.Request) {
	invs, err := c.Invitations.List(r.Context())
	if err == nil {
		var list []domain.InvitationDetail
		list, err = c.details(r.Context(), invs)
		if err == nil {
			WriteJSON(w, http.StatusOK, list)
			return
		}
	}
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	WriteStatus(w, http.StatusInternalServerError)
}

// GetByID godoc
// @Summary Get one invitation with event and inviter details
// @Tags invitations
// @Produce json
// @Param id path int true "Invitation ID"
// @Success 200 {object} domain.InvitationDetail
// @Failure 404 {string} string
// @Failure 500 {string} string
// @Router /invitations/{id} [get]
func (c *InvitationController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	inv, err := c.Invitations.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteStatus(w, http.StatusNotFound)
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteStatus(w, http.StatusInternalServerError)
		return
	}
	d, err := c.detail(r.Context(), inv)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteStatus(w, http.StatusInternalServerError)
		return
	}
	WriteJSON(w, http.StatusOK, d)
}

// ListByStatusOrEmail godoc
// @Summary List invitations filtered by status or inviter email
// @Description With status set, filters by status; otherwise with email set, filters by inviter email. With neither, the result is an empty list — not all invitations. The branches are exclusive.
// @Tags invitations
// @Produce json
// @Param status query string false "Invitation status"
// @Param email query string false "Inviter email"
// @Success 200 {array} domain.InvitationDetail
// @Failure 500 {string} string
// @Router /invitations/users [get]
func (c *InvitationController) ListByStatusOrEmail(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	email := r.URL.Query().Get("email")

	var (
		invs []*domain.Invitation
		err  error
	)
	switch {
	case status != "":
		invs, err = c.Invitations.ListByStatus(r.Context(), status)
	case email != "":
		invs, err = c.Invitations.ListByEmail(r.Context(), email)
	default:
		invs = []*domain.Invitation{}
	}
	if err == nil {
		var list []domain.InvitationDetail
		list, err = c.details(r.Context(), invs)
		if err == nil {
			WriteJSON(w, http.StatusOK, list)
			return
		}
	}
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	WriteStatus(w, http.StatusInternalServerError)
}

// Create godoc
// @Summary Send one invitation
// @Description Rejects a second invitation for the same (email, event) pair. The pre-check and insert are separate statements; the batch endpoint skips the check entirely.
// @Tags invitations
// @Accept json
// @Produce plain
// @Param body body domain.Invitation true "Invitation"
// @Success 201 {string} string
// @Failure 400 {string} string
// @Failure 500 {string} string
// @Router /invitations [post]
func (c *InvitationController) Create(w http.ResponseWriter, r *http.Request) {
	var inv domain.Invitation
	if !DecodeJSON(w, r, &inv) {
		return
	}

	existing, err := c.Invitations.GetByEmailAndEvent(r.Context(), inv.UserEmail, inv.EventID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		WriteMessage(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}
	if existing != nil {
		WriteMessage(w, http.StatusBadRequest, "Sorry you have already requested to join this event")
		return
	}
	if err := c.Invitations.Create(r.Context(), &inv); err != nil {
		WriteMessage(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	c.sendInvitationEmail(r.Context(), &inv)
	WriteMessage(w, http.StatusCreated, "Send Invitation successfully !!!")
}

// sendInvitationEmail notifies the invitee by email, best effort: failures
// are logged and never change the HTTP response.
func (c *InvitationController) sendInvitationEmail(ctx context.Context, inv *domain.Invitation) {
	if c.Email == nil {
		return
	}
	event, err := c.Events.GetByID(ctx, inv.EventID)
	if err != nil {
		c.Logger.WarnContext(ctx, "skipping invitation email", "invitation_id", inv.ID, "err", err)
		return
	}
	data := &domain.InvitationEmailData{
		Email:     inv.UserEmail,
		EventName: event.Name,
		EventDate: event.Date,
		EventTime: event.Time,
		Location:  event.Location,
	}
	if err := c.Email.SendInvitation(ctx, data); err != nil {
		c.Logger.WarnContext(ctx, "invitation email failed", "invitation_id", inv.ID, "err", err)
	}
}

// CreateBatch godoc
// @Summary Send many invitations
// @Description Bulk insert with no duplicate check, unlike the single-invitation endpoint.
// @Tags invitations
// @Accept json
// @Produce plain
// @Param body body []domain.Invitation true "Invitations"
// @Success 201 {string} string
// @Failure 500 {string} string
// @Router /invitations/all [post]
func (c *InvitationController) CreateBatch(w http.ResponseWriter, r *http.Request) {
	var invs []*domain.Invitation
	if !DecodeJSON(w, r, &invs) {
		return
	}
	if err := c.Invitations.CreateBatch(r.Context(), invs); err != nil {
		WriteMessage(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}
	WriteMessage(w, http.StatusCreated, "Send Invitations successfully !!!")
}

// UpdateStatus godoc
// @Summary Update an invitation's status
// @Description Only the status field is overwritten. An unknown id answers 422, not 404.
// @Tags invitations
// @Accept json
// @Param id path int true "Invitation ID"
// @Param body body domain.Invitation true "Invitation carrying the new status"
// @Success 200 {string} string
// @Failure 422 {string} string
// @Failure 500 {string} string
// @Router /invitations/{id} [put]
func (c *InvitationController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var body domain.Invitation
	if !DecodeJSON(w, r, &body) {
		return
	}
	if _, err := c.Invitations.GetByID(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteStatus(w, http.StatusUnprocessableEntity)
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteStatus(w, http.StatusInternalServerError)
		return
	}
	if err := c.Invitations.UpdateStatus(r.Context(), id, body.Status); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteStatus(w, http.StatusInternalServerError)
		return
	}
	WriteStatus(w, http.StatusOK)
}

// Delete godoc
// @Summary Delete an invitation
// @Tags invitations
// @Param id path int true "Invitation ID"
// @Success 200 {string} string
// @Failure 500 {string} string
// @Router /invitations/{id} [delete]
func (c *InvitationController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := c.Invitations.Delete(r.Context(), id); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteStatus(w, http.StatusInternalServerError)
		return
	}
	WriteStatus(w, http.StatusOK)
}

// Attendees godoc
// @Summary List usernames attending an event
// @Description Usernames of users whose invitation to the event has status "accepted". Accepted invitations whose email matches no user are silently skipped.
// @Tags invitations
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {array} string
// @Failure 500 {string} string
// @Router /invitations/attendees/{id} [get]
func (c *InvitationController) Attendees(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	invs, err := c.Invitations.ListByEventAndStatus(r.Context(), eventID, domain.StatusAccepted)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteStatus(w, http.StatusInternalServerError)
		return
	}

	usernames := make([]string, 0, len(invs))
	for _, inv := range invs {
		user, err := c.Users.GetByEmail(r.Context(), inv.UserEmail)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			WriteStatus(w, http.StatusInternalServerError)
			return
		}
		usernames = append(usernames, user.Username)
	}
	WriteJSON(w, http.StatusOK, usernames)
}
