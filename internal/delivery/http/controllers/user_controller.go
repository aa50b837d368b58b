package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"eventhub/internal/domain"
)

// UserController handles user account endpoints.
type UserController struct {
	Logger  *slog.Logger
	Service domain.UserService
}

// NewUserController creates a UserController with the given logger and service.
func NewUserController(logger *slog.Logger, svc domain.UserService) *UserController {
	return &UserController{
		Logger:  logger,
		Service: svc,
	}
}

// LoginRequest is the request body for POST /users/login. Username may hold
// either the username or the email address.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// List godoc
// @Summary List all users
// @Tags users
// @Produce json
// @Success 200 {array} domain.User
// @Failure 500 {string} string
// @Router /users [get]
func (c *UserController) List(w http.ResponseWriter, r *http.Request) {
	users, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteStatus(w, http.StatusInternalServerError)
		return
	}
	WriteJSON(w, http.StatusOK, users)
}

// GetByID godoc
// @Summary Get a user by id
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} domain.User
// @Failure 404 {string} string
// @Router /users/{id} [get]
func (c *UserController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	user, err := c.Service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteStatus(w, http.StatusNotFound)
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteStatus(w, http.StatusInternalServerError)
		return
	}
	WriteJSON(w, http.StatusOK, user)
}

// Create godoc
// @Summary Register a new user
// @Description Rejects with 409 when the username or email is already taken.
// @Tags users
// @Accept json
// @Produce json
// @Param body body domain.User true "User to create"
// @Success 201 {object} domain.ReducedUser
// @Failure 409 {string} string
// @Failure 500 {string} string
// @Router /users [post]
func (c *UserController) Create(w http.ResponseWriter, r *http.Request) {
	var user domain.User
	if !DecodeJSON(w, r, &user) {
		return
	}
	reduced, err := c.Service.Create(r.Context(), &user)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			WriteStatus(w, http.StatusConflict)
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteStatus(w, http.StatusInternalServerError)
		return
	}
	WriteJSON(w, http.StatusCreated, reduced)
}

// Login godoc
// @Summary Log in with username or email plus password
// @Tags users
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} domain.ReducedUser
// @Failure 404 {string} string
// @Router /users/login [post]
func (c *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	reduced, err := c.Service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteStatus(w, http.StatusNotFound)
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteStatus(w, http.StatusInternalServerError)
		return
	}
	WriteJSON(w, http.StatusOK, reduced)
}

// Update godoc
// @Summary Update a user
// @Description Overwrites username, email, and password unconditionally.
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param body body domain.User true "New field values"
// @Success 200 {object} domain.ReducedUser
// @Failure 404 {string} string
// @Failure 500 {string} string
// @Router /users/{id} [put]
func (c *UserController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var details domain.User
	if !DecodeJSON(w, r, &details) {
		return
	}
	reduced, err := c.Service.Update(r.Context(), id, details.Username, details.Email, details.Password)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			WriteStatus(w, http.StatusNotFound)
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteStatus(w, http.StatusInternalServerError)
		return
	}
	WriteJSON(w, http.StatusOK, reduced)
}

// Delete godoc
// @Summary Delete a user
// @Tags users
// @Param id path int true "User ID"
// @Success 204 {string} string
// @Failure 500 {string} string
// @Router /users/{id} [delete]
func (c *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := c.Service.Delete(r.Context(), id); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteStatus(w, http.StatusInternalServerError)
		return
	}
	WriteStatus(w, http.StatusNoContent)
}
