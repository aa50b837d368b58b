package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventhub/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes.
// uploadDir is the directory backing the /uploads/ static file route.
func NewRouter(
	users *controllers.UserController,
	events *controllers.EventController,
	invitations *controllers.InvitationController,
	comments *controllers.CommentController,
	notifications *controllers.NotificationController,
	uploadDir string,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Users
	mux.HandleFunc("GET /users", users.List)
	mux.HandleFunc("POST /users", users.Create)
	mux.HandleFunc("POST /users/login", users.Login)
	mux.HandleFunc("GET /users/{id}", users.GetByID)
	mux.HandleFunc("PUT /users/{id}", users.Update)
	mux.HandleFunc("DELETE /users/{id}", users.Delete)

	// Events
	mux.HandleFunc("GET /events", events.List)
	mux.HandleFunc("POST /events", events.Create)
	mux.HandleFunc("GET /events/upcoming/{user_id}", events.Upcoming)
	mux.HandleFunc("GET /events/{id}", events.GetByID)
	mux.HandleFunc("PUT /events/{id}", events.Update)
	mux.HandleFunc("DELETE /events/{id}", events.Delete)

	// Invitations
	mux.HandleFunc("GET /invitations", invitations.List)
	mux.HandleFunc("POST /invitations", invitations.Create)
	mux.HandleFunc("POST /invitations/all", invitations.CreateBatch)
	mux.HandleFunc("GET /invitations/users", invitations.ListByStatusOrEmail)
	mux.HandleFunc("GET /invitations/attendees/{id}", invitations.Attendees)
	mux.HandleFunc("GET /invitations/{id}", invitations.GetByID)
	mux.HandleFunc("PUT /invitations/{id}", invitations.UpdateStatus)
	mux.HandleFunc("DELETE /invitations/{id}", invitations.Delete)

	// Comments
	mux.HandleFunc("GET /comments", comments.List)
	mux.HandleFunc("POST /comments", comments.Create)
	mux.HandleFunc("GET /comments/events/{id}", comments.ListForEvent)

	// Notifications
	mux.HandleFunc("GET /notifications", notifications.List)
	mux.HandleFunc("POST /notifications", notifications.Create)
	mux.HandleFunc("POST /notifications/all", notifications.CreateBatch)
	mux.HandleFunc("GET /notifications/users/{email}/context/{context}", notifications.ListByEmailAndContext)
	mux.HandleFunc("GET /notifications/users/{id}", notifications.ListForUser)
	mux.HandleFunc("GET /notifications/{id}", notifications.GetByID)
	mux.HandleFunc("PUT /notifications/{id}", notifications.Update)
	mux.HandleFunc("DELETE /notifications/{id}", notifications.Delete)

	// Uploaded event images
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir))))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
