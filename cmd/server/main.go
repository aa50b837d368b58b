// Command server runs the event-management API.
//
// @title eventhub API
// @version 1.0
// @description Event management backend: users, events, invitations, comments, notifications.
// @BasePath /
package main

import (
	"database/sql"
	"net/http"
	"os"
	"strings"

	_ "github.com/lib/pq"

	"eventhub/config"
	_ "eventhub/docs"
	emailadapter "eventhub/internal/adapters/email"
	"eventhub/internal/adapters/storage"
	httpdelivery "eventhub/internal/delivery/http"
	"eventhub/internal/delivery/http/controllers"
	"eventhub/internal/delivery/http/middleware"
	"eventhub/internal/repository/postgres"
	"eventhub/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to connect to database", "err", err)
		os.Exit(1)
	}

	fileStore, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		logger.Error("failed to prepare upload directory", "err", err)
		os.Exit(1)
	}

	mailer, err := emailadapter.NewMailer(emailadapter.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: emailadapter.SESConfig{
			Region:             cfg.Email.SESRegion,
			AccessKeyID:        cfg.Email.SESAccessKeyID,
			SecretAccessKey:    cfg.Email.SESSecretAccessKey,
			InsecureSkipVerify: cfg.Email.InsecureSkipVerify,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}
	emailService := services.NewEmailService(mailer, emailadapter.NewTemplateRenderer())

	userRepo := postgres.NewUserRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	invitationRepo := postgres.NewInvitationRepository(db)
	commentRepo := postgres.NewCommentRepository(db)
	notificationRepo := postgres.NewNotificationRepository(db)

	userService := services.NewUserService(userRepo)
	eventService := services.NewEventService(eventRepo, userRepo, fileStore)

	mux := httpdelivery.NewRouter(
		controllers.NewUserController(logger, userService),
		controllers.NewEventController(logger, eventService),
		controllers.NewInvitationController(logger, invitationRepo, eventRepo, userRepo, emailService),
		controllers.NewCommentController(logger, commentRepo, userRepo),
		controllers.NewNotificationController(logger, notificationRepo),
		cfg.UploadDir,
	)

	handler := middleware.CORS(strings.Split(cfg.AllowedOrigins, ","), middleware.Logging(logger, mux))

	addr := ":" + cfg.Port
	logger.Info("server listening", "addr", addr, "env", cfg.Environment)
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
