package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/crm-pro/internal/application/audit"
	"github.com/tu-usuario/crm-pro/internal/application/auth"
	"github.com/tu-usuario/crm-pro/internal/application/export"
	"github.com/tu-usuario/crm-pro/internal/application/usecase"
	"github.com/tu-usuario/crm-pro/internal/application/workflow"
	"github.com/tu-usuario/crm-pro/internal/infrastructure/cache"
	"github.com/tu-usuario/crm-pro/internal/infrastructure/mail"
	"github.com/tu-usuario/crm-pro/internal/infrastructure/postgres"
	"github.com/tu-usuario/crm-pro/internal/infrastructure/storage"
	httpRouter "github.com/tu-usuario/crm-pro/internal/interfaces/http"
	"github.com/tu-usuario/crm-pro/pkg/config"
	"github.com/tu-usuario/crm-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB, cfg.Limits.QueryTimeout())
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	contactRepo := postgres.NewContactRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	ticketRepo := postgres.NewTicketRepository(pool)
	followUpRepo := postgres.NewFollowUpRepository(pool)
	commentRepo := postgres.NewCommentRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	attachmentRepo := postgres.NewAttachmentRepository(pool)
	customFieldRepo := postgres.NewCustomFieldRepository(pool)
	auditRepo := postgres.NewAuditRepository(pool)
	guardRepo := postgres.NewGuardRepository(pool)

	recorder := audit.NewRecorder(auditRepo, log, cfg.Limits.QueryTimeout())
	defer recorder.Flush()

	fileStore, err := storage.NewLocalStore(cfg.Storage.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("preparar directorio de uploads")
	}

	// SMTP opcional: sin host, las notificaciones solo se persisten.
	var mailSender usecase.MailSender
	if s := mail.NewSender(cfg.SMTP); s != nil {
		mailSender = s
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo, cache.NewNoop())
	contactUC := usecase.NewContactUseCase(contactRepo, companyRepo)
	taskUC := usecase.NewTaskUseCase(taskRepo, userRepo)
	ticketUC := usecase.NewTicketUseCase(ticketRepo)
	followUpUC := usecase.NewFollowUpUseCase(followUpRepo, companyRepo)
	commentUC := usecase.NewCommentUseCase(commentRepo)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo, userRepo, mailSender, log)
	attachmentUC := usecase.NewAttachmentUseCase(attachmentRepo, fileStore)
	customFieldUC := usecase.NewCustomFieldUseCase(customFieldRepo)
	auditUC := usecase.NewAuditUseCase(auditRepo)
	workflowSvc := workflow.NewService(companyRepo, cfg.Limits.BulkMaxItems)
	exportSvc := export.NewService(companyRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "CRM Pro API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		UserUC:         userUC,
		CompanyUC:      companyUC,
		ContactUC:      contactUC,
		TaskUC:         taskUC,
		TicketUC:       ticketUC,
		FollowUpUC:     followUpUC,
		CommentUC:      commentUC,
		NotificationUC: notificationUC,
		AttachmentUC:   attachmentUC,
		CustomFieldUC:  customFieldUC,
		AuditUC:        auditUC,
		Workflow:       workflowSvc,
		Export:         exportSvc,
		Recorder:       recorder,
		States:         guardRepo,
		JWTSecret:      cfg.JWT.Secret,
		BulkMaxItems:   cfg.Limits.BulkMaxItems,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
