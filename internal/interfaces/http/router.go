package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tu-usuario/crm-pro/internal/application/audit"
	"github.com/tu-usuario/crm-pro/internal/application/auth"
	"github.com/tu-usuario/crm-pro/internal/application/export"
	"github.com/tu-usuario/crm-pro/internal/application/usecase"
	"github.com/tu-usuario/crm-pro/internal/application/workflow"
	"github.com/tu-usuario/crm-pro/internal/domain/rbac"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	UserUC         *usecase.UserUseCase
	CompanyUC      *usecase.CompanyUseCase
	ContactUC      *usecase.ContactUseCase
	TaskUC         *usecase.TaskUseCase
	TicketUC       *usecase.TicketUseCase
	FollowUpUC     *usecase.FollowUpUseCase
	CommentUC      *usecase.CommentUseCase
	NotificationUC *usecase.NotificationUseCase
	AttachmentUC   *usecase.AttachmentUseCase
	CustomFieldUC  *usecase.CustomFieldUseCase
	AuditUC        *usecase.AuditUseCase
	Workflow       *workflow.Service
	Export         *export.Service
	Recorder       *audit.Recorder
	States         repository.EntityStateRepository
	JWTSecret      string
	BulkMaxItems   int
}

// Router registra las rutas de la API. Toda ruta mutante atraviesa la misma
// cadena: auth, permiso de escritura por verbo, guardia de entidad (cuando hay
// :id) y auditoría; el orden importa porque cada guardia asume el anterior.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/health", func(c *fiber.Ctx) error {
		return respondOK(c, fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Metadatos
	metaHandler := NewMetaHandler()
	protected.Get("/meta/permissions", metaHandler.Permissions)

	// Users: administración gateada por canManageUsers; /assignable es para
	// cualquier autenticado que asigne tareas.
	userHandler := NewUserHandler(deps.UserUC)
	users := protected.Group("/users")
	users.Get("/assignable", userHandler.Assignable)
	manageUsers := users.Group("/", RequirePermission(rbac.PermCanManageUsers))
	manageUsers.Post("/", Audited(deps.Recorder, "user"), userHandler.Create)
	manageUsers.Get("/", userHandler.List)
	manageUsers.Get("/:id", userHandler.GetByID)
	manageUsers.Put("/:id", Audited(deps.Recorder, "user"), userHandler.Update)
	manageUsers.Delete("/:id", Audited(deps.Recorder, "user"), userHandler.Delete)

	// Companies: el workflow de finalización valida sus propias reglas, por eso
	// finalize/unfinalize y los lotes no pasan por WritePermission ni EntityGuard.
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.Workflow)
	companies := protected.Group("/companies")
	companyGuard := EntityGuard(deps.States, GuardConfig{EntityType: "company", AllowManagers: true})
	companies.Get("/pending", companyHandler.ListPending)
	companies.Get("/finalized", RequirePermission(rbac.PermCanReadFinalized), companyHandler.ListFinalized)
	companies.Post("/", WritePermission(), Audited(deps.Recorder, "company"), companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", WritePermission(), companyGuard, Audited(deps.Recorder, "company"), companyHandler.Update)
	companies.Delete("/:id", WritePermission(), companyGuard, Audited(deps.Recorder, "company"), companyHandler.Delete)
	companies.Post("/:id/finalize", Audited(deps.Recorder, "company"), companyHandler.Finalize)
	companies.Post("/:id/unfinalize", Audited(deps.Recorder, "company"), companyHandler.Unfinalize)
	companies.Post("/bulk/approve", BulkLimit(deps.BulkMaxItems), Audited(deps.Recorder, "company"), companyHandler.BulkApprove)
	companies.Post("/bulk/reject", BulkLimit(deps.BulkMaxItems), Audited(deps.Recorder, "company"), companyHandler.BulkReject)
	companies.Post("/bulk/import", BulkLimit(deps.BulkMaxItems), Audited(deps.Recorder, "company"), companyHandler.BulkImport)

	// Contacts: heredan la finalización de su empresa en el guard.
	contactHandler := NewContactHandler(deps.ContactUC)
	contacts := protected.Group("/contacts")
	contactGuard := EntityGuard(deps.States, GuardConfig{EntityType: "contact", AllowManagers: true})
	contacts.Post("/", WritePermission(), Audited(deps.Recorder, "contact"), contactHandler.Create)
	contacts.Get("/", contactHandler.ListByCompany)
	contacts.Get("/:id", contactHandler.GetByID)
	contacts.Put("/:id", WritePermission(), contactGuard, Audited(deps.Recorder, "contact"), contactHandler.Update)
	contacts.Delete("/:id", WritePermission(), contactGuard, Audited(deps.Recorder, "contact"), contactHandler.Delete)

	// Tasks: la jerarquía de asignación y la regla "solo status de las propias"
	// viven en el caso de uso; el guard solo aplica ownership a los borrados.
	taskHandler := NewTaskHandler(deps.TaskUC)
	tasks := protected.Group("/tasks")
	tasks.Post("/", Audited(deps.Recorder, "task"), taskHandler.Create)
	tasks.Get("/", taskHandler.List)
	tasks.Get("/mine", taskHandler.ListMine)
	tasks.Get("/:id", taskHandler.GetByID)
	tasks.Put("/:id", Audited(deps.Recorder, "task"), taskHandler.Update)
	tasks.Delete("/:id", WritePermission(),
		EntityGuard(deps.States, GuardConfig{EntityType: "task", AllowManagers: true}),
		Audited(deps.Recorder, "task"), taskHandler.Delete)

	// Tickets: crear depende del flag por-usuario canRaiseTickets (caso de uso).
	ticketHandler := NewTicketHandler(deps.TicketUC)
	tickets := protected.Group("/tickets")
	tickets.Post("/", Audited(deps.Recorder, "ticket"), ticketHandler.Create)
	tickets.Get("/", ticketHandler.List)
	tickets.Get("/:id", ticketHandler.GetByID)
	tickets.Put("/:id", Audited(deps.Recorder, "ticket"), ticketHandler.Update)
	tickets.Delete("/:id", WritePermission(),
		EntityGuard(deps.States, GuardConfig{EntityType: "ticket", AllowManagers: true}),
		Audited(deps.Recorder, "ticket"), ticketHandler.Delete)

	// Follow-ups
	followUpHandler := NewFollowUpHandler(deps.FollowUpUC)
	followups := protected.Group("/followups")
	followUpGuard := EntityGuard(deps.States, GuardConfig{EntityType: "follow_up", AllowManagers: true})
	followups.Post("/", WritePermission(), Audited(deps.Recorder, "follow_up"), followUpHandler.Create)
	followups.Get("/", followUpHandler.ListByCompany)
	followups.Get("/:id", followUpHandler.GetByID)
	followups.Put("/:id", WritePermission(), followUpGuard, Audited(deps.Recorder, "follow_up"), followUpHandler.Update)
	followups.Delete("/:id", WritePermission(), followUpGuard, Audited(deps.Recorder, "follow_up"), followUpHandler.Delete)

	// Comments
	commentHandler := NewCommentHandler(deps.CommentUC)
	comments := protected.Group("/comments")
	comments.Post("/", Audited(deps.Recorder, "comment"), commentHandler.Create)
	comments.Get("/", commentHandler.ListByEntity)
	comments.Delete("/:id", RequirePermission(rbac.PermCanDelete), Audited(deps.Recorder, "comment"), commentHandler.Delete)

	// Notifications: siempre del actor autenticado.
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications := protected.Group("/notifications")
	notifications.Get("/", notificationHandler.ListMine)
	notifications.Post("/:id/read", notificationHandler.MarkRead)

	// Attachments: el borrado lo decide el caso de uso (dueño o canDelete).
	attachmentHandler := NewAttachmentHandler(deps.AttachmentUC)
	attachments := protected.Group("/attachments")
	attachments.Post("/", Audited(deps.Recorder, "attachment"), attachmentHandler.Upload)
	attachments.Get("/", attachmentHandler.ListByEntity)
	attachments.Get("/:id/download", attachmentHandler.Download)
	attachments.Delete("/:id", Audited(deps.Recorder, "attachment"), attachmentHandler.Delete)

	// Custom fields: administración gateada por canManageCustomFields.
	customFieldHandler := NewCustomFieldHandler(deps.CustomFieldUC)
	customFields := protected.Group("/custom-fields")
	customFields.Get("/", customFieldHandler.List)
	manageFields := customFields.Group("/", RequirePermission(rbac.PermCanManageCustomFields))
	manageFields.Post("/", Audited(deps.Recorder, "custom_field"), customFieldHandler.Create)
	manageFields.Put("/:id", Audited(deps.Recorder, "custom_field"), customFieldHandler.Update)
	manageFields.Delete("/:id", Audited(deps.Recorder, "custom_field"), customFieldHandler.Delete)

	// Reports
	reportHandler := NewReportHandler(deps.Export)
	protected.Get("/reports/finalized", RequirePermission(rbac.PermCanExportFinalized), reportHandler.Finalized)

	// Audit log (solo admin)
	auditHandler := NewAuditHandler(deps.AuditUC)
	protected.Get("/audit-logs", RequireRole(rbac.RoleAdmin), auditHandler.List)
}
