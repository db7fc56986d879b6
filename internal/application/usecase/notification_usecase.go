package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
	"github.com/tu-usuario/crm-pro/pkg/logger"
)

// NotificationUseCase notificaciones persistidas con envío de correo
// fire-and-forget: el fallo de SMTP solo se loguea, nunca se propaga.
type NotificationUseCase struct {
	repo  repository.NotificationRepository
	users repository.UserRepository
	mail  MailSender
	log   *logger.Logger
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(repo repository.NotificationRepository, users repository.UserRepository, mail MailSender, log *logger.Logger) *NotificationUseCase {
	return &NotificationUseCase{repo: repo, users: users, mail: mail, log: log}
}

// Notify persiste la notificación y dispara el correo en segundo plano.
func (uc *NotificationUseCase) Notify(ctx context.Context, userID, subject, body string) (*dto.NotificationResponse, error) {
	notification := &entity.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Subject:   subject,
		Body:      body,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, notification); err != nil {
		return nil, err
	}
	user, err := uc.users.GetByID(ctx, userID)
	if err == nil && user != nil && uc.mail != nil {
		go func(to, subject, body string) {
			if err := uc.mail.Send(to, subject, body); err != nil {
				uc.log.Error().Err(err).Str("to", to).Msg("fallo al enviar correo de notificación")
			}
		}(user.Email, subject, body)
	}
	return toNotificationResponse(notification), nil
}

// ListByUser lista las notificaciones del usuario.
func (uc *NotificationUseCase) ListByUser(ctx context.Context, userID string, limit, offset int) (*dto.NotificationListResponse, error) {
	list, err := uc.repo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		items = append(items, *toNotificationResponse(n))
	}
	return &dto.NotificationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// MarkRead marca como leída una notificación del propio usuario.
func (uc *NotificationUseCase) MarkRead(ctx context.Context, id, userID string) error {
	return uc.repo.MarkRead(ctx, id, userID)
}

func toNotificationResponse(n *entity.Notification) *dto.NotificationResponse {
	return &dto.NotificationResponse{
		ID:        n.ID,
		UserID:    n.UserID,
		Subject:   n.Subject,
		Body:      n.Body,
		ReadAt:    n.ReadAt,
		CreatedAt: n.CreatedAt,
	}
}
