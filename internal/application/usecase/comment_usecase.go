package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/rbac"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// CommentUseCase comentarios sobre entidades del CRM.
type CommentUseCase struct {
	repo repository.CommentRepository
}

// NewCommentUseCase construye el caso de uso.
func NewCommentUseCase(repo repository.CommentRepository) *CommentUseCase {
	return &CommentUseCase{repo: repo}
}

// Create crea un comentario. Exige canComment.
func (uc *CommentUseCase) Create(ctx context.Context, actorID, actorRole string, in dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if !rbac.Has(actorRole, rbac.PermCanComment) {
		return nil, domain.ErrForbidden
	}
	comment := &entity.Comment{
		ID:         uuid.New().String(),
		EntityType: in.EntityType,
		EntityID:   in.EntityID,
		AuthorID:   actorID,
		Body:       in.Body,
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return toCommentResponse(comment), nil
}

// ListByEntity lista los comentarios de una entidad.
func (uc *CommentUseCase) ListByEntity(ctx context.Context, entityType, entityID string, limit, offset int) (*dto.CommentListResponse, error) {
	list, err := uc.repo.ListByEntity(ctx, entityType, entityID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CommentResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCommentResponse(c))
	}
	return &dto.CommentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un comentario. Exige canDelete en la ruta.
func (uc *CommentUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toCommentResponse(c *entity.Comment) *dto.CommentResponse {
	return &dto.CommentResponse{
		ID:         c.ID,
		EntityType: c.EntityType,
		EntityID:   c.EntityID,
		AuthorID:   c.AuthorID,
		Body:       c.Body,
		CreatedAt:  c.CreatedAt,
	}
}
