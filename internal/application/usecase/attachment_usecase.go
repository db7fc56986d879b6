package usecase

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/rbac"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// AttachmentUseCase adjuntos: metadatos en la base, contenido en el file
// store. Borrar exige ser quien subió el archivo o tener canDelete.
type AttachmentUseCase struct {
	repo  repository.AttachmentRepository
	store FileStore
}

// NewAttachmentUseCase construye el caso de uso.
func NewAttachmentUseCase(repo repository.AttachmentRepository, store FileStore) *AttachmentUseCase {
	return &AttachmentUseCase{repo: repo, store: store}
}

// Upload guarda el contenido en el store bajo una clave opaca y persiste los
// metadatos. Si la persistencia falla, el archivo huérfano se elimina.
func (uc *AttachmentUseCase) Upload(ctx context.Context, actorID string, in dto.CreateAttachmentRequest, fileName, contentType string, size int64, r io.Reader) (*dto.AttachmentResponse, error) {
	key := uuid.New().String()
	if err := uc.store.Put(key, r); err != nil {
		return nil, err
	}
	attachment := &entity.Attachment{
		ID:           uuid.New().String(),
		EntityType:   in.EntityType,
		EntityID:     in.EntityID,
		FileName:     fileName,
		ContentType:  contentType,
		SizeBytes:    size,
		StorageKey:   key,
		UploadedByID: actorID,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(ctx, attachment); err != nil {
		_ = uc.store.Delete(key)
		return nil, err
	}
	return toAttachmentResponse(attachment), nil
}

// Download devuelve los metadatos y un reader del contenido.
func (uc *AttachmentUseCase) Download(ctx context.Context, id string) (*dto.AttachmentResponse, io.ReadCloser, error) {
	attachment, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if attachment == nil {
		return nil, nil, domain.ErrNotFound
	}
	rc, err := uc.store.Get(attachment.StorageKey)
	if err != nil {
		return nil, nil, err
	}
	return toAttachmentResponse(attachment), rc, nil
}

// ListByEntity lista los adjuntos de una entidad.
func (uc *AttachmentUseCase) ListByEntity(ctx context.Context, entityType, entityID string) ([]dto.AttachmentResponse, error) {
	list, err := uc.repo.ListByEntity(ctx, entityType, entityID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AttachmentResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAttachmentResponse(a))
	}
	return items, nil
}

// Delete elimina un adjunto. Solo quien lo subió o un rol con canDelete.
func (uc *AttachmentUseCase) Delete(ctx context.Context, id, actorID, actorRole string) error {
	attachment, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if attachment == nil {
		return domain.ErrNotFound
	}
	if attachment.UploadedByID != actorID && !rbac.Has(actorRole, rbac.PermCanDelete) {
		return domain.ErrForbidden
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = uc.store.Delete(attachment.StorageKey)
	return nil
}

func toAttachmentResponse(a *entity.Attachment) *dto.AttachmentResponse {
	return &dto.AttachmentResponse{
		ID:           a.ID,
		EntityType:   a.EntityType,
		EntityID:     a.EntityID,
		FileName:     a.FileName,
		ContentType:  a.ContentType,
		SizeBytes:    a.SizeBytes,
		UploadedByID: a.UploadedByID,
		CreatedAt:    a.CreatedAt,
	}
}
