package dto

import "time"

// CreateAttachmentRequest metadatos del archivo a adjuntar; el contenido va
// en el cuerpo multipart.
type CreateAttachmentRequest struct {
	EntityType string `json:"entity_type" validate:"required,oneof=company contact task ticket"`
	EntityID   string `json:"entity_id" validate:"required,uuid"`
}

// AttachmentResponse salida de un adjunto.
type AttachmentResponse struct {
	ID           string    `json:"id"`
	EntityType   string    `json:"entity_type"`
	EntityID     string    `json:"entity_id"`
	FileName     string    `json:"file_name"`
	ContentType  string    `json:"content_type"`
	SizeBytes    int64     `json:"size_bytes"`
	UploadedByID string    `json:"uploaded_by_id"`
	CreatedAt    time.Time `json:"created_at"`
}
