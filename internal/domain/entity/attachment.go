package entity

import "time"

// Attachment es el metadato de un archivo adjunto. El contenido vive en el
// file store (put/get/delete por id opaco); borrar exige ser quien lo subió
// o tener canDelete.
type Attachment struct {
	ID           string
	EntityType   string
	EntityID     string
	FileName     string
	ContentType  string
	SizeBytes    int64
	StorageKey   string // id opaco dentro del file store
	UploadedByID string
	CreatedAt    time.Time
}
