package entity

import "time"

// Notification es un aviso persistido para un usuario. El envío por correo es
// fire-and-forget: un fallo de entrega nunca afecta la operación que lo originó.
type Notification struct {
	ID        string
	UserID    string
	Subject   string
	Body      string
	ReadAt    *time.Time
	CreatedAt time.Time
}
