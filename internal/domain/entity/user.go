package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin       = "admin"
	RoleStorekeeper = "storekeeper"
	RoleViewer      = "viewer"
)

// User cuenta de operador del almacén.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Name         string
	Role         string // admin | storekeeper | viewer
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
