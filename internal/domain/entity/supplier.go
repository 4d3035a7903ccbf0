package entity

import "time"

// Supplier proveedor del que se reciben unidades.
type Supplier struct {
	ID        string
	Name      string
	Phone     string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
