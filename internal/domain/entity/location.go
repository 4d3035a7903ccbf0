package entity

import "time"

// Jerarquía de ubicaciones de tres niveles: Provincia 1→N Área 1→N Cliente.
// Se usa como dimensión de agrupación/filtro en los reportes; la única
// invariante es la contención referencial (un área referencia una provincia
// existente; un cliente referencia un área existente).

// Province nivel superior de la jerarquía.
type Province struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// Area nivel intermedio; pertenece a una provincia.
type Area struct {
	ID         string
	ProvinceID string
	Name       string
	CreatedAt  time.Time
}

// Client contraparte de recepciones y despachos; pertenece a un área.
type Client struct {
	ID        string
	AreaID    string
	Name      string
	Phone     string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
