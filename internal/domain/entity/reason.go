package entity

import "time"

// Tipos de motivo configurables por el usuario.
const (
	ReasonKindPurchase = "purchase"
	ReasonKindDispatch = "dispatch"
	ReasonKindScrap    = "scrap"
)

// Reason motivo de compra/despacho/baja. La lista alimenta los selectores de
// la UI y los filtros de reportes; el agregador trata los motivos como texto
// opaco, no valida contra esta lista.
type Reason struct {
	ID        string
	Kind      string
	Label     string
	CreatedAt time.Time
}
