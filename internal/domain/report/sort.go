package report

import "sort"

// Column columna ordenable/exportable de un reporte. Enumeración cerrada:
// cada tipo de reporte define su lista de columnas visibles y un mapeo
// exhaustivo columna→celda (ver application/reporting).
type Column int

const (
	ColumnDate Column = iota
	ColumnProduct
	ColumnSKU
	ColumnCounterparty
	ColumnReason
	ColumnUnitPrice
	ColumnQuantity
	ColumnTotal
	ColumnNote
)

// SortState columna activa y dirección del ordenamiento de un reporte.
// El estado vive en el caller (una sesión de UI); el zero value significa
// "sin ordenamiento aplicado".
type SortState struct {
	Column Column
	Desc   bool
	active bool
}

// Toggle aplica la regla de click sobre un encabezado: la misma columna
// activa invierte la dirección; una columna distinta vuelve a ascendente.
func (s *SortState) Toggle(col Column) {
	if s.active && s.Column == col {
		s.Desc = !s.Desc
		return
	}
	s.Column = col
	s.Desc = false
	s.active = true
}

// Active indica si hay un ordenamiento aplicado.
func (s *SortState) Active() bool { return s.active }

// Sort ordena las filas según el estado: orden ascendente estable y, en
// dirección descendente, inversión del resultado ascendente. Así el toggle
// sobre la misma columna produce exactamente el orden inverso, incluso con
// empates. No toca cantidades ni totales; reordenar jamás cambia la suma
// general.
func Sort(rows []Row, state SortState) {
	if !state.active {
		return
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return compare(&rows[i], &rows[j], state.Column)
	})
	if state.Desc {
		for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
			rows[i], rows[j] = rows[j], rows[i]
		}
	}
}

// compare orden ascendente de dos filas por columna.
func compare(a, b *Row, col Column) bool {
	switch col {
	case ColumnDate:
		return a.Date.Before(b.Date)
	case ColumnProduct:
		return a.ProductName < b.ProductName
	case ColumnSKU:
		return a.SKU < b.SKU
	case ColumnCounterparty:
		return a.CounterpartyName < b.CounterpartyName
	case ColumnReason:
		return a.Reason < b.Reason
	case ColumnUnitPrice:
		return a.UnitPrice.Cmp(b.UnitPrice) < 0
	case ColumnQuantity:
		return a.Quantity < b.Quantity
	case ColumnTotal:
		return a.TotalPrice.Cmp(b.TotalPrice) < 0
	case ColumnNote:
		return a.Note < b.Note
	}
	return false
}
