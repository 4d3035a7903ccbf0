package reporting

import (
	"strconv"

	"github.com/almakhzan/warehouse-api/internal/domain/report"
)

// Columnas visibles de cada tipo de reporte, en orden de presentación.
// Enumeración cerrada con mapeos exhaustivos: nada de objetos indexados por
// strings dinámicos.

func receivingColumns() []report.Column {
	return []report.Column{
		report.ColumnDate, report.ColumnProduct, report.ColumnSKU,
		report.ColumnCounterparty, report.ColumnReason, report.ColumnUnitPrice,
		report.ColumnQuantity, report.ColumnTotal, report.ColumnNote,
	}
}

func dispatchColumns() []report.Column {
	return []report.Column{
		report.ColumnDate, report.ColumnProduct, report.ColumnSKU,
		report.ColumnCounterparty, report.ColumnReason, report.ColumnUnitPrice,
		report.ColumnQuantity, report.ColumnTotal, report.ColumnNote,
	}
}

func claimColumns() []report.Column {
	return []report.Column{
		report.ColumnDate, report.ColumnProduct, report.ColumnCounterparty,
		report.ColumnReason, report.ColumnUnitPrice, report.ColumnQuantity,
		report.ColumnTotal,
	}
}

// HeaderLabel etiqueta de encabezado de una columna. counterpartyLabel
// depende del tipo de reporte (proveedor vs cliente).
func HeaderLabel(col report.Column, counterpartyLabel string) string {
	switch col {
	case report.ColumnDate:
		return "Fecha"
	case report.ColumnProduct:
		return "Producto"
	case report.ColumnSKU:
		return "SKU"
	case report.ColumnCounterparty:
		return counterpartyLabel
	case report.ColumnReason:
		return "Motivo"
	case report.ColumnUnitPrice:
		return "Precio unitario"
	case report.ColumnQuantity:
		return "Cantidad"
	case report.ColumnTotal:
		return "Total"
	case report.ColumnNote:
		return "Notas"
	}
	return ""
}

// CellValue celda de una fila para una columna. Mapeo exhaustivo: toda
// columna de la enumeración tiene representación.
func CellValue(row *report.Row, col report.Column) string {
	switch col {
	case report.ColumnDate:
		return row.Date.Format("2006-01-02")
	case report.ColumnProduct:
		return row.ProductName
	case report.ColumnSKU:
		return row.SKU
	case report.ColumnCounterparty:
		return row.CounterpartyName
	case report.ColumnReason:
		return row.Reason
	case report.ColumnUnitPrice:
		return row.UnitPrice.String()
	case report.ColumnQuantity:
		return strconv.Itoa(row.Quantity)
	case report.ColumnTotal:
		return row.TotalPrice.String()
	case report.ColumnNote:
		return row.Note
	}
	return ""
}

// ParseSortColumn traduce el nombre de columna de la query a la enumeración.
func ParseSortColumn(name string) (report.Column, bool) {
	switch name {
	case "date":
		return report.ColumnDate, true
	case "product":
		return report.ColumnProduct, true
	case "sku":
		return report.ColumnSKU, true
	case "counterparty":
		return report.ColumnCounterparty, true
	case "reason":
		return report.ColumnReason, true
	case "unit_price":
		return report.ColumnUnitPrice, true
	case "quantity":
		return report.ColumnQuantity, true
	case "total":
		return report.ColumnTotal, true
	case "note":
		return report.ColumnNote, true
	}
	return 0, false
}
