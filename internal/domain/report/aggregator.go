// Package report implementa el plegado genérico de items de inventario en
// filas de reporte: agrupación por clave compuesta, acumulación de cantidades
// y totales, suma general y ordenamiento estable por columna. Opera sobre
// slices ya filtrados por el caller; nunca consulta la base de datos ni
// escribe nada de vuelta (derivación pura de view-model).
package report

import (
	"time"

	"github.com/almakhzan/warehouse-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// BundleKeyPrefix prefijo de la parte producto de la clave cuando el item
// pertenece a una instancia de paquete.
const BundleKeyPrefix = "bundle-"

// Placeholder valor mostrado cuando una referencia opcional o rota no
// resuelve (proveedor ausente, cliente desconocido, motivo vacío). Las filas
// nunca se excluyen por referencias faltantes.
const Placeholder = "N/A"

// Row fila agregada de un reporte. UnitPrice es el precio de la fila: costo
// unitario para productos simples, costo total de la instancia para paquetes
// (un paquete se valora como un solo SKU, no por componente).
type Row struct {
	Key              string
	ProductName      string
	SKU              string
	CounterpartyName string
	Reason           string
	UnitPrice        decimal.Decimal
	Quantity         int
	TotalPrice       decimal.Decimal
	Date             time.Time // la más antigua entre los items fusionados
	Note             string
	BundleGroupID    string // no vacío cuando la fila es una instancia de paquete
}

// IsBundle indica si la fila agrega una instancia de paquete.
func (r *Row) IsBundle() bool { return r.BundleGroupID != "" }

// GroupSpec define cómo un tipo de reporte agrupa items: la clave compuesta,
// los campos de presentación iniciales de la fila y la fecha representativa
// de cada item. Dos items con claves iguales se funden en una fila; claves
// distintas jamás se funden, aunque el resto coincida (el costo unitario forma
// parte de la clave precisamente para conservar subtotales por tramo de precio).
type GroupSpec struct {
	// Key construye la clave compuesta del item.
	Key func(it *entity.InventoryItem) string
	// Init crea la fila de presentación para la primera aparición de una
	// clave, con cantidad y total en cero.
	Init func(it *entity.InventoryItem) Row
	// Date devuelve la fecha representativa del item (compra o despacho según
	// el tipo de reporte).
	Date func(it *entity.InventoryItem) time.Time
}

// Aggregate pliega los items en filas según la especificación de agrupación.
//
// Acumulación: filas simples suman 1 a la cantidad y el costo del item al
// total por cada item; filas de paquete mantienen cantidad 1 (la instancia
// cuenta como una unidad sin importar cuántas piezas la componen) y acumulan
// el costo de cada pieza en el total. UnitPrice de una fila de paquete
// termina igual a su total.
//
// El conjunto de filas resultante es independiente del orden del slice de
// entrada y determinista para un mismo input + GroupSpec; el orden de salida
// es el de primera aparición de cada clave.
func Aggregate(items []entity.InventoryItem, spec GroupSpec) []Row {
	index := make(map[string]int, len(items))
	rows := make([]Row, 0, len(items))

	for i := range items {
		it := &items[i]
		key := spec.Key(it)

		idx, seen := index[key]
		if !seen {
			row := spec.Init(it)
			row.Key = key
			row.Quantity = 0
			row.TotalPrice = decimal.Zero
			row.Date = spec.Date(it)
			if it.InBundle() {
				row.BundleGroupID = it.BundleGroupID
			}
			rows = append(rows, row)
			idx = len(rows) - 1
			index[key] = idx
		}

		row := &rows[idx]
		if row.IsBundle() {
			row.Quantity = 1
			row.TotalPrice = row.TotalPrice.Add(it.CostPrice)
			row.UnitPrice = row.TotalPrice
		} else {
			row.Quantity++
			row.TotalPrice = row.TotalPrice.Add(it.CostPrice)
		}
		if d := spec.Date(it); d.Before(row.Date) {
			row.Date = d
		}
	}
	return rows
}

// GrandTotal suma TotalPrice de todas las filas. Se recalcula siempre desde
// el conjunto vigente, nunca se cachea: reordenar no lo altera.
func GrandTotal(rows []Row) decimal.Decimal {
	total := decimal.Zero
	for i := range rows {
		total = total.Add(rows[i].TotalPrice)
	}
	return total
}

// OrDefault devuelve el marcador de presentación cuando el valor está vacío.
func OrDefault(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}
