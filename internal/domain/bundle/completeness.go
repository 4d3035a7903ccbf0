package bundle

import (
	"fmt"
	"strings"

	"github.com/almakhzan/warehouse-api/internal/domain/entity"
)

// IncompleteWarningPrefix prefijo del aviso de paquete incompleto. El texto
// está en árabe porque es el idioma de la operación del almacén; la UI lo
// muestra tal cual en la columna de notas del reporte.
const IncompleteWarningPrefix = "⚠️ الحزمة غير مكتملة - ناقص: "

// unknownProductName marcador para componentes cuyo producto ya no existe.
const unknownProductName = "منتج غير معروف"

// CheckCompleteness compara el contenido real de una instancia de paquete
// (todas las unidades que comparten un BundleGroupID) contra la lista de
// materiales de su definición y devuelve el texto de aviso con los faltantes,
// o "" si está completa o la definición no resuelve.
//
// Resolución de la definición: primero por BundleProductID capturado al
// recibir; si falta o no resuelve, respaldo por coincidencia exacta de nombre
// (datos históricos/migrados). Sin definición no hay verificación: la
// instancia se trata como sin chequeo, no como error.
//
// La verificación es puramente informativa, se recalcula desde cero en cada
// invocación y lee la definición vigente: editar los componentes de un
// paquete cambia retroactivamente qué significa "completo" para instancias
// históricas.
func CheckCompleteness(catalog Catalog, members []entity.InventoryItem) string {
	if len(members) == 0 {
		return ""
	}
	def := resolveDefinition(catalog, &members[0])
	if def == nil {
		return ""
	}

	actual := make(map[string]int, len(members))
	for i := range members {
		actual[members[i].ProductID]++
	}

	var missing []string
	for _, comp := range def.Components {
		short := comp.Quantity - actual[comp.ProductID]
		if short <= 0 {
			continue
		}
		name := unknownProductName
		if p := catalog.ProductByID(comp.ProductID); p != nil {
			name = p.Name
		}
		missing = append(missing, fmt.Sprintf("%s (%d)", name, short))
	}
	if len(missing) == 0 {
		return ""
	}
	return IncompleteWarningPrefix + strings.Join(missing, ", ")
}

// resolveDefinition localiza la definición del paquete para una instancia.
func resolveDefinition(catalog Catalog, first *entity.InventoryItem) *entity.Product {
	if first.BundleProductID != "" {
		if p := catalog.ProductByID(first.BundleProductID); p != nil && p.IsBundle() {
			return p
		}
	}
	if first.BundleName == "" {
		return nil
	}
	return catalog.BundleByName(first.BundleName)
}

// AppendWarning agrega el aviso a una nota existente, separado por salto de
// línea. Con aviso vacío devuelve la nota sin cambios.
func AppendWarning(note, warning string) string {
	if warning == "" {
		return note
	}
	if note == "" {
		return warning
	}
	return note + "\n" + warning
}
