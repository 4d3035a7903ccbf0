package bundle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/almakhzan/warehouse-api/internal/domain/bundle"
	"github.com/almakhzan/warehouse-api/internal/domain/entity"
)

// Instancia de paquete con los productos indicados, compartiendo grupo.
func bundleMembers(groupID, bundleName, bundleProductID string, productIDs ...string) []entity.InventoryItem {
	items := make([]entity.InventoryItem, 0, len(productIDs))
	for _, pid := range productIDs {
		items = append(items, entity.InventoryItem{
			ProductID:       pid,
			BundleGroupID:   groupID,
			BundleName:      bundleName,
			BundleProductID: bundleProductID,
		})
	}
	return items
}

// Definición de referencia: {A:2, B:1}
func completenessCatalog() *bundle.Snapshot {
	a := simpleProduct("p-a", "A", 10)
	b := simpleProduct("p-b", "B", 20)
	kit := bundleProduct("p-kit", "Kit FTTH",
		entity.BundleComponent{ProductID: "p-a", Quantity: 2},
		entity.BundleComponent{ProductID: "p-b", Quantity: 1},
	)
	return bundle.NewSnapshot([]*entity.Product{a, b, kit})
}

func TestCheckCompleteness_InstanciaCompleta(t *testing.T) {
	catalog := completenessCatalog()
	members := bundleMembers("g1", "Kit FTTH", "p-kit", "p-a", "p-a", "p-b")

	assert.Empty(t, bundle.CheckCompleteness(catalog, members),
		"[A,A,B] contra {A:2,B:1} no genera aviso")
}

func TestCheckCompleteness_Faltante(t *testing.T) {
	catalog := completenessCatalog()
	members := bundleMembers("g1", "Kit FTTH", "p-kit", "p-a", "p-b")

	warning := bundle.CheckCompleteness(catalog, members)
	assert.Contains(t, warning, "A (1)", "falta una unidad de A")
	assert.NotContains(t, warning, "B (", "B está completo")
	assert.Contains(t, warning, bundle.IncompleteWarningPrefix)
}

func TestCheckCompleteness_Excedente(t *testing.T) {
	catalog := completenessCatalog()
	// una A de más nunca produce faltante negativo
	members := bundleMembers("g1", "Kit FTTH", "p-kit", "p-a", "p-a", "p-a", "p-b")

	assert.Empty(t, bundle.CheckCompleteness(catalog, members))
}

// Sin definición resoluble el chequeo es un no-op silencioso, no un error.
func TestCheckCompleteness_DefinicionNoResoluble(t *testing.T) {
	catalog := completenessCatalog()
	members := bundleMembers("g1", "Kit renombrado", "", "p-a")

	assert.Empty(t, bundle.CheckCompleteness(catalog, members))
}

// La resolución prefiere el BundleProductID capturado al recibir; el nombre
// es solo respaldo para datos históricos. Un paquete renombrado sigue
// verificándose mientras el id capturado resuelva.
func TestCheckCompleteness_ResuelvePorIDCapturado(t *testing.T) {
	catalog := completenessCatalog()
	members := bundleMembers("g1", "nombre que ya no existe", "p-kit", "p-a")

	warning := bundle.CheckCompleteness(catalog, members)
	assert.Contains(t, warning, "A (1)")
	assert.Contains(t, warning, "B (1)")
}

func TestCheckCompleteness_RespaldoPorNombre(t *testing.T) {
	catalog := completenessCatalog()
	// item migrado sin BundleProductID: resuelve por nombre exacto
	members := bundleMembers("g1", "Kit FTTH", "", "p-a", "p-a")

	warning := bundle.CheckCompleteness(catalog, members)
	assert.Contains(t, warning, "B (1)")
}

// Componente declarado cuyo producto fue borrado del catálogo: el faltante se
// reporta con el marcador de producto desconocido.
func TestCheckCompleteness_ComponenteBorrado(t *testing.T) {
	a := simpleProduct("p-a", "A", 10)
	kit := bundleProduct("p-kit", "Kit FTTH",
		entity.BundleComponent{ProductID: "p-a", Quantity: 1},
		entity.BundleComponent{ProductID: "p-borrado", Quantity: 1},
	)
	catalog := bundle.NewSnapshot([]*entity.Product{a, kit})
	members := bundleMembers("g1", "Kit FTTH", "p-kit", "p-a")

	warning := bundle.CheckCompleteness(catalog, members)
	assert.Contains(t, warning, "منتج غير معروف (1)")
}

func TestCheckCompleteness_SinMiembros(t *testing.T) {
	assert.Empty(t, bundle.CheckCompleteness(completenessCatalog(), nil))
}

func TestAppendWarning(t *testing.T) {
	assert.Equal(t, "nota", bundle.AppendWarning("nota", ""))
	assert.Equal(t, "aviso", bundle.AppendWarning("", "aviso"))
	assert.Equal(t, "nota\naviso", bundle.AppendWarning("nota", "aviso"))
}
