package report_test

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/almakhzan/warehouse-api/internal/domain/entity"
	"github.com/almakhzan/warehouse-api/internal/domain/report"
)

// ──────────────────────────────────────────────────────────────────────────────
// GroupSpec de prueba: clave estilo reporte de recepción
// (producto-o-paquete | cliente destino | motivo | costo unitario)
// ──────────────────────────────────────────────────────────────────────────────

func testSpec() report.GroupSpec {
	return report.GroupSpec{
		Key: func(it *entity.InventoryItem) string {
			if it.InBundle() {
				return fmt.Sprintf("%s%s|%s", report.BundleKeyPrefix, it.BundleGroupID, it.DestinationClientID)
			}
			return fmt.Sprintf("%s|%s|%s|%s", it.ProductID, it.DestinationClientID, it.PurchaseReason, it.CostPrice.String())
		},
		Init: func(it *entity.InventoryItem) report.Row {
			name := it.ProductID
			if it.InBundle() {
				name = it.BundleName
			}
			return report.Row{
				ProductName:      name,
				CounterpartyName: report.OrDefault(it.DestinationClientID),
				Reason:           report.OrDefault(it.PurchaseReason),
				UnitPrice:        it.CostPrice,
			}
		},
		Date: func(it *entity.InventoryItem) time.Time { return it.PurchaseDate },
	}
}

func item(productID string, cost int64, reason, clientID string) entity.InventoryItem {
	return entity.InventoryItem{
		ProductID:           productID,
		CostPrice:           decimal.NewFromInt(cost),
		PurchaseReason:      reason,
		DestinationClientID: clientID,
		PurchaseDate:        time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	}
}

// Escenario del punto de partida: [P1/100, P1/100, P1/150], mismo cliente y
// motivo → exactamente dos filas (el costo forma parte de la clave).
func TestAggregate_DiscriminaPorCosto(t *testing.T) {
	items := []entity.InventoryItem{
		item("P1", 100, "stock", "c1"),
		item("P1", 100, "stock", "c1"),
		item("P1", 150, "stock", "c1"),
	}

	rows := report.Aggregate(items, testSpec())
	require.Len(t, rows, 2, "mismo producto con costos distintos no se funde")

	byPrice := map[string]report.Row{}
	for _, r := range rows {
		byPrice[r.UnitPrice.String()] = r
	}
	r100 := byPrice["100"]
	assert.Equal(t, 2, r100.Quantity)
	assert.True(t, r100.TotalPrice.Equal(decimal.NewFromInt(200)))

	r150 := byPrice["150"]
	assert.Equal(t, 1, r150.Quantity)
	assert.True(t, r150.TotalPrice.Equal(decimal.NewFromInt(150)))
}

// El conjunto de filas es independiente del orden del input: mismas claves,
// mismas cantidades, mismos totales.
func TestAggregate_IndependienteDelOrden(t *testing.T) {
	items := []entity.InventoryItem{
		item("P1", 100, "stock", "c1"),
		item("P2", 50, "stock", "c1"),
		item("P1", 100, "stock", "c2"),
		item("P1", 150, "repuesto", "c1"),
		item("P2", 50, "stock", "c1"),
	}

	base := report.Aggregate(items, testSpec())

	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 10; trial++ {
		shuffled := make([]entity.InventoryItem, len(items))
		copy(shuffled, items)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		rows := report.Aggregate(shuffled, testSpec())
		require.Len(t, rows, len(base))

		got := map[string]report.Row{}
		for _, r := range rows {
			got[r.Key] = r
		}
		for _, want := range base {
			r, ok := got[want.Key]
			require.True(t, ok, "clave %q presente en todas las permutaciones", want.Key)
			assert.Equal(t, want.Quantity, r.Quantity)
			assert.True(t, want.TotalPrice.Equal(r.TotalPrice))
		}
	}
}

// Una instancia de paquete de 3 piezas con costos [10,20,15] agrega a
// cantidad 1 y total 45: el paquete se valora como un solo SKU.
func TestAggregate_PaqueteComoUnidad(t *testing.T) {
	members := make([]entity.InventoryItem, 0, 3)
	for _, cost := range []int64{10, 20, 15} {
		it := item("p-comp", cost, "stock", "c1")
		it.BundleGroupID = "g1"
		it.BundleName = "Kit FTTH"
		members = append(members, it)
	}

	rows := report.Aggregate(members, testSpec())
	require.Len(t, rows, 1)

	row := rows[0]
	assert.True(t, row.IsBundle())
	assert.Equal(t, 1, row.Quantity, "la instancia cuenta como una unidad")
	assert.True(t, row.TotalPrice.Equal(decimal.NewFromInt(45)))
	assert.True(t, row.UnitPrice.Equal(decimal.NewFromInt(45)), "precio unitario = costo total del paquete")
	assert.Equal(t, "Kit FTTH", row.ProductName)
}

// Dos instancias del mismo paquete no se funden: cada BundleGroupID es una fila.
func TestAggregate_InstanciasSeparadas(t *testing.T) {
	var items []entity.InventoryItem
	for _, g := range []string{"g1", "g2"} {
		it := item("p-comp", 30, "stock", "c1")
		it.BundleGroupID = g
		it.BundleName = "Kit FTTH"
		items = append(items, it)
	}

	rows := report.Aggregate(items, testSpec())
	assert.Len(t, rows, 2)
}

// La fecha representativa de una fila es la más antigua entre los fusionados.
func TestAggregate_FechaMasAntigua(t *testing.T) {
	early := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	late := time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC)

	a := item("P1", 100, "stock", "c1")
	a.PurchaseDate = late
	b := item("P1", 100, "stock", "c1")
	b.PurchaseDate = early

	rows := report.Aggregate([]entity.InventoryItem{a, b}, testSpec())
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Date.Equal(early))
}

// Referencias opcionales ausentes caen al marcador de presentación; la fila
// nunca se excluye.
func TestAggregate_CamposOpcionalesAusentes(t *testing.T) {
	it := item("P1", 100, "", "")

	rows := report.Aggregate([]entity.InventoryItem{it}, testSpec())
	require.Len(t, rows, 1)
	assert.Equal(t, report.Placeholder, rows[0].CounterpartyName)
	assert.Equal(t, report.Placeholder, rows[0].Reason)
	assert.Equal(t, 1, rows[0].Quantity)
}

// La suma general se recalcula del conjunto vigente y coincide con la suma de
// costos de entrada, sin importar el orden aplicado.
func TestGrandTotal_Consistente(t *testing.T) {
	items := []entity.InventoryItem{
		item("P1", 100, "stock", "c1"),
		item("P1", 100, "stock", "c1"),
		item("P2", 75, "stock", "c2"),
	}
	rows := report.Aggregate(items, testSpec())

	want := decimal.NewFromInt(275)
	assert.True(t, report.GrandTotal(rows).Equal(want))

	// reordenar no altera la suma
	var st report.SortState
	st.Toggle(report.ColumnTotal)
	report.Sort(rows, st)
	assert.True(t, report.GrandTotal(rows).Equal(want))

	st.Toggle(report.ColumnTotal)
	report.Sort(rows, st)
	assert.True(t, report.GrandTotal(rows).Equal(want))
}

func TestAggregate_SinItems(t *testing.T) {
	rows := report.Aggregate(nil, testSpec())
	assert.Empty(t, rows)
	assert.True(t, report.GrandTotal(rows).IsZero())
}
