package report_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/almakhzan/warehouse-api/internal/domain/report"
)

func rowsFixture() []report.Row {
	return []report.Row{
		{Key: "b", ProductName: "Splitter", Quantity: 3, UnitPrice: decimal.NewFromInt(20), TotalPrice: decimal.NewFromInt(60), Date: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)},
		{Key: "a", ProductName: "Router", Quantity: 1, UnitPrice: decimal.NewFromInt(100), TotalPrice: decimal.NewFromInt(100), Date: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
		{Key: "c", ProductName: "ONT", Quantity: 2, UnitPrice: decimal.NewFromInt(100), TotalPrice: decimal.NewFromInt(200), Date: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
	}
}

func keysOf(rows []report.Row) []string {
	keys := make([]string, len(rows))
	for i, r := range rows {
		keys[i] = r.Key
	}
	return keys
}

func TestSort_Ascendente(t *testing.T) {
	rows := rowsFixture()
	var st report.SortState
	st.Toggle(report.ColumnProduct)

	report.Sort(rows, st)
	assert.Equal(t, []string{"c", "a", "b"}, keysOf(rows), "ONT, Router, Splitter")
}

// Segundo click sobre la misma columna: orden exactamente inverso al primero,
// incluso con valores empatados.
func TestSort_ToggleInvierteExacto(t *testing.T) {
	rows := rowsFixture()
	var st report.SortState

	st.Toggle(report.ColumnUnitPrice) // asc; "a" y "c" empatan en 100
	report.Sort(rows, st)
	asc := keysOf(rows)

	st.Toggle(report.ColumnUnitPrice) // mismo encabezado → desc
	require.True(t, st.Desc)
	report.Sort(rows, st)
	desc := keysOf(rows)

	for i := range asc {
		assert.Equal(t, asc[len(asc)-1-i], desc[i], "posición %d", i)
	}
}

// Click en una columna distinta: vuelve a ascendente aunque la anterior
// estuviera en descendente.
func TestSort_ColumnaDistintaResetea(t *testing.T) {
	var st report.SortState
	st.Toggle(report.ColumnDate)
	st.Toggle(report.ColumnDate)
	require.True(t, st.Desc)

	st.Toggle(report.ColumnQuantity)
	assert.Equal(t, report.ColumnQuantity, st.Column)
	assert.False(t, st.Desc)
}

// El ordenamiento es estable: filas empatadas conservan su orden relativo.
func TestSort_Estable(t *testing.T) {
	rows := []report.Row{
		{Key: "x", Quantity: 1, Reason: "stock"},
		{Key: "y", Quantity: 1, Reason: "stock"},
		{Key: "z", Quantity: 1, Reason: "stock"},
	}
	var st report.SortState
	st.Toggle(report.ColumnReason)

	report.Sort(rows, st)
	assert.Equal(t, []string{"x", "y", "z"}, keysOf(rows))
}

// El zero value no reordena nada.
func TestSort_SinEstadoActivo(t *testing.T) {
	rows := rowsFixture()
	report.Sort(rows, report.SortState{})
	assert.Equal(t, []string{"b", "a", "c"}, keysOf(rows))
}
