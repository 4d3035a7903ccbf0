package reporting_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/almakhzan/warehouse-api/internal/application/reporting"
	"github.com/almakhzan/warehouse-api/internal/domain/report"
)

func csvColumns() []report.Column {
	return []report.Column{
		report.ColumnDate, report.ColumnProduct, report.ColumnCounterparty,
		report.ColumnQuantity, report.ColumnTotal, report.ColumnNote,
	}
}

func parseCSV(t *testing.T, buf *bytes.Buffer) [][]string {
	t.Helper()
	records, err := csv.NewReader(buf).ReadAll()
	require.NoError(t, err)
	return records
}

func TestWriteCSV_EncabezadosFilasYTotal(t *testing.T) {
	res := &reporting.Result{
		CounterpartyLabel: "Proveedor",
		Columns:           csvColumns(),
		Rows: []report.Row{
			{ProductName: "Router", CounterpartyName: "TecnoImport", Quantity: 2, TotalPrice: money("20"), Date: day("2026-02-01")},
			{ProductName: "Antena", CounterpartyName: "TecnoImport", Quantity: 1, TotalPrice: money("4"), Date: day("2026-02-02")},
		},
		GrandTotal: money("24"),
	}

	var buf bytes.Buffer
	require.NoError(t, reporting.WriteCSV(&buf, res))
	records := parseCSV(t, &buf)

	// Encabezados + dos filas + total general.
	require.Len(t, records, 4)
	assert.Equal(t, []string{"Fecha", "Producto", "Proveedor", "Cantidad", "Total", "Notas"}, records[0])
	assert.Equal(t, []string{"2026-02-01", "Router", "TecnoImport", "2", "20", ""}, records[1])
	assert.Equal(t, []string{"2026-02-02", "Antena", "TecnoImport", "1", "4", ""}, records[2])

	total := records[3]
	assert.Equal(t, "Total general", total[0])
	// La suma cae bajo la columna Total; el resto queda vacío.
	assert.Equal(t, "24", total[4])
	assert.Equal(t, "", total[1])
	assert.Equal(t, "", total[5])
}

func TestWriteCSV_EscapaComasComillasYSaltosDeLinea(t *testing.T) {
	res := &reporting.Result{
		CounterpartyLabel: "Cliente",
		Columns:           csvColumns(),
		Rows: []report.Row{{
			ProductName:      `Cable "plano", 5m`,
			CounterpartyName: "La Habana / Centro / ETECSA",
			Quantity:         3,
			TotalPrice:       money("15"),
			Date:             day("2026-02-01"),
			Note:             "pedido urgente\nsegunda línea",
		}},
		GrandTotal: money("15"),
	}

	var buf bytes.Buffer
	require.NoError(t, reporting.WriteCSV(&buf, res))

	// El escape es el de RFC 4180: un lector conforme recupera los valores
	// originales intactos, saltos de línea incluidos.
	records := parseCSV(t, &buf)
	require.Len(t, records, 3)
	assert.Equal(t, `Cable "plano", 5m`, records[1][1])
	assert.Equal(t, "pedido urgente\nsegunda línea", records[1][5])
}

func TestWriteCSV_ReporteVacioLlevaSoloEncabezadosYTotal(t *testing.T) {
	res := &reporting.Result{
		CounterpartyLabel: "Proveedor",
		Columns:           csvColumns(),
		GrandTotal:        money("0"),
	}

	var buf bytes.Buffer
	require.NoError(t, reporting.WriteCSV(&buf, res))
	records := parseCSV(t, &buf)

	require.Len(t, records, 2)
	assert.Equal(t, "Total general", records[1][0])
	assert.Equal(t, "0", records[1][4])
}
