package reporting

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/almakhzan/warehouse-api/internal/domain/report"
)

// WriteCSV serializa un reporte en CSV RFC 4180 (comas, comillas y saltos de
// línea embebidos quedan escapados por encoding/csv): encabezados, una fila
// por agrupación y una fila final con la suma general.
func WriteCSV(w io.Writer, res *Result) error {
	cw := csv.NewWriter(w)

	headers := make([]string, len(res.Columns))
	for i, col := range res.Columns {
		headers[i] = HeaderLabel(col, res.CounterpartyLabel)
	}
	if err := cw.Write(headers); err != nil {
		return fmt.Errorf("escribir encabezados: %w", err)
	}

	record := make([]string, len(res.Columns))
	for i := range res.Rows {
		for j, col := range res.Columns {
			record[j] = CellValue(&res.Rows[i], col)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("escribir fila: %w", err)
		}
	}

	total := make([]string, len(res.Columns))
	if len(total) > 0 {
		total[0] = "Total general"
	}
	for j, col := range res.Columns {
		if col == report.ColumnTotal {
			total[j] = res.GrandTotal.String()
		}
	}
	if err := cw.Write(total); err != nil {
		return fmt.Errorf("escribir total: %w", err)
	}

	cw.Flush()
	return cw.Error()
}
