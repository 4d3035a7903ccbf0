// Package pdf implementa la versión imprimible de los reportes del almacén.
//
// Layout de la página A4 apaisada:
//
//	┌──────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa  │  Título del reporte + Fecha de emisión   │
//	│  ──────────────────────────────────────────────────────────  │
//	│  TABLA: columnas del reporte, una fila por grupo agregado    │
//	│  ──────────────────────────────────────────────────────────  │
//	│  TOTAL GENERAL                                               │
//	└──────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/almakhzan/warehouse-api/internal/application/reporting"
	"github.com/almakhzan/warehouse-api/internal/domain/report"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ reporting.PDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa reporting.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateReportPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateReportPDF(
	_ context.Context,
	res *reporting.Result,
	companyName string,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(res.Title, true).
		WithAuthor(companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(res, companyName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	widths := columnWidths(res.Columns)
	m.AddRows(tableHeaderRow(res, widths))
	for i := range res.Rows {
		m.AddRows(tableDetailRow(&res.Rows[i], res.Columns, widths))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(res))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre de la empresa (izq), título del reporte y fecha de emisión (der).
func headerRow(res *reporting.Result, companyName string) core.Row {
	return row.New(16).Add(
		col.New(6).Add(
			text.New(companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(6).Add(
			text.New(res.Title, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New("Emitido: "+time.Now().Format("2006-01-02"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// columnWidths reparte las 12 columnas de la rejilla de Maroto entre las
// columnas del reporte; el producto y las notas reciben el espacio sobrante.
func columnWidths(columns []report.Column) []int {
	widths := make([]int, len(columns))
	remaining := 12
	wide := 0
	for i, c := range columns {
		if c == report.ColumnProduct || c == report.ColumnNote || c == report.ColumnCounterparty {
			wide++
			continue
		}
		widths[i] = 1
		remaining--
	}
	if wide == 0 {
		widths[len(widths)-1] += remaining
		return widths
	}
	share := remaining / wide
	for i, c := range columns {
		if c == report.ColumnProduct || c == report.ColumnNote || c == report.ColumnCounterparty {
			widths[i] = share
			remaining -= share
		}
	}
	// Resto de la división entera a la primera columna ancha.
	for i, w := range widths {
		if w == share {
			widths[i] += remaining
			break
		}
	}
	return widths
}

func tableHeaderRow(res *reporting.Result, widths []int) core.Row {
	cols := make([]core.Col, 0, len(res.Columns))
	for i, c := range res.Columns {
		cols = append(cols, col.New(widths[i]).Add(
			text.New(reporting.HeaderLabel(c, res.CounterpartyLabel), props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		))
	}
	return row.New(7).Add(cols...)
}

func tableDetailRow(r *report.Row, columns []report.Column, widths []int) core.Row {
	cols := make([]core.Col, 0, len(columns))
	for i, c := range columns {
		cols = append(cols, col.New(widths[i]).Add(
			text.New(reporting.CellValue(r, c), props.Text{Size: 7.5, Top: 1}),
		))
	}
	return row.New(6).Add(cols...)
}

// totalRow: suma general alineada a la derecha.
func totalRow(res *reporting.Result) core.Row {
	return row.New(10).Add(
		col.New(8),
		col.New(2).Add(
			text.New("Total general:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 2, Right: 2,
			}),
		),
		col.New(2).Add(
			text.New(res.GrandTotal.String()+" "+res.Currency, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 2, Right: 1,
			}),
		),
	)
}
