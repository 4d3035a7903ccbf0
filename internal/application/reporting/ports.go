package reporting

import "context"

// PDFGenerator puerto del colaborador de impresión: convierte un reporte ya
// agregado en un documento imprimible. Implementado en infrastructure/pdf.
type PDFGenerator interface {
	GenerateReportPDF(ctx context.Context, res *Result, companyName string) ([]byte, error)
}
