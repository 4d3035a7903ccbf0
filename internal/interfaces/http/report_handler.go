package http

import (
	"bytes"
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/almakhzan/warehouse-api/internal/application/dto"
	"github.com/almakhzan/warehouse-api/internal/application/reporting"
	"github.com/almakhzan/warehouse-api/internal/application/usecase"
	"github.com/almakhzan/warehouse-api/internal/domain"
)

// ReportHandler expone los tres reportes en JSON, CSV y PDF.
type ReportHandler struct {
	uc       *reporting.UseCase
	pdfGen   reporting.PDFGenerator
	settings *usecase.SettingsUseCase
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(uc *reporting.UseCase, pdfGen reporting.PDFGenerator, settings *usecase.SettingsUseCase) *ReportHandler {
	return &ReportHandler{uc: uc, pdfGen: pdfGen, settings: settings}
}

type reportFn func(ctx context.Context, in dto.ReportFilterRequest) (*reporting.Result, error)

// Receiving godoc
// @Summary      Reporte de recepciones
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from         query  string  false  "YYYY-MM-DD"
// @Param        to           query  string  false  "YYYY-MM-DD"
// @Param        supplier_id  query  string  false  "Filtrar por proveedor"
// @Param        category     query  string  false  "Filtrar por categoría"
// @Param        sort         query  string  false  "Columna de orden"
// @Param        desc         query  bool    false  "Orden descendente"
// @Success      200  {object}  dto.ReportResponse
// @Router       /api/reports/receiving [get]
func (h *ReportHandler) Receiving(c *fiber.Ctx) error { return h.json(c, h.uc.Receiving) }

// ReceivingCSV godoc
// @Summary      Reporte de recepciones en CSV
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {string}  string
// @Router       /api/reports/receiving/csv [get]
func (h *ReportHandler) ReceivingCSV(c *fiber.Ctx) error { return h.csv(c, h.uc.Receiving, "recepciones.csv") }

// ReceivingPDF godoc
// @Summary      Reporte de recepciones en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {string}  binary
// @Router       /api/reports/receiving/pdf [get]
func (h *ReportHandler) ReceivingPDF(c *fiber.Ctx) error { return h.pdf(c, h.uc.Receiving, "recepciones.pdf") }

// Dispatch godoc
// @Summary      Reporte de despachos
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from       query  string  false  "YYYY-MM-DD"
// @Param        to         query  string  false  "YYYY-MM-DD"
// @Param        client_id  query  string  false  "Filtrar por cliente"
// @Param        area_id    query  string  false  "Filtrar por área"
// @Param        province_id  query  string  false  "Filtrar por provincia"
// @Param        sort       query  string  false  "Columna de orden"
// @Param        desc       query  bool    false  "Orden descendente"
// @Success      200  {object}  dto.ReportResponse
// @Router       /api/reports/dispatch [get]
func (h *ReportHandler) Dispatch(c *fiber.Ctx) error { return h.json(c, h.uc.Dispatch) }

// DispatchCSV godoc
// @Summary      Reporte de despachos en CSV
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {string}  string
// @Router       /api/reports/dispatch/csv [get]
func (h *ReportHandler) DispatchCSV(c *fiber.Ctx) error { return h.csv(c, h.uc.Dispatch, "despachos.csv") }

// DispatchPDF godoc
// @Summary      Reporte de despachos en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {string}  binary
// @Router       /api/reports/dispatch/pdf [get]
func (h *ReportHandler) DispatchPDF(c *fiber.Ctx) error { return h.pdf(c, h.uc.Dispatch, "despachos.pdf") }

// Claim godoc
// @Summary      Reporte de reclamación financiera
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from       query  string  false  "YYYY-MM-DD"
// @Param        to         query  string  false  "YYYY-MM-DD"
// @Param        client_id  query  string  false  "Filtrar por cliente destino"
// @Param        sort       query  string  false  "Columna de orden"
// @Param        desc       query  bool    false  "Orden descendente"
// @Success      200  {object}  dto.ReportResponse
// @Router       /api/reports/claim [get]
func (h *ReportHandler) Claim(c *fiber.Ctx) error { return h.json(c, h.uc.Claim) }

// ClaimCSV godoc
// @Summary      Reporte de reclamación financiera en CSV
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {string}  string
// @Router       /api/reports/claim/csv [get]
func (h *ReportHandler) ClaimCSV(c *fiber.Ctx) error { return h.csv(c, h.uc.Claim, "reclamacion.csv") }

// ClaimPDF godoc
// @Summary      Reporte de reclamación financiera en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {string}  binary
// @Router       /api/reports/claim/pdf [get]
func (h *ReportHandler) ClaimPDF(c *fiber.Ctx) error { return h.pdf(c, h.uc.Claim, "reclamacion.pdf") }

func (h *ReportHandler) json(c *fiber.Ctx, fn reportFn) error {
	res, err := h.generate(c, fn)
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(toReportResponse(res))
}

func (h *ReportHandler) csv(c *fiber.Ctx, fn reportFn, filename string) error {
	res, err := h.generate(c, fn)
	if err != nil {
		return reportError(c, err)
	}
	var buf bytes.Buffer
	if err := reporting.WriteCSV(&buf, res); err != nil {
		return reportError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

func (h *ReportHandler) pdf(c *fiber.Ctx, fn reportFn, filename string) error {
	res, err := h.generate(c, fn)
	if err != nil {
		return reportError(c, err)
	}
	settings, err := h.settings.Get()
	if err != nil {
		return reportError(c, err)
	}
	doc, err := h.pdfGen.GenerateReportPDF(c.UserContext(), res, settings.CompanyName)
	if err != nil {
		return reportError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(doc)
}

func (h *ReportHandler) generate(c *fiber.Ctx, fn reportFn) (*reporting.Result, error) {
	var in dto.ReportFilterRequest
	if err := c.QueryParser(&in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	return fn(c.UserContext(), in)
}

func toReportResponse(res *reporting.Result) dto.ReportResponse {
	rows := make([]dto.ReportRowDTO, 0, len(res.Rows))
	for i := range res.Rows {
		r := &res.Rows[i]
		rows = append(rows, dto.ReportRowDTO{
			ProductName:  r.ProductName,
			SKU:          r.SKU,
			Counterparty: r.CounterpartyName,
			Reason:       r.Reason,
			UnitPrice:    r.UnitPrice,
			Quantity:     r.Quantity,
			TotalPrice:   r.TotalPrice,
			Date:         r.Date,
			Note:         r.Note,
			Bundle:       r.IsBundle(),
		})
	}
	return dto.ReportResponse{
		Title:      res.Title,
		Rows:       rows,
		GrandTotal: res.GrandTotal,
		Currency:   res.Currency,
	}
}

// reportError mapea errores de generación de reportes a respuestas HTTP.
func reportError(c *fiber.Ctx, err error) error {
	if err == domain.ErrInvalidInput {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filtros de reporte inválidos"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
