package http

import (
	"bytes"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/emergencias-api/internal/application/dto"
	"github.com/tu-usuario/emergencias-api/internal/application/export"
)

// ExportHandler descarga el conjunto filtrado en CSV, XLSX o PDF. Los tres
// formatos comparten la misma consulta (y la misma regla de reintento sin
// fechas cuando el rango pedido no arroja resultados).
type ExportHandler struct {
	uc  *export.UseCase
	pdf export.RecordPDFGenerator
}

// NewExportHandler construye el handler de exportaciones.
func NewExportHandler(uc *export.UseCase, pdf export.RecordPDFGenerator) *ExportHandler {
	return &ExportHandler{uc: uc, pdf: pdf}
}

// CSV godoc
// @Summary      Exportar registros a CSV (UTF-8 con BOM)
// @Tags         exportar
// @Produce      text/csv
// @Security     BearerAuth
// @Param        hospital  query  string  false  "solo admin"
// @Param        desde     query  string  false  "YYYY-MM-DD inclusivo"
// @Param        hasta     query  string  false  "YYYY-MM-DD inclusivo"
// @Success      200  {file}  file
// @Router       /api/exportar/csv [get]
func (h *ExportHandler) CSV(c *fiber.Ctx) error {
	res, err := h.uc.Run(GetActor(c), c.Query("hospital"), c.Query("desde"), c.Query("hasta"))
	if err != nil {
		return domainError(c, err)
	}
	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, res.Records); err != nil {
		return domainError(c, err)
	}
	setDownloadHeaders(c, export.FilenameCSV, "text/csv; charset=utf-8")
	return c.Send(buf.Bytes())
}

// Excel godoc
// @Summary      Exportar registros a XLSX (hojas Resumen y Registros)
// @Tags         exportar
// @Security     BearerAuth
// @Param        hospital  query  string  false  "solo admin"
// @Param        desde     query  string  false  "YYYY-MM-DD inclusivo"
// @Param        hasta     query  string  false  "YYYY-MM-DD inclusivo"
// @Success      200  {file}  file
// @Router       /api/exportar/excel [get]
func (h *ExportHandler) Excel(c *fiber.Ctx) error {
	res, err := h.uc.Run(GetActor(c), c.Query("hospital"), c.Query("desde"), c.Query("hasta"))
	if err != nil {
		return domainError(c, err)
	}
	f, err := export.BuildWorkbook(res)
	if err != nil {
		return domainError(c, err)
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return domainError(c, err)
	}
	setDownloadHeaders(c, export.FilenameXLSX, export.MIMETypeXLSX)
	return c.Send(buf.Bytes())
}

// PDF godoc
// @Summary      Exportar registros a PDF
// @Tags         exportar
// @Security     BearerAuth
// @Param        hospital  query  string  false  "solo admin"
// @Param        desde     query  string  false  "YYYY-MM-DD inclusivo"
// @Param        hasta     query  string  false  "YYYY-MM-DD inclusivo"
// @Success      200  {file}  file
// @Router       /api/exportar/pdf [get]
func (h *ExportHandler) PDF(c *fiber.Ctx) error {
	if h.pdf == nil {
		return c.Status(fiber.StatusNotImplemented).JSON(dto.ErrorResponse{Code: "PDF_UNAVAILABLE", Message: "exportación PDF no configurada"})
	}
	res, err := h.uc.Run(GetActor(c), c.Query("hospital"), c.Query("desde"), c.Query("hasta"))
	if err != nil {
		return domainError(c, err)
	}
	data, err := h.pdf.GenerateRecordsPDF(res)
	if err != nil {
		return domainError(c, err)
	}
	setDownloadHeaders(c, export.FilenamePDF, "application/pdf")
	return c.Send(data)
}

func setDownloadHeaders(c *fiber.Ctx, filename, mime string) {
	c.Set(fiber.HeaderContentType, mime)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
}
