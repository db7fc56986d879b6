package http

import (
	"bytes"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-pro/internal/application/export"
)

// ReportHandler genera exportes de empresas finalizadas.
type ReportHandler struct {
	svc *export.Service
}

// NewReportHandler construye el handler inyectando el servicio de exporte.
func NewReportHandler(svc *export.Service) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// Finalized godoc
// @Summary      Reporte HTML de empresas finalizadas (exige canExportFinalized)
// @Tags         reports
// @Produce      html
// @Success      200  {string}  string
// @Router       /api/v1/reports/finalized [get]
func (h *ReportHandler) Finalized(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.svc.WriteFinalizedReport(c.UserContext(), &buf); err != nil {
		return respondDomainErr(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/html; charset=utf-8")
	return c.Send(buf.Bytes())
}
