package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/almox360/almox-api/internal/application/dto"
	"github.com/almox360/almox-api/internal/application/reports"
)

// ReportHandler trata as requisições HTTP de relatórios (protegido).
type ReportHandler struct {
	uc *reports.DashboardUseCase
}

// NewReportHandler constrói o handler.
func NewReportHandler(uc *reports.DashboardUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Dashboard godoc
// @Summary      Resumo operacional do almoxarifado
// @Description  Requisições por status, alertas de estoque mínimo e entradas dos últimos 30 dias.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
