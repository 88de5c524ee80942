package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/almox360/almox-api/internal/application/almox"
	"github.com/almox360/almox-api/internal/application/dto"
	"github.com/almox360/almox-api/internal/domain"
	"github.com/almox360/almox-api/internal/domain/entity"
)

// InventoryHandler trata as requisições HTTP de inventário rotativo (protegido).
type InventoryHandler struct {
	uc *almox.InventoryUseCase
}

// NewInventoryHandler constrói o handler.
func NewInventoryHandler(uc *almox.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// ApplyAudit godoc
// @Summary      Implantar contagem de inventário
// @Description  Sobrescreve o estoque de cada item contado e registra o ciclo como AJUSTADO.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ApplyAuditRequest  true  "Responsável e contagens físicas"
// @Success      201   {object}  dto.CycleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/audit [post]
func (h *InventoryHandler) ApplyAudit(c *fiber.Ctx) error {
	var in dto.ApplyAuditRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	cycle, err := h.uc.ApplyAudit(c.Context(), in, actorFrom(c))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "contagem inválida"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "item da contagem não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(toCycleResponse(cycle))
}

// CreateCycle godoc
// @Summary      Abrir ciclo de inventário
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCycleRequest  true  "Responsável e data"
// @Success      201   {object}  dto.CycleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/cycles [post]
func (h *InventoryHandler) CreateCycle(c *fiber.Ctx) error {
	var in dto.CreateCycleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	cycle, err := h.uc.CreateCycle(c.Context(), in, actorFrom(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(toCycleResponse(cycle))
}

// ListCycles godoc
// @Summary      Listar ciclos de inventário
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.CycleListResponse
// @Router       /api/inventory/cycles [get]
func (h *InventoryHandler) ListCycles(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	cycles, err := h.uc.ListCycles(c.Context(), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	list := make([]dto.CycleResponse, 0, len(cycles))
	for _, cy := range cycles {
		list = append(list, toCycleResponse(cy))
	}
	return c.JSON(dto.CycleListResponse{
		Cycles: list,
		Page:   dto.PageResponse{Limit: limit, Offset: offset},
	})
}

// UpdateCycle godoc
// @Summary      Atualizar ciclo de inventário
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do ciclo"
// @Param        body  body  dto.UpdateCycleRequest  true  "Status e observação"
// @Success      200   {object}  dto.CycleResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/cycles/{id} [put]
func (h *InventoryHandler) UpdateCycle(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	var in dto.UpdateCycleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	cycle, err := h.uc.UpdateCycle(c.Context(), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ciclo não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toCycleResponse(cycle))
}

func toCycleResponse(cy *entity.InventoryCycle) dto.CycleResponse {
	return dto.CycleResponse{
		ID:           cy.ID,
		Date:         cy.Date,
		Responsible:  cy.Responsible,
		Status:       cy.Status,
		ItemsCounted: cy.ItemsCounted,
		Divergence:   cy.Divergence,
		Observation:  cy.Observation,
		CreatedBy:    cy.CreatedBy,
		CreatedAt:    cy.CreatedAt,
		UpdatedAt:    cy.UpdatedAt,
	}
}
