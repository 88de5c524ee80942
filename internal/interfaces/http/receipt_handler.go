package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/almox360/almox-api/internal/application/almox"
	"github.com/almox360/almox-api/internal/application/dto"
	"github.com/almox360/almox-api/internal/domain"
	"github.com/almox360/almox-api/internal/domain/entity"
)

// ReceiptHandler trata as requisições HTTP de entradas de material (protegido).
type ReceiptHandler struct {
	uc *almox.ReceiptUseCase
}

// NewReceiptHandler constrói o handler.
func NewReceiptHandler(uc *almox.ReceiptUseCase) *ReceiptHandler {
	return &ReceiptHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar entrada de material
// @Description  Credita o estoque do item pelo SKU; SKU desconhecido registra a entrada sem movimentar estoque.
// @Tags         receipts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReceiptRequest  true  "Dados da entrada"
// @Success      201   {object}  dto.ReceiptResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/receipts [post]
func (h *ReceiptHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReceiptRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	receipt, err := h.uc.Create(c.Context(), in, actorFrom(c))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(toReceiptResponse(receipt))
}

// List godoc
// @Summary      Listar entradas de material
// @Tags         receipts
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.ReceiptListResponse
// @Router       /api/receipts [get]
func (h *ReceiptHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	receipts, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	list := make([]dto.ReceiptResponse, 0, len(receipts))
	for _, r := range receipts {
		list = append(list, toReceiptResponse(r))
	}
	return c.JSON(dto.ReceiptListResponse{
		Receipts: list,
		Page:     dto.PageResponse{Limit: limit, Offset: offset},
	})
}

func toReceiptResponse(r *entity.Receipt) dto.ReceiptResponse {
	return dto.ReceiptResponse{
		ID:          r.ID,
		DocNumber:   r.DocNumber,
		Supplier:    r.Supplier,
		Date:        r.Date,
		ItemSKU:     r.ItemSKU,
		OriginalSKU: r.OriginalSKU,
		Lot:         r.Lot,
		Expiry:      r.Expiry,
		Unit:        r.Unit,
		Quantity:    r.Quantity,
		UnitCost:    r.UnitCost,
		TotalValue:  r.TotalValue,
		Status:      r.Status,
		UserID:      r.UserID,
		UserName:    r.UserName,
		CreatedAt:   r.CreatedAt,
	}
}
