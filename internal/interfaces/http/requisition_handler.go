package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/almox360/almox-api/internal/application/almox"
	"github.com/almox360/almox-api/internal/application/dto"
	"github.com/almox360/almox-api/internal/domain"
)

// RequisitionHandler trata as requisições HTTP do workflow de requisições (protegido).
type RequisitionHandler struct {
	uc      *almox.RequisitionUseCase
	fulfill *almox.FulfillmentUseCase
	picking *almox.PickingUseCase
}

// NewRequisitionHandler constrói o handler.
func NewRequisitionHandler(uc *almox.RequisitionUseCase, fulfill *almox.FulfillmentUseCase, picking *almox.PickingUseCase) *RequisitionHandler {
	return &RequisitionHandler{uc: uc, fulfill: fulfill, picking: picking}
}

// workflowError mapeia sentinelas do workflow para respostas HTTP.
// Usado pelos endpoints de transição (submit/approve/reject/fulfill/return).
func workflowError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "requisição ou item não encontrado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados inválidos"})
	case errors.Is(err, domain.ErrInvalidTransition):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: "transição de status não permitida"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "papel sem permissão para esta operação"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "estoque insuficiente"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// Create godoc
// @Summary      Criar requisição
// @Description  Criada como RASCUNHO; criadores APROVADOR/ADMIN/MASTER entram direto como APROVADO.
// @Tags         requisitions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRequisitionRequest  true  "Setor, prioridade e linhas"
// @Success      201   {object}  dto.RequisitionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/requisitions [post]
func (h *RequisitionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRequisitionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	req, err := h.uc.Create(c.Context(), in, actorFrom(c))
	if err != nil {
		return workflowError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToRequisitionResponse(req))
}

// GetByID godoc
// @Summary      Obter requisição por ID
// @Tags         requisitions
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da requisição"
// @Success      200  {object}  dto.RequisitionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/requisitions/{id} [get]
func (h *RequisitionHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	req, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if req == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "requisição não encontrada"})
	}
	return c.JSON(dto.ToRequisitionResponse(req))
}

// List godoc
// @Summary      Listar requisições
// @Tags         requisitions
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.RequisitionListResponse
// @Router       /api/requisitions [get]
func (h *RequisitionHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	reqs, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	list := make([]dto.RequisitionResponse, 0, len(reqs))
	for _, r := range reqs {
		list = append(list, *dto.ToRequisitionResponse(r))
	}
	return c.JSON(dto.RequisitionListResponse{
		Requisitions: list,
		Page:         dto.PageResponse{Limit: limit, Offset: offset},
	})
}

// Update godoc
// @Summary      Atualizar requisição em RASCUNHO
// @Tags         requisitions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da requisição"
// @Param        body  body  dto.UpdateRequisitionRequest  true  "Campos editáveis"
// @Success      200   {object}  dto.RequisitionResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/requisitions/{id} [patch]
func (h *RequisitionHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	var in dto.UpdateRequisitionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	req, err := h.uc.Update(c.Context(), id, in, actorFrom(c))
	if err != nil {
		return workflowError(c, err)
	}
	return c.JSON(dto.ToRequisitionResponse(req))
}

// Submit godoc
// @Summary      Enviar requisição (RASCUNHO → ENVIADO)
// @Tags         requisitions
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da requisição"
// @Success      200  {object}  dto.RequisitionResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/requisitions/{id}/submit [post]
func (h *RequisitionHandler) Submit(c *fiber.Ctx) error {
	req, err := h.uc.Submit(c.Context(), c.Params("id"), actorFrom(c))
	if err != nil {
		return workflowError(c, err)
	}
	return c.JSON(dto.ToRequisitionResponse(req))
}

// Approve godoc
// @Summary      Aprovar requisição (ENVIADO → APROVADO)
// @Tags         requisitions
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da requisição"
// @Success      200  {object}  dto.RequisitionResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/requisitions/{id}/approve [post]
func (h *RequisitionHandler) Approve(c *fiber.Ctx) error {
	req, err := h.uc.Approve(c.Context(), c.Params("id"), actorFrom(c))
	if err != nil {
		return workflowError(c, err)
	}
	return c.JSON(dto.ToRequisitionResponse(req))
}

// Reject godoc
// @Summary      Reprovar requisição (ENVIADO → REPROVADO)
// @Tags         requisitions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da requisição"
// @Param        body  body  dto.RejectRequest  false  "Motivo da reprovação"
// @Success      200   {object}  dto.RequisitionResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/requisitions/{id}/reject [post]
func (h *RequisitionHandler) Reject(c *fiber.Ctx) error {
	var in dto.RejectRequest
	if err := c.BodyParser(&in); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	req, err := h.uc.Reject(c.Context(), c.Params("id"), in.Reason, actorFrom(c))
	if err != nil {
		return workflowError(c, err)
	}
	return c.JSON(dto.ToRequisitionResponse(req))
}

// Fulfill godoc
// @Summary      Atender requisição (entrega de materiais)
// @Description  Debita o estoque de cada linha; APROVADO/EM_ATENDIMENTO → EM_ATENDIMENTO ou ENTREGUE.
// @Tags         requisitions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da requisição"
// @Param        body  body  dto.FulfillRequest  true  "Linhas e quantidades entregues"
// @Success      200   {object}  dto.RequisitionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/requisitions/{id}/fulfill [post]
func (h *RequisitionHandler) Fulfill(c *fiber.Ctx) error {
	var in dto.FulfillRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	req, err := h.fulfill.Fulfill(c.Context(), c.Params("id"), in.Items, actorFrom(c))
	if err != nil {
		return workflowError(c, err)
	}
	return c.JSON(dto.ToRequisitionResponse(req))
}

// Return godoc
// @Summary      Registrar devolução de materiais
// @Description  Credita o estoque de cada linha devolvida; quantidade limitada ao já entregue.
// @Tags         requisitions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da requisição"
// @Param        body  body  dto.ReturnRequest  true  "Linhas devolvidas e justificativa"
// @Success      200   {object}  dto.RequisitionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/requisitions/{id}/return [post]
func (h *RequisitionHandler) Return(c *fiber.Ctx) error {
	var in dto.ReturnRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	req, err := h.fulfill.Return(c.Context(), c.Params("id"), in.Items, in.Notes, actorFrom(c))
	if err != nil {
		return workflowError(c, err)
	}
	return c.JSON(dto.ToRequisitionResponse(req))
}

// Picking godoc
// @Summary      Sugestão de separação (FEFO)
// @Description  Para cada linha pendente, devolve endereço padrão e lotes em ordem de validade.
// @Tags         requisitions
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da requisição"
// @Success      200  {array}   dto.PickingSuggestionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/requisitions/{id}/picking [get]
func (h *RequisitionHandler) Picking(c *fiber.Ctx) error {
	out, err := h.picking.Suggest(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "requisição não encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
