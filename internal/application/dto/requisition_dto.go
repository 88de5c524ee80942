package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/almox360/almox-api/internal/domain/entity"
)

// CreateRequisitionRequest body para POST /api/requisitions.
type CreateRequisitionRequest struct {
	Sector       string                         `json:"sector" validate:"required"`
	Priority     string                         `json:"priority" validate:"omitempty,oneof=BAIXA MEDIA ALTA URGENTE"`
	Observations string                         `json:"observations"`
	Items        []CreateRequisitionItemRequest `json:"items" validate:"required,min=1,dive"`
}

// CreateRequisitionItemRequest linha de uma nova requisição.
type CreateRequisitionItemRequest struct {
	ItemID       string          `json:"item_id" validate:"required"`
	RequestedQty decimal.Decimal `json:"requested_qty" validate:"required"`
}

// UpdateRequisitionRequest body para PATCH /api/requisitions/:id.
// Apenas campos editáveis enquanto RASCUNHO.
type UpdateRequisitionRequest struct {
	Sector       *string `json:"sector,omitempty"`
	Priority     *string `json:"priority,omitempty" validate:"omitempty,oneof=BAIXA MEDIA ALTA URGENTE"`
	Observations *string `json:"observations,omitempty"`
}

// RejectRequest body para POST /api/requisitions/:id/reject.
type RejectRequest struct {
	Reason string `json:"reason"`
}

// FulfillLineRequest par (item, quantidade) de um atendimento ou devolução.
type FulfillLineRequest struct {
	ItemID string          `json:"item_id" validate:"required"`
	Qty    decimal.Decimal `json:"qty" validate:"required"`
}

// FulfillRequest body para POST /api/requisitions/:id/fulfill.
type FulfillRequest struct {
	Items []FulfillLineRequest `json:"items" validate:"required,min=1,dive"`
}

// ReturnRequest body para POST /api/requisitions/:id/return.
// Notes é a justificativa de negócio da devolução.
type ReturnRequest struct {
	Items []FulfillLineRequest `json:"items" validate:"required,min=1,dive"`
	Notes string               `json:"notes"`
}

// RequisitionItemResponse linha de requisição na resposta.
type RequisitionItemResponse struct {
	ItemID       string          `json:"item_id"`
	Description  string          `json:"description"`
	Unit         string          `json:"unit"`
	RequestedQty decimal.Decimal `json:"requested_qty"`
	FulfilledQty decimal.Decimal `json:"fulfilled_qty"`
	ReturnedQty  decimal.Decimal `json:"returned_qty"`
}

// TimelineEventResponse evento da trilha de auditoria.
type TimelineEventResponse struct {
	Status    string    `json:"status"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note,omitempty"`
}

// RequisitionResponse representação pública de uma requisição.
type RequisitionResponse struct {
	ID            string                    `json:"id"`
	Number        string                    `json:"number"`
	Year          int                       `json:"year"`
	Sector        string                    `json:"sector"`
	RequesterID   string                    `json:"requester_id"`
	RequesterName string                    `json:"requester_name"`
	Date          time.Time                 `json:"date"`
	Priority      string                    `json:"priority"`
	Status        string                    `json:"status"`
	Observations  string                    `json:"observations,omitempty"`
	Items         []RequisitionItemResponse `json:"items"`
	Timeline      []TimelineEventResponse   `json:"timeline"`
	CreatedAt     time.Time                 `json:"created_at"`
	UpdatedAt     time.Time                 `json:"updated_at"`
}

// RequisitionListResponse listagem paginada de requisições.
type RequisitionListResponse struct {
	Requisitions []RequisitionResponse `json:"requisitions"`
	Page         PageResponse          `json:"page"`
}

// PickingSuggestionResponse sugestão FEFO de lotes para uma linha da requisição.
type PickingSuggestionResponse struct {
	ItemID         string          `json:"item_id"`
	Description    string          `json:"description"`
	Unit           string          `json:"unit"`
	RemainingQty   decimal.Decimal `json:"remaining_qty"`
	DefaultAddress string          `json:"default_address,omitempty"`
	Batches        []BatchResponse `json:"batches"`
}

// BatchResponse lote de um item na sugestão de picking.
type BatchResponse struct {
	ID         string          `json:"id"`
	LotNumber  string          `json:"lot_number"`
	ExpiryDate time.Time       `json:"expiry_date"`
	Quantity   decimal.Decimal `json:"quantity"`
}

// ToRequisitionResponse converte a entidade para a representação pública.
func ToRequisitionResponse(r *entity.Requisition) *RequisitionResponse {
	if r == nil {
		return nil
	}
	items := make([]RequisitionItemResponse, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, RequisitionItemResponse{
			ItemID:       it.ItemID,
			Description:  it.Description,
			Unit:         it.Unit,
			RequestedQty: it.RequestedQty,
			FulfilledQty: it.FulfilledQty,
			ReturnedQty:  it.ReturnedQty,
		})
	}
	timeline := make([]TimelineEventResponse, 0, len(r.Timeline))
	for _, ev := range r.Timeline {
		timeline = append(timeline, TimelineEventResponse{
			Status:    ev.Status,
			UserID:    ev.UserID,
			UserName:  ev.UserName,
			Timestamp: ev.Timestamp,
			Note:      ev.Note,
		})
	}
	return &RequisitionResponse{
		ID:            r.ID,
		Number:        r.Number,
		Year:          r.Year,
		Sector:        r.Sector,
		RequesterID:   r.RequesterID,
		RequesterName: r.RequesterName,
		Date:          r.Date,
		Priority:      r.Priority,
		Status:        string(r.Status),
		Observations:  r.Observations,
		Items:         items,
		Timeline:      timeline,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}
