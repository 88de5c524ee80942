package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status é o conjunto fechado de estados de uma Requisition.
type Status string

const (
	StatusRascunho      Status = "RASCUNHO"
	StatusEnviado       Status = "ENVIADO"
	StatusAprovado      Status = "APROVADO"
	StatusEmAtendimento Status = "EM_ATENDIMENTO"
	StatusAtendido      Status = "ATENDIDO" // legado: aceito na leitura, nunca produzido
	StatusEntregue      Status = "ENTREGUE"
	StatusReprovado     Status = "REPROVADO"
	StatusDevolvido     Status = "DEVOLVIDO"
)

// Prioridades válidas de uma requisição.
const (
	PriorityBaixa   = "BAIXA"
	PriorityMedia   = "MEDIA"
	PriorityAlta    = "ALTA"
	PriorityUrgente = "URGENTE"
)

// Marcas de timeline para eventos que não são status do workflow.
const (
	TimelineEntrega   = "ENTREGA"
	TimelineDevolucao = "DEVOLUCAO"
)

// Requisition é um pedido interno de materiais do estoque.
// Pertence ao requisitante enquanto RASCUNHO; após o envio a mutação passa
// para aprovador/almoxarife conforme o status. Nunca é apagada: os estados
// terminais (REPROVADO, ENTREGUE, DEVOLVIDO) ficam retidos para auditoria.
type Requisition struct {
	ID            string
	Number        string // sequencial NNNN/AAAA por ano
	Year          int
	Sector        string
	RequesterID   string
	RequesterName string
	Date          time.Time
	Priority      string
	Status        Status
	Observations  string
	Items         []RequisitionItem
	Timeline      []TimelineEvent
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RequisitionItem é uma linha da requisição. Description e Unit são snapshot
// desnormalizado do item no momento da criação. RequestedQty é imutável após
// a criação; invariantes: 0 <= FulfilledQty <= RequestedQty e
// 0 <= ReturnedQty <= FulfilledQty.
type RequisitionItem struct {
	ItemID       string          `json:"item_id"`
	Description  string          `json:"description"`
	Unit         string          `json:"unit"`
	RequestedQty decimal.Decimal `json:"requested_qty"`
	FulfilledQty decimal.Decimal `json:"fulfilled_qty"`
	ReturnedQty  decimal.Decimal `json:"returned_qty"`
}

// Remaining devolve a quantidade ainda pendente de atendimento.
func (ri *RequisitionItem) Remaining() decimal.Decimal {
	return ri.RequestedQty.Sub(ri.FulfilledQty)
}

// MaxReturn devolve a quantidade máxima devolvível (atendido − já devolvido).
func (ri *RequisitionItem) MaxReturn() decimal.Decimal {
	return ri.FulfilledQty.Sub(ri.ReturnedQty)
}

// TimelineEvent é um registro append-only de mudança de estado da requisição.
// Nunca é mutado nem removido; a ordem é a de inserção.
type TimelineEvent struct {
	Status    string    `json:"status"` // status novo ou marca ENTREGA/DEVOLUCAO
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note,omitempty"`
}

// FindItem localiza a linha de um item na requisição; nil se não existir.
func (r *Requisition) FindItem(itemID string) *RequisitionItem {
	for i := range r.Items {
		if r.Items[i].ItemID == itemID {
			return &r.Items[i]
		}
	}
	return nil
}

// AppendEvent anexa um evento à timeline.
func (r *Requisition) AppendEvent(status, userID, userName, note string, at time.Time) {
	r.Timeline = append(r.Timeline, TimelineEvent{
		Status:    status,
		UserID:    userID,
		UserName:  userName,
		Timestamp: at,
		Note:      note,
	})
}

// ValidPriority informa se a prioridade pertence ao conjunto fechado.
func ValidPriority(p string) bool {
	switch p {
	case PriorityBaixa, PriorityMedia, PriorityAlta, PriorityUrgente:
		return true
	}
	return false
}

// ValidStatus informa se o status pertence ao conjunto fechado.
func ValidStatus(s Status) bool {
	switch s {
	case StatusRascunho, StatusEnviado, StatusAprovado, StatusEmAtendimento,
		StatusAtendido, StatusEntregue, StatusReprovado, StatusDevolvido:
		return true
	}
	return false
}
