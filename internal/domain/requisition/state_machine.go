// Package requisition concentra as regras puras do ciclo de vida de uma
// requisição: quais transições de status são legais, quem pode dispará-las e
// como o status agregado é recalculado após atendimento e devolução.
package requisition

import (
	"github.com/shopspring/decimal"

	"github.com/almox360/almox-api/internal/domain"
	"github.com/almox360/almox-api/internal/domain/entity"
)

// Action é uma ação do workflow que pode mudar o status da requisição.
type Action string

const (
	ActionSubmit  Action = "submit"
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
	ActionFulfill Action = "fulfill"
	ActionReturn  Action = "return"
)

// rule define os status de origem e os papéis autorizados de uma ação.
// roles vazio significa qualquer usuário autenticado (a posse é checada no
// caso de uso, não aqui).
type rule struct {
	from  []entity.Status
	to    entity.Status // destino fixo; vazio quando o destino é recalculado
	roles []string
}

var rules = map[Action]rule{
	ActionSubmit: {
		from: []entity.Status{entity.StatusRascunho},
		to:   entity.StatusEnviado,
	},
	ActionApprove: {
		from:  []entity.Status{entity.StatusEnviado},
		to:    entity.StatusAprovado,
		roles: []string{entity.RoleAprovador, entity.RoleAdmin, entity.RoleMaster},
	},
	ActionReject: {
		from:  []entity.Status{entity.StatusEnviado},
		to:    entity.StatusReprovado,
		roles: []string{entity.RoleAprovador, entity.RoleAdmin, entity.RoleMaster},
	},
	ActionFulfill: {
		from:  []entity.Status{entity.StatusAprovado, entity.StatusEmAtendimento},
		roles: []string{entity.RoleAlmoxarife, entity.RoleAdmin, entity.RoleMaster},
	},
	ActionReturn: {
		from: []entity.Status{entity.StatusEntregue, entity.StatusEmAtendimento, entity.StatusDevolvido},
	},
}

// Authorize valida status de origem e papel do ator para uma ação.
// Devolve ErrInvalidTransition quando o status atual não admite a ação e
// ErrForbidden quando o papel não está autorizado.
func Authorize(action Action, current entity.Status, role string) error {
	r, ok := rules[action]
	if !ok {
		return domain.ErrInvalidInput
	}
	legal := false
	for _, s := range r.from {
		if s == current {
			legal = true
			break
		}
	}
	if !legal {
		return domain.ErrInvalidTransition
	}
	if len(r.roles) == 0 {
		return nil
	}
	for _, allowed := range r.roles {
		if role == allowed {
			return nil
		}
	}
	return domain.ErrForbidden
}

// Target devolve o status destino fixo de uma ação (submit/approve/reject).
// ok=false para ações cujo destino é recalculado (fulfill/return).
func Target(action Action) (entity.Status, bool) {
	r, found := rules[action]
	if !found || r.to == "" {
		return "", false
	}
	return r.to, true
}

// RecomputeAfterFulfill recalcula o status agregado após um atendimento:
// todas as linhas completas -> ENTREGUE; alguma linha atendida ->
// EM_ATENDIMENTO; nenhuma -> status atual inalterado.
func RecomputeAfterFulfill(items []entity.RequisitionItem, current entity.Status) entity.Status {
	all := true
	any := false
	for i := range items {
		if items[i].FulfilledQty.GreaterThan(decimal.Zero) {
			any = true
		}
		if items[i].FulfilledQty.LessThan(items[i].RequestedQty) {
			all = false
		}
	}
	if len(items) > 0 && all {
		return entity.StatusEntregue
	}
	if any {
		return entity.StatusEmAtendimento
	}
	return current
}

// AllReturned informa se todas as linhas atendidas foram integralmente
// devolvidas (e houve algum atendimento). Usado pelo toggle de devolução
// total -> DEVOLVIDO.
func AllReturned(items []entity.RequisitionItem) bool {
	any := false
	for i := range items {
		if items[i].FulfilledQty.GreaterThan(decimal.Zero) {
			any = true
			if items[i].ReturnedQty.LessThan(items[i].FulfilledQty) {
				return false
			}
		}
	}
	return any
}
