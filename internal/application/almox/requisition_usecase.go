package almox

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/almox360/almox-api/internal/application/dto"
	"github.com/almox360/almox-api/internal/domain"
	"github.com/almox360/almox-api/internal/domain/entity"
	"github.com/almox360/almox-api/internal/domain/repository"
	"github.com/almox360/almox-api/internal/domain/requisition"
)

// RequisitionUseCase cobre o ciclo de vida de requisições fora do atendimento:
// criação, consulta, envio, aprovação, reprovação e edição de rascunho.
type RequisitionUseCase struct {
	txRunner TxRunner
	reqRepo  repository.RequisitionRepository
	itemRepo repository.ItemRepository
}

// NewRequisitionUseCase constrói o caso de uso. reqRepo e itemRepo são
// atados ao pool e usados apenas em leituras; escritas passam pelo txRunner.
func NewRequisitionUseCase(
	txRunner TxRunner,
	reqRepo repository.RequisitionRepository,
	itemRepo repository.ItemRepository,
) *RequisitionUseCase {
	return &RequisitionUseCase{txRunner: txRunner, reqRepo: reqRepo, itemRepo: itemRepo}
}

// Create registra uma nova requisição. Criadores com papel de aprovação
// (APROVADOR/ADMIN/MASTER) entram direto em APROVADO; os demais em RASCUNHO.
// As linhas guardam snapshot de descrição e unidade do item.
func (uc *RequisitionUseCase) Create(ctx context.Context, in dto.CreateRequisitionRequest, actor Actor) (*entity.Requisition, error) {
	priority := in.Priority
	if priority == "" {
		priority = entity.PriorityMedia
	}
	if !entity.ValidPriority(priority) {
		return nil, domain.ErrInvalidInput
	}
	for _, line := range in.Items {
		if !line.RequestedQty.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	status := entity.StatusRascunho
	if actor.Role == entity.RoleAprovador || actor.Role == entity.RoleAdmin || actor.Role == entity.RoleMaster {
		status = entity.StatusAprovado
	}

	req := &entity.Requisition{
		ID:            uuid.New().String(),
		Year:          now.Year(),
		Sector:        in.Sector,
		RequesterID:   actor.ID,
		RequesterName: actor.Name,
		Date:          now,
		Priority:      priority,
		Status:        status,
		Observations:  in.Observations,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	req.AppendEvent(string(status), actor.ID, actor.Name, "Requisição criada", now)

	err := uc.txRunner.Run(ctx, func(
		reqRepo repository.RequisitionRepository,
		itemRepo repository.ItemRepository,
		_ StockLedger,
	) error {
		for _, line := range in.Items {
			item, err := itemRepo.GetByID(line.ItemID)
			if err != nil {
				return err
			}
			if item == nil {
				return domain.ErrNotFound
			}
			if !item.Active {
				return domain.ErrInvalidInput
			}
			req.Items = append(req.Items, entity.RequisitionItem{
				ItemID:       item.ID,
				Description:  item.Description,
				Unit:         item.Unit,
				RequestedQty: line.RequestedQty,
				FulfilledQty: decimal.Zero,
				ReturnedQty:  decimal.Zero,
			})
		}
		seq, err := reqRepo.NextNumber(req.Year)
		if err != nil {
			return err
		}
		req.Number = fmt.Sprintf("%04d/%d", seq, req.Year)
		return reqRepo.Create(req)
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}

// GetByID devolve uma requisição por ID; nil se não existir.
func (uc *RequisitionUseCase) GetByID(ctx context.Context, id string) (*entity.Requisition, error) {
	return uc.reqRepo.GetByID(id)
}

// List devolve requisições paginadas, mais recentes primeiro.
func (uc *RequisitionUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Requisition, error) {
	return uc.reqRepo.List(limit, offset)
}

// Submit envia um rascunho para aprovação (RASCUNHO -> ENVIADO).
// Só o requisitante dono (ou ADMIN/MASTER) pode enviar.
func (uc *RequisitionUseCase) Submit(ctx context.Context, id string, actor Actor) (*entity.Requisition, error) {
	return uc.transition(ctx, id, requisition.ActionSubmit, actor, "", func(req *entity.Requisition) error {
		if req.RequesterID != actor.ID && actor.Role != entity.RoleAdmin && actor.Role != entity.RoleMaster {
			return domain.ErrForbidden
		}
		return nil
	})
}

// Approve aprova uma requisição enviada (ENVIADO -> APROVADO).
func (uc *RequisitionUseCase) Approve(ctx context.Context, id string, actor Actor) (*entity.Requisition, error) {
	return uc.transition(ctx, id, requisition.ActionApprove, actor, "", nil)
}

// Reject reprova uma requisição enviada (ENVIADO -> REPROVADO).
func (uc *RequisitionUseCase) Reject(ctx context.Context, id, reason string, actor Actor) (*entity.Requisition, error) {
	note := ""
	if reason != "" {
		note = "Motivo: " + reason
	}
	return uc.transition(ctx, id, requisition.ActionReject, actor, note, nil)
}

// transition aplica uma ação de destino fixo dentro de uma transação,
// anexando exatamente um evento de timeline.
func (uc *RequisitionUseCase) transition(
	ctx context.Context,
	id string,
	action requisition.Action,
	actor Actor,
	note string,
	extra func(req *entity.Requisition) error,
) (*entity.Requisition, error) {
	var out *entity.Requisition
	err := uc.txRunner.Run(ctx, func(
		reqRepo repository.RequisitionRepository,
		_ repository.ItemRepository,
		_ StockLedger,
	) error {
		req, err := reqRepo.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if req == nil {
			return domain.ErrNotFound
		}
		if err := requisition.Authorize(action, req.Status, actor.Role); err != nil {
			return err
		}
		if extra != nil {
			if err := extra(req); err != nil {
				return err
			}
		}
		target, ok := requisition.Target(action)
		if !ok {
			return domain.ErrInvalidInput
		}
		now := time.Now()
		req.Status = target
		req.UpdatedAt = now
		req.AppendEvent(string(target), actor.ID, actor.Name, note, now)
		if err := reqRepo.Update(req); err != nil {
			return err
		}
		out = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update edita campos de um rascunho (setor, prioridade, observações).
// Após o envio a requisição deixa de pertencer ao requisitante e não é
// mais editável por este caminho.
func (uc *RequisitionUseCase) Update(ctx context.Context, id string, in dto.UpdateRequisitionRequest, actor Actor) (*entity.Requisition, error) {
	if in.Priority != nil && !entity.ValidPriority(*in.Priority) {
		return nil, domain.ErrInvalidInput
	}
	var out *entity.Requisition
	err := uc.txRunner.Run(ctx, func(
		reqRepo repository.RequisitionRepository,
		_ repository.ItemRepository,
		_ StockLedger,
	) error {
		req, err := reqRepo.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if req == nil {
			return domain.ErrNotFound
		}
		if req.Status != entity.StatusRascunho {
			return domain.ErrConflict
		}
		if req.RequesterID != actor.ID && actor.Role != entity.RoleAdmin && actor.Role != entity.RoleMaster {
			return domain.ErrForbidden
		}
		if in.Sector != nil {
			req.Sector = *in.Sector
		}
		if in.Priority != nil {
			req.Priority = *in.Priority
		}
		if in.Observations != nil {
			req.Observations = *in.Observations
		}
		req.UpdatedAt = time.Now()
		if err := reqRepo.Update(req); err != nil {
			return err
		}
		out = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
