// Package reports contém o resumo operacional do almoxarifado (dashboard).
// Geração de documentos imprimíveis fica fora do servidor.
package reports

import (
	"context"
	"time"

	"github.com/almox360/almox-api/internal/application/dto"
	"github.com/almox360/almox-api/internal/domain/repository"
	"github.com/almox360/almox-api/internal/domain/requisition"
)

// DashboardUseCase agrega contagens para o painel inicial.
type DashboardUseCase struct {
	reqRepo     repository.RequisitionRepository
	itemRepo    repository.ItemRepository
	receiptRepo repository.ReceiptRepository
	batchRepo   repository.BatchRepository
	// expiringDays: janela em dias do alerta de lotes a vencer.
	expiringDays int
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(
	reqRepo repository.RequisitionRepository,
	itemRepo repository.ItemRepository,
	receiptRepo repository.ReceiptRepository,
	batchRepo repository.BatchRepository,
	expiringDays int,
) *DashboardUseCase {
	return &DashboardUseCase{
		reqRepo:      reqRepo,
		itemRepo:     itemRepo,
		receiptRepo:  receiptRepo,
		batchRepo:    batchRepo,
		expiringDays: expiringDays,
	}
}

// Summary devolve requisições por status, total de alertas de estoque,
// entradas dos últimos 30 dias e lotes a vencer dentro da janela configurada.
func (uc *DashboardUseCase) Summary(ctx context.Context) (*dto.DashboardResponse, error) {
	byStatus, err := uc.reqRepo.CountByStatus()
	if err != nil {
		return nil, err
	}
	alerts, err := uc.itemRepo.ListAlerts()
	if err != nil {
		return nil, err
	}
	receipts, err := uc.receiptRepo.CountSince(time.Now().AddDate(0, 0, -30))
	if err != nil {
		return nil, err
	}
	batches, err := uc.batchRepo.ListAll()
	if err != nil {
		return nil, err
	}
	expiring := requisition.ExpiringWithin(batches, time.Now(), uc.expiringDays)

	statusMap := make(map[string]int, len(byStatus))
	for s, n := range byStatus {
		statusMap[string(s)] = n
	}
	return &dto.DashboardResponse{
		RequisitionsByStatus: statusMap,
		StockAlerts:          len(alerts),
		ReceiptsLast30Days:   receipts,
		ExpiringLots:         len(expiring),
	}, nil
}
