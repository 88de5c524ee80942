package dto

// DashboardResponse resumo operacional do almoxarifado.
type DashboardResponse struct {
	RequisitionsByStatus map[string]int `json:"requisitions_by_status"`
	StockAlerts          int            `json:"stock_alerts"`
	ReceiptsLast30Days   int            `json:"receipts_last_30_days"`
	ExpiringLots         int            `json:"expiring_lots"`
}
