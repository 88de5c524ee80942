package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/almox360/almox-api/internal/application/almox"
	"github.com/almox360/almox-api/internal/application/auth"
	"github.com/almox360/almox-api/internal/application/catalog"
	"github.com/almox360/almox-api/internal/application/reports"
	"github.com/almox360/almox-api/internal/application/users"
	"github.com/almox360/almox-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	ItemUC        *catalog.ItemUseCase
	RequisitionUC *almox.RequisitionUseCase
	FulfillmentUC *almox.FulfillmentUseCase
	PickingUC     *almox.PickingUseCase
	ReceiptUC     *almox.ReceiptUseCase
	InventoryUC   *almox.InventoryUseCase
	UserUC        *users.UserUseCase
	DashboardUC   *reports.DashboardUseCase
	JWTSecret     string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	// Catálogo de itens
	itemsGroup := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	itemsGroup.Get("/alerts", itemHandler.Alerts)
	itemsGroup.Post("/", RequireRole(entity.RoleAlmoxarife, entity.RoleAdmin, entity.RoleMaster), itemHandler.Create)
	itemsGroup.Get("/", itemHandler.List)
	itemsGroup.Get("/:id", itemHandler.GetByID)
	itemsGroup.Put("/:id", RequireRole(entity.RoleAlmoxarife, entity.RoleAdmin, entity.RoleMaster), itemHandler.Update)
	itemsGroup.Delete("/:id", RequireRole(entity.RoleAdmin, entity.RoleMaster), itemHandler.Delete)

	// Requisições: papel por ação é verificado na máquina de estados;
	// aqui só se exige autenticação.
	reqGroup := protected.Group("/requisitions")
	reqHandler := NewRequisitionHandler(deps.RequisitionUC, deps.FulfillmentUC, deps.PickingUC)
	reqGroup.Post("/", reqHandler.Create)
	reqGroup.Get("/", reqHandler.List)
	reqGroup.Get("/:id", reqHandler.GetByID)
	reqGroup.Patch("/:id", reqHandler.Update)
	reqGroup.Post("/:id/submit", reqHandler.Submit)
	reqGroup.Post("/:id/approve", reqHandler.Approve)
	reqGroup.Post("/:id/reject", reqHandler.Reject)
	reqGroup.Post("/:id/fulfill", reqHandler.Fulfill)
	reqGroup.Post("/:id/return", reqHandler.Return)
	reqGroup.Get("/:id/picking", reqHandler.Picking)

	// Entradas de material
	receiptsGroup := protected.Group("/receipts")
	receiptHandler := NewReceiptHandler(deps.ReceiptUC)
	receiptsGroup.Post("/", RequireRole(entity.RoleAlmoxarife, entity.RoleAdmin, entity.RoleMaster), receiptHandler.Create)
	receiptsGroup.Get("/", receiptHandler.List)

	// Inventário rotativo
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Post("/audit", RequireRole(entity.RoleAuditor, entity.RoleAlmoxarife, entity.RoleAdmin, entity.RoleMaster), inventoryHandler.ApplyAudit)
	invGroup.Post("/cycles", RequireRole(entity.RoleAuditor, entity.RoleAlmoxarife, entity.RoleAdmin, entity.RoleMaster), inventoryHandler.CreateCycle)
	invGroup.Get("/cycles", inventoryHandler.ListCycles)
	invGroup.Put("/cycles/:id", RequireRole(entity.RoleAuditor, entity.RoleAlmoxarife, entity.RoleAdmin, entity.RoleMaster), inventoryHandler.UpdateCycle)

	// Administração de usuários
	usersGroup := protected.Group("/users", RequireRole(entity.RoleAdmin, entity.RoleMaster))
	userHandler := NewUserHandler(deps.UserUC)
	usersGroup.Get("/", userHandler.List)
	usersGroup.Put("/:id", userHandler.Update)
	usersGroup.Delete("/:id", userHandler.Delete)

	// Relatórios
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.DashboardUC)
	reportsGroup.Get("/dashboard", reportHandler.Dashboard)
}
