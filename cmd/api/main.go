package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/almox360/almox-api/internal/application/almox"
	"github.com/almox360/almox-api/internal/application/auth"
	"github.com/almox360/almox-api/internal/application/catalog"
	"github.com/almox360/almox-api/internal/application/reports"
	"github.com/almox360/almox-api/internal/application/users"
	"github.com/almox360/almox-api/internal/infrastructure/postgres"
	httpRouter "github.com/almox360/almox-api/internal/interfaces/http"
	"github.com/almox360/almox-api/pkg/config"
	"github.com/almox360/almox-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	reqRepo := postgres.NewRequisitionRepository(pool)
	receiptRepo := postgres.NewReceiptRepository(pool)
	cycleRepo := postgres.NewInventoryCycleRepository(pool)
	batchRepo := postgres.NewBatchRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	itemUC := catalog.NewItemUseCase(itemRepo)
	requisitionUC := almox.NewRequisitionUseCase(txRunner, reqRepo, itemRepo)
	fulfillmentUC := almox.NewFulfillmentUseCase(txRunner, almox.Options{
		AllowPartial:  cfg.Almox.AllowPartial,
		AutoDevolvido: cfg.Almox.AutoDevolvido,
	})
	pickingUC := almox.NewPickingUseCase(reqRepo, itemRepo, batchRepo)
	receiptUC := almox.NewReceiptUseCase(txRunner, receiptRepo)
	inventoryUC := almox.NewInventoryUseCase(txRunner, cycleRepo)
	userUC := users.NewUserUseCase(userRepo)
	dashboardUC := reports.NewDashboardUseCase(reqRepo, itemRepo, receiptRepo, batchRepo, cfg.Almox.ExpiringLotsAlertDays)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Almox 360° API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		ItemUC:        itemUC,
		RequisitionUC: requisitionUC,
		FulfillmentUC: fulfillmentUC,
		PickingUC:     pickingUC,
		ReceiptUC:     receiptUC,
		InventoryUC:   inventoryUC,
		UserUC:        userUC,
		DashboardUC:   dashboardUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
