package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/random"
	"github.com/rs/zerolog/log"

	"splybob/internal/auth"
	"splybob/internal/caching"
	"splybob/internal/config"
	"splybob/internal/handlers"
	"splybob/internal/jobs"
	"splybob/internal/middleware"
	"splybob/internal/repositories"
	"splybob/internal/services"
	"splybob/pkg/database"
	"splybob/pkg/logger"
)

func main() {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer pool.Close()

	secret := cfg.JWTSecret
	if secret == "" {
		secret = random.String(32)
		log.Warn().Msg("JWT_SECRET not set, using an ephemeral secret; tokens will not survive a restart")
	}
	tokens := auth.NewTokenService(secret, auth.DefaultTokenTTL)

	cache := caching.NewRedisCacheService(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	userRepo := repositories.NewUserRepository(pool)
	supplierRepo := repositories.NewSupplierRepository(pool)
	inventoryRepo := repositories.NewInventoryRepository(pool)
	orderRepo := repositories.NewPurchaseOrderRepository(pool)
	customerRepo := repositories.NewCustomerRepository(pool)
	leadRepo := repositories.NewLeadRepository(pool)
	campaignRepo := repositories.NewCampaignRepository(pool)

	supplierSvc := services.NewSupplierService(pool, supplierRepo, userRepo)
	authSvc := services.NewAuthService(userRepo, supplierSvc, tokens)
	inventorySvc := services.NewInventoryService(inventoryRepo)
	orderSvc := services.NewOrderService(orderRepo)
	customerSvc := services.NewCustomerService(customerRepo)
	leadSvc := services.NewLeadService(leadRepo)
	campaignSvc := services.NewCampaignService(campaignRepo)
	analyticsSvc := services.NewAnalyticsService(inventoryRepo, orderRepo, supplierRepo, customerRepo, cache)

	scheduler, err := jobs.StartAnalyticsRefresh(analyticsSvc, 5*time.Minute)
	if err != nil {
		log.Fatal().Err(err).Msg("scheduler startup failed")
	}
	defer func() {
		if err := scheduler.Shutdown(); err != nil {
			log.Warn().Err(err).Msg("scheduler shutdown failed")
		}
	}()

	e := echo.New()
	e.HideBanner = true
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	e.Use(echomw.CORS())
	e.Use(middleware.ResolveIdentity(authSvc))

	authHandler := handlers.NewAuthHandler(authSvc)
	inventoryHandler := handlers.NewInventoryHandler(inventorySvc)
	orderHandler := handlers.NewOrderHandler(orderSvc)
	supplierHandler := handlers.NewSupplierHandler(supplierSvc)
	customerHandler := handlers.NewCustomerHandler(customerSvc)
	leadHandler := handlers.NewLeadHandler(leadSvc)
	campaignHandler := handlers.NewCampaignHandler(campaignSvc)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsSvc)
	healthHandler := handlers.NewHealthHandler(pool)

	e.GET("/health", healthHandler.Live)
	e.GET("/health/ready", healthHandler.Ready)

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/manager-login", authHandler.ManagerLogin)
	authGroup.POST("/supplier-login", authHandler.SupplierLogin)
	authGroup.POST("/signup", authHandler.Signup)
	authGroup.GET("/me", authHandler.Me)

	api.GET("/inventory", inventoryHandler.List)
	api.POST("/inventory", inventoryHandler.Create)
	api.PUT("/inventory/:id", inventoryHandler.Update)
	api.DELETE("/inventory/:id", inventoryHandler.Delete)

	api.GET("/purchase-orders", orderHandler.List)
	api.POST("/purchase-orders", orderHandler.Create)
	api.GET("/purchase-orders/:id", orderHandler.Get)
	api.PATCH("/purchase-orders/:id", orderHandler.UpdateStatus)

	api.GET("/suppliers", supplierHandler.List)
	api.POST("/suppliers", supplierHandler.Provision)
	api.PATCH("/suppliers/:id", supplierHandler.Update)

	api.GET("/customers", customerHandler.List)
	api.POST("/customers", customerHandler.Create)
	api.PUT("/customers/:id", customerHandler.Update)
	api.DELETE("/customers/:id", customerHandler.Delete)

	api.GET("/leads", leadHandler.List)
	api.POST("/leads", leadHandler.Create)
	api.PUT("/leads/:id", leadHandler.Update)

	api.GET("/campaigns", campaignHandler.List)
	api.POST("/campaigns", campaignHandler.Create)
	api.PUT("/campaigns/:id", campaignHandler.Update)

	api.GET("/analytics", analyticsHandler.Summary)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
