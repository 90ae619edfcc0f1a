package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"upipay_backend/database"
	"upipay_backend/internal/auth"
	"upipay_backend/internal/config"
	"upipay_backend/internal/handlers"
	"upipay_backend/internal/logger"
	"upipay_backend/internal/middleware"
	"upipay_backend/internal/models"
	"upipay_backend/internal/repositories"
	"upipay_backend/internal/routes"
	"upipay_backend/internal/services"
	"upipay_backend/internal/validator"
	"upipay_backend/internal/workers"
	"upipay_backend/ws"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter, serviceContainer := SetupRouter(cfg, gormDB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	expiryWorker := workers.NewExpiryWorker(
		serviceContainer.TransactionService,
		time.Duration(cfg.Payment.SweepInterval)*time.Second,
	)
	expiryWorker.Start(ctx)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the full dependency graph and returns the router plus
// the service container so callers can start background workers.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) (*gin.Engine, *services.ServiceContainer) {
	wsManager := ws.NewManager()
	wsHandler := ws.NewHandler(wsManager)

	serviceContainer := initializeServices(cfg, gormDB, wsManager)
	appHandlers := initializeHandlers(cfg, serviceContainer)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers, wsHandler)

	return ginRouter, serviceContainer
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB, publisher services.StatusPublisher) *services.ServiceContainer {
	merchantRepo := repositories.NewMerchantRepository(gormDB)
	txRepo := repositories.NewTransactionRepository(gormDB)
	auditRepo := repositories.NewAuditLogRepository(gormDB)
	adminRepo := repositories.NewAdminRepository(gormDB)

	clock := services.NewRealClock()

	maxAmount, err := decimal.NewFromString(cfg.Payment.MaxAmount)
	if err != nil {
		logger.Fatal("Invalid payment.max_amount in config", "value", cfg.Payment.MaxAmount)
	}
	txConfig := services.TransactionConfig{
		MaxAmount:   maxAmount,
		Window:      time.Duration(cfg.Payment.WindowSeconds) * time.Second,
		ExpiryGrace: time.Duration(cfg.Payment.ExpiryGraceSeconds) * time.Second,
	}

	return &services.ServiceContainer{
		MerchantService:    services.NewMerchantService(merchantRepo, auditRepo, clock),
		TransactionService: services.NewTransactionService(txRepo, merchantRepo, publisher, clock, txConfig),
		AuthService:        services.NewAuthService(adminRepo, cfg.Admin.PIN),
	}
}

func initializeHandlers(cfg *config.Config, serviceContainer *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:        handlers.NewAuthHandler(baseHandler, serviceContainer.AuthService),
		MerchantHandler:    handlers.NewMerchantHandler(baseHandler, serviceContainer.MerchantService),
		TransactionHandler: handlers.NewTransactionHandler(baseHandler, serviceContainer.TransactionService),
		WebhookHandler:     handlers.NewWebhookHandler(baseHandler, serviceContainer.TransactionService, cfg.Webhook.Secret),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.Admin.FirstAdminEmail
	adminPassword := cfg.Admin.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var admin models.AdminUser
	result := db.Where("email = ?", adminEmail).First(&admin)
	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found with specified email. Creating first admin...", "email", adminEmail)

	if err := auth.ValidatePassword(adminPassword); err != nil {
		return fmt.Errorf("refusing to seed admin: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.AdminUser{
		Email:        adminEmail,
		PasswordHash: string(hashedPassword),
		Role:         models.AdminRoleAdmin,
	}
	if err := db.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user in database: %w", err)
	}

	logger.Info("Created first admin user", "email", adminEmail)
	return nil
}
