package main

import (
	"log"

	"wfh-backend/internal/config"
	"wfh-backend/internal/database"
	"wfh-backend/internal/handler"
	"wfh-backend/internal/middleware"
	"wfh-backend/internal/repository"
	"wfh-backend/internal/service"
	"wfh-backend/pkg/logger"
	"wfh-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load("5003")

	zlog, err := logger.New("work_request")
	if err != nil {
		log.Fatalf("Logger init failed: %v", err)
	}
	defer zlog.Sync()

	db, err := database.NewConnection(cfg.DSN())
	if err != nil {
		zlog.Fatal("Database connection failed", zap.Error(err))
	}

	validation.Register()

	// Repository -> Service -> Handler
	workRequestRepo := repository.NewWorkRequestRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	txm := repository.NewTransactionManager(db)

	workRequestService := service.NewWorkRequestService(workRequestRepo, employeeRepo, auditRepo, txm, zlog)
	workRequestHandler := handler.NewWorkRequestHandler(workRequestService)

	router := gin.Default()
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	workRequestHandler.RegisterRoutes(router.Group(""))

	zlog.Info("Work request service listening", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		zlog.Fatal("Server failed", zap.Error(err))
	}
}
