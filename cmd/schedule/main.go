package main

import (
	"log"

	"wfh-backend/internal/client"
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
	cfg := config.Load("5004")

	zlog, err := logger.New("schedule")
	if err != nil {
		log.Fatalf("Logger init failed: %v", err)
	}
	defer zlog.Sync()

	db, err := database.NewConnection(cfg.DSN())
	if err != nil {
		zlog.Fatal("Database connection failed", zap.Error(err))
	}

	validation.Register()

	// The team and department views resolve members through the employee
	// service over HTTP rather than joining its tables directly.
	employeeClient := client.NewEmployeeClient(cfg.EmployeeServiceURL)

	scheduleRepo := repository.NewScheduleRepository(db)
	workRequestRepo := repository.NewWorkRequestRepository(db)

	scheduleService := service.NewScheduleService(scheduleRepo, workRequestRepo, employeeClient, zlog)
	scheduleHandler := handler.NewScheduleHandler(scheduleService)

	router := gin.Default()
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	scheduleHandler.RegisterRoutes(router.Group(""))

	zlog.Info("Schedule service listening", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		zlog.Fatal("Server failed", zap.Error(err))
	}
}
