package main

import (
	"log"

	_ "wfh-backend/api/swagger" // swagger docs
	"wfh-backend/internal/client"
	"wfh-backend/internal/config"
	"wfh-backend/internal/handler"
	"wfh-backend/internal/middleware"
	"wfh-backend/internal/saga"
	"wfh-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title           WFH Scheduler API
// @version         1.0
// @description     Composite endpoints that coordinate the work request, schedule and notification services.
// @host            localhost:5005
// @BasePath        /
func main() {
	cfg := config.Load("5005")

	zlog, err := logger.New("scheduler")
	if err != nil {
		log.Fatalf("Logger init failed: %v", err)
	}
	defer zlog.Sync()

	// The orchestrator owns no tables; it only talks to the other services.
	orchestrator := saga.NewOrchestrator(
		client.NewWorkRequestClient(cfg.WorkRequestServiceURL),
		client.NewScheduleClient(cfg.ScheduleServiceURL),
		client.NewNotificationClient(cfg.NotificationServiceURL),
		zlog,
	)
	schedulerHandler := handler.NewSchedulerHandler(orchestrator)

	router := gin.Default()
	router.Use(middleware.CORS())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	schedulerHandler.RegisterRoutes(router.Group(""))

	zlog.Info("Scheduler service listening", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		zlog.Fatal("Server failed", zap.Error(err))
	}
}
