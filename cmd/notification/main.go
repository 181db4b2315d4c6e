package main

import (
	"log"

	"wfh-backend/internal/config"
	"wfh-backend/internal/database"
	"wfh-backend/internal/handler"
	"wfh-backend/internal/middleware"
	"wfh-backend/internal/repository"
	"wfh-backend/internal/service"
	"wfh-backend/internal/websocket"
	"wfh-backend/pkg/logger"
	"wfh-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load("5008")

	zlog, err := logger.New("notification")
	if err != nil {
		log.Fatalf("Logger init failed: %v", err)
	}
	defer zlog.Sync()

	db, err := database.NewConnection(cfg.DSN())
	if err != nil {
		zlog.Fatal("Database connection failed", zap.Error(err))
	}

	validation.Register()

	wsHub := websocket.NewHub(zlog)
	go wsHub.Run()

	notificationRepo := repository.NewNotificationRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	txm := repository.NewTransactionManager(db)

	notificationService := service.NewNotificationService(notificationRepo, employeeRepo, txm, wsHub, zlog)
	notificationHandler := handler.NewNotificationHandler(notificationService)

	router := gin.Default()
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, middleware.GetJWTSecret())
	})

	notificationHandler.RegisterRoutes(router.Group(""))

	zlog.Info("Notification service listening", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		zlog.Fatal("Server failed", zap.Error(err))
	}
}
