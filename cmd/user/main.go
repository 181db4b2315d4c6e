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

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load("5001")

	zlog, err := logger.New("user")
	if err != nil {
		log.Fatalf("Logger init failed: %v", err)
	}
	defer zlog.Sync()

	db, err := database.NewConnection(cfg.DSN())
	if err != nil {
		zlog.Fatal("Database connection failed", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)

	userService := service.NewUserService(userRepo, employeeRepo)
	userHandler := handler.NewUserHandler(userService)

	router := gin.Default()
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	userHandler.RegisterRoutes(router.Group(""))

	zlog.Info("User service listening", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		zlog.Fatal("Server failed", zap.Error(err))
	}
}
