package main

import (
	"context"
	"log"
	"time"

	"wfh-backend/internal/client"
	"wfh-backend/internal/config"
	"wfh-backend/internal/database"
	"wfh-backend/internal/model"
	"wfh-backend/internal/repository"
	"wfh-backend/pkg/logger"
	"wfh-backend/pkg/validation"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// rejectStale rejects every request still Pending the day before its date.
// Going through the scheduler endpoint keeps the schedule entry and the
// notifications consistent with a manual rejection.
func rejectStale(repo repository.WorkRequestRepository, scheduler *client.SchedulerClient, zlog *zap.Logger) {
	ctx := context.Background()
	cutoff := time.Now().AddDate(0, 0, 1)

	requests, err := repo.ListPendingDueBy(ctx, cutoff)
	if err != nil {
		zlog.Error("Listing pending requests failed", zap.Error(err))
		return
	}
	if len(requests) == 0 {
		zlog.Info("No pending requests due for auto-rejection")
		return
	}

	for _, request := range requests {
		comments := "Automatically rejected: no decision was made before " + validation.FormatDate(request.RequestDate)
		err := scheduler.UpdateWorkRequestAndSchedule(ctx, request.RequestID, model.StatusRejected, comments)
		if err != nil {
			zlog.Error("Auto-rejection failed",
				zap.Int64("request_id", request.RequestID),
				zap.Error(err))
			continue
		}
		zlog.Info("Auto-rejected stale request",
			zap.Int64("request_id", request.RequestID),
			zap.String("request_date", validation.FormatDate(request.RequestDate)))
	}
}

func main() {
	cfg := config.Load("")

	zlog, err := logger.New("autorejector")
	if err != nil {
		log.Fatalf("Logger init failed: %v", err)
	}
	defer zlog.Sync()

	db, err := database.NewConnection(cfg.DSN())
	if err != nil {
		zlog.Fatal("Database connection failed", zap.Error(err))
	}

	workRequestRepo := repository.NewWorkRequestRepository(db)
	schedulerClient := client.NewSchedulerClient(cfg.SchedulerServiceURL)

	c := cron.New()
	if _, err := c.AddFunc("0 0 * * *", func() {
		rejectStale(workRequestRepo, schedulerClient, zlog)
	}); err != nil {
		zlog.Fatal("Scheduling auto-rejection failed", zap.Error(err))
	}

	zlog.Info("Autorejector running, sweep scheduled at midnight")
	rejectStale(workRequestRepo, schedulerClient, zlog)
	c.Run()
}
