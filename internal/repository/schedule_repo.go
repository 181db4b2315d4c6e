package repository

import (
	"context"

	"wfh-backend/internal/model"

	"gorm.io/gorm"
)

// ScheduleRepository defines the interface for data access of Schedule entities
type ScheduleRepository interface {
	Create(ctx context.Context, schedule *model.Schedule) error
	GetByRequestID(ctx context.Context, requestID int64) (*model.Schedule, error)
	List(ctx context.Context, limit, offset int) ([]model.Schedule, error)
	Count(ctx context.Context) (int64, error)
	ListByStaff(ctx context.Context, staffID int64) ([]model.Schedule, error)
	ListByApprover(ctx context.Context, managerID int64) ([]model.Schedule, error)
	Update(ctx context.Context, schedule *model.Schedule) error
}

type scheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository returns a new instance of ScheduleRepository
func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) Create(ctx context.Context, schedule *model.Schedule) error {
	return GetDB(ctx, r.db).Create(schedule).Error
}

func (r *scheduleRepository) GetByRequestID(ctx context.Context, requestID int64) (*model.Schedule, error) {
	var schedule model.Schedule
	if err := GetDB(ctx, r.db).First(&schedule, "request_id = ?", requestID).Error; err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepository) List(ctx context.Context, limit, offset int) ([]model.Schedule, error) {
	var schedules []model.Schedule
	if err := GetDB(ctx, r.db).Order("date desc").Limit(limit).Offset(offset).Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := GetDB(ctx, r.db).Model(&model.Schedule{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *scheduleRepository) ListByStaff(ctx context.Context, staffID int64) ([]model.Schedule, error) {
	var schedules []model.Schedule
	if err := GetDB(ctx, r.db).Where("staff_id = ?", staffID).Order("date desc").Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepository) ListByApprover(ctx context.Context, managerID int64) ([]model.Schedule, error) {
	var schedules []model.Schedule
	if err := GetDB(ctx, r.db).Where("approved_by = ?", managerID).Order("date desc").Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepository) Update(ctx context.Context, schedule *model.Schedule) error {
	return GetDB(ctx, r.db).Save(schedule).Error
}
