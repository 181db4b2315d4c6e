package repository

import (
	"context"
	"time"

	"wfh-backend/internal/model"

	"gorm.io/gorm"
)

// WorkRequestRepository defines the interface for data access of WorkRequest entities
type WorkRequestRepository interface {
	Create(ctx context.Context, request *model.WorkRequest) error
	GetByID(ctx context.Context, requestID int64) (*model.WorkRequest, error)
	FindActiveByStaffAndDate(ctx context.Context, staffID int64, date time.Time) (*model.WorkRequest, error)
	List(ctx context.Context, limit, offset int) ([]model.WorkRequest, error)
	Count(ctx context.Context) (int64, error)
	ListByStaff(ctx context.Context, staffID int64) ([]model.WorkRequest, error)
	ListByManager(ctx context.Context, managerID int64) ([]model.WorkRequest, error)
	ListPendingDueBy(ctx context.Context, cutoff time.Time) ([]model.WorkRequest, error)
	Update(ctx context.Context, request *model.WorkRequest) error
	Delete(ctx context.Context, requestID int64) error
}

type workRequestRepository struct {
	db *gorm.DB
}

// NewWorkRequestRepository returns a new instance of WorkRequestRepository
func NewWorkRequestRepository(db *gorm.DB) WorkRequestRepository {
	return &workRequestRepository{db: db}
}

func (r *workRequestRepository) Create(ctx context.Context, request *model.WorkRequest) error {
	return GetDB(ctx, r.db).Create(request).Error
}

func (r *workRequestRepository) GetByID(ctx context.Context, requestID int64) (*model.WorkRequest, error) {
	var request model.WorkRequest
	if err := GetDB(ctx, r.db).First(&request, "request_id = ?", requestID).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

// FindActiveByStaffAndDate returns the Pending or Approved request occupying
// the (staff, date) slot, or gorm.ErrRecordNotFound when the slot is free.
func (r *workRequestRepository) FindActiveByStaffAndDate(ctx context.Context, staffID int64, date time.Time) (*model.WorkRequest, error) {
	var request model.WorkRequest
	err := GetDB(ctx, r.db).
		Where("staff_id = ? AND request_date = ? AND status IN ?", staffID, date, []string{model.StatusPending, model.StatusApproved}).
		First(&request).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *workRequestRepository) List(ctx context.Context, limit, offset int) ([]model.WorkRequest, error) {
	var requests []model.WorkRequest
	if err := GetDB(ctx, r.db).Order("request_date desc").Limit(limit).Offset(offset).Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *workRequestRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := GetDB(ctx, r.db).Model(&model.WorkRequest{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *workRequestRepository) ListByStaff(ctx context.Context, staffID int64) ([]model.WorkRequest, error) {
	var requests []model.WorkRequest
	if err := GetDB(ctx, r.db).Where("staff_id = ?", staffID).Order("request_date desc").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *workRequestRepository) ListByManager(ctx context.Context, managerID int64) ([]model.WorkRequest, error) {
	var requests []model.WorkRequest
	if err := GetDB(ctx, r.db).Where("approval_manager_id = ?", managerID).Order("request_date desc").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// ListPendingDueBy returns pending requests dated on or before cutoff; these
// are the candidates for automatic rejection.
func (r *workRequestRepository) ListPendingDueBy(ctx context.Context, cutoff time.Time) ([]model.WorkRequest, error) {
	var requests []model.WorkRequest
	err := GetDB(ctx, r.db).
		Where("status = ? AND request_date <= ?", model.StatusPending, cutoff).
		Order("request_date").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *workRequestRepository) Update(ctx context.Context, request *model.WorkRequest) error {
	return GetDB(ctx, r.db).Save(request).Error
}

func (r *workRequestRepository) Delete(ctx context.Context, requestID int64) error {
	return GetDB(ctx, r.db).Where("request_id = ?", requestID).Delete(&model.WorkRequest{}).Error
}
