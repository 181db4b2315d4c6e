package repository

import (
	"context"

	"wfh-backend/internal/model"

	"gorm.io/gorm"
)

// AuditRepository stores the append-only trail of manager decisions.
type AuditRepository interface {
	Log(ctx context.Context, entry *model.AuditLog) error
	ListByRequest(ctx context.Context, requestID int64) ([]model.AuditLog, error)
}

type auditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Log(ctx context.Context, entry *model.AuditLog) error {
	return GetDB(ctx, r.db).Create(entry).Error
}

func (r *auditRepository) ListByRequest(ctx context.Context, requestID int64) ([]model.AuditLog, error) {
	var logs []model.AuditLog
	if err := GetDB(ctx, r.db).Where("request_id = ?", requestID).Order("timestamp").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
