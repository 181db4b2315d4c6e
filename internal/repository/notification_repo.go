package repository

import (
	"context"

	"wfh-backend/internal/model"

	"gorm.io/gorm"
)

// NotificationRepository defines the interface for data access of Notification entities
type NotificationRepository interface {
	Create(ctx context.Context, notification *model.Notification) error
	GetByID(ctx context.Context, notificationID int64) (*model.Notification, error)
	ListByReceiver(ctx context.Context, receiverID int64) ([]model.Notification, error)
	Update(ctx context.Context, notification *model.Notification) error
	Delete(ctx context.Context, notificationID int64) error
}

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository returns a new instance of NotificationRepository
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notification *model.Notification) error {
	return GetDB(ctx, r.db).Create(notification).Error
}

func (r *notificationRepository) GetByID(ctx context.Context, notificationID int64) (*model.Notification, error) {
	var notification model.Notification
	if err := GetDB(ctx, r.db).First(&notification, "notification_id = ?", notificationID).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) ListByReceiver(ctx context.Context, receiverID int64) ([]model.Notification, error) {
	var notifications []model.Notification
	if err := GetDB(ctx, r.db).Where("receiver_id = ?", receiverID).Order("notification_date desc").Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *notificationRepository) Update(ctx context.Context, notification *model.Notification) error {
	return GetDB(ctx, r.db).Save(notification).Error
}

func (r *notificationRepository) Delete(ctx context.Context, notificationID int64) error {
	return GetDB(ctx, r.db).Where("notification_id = ?", notificationID).Delete(&model.Notification{}).Error
}
