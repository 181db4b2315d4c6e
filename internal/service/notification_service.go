package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wfh-backend/internal/model"
	"wfh-backend/internal/repository"
	"wfh-backend/pkg/apperr"
	"wfh-backend/pkg/validation"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Pusher is the live-update channel notifications are broadcast on. A nil
// pusher disables push; the rows are still persisted.
type Pusher interface {
	SendToStaff(staffID int64, messageType string, payload interface{})
}

// DTOs for request validation
type CreateNotificationRequest struct {
	SenderID    int64  `json:"sender_id" binding:"required"`
	ReceiverID  int64  `json:"receiver_id" binding:"required"`
	RequestID   int64  `json:"request_id" binding:"required"`
	RequestType string `json:"request_type" binding:"required"`
	Status      string `json:"status" binding:"required"`
	RequestDate string `json:"request_date" binding:"required"`
	Exceed      bool   `json:"exceed"`
}

// NotificationResponse is the wire shape of a notification.
type NotificationResponse struct {
	NotificationID   int64  `json:"notification_id"`
	SenderID         int64  `json:"sender_id"`
	ReceiverID       int64  `json:"receiver_id"`
	RequestID        int64  `json:"request_id"`
	Message          string `json:"message"`
	NotificationDate string `json:"notification_date"`
	IsRead           bool   `json:"is_read"`
}

// NotificationService defines the interface for business logic related to Notification
type NotificationService interface {
	Create(ctx context.Context, req CreateNotificationRequest) ([]NotificationResponse, error)
	Read(ctx context.Context, notificationID int64) (*NotificationResponse, error)
	Delete(ctx context.Context, notificationID int64) error
	ListByReceiver(ctx context.Context, receiverID int64) ([]NotificationResponse, error)
}

type notificationService struct {
	repo      repository.NotificationRepository
	employees repository.EmployeeRepository
	txm       repository.TransactionManager
	pusher    Pusher
	log       *zap.Logger
}

// NewNotificationService returns a new instance of NotificationService
func NewNotificationService(
	repo repository.NotificationRepository,
	employees repository.EmployeeRepository,
	txm repository.TransactionManager,
	pusher Pusher,
	log *zap.Logger,
) NotificationService {
	return &notificationService{
		repo:      repo,
		employees: employees,
		txm:       txm,
		pusher:    pusher,
		log:       log,
	}
}

func mapNotification(n *model.Notification) *NotificationResponse {
	return &NotificationResponse{
		NotificationID:   n.NotificationID,
		SenderID:         n.SenderID,
		ReceiverID:       n.ReceiverID,
		RequestID:        n.RequestID,
		Message:          n.Message,
		NotificationDate: n.NotificationDate.Format(time.RFC3339),
		IsRead:           n.IsRead,
	}
}

// primaryMessage renders the receiver-facing message for a status change.
func primaryMessage(sender, status, date, requestType string) string {
	switch status {
	case model.StatusPending:
		return fmt.Sprintf("%s has requested WFH on %s (%s)", sender, date, requestType)
	case model.StatusApproved:
		return fmt.Sprintf("%s approved your WFH request for %s (%s)", sender, date, requestType)
	case model.StatusRejected:
		return fmt.Sprintf("%s rejected your WFH request for %s (%s)", sender, date, requestType)
	case model.StatusCancelled:
		return fmt.Sprintf("%s cancelled their WFH request for %s (%s)", sender, date, requestType)
	case model.StatusWithdrawn:
		return fmt.Sprintf("%s withdrew their WFH request for %s (%s)", sender, date, requestType)
	default: // Revoked
		return fmt.Sprintf("%s revoked your WFH request for %s (%s)", sender, date, requestType)
	}
}

// selfMessage renders the sender's own confirmation for actions initiated by
// the sender (submission, cancellation, withdrawal).
func selfMessage(status, date, requestType string) string {
	switch status {
	case model.StatusPending:
		return fmt.Sprintf("You have submitted a WFH request for %s (%s)", date, requestType)
	case model.StatusCancelled:
		return fmt.Sprintf("You have cancelled your WFH request for %s (%s)", date, requestType)
	default: // Withdrawn
		return fmt.Sprintf("You have withdrawn your WFH request for %s (%s)", date, requestType)
	}
}

// Create persists the full fan-out for one status transition atomically:
// the receiver-facing message, a self-confirmation when the sender initiated
// the transition, and a quota warning when the exceed flag is set.
func (s *notificationService) Create(ctx context.Context, req CreateNotificationRequest) ([]NotificationResponse, error) {
	if !model.ValidStatus(req.Status) {
		return nil, apperr.Validation("Invalid status provided")
	}
	if _, err := validation.ParseDate(req.RequestDate); err != nil {
		return nil, apperr.Validation("Invalid date format, expected YYYY-MM-DD")
	}

	sender, err := s.employees.GetByID(ctx, req.SenderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Sender not found")
		}
		return nil, apperr.Unexpected(err)
	}

	notifications := []*model.Notification{{
		SenderID:   req.SenderID,
		ReceiverID: req.ReceiverID,
		RequestID:  req.RequestID,
		Message:    primaryMessage(sender.DisplayName(), req.Status, req.RequestDate, req.RequestType),
	}}

	switch req.Status {
	case model.StatusPending, model.StatusCancelled, model.StatusWithdrawn:
		notifications = append(notifications, &model.Notification{
			SenderID:   req.SenderID,
			ReceiverID: req.SenderID,
			RequestID:  req.RequestID,
			Message:    selfMessage(req.Status, req.RequestDate, req.RequestType),
		})
	}

	if req.Exceed {
		notifications = append(notifications, &model.Notification{
			SenderID:   req.SenderID,
			ReceiverID: req.SenderID,
			RequestID:  req.RequestID,
			Message:    fmt.Sprintf("You have exceeded your weekly WFH quota for the week of %s", req.RequestDate),
		})
	}

	err = s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		for _, notification := range notifications {
			if err := s.repo.Create(txCtx, notification); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperr.Unexpected(err)
	}

	responses := make([]NotificationResponse, 0, len(notifications))
	for _, notification := range notifications {
		responses = append(responses, *mapNotification(notification))
		if s.pusher != nil {
			s.pusher.SendToStaff(notification.ReceiverID, "notification", mapNotification(notification))
		}
	}

	s.log.Info("notifications created",
		zap.Int64("request_id", req.RequestID),
		zap.String("status", req.Status),
		zap.Int("count", len(responses)))

	return responses, nil
}

// Read toggles the read marker on a notification.
func (s *notificationService) Read(ctx context.Context, notificationID int64) (*NotificationResponse, error) {
	notification, err := s.repo.GetByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Notification not found")
		}
		return nil, apperr.Unexpected(err)
	}

	notification.IsRead = !notification.IsRead
	if err := s.repo.Update(ctx, notification); err != nil {
		return nil, apperr.Unexpected(err)
	}
	return mapNotification(notification), nil
}

func (s *notificationService) Delete(ctx context.Context, notificationID int64) error {
	if _, err := s.repo.GetByID(ctx, notificationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Notification not found")
		}
		return apperr.Unexpected(err)
	}
	if err := s.repo.Delete(ctx, notificationID); err != nil {
		return apperr.Unexpected(err)
	}
	return nil
}

func (s *notificationService) ListByReceiver(ctx context.Context, receiverID int64) ([]NotificationResponse, error) {
	notifications, err := s.repo.ListByReceiver(ctx, receiverID)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}
	responses := make([]NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, *mapNotification(&notifications[i]))
	}
	return responses, nil
}
