package saga

import (
	"context"

	"wfh-backend/internal/client"
	"wfh-backend/internal/model"
	"wfh-backend/pkg/apperr"
	"wfh-backend/pkg/validation"

	"go.uber.org/zap"
)

// DTOs for request validation
type CreateWorkRequestSagaRequest struct {
	StaffID     int64  `json:"staff_id"`
	RequestType string `json:"request_type"`
	RequestDate string `json:"request_date"`
	Reason      string `json:"reason"`
	Exceed      bool   `json:"exceed"`
}

type UpdateWorkRequestSagaRequest struct {
	Status   string `json:"status"`
	Comments string `json:"comments"`
}

// SagaResult bundles the downstream payloads of a completed flow.
type SagaResult struct {
	WorkRequest  *client.WorkRequest   `json:"work_request"`
	Schedule     *client.Schedule      `json:"schedule"`
	Notification []client.Notification `json:"notification"`
}

// Orchestrator drives the create and update sagas over the three downstream
// services. All calls are sequential, synchronous and blocking; no timeouts,
// no retries.
type Orchestrator struct {
	workRequests  *client.WorkRequestClient
	schedules     *client.ScheduleClient
	notifications *client.NotificationClient
	log           *zap.Logger
}

// NewOrchestrator returns a new instance of Orchestrator
func NewOrchestrator(
	workRequests *client.WorkRequestClient,
	schedules *client.ScheduleClient,
	notifications *client.NotificationClient,
	log *zap.Logger,
) *Orchestrator {
	return &Orchestrator{
		workRequests:  workRequests,
		schedules:     schedules,
		notifications: notifications,
		log:           log,
	}
}

// CreateWorkRequest runs the create-saga:
// work request -> schedule -> notification. Only the schedule step is
// compensated (by deleting the just-created work request); a notification
// failure is surfaced with the first two steps left committed.
func (o *Orchestrator) CreateWorkRequest(ctx context.Context, req CreateWorkRequestSagaRequest) (*SagaResult, error) {
	if req.StaffID == 0 || req.RequestType == "" || req.RequestDate == "" || req.Reason == "" {
		return nil, apperr.Validation("Missing required fields")
	}

	sg := New("create_work_request", o.log)
	result := &SagaResult{}

	err := sg.Run(ctx, StepWorkRequest,
		func(ctx context.Context) error {
			workRequest, err := o.workRequests.Submit(ctx, client.SubmitWorkRequestPayload{
				StaffID:     req.StaffID,
				RequestType: req.RequestType,
				RequestDate: req.RequestDate,
				Reason:      req.Reason,
			})
			if err != nil {
				return err
			}
			result.WorkRequest = workRequest
			return nil
		},
		func(ctx context.Context) error {
			return o.workRequests.Delete(ctx, result.WorkRequest.RequestID)
		},
	)
	if err != nil {
		return nil, err
	}

	err = sg.Run(ctx, StepSchedule,
		func(ctx context.Context) error {
			schedule, err := o.schedules.Create(ctx, result.WorkRequest.RequestID)
			if err != nil {
				return err
			}
			result.Schedule = schedule
			return nil
		},
		nil, // nothing downstream of the schedule unwinds it
	)
	if err != nil {
		return nil, err
	}

	receiverID := req.StaffID
	if result.WorkRequest.ApprovalManagerID != nil {
		receiverID = *result.WorkRequest.ApprovalManagerID
	}

	err = sg.RunDetached(ctx, StepNotification, func(ctx context.Context) error {
		notifications, err := o.notifications.Create(ctx, client.CreateNotificationPayload{
			SenderID:    req.StaffID,
			ReceiverID:  receiverID,
			RequestID:   result.WorkRequest.RequestID,
			RequestType: req.RequestType,
			Status:      model.StatusPending,
			RequestDate: req.RequestDate,
			Exceed:      req.Exceed,
		})
		if err != nil {
			return err
		}
		result.Notification = notifications
		return nil
	})
	if err != nil {
		return nil, err
	}

	sg.Done()
	return result, nil
}

// managerInitiated statuses flow manager -> employee; the rest flow
// employee -> manager.
func managerInitiated(status string) bool {
	switch status {
	case model.StatusApproved, model.StatusRejected, model.StatusRevoked:
		return true
	}
	return false
}

// UpdateWorkRequestAndSchedule runs the update-saga:
// work request status -> schedule status -> notification. A schedule
// failure reverts the work request to Pending with empty comments; a failed
// reversion is reported as CompensationFailed.
func (o *Orchestrator) UpdateWorkRequestAndSchedule(ctx context.Context, requestID int64, req UpdateWorkRequestSagaRequest) (*SagaResult, error) {
	if req.Status == "" {
		return nil, apperr.Validation("Missing status")
	}

	sg := New("update_work_request", o.log)
	result := &SagaResult{}

	err := sg.Run(ctx, StepWorkRequest,
		func(ctx context.Context) error {
			workRequest, err := o.workRequests.UpdateStatus(ctx, requestID, req.Status, req.Comments)
			if err != nil {
				return err
			}
			result.WorkRequest = workRequest
			return nil
		},
		func(ctx context.Context) error {
			_, err := o.workRequests.UpdateStatus(ctx, requestID, model.StatusPending, "")
			return err
		},
	)
	if err != nil {
		return nil, err
	}

	requestDate, err := validation.ParseDate(result.WorkRequest.RequestDate)
	if err != nil {
		return nil, apperr.Validation("Invalid date format in work request response")
	}

	err = sg.Run(ctx, StepSchedule,
		func(ctx context.Context) error {
			schedule, err := o.schedules.UpdateStatus(ctx, requestID, req.Status)
			if err != nil {
				return err
			}
			result.Schedule = schedule
			return nil
		},
		nil,
	)
	if err != nil {
		return nil, err
	}

	employeeID := result.WorkRequest.StaffID
	managerID := employeeID
	if result.WorkRequest.ApprovalManagerID != nil {
		managerID = *result.WorkRequest.ApprovalManagerID
	}

	senderID, receiverID := employeeID, managerID
	if managerInitiated(req.Status) {
		senderID, receiverID = managerID, employeeID
	}

	err = sg.RunDetached(ctx, StepNotification, func(ctx context.Context) error {
		notifications, err := o.notifications.Create(ctx, client.CreateNotificationPayload{
			SenderID:    senderID,
			ReceiverID:  receiverID,
			RequestID:   requestID,
			RequestType: result.WorkRequest.RequestType,
			Status:      req.Status,
			RequestDate: validation.FormatDate(requestDate),
		})
		if err != nil {
			return err
		}
		result.Notification = notifications
		return nil
	})
	if err != nil {
		return nil, err
	}

	sg.Done()
	return result, nil
}
