package service

import (
	"context"
	"errors"
	"time"

	"wfh-backend/internal/model"
	"wfh-backend/internal/repository"
	"wfh-backend/pkg/apperr"
	"wfh-backend/pkg/pagination"
	"wfh-backend/pkg/validation"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// minLeadTime is how far ahead of the submission instant a WFH date must be.
const minLeadTime = 24 * time.Hour

// DTOs for request validation
type SubmitWorkRequestRequest struct {
	StaffID     int64  `json:"staff_id" binding:"required"`
	RequestType string `json:"request_type" binding:"required,oneof='Full Day' 'AM' 'PM'"`
	RequestDate string `json:"request_date" binding:"required,dateonly"`
	Reason      string `json:"reason" binding:"required"`
	Comments    string `json:"comments"`
}

type UpdateWorkRequestStatusRequest struct {
	Status   string `json:"status" binding:"required"`
	Comments string `json:"comments"`
}

// WorkRequestResponse is the wire shape of a work request; dates use the
// YYYY-MM-DD format.
type WorkRequestResponse struct {
	RequestID         int64   `json:"request_id"`
	StaffID           int64   `json:"staff_id"`
	RequestType       string  `json:"request_type"`
	RequestDate       string  `json:"request_date"`
	Reason            string  `json:"reason"`
	Status            string  `json:"status"`
	ApprovalManagerID *int64  `json:"approval_manager_id"`
	DecisionDate      *string `json:"decision_date"`
	Comments          string  `json:"comments"`
	CreatedDate       string  `json:"created_date"`
}

// WorkRequestService defines the interface for business logic related to WorkRequest
type WorkRequestService interface {
	Submit(ctx context.Context, req SubmitWorkRequestRequest) (*WorkRequestResponse, error)
	UpdateStatus(ctx context.Context, requestID int64, req UpdateWorkRequestStatusRequest) (*WorkRequestResponse, error)
	Delete(ctx context.Context, requestID int64) error
	GetByID(ctx context.Context, requestID int64) (*WorkRequestResponse, error)
	List(ctx context.Context, p pagination.Params) ([]WorkRequestResponse, int64, error)
	ListByStaff(ctx context.Context, staffID int64) ([]WorkRequestResponse, error)
	ListByManager(ctx context.Context, managerID int64) ([]WorkRequestResponse, error)
	ListByStaffEmail(ctx context.Context, email string) ([]WorkRequestResponse, error)
	ListByManagerEmail(ctx context.Context, email string) ([]WorkRequestResponse, error)
	AuditTrail(ctx context.Context, requestID int64) ([]model.AuditLog, error)
}

type workRequestService struct {
	repo      repository.WorkRequestRepository
	employees repository.EmployeeRepository
	audits    repository.AuditRepository
	txm       repository.TransactionManager
	log       *zap.Logger
	now       func() time.Time
}

// NewWorkRequestService returns a new instance of WorkRequestService
func NewWorkRequestService(
	repo repository.WorkRequestRepository,
	employees repository.EmployeeRepository,
	audits repository.AuditRepository,
	txm repository.TransactionManager,
	log *zap.Logger,
) WorkRequestService {
	return &workRequestService{
		repo:      repo,
		employees: employees,
		audits:    audits,
		txm:       txm,
		log:       log,
		now:       time.Now,
	}
}

func mapWorkRequest(w *model.WorkRequest) *WorkRequestResponse {
	resp := &WorkRequestResponse{
		RequestID:         w.RequestID,
		StaffID:           w.StaffID,
		RequestType:       w.RequestType,
		RequestDate:       validation.FormatDate(w.RequestDate),
		Reason:            w.Reason,
		Status:            w.Status,
		ApprovalManagerID: w.ApprovalManagerID,
		Comments:          w.Comments,
		CreatedDate:       w.CreatedDate.Format(time.RFC3339),
	}
	if w.DecisionDate != nil {
		d := w.DecisionDate.Format(time.RFC3339)
		resp.DecisionDate = &d
	}
	return resp
}

func (s *workRequestService) Submit(ctx context.Context, req SubmitWorkRequestRequest) (*WorkRequestResponse, error) {
	if req.StaffID == 0 || req.RequestType == "" || req.RequestDate == "" || req.Reason == "" {
		return nil, apperr.Validation("Missing required fields")
	}

	requestDate, err := validation.ParseDate(req.RequestDate)
	if err != nil {
		return nil, apperr.Validation("Invalid date format, expected YYYY-MM-DD")
	}

	if wd := requestDate.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return nil, apperr.Validation("WFH requests cannot fall on a weekend")
	}

	if requestDate.Sub(s.now()) < minLeadTime {
		return nil, apperr.Validation("WFH requests must be submitted at least 24 hours in advance")
	}

	employee, err := s.employees.GetByID(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Employee not found")
		}
		return nil, apperr.Unexpected(err)
	}
	if employee.ReportingManager == nil {
		return nil, apperr.NotFound("Employee has no reporting manager on file")
	}

	if _, err := s.repo.FindActiveByStaffAndDate(ctx, req.StaffID, requestDate); err == nil {
		return nil, apperr.Conflict("You have already submitted a WFH request for that day")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Unexpected(err)
	}

	request := &model.WorkRequest{
		StaffID:           req.StaffID,
		RequestType:       req.RequestType,
		RequestDate:       requestDate,
		Reason:            req.Reason,
		Status:            model.StatusPending,
		ApprovalManagerID: employee.ReportingManager,
		Comments:          req.Comments,
	}

	if err := s.repo.Create(ctx, request); err != nil {
		// The partial unique index closes the race two concurrent submissions
		// can win past the duplicate check above.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("You have already submitted a WFH request for that day")
		}
		return nil, apperr.Unexpected(err)
	}

	s.log.Info("work request submitted",
		zap.Int64("request_id", request.RequestID),
		zap.Int64("staff_id", request.StaffID),
		zap.String("request_date", req.RequestDate))

	return mapWorkRequest(request), nil
}

func (s *workRequestService) UpdateStatus(ctx context.Context, requestID int64, req UpdateWorkRequestStatusRequest) (*WorkRequestResponse, error) {
	if req.Status == "" {
		return nil, apperr.Validation("Status is required")
	}
	if !model.ValidStatus(req.Status) {
		return nil, apperr.Validation("Invalid status")
	}
	if (req.Status == model.StatusRejected || req.Status == model.StatusRevoked) && req.Comments == "" {
		return nil, apperr.Validation("Comments are required when rejecting or revoking a request")
	}

	request, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Work request not found")
		}
		return nil, apperr.Unexpected(err)
	}

	request.Status = req.Status
	request.Comments = req.Comments
	if req.Status == model.StatusPending {
		// Revert path used by the orchestrator's compensation: the request
		// goes back to an undecided state.
		request.DecisionDate = nil
	} else {
		decided := s.now()
		request.DecisionDate = &decided
	}

	err = s.txm.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.Update(txCtx, request); err != nil {
			return err
		}
		if req.Status == model.StatusPending {
			return nil
		}
		managerID := request.StaffID
		if request.ApprovalManagerID != nil {
			managerID = *request.ApprovalManagerID
		}
		return s.audits.Log(txCtx, &model.AuditLog{
			RequestID:   request.RequestID,
			ManagerID:   managerID,
			ActionTaken: req.Status,
			Comments:    req.Comments,
		})
	})
	if err != nil {
		return nil, apperr.Unexpected(err)
	}

	s.log.Info("work request status updated",
		zap.Int64("request_id", request.RequestID),
		zap.String("status", req.Status))

	return mapWorkRequest(request), nil
}

func (s *workRequestService) Delete(ctx context.Context, requestID int64) error {
	if _, err := s.repo.GetByID(ctx, requestID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Work request not found")
		}
		return apperr.Unexpected(err)
	}
	if err := s.repo.Delete(ctx, requestID); err != nil {
		return apperr.Unexpected(err)
	}
	s.log.Info("work request deleted", zap.Int64("request_id", requestID))
	return nil
}

func (s *workRequestService) GetByID(ctx context.Context, requestID int64) (*WorkRequestResponse, error) {
	request, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Work request not found")
		}
		return nil, apperr.Unexpected(err)
	}
	return mapWorkRequest(request), nil
}

func (s *workRequestService) mapList(requests []model.WorkRequest, err error) ([]WorkRequestResponse, error) {
	if err != nil {
		return nil, apperr.Unexpected(err)
	}
	if len(requests) == 0 {
		return nil, apperr.NotFound("There are no requests")
	}
	responses := make([]WorkRequestResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, *mapWorkRequest(&requests[i]))
	}
	return responses, nil
}

func (s *workRequestService) List(ctx context.Context, p pagination.Params) ([]WorkRequestResponse, int64, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, apperr.Unexpected(err)
	}
	requests, err := s.repo.List(ctx, p.Limit, p.Offset)
	responses, err := s.mapList(requests, err)
	if err != nil {
		return nil, 0, err
	}
	return responses, total, nil
}

func (s *workRequestService) ListByStaff(ctx context.Context, staffID int64) ([]WorkRequestResponse, error) {
	requests, err := s.repo.ListByStaff(ctx, staffID)
	return s.mapList(requests, err)
}

func (s *workRequestService) ListByManager(ctx context.Context, managerID int64) ([]WorkRequestResponse, error) {
	requests, err := s.repo.ListByManager(ctx, managerID)
	return s.mapList(requests, err)
}

func (s *workRequestService) ListByStaffEmail(ctx context.Context, email string) ([]WorkRequestResponse, error) {
	employee, err := s.employees.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Employee not found")
		}
		return nil, apperr.Unexpected(err)
	}
	return s.ListByStaff(ctx, employee.StaffID)
}

func (s *workRequestService) ListByManagerEmail(ctx context.Context, email string) ([]WorkRequestResponse, error) {
	employee, err := s.employees.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Employee not found")
		}
		return nil, apperr.Unexpected(err)
	}
	return s.ListByManager(ctx, employee.StaffID)
}

func (s *workRequestService) AuditTrail(ctx context.Context, requestID int64) ([]model.AuditLog, error) {
	if _, err := s.repo.GetByID(ctx, requestID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Work request not found")
		}
		return nil, apperr.Unexpected(err)
	}
	logs, err := s.audits.ListByRequest(ctx, requestID)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}
	return logs, nil
}
