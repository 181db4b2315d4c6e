package service

import (
	"context"
	"errors"
	"time"

	"wfh-backend/internal/client"
	"wfh-backend/internal/model"
	"wfh-backend/internal/repository"
	"wfh-backend/pkg/apperr"
	"wfh-backend/pkg/pagination"
	"wfh-backend/pkg/validation"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DTOs for request validation
type CreateScheduleRequest struct {
	RequestID int64 `json:"request_id" binding:"required"`
}

type UpdateScheduleStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ScheduleResponse is the wire shape of a schedule entry.
type ScheduleResponse struct {
	ScheduleID  int64  `json:"schedule_id"`
	StaffID     int64  `json:"staff_id"`
	Date        string `json:"date"`
	RequestID   int64  `json:"request_id"`
	ApprovedBy  *int64 `json:"approved_by"`
	RequestType string `json:"request_type"`
	Status      string `json:"status"`
	CreatedDate string `json:"created_date"`
}

// TeamScheduleEntry pairs a team member with their schedule rows.
type TeamScheduleEntry struct {
	Employee client.Employee    `json:"employee"`
	Schedule []ScheduleResponse `json:"schedule"`
}

// EmployeeDirectory is the slice of the employee service the schedule
// service needs for team and department views.
type EmployeeDirectory interface {
	TeamMembers(ctx context.Context, managerID int64) ([]client.Employee, error)
	ListByDept(ctx context.Context, dept string) ([]client.Employee, error)
}

// ScheduleService defines the interface for business logic related to Schedule
type ScheduleService interface {
	CreateFromWorkRequest(ctx context.Context, req CreateScheduleRequest) (*ScheduleResponse, error)
	UpdateStatus(ctx context.Context, requestID int64, req UpdateScheduleStatusRequest) (*ScheduleResponse, error)
	List(ctx context.Context, p pagination.Params) ([]ScheduleResponse, int64, error)
	ListByStaff(ctx context.Context, staffID int64) ([]ScheduleResponse, error)
	ListManagerView(ctx context.Context, managerID int64) (own, team []ScheduleResponse, err error)
	ListTeam(ctx context.Context, managerID int64) ([]TeamScheduleEntry, error)
	ListDept(ctx context.Context, dept string) ([]TeamScheduleEntry, error)
}

type scheduleService struct {
	repo      repository.ScheduleRepository
	requests  repository.WorkRequestRepository
	directory EmployeeDirectory
	log       *zap.Logger
	now       func() time.Time
}

// NewScheduleService returns a new instance of ScheduleService
func NewScheduleService(
	repo repository.ScheduleRepository,
	requests repository.WorkRequestRepository,
	directory EmployeeDirectory,
	log *zap.Logger,
) ScheduleService {
	return &scheduleService{
		repo:      repo,
		requests:  requests,
		directory: directory,
		log:       log,
		now:       time.Now,
	}
}

func mapSchedule(s *model.Schedule) *ScheduleResponse {
	return &ScheduleResponse{
		ScheduleID:  s.ScheduleID,
		StaffID:     s.StaffID,
		Date:        validation.FormatDate(s.Date),
		RequestID:   s.RequestID,
		ApprovedBy:  s.ApprovedBy,
		RequestType: s.RequestType,
		Status:      s.Status,
		CreatedDate: s.CreatedDate.Format(time.RFC3339),
	}
}

// CreateFromWorkRequest derives a schedule entry from an existing work
// request, copying staff, date, approver, type and status. The date rules
// are re-checked here even though the work request service already applied
// them; the schedule service does not trust its callers.
func (s *scheduleService) CreateFromWorkRequest(ctx context.Context, req CreateScheduleRequest) (*ScheduleResponse, error) {
	if req.RequestID == 0 {
		return nil, apperr.Validation("Missing required field: request_id")
	}

	request, err := s.requests.GetByID(ctx, req.RequestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Work request not found")
		}
		return nil, apperr.Unexpected(err)
	}

	if wd := request.RequestDate.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return nil, apperr.Validation("WFH requests cannot fall on a weekend")
	}
	if request.RequestDate.Sub(s.now()) < minLeadTime {
		return nil, apperr.Validation("WFH requests must be submitted at least 24 hours in advance")
	}

	if _, err := s.repo.GetByRequestID(ctx, req.RequestID); err == nil {
		return nil, apperr.Conflict("Schedule for this request already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Unexpected(err)
	}

	schedule := &model.Schedule{
		StaffID:     request.StaffID,
		Date:        request.RequestDate,
		RequestID:   request.RequestID,
		ApprovedBy:  request.ApprovalManagerID,
		RequestType: request.RequestType,
		Status:      request.Status,
	}

	if err := s.repo.Create(ctx, schedule); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Schedule for this request already exists")
		}
		return nil, apperr.Unexpected(err)
	}

	s.log.Info("schedule created",
		zap.Int64("schedule_id", schedule.ScheduleID),
		zap.Int64("request_id", schedule.RequestID))

	return mapSchedule(schedule), nil
}

func (s *scheduleService) UpdateStatus(ctx context.Context, requestID int64, req UpdateScheduleStatusRequest) (*ScheduleResponse, error) {
	if req.Status == "" {
		return nil, apperr.Validation("Status is required")
	}
	switch req.Status {
	case model.StatusApproved, model.StatusRejected, model.StatusRevoked, model.StatusWithdrawn, model.StatusCancelled:
	default:
		return nil, apperr.Validation("Invalid status")
	}

	schedule, err := s.repo.GetByRequestID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Schedule not found")
		}
		return nil, apperr.Unexpected(err)
	}

	schedule.Status = req.Status
	if err := s.repo.Update(ctx, schedule); err != nil {
		return nil, apperr.Unexpected(err)
	}

	s.log.Info("schedule status updated",
		zap.Int64("request_id", requestID),
		zap.String("status", req.Status))

	return mapSchedule(schedule), nil
}

func (s *scheduleService) mapList(schedules []model.Schedule, err error) ([]ScheduleResponse, error) {
	if err != nil {
		return nil, apperr.Unexpected(err)
	}
	if len(schedules) == 0 {
		return nil, apperr.NotFound("There are no schedules")
	}
	responses := make([]ScheduleResponse, 0, len(schedules))
	for i := range schedules {
		responses = append(responses, *mapSchedule(&schedules[i]))
	}
	return responses, nil
}

func (s *scheduleService) List(ctx context.Context, p pagination.Params) ([]ScheduleResponse, int64, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, apperr.Unexpected(err)
	}
	schedules, err := s.repo.List(ctx, p.Limit, p.Offset)
	responses, err := s.mapList(schedules, err)
	if err != nil {
		return nil, 0, err
	}
	return responses, total, nil
}

func (s *scheduleService) ListByStaff(ctx context.Context, staffID int64) ([]ScheduleResponse, error) {
	schedules, err := s.repo.ListByStaff(ctx, staffID)
	return s.mapList(schedules, err)
}

// ListManagerView returns the manager's own schedule alongside the schedules
// they approved.
func (s *scheduleService) ListManagerView(ctx context.Context, managerID int64) ([]ScheduleResponse, []ScheduleResponse, error) {
	own, err := s.repo.ListByStaff(ctx, managerID)
	if err != nil {
		return nil, nil, apperr.Unexpected(err)
	}
	team, err := s.repo.ListByApprover(ctx, managerID)
	if err != nil {
		return nil, nil, apperr.Unexpected(err)
	}
	if len(own) == 0 && len(team) == 0 {
		return nil, nil, apperr.NotFound("There are no schedules found")
	}

	mapAll := func(schedules []model.Schedule) []ScheduleResponse {
		out := make([]ScheduleResponse, 0, len(schedules))
		for i := range schedules {
			out = append(out, *mapSchedule(&schedules[i]))
		}
		return out
	}
	return mapAll(own), mapAll(team), nil
}

func (s *scheduleService) collect(ctx context.Context, members []client.Employee) ([]TeamScheduleEntry, error) {
	if len(members) == 0 {
		return nil, apperr.NotFound("No team members found")
	}
	entries := make([]TeamScheduleEntry, 0, len(members))
	for _, member := range members {
		schedules, err := s.repo.ListByStaff(ctx, member.StaffID)
		if err != nil {
			return nil, apperr.Unexpected(err)
		}
		entry := TeamScheduleEntry{Employee: member, Schedule: []ScheduleResponse{}}
		for i := range schedules {
			entry.Schedule = append(entry.Schedule, *mapSchedule(&schedules[i]))
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *scheduleService) ListTeam(ctx context.Context, managerID int64) ([]TeamScheduleEntry, error) {
	members, err := s.directory.TeamMembers(ctx, managerID)
	if err != nil {
		return nil, err
	}
	return s.collect(ctx, members)
}

func (s *scheduleService) ListDept(ctx context.Context, dept string) ([]TeamScheduleEntry, error) {
	members, err := s.directory.ListByDept(ctx, dept)
	if err != nil {
		return nil, err
	}
	return s.collect(ctx, members)
}
