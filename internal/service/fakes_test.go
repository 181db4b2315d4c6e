package service

import (
	"context"
	"time"

	"wfh-backend/internal/model"

	"gorm.io/gorm"
)

// In-memory repository fakes shared by the service tests. They implement
// just enough of the repository contracts to exercise the business rules.

type fakeTxManager struct{}

func (fakeTxManager) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

type fakeWorkRequestRepo struct {
	requests  map[int64]*model.WorkRequest
	nextID    int64
	createErr error
}

func newFakeWorkRequestRepo() *fakeWorkRequestRepo {
	return &fakeWorkRequestRepo{requests: map[int64]*model.WorkRequest{}, nextID: 1}
}

func (f *fakeWorkRequestRepo) Create(_ context.Context, request *model.WorkRequest) error {
	if f.createErr != nil {
		return f.createErr
	}
	request.RequestID = f.nextID
	request.CreatedDate = time.Now()
	f.nextID++
	copied := *request
	f.requests[request.RequestID] = &copied
	return nil
}

func (f *fakeWorkRequestRepo) GetByID(_ context.Context, requestID int64) (*model.WorkRequest, error) {
	request, ok := f.requests[requestID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *request
	return &copied, nil
}

func (f *fakeWorkRequestRepo) FindActiveByStaffAndDate(_ context.Context, staffID int64, date time.Time) (*model.WorkRequest, error) {
	for _, request := range f.requests {
		if request.StaffID == staffID && request.RequestDate.Equal(date) && request.Active() {
			copied := *request
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeWorkRequestRepo) List(_ context.Context, limit, offset int) ([]model.WorkRequest, error) {
	out := make([]model.WorkRequest, 0, len(f.requests))
	for _, request := range f.requests {
		out = append(out, *request)
	}
	if offset > len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeWorkRequestRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.requests)), nil
}

func (f *fakeWorkRequestRepo) ListByStaff(_ context.Context, staffID int64) ([]model.WorkRequest, error) {
	var out []model.WorkRequest
	for _, request := range f.requests {
		if request.StaffID == staffID {
			out = append(out, *request)
		}
	}
	return out, nil
}

func (f *fakeWorkRequestRepo) ListByManager(_ context.Context, managerID int64) ([]model.WorkRequest, error) {
	var out []model.WorkRequest
	for _, request := range f.requests {
		if request.ApprovalManagerID != nil && *request.ApprovalManagerID == managerID {
			out = append(out, *request)
		}
	}
	return out, nil
}

func (f *fakeWorkRequestRepo) ListPendingDueBy(_ context.Context, cutoff time.Time) ([]model.WorkRequest, error) {
	var out []model.WorkRequest
	for _, request := range f.requests {
		if request.Status == model.StatusPending && !request.RequestDate.After(cutoff) {
			out = append(out, *request)
		}
	}
	return out, nil
}

func (f *fakeWorkRequestRepo) Update(_ context.Context, request *model.WorkRequest) error {
	if _, ok := f.requests[request.RequestID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *request
	f.requests[request.RequestID] = &copied
	return nil
}

func (f *fakeWorkRequestRepo) Delete(_ context.Context, requestID int64) error {
	delete(f.requests, requestID)
	return nil
}

type fakeEmployeeRepo struct {
	employees map[int64]*model.Employee
}

func newFakeEmployeeRepo(employees ...*model.Employee) *fakeEmployeeRepo {
	f := &fakeEmployeeRepo{employees: map[int64]*model.Employee{}}
	for _, e := range employees {
		f.employees[e.StaffID] = e
	}
	return f
}

func (f *fakeEmployeeRepo) Create(_ context.Context, employee *model.Employee) error {
	f.employees[employee.StaffID] = employee
	return nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, staffID int64) (*model.Employee, error) {
	employee, ok := f.employees[staffID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return employee, nil
}

func (f *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (*model.Employee, error) {
	for _, employee := range f.employees {
		if employee.Email == email {
			return employee, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]model.Employee, error) {
	var out []model.Employee
	for _, employee := range f.employees {
		out = append(out, *employee)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) ListByRole(_ context.Context, role int64) ([]model.Employee, error) {
	var out []model.Employee
	for _, employee := range f.employees {
		if employee.Role == role {
			out = append(out, *employee)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) ListByDept(_ context.Context, dept string) ([]model.Employee, error) {
	var out []model.Employee
	for _, employee := range f.employees {
		if employee.Dept == dept {
			out = append(out, *employee)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) ListByManager(_ context.Context, managerID int64) ([]model.Employee, error) {
	var out []model.Employee
	for _, employee := range f.employees {
		if employee.ReportingManager != nil && *employee.ReportingManager == managerID {
			out = append(out, *employee)
		}
	}
	return out, nil
}

type fakeAuditRepo struct {
	entries []model.AuditLog
}

func (f *fakeAuditRepo) Log(_ context.Context, entry *model.AuditLog) error {
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeAuditRepo) ListByRequest(_ context.Context, requestID int64) ([]model.AuditLog, error) {
	var out []model.AuditLog
	for _, entry := range f.entries {
		if entry.RequestID == requestID {
			out = append(out, entry)
		}
	}
	return out, nil
}

type fakeScheduleRepo struct {
	schedules map[int64]*model.Schedule // keyed by request id
	nextID    int64
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{schedules: map[int64]*model.Schedule{}, nextID: 1}
}

func (f *fakeScheduleRepo) Create(_ context.Context, schedule *model.Schedule) error {
	if _, ok := f.schedules[schedule.RequestID]; ok {
		return gorm.ErrDuplicatedKey
	}
	schedule.ScheduleID = f.nextID
	schedule.CreatedDate = time.Now()
	f.nextID++
	copied := *schedule
	f.schedules[schedule.RequestID] = &copied
	return nil
}

func (f *fakeScheduleRepo) GetByRequestID(_ context.Context, requestID int64) (*model.Schedule, error) {
	schedule, ok := f.schedules[requestID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *schedule
	return &copied, nil
}

func (f *fakeScheduleRepo) List(_ context.Context, limit, offset int) ([]model.Schedule, error) {
	out := make([]model.Schedule, 0, len(f.schedules))
	for _, schedule := range f.schedules {
		out = append(out, *schedule)
	}
	if offset > len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeScheduleRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.schedules)), nil
}

func (f *fakeScheduleRepo) ListByStaff(_ context.Context, staffID int64) ([]model.Schedule, error) {
	var out []model.Schedule
	for _, schedule := range f.schedules {
		if schedule.StaffID == staffID {
			out = append(out, *schedule)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) ListByApprover(_ context.Context, managerID int64) ([]model.Schedule, error) {
	var out []model.Schedule
	for _, schedule := range f.schedules {
		if schedule.ApprovedBy != nil && *schedule.ApprovedBy == managerID {
			out = append(out, *schedule)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) Update(_ context.Context, schedule *model.Schedule) error {
	if _, ok := f.schedules[schedule.RequestID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *schedule
	f.schedules[schedule.RequestID] = &copied
	return nil
}

type fakeNotificationRepo struct {
	notifications map[int64]*model.Notification
	nextID        int64
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{notifications: map[int64]*model.Notification{}, nextID: 1}
}

func (f *fakeNotificationRepo) Create(_ context.Context, notification *model.Notification) error {
	notification.NotificationID = f.nextID
	notification.NotificationDate = time.Now()
	f.nextID++
	copied := *notification
	f.notifications[notification.NotificationID] = &copied
	return nil
}

func (f *fakeNotificationRepo) GetByID(_ context.Context, notificationID int64) (*model.Notification, error) {
	notification, ok := f.notifications[notificationID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *notification
	return &copied, nil
}

func (f *fakeNotificationRepo) ListByReceiver(_ context.Context, receiverID int64) ([]model.Notification, error) {
	var out []model.Notification
	for _, notification := range f.notifications {
		if notification.ReceiverID == receiverID {
			out = append(out, *notification)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) Update(_ context.Context, notification *model.Notification) error {
	if _, ok := f.notifications[notification.NotificationID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *notification
	f.notifications[notification.NotificationID] = &copied
	return nil
}

func (f *fakeNotificationRepo) Delete(_ context.Context, notificationID int64) error {
	if _, ok := f.notifications[notificationID]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.notifications, notificationID)
	return nil
}

type fakePusher struct {
	sent []int64 // receiver staff ids in push order
}

func (f *fakePusher) SendToStaff(staffID int64, _ string, _ interface{}) {
	f.sent = append(f.sent, staffID)
}
