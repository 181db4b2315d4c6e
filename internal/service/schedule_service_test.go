package service

import (
	"context"
	"testing"
	"time"

	"wfh-backend/internal/client"
	"wfh-backend/internal/model"
	"wfh-backend/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDirectory struct {
	members map[int64][]client.Employee
	byDept  map[string][]client.Employee
}

func (f *fakeDirectory) TeamMembers(_ context.Context, managerID int64) ([]client.Employee, error) {
	return f.members[managerID], nil
}

func (f *fakeDirectory) ListByDept(_ context.Context, dept string) ([]client.Employee, error) {
	return f.byDept[dept], nil
}

func newScheduleFixture(t *testing.T) (*scheduleService, *fakeScheduleRepo, *fakeWorkRequestRepo) {
	t.Helper()

	scheduleRepo := newFakeScheduleRepo()
	workRequestRepo := newFakeWorkRequestRepo()
	directory := &fakeDirectory{
		members: map[int64][]client.Employee{
			2: {{StaffID: 10, StaffFName: "An", StaffLName: "Le", Dept: "Sales"}},
		},
		byDept: map[string][]client.Employee{
			"Sales": {{StaffID: 10, StaffFName: "An", StaffLName: "Le", Dept: "Sales"}},
		},
	}

	svc := NewScheduleService(scheduleRepo, workRequestRepo, directory, zap.NewNop()).(*scheduleService)
	svc.now = func() time.Time { return submitInstant }
	return svc, scheduleRepo, workRequestRepo
}

func seedWorkRequest(t *testing.T, repo *fakeWorkRequestRepo) *model.WorkRequest {
	t.Helper()

	managerID := int64(2)
	request := &model.WorkRequest{
		StaffID:           10,
		RequestType:       model.RequestTypeAM,
		RequestDate:       time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC),
		Reason:            "Deep work",
		Status:            model.StatusPending,
		ApprovalManagerID: &managerID,
	}
	require.NoError(t, repo.Create(context.Background(), request))
	return request
}

func TestCreateScheduleCopiesWorkRequestFields(t *testing.T) {
	svc, _, workRequestRepo := newScheduleFixture(t)
	request := seedWorkRequest(t, workRequestRepo)

	schedule, err := svc.CreateFromWorkRequest(context.Background(), CreateScheduleRequest{RequestID: request.RequestID})
	require.NoError(t, err)

	assert.Equal(t, request.StaffID, schedule.StaffID)
	assert.Equal(t, request.RequestID, schedule.RequestID)
	assert.Equal(t, "2024-03-06", schedule.Date)
	assert.Equal(t, model.RequestTypeAM, schedule.RequestType)
	assert.Equal(t, model.StatusPending, schedule.Status)
	require.NotNil(t, schedule.ApprovedBy)
	assert.Equal(t, int64(2), *schedule.ApprovedBy)
}

func TestCreateScheduleMissingWorkRequest(t *testing.T) {
	svc, _, _ := newScheduleFixture(t)

	_, err := svc.CreateFromWorkRequest(context.Background(), CreateScheduleRequest{RequestID: 404})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestCreateScheduleRejectsSecondEntry(t *testing.T) {
	svc, _, workRequestRepo := newScheduleFixture(t)
	request := seedWorkRequest(t, workRequestRepo)

	_, err := svc.CreateFromWorkRequest(context.Background(), CreateScheduleRequest{RequestID: request.RequestID})
	require.NoError(t, err)

	_, err = svc.CreateFromWorkRequest(context.Background(), CreateScheduleRequest{RequestID: request.RequestID})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestCreateScheduleRechecksWeekend(t *testing.T) {
	svc, _, workRequestRepo := newScheduleFixture(t)
	request := seedWorkRequest(t, workRequestRepo)
	request.RequestDate = time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC) // Saturday
	require.NoError(t, workRequestRepo.Update(context.Background(), request))

	_, err := svc.CreateFromWorkRequest(context.Background(), CreateScheduleRequest{RequestID: request.RequestID})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestUpdateScheduleStatus(t *testing.T) {
	svc, _, workRequestRepo := newScheduleFixture(t)
	request := seedWorkRequest(t, workRequestRepo)

	_, err := svc.CreateFromWorkRequest(context.Background(), CreateScheduleRequest{RequestID: request.RequestID})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), request.RequestID, UpdateScheduleStatusRequest{Status: model.StatusApproved})
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, updated.Status)
}

func TestUpdateScheduleStatusRejectsPending(t *testing.T) {
	svc, _, workRequestRepo := newScheduleFixture(t)
	request := seedWorkRequest(t, workRequestRepo)

	_, err := svc.CreateFromWorkRequest(context.Background(), CreateScheduleRequest{RequestID: request.RequestID})
	require.NoError(t, err)

	// Pending is the initial state, never an update target.
	_, err = svc.UpdateStatus(context.Background(), request.RequestID, UpdateScheduleStatusRequest{Status: model.StatusPending})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestUpdateScheduleStatusMissing(t *testing.T) {
	svc, _, _ := newScheduleFixture(t)

	_, err := svc.UpdateStatus(context.Background(), 404, UpdateScheduleStatusRequest{Status: model.StatusApproved})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestListTeamGroupsSchedulesByMember(t *testing.T) {
	svc, _, workRequestRepo := newScheduleFixture(t)
	request := seedWorkRequest(t, workRequestRepo)

	_, err := svc.CreateFromWorkRequest(context.Background(), CreateScheduleRequest{RequestID: request.RequestID})
	require.NoError(t, err)

	entries, err := svc.ListTeam(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(10), entries[0].Employee.StaffID)
	require.Len(t, entries[0].Schedule, 1)
	assert.Equal(t, request.RequestID, entries[0].Schedule[0].RequestID)
}
