package saga

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"wfh-backend/internal/client"
	"wfh-backend/internal/model"
	"wfh-backend/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeEnvelope(w http.ResponseWriter, status int, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	body := map[string]interface{}{"code": status}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	json.NewEncoder(w).Encode(body)
}

func managerPtr() *int64 {
	id := int64(2)
	return &id
}

func sampleWorkRequest(status string) client.WorkRequest {
	return client.WorkRequest{
		RequestID:         1,
		StaffID:           10,
		RequestType:       model.RequestTypeFullDay,
		RequestDate:       "2024-03-06",
		Reason:            "Deep work",
		Status:            status,
		ApprovalManagerID: managerPtr(),
	}
}

// downstreams wires three fake services and collects what they were asked.
type downstreams struct {
	workRequestMux  *http.ServeMux
	scheduleMux     *http.ServeMux
	notificationMux *http.ServeMux

	deleted       []string
	statusUpdates []string // status values PUT to the work request service
	notifyPayload *client.CreateNotificationPayload
}

func newDownstreams(t *testing.T) (*downstreams, *Orchestrator) {
	t.Helper()

	d := &downstreams{
		workRequestMux:  http.NewServeMux(),
		scheduleMux:     http.NewServeMux(),
		notificationMux: http.NewServeMux(),
	}

	workRequestServer := httptest.NewServer(d.workRequestMux)
	scheduleServer := httptest.NewServer(d.scheduleMux)
	notificationServer := httptest.NewServer(d.notificationMux)
	t.Cleanup(workRequestServer.Close)
	t.Cleanup(scheduleServer.Close)
	t.Cleanup(notificationServer.Close)

	orchestrator := NewOrchestrator(
		client.NewWorkRequestClient(workRequestServer.URL),
		client.NewScheduleClient(scheduleServer.URL),
		client.NewNotificationClient(notificationServer.URL),
		zap.NewNop(),
	)
	return d, orchestrator
}

func (d *downstreams) submitOK() {
	d.workRequestMux.HandleFunc("/work_request/submit_work_request", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusCreated, "", sampleWorkRequest(model.StatusPending))
	})
}

func (d *downstreams) deleteOK() {
	d.workRequestMux.HandleFunc("/work_request/1", func(w http.ResponseWriter, r *http.Request) {
		d.deleted = append(d.deleted, r.Method)
		writeEnvelope(w, http.StatusOK, "Work request deleted", nil)
	})
}

func (d *downstreams) scheduleOK() {
	d.scheduleMux.HandleFunc("/schedule/create_schedule", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusCreated, "", client.Schedule{
			ScheduleID:  1,
			StaffID:     10,
			Date:        "2024-03-06",
			RequestID:   1,
			ApprovedBy:  managerPtr(),
			RequestType: model.RequestTypeFullDay,
			Status:      model.StatusPending,
		})
	})
}

func (d *downstreams) scheduleFails(status int, message string) {
	d.scheduleMux.HandleFunc("/schedule/create_schedule", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, status, message, nil)
	})
}

func (d *downstreams) notifyOK() {
	d.notificationMux.HandleFunc("/notification/create_notification", func(w http.ResponseWriter, r *http.Request) {
		var payload client.CreateNotificationPayload
		json.NewDecoder(r.Body).Decode(&payload)
		d.notifyPayload = &payload
		writeEnvelope(w, http.StatusCreated, "", []client.Notification{{
			NotificationID: 1,
			SenderID:       payload.SenderID,
			ReceiverID:     payload.ReceiverID,
			RequestID:      payload.RequestID,
			Message:        "notified",
		}})
	})
}

func createRequest() CreateWorkRequestSagaRequest {
	return CreateWorkRequestSagaRequest{
		StaffID:     10,
		RequestType: model.RequestTypeFullDay,
		RequestDate: "2024-03-06",
		Reason:      "Deep work",
	}
}

func TestCreateSagaSuccess(t *testing.T) {
	d, orchestrator := newDownstreams(t)
	d.submitOK()
	d.scheduleOK()
	d.notifyOK()

	result, err := orchestrator.CreateWorkRequest(context.Background(), createRequest())
	require.NoError(t, err)

	require.NotNil(t, result.WorkRequest)
	require.NotNil(t, result.Schedule)
	require.Len(t, result.Notification, 1)
	assert.Equal(t, result.WorkRequest.RequestID, result.Schedule.RequestID)
	assert.Empty(t, d.deleted)

	// The submission notifies the reporting manager on behalf of the staff.
	require.NotNil(t, d.notifyPayload)
	assert.Equal(t, int64(10), d.notifyPayload.SenderID)
	assert.Equal(t, int64(2), d.notifyPayload.ReceiverID)
	assert.Equal(t, model.StatusPending, d.notifyPayload.Status)
}

func TestCreateSagaMissingFields(t *testing.T) {
	_, orchestrator := newDownstreams(t)

	req := createRequest()
	req.Reason = ""
	_, err := orchestrator.CreateWorkRequest(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestCreateSagaCompensatesOnScheduleFailure(t *testing.T) {
	d, orchestrator := newDownstreams(t)
	d.submitOK()
	d.deleteOK()
	d.scheduleFails(http.StatusBadRequest, "WFH requests cannot fall on a weekend")

	_, err := orchestrator.CreateWorkRequest(context.Background(), createRequest())
	require.Error(t, err)

	// The schedule error comes back verbatim and the work request is gone.
	assert.True(t, apperr.IsKind(err, apperr.KindDownstream))
	assert.Equal(t, http.StatusBadRequest, apperr.StatusOf(err))
	assert.Contains(t, err.Error(), "weekend")
	assert.Equal(t, []string{http.MethodDelete}, d.deleted)
}

func TestCreateSagaCompensationFailure(t *testing.T) {
	d, orchestrator := newDownstreams(t)
	d.submitOK()
	d.scheduleFails(http.StatusBadRequest, "WFH requests cannot fall on a weekend")
	d.workRequestMux.HandleFunc("/work_request/1", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusInternalServerError, "database unavailable", nil)
	})

	_, err := orchestrator.CreateWorkRequest(context.Background(), createRequest())
	require.Error(t, err)

	// A failed rollback outranks the error that triggered it.
	assert.True(t, apperr.IsKind(err, apperr.KindCompensationFailed))
	assert.Equal(t, http.StatusInternalServerError, apperr.StatusOf(err))
}

func TestCreateSagaNotificationFailureLeavesStepsCommitted(t *testing.T) {
	d, orchestrator := newDownstreams(t)
	d.submitOK()
	d.scheduleOK()
	d.notificationMux.HandleFunc("/notification/create_notification", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusInternalServerError, "broker down", nil)
	})

	_, err := orchestrator.CreateWorkRequest(context.Background(), createRequest())
	require.Error(t, err)

	// Surfaced, but nothing is rolled back.
	assert.True(t, apperr.IsKind(err, apperr.KindDownstream))
	assert.Empty(t, d.deleted)
}

func (d *downstreams) updateStatusHandler(fail bool) {
	d.workRequestMux.HandleFunc("/work_request/1/update_status", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		d.statusUpdates = append(d.statusUpdates, body["status"])
		writeEnvelope(w, http.StatusOK, "", sampleWorkRequest(body["status"]))
	})
	d.scheduleMux.HandleFunc("/schedule/1/update_status", func(w http.ResponseWriter, r *http.Request) {
		if fail {
			writeEnvelope(w, http.StatusNotFound, "Schedule not found", nil)
			return
		}
		writeEnvelope(w, http.StatusOK, "", client.Schedule{
			ScheduleID: 1,
			StaffID:    10,
			RequestID:  1,
			Status:     model.StatusApproved,
		})
	})
}

func TestUpdateSagaManagerDecisionNotifiesEmployee(t *testing.T) {
	d, orchestrator := newDownstreams(t)
	d.updateStatusHandler(false)
	d.notifyOK()

	result, err := orchestrator.UpdateWorkRequestAndSchedule(context.Background(), 1, UpdateWorkRequestSagaRequest{
		Status:   model.StatusApproved,
		Comments: "OK",
	})
	require.NoError(t, err)
	require.NotNil(t, result.WorkRequest)
	require.NotNil(t, result.Schedule)

	// Approvals flow from the manager to the employee.
	require.NotNil(t, d.notifyPayload)
	assert.Equal(t, int64(2), d.notifyPayload.SenderID)
	assert.Equal(t, int64(10), d.notifyPayload.ReceiverID)
	assert.Equal(t, []string{model.StatusApproved}, d.statusUpdates)
}

func TestUpdateSagaEmployeeActionNotifiesManager(t *testing.T) {
	d, orchestrator := newDownstreams(t)
	d.updateStatusHandler(false)
	d.notifyOK()

	_, err := orchestrator.UpdateWorkRequestAndSchedule(context.Background(), 1, UpdateWorkRequestSagaRequest{
		Status: model.StatusCancelled,
	})
	require.NoError(t, err)

	require.NotNil(t, d.notifyPayload)
	assert.Equal(t, int64(10), d.notifyPayload.SenderID)
	assert.Equal(t, int64(2), d.notifyPayload.ReceiverID)
}

func TestUpdateSagaRevertsOnScheduleFailure(t *testing.T) {
	d, orchestrator := newDownstreams(t)
	d.updateStatusHandler(true)

	_, err := orchestrator.UpdateWorkRequestAndSchedule(context.Background(), 1, UpdateWorkRequestSagaRequest{
		Status:   model.StatusApproved,
		Comments: "OK",
	})
	require.Error(t, err)

	assert.True(t, apperr.IsKind(err, apperr.KindDownstream))
	assert.Equal(t, http.StatusNotFound, apperr.StatusOf(err))

	// The approval was rolled back to Pending.
	assert.Equal(t, []string{model.StatusApproved, model.StatusPending}, d.statusUpdates)
}

func TestUpdateSagaMissingStatus(t *testing.T) {
	_, orchestrator := newDownstreams(t)

	_, err := orchestrator.UpdateWorkRequestAndSchedule(context.Background(), 1, UpdateWorkRequestSagaRequest{})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}
