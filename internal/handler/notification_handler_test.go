package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"wfh-backend/internal/service"
	"wfh-backend/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubNotificationService struct {
	listedReceiver int64
}

func (s *stubNotificationService) Create(_ context.Context, _ service.CreateNotificationRequest) ([]service.NotificationResponse, error) {
	return nil, nil
}

func (s *stubNotificationService) Read(_ context.Context, _ int64) (*service.NotificationResponse, error) {
	return &service.NotificationResponse{}, nil
}

func (s *stubNotificationService) Delete(_ context.Context, _ int64) error {
	return nil
}

func (s *stubNotificationService) ListByReceiver(_ context.Context, receiverID int64) ([]service.NotificationResponse, error) {
	s.listedReceiver = receiverID
	return []service.NotificationResponse{{NotificationID: 1, ReceiverID: receiverID}}, nil
}

func newNotificationRouter(svc service.NotificationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewNotificationHandler(svc).RegisterRoutes(router.Group(""))
	return router
}

func TestListByReceiverUsesReceiverParam(t *testing.T) {
	svc := &stubNotificationService{}
	router := newNotificationRouter(svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/notification/7", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), svc.listedReceiver)
}

func TestListByReceiverRejectsBadID(t *testing.T) {
	router := newNotificationRouter(&stubNotificationService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/notification/abc", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body response.Body
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Invalid receiver_id", body.Message)
}
