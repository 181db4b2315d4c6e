package handler

import (
	"net/http"

	"wfh-backend/internal/saga"
	"wfh-backend/pkg/apperr"
	"wfh-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// SchedulerHandler fronts the saga orchestrator.
type SchedulerHandler struct {
	orchestrator *saga.Orchestrator
}

func NewSchedulerHandler(orchestrator *saga.Orchestrator) *SchedulerHandler {
	return &SchedulerHandler{orchestrator: orchestrator}
}

func (h *SchedulerHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/New_WR", h.CreateWorkRequest)
	router.PUT("/scheduler/:request_id/update_work_request_and_schedule", h.UpdateWorkRequestAndSchedule)
}

// CreateWorkRequest runs the create saga across the three services
// @Summary      Create a work request end to end
// @Description  Submits the work request, creates its schedule entry and notifies the approver. A schedule failure deletes the work request again.
// @Tags         scheduler
// @Accept       json
// @Produce      json
// @Param        payload  body      saga.CreateWorkRequestSagaRequest  true  "Work Request Payload"
// @Success      201      {object}  response.Body{data=saga.SagaResult}
// @Failure      400      {object}  response.Body
// @Failure      404      {object}  response.Body
// @Failure      500      {object}  response.Body
// @Router       /New_WR [post]
func (h *SchedulerHandler) CreateWorkRequest(c *gin.Context) {
	var req saga.CreateWorkRequestSagaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperr.Validation("Missing required fields"))
		return
	}

	result, err := h.orchestrator.CreateWorkRequest(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, result))
}

// UpdateWorkRequestAndSchedule runs the update saga across the three services
// @Summary      Update a work request and its schedule
// @Description  Applies a status change to the work request and its schedule entry, then notifies the other party. A schedule failure reverts the work request to Pending.
// @Tags         scheduler
// @Accept       json
// @Produce      json
// @Param        request_id  path      int                                true  "Work Request ID"
// @Param        payload     body      saga.UpdateWorkRequestSagaRequest  true  "Status Payload"
// @Success      200         {object}  response.Body{data=saga.SagaResult}
// @Failure      400         {object}  response.Body
// @Failure      404         {object}  response.Body
// @Failure      500         {object}  response.Body
// @Router       /scheduler/{request_id}/update_work_request_and_schedule [put]
func (h *SchedulerHandler) UpdateWorkRequestAndSchedule(c *gin.Context) {
	requestID, ok := pathID(c, "request_id")
	if !ok {
		return
	}

	var req saga.UpdateWorkRequestSagaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperr.Validation("Missing status"))
		return
	}

	result, err := h.orchestrator.UpdateWorkRequestAndSchedule(c.Request.Context(), requestID, req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}
