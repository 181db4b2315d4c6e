package handler

import (
	"context"
	"net/http"

	"wfh-backend/internal/service"
	"wfh-backend/pkg/apperr"
	"wfh-backend/pkg/pagination"
	"wfh-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type WorkRequestHandler struct {
	workRequestService service.WorkRequestService
}

func NewWorkRequestHandler(workRequestService service.WorkRequestService) *WorkRequestHandler {
	return &WorkRequestHandler{workRequestService: workRequestService}
}

func (h *WorkRequestHandler) RegisterRoutes(router *gin.RouterGroup) {
	requests := router.Group("/work_request")
	{
		requests.POST("/submit_work_request", h.Submit)
		requests.PUT("/:request_id/update_status", h.UpdateStatus)
		requests.DELETE("/:request_id", h.Delete)
		requests.GET("", h.List)
		requests.GET("/:request_id", h.GetByID)
		requests.GET("/:request_id/audit", h.AuditTrail)
		requests.GET("/:request_id/employee", h.ListByStaff)
		requests.GET("/:request_id/manager", h.ListByManager)
	}
}

// Submit creates a new work-from-home request in Pending state
func (h *WorkRequestHandler) Submit(c *gin.Context) {
	var req service.SubmitWorkRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperr.Validation("Missing required fields"))
		return
	}

	result, err := h.workRequestService.Submit(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, result))
}

// UpdateStatus transitions a work request to a new status
func (h *WorkRequestHandler) UpdateStatus(c *gin.Context) {
	requestID, ok := pathID(c, "request_id")
	if !ok {
		return
	}

	var req service.UpdateWorkRequestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperr.Validation("Missing status"))
		return
	}

	result, err := h.workRequestService.UpdateStatus(c.Request.Context(), requestID, req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}

// Delete removes a work request; used by the create saga to compensate
func (h *WorkRequestHandler) Delete(c *gin.Context) {
	requestID, ok := pathID(c, "request_id")
	if !ok {
		return
	}

	if err := h.workRequestService.Delete(c.Request.Context(), requestID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessMessage(http.StatusOK, "Work request deleted", nil))
}

func (h *WorkRequestHandler) GetByID(c *gin.Context) {
	requestID, ok := pathID(c, "request_id")
	if !ok {
		return
	}

	result, err := h.workRequestService.GetByID(c.Request.Context(), requestID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}

// List returns the full collection, paginated. Email filters take precedence
// so the per-person views stay reachable without a staff id.
func (h *WorkRequestHandler) List(c *gin.Context) {
	if email := c.Query("staff_email"); email != "" {
		h.listByEmail(c, email, h.workRequestService.ListByStaffEmail)
		return
	}
	if email := c.Query("manager_email"); email != "" {
		h.listByEmail(c, email, h.workRequestService.ListByManagerEmail)
		return
	}

	p := pagination.Parse(c)

	requests, total, err := h.workRequestService.List(c.Request.Context(), p)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{
		"work_requests": requests,
		"total":         total,
		"page":          p.Page,
		"limit":         p.Limit,
	}))
}

func (h *WorkRequestHandler) ListByStaff(c *gin.Context) {
	staffID, ok := pathID(c, "request_id")
	if !ok {
		return
	}

	requests, err := h.workRequestService.ListByStaff(c.Request.Context(), staffID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"work_requests": requests}))
}

func (h *WorkRequestHandler) ListByManager(c *gin.Context) {
	managerID, ok := pathID(c, "request_id")
	if !ok {
		return
	}

	requests, err := h.workRequestService.ListByManager(c.Request.Context(), managerID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"work_requests": requests}))
}

func (h *WorkRequestHandler) listByEmail(c *gin.Context, email string, lookup func(ctx context.Context, email string) ([]service.WorkRequestResponse, error)) {
	requests, err := lookup(c.Request.Context(), email)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"work_requests": requests}))
}

// AuditTrail returns the decision history of a work request
func (h *WorkRequestHandler) AuditTrail(c *gin.Context) {
	requestID, ok := pathID(c, "request_id")
	if !ok {
		return
	}

	logs, err := h.workRequestService.AuditTrail(c.Request.Context(), requestID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"audit": logs}))
}
