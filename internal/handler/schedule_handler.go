package handler

import (
	"net/http"

	"wfh-backend/internal/service"
	"wfh-backend/pkg/apperr"
	"wfh-backend/pkg/pagination"
	"wfh-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	scheduleService service.ScheduleService
}

func NewScheduleHandler(scheduleService service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

func (h *ScheduleHandler) RegisterRoutes(router *gin.RouterGroup) {
	schedules := router.Group("/schedule")
	{
		schedules.POST("/create_schedule", h.Create)
		schedules.PUT("/:request_id/update_status", h.UpdateStatus)
		schedules.GET("", h.List)
		schedules.GET("/:request_id/employee", h.ListByStaff)
		schedules.GET("/:request_id/manager", h.ListManagerView)
		schedules.GET("/:request_id/team", h.ListTeam)
	}
}

// Create derives a schedule entry from an approved-or-pending work request
func (h *ScheduleHandler) Create(c *gin.Context) {
	var req service.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperr.Validation("Missing request_id"))
		return
	}

	result, err := h.scheduleService.CreateFromWorkRequest(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, result))
}

// UpdateStatus mirrors a work request decision onto its schedule entry
func (h *ScheduleHandler) UpdateStatus(c *gin.Context) {
	requestID, ok := pathID(c, "request_id")
	if !ok {
		return
	}

	var req service.UpdateScheduleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperr.Validation("Missing status"))
		return
	}

	result, err := h.scheduleService.UpdateStatus(c.Request.Context(), requestID, req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}

// List returns the full collection, paginated; ?dept= narrows it to the
// schedules of one department grouped per employee.
func (h *ScheduleHandler) List(c *gin.Context) {
	if dept := c.Query("dept"); dept != "" {
		entries, err := h.scheduleService.ListDept(c.Request.Context(), dept)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"schedules": entries}))
		return
	}

	p := pagination.Parse(c)

	schedules, total, err := h.scheduleService.List(c.Request.Context(), p)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{
		"schedules": schedules,
		"total":     total,
		"page":      p.Page,
		"limit":     p.Limit,
	}))
}

func (h *ScheduleHandler) ListByStaff(c *gin.Context) {
	staffID, ok := pathID(c, "request_id")
	if !ok {
		return
	}

	schedules, err := h.scheduleService.ListByStaff(c.Request.Context(), staffID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"schedules": schedules}))
}

// ListManagerView returns the manager's own schedule and the schedules they
// approved, side by side
func (h *ScheduleHandler) ListManagerView(c *gin.Context) {
	managerID, ok := pathID(c, "request_id")
	if !ok {
		return
	}

	own, team, err := h.scheduleService.ListManagerView(c.Request.Context(), managerID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{
		"own_schedule":  own,
		"team_schedule": team,
	}))
}

// ListTeam returns each direct report with their schedule rows
func (h *ScheduleHandler) ListTeam(c *gin.Context) {
	managerID, ok := pathID(c, "request_id")
	if !ok {
		return
	}

	entries, err := h.scheduleService.ListTeam(c.Request.Context(), managerID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"team": entries}))
}
