package handler

import (
	"net/http"
	"strconv"

	"wfh-backend/internal/service"
	"wfh-backend/pkg/apperr"
	"wfh-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type EmployeeHandler struct {
	employeeService service.EmployeeService
}

func NewEmployeeHandler(employeeService service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

func (h *EmployeeHandler) RegisterRoutes(router *gin.RouterGroup) {
	employees := router.Group("/employee")
	{
		employees.GET("", h.List)
		employees.GET("/:staff_id", h.GetByID)
		employees.GET("/:staff_id/team", h.Team)
		employees.GET("/:staff_id/reporting_manager", h.ReportingManager)
		employees.GET("/:staff_id/role", h.Role)
		employees.GET("/:staff_id/get_by_dept", h.ListByDept)
	}
}

// List returns the whole directory; ?role= narrows it to one role.
func (h *EmployeeHandler) List(c *gin.Context) {
	if roleStr := c.Query("role"); roleStr != "" {
		role, err := strconv.ParseInt(roleStr, 10, 64)
		if err != nil {
			writeError(c, apperr.Validation("Invalid role"))
			return
		}
		employees, err := h.employeeService.ListByRole(c.Request.Context(), role)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"employee_list": employees}))
		return
	}

	employees, err := h.employeeService.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"employee_list": employees}))
}

func (h *EmployeeHandler) GetByID(c *gin.Context) {
	staffID, ok := pathID(c, "staff_id")
	if !ok {
		return
	}

	employee, err := h.employeeService.GetByID(c.Request.Context(), staffID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, employee))
}

// Team returns the direct reports of a manager
func (h *EmployeeHandler) Team(c *gin.Context) {
	managerID, ok := pathID(c, "staff_id")
	if !ok {
		return
	}

	members, err := h.employeeService.Team(c.Request.Context(), managerID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"members": members}))
}

func (h *EmployeeHandler) ReportingManager(c *gin.Context) {
	staffID, ok := pathID(c, "staff_id")
	if !ok {
		return
	}

	managerID, err := h.employeeService.ReportingManager(c.Request.Context(), staffID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"reporting_manager": managerID}))
}

func (h *EmployeeHandler) Role(c *gin.Context) {
	staffID, ok := pathID(c, "staff_id")
	if !ok {
		return
	}

	role, err := h.employeeService.Role(c.Request.Context(), staffID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"role": role}))
}

// ListByDept reads the department name from the wildcard segment so the
// route tree stays compatible with the staff id lookups.
func (h *EmployeeHandler) ListByDept(c *gin.Context) {
	employees, err := h.employeeService.ListByDept(c.Request.Context(), c.Param("staff_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"employee": employees}))
}
