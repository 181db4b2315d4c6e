package handler

import (
	"net/http"

	"wfh-backend/internal/middleware"
	"wfh-backend/internal/service"
	"wfh-backend/pkg/apperr"
	"wfh-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService service.UserService
}

// NewUserHandler sets up the routing dependencies for User endpoints
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/login", h.Login)

	// Account listings are HR-only (role 1)
	users := router.Group("/user", middleware.RequireAuth(), middleware.RequireRole(1))
	{
		users.GET("", h.List)
		users.GET("/:staff_id", h.GetByStaffID)
	}
}

// Login authenticates an account and issues a JWT
// @Summary      Log in
// @Description  Verifies the email and password and returns a signed token with the staff id and role.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        payload  body      service.LoginRequest  true  "Login Payload"
// @Success      200      {object}  response.Body{data=service.TokenResponse}
// @Failure      400      {object}  response.Body
// @Failure      401      {object}  response.Body
// @Router       /login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, apperr.Validation("Email and password are required"))
		return
	}

	token, err := h.userService.Login(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, token))
}

// List returns every account; ?email= narrows it to one.
func (h *UserHandler) List(c *gin.Context) {
	if email := c.Query("email"); email != "" {
		user, err := h.userService.GetByEmail(c.Request.Context(), email)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.Success(http.StatusOK, user))
		return
	}

	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"users": users}))
}

func (h *UserHandler) GetByStaffID(c *gin.Context) {
	staffID, ok := pathID(c, "staff_id")
	if !ok {
		return
	}

	user, err := h.userService.GetByStaffID(c.Request.Context(), staffID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, user))
}
