package auth

import (
	"net/http"

	"go-ems/internal/domain"
	"go-ems/internal/middleware"
	"go-ems/internal/shared/apperror"
	"go-ems/internal/shared/contextutil"
	"go-ems/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(s Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: s, logger: l}
}

func (ctrl *Handler) writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		contextutil.GetLogger(c.Request.Context(), ctrl.logger).Error("auth request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Fields)
}

func (ctrl *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ctrl.writeError(c, apperror.MapBindError(err))
		return
	}

	resp, err := ctrl.service.Login(c.Request.Context(), req)
	if err != nil {
		ctrl.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", resp)
}

// Logout is stateless; the client drops its token.
func (ctrl *Handler) Logout(c *gin.Context) {
	response.Success(c, http.StatusOK, "Logged out successfully", nil)
}

func (ctrl *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ctrl.writeError(c, apperror.MapBindError(err))
		return
	}

	resp, err := ctrl.service.Signup(c.Request.Context(), middleware.CurrentAccount(c), req)
	if err != nil {
		ctrl.writeError(c, err)
		return
	}

	message := "Admin created successfully"
	if resp.User.Role == domain.RoleEmployee.String() {
		message = "User registered successfully"
	}
	response.Success(c, http.StatusCreated, message, resp)
}
