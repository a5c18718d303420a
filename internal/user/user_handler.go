package user

import (
	"net/http"

	"go-ems/internal/middleware"
	"go-ems/internal/shared/apperror"
	"go-ems/internal/shared/contextutil"
	"go-ems/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	svc    Service
	logger *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("user.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.handler")
	}
	return &Handler{svc: service, logger: l}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		contextutil.GetLogger(c.Request.Context(), h.logger).Error("user request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Fields)
}

func (h *Handler) GetMe(c *gin.Context) {
	resp, err := h.svc.Me(c.Request.Context(), middleware.CurrentAccount(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Profile fetched successfully", resp)
}

func (h *Handler) UpdateMe(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, apperror.MapBindError(err))
		return
	}

	resp, changed, err := h.svc.UpdateMe(c.Request.Context(), middleware.CurrentAccount(c), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if !changed {
		response.Success(c, http.StatusOK, "No changes detected", nil)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated successfully", resp)
}

func (h *Handler) DeleteMe(c *gin.Context) {
	if err := h.svc.DeleteMe(c.Request.Context(), middleware.CurrentAccount(c)); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Account deleted successfully", nil)
}
