package admin

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
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("admin.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("admin.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) fail(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		contextutil.GetLogger(c.Request.Context(), h.logger).Error("admin request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Fields)
}

func (h *Handler) List(c *gin.Context) {
	resp, err := h.service.List(c.Request.Context(), ListQuery{
		Limit:  c.Query("limit"),
		Skip:   c.Query("skip"),
		Page:   c.Query("page"),
		Search: c.Query("search"),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Admins fetched successfully", resp)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Admin details fetched", resp)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, apperror.MapBindError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), middleware.CurrentAccount(c), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Admin created successfully", resp)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, apperror.MapBindError(err))
		return
	}

	resp, changed, err := h.service.Update(c.Request.Context(), middleware.CurrentAccount(c), c.Param("id"), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	if !changed {
		response.Success(c, http.StatusOK, "No changes detected", resp)
		return
	}
	response.Success(c, http.StatusOK, "Admin updated successfully", resp)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), middleware.CurrentAccount(c), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Admin deleted successfully", nil)
}
