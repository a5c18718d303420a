package employee

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
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	log := contextutil.GetLogger(c.Request.Context(), h.logger)
	fields := []zap.Field{
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	}
	if httpErr.Status >= http.StatusInternalServerError {
		log.Error("employee request failed", append(fields, zap.Error(err))...)
	} else {
		log.Warn("employee request failed", append(fields, zap.String("message", httpErr.Message))...)
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Fields)
}

func (h *Handler) writeBindError(c *gin.Context, err error) {
	appErr := apperror.MapBindError(err)
	contextutil.GetLogger(c.Request.Context(), h.logger).Debug("employee payload rejected", zap.Error(err))
	response.Error(c, appErr.HTTPStatus, appErr.Code, appErr.Message, appErr.Fields)
}

func (h *Handler) List(c *gin.Context) {
	q := ListQuery{
		Limit:      c.Query("limit"),
		Skip:       c.Query("skip"),
		Page:       c.Query("page"),
		Search:     c.Query("search"),
		Department: c.Query("department"),
	}

	resp, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Employees fetched successfully", resp)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Employee details fetched", resp)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), middleware.CurrentAccount(c), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Employee created successfully", resp)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, err)
		return
	}

	resp, changed, err := h.service.Update(c.Request.Context(), middleware.CurrentAccount(c), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if !changed {
		response.Success(c, http.StatusOK, "No changes detected", resp)
		return
	}
	response.Success(c, http.StatusOK, "Employee updated successfully", resp)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), middleware.CurrentAccount(c), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Employee deleted successfully", nil)
}
