package employee

import (
	"net/http"
	"strconv"

	"github.com/subhankar-techs/emp-management/internal/shared/apperror"
	"github.com/subhankar-techs/emp-management/internal/shared/response"

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

func (h *Handler) GetAll(c *gin.Context) {
	f := ListFilter{
		Department: c.Query("department"),
		Status:     c.Query("status"),
		Page:       queryInt(c, "page", 1),
		Limit:      queryInt(c, "limit", 10),
	}

	employees, total, err := h.service.GetAll(c.Request.Context(), f)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", gin.H{
		"employees":  employees,
		"pagination": response.NewPaginationMeta(total, f.Page, f.Limit),
	})
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(
		c.Request.Context(),
		c.GetString("user_id"),
		c.GetString("role"),
		c.Param("id"),
	)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", gin.H{"employee": resp})
}

func (h *Handler) Departments(c *gin.Context) {
	departments, err := h.service.Departments(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", gin.H{"departments": departments})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		he := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, he.Status, he.Code, he.Message, he.Details)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Employee updated successfully", gin.H{"employee": resp})
}

func (h *Handler) Deactivate(c *gin.Context) {
	resp, err := h.service.Deactivate(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Employee deactivated successfully", gin.H{"employee": resp})
}

func (h *Handler) Activate(c *gin.Context) {
	resp, err := h.service.Activate(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Employee activated successfully", gin.H{"employee": resp})
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	he := apperror.ToHTTP(err)
	if he.Status >= http.StatusInternalServerError {
		h.logger.Error("employee request failed", zap.Error(err), zap.String("path", c.FullPath()))
	}
	response.Error(c, he.Status, he.Code, he.Message, nil)
}

func queryInt(c *gin.Context, key string, fallback int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v < 1 {
		return fallback
	}
	return v
}
