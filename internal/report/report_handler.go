package report

import (
	"net/http"
	"strconv"
	"time"

	"github.com/subhankar-techs/emp-management/internal/activity"
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
	l := zap.L().Named("report.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) LeaveSummary(c *gin.Context) {
	f := SummaryFilter{
		Status:     c.Query("status"),
		Department: c.Query("department"),
		From:       queryDate(c, "start_date"),
		To:         queryDate(c, "end_date"),
	}

	summary, err := h.service.LeaveSummary(c.Request.Context(), f)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", gin.H{"summary": summary})
}

func (h *Handler) DepartmentReport(c *gin.Context) {
	year := queryInt(c, "year", time.Now().UTC().Year())

	report, err := h.service.DepartmentReport(c.Request.Context(), year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", gin.H{"report": report})
}

func (h *Handler) EmployeeLeaves(c *gin.Context) {
	f := EmployeeLeaveFilter{
		Year:      queryInt(c, "year", 0),
		Status:    c.Query("status"),
		LeaveType: c.Query("leave_type"),
	}

	report, err := h.service.EmployeeLeaves(c.Request.Context(), c.Param("id"), f)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", gin.H{"report": report})
}

func (h *Handler) ActivityLogs(c *gin.Context) {
	f := activity.Filter{
		Action:     c.Query("action"),
		TargetType: c.Query("target_type"),
		From:       queryDate(c, "start_date"),
		To:         queryDate(c, "end_date"),
		Page:       queryInt(c, "page", 1),
		Limit:      queryInt(c, "limit", 20),
	}

	logs, total, err := h.service.ActivityLogs(c.Request.Context(), f)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", gin.H{
		"logs":       logs,
		"pagination": response.NewPaginationMeta(total, f.Page, f.Limit),
	})
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	he := apperror.ToHTTP(err)
	if he.Status >= http.StatusInternalServerError {
		h.logger.Error("report request failed", zap.Error(err), zap.String("path", c.FullPath()))
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

func queryDate(c *gin.Context, key string) *time.Time {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil
	}
	return &t
}
