package leave

import (
	"net/http"
	"strconv"
	"time"

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
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	actorID := c.GetString("user_id")

	var req CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), actorID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Leave request created successfully", gin.H{"leave": resp})
}

func (h *Handler) GetAll(c *gin.Context) {
	actorID := c.GetString("user_id")
	actorRole := c.GetString("role")

	f := ListFilter{
		Status:    c.Query("status"),
		LeaveType: c.Query("leave_type"),
		Page:      queryInt(c, "page", 1),
		Limit:     queryInt(c, "limit", 10),
	}
	// Managers may scope the listing to one employee; for employees the
	// service forces their own scope regardless.
	f.EmployeeID = c.Query("employee_id")
	f.From = queryDate(c, "start_date")
	f.To = queryDate(c, "end_date")

	leaves, total, err := h.service.GetAll(c.Request.Context(), actorID, actorRole, f)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, f.Page, f.Limit)
	response.Success(c, http.StatusOK, "", gin.H{
		"leaves":     leaves,
		"pagination": meta,
	})
}

func (h *Handler) GetByID(c *gin.Context) {
	actorID := c.GetString("user_id")
	actorRole := c.GetString("role")

	resp, err := h.service.GetByID(c.Request.Context(), actorID, actorRole, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", gin.H{"leave": resp})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	approverID := c.GetString("user_id")

	var req DecideLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	resp, err := h.service.Decide(c.Request.Context(), approverID, c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	message := "Leave request rejected successfully"
	if resp.Status == StatusApproved {
		message = "Leave request approved successfully"
	}
	response.Success(c, http.StatusOK, message, gin.H{"leave": resp})
}

func (h *Handler) Cancel(c *gin.Context) {
	actorID := c.GetString("user_id")

	resp, err := h.service.Cancel(c.Request.Context(), actorID, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Leave request cancelled successfully", gin.H{"leave": resp})
}

func (h *Handler) Balance(c *gin.Context) {
	actorID := c.GetString("user_id")

	year := queryInt(c, "year", time.Now().UTC().Year())
	resp, err := h.service.Balance(c.Request.Context(), actorID, year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", resp)
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
