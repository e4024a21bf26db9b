package report

import (
	"github.com/subhankar-techs/emp-management/internal/middleware"
	"github.com/subhankar-techs/emp-management/internal/user"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth gin.HandlerFunc) {
	reports := r.Group("/reports")
	reports.Use(auth, middleware.RequireRoles(user.RoleSuperAdmin, user.RoleHRManager))
	{
		reports.GET("/leave-summary", handler.LeaveSummary)
		reports.GET("/department-report", handler.DepartmentReport)
		reports.GET("/employee/:id/leaves", handler.EmployeeLeaves)
		reports.GET("/activity-logs", handler.ActivityLogs)
	}
}
