package employee

import (
	"github.com/subhankar-techs/emp-management/internal/middleware"
	"github.com/subhankar-techs/emp-management/internal/user"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth gin.HandlerFunc) {
	employees := r.Group("/employees")
	employees.Use(auth)
	{
		manage := middleware.RequireRoles(user.RoleSuperAdmin, user.RoleHRManager)

		employees.GET("", manage, handler.GetAll)
		employees.GET("/departments", manage, handler.Departments)
		employees.GET("/:id", handler.GetByID)
		employees.PUT("/:id", manage, handler.Update)
		employees.PATCH("/:id/deactivate", manage, handler.Deactivate)
		employees.PATCH("/:id/activate", manage, handler.Activate)
	}
}
