package leave

import (
	"github.com/subhankar-techs/emp-management/internal/middleware"
	"github.com/subhankar-techs/emp-management/internal/user"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth gin.HandlerFunc) {
	leaves := r.Group("/leaves")
	leaves.Use(auth)
	{
		leaves.POST("", middleware.RequireRoles(user.RoleEmployee), handler.Create)
		leaves.GET("", handler.GetAll)
		leaves.GET("/balance", middleware.RequireRoles(user.RoleEmployee), handler.Balance)
		leaves.GET("/:id", handler.GetByID)
		leaves.PATCH("/:id/status", middleware.RequireRoles(user.RoleSuperAdmin, user.RoleHRManager), handler.UpdateStatus)
		leaves.PATCH("/:id/cancel", middleware.RequireRoles(user.RoleEmployee), handler.Cancel)
	}
}
