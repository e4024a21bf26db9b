package auth

import (
	"github.com/subhankar-techs/emp-management/internal/middleware"
	"github.com/subhankar-techs/emp-management/internal/user"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth gin.HandlerFunc) {
	g := r.Group("/auth")
	{
		g.POST("/login", handler.Login)
		g.POST("/refresh-token", handler.RefreshToken)
		g.POST("/register", auth, middleware.RequireRoles(user.RoleSuperAdmin), handler.Register)
		g.POST("/logout", auth, handler.Logout)
		g.GET("/profile", auth, handler.Profile)
	}
}
