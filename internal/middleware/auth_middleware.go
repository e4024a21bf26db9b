package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	autherrors "github.com/subhankar-techs/emp-management/internal/auth/errors"
	"github.com/subhankar-techs/emp-management/internal/shared/contextutil"
	"github.com/subhankar-techs/emp-management/internal/shared/response"
	"github.com/subhankar-techs/emp-management/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware verifies the bearer token and loads the acting user. The
// user is re-read on every request so a deactivated account is locked out
// immediately, not at token expiry.
func AuthMiddleware(users user.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Access denied. No token provided.", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			errObj := autherrors.ErrInvalidToken
			if err != nil && strings.Contains(err.Error(), "expired") {
				errObj = autherrors.ErrTokenExpired
			}
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token claims", nil)
			c.Abort()
			return
		}

		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "User ID not found in token", nil)
			c.Abort()
			return
		}

		u, err := users.FindByID(c.Request.Context(), userID)
		if err != nil || u.Status != user.StatusActive {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token or user inactive.", nil)
			c.Abort()
			return
		}

		c.Set("user_id", u.ID.String())
		c.Set("role", u.Role)

		ctx := contextutil.WithActor(c.Request.Context(), u.ID.String(), u.Role)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRoles is the static permission gate: the three-role enum is closed,
// so each route names the roles allowed to hit it.
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString("role")

		for _, role := range allowedRoles {
			if userRole == role {
				c.Next()
				return
			}
		}

		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied. Insufficient permissions.", nil)
		c.Abort()
	}
}
