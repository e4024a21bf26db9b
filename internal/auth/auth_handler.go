package auth

import (
	"net/http"

	autherrors "github.com/subhankar-techs/emp-management/internal/auth/errors"
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
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		he := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, he.Status, he.Code, he.Message, he.Details)
		return
	}

	access, refresh, userResp, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", gin.H{
		"access_token":  access,
		"refresh_token": refresh,
		"user":          userResp,
	})
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		he := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, he.Status, he.Code, he.Message, he.Details)
		return
	}

	actorID := c.GetString("user_id")
	userResp, err := h.service.Register(c.Request.Context(), actorID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "User registered successfully", gin.H{"user": userResp})
}

func (h *Handler) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		he := apperror.ToHTTP(autherrors.ErrRefreshTokenRequired)
		response.Error(c, he.Status, he.Code, he.Message, nil)
		return
	}

	access, refresh, err := h.service.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Token refreshed successfully", gin.H{
		"access_token":  access,
		"refresh_token": refresh,
	})
}

func (h *Handler) Logout(c *gin.Context) {
	userID := c.GetString("user_id")
	if err := h.service.Logout(c.Request.Context(), userID); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Logout successful", nil)
}

func (h *Handler) Profile(c *gin.Context) {
	userID := c.GetString("user_id")
	userResp, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", gin.H{"user": userResp})
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	he := apperror.ToHTTP(err)
	if he.Status >= http.StatusInternalServerError {
		h.logger.Error("auth request failed", zap.Error(err), zap.String("path", c.FullPath()))
	}
	response.Error(c, he.Status, he.Code, he.Message, nil)
}
