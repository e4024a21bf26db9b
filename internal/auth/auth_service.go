package auth

import (
	"context"
	"errors"
	"os"
	"time"

	autherrors "github.com/subhankar-techs/emp-management/internal/auth/errors"
	"github.com/subhankar-techs/emp-management/internal/shared/apperror"
	"github.com/subhankar-techs/emp-management/internal/user"
	usererrors "github.com/subhankar-techs/emp-management/internal/user/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour

	bcryptCost = 12
)

// ActivityRecorder receives the audit entry for each registration.
type ActivityRecorder interface {
	UserCreated(ctx context.Context, actorID, userID, name string, data map[string]any)
}

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (accessToken, refreshToken string, resp UserResponse, err error)
	Register(ctx context.Context, actorID string, req RegisterRequest) (UserResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (newAccessToken, newRefreshToken string, err error)
	Logout(ctx context.Context, userID string) error
	GetProfile(ctx context.Context, userID string) (UserResponse, error)
}

type service struct {
	repo     user.Repository
	recorder ActivityRecorder
	logger   *zap.Logger
}

func NewService(repo user.Repository, recorder ActivityRecorder, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, recorder: recorder, logger: l}
}

func (s *service) Login(ctx context.Context, email, password string) (string, string, UserResponse, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", "", UserResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", "", UserResponse{}, autherrors.ErrInvalidCredentials
	}

	if u.Status != user.StatusActive {
		return "", "", UserResponse{}, autherrors.ErrAccountInactive
	}

	accessToken, err := generateToken(u.ID.String(), u.Role, accessTokenTTL)
	if err != nil {
		return "", "", UserResponse{}, autherrors.ErrTokenGenerationFailed
	}
	refreshToken, err := generateToken(u.ID.String(), u.Role, refreshTokenTTL)
	if err != nil {
		return "", "", UserResponse{}, autherrors.ErrTokenGenerationFailed
	}

	u.RefreshToken = refreshToken
	if err := s.repo.Update(ctx, u); err != nil {
		s.logger.Error("login persist refresh token failed", zap.Error(err))
		return "", "", UserResponse{}, user.MapStoreError(err)
	}

	s.logger.Info("login success", zap.String("user_id", u.ID.String()))
	return accessToken, refreshToken, MapUserResponse(u), nil
}

func (s *service) Register(ctx context.Context, actorID string, req RegisterRequest) (UserResponse, error) {
	s.logger.Debug("register requested",
		zap.String("actor_id", actorID),
		zap.String("email", req.Email),
		zap.String("role", req.Role),
	)

	var managerID *uuid.UUID
	if req.Role == user.RoleEmployee {
		if req.ManagerID == "" {
			return UserResponse{}, autherrors.ErrManagerRequired
		}
	}
	if req.ManagerID != "" {
		id, err := uuid.Parse(req.ManagerID)
		if err != nil {
			return UserResponse{}, usererrors.ErrInvalidManager
		}
		manager, err := s.repo.FindByID(ctx, req.ManagerID)
		if err != nil || manager.Role != user.RoleHRManager {
			return UserResponse{}, usererrors.ErrInvalidManager
		}
		managerID = &id
	}

	joinDate := time.Now().UTC()
	if req.JoinDate != "" {
		parsed, err := time.Parse("2006-01-02", req.JoinDate)
		if err != nil {
			return UserResponse{}, apperror.InvalidField("join_date")
		}
		joinDate = parsed
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return UserResponse{}, err
	}

	u := &user.User{
		ID:          uuid.New(),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Password:    string(hashed),
		Role:        req.Role,
		Department:  req.Department,
		Designation: req.Designation,
		JoinDate:    joinDate,
		ManagerID:   managerID,
		Status:      user.StatusActive,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		s.logger.Warn("register persist failed", zap.Error(err))
		return UserResponse{}, user.MapStoreError(err)
	}

	s.recorder.UserCreated(ctx, actorID, u.ID.String(), u.Name, map[string]any{
		"name":       u.Name,
		"email":      u.Email,
		"role":       u.Role,
		"department": u.Department,
	})

	s.logger.Info("register success",
		zap.String("user_id", u.ID.String()),
		zap.String("role", u.Role),
	)
	return MapUserResponse(u), nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, string, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return "", "", autherrors.ErrInvalidRefreshToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", autherrors.ErrInvalidRefreshToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", autherrors.ErrInvalidRefreshToken
	}

	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return "", "", autherrors.ErrInvalidRefreshToken
	}
	// The token must still be the one we issued last; rotation invalidates
	// everything older.
	if u.RefreshToken != refreshToken {
		return "", "", autherrors.ErrInvalidRefreshToken
	}

	newAccess, err := generateToken(u.ID.String(), u.Role, accessTokenTTL)
	if err != nil {
		return "", "", autherrors.ErrTokenGenerationFailed
	}
	newRefresh, err := generateToken(u.ID.String(), u.Role, refreshTokenTTL)
	if err != nil {
		return "", "", autherrors.ErrTokenGenerationFailed
	}

	u.RefreshToken = newRefresh
	if err := s.repo.Update(ctx, u); err != nil {
		return "", "", user.MapStoreError(err)
	}

	return newAccess, newRefresh, nil
}

func (s *service) Logout(ctx context.Context, userID string) error {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usererrors.ErrUserNotFound
		}
		return err
	}

	u.RefreshToken = ""
	if err := s.repo.Update(ctx, u); err != nil {
		return user.MapStoreError(err)
	}

	s.logger.Info("logout success", zap.String("user_id", userID))
	return nil
}

func (s *service) GetProfile(ctx context.Context, userID string) (UserResponse, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, usererrors.ErrUserNotFound
		}
		return UserResponse{}, err
	}
	return MapUserResponse(u), nil
}

func generateToken(userID, role string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// MapUserResponse flattens a user record for API responses; password and
// refresh token never leave the service layer.
func MapUserResponse(u *user.User) UserResponse {
	resp := UserResponse{
		ID:          u.ID.String(),
		Name:        u.Name,
		Email:       u.Email,
		Phone:       u.Phone,
		Role:        u.Role,
		Department:  u.Department,
		Designation: u.Designation,
		Status:      u.Status,
	}
	if !u.JoinDate.IsZero() {
		resp.JoinDate = u.JoinDate.Format("2006-01-02")
	}
	if u.ManagerID != nil {
		v := u.ManagerID.String()
		resp.ManagerID = &v
	}
	if u.Manager != nil {
		resp.ManagerName = u.Manager.Name
	}
	return resp
}
