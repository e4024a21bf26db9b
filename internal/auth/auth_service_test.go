package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/subhankar-techs/emp-management/internal/auth"
	autherrors "github.com/subhankar-techs/emp-management/internal/auth/errors"
	"github.com/subhankar-techs/emp-management/internal/user"
	usererrors "github.com/subhankar-techs/emp-management/internal/user/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	createFn      func(ctx context.Context, u *user.User) error
	findByIDFn    func(ctx context.Context, id string) (*user.User, error)
	findByEmailFn func(ctx context.Context, email string) (*user.User, error)
	updateFn      func(ctx context.Context, u *user.User) error
}

func (f *fakeUserRepository) Create(ctx context.Context, u *user.User) error {
	if f.createFn != nil {
		return f.createFn(ctx, u)
	}
	return nil
}

func (f *fakeUserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if f.findByEmailFn != nil {
		return f.findByEmailFn(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) FindStaff(ctx context.Context, filter user.StaffFilter) ([]user.User, int64, error) {
	return nil, 0, nil
}

func (f *fakeUserRepository) Update(ctx context.Context, u *user.User) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, u)
	}
	return nil
}

func (f *fakeUserRepository) HasRole(ctx context.Context, role string) (bool, error) {
	return false, nil
}

func (f *fakeUserRepository) DistinctDepartments(ctx context.Context) ([]string, error) {
	return nil, nil
}

type fakeAuthRecorder struct {
	created []string
}

func (f *fakeAuthRecorder) UserCreated(ctx context.Context, actorID, userID, name string, data map[string]any) {
	f.created = append(f.created, userID)
}

func activeUser(t *testing.T, password string) *user.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return &user.User{
		ID:       uuid.New(),
		Name:     "Asha Verma",
		Email:    "asha@example.com",
		Phone:    "9876543210",
		Password: string(hashed),
		Role:     user.RoleEmployee,
		Status:   user.StatusActive,
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("success issues both tokens and rotates the stored refresh token", func(t *testing.T) {
		u := activeUser(t, "secret123")
		repo := &fakeUserRepository{
			findByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
				assert.Equal(t, u.Email, email)
				return u, nil
			},
		}
		var saved *user.User
		repo.updateFn = func(ctx context.Context, updated *user.User) error {
			saved = updated
			return nil
		}

		svc := auth.NewService(repo, &fakeAuthRecorder{})
		access, refresh, resp, err := svc.Login(ctx, u.Email, "secret123")
		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		assert.Equal(t, u.ID.String(), resp.ID)
		assert.NotNil(t, saved)
		assert.Equal(t, refresh, saved.RefreshToken)

		token, err := jwt.Parse(access, func(token *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		assert.NoError(t, err)
		claims := token.Claims.(jwt.MapClaims)
		assert.Equal(t, u.ID.String(), claims["user_id"])
		assert.Equal(t, user.RoleEmployee, claims["role"])
	})

	t.Run("wrong password", func(t *testing.T) {
		u := activeUser(t, "secret123")
		repo := &fakeUserRepository{
			findByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
				return u, nil
			},
		}

		svc := auth.NewService(repo, &fakeAuthRecorder{})
		_, _, _, err := svc.Login(ctx, u.Email, "not-the-password")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc := auth.NewService(&fakeUserRepository{}, &fakeAuthRecorder{})
		_, _, _, err := svc.Login(ctx, "ghost@example.com", "whatever")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("deactivated account cannot log in", func(t *testing.T) {
		u := activeUser(t, "secret123")
		u.Status = user.StatusInactive
		repo := &fakeUserRepository{
			findByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
				return u, nil
			},
		}

		svc := auth.NewService(repo, &fakeAuthRecorder{})
		_, _, _, err := svc.Login(ctx, u.Email, "secret123")
		assert.ErrorIs(t, err, autherrors.ErrAccountInactive)
	})
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	t.Setenv("JWT_SECRET", "test-secret")
	actorID := uuid.New().String()

	manager := &user.User{
		ID:     uuid.New(),
		Name:   "Hari Menon",
		Role:   user.RoleHRManager,
		Status: user.StatusActive,
	}

	baseRequest := func() auth.RegisterRequest {
		return auth.RegisterRequest{
			Name:        "Ritu Sharma",
			Email:       "ritu@example.com",
			Phone:       "9876501234",
			Password:    "secret123",
			Role:        user.RoleEmployee,
			Department:  "Engineering",
			Designation: "Engineer",
			ManagerID:   manager.ID.String(),
		}
	}

	t.Run("employee registration stores a hash and records the audit entry", func(t *testing.T) {
		var created *user.User
		repo := &fakeUserRepository{
			findByIDFn: func(ctx context.Context, id string) (*user.User, error) {
				assert.Equal(t, manager.ID.String(), id)
				return manager, nil
			},
			createFn: func(ctx context.Context, u *user.User) error {
				created = u
				return nil
			},
		}
		recorder := &fakeAuthRecorder{}

		svc := auth.NewService(repo, recorder)
		resp, err := svc.Register(ctx, actorID, baseRequest())
		assert.NoError(t, err)
		assert.NotNil(t, created)
		assert.NotEqual(t, "secret123", created.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("secret123")))
		assert.Equal(t, user.StatusActive, created.Status)
		assert.Equal(t, manager.ID, *created.ManagerID)
		assert.Equal(t, created.ID.String(), resp.ID)
		assert.Len(t, recorder.created, 1)
	})

	t.Run("employee without a manager is rejected", func(t *testing.T) {
		svc := auth.NewService(&fakeUserRepository{}, &fakeAuthRecorder{})
		req := baseRequest()
		req.ManagerID = ""

		_, err := svc.Register(ctx, actorID, req)
		assert.ErrorIs(t, err, autherrors.ErrManagerRequired)
	})

	t.Run("manager must hold the HR_MANAGER role", func(t *testing.T) {
		notManager := activeUser(t, "x")
		repo := &fakeUserRepository{
			findByIDFn: func(ctx context.Context, id string) (*user.User, error) {
				return notManager, nil
			},
		}

		svc := auth.NewService(repo, &fakeAuthRecorder{})
		req := baseRequest()
		req.ManagerID = notManager.ID.String()

		_, err := svc.Register(ctx, actorID, req)
		assert.ErrorIs(t, err, usererrors.ErrInvalidManager)
	})

	t.Run("hr manager registration needs no manager", func(t *testing.T) {
		repo := &fakeUserRepository{
			createFn: func(ctx context.Context, u *user.User) error { return nil },
		}

		svc := auth.NewService(repo, &fakeAuthRecorder{})
		req := baseRequest()
		req.Role = user.RoleHRManager
		req.ManagerID = ""

		_, err := svc.Register(ctx, actorID, req)
		assert.NoError(t, err)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()
	t.Setenv("JWT_SECRET", "test-secret")

	issueFor := func(t *testing.T, repo *fakeUserRepository, u *user.User) string {
		t.Helper()
		svc := auth.NewService(repo, &fakeAuthRecorder{})
		_, refresh, _, err := svc.Login(ctx, u.Email, "secret123")
		assert.NoError(t, err)
		return refresh
	}

	t.Run("valid token rotates", func(t *testing.T) {
		u := activeUser(t, "secret123")
		repo := &fakeUserRepository{
			findByEmailFn: func(ctx context.Context, email string) (*user.User, error) { return u, nil },
			findByIDFn:    func(ctx context.Context, id string) (*user.User, error) { return u, nil },
			updateFn: func(ctx context.Context, updated *user.User) error {
				u.RefreshToken = updated.RefreshToken
				return nil
			},
		}
		refresh := issueFor(t, repo, u)

		svc := auth.NewService(repo, &fakeAuthRecorder{})
		newAccess, newRefresh, err := svc.RefreshToken(ctx, refresh)
		assert.NoError(t, err)
		assert.NotEmpty(t, newAccess)
		assert.NotEmpty(t, newRefresh)
		assert.Equal(t, newRefresh, u.RefreshToken)
	})

	t.Run("a rotated-out token is refused", func(t *testing.T) {
		u := activeUser(t, "secret123")
		repo := &fakeUserRepository{
			findByEmailFn: func(ctx context.Context, email string) (*user.User, error) { return u, nil },
			findByIDFn:    func(ctx context.Context, id string) (*user.User, error) { return u, nil },
			updateFn: func(ctx context.Context, updated *user.User) error {
				u.RefreshToken = updated.RefreshToken
				return nil
			},
		}
		old := issueFor(t, repo, u)
		// A second login rotates the stored token; the first one must die.
		time.Sleep(1100 * time.Millisecond)
		_ = issueFor(t, repo, u)

		svc := auth.NewService(repo, &fakeAuthRecorder{})
		_, _, err := svc.RefreshToken(ctx, old)
		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		svc := auth.NewService(&fakeUserRepository{}, &fakeAuthRecorder{})
		_, _, err := svc.RefreshToken(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("clears the stored refresh token", func(t *testing.T) {
		u := activeUser(t, "secret123")
		u.RefreshToken = "some-refresh-token"
		repo := &fakeUserRepository{
			findByIDFn: func(ctx context.Context, id string) (*user.User, error) { return u, nil },
		}
		var saved *user.User
		repo.updateFn = func(ctx context.Context, updated *user.User) error {
			saved = updated
			return nil
		}

		svc := auth.NewService(repo, &fakeAuthRecorder{})
		err := svc.Logout(ctx, u.ID.String())
		assert.NoError(t, err)
		assert.Empty(t, saved.RefreshToken)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := auth.NewService(&fakeUserRepository{}, &fakeAuthRecorder{})
		err := svc.Logout(ctx, uuid.New().String())
		assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
	})
}
