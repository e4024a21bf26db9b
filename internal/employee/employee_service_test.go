package employee_test

import (
	"context"
	"testing"

	"github.com/subhankar-techs/emp-management/internal/employee"
	employeeerrors "github.com/subhankar-techs/emp-management/internal/employee/errors"
	"github.com/subhankar-techs/emp-management/internal/user"
	usererrors "github.com/subhankar-techs/emp-management/internal/user/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	findByIDFn            func(ctx context.Context, id string) (*user.User, error)
	findStaffFn           func(ctx context.Context, f user.StaffFilter) ([]user.User, int64, error)
	updateFn              func(ctx context.Context, u *user.User) error
	distinctDepartmentsFn func(ctx context.Context) ([]string, error)
}

func (f *fakeUserRepository) Create(ctx context.Context, u *user.User) error { return nil }

func (f *fakeUserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) FindStaff(ctx context.Context, filter user.StaffFilter) ([]user.User, int64, error) {
	if f.findStaffFn != nil {
		return f.findStaffFn(ctx, filter)
	}
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
	if f.distinctDepartmentsFn != nil {
		return f.distinctDepartmentsFn(ctx)
	}
	return nil, nil
}

type fakeEmployeeRecorder struct {
	updated     []map[string]any
	deactivated []string
}

func (f *fakeEmployeeRecorder) UserUpdated(ctx context.Context, actorID, userID string, changes map[string]any) {
	f.updated = append(f.updated, changes)
}

func (f *fakeEmployeeRecorder) UserDeactivated(ctx context.Context, actorID, userID, name string) {
	f.deactivated = append(f.deactivated, userID)
}

func staffMember() *user.User {
	return &user.User{
		ID:          uuid.New(),
		Name:        "Ritu Sharma",
		Email:       "ritu@example.com",
		Phone:       "9876501234",
		Role:        user.RoleEmployee,
		Department:  "Engineering",
		Designation: "Engineer",
		Status:      user.StatusActive,
	}
}

func TestEmployeeService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to active staff", func(t *testing.T) {
		repo := &fakeUserRepository{}
		var seen user.StaffFilter
		repo.findStaffFn = func(ctx context.Context, f user.StaffFilter) ([]user.User, int64, error) {
			seen = f
			return []user.User{*staffMember()}, 1, nil
		}

		svc := employee.NewService(repo, &fakeEmployeeRecorder{})
		resp, total, err := svc.GetAll(ctx, employee.ListFilter{})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Len(t, resp, 1)
		assert.Equal(t, user.StatusActive, seen.Status)
		assert.Equal(t, 1, seen.Page)
		assert.Equal(t, 10, seen.Limit)
	})

	t.Run("unknown status filter is rejected", func(t *testing.T) {
		svc := employee.NewService(&fakeUserRepository{}, &fakeEmployeeRecorder{})
		_, _, err := svc.GetAll(ctx, employee.ListFilter{Status: "RETIRED"})
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidStatusFilter)
	})
}

func TestEmployeeService_GetByID(t *testing.T) {
	ctx := context.Background()
	member := staffMember()

	t.Run("employee may read own record", func(t *testing.T) {
		repo := &fakeUserRepository{
			findByIDFn: func(ctx context.Context, id string) (*user.User, error) { return member, nil },
		}

		svc := employee.NewService(repo, &fakeEmployeeRecorder{})
		resp, err := svc.GetByID(ctx, member.ID.String(), user.RoleEmployee, member.ID.String())
		assert.NoError(t, err)
		assert.Equal(t, member.Name, resp.Name)
	})

	t.Run("employee may not read another record", func(t *testing.T) {
		svc := employee.NewService(&fakeUserRepository{}, &fakeEmployeeRecorder{})
		_, err := svc.GetByID(ctx, uuid.New().String(), user.RoleEmployee, member.ID.String())
		assert.ErrorIs(t, err, employeeerrors.ErrSelfAccessOnly)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc := employee.NewService(&fakeUserRepository{}, &fakeEmployeeRecorder{})
		_, err := svc.GetByID(ctx, uuid.New().String(), user.RoleHRManager, uuid.New().String())
		assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		svc := employee.NewService(&fakeUserRepository{}, &fakeEmployeeRecorder{})
		_, err := svc.GetByID(ctx, uuid.New().String(), user.RoleHRManager, "42")
		assert.ErrorIs(t, err, usererrors.ErrInvalidUserID)
	})
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New().String()

	t.Run("changed fields are persisted and audited with before/after values", func(t *testing.T) {
		member := staffMember()
		repo := &fakeUserRepository{
			findByIDFn: func(ctx context.Context, id string) (*user.User, error) { return member, nil },
		}
		var saved *user.User
		repo.updateFn = func(ctx context.Context, u *user.User) error {
			saved = u
			return nil
		}
		recorder := &fakeEmployeeRecorder{}

		svc := employee.NewService(repo, recorder)
		resp, err := svc.Update(ctx, actorID, member.ID.String(), employee.UpdateEmployeeRequest{
			Designation: "Senior Engineer",
		})
		assert.NoError(t, err)
		assert.Equal(t, "Senior Engineer", saved.Designation)
		assert.Equal(t, "Senior Engineer", resp.Designation)
		assert.Len(t, recorder.updated, 1)
		change := recorder.updated[0]["designation"].(map[string]any)
		assert.Equal(t, "Engineer", change["from"])
		assert.Equal(t, "Senior Engineer", change["to"])
	})

	t.Run("no-op update writes and audits nothing", func(t *testing.T) {
		member := staffMember()
		repo := &fakeUserRepository{
			findByIDFn: func(ctx context.Context, id string) (*user.User, error) { return member, nil },
			updateFn: func(ctx context.Context, u *user.User) error {
				t.Fatal("update must not be called")
				return nil
			},
		}
		recorder := &fakeEmployeeRecorder{}

		svc := employee.NewService(repo, recorder)
		_, err := svc.Update(ctx, actorID, member.ID.String(), employee.UpdateEmployeeRequest{
			Designation: member.Designation,
		})
		assert.NoError(t, err)
		assert.Empty(t, recorder.updated)
	})

	t.Run("manager must resolve to an HR manager", func(t *testing.T) {
		member := staffMember()
		other := staffMember()
		repo := &fakeUserRepository{
			findByIDFn: func(ctx context.Context, id string) (*user.User, error) {
				if id == member.ID.String() {
					return member, nil
				}
				return other, nil
			},
		}

		svc := employee.NewService(repo, &fakeEmployeeRecorder{})
		_, err := svc.Update(ctx, actorID, member.ID.String(), employee.UpdateEmployeeRequest{
			ManagerID: other.ID.String(),
		})
		assert.ErrorIs(t, err, usererrors.ErrInvalidManager)
	})
}

func TestEmployeeService_Deactivate(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New().String()

	t.Run("active employee is deactivated and audited", func(t *testing.T) {
		member := staffMember()
		member.RefreshToken = "live-session"
		repo := &fakeUserRepository{
			findByIDFn: func(ctx context.Context, id string) (*user.User, error) { return member, nil },
		}
		var saved *user.User
		repo.updateFn = func(ctx context.Context, u *user.User) error {
			saved = u
			return nil
		}
		recorder := &fakeEmployeeRecorder{}

		svc := employee.NewService(repo, recorder)
		resp, err := svc.Deactivate(ctx, actorID, member.ID.String())
		assert.NoError(t, err)
		assert.Equal(t, user.StatusInactive, saved.Status)
		assert.Empty(t, saved.RefreshToken)
		assert.Equal(t, user.StatusInactive, resp.Status)
		assert.Len(t, recorder.deactivated, 1)
	})

	t.Run("already inactive", func(t *testing.T) {
		member := staffMember()
		member.Status = user.StatusInactive
		repo := &fakeUserRepository{
			findByIDFn: func(ctx context.Context, id string) (*user.User, error) { return member, nil },
		}

		svc := employee.NewService(repo, &fakeEmployeeRecorder{})
		_, err := svc.Deactivate(ctx, actorID, member.ID.String())
		assert.ErrorIs(t, err, employeeerrors.ErrAlreadyInactive)
	})
}

func TestEmployeeService_Activate(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New().String()

	t.Run("inactive employee is reactivated without an audit entry", func(t *testing.T) {
		member := staffMember()
		member.Status = user.StatusInactive
		repo := &fakeUserRepository{
			findByIDFn: func(ctx context.Context, id string) (*user.User, error) { return member, nil },
		}
		recorder := &fakeEmployeeRecorder{}

		svc := employee.NewService(repo, recorder)
		resp, err := svc.Activate(ctx, actorID, member.ID.String())
		assert.NoError(t, err)
		assert.Equal(t, user.StatusActive, resp.Status)
		assert.Empty(t, recorder.deactivated)
		assert.Empty(t, recorder.updated)
	})

	t.Run("already active", func(t *testing.T) {
		member := staffMember()
		repo := &fakeUserRepository{
			findByIDFn: func(ctx context.Context, id string) (*user.User, error) { return member, nil },
		}

		svc := employee.NewService(repo, &fakeEmployeeRecorder{})
		_, err := svc.Activate(ctx, actorID, member.ID.String())
		assert.ErrorIs(t, err, employeeerrors.ErrAlreadyActive)
	})
}
