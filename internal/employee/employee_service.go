package employee

import (
	"context"
	"errors"

	employeeerrors "github.com/subhankar-techs/emp-management/internal/employee/errors"
	"github.com/subhankar-techs/emp-management/internal/user"
	usererrors "github.com/subhankar-techs/emp-management/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ActivityRecorder receives audit entries for employee mutations. Activation
// intentionally has no counterpart here.
type ActivityRecorder interface {
	UserUpdated(ctx context.Context, actorID, userID string, changes map[string]any)
	UserDeactivated(ctx context.Context, actorID, userID, name string)
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, f ListFilter) ([]EmployeeResponse, int64, error)
	GetByID(ctx context.Context, actorID, actorRole, id string) (EmployeeResponse, error)
	Departments(ctx context.Context) ([]string, error)
	Update(ctx context.Context, actorID, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Deactivate(ctx context.Context, actorID, id string) (EmployeeResponse, error)
	Activate(ctx context.Context, actorID, id string) (EmployeeResponse, error)
}

type service struct {
	repo     user.Repository
	recorder ActivityRecorder
	logger   *zap.Logger
}

func NewService(repo user.Repository, recorder ActivityRecorder, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, recorder: recorder, logger: l}
}

func (s *service) GetAll(ctx context.Context, f ListFilter) ([]EmployeeResponse, int64, error) {
	if f.Status == "" {
		f.Status = user.StatusActive
	}
	if f.Status != user.StatusActive && f.Status != user.StatusInactive {
		return nil, 0, employeeerrors.ErrInvalidStatusFilter
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 10
	}

	users, total, err := s.repo.FindStaff(ctx, user.StaffFilter{
		Department: f.Department,
		Status:     f.Status,
		Page:       f.Page,
		Limit:      f.Limit,
	})
	if err != nil {
		s.logger.Error("staff listing failed", zap.Error(err))
		return nil, 0, err
	}

	resp := make([]EmployeeResponse, 0, len(users))
	for i := range users {
		resp = append(resp, mapToResponse(&users[i]))
	}
	return resp, total, nil
}

func (s *service) GetByID(ctx context.Context, actorID, actorRole, id string) (EmployeeResponse, error) {
	if actorRole == user.RoleEmployee && actorID != id {
		return EmployeeResponse{}, employeeerrors.ErrSelfAccessOnly
	}

	u, err := s.findEmployee(ctx, id)
	if err != nil {
		return EmployeeResponse{}, err
	}
	return mapToResponse(u), nil
}

func (s *service) Departments(ctx context.Context) ([]string, error) {
	departments, err := s.repo.DistinctDepartments(ctx)
	if err != nil {
		s.logger.Error("department listing failed", zap.Error(err))
		return nil, err
	}
	return departments, nil
}

func (s *service) Update(ctx context.Context, actorID, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	u, err := s.findEmployee(ctx, id)
	if err != nil {
		return EmployeeResponse{}, err
	}

	// Email, password and role are managed through auth flows and are never
	// writable here.
	changes := map[string]any{}
	if req.Name != "" && req.Name != u.Name {
		changes["name"] = map[string]any{"from": u.Name, "to": req.Name}
		u.Name = req.Name
	}
	if req.Phone != "" && req.Phone != u.Phone {
		changes["phone"] = map[string]any{"from": u.Phone, "to": req.Phone}
		u.Phone = req.Phone
	}
	if req.Department != "" && req.Department != u.Department {
		changes["department"] = map[string]any{"from": u.Department, "to": req.Department}
		u.Department = req.Department
	}
	if req.Designation != "" && req.Designation != u.Designation {
		changes["designation"] = map[string]any{"from": u.Designation, "to": req.Designation}
		u.Designation = req.Designation
	}
	if req.ManagerID != "" {
		managerID, err := uuid.Parse(req.ManagerID)
		if err != nil {
			return EmployeeResponse{}, usererrors.ErrInvalidManager
		}
		manager, err := s.repo.FindByID(ctx, req.ManagerID)
		if err != nil || manager.Role != user.RoleHRManager {
			return EmployeeResponse{}, usererrors.ErrInvalidManager
		}
		if u.ManagerID == nil || *u.ManagerID != managerID {
			from := ""
			if u.ManagerID != nil {
				from = u.ManagerID.String()
			}
			changes["manager_id"] = map[string]any{"from": from, "to": managerID.String()}
			u.ManagerID = &managerID
			u.Manager = manager
		}
	}

	if len(changes) == 0 {
		return mapToResponse(u), nil
	}

	if err := s.repo.Update(ctx, u); err != nil {
		s.logger.Warn("employee update failed",
			zap.String("employee_id", id),
			zap.Error(err),
		)
		return EmployeeResponse{}, user.MapStoreError(err)
	}

	s.recorder.UserUpdated(ctx, actorID, u.ID.String(), changes)

	s.logger.Info("employee updated",
		zap.String("employee_id", id),
		zap.Int("fields_changed", len(changes)),
	)
	return mapToResponse(u), nil
}

func (s *service) Deactivate(ctx context.Context, actorID, id string) (EmployeeResponse, error) {
	u, err := s.findEmployee(ctx, id)
	if err != nil {
		return EmployeeResponse{}, err
	}

	if u.Status == user.StatusInactive {
		return EmployeeResponse{}, employeeerrors.ErrAlreadyInactive
	}

	u.Status = user.StatusInactive
	u.RefreshToken = ""
	if err := s.repo.Update(ctx, u); err != nil {
		return EmployeeResponse{}, user.MapStoreError(err)
	}

	s.recorder.UserDeactivated(ctx, actorID, u.ID.String(), u.Name)

	s.logger.Info("employee deactivated", zap.String("employee_id", id))
	return mapToResponse(u), nil
}

func (s *service) Activate(ctx context.Context, actorID, id string) (EmployeeResponse, error) {
	u, err := s.findEmployee(ctx, id)
	if err != nil {
		return EmployeeResponse{}, err
	}

	if u.Status == user.StatusActive {
		return EmployeeResponse{}, employeeerrors.ErrAlreadyActive
	}

	u.Status = user.StatusActive
	if err := s.repo.Update(ctx, u); err != nil {
		return EmployeeResponse{}, user.MapStoreError(err)
	}

	s.logger.Info("employee activated", zap.String("employee_id", id))
	return mapToResponse(u), nil
}

func (s *service) findEmployee(ctx context.Context, id string) (*user.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, usererrors.ErrInvalidUserID
	}
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usererrors.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func mapToResponse(u *user.User) EmployeeResponse {
	resp := EmployeeResponse{
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
