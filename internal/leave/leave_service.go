package leave

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	leaveerrors "github.com/subhankar-techs/emp-management/internal/leave/errors"
	"github.com/subhankar-techs/emp-management/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ActivityRecorder is the audit sink every successful transition reports to.
// Implementations must swallow their own failures.
type ActivityRecorder interface {
	LeaveCreated(ctx context.Context, actorID, leaveID string, data map[string]any)
	LeaveApproved(ctx context.Context, actorID, leaveID, comment string)
	LeaveRejected(ctx context.Context, actorID, leaveID, comment string)
	LeaveCancelled(ctx context.Context, actorID, leaveID string)
}

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actorID string, req CreateLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context, actorID, actorRole string, f ListFilter) ([]LeaveResponse, int64, error)
	GetByID(ctx context.Context, actorID, actorRole, id string) (LeaveResponse, error)
	Decide(ctx context.Context, approverID, id string, req DecideLeaveRequest) (LeaveResponse, error)
	Cancel(ctx context.Context, actorID, id string) (LeaveResponse, error)
	Balance(ctx context.Context, employeeID string, year int) (BalanceResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	recorder ActivityRecorder
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, recorder ActivityRecorder, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		recorder: recorder,
		now:      func() time.Time { return time.Now().UTC() },
		logger:   l,
	}
}

func (s *service) Create(ctx context.Context, actorID string, req CreateLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("create leave requested",
		zap.String("actor_id", actorID),
		zap.String("leave_type", req.LeaveType),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	employeeID, err := uuid.Parse(actorID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidActorID
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	if !endDate.After(startDate) {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}
	if startDate.Before(today(s.now())) {
		return LeaveResponse{}, leaveerrors.ErrStartDateInPast
	}
	if n := len(strings.TrimSpace(req.Reason)); n < 10 || n > 500 {
		return LeaveResponse{}, leaveerrors.ErrInvalidReason
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	open, err := qtx.FindOpenByEmployee(ctx, actorID)
	if err != nil {
		s.logger.Error("create leave open requests lookup failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if overlapsAny(open, startDate, endDate) {
		s.logger.Warn("create leave overlap detected",
			zap.String("employee_id", actorID),
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
		)
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	l := &Leave{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		LeaveType:  req.LeaveType,
		StartDate:  startDate,
		EndDate:    endDate,
		TotalDays:  inclusiveDays(startDate, endDate),
		Reason:     req.Reason,
		Status:     StatusPending,
	}

	if err := qtx.Create(ctx, l); err != nil {
		s.logger.Error("create leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("create leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.recorder.LeaveCreated(ctx, actorID, l.ID.String(), map[string]any{
		"leave_type": l.LeaveType,
		"start_date": req.StartDate,
		"end_date":   req.EndDate,
		"total_days": l.TotalDays,
	})

	s.logger.Info("create leave success",
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", actorID),
	)
	return mapToResponse(*l), nil
}

func (s *service) GetAll(ctx context.Context, actorID, actorRole string, f ListFilter) ([]LeaveResponse, int64, error) {
	// Employees only ever see their own requests.
	if actorRole == user.RoleEmployee {
		f.EmployeeID = actorID
	}

	leaves, total, err := s.repo.FindAll(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	return mapToListResponse(leaves), total, nil
}

func (s *service) GetByID(ctx context.Context, actorID, actorRole, id string) (LeaveResponse, error) {
	l, err := s.findLeave(ctx, s.repo, id)
	if err != nil {
		return LeaveResponse{}, err
	}
	if actorRole == user.RoleEmployee && l.EmployeeID.String() != actorID {
		return LeaveResponse{}, leaveerrors.ErrOwnLeaveOnly
	}
	return mapToResponse(*l), nil
}

func (s *service) Decide(ctx context.Context, approverID, id string, req DecideLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("decide leave requested",
		zap.String("leave_id", id),
		zap.String("approver_id", approverID),
		zap.String("target_status", req.Status),
	)

	approverUUID, err := uuid.Parse(approverID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("decide leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := s.findLeave(ctx, qtx, id)
	if err != nil {
		return LeaveResponse{}, err
	}
	if l.Status != StatusPending {
		s.logger.Warn("decide leave not pending",
			zap.String("leave_id", id),
			zap.String("status", l.Status),
		)
		return LeaveResponse{}, leaveerrors.ErrNotPending
	}

	now := s.now()
	l.Status = req.Status
	l.ApprovedBy = &approverUUID
	l.ApprovalDate = &now
	if req.ApprovalComment != "" {
		comment := req.ApprovalComment
		l.ApprovalComment = &comment
	}

	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("decide leave persist failed",
			zap.String("leave_id", id),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("decide leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if req.Status == StatusApproved {
		s.recorder.LeaveApproved(ctx, approverID, id, req.ApprovalComment)
	} else {
		s.recorder.LeaveRejected(ctx, approverID, id, req.ApprovalComment)
	}

	s.logger.Info("decide leave success",
		zap.String("leave_id", id),
		zap.String("status", l.Status),
	)
	return mapToResponse(*l), nil
}

func (s *service) Cancel(ctx context.Context, actorID, id string) (LeaveResponse, error) {
	s.logger.Debug("cancel leave requested",
		zap.String("leave_id", id),
		zap.String("actor_id", actorID),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("cancel leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := s.findLeave(ctx, qtx, id)
	if err != nil {
		return LeaveResponse{}, err
	}
	if l.EmployeeID.String() != actorID {
		return LeaveResponse{}, leaveerrors.ErrNotOwner
	}
	switch l.Status {
	case StatusCancelled:
		return LeaveResponse{}, leaveerrors.ErrAlreadyCancelled
	case StatusRejected:
		return LeaveResponse{}, leaveerrors.ErrCancelRejected
	}
	if !s.now().Before(l.StartDate) {
		return LeaveResponse{}, leaveerrors.ErrPastDeadline
	}

	l.Status = StatusCancelled

	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("cancel leave persist failed",
			zap.String("leave_id", id),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("cancel leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.recorder.LeaveCancelled(ctx, actorID, id)

	s.logger.Info("cancel leave success", zap.String("leave_id", id))
	return mapToResponse(*l), nil
}

func (s *service) Balance(ctx context.Context, employeeID string, year int) (BalanceResponse, error) {
	approved, err := s.repo.FindApprovedInYear(ctx, employeeID, year)
	if err != nil {
		return BalanceResponse{}, err
	}

	used := map[string]int{TypeCasual: 0, TypeSick: 0, TypeEarned: 0}
	for _, l := range approved {
		used[l.LeaveType] += l.TotalDays
	}

	entitlements := make(map[string]int, len(Entitlements))
	balance := make(map[string]int, len(Entitlements))
	for t, e := range Entitlements {
		entitlements[t] = e
		// May go negative if the entitlement table shrinks after approvals.
		balance[t] = e - used[t]
	}

	return BalanceResponse{
		Year:         year,
		Entitlements: entitlements,
		Used:         used,
		Balance:      balance,
	}, nil
}

func (s *service) findLeave(ctx context.Context, repo Repository, id string) (*Leave, error) {
	l, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leaveerrors.ErrLeaveNotFound
		}
		return nil, err
	}
	return l, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func mapToResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:         l.ID.String(),
		EmployeeID: l.EmployeeID.String(),
		LeaveType:  l.LeaveType,
		StartDate:  l.StartDate.Format("2006-01-02"),
		EndDate:    l.EndDate.Format("2006-01-02"),
		TotalDays:  l.TotalDays,
		Reason:     l.Reason,
		Status:     l.Status,
		CreatedAt:  l.CreatedAt.Format(time.RFC3339),
	}
	if l.Employee != nil {
		resp.EmployeeName = l.Employee.Name
		resp.Department = l.Employee.Department
	}
	if l.ApprovedBy != nil {
		v := l.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if l.Approver != nil {
		resp.ApproverName = l.Approver.Name
	}
	if l.ApprovalDate != nil {
		v := l.ApprovalDate.Format(time.RFC3339)
		resp.ApprovalDate = &v
	}
	resp.ApprovalComment = l.ApprovalComment
	return resp
}

func mapToListResponse(leaves []Leave) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}
