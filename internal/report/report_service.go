package report

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/subhankar-techs/emp-management/internal/activity"
	"github.com/subhankar-techs/emp-management/internal/leave"
	"github.com/subhankar-techs/emp-management/internal/user"
	usererrors "github.com/subhankar-techs/emp-management/internal/user/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	recentLeavesLimit = 50

	departmentReportTTL = 10 * time.Minute
)

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	LeaveSummary(ctx context.Context, f SummaryFilter) (LeaveSummaryResponse, error)
	DepartmentReport(ctx context.Context, year int) (DepartmentReportResponse, error)
	EmployeeLeaves(ctx context.Context, employeeID string, f EmployeeLeaveFilter) (EmployeeLeaveReport, error)
	ActivityLogs(ctx context.Context, f activity.Filter) ([]ActivityLogEntry, int64, error)
}

type service struct {
	repo       Repository
	leaves     leave.Repository
	users      user.Repository
	activities activity.Repository
	cache      *redis.Client
	group      singleflight.Group
	logger     *zap.Logger
}

func NewService(
	repo Repository,
	leaves leave.Repository,
	users user.Repository,
	activities activity.Repository,
	cache *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{
		repo:       repo,
		leaves:     leaves,
		users:      users,
		activities: activities,
		cache:      cache,
		logger:     l,
	}
}

func (s *service) LeaveSummary(ctx context.Context, f SummaryFilter) (LeaveSummaryResponse, error) {
	byStatus, err := s.repo.CountLeavesByStatus(ctx, f)
	if err != nil {
		return LeaveSummaryResponse{}, err
	}
	byType, err := s.repo.CountLeavesByType(ctx, f)
	if err != nil {
		return LeaveSummaryResponse{}, err
	}
	byDept, err := s.repo.CountLeavesByDepartment(ctx, f)
	if err != nil {
		return LeaveSummaryResponse{}, err
	}
	approvedDays, err := s.repo.SumApprovedDays(ctx, f)
	if err != nil {
		return LeaveSummaryResponse{}, err
	}
	recent, err := s.repo.RecentLeaves(ctx, f, recentLeavesLimit)
	if err != nil {
		return LeaveSummaryResponse{}, err
	}

	resp := LeaveSummaryResponse{
		ByStatus:     rowsToMap(byStatus),
		ByType:       rowsToMap(byType),
		ByDepartment: rowsToMap(byDept),
		ApprovedDays: approvedDays,
		Recent:       mapRecent(recent),
	}
	for _, row := range byStatus {
		resp.TotalRequests += row.Count
	}
	return resp, nil
}

func (s *service) DepartmentReport(ctx context.Context, year int) (DepartmentReportResponse, error) {
	key := fmt.Sprintf("report:department:%d", year)

	if s.cache != nil {
		raw, err := s.cache.Get(ctx, key).Bytes()
		if err == nil {
			var cached DepartmentReportResponse
			if jsonErr := json.Unmarshal(raw, &cached); jsonErr == nil {
				return cached, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn("department report cache read failed", zap.Error(err))
		}
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		resp, err := s.buildDepartmentReport(ctx, year)
		if err != nil {
			return DepartmentReportResponse{}, err
		}
		if s.cache != nil {
			raw, jsonErr := json.Marshal(resp)
			if jsonErr == nil {
				if setErr := s.cache.Set(ctx, key, string(raw), departmentReportTTL).Err(); setErr != nil {
					s.logger.Warn("department report cache write failed", zap.Error(setErr))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		return DepartmentReportResponse{}, err
	}
	return v.(DepartmentReportResponse), nil
}

func (s *service) buildDepartmentReport(ctx context.Context, year int) (DepartmentReportResponse, error) {
	staff, err := s.repo.StaffCountByDepartment(ctx)
	if err != nil {
		return DepartmentReportResponse{}, err
	}
	rollup, err := s.repo.LeaveRollupByDepartment(ctx, year)
	if err != nil {
		return DepartmentReportResponse{}, err
	}

	index := map[string]*DepartmentReportRow{}
	order := []string{}
	rowFor := func(department string) *DepartmentReportRow {
		if row, ok := index[department]; ok {
			return row
		}
		row := &DepartmentReportRow{
			Department: department,
			ByStatus:   map[string]int64{},
			ByType:     map[string]int64{},
		}
		index[department] = row
		order = append(order, department)
		return row
	}

	for _, st := range staff {
		rowFor(st.Department).Employees = st.Employees
	}
	for _, cell := range rollup {
		row := rowFor(cell.Department)
		row.Requests += cell.Requests
		row.ByStatus[cell.Status] += cell.Requests
		row.ByType[cell.LeaveType] += cell.Requests
		if cell.Status == leave.StatusApproved {
			row.ApprovedDays += cell.Days
		}
	}

	resp := DepartmentReportResponse{Year: year}
	for _, department := range order {
		resp.Departments = append(resp.Departments, *index[department])
	}
	return resp, nil
}

func (s *service) EmployeeLeaves(ctx context.Context, employeeID string, f EmployeeLeaveFilter) (EmployeeLeaveReport, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return EmployeeLeaveReport{}, usererrors.ErrInvalidUserID
	}
	u, err := s.users.FindByID(ctx, employeeID)
	if err != nil {
		return EmployeeLeaveReport{}, usererrors.ErrUserNotFound
	}

	filter := leave.ListFilter{
		EmployeeID: employeeID,
		Status:     f.Status,
		LeaveType:  f.LeaveType,
	}
	if f.Year > 0 {
		from := time.Date(f.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(f.Year, time.December, 31, 0, 0, 0, 0, time.UTC)
		filter.From = &from
		filter.To = &to
	}

	leaves, total, err := s.leaves.FindAll(ctx, filter)
	if err != nil {
		return EmployeeLeaveReport{}, err
	}

	report := EmployeeLeaveReport{
		EmployeeID:   u.ID.String(),
		EmployeeName: u.Name,
		Department:   u.Department,
		Total:        total,
		ByStatus:     map[string]int64{},
		Leaves:       mapRecent(leaves),
	}
	for i := range leaves {
		report.ByStatus[leaves[i].Status]++
		if leaves[i].Status == leave.StatusApproved {
			report.ApprovedDays += int64(leaves[i].TotalDays)
		}
	}
	return report, nil
}

func (s *service) ActivityLogs(ctx context.Context, f activity.Filter) ([]ActivityLogEntry, int64, error) {
	entries, total, err := s.activities.FindAll(ctx, f)
	if err != nil {
		return nil, 0, err
	}

	logs := make([]ActivityLogEntry, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		entry := ActivityLogEntry{
			ID:          e.ID.String(),
			ActorID:     e.ActorID.String(),
			Action:      e.Action,
			TargetType:  e.TargetType,
			TargetID:    e.TargetID.String(),
			Description: e.Description,
			CreatedAt:   e.CreatedAt,
		}
		if len(e.Changes) > 0 {
			_ = json.Unmarshal(e.Changes, &entry.Changes)
		}
		logs = append(logs, entry)
	}
	return logs, total, nil
}

func rowsToMap(rows []CountRow) map[string]int64 {
	m := make(map[string]int64, len(rows))
	for _, row := range rows {
		m[row.Key] = row.Count
	}
	return m
}

func mapRecent(leaves []leave.Leave) []RecentLeave {
	out := make([]RecentLeave, 0, len(leaves))
	for i := range leaves {
		l := &leaves[i]
		item := RecentLeave{
			ID:        l.ID.String(),
			LeaveType: l.LeaveType,
			StartDate: l.StartDate.Format("2006-01-02"),
			EndDate:   l.EndDate.Format("2006-01-02"),
			TotalDays: l.TotalDays,
			Status:    l.Status,
		}
		if l.Employee != nil {
			item.EmployeeName = l.Employee.Name
			item.Department = l.Employee.Department
		}
		out = append(out, item)
	}
	return out
}
