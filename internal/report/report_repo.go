package report

import (
	"context"

	"github.com/subhankar-techs/emp-management/internal/leave"
	"github.com/subhankar-techs/emp-management/internal/user"

	"gorm.io/gorm"
)

type CountRow struct {
	Key   string
	Count int64
}

// DeptLeaveRow is one (department, status, type) cell of the yearly rollup.
type DeptLeaveRow struct {
	Department string
	Status     string
	LeaveType  string
	Requests   int64
	Days       int64
}

type DeptStaffRow struct {
	Department string
	Employees  int64
}

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	CountLeavesByStatus(ctx context.Context, f SummaryFilter) ([]CountRow, error)
	CountLeavesByType(ctx context.Context, f SummaryFilter) ([]CountRow, error)
	CountLeavesByDepartment(ctx context.Context, f SummaryFilter) ([]CountRow, error)
	SumApprovedDays(ctx context.Context, f SummaryFilter) (int64, error)
	RecentLeaves(ctx context.Context, f SummaryFilter, limit int) ([]leave.Leave, error)
	StaffCountByDepartment(ctx context.Context) ([]DeptStaffRow, error)
	LeaveRollupByDepartment(ctx context.Context, year int) ([]DeptLeaveRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) filtered(ctx context.Context, f SummaryFilter) *gorm.DB {
	q := r.db.WithContext(ctx).
		Model(&leave.Leave{}).
		Joins("JOIN users ON users.id = leaves.employee_id")

	if f.From != nil {
		q = q.Where("leaves.start_date >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("leaves.start_date <= ?", *f.To)
	}
	if f.Status != "" {
		q = q.Where("leaves.status = ?", f.Status)
	}
	if f.Department != "" {
		q = q.Where("users.department = ?", f.Department)
	}
	return q
}

func (r *repository) CountLeavesByStatus(ctx context.Context, f SummaryFilter) ([]CountRow, error) {
	var rows []CountRow
	err := r.filtered(ctx, f).
		Select("leaves.status AS key, COUNT(*) AS count").
		Group("leaves.status").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) CountLeavesByType(ctx context.Context, f SummaryFilter) ([]CountRow, error) {
	var rows []CountRow
	err := r.filtered(ctx, f).
		Select("leaves.leave_type AS key, COUNT(*) AS count").
		Group("leaves.leave_type").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) CountLeavesByDepartment(ctx context.Context, f SummaryFilter) ([]CountRow, error) {
	var rows []CountRow
	err := r.filtered(ctx, f).
		Select("users.department AS key, COUNT(*) AS count").
		Group("users.department").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) SumApprovedDays(ctx context.Context, f SummaryFilter) (int64, error) {
	var total int64
	err := r.filtered(ctx, f).
		Where("leaves.status = ?", leave.StatusApproved).
		Select("COALESCE(SUM(leaves.total_days), 0)").
		Scan(&total).Error
	return total, err
}

func (r *repository) RecentLeaves(ctx context.Context, f SummaryFilter, limit int) ([]leave.Leave, error) {
	var leaves []leave.Leave
	err := r.filtered(ctx, f).
		Preload("Employee").
		Order("leaves.created_at DESC").
		Limit(limit).
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) StaffCountByDepartment(ctx context.Context) ([]DeptStaffRow, error) {
	var rows []DeptStaffRow
	err := r.db.WithContext(ctx).
		Model(&user.User{}).
		Where("role IN ?", user.StaffRoles).
		Where("status = ?", user.StatusActive).
		Where("department <> ''").
		Select("department, COUNT(*) AS employees").
		Group("department").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) LeaveRollupByDepartment(ctx context.Context, year int) ([]DeptLeaveRow, error) {
	var rows []DeptLeaveRow
	err := r.db.WithContext(ctx).
		Model(&leave.Leave{}).
		Joins("JOIN users ON users.id = leaves.employee_id").
		Where("EXTRACT(YEAR FROM leaves.start_date) = ?", year).
		Select(`users.department AS department,
			leaves.status AS status,
			leaves.leave_type AS leave_type,
			COUNT(*) AS requests,
			COALESCE(SUM(leaves.total_days), 0) AS days`).
		Group("users.department, leaves.status, leaves.leave_type").
		Scan(&rows).Error
	return rows, err
}
