package user

import (
	"context"

	"gorm.io/gorm"
)

// StaffFilter narrows staff listings. Zero values mean "no filter".
type StaffFilter struct {
	Department string
	Status     string
	Page       int
	Limit      int
}

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindStaff(ctx context.Context, f StaffFilter) ([]User, int64, error)
	Update(ctx context.Context, u *User) error
	HasRole(ctx context.Context, role string) (bool, error)
	DistinctDepartments(ctx context.Context) ([]string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).
		Preload("Manager").
		First(&u, "id = ?", id).Error
	return &u, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error
	return &u, err
}

func (r *repository) FindStaff(ctx context.Context, f StaffFilter) ([]User, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&User{}).
		Where("role IN ?", StaffRoles)

	if f.Department != "" {
		q = q.Where("department = ?", f.Department)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if f.Limit > 0 {
		q = q.Offset((f.Page - 1) * f.Limit).Limit(f.Limit)
	}

	var users []User
	err := q.Preload("Manager").
		Order("created_at DESC").
		Find(&users).Error
	return users, total, err
}

func (r *repository) Update(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *repository) HasRole(ctx context.Context, role string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&User{}).
		Where("role = ?", role).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) DistinctDepartments(ctx context.Context) ([]string, error) {
	var departments []string
	err := r.db.WithContext(ctx).
		Model(&User{}).
		Where("role IN ?", StaffRoles).
		Where("status = ?", StatusActive).
		Where("department <> ''").
		Distinct("department").
		Order("department").
		Pluck("department", &departments).Error
	return departments, err
}
