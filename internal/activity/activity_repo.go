package activity

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Filter narrows audit-trail reads. Zero values mean "no filter".
type Filter struct {
	Action     string
	TargetType string
	From       *time.Time
	To         *time.Time
	Page       int
	Limit      int
}

//go:generate mockgen -source=activity_repo.go -destination=mock/activity_repo_mock.go -package=mock
type Repository interface {
	Append(ctx context.Context, e *Entry) error
	FindAll(ctx context.Context, f Filter) ([]Entry, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Append(ctx context.Context, e *Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindAll(ctx context.Context, f Filter) ([]Entry, int64, error) {
	q := r.db.WithContext(ctx).Model(&Entry{})

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.TargetType != "" {
		q = q.Where("target_type = ?", f.TargetType)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at <= ?", *f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if f.Limit > 0 {
		q = q.Offset((f.Page - 1) * f.Limit).Limit(f.Limit)
	}

	var entries []Entry
	err := q.Order("created_at DESC").Find(&entries).Error
	return entries, total, err
}
