package activity_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/subhankar-techs/emp-management/internal/activity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeActivityRepository struct {
	appendFn func(ctx context.Context, e *activity.Entry) error
}

func (f *fakeActivityRepository) Append(ctx context.Context, e *activity.Entry) error {
	if f.appendFn != nil {
		return f.appendFn(ctx, e)
	}
	return nil
}

func (f *fakeActivityRepository) FindAll(ctx context.Context, filter activity.Filter) ([]activity.Entry, int64, error) {
	return nil, 0, nil
}

type fakePublisher struct {
	published []activity.Entry
	err       error
}

func (f *fakePublisher) Publish(ctx context.Context, e activity.Entry) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, e)
	return nil
}

func TestRecorder_UserCreated(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New().String()
	targetID := uuid.New().String()

	t.Run("appends a complete entry", func(t *testing.T) {
		var appended *activity.Entry
		repo := &fakeActivityRepository{
			appendFn: func(ctx context.Context, e *activity.Entry) error {
				appended = e
				return nil
			},
		}

		rec := activity.NewRecorder(repo)
		rec.UserCreated(ctx, actorID, targetID, "Ritu Sharma", map[string]any{"role": "EMPLOYEE"})

		assert.NotNil(t, appended)
		assert.Equal(t, activity.ActionUserCreated, appended.Action)
		assert.Equal(t, activity.TargetUser, appended.TargetType)
		assert.Equal(t, targetID, appended.TargetID.String())

		var changes map[string]any
		assert.NoError(t, json.Unmarshal(appended.Changes, &changes))
		assert.Equal(t, "EMPLOYEE", changes["role"])
	})

	t.Run("append failure is swallowed", func(t *testing.T) {
		repo := &fakeActivityRepository{
			appendFn: func(ctx context.Context, e *activity.Entry) error {
				return errors.New("insert failed")
			},
		}

		rec := activity.NewRecorder(repo)
		assert.NotPanics(t, func() {
			rec.UserCreated(ctx, actorID, targetID, "Ritu Sharma", nil)
		})
	})

	t.Run("bad actor id drops the entry", func(t *testing.T) {
		repo := &fakeActivityRepository{
			appendFn: func(ctx context.Context, e *activity.Entry) error {
				t.Fatal("append must not be called")
				return nil
			},
		}

		rec := activity.NewRecorder(repo)
		rec.UserCreated(ctx, "not-a-uuid", targetID, "Ritu Sharma", nil)
	})
}

func TestRecorder_Publisher(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New().String()
	targetID := uuid.New().String()

	t.Run("successful append fans out", func(t *testing.T) {
		pub := &fakePublisher{}
		rec := activity.NewRecorder(&fakeActivityRepository{}).WithPublisher(pub)

		rec.LeaveApproved(ctx, actorID, targetID, "ok")
		assert.Len(t, pub.published, 1)
		assert.Equal(t, activity.ActionLeaveApproved, pub.published[0].Action)
	})

	t.Run("publisher failure never surfaces", func(t *testing.T) {
		pub := &fakePublisher{err: errors.New("broker down")}
		rec := activity.NewRecorder(&fakeActivityRepository{}).WithPublisher(pub)

		assert.NotPanics(t, func() {
			rec.LeaveCancelled(ctx, actorID, targetID)
		})
	})

	t.Run("failed append does not publish", func(t *testing.T) {
		pub := &fakePublisher{}
		repo := &fakeActivityRepository{
			appendFn: func(ctx context.Context, e *activity.Entry) error {
				return errors.New("insert failed")
			},
		}
		rec := activity.NewRecorder(repo).WithPublisher(pub)

		rec.LeaveRejected(ctx, actorID, targetID, "no")
		assert.Empty(t, pub.published)
	})
}
