package activity

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Recorder emits audit entries as a synchronous step inside mutating
// operations. Emission failures are reported on the operator channel (the
// error log) and swallowed: a business operation must never fail because its
// audit write did.
type Recorder struct {
	repo      Repository
	publisher Publisher
	logger    *zap.Logger
}

func NewRecorder(repo Repository, logger ...*zap.Logger) *Recorder {
	l := zap.L().Named("activity.recorder")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("activity.recorder")
	}
	return &Recorder{repo: repo, logger: l}
}

// WithPublisher attaches a best-effort event fan-out (e.g. Kafka).
func (r *Recorder) WithPublisher(p Publisher) *Recorder {
	r.publisher = p
	return r
}

func (r *Recorder) record(
	ctx context.Context,
	actorID, action, targetType, targetID string,
	changes map[string]any,
	description string,
) {
	actor, err := uuid.Parse(actorID)
	if err != nil {
		r.logger.Error("activity dropped: bad actor id",
			zap.String("action", action),
			zap.String("actor_id", actorID),
			zap.Error(err),
		)
		return
	}
	target, err := uuid.Parse(targetID)
	if err != nil {
		r.logger.Error("activity dropped: bad target id",
			zap.String("action", action),
			zap.String("target_id", targetID),
			zap.Error(err),
		)
		return
	}

	var payload []byte
	if len(changes) > 0 {
		payload, err = json.Marshal(changes)
		if err != nil {
			r.logger.Error("activity changes marshal failed",
				zap.String("action", action),
				zap.Error(err),
			)
			payload = nil
		}
	}

	entry := Entry{
		ID:          uuid.New(),
		ActorID:     actor,
		Action:      action,
		TargetType:  targetType,
		TargetID:    target,
		Changes:     payload,
		Description: description,
	}

	if err := r.repo.Append(ctx, &entry); err != nil {
		r.logger.Error("activity append failed",
			zap.String("action", action),
			zap.String("target_id", targetID),
			zap.Error(err),
		)
		return
	}

	if r.publisher != nil {
		if err := r.publisher.Publish(ctx, entry); err != nil {
			r.logger.Error("activity publish failed",
				zap.String("action", action),
				zap.String("entry_id", entry.ID.String()),
				zap.Error(err),
			)
		}
	}
}

func (r *Recorder) UserCreated(ctx context.Context, actorID, userID, name string, data map[string]any) {
	r.record(ctx, actorID, ActionUserCreated, TargetUser, userID, data,
		fmt.Sprintf("User %s created", name))
}

func (r *Recorder) UserUpdated(ctx context.Context, actorID, userID string, changes map[string]any) {
	r.record(ctx, actorID, ActionUserUpdated, TargetUser, userID, changes,
		"User profile updated")
}

func (r *Recorder) UserDeactivated(ctx context.Context, actorID, userID, name string) {
	r.record(ctx, actorID, ActionUserDeactivated, TargetUser, userID, nil,
		fmt.Sprintf("User %s deactivated", name))
}

func (r *Recorder) LeaveCreated(ctx context.Context, actorID, leaveID string, data map[string]any) {
	r.record(ctx, actorID, ActionLeaveCreated, TargetLeave, leaveID, data,
		"Leave request created")
}

func (r *Recorder) LeaveApproved(ctx context.Context, actorID, leaveID, comment string) {
	r.record(ctx, actorID, ActionLeaveApproved, TargetLeave, leaveID,
		map[string]any{"comment": comment}, "Leave request approved")
}

func (r *Recorder) LeaveRejected(ctx context.Context, actorID, leaveID, comment string) {
	r.record(ctx, actorID, ActionLeaveRejected, TargetLeave, leaveID,
		map[string]any{"comment": comment}, "Leave request rejected")
}

func (r *Recorder) LeaveCancelled(ctx context.Context, actorID, leaveID string) {
	r.record(ctx, actorID, ActionLeaveCancelled, TargetLeave, leaveID, nil,
		"Leave request cancelled")
}
