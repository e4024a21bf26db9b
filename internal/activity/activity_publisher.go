package activity

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

const AuditLogTopic = "hr.activity-log"

type auditEvent struct {
	ID          string          `json:"id"`
	ActorID     string          `json:"actor_id"`
	Action      string          `json:"action"`
	TargetType  string          `json:"target_type"`
	TargetID    string          `json:"target_id"`
	Changes     json.RawMessage `json:"changes,omitempty"`
	Description string          `json:"description"`
	OccurredAt  time.Time       `json:"occurred_at"`
}

// Publisher fans audit entries out to interested consumers. Delivery is
// best-effort; the recorder never fails a business operation over it.
type Publisher interface {
	Publish(ctx context.Context, e Entry) error
}

type kafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) Publisher {
	return &kafkaPublisher{writer: writer}
}

func (p *kafkaPublisher) Publish(ctx context.Context, e Entry) error {
	payload, err := json.Marshal(auditEvent{
		ID:          e.ID.String(),
		ActorID:     e.ActorID.String(),
		Action:      e.Action,
		TargetType:  e.TargetType,
		TargetID:    e.TargetID.String(),
		Changes:     e.Changes,
		Description: e.Description,
		OccurredAt:  time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: AuditLogTopic,
		Key:   []byte(e.TargetID.String()),
		Value: payload,
	})
}
