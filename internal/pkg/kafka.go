package pkg

import (
	"context"
	"encoding/json"
	"strconv"

	"bobcathub/internal/model"

	"github.com/segmentio/kafka-go"
)

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// activityMessage is the wire form of one outbox row.
type activityMessage struct {
	EventType string          `json:"event_type"`
	ActorID   uint64          `json:"actor_id"`
	SubjectID uint64          `json:"subject_id"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

// ActivityProducer publishes club activity events. Messages are keyed by
// actor id so one user's activity stays ordered within a partition.
type ActivityProducer struct {
	writer *kafka.Writer
}

func NewActivityProducer(cfg KafkaConfig) *ActivityProducer {
	return &ActivityProducer{writer: &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
	}}
}

func (p *ActivityProducer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

func (p *ActivityProducer) Publish(ctx context.Context, ev *model.ActivityOutbox) error {
	value, err := encodeActivity(ev)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   activityKey(ev.ActorID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(ev.EventType)},
		},
	})
}

func activityKey(actorID uint64) []byte {
	return strconv.AppendUint(nil, actorID, 10)
}

func encodeActivity(ev *model.ActivityOutbox) ([]byte, error) {
	msg := activityMessage{
		EventType: ev.EventType,
		ActorID:   ev.ActorID,
		SubjectID: ev.SubjectID,
	}
	if ev.Payload != "" {
		msg.Payload = json.RawMessage(ev.Payload)
	}
	return json.Marshal(msg)
}
