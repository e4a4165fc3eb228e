package service

import (
	"context"
	"log"
	"time"

	"bobcathub/internal/model"
	"bobcathub/internal/pkg"
	"bobcathub/internal/repository/mysql"
)

// Sender delivers one outbox event to the broker.
type Sender func(ctx context.Context, ev *model.ActivityOutbox) error

// OutboxRelayer periodically drains pending activity events. Failed sends
// are marked for retry and picked up by reconciliation, not re-sent inline.
type OutboxRelayer struct {
	repo      *mysql.OutboxRepository
	batchSize int
	interval  time.Duration
	sender    Sender
}

func NewOutboxRelayer(repo *mysql.OutboxRepository, sender Sender) *OutboxRelayer {
	return &OutboxRelayer{
		repo:      repo,
		batchSize: 200,
		interval:  time.Second,
		sender:    sender,
	}
}

func (r *OutboxRelayer) Run(ctx context.Context) {
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.drainOnce(ctx)
		}
	}
}

func (r *OutboxRelayer) drainOnce(ctx context.Context) {
	rows, err := r.repo.ListPending(ctx, r.batchSize)
	if err != nil {
		log.Printf("outbox query err: %v", err)
		return
	}
	for i := range rows {
		ev := rows[i]
		if err := r.sender(ctx, &ev); err != nil {
			_ = r.repo.MarkFailed(ctx, ev.ID)
			continue
		}
		_ = r.repo.MarkSent(ctx, ev.ID)
	}
}

// LogSender is the fallback sender used when no broker is configured.
func LogSender(ctx context.Context, ev *model.ActivityOutbox) error {
	log.Printf("OUTBOX SEND type=%s actor=%d subject=%d payload=%s", ev.EventType, ev.ActorID, ev.SubjectID, ev.Payload)
	return nil
}

// KafkaSender delivers events through the activity producer.
func KafkaSender(p *pkg.ActivityProducer) Sender {
	return p.Publish
}
