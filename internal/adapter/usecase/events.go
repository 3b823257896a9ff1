package usecase

import (
	"context"
	"log/slog"
	"sync"

	"adrelay/internal/core/domain"
	"adrelay/internal/core/port"
)

const defaultEventQueueSize = 1024

// eventQueue hands visit events to a single background worker so a slow
// publisher never holds up a redirect. Events are dropped when the queue is
// full.
type eventQueue struct {
	publisher port.VisitPublisher
	logger    *slog.Logger
	events    chan queuedEvent

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

type queuedEvent struct {
	ctx   context.Context
	event domain.VisitEvent
}

func newEventQueue(publisher port.VisitPublisher, logger *slog.Logger, size int) *eventQueue {
	q := &eventQueue{
		publisher: publisher,
		logger:    logger,
		events:    make(chan queuedEvent, size),
		done:      make(chan struct{}),
	}
	go q.run()
	return q
}

// enqueue never blocks. The event keeps the request's values but not its
// cancellation, since the request usually finishes first.
func (q *eventQueue) enqueue(ctx context.Context, event domain.VisitEvent) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		q.logger.Warn("visit event dropped after shutdown", slog.String("campaign_id", event.CampaignID))
		return
	}
	select {
	case q.events <- queuedEvent{ctx: context.WithoutCancel(ctx), event: event}:
	default:
		q.logger.Warn("visit event queue full, dropping event",
			slog.String("campaign_id", event.CampaignID),
			slog.String("outcome", string(event.Outcome)))
	}
}

func (q *eventQueue) run() {
	defer close(q.done)
	for item := range q.events {
		if err := q.publisher.PublishVisit(item.ctx, item.event); err != nil {
			q.logger.Warn("publish visit event failed",
				slog.String("campaign_id", item.event.CampaignID),
				slog.Any("error", err))
		}
	}
}

// close stops accepting events and waits until queued ones are published or
// ctx ends.
func (q *eventQueue) close(ctx context.Context) error {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.events)
	}
	q.mu.Unlock()

	select {
	case <-q.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
