package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"adrelay/internal/core/domain"
	"adrelay/internal/core/port"
)

var _ port.AdUseCase = (*AdUseCase)(nil)

// AdUseCase provides business logic for ad selection, billing and campaign
// management. It orchestrates the campaign store, the viewer ledger and the
// visit publisher to implement port.AdUseCase.
type AdUseCase struct {
	campaigns port.CampaignStore
	viewers   port.ViewerLedger
	publisher port.VisitPublisher
	events    *eventQueue
	logger    *slog.Logger

	// maxReselect bounds how many times WatchAd runs the auction again,
	// excluding the previous winner, after losing a budget race.
	maxReselect int
	queueSize   int

	now   func() time.Time
	newID func() string
}

// Option customises an AdUseCase.
type Option func(*AdUseCase)

// WithPublisher sets the sink for visit events. Events are published in
// the background; call Close to flush them.
func WithPublisher(p port.VisitPublisher) Option {
	return func(u *AdUseCase) { u.publisher = p }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(u *AdUseCase) { u.logger = l }
}

// WithMaxReselect sets how many extra auctions WatchAd may run after
// ErrBudgetExhausted. Zero disables reselection.
func WithMaxReselect(n int) Option {
	return func(u *AdUseCase) {
		if n >= 0 {
			u.maxReselect = n
		}
	}
}

// WithEventQueueSize bounds how many visit events may wait for the
// publisher. Further events are dropped.
func WithEventQueueSize(n int) Option {
	return func(u *AdUseCase) {
		if n > 0 {
			u.queueSize = n
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(u *AdUseCase) { u.now = now }
}

// NewAdUseCase creates a new usecase backed by the given stores. Events are
// discarded unless a publisher is supplied.
func NewAdUseCase(campaigns port.CampaignStore, viewers port.ViewerLedger, opts ...Option) *AdUseCase {
	u := &AdUseCase{
		campaigns:   campaigns,
		viewers:     viewers,
		logger:      slog.New(slog.DiscardHandler),
		maxReselect: 2,
		queueSize:   defaultEventQueueSize,
		now:         func() time.Time { return time.Now().UTC() },
		newID:       uuid.NewString,
	}
	for _, opt := range opts {
		opt(u)
	}
	if u.publisher != nil {
		u.events = newEventQueue(u.publisher, u.logger, u.queueSize)
	}
	return u
}

// Close stops publishing and waits for queued visit events to be handed to
// the publisher, or for ctx to end.
func (u *AdUseCase) Close(ctx context.Context) error {
	if u.events == nil {
		return nil
	}
	return u.events.close(ctx)
}

// WatchAd selects the best paying eligible campaign, resolves billing for
// the viewer and returns the redirect. When the winner's budget runs out
// between selection and debit the auction is rerun without it, at most
// maxReselect times; after that ErrBudgetExhausted is returned. A debit is
// never retried.
func (u *AdUseCase) WatchAd(ctx context.Context, filter domain.AdFilter, viewer port.ViewerContext) (*port.Redirect, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	for attempt := 0; ; attempt++ {
		winner, err := u.SelectWinner(ctx, filter)
		if err != nil {
			return nil, err
		}

		visit, err := u.ResolveVisit(ctx, winner, viewer.Viewer)
		if visit.Outcome != "" {
			u.publish(ctx, visit, viewer)
		}
		if errors.Is(err, domain.ErrBudgetExhausted) && attempt < u.maxReselect {
			u.logger.Debug("winner exhausted, reselecting",
				slog.String("campaign_id", winner.ID),
				slog.Int("attempt", attempt+1))
			filter = filter.Without(winner.ID)
			continue
		}
		if err != nil {
			return nil, err
		}
		return ResolveRedirect(visit), nil
	}
}

func (u *AdUseCase) publish(ctx context.Context, visit Visit, viewer port.ViewerContext) {
	if u.events == nil {
		return
	}
	u.events.enqueue(ctx, domain.VisitEvent{
		ID:         u.newID(),
		CampaignID: visit.Campaign.ID,
		IP:         viewer.IP,
		UserAgent:  viewer.UserAgent,
		Browser:    viewer.Browser,
		Platform:   viewer.Platform,
		Mobile:     viewer.Mobile,
		Outcome:    visit.Outcome,
		Amount:     visit.Amount(),
		OccurredAt: visit.At,
	})
}
