package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adrelay/internal/adapter/memory"
	"adrelay/internal/core/domain"
	"adrelay/internal/core/port"
	"adrelay/internal/core/port/mocks"
)

func viewerAt(ip string) port.ViewerContext {
	return port.ViewerContext{Viewer: domain.Viewer{IP: ip, UserAgent: "test-agent"}}
}

// TestWatchAdPicksHigherBid covers two eligible campaigns with different bids.
func TestWatchAdPicksHigherBid(t *testing.T) {
	campaigns := memory.NewCampaignStore(campaign("c1", 5, 20), campaign("c2", 3, 100))
	svc := NewAdUseCase(campaigns, memory.NewViewerLedger())

	resp, err := svc.WatchAd(context.Background(), mainstreamPopunder, viewerAt("9.9.9.9"))
	require.NoError(t, err)
	require.Equal(t, "c1", resp.CampaignID)
	require.True(t, resp.Billed)
	require.Equal(t, int64(5), resp.Amount)
}

// TestWatchAdRepeatViewer covers one IP visiting the same campaign twice.
func TestWatchAdRepeatViewer(t *testing.T) {
	campaigns := memory.NewCampaignStore(campaign("c1", 5, 20))
	viewers := memory.NewViewerLedger()
	svc := NewAdUseCase(campaigns, viewers)

	first, err := svc.WatchAd(context.Background(), mainstreamPopunder, viewerAt("1.2.3.4"))
	require.NoError(t, err)
	require.True(t, first.Billed)

	second, err := svc.WatchAd(context.Background(), mainstreamPopunder, port.ViewerContext{
		Viewer: domain.Viewer{IP: "1.2.3.4", UserAgent: "a different browser"},
	})
	require.NoError(t, err)
	require.False(t, second.Billed)
	require.Equal(t, first.DestinationURL, second.DestinationURL)

	c, _ := campaigns.Get("c1")
	require.Equal(t, int64(15), c.BudgetRemaining)

	rec, ok := viewers.Get(domain.ViewerKey{IP: "1.2.3.4", CampaignID: "c1"})
	require.True(t, ok)
	require.Equal(t, int64(2), rec.VisitCount)
	require.Equal(t, "test-agent", rec.UserAgent)
}

func TestWatchAdInvalidFilter(t *testing.T) {
	svc := NewAdUseCase(mocks.NewMockCampaignStore(t), mocks.NewMockViewerLedger(t))

	_, err := svc.WatchAd(context.Background(), domain.AdFilter{AdType: "banner", Category: domain.CategoryAdult}, viewerAt("1.1.1.1"))
	require.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestWatchAdReselectsAfterBudgetExhausted(t *testing.T) {
	store := mocks.NewMockCampaignStore(t)
	ledger := mocks.NewMockViewerLedger(t)

	store.EXPECT().
		FindEligible(mock.Anything, mainstreamPopunder).
		Return([]domain.Campaign{campaign("c1", 5, 5), campaign("c2", 3, 100)}, nil).Once()
	store.EXPECT().
		FindEligible(mock.Anything, mainstreamPopunder.Without("c1")).
		Return([]domain.Campaign{campaign("c2", 3, 100)}, nil).Once()
	ledger.EXPECT().CreateIfAbsent(mock.Anything, mock.Anything).Return(true, nil).Twice()
	store.EXPECT().ConditionalDebit(mock.Anything, "c1", int64(5)).Return(false, nil).Once()
	store.EXPECT().ConditionalDebit(mock.Anything, "c2", int64(3)).Return(true, nil).Once()

	svc := NewAdUseCase(store, ledger)

	resp, err := svc.WatchAd(context.Background(), mainstreamPopunder, viewerAt("1.2.3.4"))
	require.NoError(t, err)
	require.Equal(t, "c2", resp.CampaignID)
	require.True(t, resp.Billed)
}

func TestWatchAdReselectDisabled(t *testing.T) {
	store := mocks.NewMockCampaignStore(t)
	ledger := mocks.NewMockViewerLedger(t)

	store.EXPECT().
		FindEligible(mock.Anything, mainstreamPopunder).
		Return([]domain.Campaign{campaign("c1", 5, 5)}, nil).Once()
	ledger.EXPECT().CreateIfAbsent(mock.Anything, mock.Anything).Return(true, nil).Once()
	store.EXPECT().ConditionalDebit(mock.Anything, "c1", int64(5)).Return(false, nil).Once()

	svc := NewAdUseCase(store, ledger, WithMaxReselect(0))

	_, err := svc.WatchAd(context.Background(), mainstreamPopunder, viewerAt("1.2.3.4"))
	require.ErrorIs(t, err, domain.ErrBudgetExhausted)
}

func TestWatchAdPublishesVisitEvents(t *testing.T) {
	campaigns := memory.NewCampaignStore(campaign("c1", 5, 20))
	publisher := mocks.NewMockVisitPublisher(t)

	var outcomes []domain.VisitOutcome
	publisher.EXPECT().
		PublishVisit(mock.Anything, mock.AnythingOfType("domain.VisitEvent")).
		Run(func(_ context.Context, event domain.VisitEvent) {
			require.Equal(t, "c1", event.CampaignID)
			require.Equal(t, "1.2.3.4", event.IP)
			require.NotEmpty(t, event.ID)
			outcomes = append(outcomes, event.Outcome)
		}).
		Return(nil).Twice()

	svc := NewAdUseCase(campaigns, memory.NewViewerLedger(), WithPublisher(publisher), WithClock(fixedClock))

	for range 2 {
		_, err := svc.WatchAd(context.Background(), mainstreamPopunder, viewerAt("1.2.3.4"))
		require.NoError(t, err)
	}
	require.NoError(t, svc.Close(context.Background()))
	require.Equal(t, []domain.VisitOutcome{domain.OutcomeBilled, domain.OutcomeRepeat}, outcomes)
}

func TestWatchAdPublishFailureDoesNotBlockRedirect(t *testing.T) {
	publisher := mocks.NewMockVisitPublisher(t)
	publisher.EXPECT().PublishVisit(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	svc := NewAdUseCase(memory.NewCampaignStore(campaign("c1", 5, 20)), memory.NewViewerLedger(), WithPublisher(publisher))

	resp, err := svc.WatchAd(context.Background(), mainstreamPopunder, viewerAt("1.2.3.4"))
	require.NoError(t, err)
	require.True(t, resp.Billed)
	require.NoError(t, svc.Close(context.Background()))
}

// blockingPublisher holds every publish until release is closed.
type blockingPublisher struct {
	release   chan struct{}
	published atomic.Int32
}

func (p *blockingPublisher) PublishVisit(context.Context, domain.VisitEvent) error {
	<-p.release
	p.published.Add(1)
	return nil
}

func TestWatchAdDoesNotWaitForSlowPublisher(t *testing.T) {
	publisher := &blockingPublisher{release: make(chan struct{})}
	campaigns := memory.NewCampaignStore(campaign("c1", 5, 20))
	svc := NewAdUseCase(campaigns, memory.NewViewerLedger(), WithPublisher(publisher))

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	start := time.Now()
	for _, ip := range []string{"1.2.3.4", "5.6.7.8"} {
		resp, err := svc.WatchAd(ctx, mainstreamPopunder, viewerAt(ip))
		require.NoError(t, err)
		require.True(t, resp.Billed)
	}
	require.Less(t, time.Since(start), 200*time.Millisecond)
	require.NoError(t, ctx.Err())

	c, _ := campaigns.Get("c1")
	require.Equal(t, int64(10), c.BudgetRemaining)

	close(publisher.release)
	require.NoError(t, svc.Close(context.Background()))
	require.Equal(t, int32(2), publisher.published.Load())
}

func TestWatchAdDropsEventsWhenQueueFull(t *testing.T) {
	publisher := &blockingPublisher{release: make(chan struct{})}
	campaigns := memory.NewCampaignStore(campaign("c1", 1, 100))
	svc := NewAdUseCase(campaigns, memory.NewViewerLedger(), WithPublisher(publisher), WithEventQueueSize(1))

	for i := range 10 {
		_, err := svc.WatchAd(context.Background(), mainstreamPopunder, viewerAt(fmt.Sprintf("10.0.0.%d", i)))
		require.NoError(t, err)
	}

	c, _ := campaigns.Get("c1")
	require.Equal(t, int64(90), c.BudgetRemaining)

	close(publisher.release)
	require.NoError(t, svc.Close(context.Background()))
	// One event in the worker, one in the queue; the rest were dropped.
	require.LessOrEqual(t, publisher.published.Load(), int32(2))
	require.GreaterOrEqual(t, publisher.published.Load(), int32(1))
}

func TestCloseHonoursDeadline(t *testing.T) {
	publisher := &blockingPublisher{release: make(chan struct{})}
	defer close(publisher.release)
	svc := NewAdUseCase(memory.NewCampaignStore(campaign("c1", 5, 20)), memory.NewViewerLedger(), WithPublisher(publisher))

	_, err := svc.WatchAd(context.Background(), mainstreamPopunder, viewerAt("1.2.3.4"))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, svc.Close(ctx), context.DeadlineExceeded)

	// Events after Close are dropped instead of panicking.
	_, err = svc.WatchAd(context.Background(), mainstreamPopunder, viewerAt("5.6.7.8"))
	require.NoError(t, err)
}

// TestConcurrentBudget ensures concurrent first visits never overspend: with
// remaining R and bid B at most floor(R/B) debits succeed.
func TestConcurrentBudget(t *testing.T) {
	const (
		remaining = 23
		bid       = 5
		visitors  = 50
	)
	campaigns := memory.NewCampaignStore(campaign("c1", bid, remaining))
	svc := NewAdUseCase(campaigns, memory.NewViewerLedger(), WithMaxReselect(0))

	var billed, exhausted, notFound atomic.Int64
	var wg sync.WaitGroup
	for i := range visitors {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := svc.WatchAd(context.Background(), mainstreamPopunder, viewerAt(fmt.Sprintf("10.0.0.%d", i)))
			switch {
			case errors.Is(err, domain.ErrBudgetExhausted):
				exhausted.Add(1)
			case errors.Is(err, domain.ErrNotFound):
				notFound.Add(1)
			case err != nil:
				t.Errorf("unexpected error: %v", err)
			case resp.Billed:
				billed.Add(1)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, int64(remaining/bid), billed.Load())
	require.Equal(t, int64(visitors), billed.Load()+exhausted.Load()+notFound.Load())
	c, _ := campaigns.Get("c1")
	require.Equal(t, int64(remaining%bid), c.BudgetRemaining)
}

// TestConcurrentSameViewer ensures racing requests from one IP bill once.
func TestConcurrentSameViewer(t *testing.T) {
	const requests = 40
	campaigns := memory.NewCampaignStore(campaign("c1", 5, 1000))
	viewers := memory.NewViewerLedger()
	svc := NewAdUseCase(campaigns, viewers)

	var billed atomic.Int64
	var wg sync.WaitGroup
	for range requests {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := svc.WatchAd(context.Background(), mainstreamPopunder, viewerAt("1.2.3.4"))
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if resp.Billed {
				billed.Add(1)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, int64(1), billed.Load())
	c, _ := campaigns.Get("c1")
	require.Equal(t, int64(995), c.BudgetRemaining)
	rec, ok := viewers.Get(domain.ViewerKey{IP: "1.2.3.4", CampaignID: "c1"})
	require.True(t, ok)
	require.Equal(t, int64(requests), rec.VisitCount)
}

// TestConcurrentLastDebit covers two first visits racing for the final bid.
func TestConcurrentLastDebit(t *testing.T) {
	campaigns := memory.NewCampaignStore(campaign("c1", 5, 5))
	svc := NewAdUseCase(campaigns, memory.NewViewerLedger(), WithMaxReselect(0))

	winner := campaign("c1", 5, 5)
	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i, ip := range []string{"1.1.1.1", "2.2.2.2"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = svc.ResolveVisit(context.Background(), winner, domain.Viewer{IP: ip})
		}()
	}
	wg.Wait()

	var ok, exhausted int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrBudgetExhausted):
			exhausted++
		}
	}
	require.Equal(t, 1, ok)
	require.Equal(t, 1, exhausted)
	c, _ := campaigns.Get("c1")
	require.Zero(t, c.BudgetRemaining)
}
