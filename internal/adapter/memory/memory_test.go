package memory

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"adrelay/internal/core/domain"
)

func popunder(id string, bid, remaining int64) domain.Campaign {
	return domain.Campaign{
		ID:              id,
		AdType:          domain.AdTypePopunder,
		Category:        domain.CategoryAdult,
		BidValue:        bid,
		BudgetTotal:     remaining,
		BudgetRemaining: remaining,
	}
}

func TestFindEligibleOrdersByBidThenID(t *testing.T) {
	s := NewCampaignStore(
		popunder("b", 5, 100),
		popunder("a", 5, 100),
		popunder("c", 9, 100),
		popunder("d", 9, 3),
	)
	got, err := s.FindEligible(context.Background(), domain.AdFilter{
		AdType: domain.AdTypePopunder, Category: domain.CategoryAdult,
	})
	require.NoError(t, err)
	ids := make([]string, 0, len(got))
	for _, c := range got {
		ids = append(ids, c.ID)
	}
	require.Equal(t, []string{"c", "a", "b"}, ids)
}

func TestConditionalDebit(t *testing.T) {
	s := NewCampaignStore(popunder("c1", 5, 12))
	ctx := context.Background()

	for _, want := range []bool{true, true, false} {
		ok, err := s.ConditionalDebit(ctx, "c1", 5)
		require.NoError(t, err)
		require.Equal(t, want, ok)
	}
	c, _ := s.Get("c1")
	require.Equal(t, int64(2), c.BudgetRemaining)

	ok, err := s.ConditionalDebit(ctx, "missing", 5)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = s.ConditionalDebit(ctx, "c1", 0)
	require.Error(t, err)
}

func TestConditionalDebitConcurrent(t *testing.T) {
	s := NewCampaignStore(popunder("c1", 3, 100))

	var succeeded atomic.Int64
	var wg sync.WaitGroup
	for range 200 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := s.ConditionalDebit(context.Background(), "c1", 3)
			if err == nil && ok {
				succeeded.Add(1)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, int64(33), succeeded.Load())
	c, _ := s.Get("c1")
	require.Equal(t, int64(1), c.BudgetRemaining)
}

func TestCreateRejectsDuplicateID(t *testing.T) {
	s := NewCampaignStore()
	require.NoError(t, s.Create(context.Background(), popunder("c1", 1, 1)))
	require.ErrorIs(t, s.Create(context.Background(), popunder("c1", 1, 1)), domain.ErrInvalidCampaign)
}

func TestViewerLedgerCreateIfAbsentConcurrent(t *testing.T) {
	l := NewViewerLedger()
	now := time.Now().UTC()
	rec := domain.NewViewerRecord(domain.Viewer{IP: "1.2.3.4"}, "c1", now)

	var created atomic.Int64
	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := l.CreateIfAbsent(context.Background(), rec)
			if err == nil && ok {
				created.Add(1)
			}
		}()
	}
	wg.Wait()
	require.Equal(t, int64(1), created.Load())
}

func TestViewerLedgerIncrementVisit(t *testing.T) {
	l := NewViewerLedger()
	ctx := context.Background()
	t0 := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	key := domain.ViewerKey{IP: "1.2.3.4", CampaignID: "c1"}

	require.ErrorIs(t, l.IncrementVisit(ctx, key, t0), domain.ErrViewerNotFound)

	_, err := l.CreateIfAbsent(ctx, domain.NewViewerRecord(domain.Viewer{IP: "1.2.3.4"}, "c1", t0))
	require.NoError(t, err)
	require.NoError(t, l.IncrementVisit(ctx, key, t0.Add(time.Minute)))
	// An out-of-order update must not move last-seen backwards.
	require.NoError(t, l.IncrementVisit(ctx, key, t0.Add(time.Second)))

	rec, ok := l.Get(key)
	require.True(t, ok)
	require.Equal(t, int64(3), rec.VisitCount)
	require.Equal(t, t0.Add(time.Minute), rec.LastSeenAt)
	require.Equal(t, t0, rec.FirstSeenAt)
}

func TestViewerLedgerList(t *testing.T) {
	l := NewViewerLedger()
	now := time.Now().UTC()
	for i := range 3 {
		_, err := l.CreateIfAbsent(context.Background(),
			domain.NewViewerRecord(domain.Viewer{IP: fmt.Sprintf("10.0.0.%d", 3-i)}, "c1", now))
		require.NoError(t, err)
	}
	got, err := l.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, "10.0.0.1", got[0].IP)
}
