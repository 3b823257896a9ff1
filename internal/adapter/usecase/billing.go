package usecase

import (
	"context"
	"fmt"
	"time"

	"adrelay/internal/core/domain"
)

// Visit is the billing decision for one request.
type Visit struct {
	Campaign domain.Campaign
	Outcome  domain.VisitOutcome
	At       time.Time
}

// Billed reports whether the visit charged the campaign.
func (v Visit) Billed() bool {
	return v.Outcome == domain.OutcomeBilled
}

// Amount is what the visit cost the campaign.
func (v Visit) Amount() int64 {
	if v.Billed() {
		return v.Campaign.BidValue
	}
	return 0
}

// ResolveVisit decides whether the visit is billable and applies the
// outcome.
//
// The first visit from an IP to a campaign creates the viewer record and
// debits one bid. Every later visit only bumps the record's counter. Both
// the record creation and the debit are single atomic store operations, so
// racing duplicates cannot both bill and racing viewers cannot overspend.
//
// If the debit finds the budget already spent, the record is kept (the
// viewer will not be charged later either) and domain.ErrBudgetExhausted is
// returned together with the visit so the caller can report it.
func (u *AdUseCase) ResolveVisit(ctx context.Context, winner domain.Campaign, viewer domain.Viewer) (Visit, error) {
	now := u.now()
	visit := Visit{Campaign: winner, At: now}

	created, err := u.viewers.CreateIfAbsent(ctx, domain.NewViewerRecord(viewer, winner.ID, now))
	if err != nil {
		return Visit{}, fmt.Errorf("record viewer: %w", err)
	}

	if !created {
		key := domain.ViewerKey{IP: viewer.IP, CampaignID: winner.ID}
		if err = u.viewers.IncrementVisit(ctx, key, now); err != nil {
			return Visit{}, fmt.Errorf("increment visit: %w", err)
		}
		visit.Outcome = domain.OutcomeRepeat
		return visit, nil
	}

	debited, err := u.campaigns.ConditionalDebit(ctx, winner.ID, winner.BidValue)
	if err != nil {
		return Visit{}, fmt.Errorf("debit campaign: %w", err)
	}
	if !debited {
		visit.Outcome = domain.OutcomeBudgetExhausted
		return visit, domain.ErrBudgetExhausted
	}
	visit.Outcome = domain.OutcomeBilled
	return visit, nil
}
