package port

import (
	"context"

	"adrelay/internal/core/domain"
)

// CampaignStore is the durable record of campaigns and their budgets. It is
// an outbound port in hexagonal architecture. Implementations must be safe
// for unbounded concurrent callers, including callers in other processes
// sharing the same backing store.
type CampaignStore interface {
	// FindEligible returns every campaign eligible for the filter. The result
	// is a snapshot; budgets may change before the caller acts on it.
	FindEligible(ctx context.Context, filter domain.AdFilter) ([]domain.Campaign, error)
	// ConditionalDebit subtracts amount from the campaign's remaining budget
	// only if the remaining budget covers it at the instant of the write. It
	// reports false when the budget was insufficient or the campaign is gone.
	// The check and the write must be a single indivisible operation.
	ConditionalDebit(ctx context.Context, campaignID string, amount int64) (bool, error)
	// Create stores a new campaign.
	Create(ctx context.Context, c domain.Campaign) error
	// List returns all campaigns ordered by creation time.
	List(ctx context.Context) ([]domain.Campaign, error)
}
