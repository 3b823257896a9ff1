package usecase

import (
	"context"
	"fmt"

	"adrelay/internal/core/domain"
)

// SelectWinner returns the eligible campaign with the highest bid. Ties go
// to the lowest campaign id so identical store snapshots always produce the
// same winner. It returns domain.ErrNotFound when nothing is eligible.
//
// The result is a snapshot: the winner's budget may be spent by a concurrent
// request before ResolveVisit debits it.
func (u *AdUseCase) SelectWinner(ctx context.Context, filter domain.AdFilter) (domain.Campaign, error) {
	candidates, err := u.campaigns.FindEligible(ctx, filter)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("find eligible campaigns: %w", err)
	}
	winner, ok := pickWinner(candidates, filter)
	if !ok {
		return domain.Campaign{}, domain.ErrNotFound
	}
	return winner, nil
}

// pickWinner ranks candidates, skipping any that do not satisfy the filter.
func pickWinner(candidates []domain.Campaign, filter domain.AdFilter) (domain.Campaign, bool) {
	best := -1
	for i := range candidates {
		if !candidates[i].Eligible(filter) {
			continue
		}
		if best < 0 || candidates[i].Outranks(candidates[best]) {
			best = i
		}
	}
	if best < 0 {
		return domain.Campaign{}, false
	}
	return candidates[best], true
}
