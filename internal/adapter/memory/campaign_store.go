// Package memory holds single-process implementations of the storage
// ports. Every operation runs under one mutex, which makes each of them a
// serialized single-writer transaction. They back local runs and tests; a
// deployment with more than one instance must use a shared store.
package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"adrelay/internal/core/domain"
	"adrelay/internal/core/port"
)

var _ port.CampaignStore = (*CampaignStore)(nil)

// CampaignStore keeps campaigns in a map keyed by id.
type CampaignStore struct {
	mu   sync.Mutex
	rows map[string]domain.Campaign
}

// NewCampaignStore returns an empty store seeded with the given campaigns.
func NewCampaignStore(seed ...domain.Campaign) *CampaignStore {
	s := &CampaignStore{rows: make(map[string]domain.Campaign, len(seed))}
	for _, c := range seed {
		s.rows[c.ID] = c
	}
	return s
}

func (s *CampaignStore) FindEligible(_ context.Context, filter domain.AdFilter) ([]domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Campaign, 0)
	for _, c := range s.rows {
		if c.Eligible(filter) {
			out = append(out, c)
		}
	}
	slices.SortFunc(out, func(a, b domain.Campaign) int {
		if a.Outranks(b) {
			return -1
		}
		if b.Outranks(a) {
			return 1
		}
		return 0
	})
	return out, nil
}

func (s *CampaignStore) ConditionalDebit(_ context.Context, campaignID string, amount int64) (bool, error) {
	if amount <= 0 {
		return false, fmt.Errorf("debit amount must be positive, got %d", amount)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.rows[campaignID]
	if !ok || c.BudgetRemaining < amount {
		return false, nil
	}
	c.BudgetRemaining -= amount
	s.rows[campaignID] = c
	return true, nil
}

func (s *CampaignStore) Create(_ context.Context, c domain.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[c.ID]; ok {
		return fmt.Errorf("%w: campaign %s already exists", domain.ErrInvalidCampaign, c.ID)
	}
	s.rows[c.ID] = c
	return nil
}

func (s *CampaignStore) List(_ context.Context) ([]domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Campaign, 0, len(s.rows))
	for _, c := range s.rows {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b domain.Campaign) int {
		if n := a.CreatedAt.Compare(b.CreatedAt); n != 0 {
			return n
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out, nil
}

// Get returns a copy of the campaign with the given id.
func (s *CampaignStore) Get(id string) (domain.Campaign, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.rows[id]
	return c, ok
}
