package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"adrelay/internal/core/domain"
	"adrelay/internal/core/port"
)

// seedNamespace makes demo campaign ids stable across runs, so seeding an
// already seeded store is a no-op.
var seedNamespace = uuid.MustParse("6f1c2f7e-3d3b-4a51-9a43-2d6f5a1c9e10")

// DemoCampaigns returns a fixed set of campaigns covering every ad type and
// category pair, with two bids per pair.
func DemoCampaigns(now time.Time) []domain.Campaign {
	adTypes := []domain.AdType{domain.AdTypePopunder, domain.AdTypeDirectLink}
	categories := []domain.Category{domain.CategoryMainstream, domain.CategoryAdult}
	bids := []int64{5, 3}

	out := make([]domain.Campaign, 0, len(adTypes)*len(categories)*len(bids))
	for _, t := range adTypes {
		for _, c := range categories {
			for i, bid := range bids {
				name := fmt.Sprintf("Demo %s %s %d", t, c, i+1)
				nc := domain.NewCampaign{
					Name:           name,
					AdType:         t,
					Category:       c,
					BidValue:       bid,
					DestinationURL: fmt.Sprintf("https://example.com/landing/%s/%s/%d", t, c, i+1),
					Budget:         bid * 1000,
				}
				out = append(out, nc.Campaign(uuid.NewSHA1(seedNamespace, []byte(name)).String(), now))
			}
		}
	}
	return out
}

// Seed inserts the demo campaigns, skipping ones that already exist.
func Seed(ctx context.Context, store port.CampaignStore) (int, error) {
	inserted := 0
	for _, c := range DemoCampaigns(time.Now().UTC()) {
		err := store.Create(ctx, c)
		switch {
		case err == nil:
			inserted++
		case errors.Is(err, domain.ErrInvalidCampaign):
		default:
			return inserted, fmt.Errorf("seed campaign %s: %w", c.Name, err)
		}
	}
	return inserted, nil
}
