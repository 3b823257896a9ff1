package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"adrelay/internal/core/domain"
)

// CreateCampaign validates the submission, assigns an id and stores it with
// its full budget remaining.
func (u *AdUseCase) CreateCampaign(ctx context.Context, req domain.NewCampaign) (*domain.Campaign, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	c := req.Campaign(u.newID(), u.now())
	if err := u.campaigns.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}
	return &c, nil
}

// ExportCampaigns writes every campaign to w as an indented JSON array.
func (u *AdUseCase) ExportCampaigns(ctx context.Context, w io.Writer) error {
	campaigns, err := u.campaigns.List(ctx)
	if err != nil {
		return fmt.Errorf("list campaigns: %w", err)
	}
	if campaigns == nil {
		campaigns = []domain.Campaign{}
	}
	return writeJSON(w, campaigns)
}

// ExportViewers writes every viewer record to w as an indented JSON array.
func (u *AdUseCase) ExportViewers(ctx context.Context, w io.Writer) error {
	records, err := u.viewers.List(ctx)
	if err != nil {
		return fmt.Errorf("list viewers: %w", err)
	}
	if records == nil {
		records = []domain.ViewerRecord{}
	}
	return writeJSON(w, records)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
