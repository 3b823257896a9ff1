package port

import (
	"context"
	"io"

	"adrelay/internal/core/domain"
)

// AdUseCase defines the business operations exposed by the redirect engine.
// This interface is the primary port into the application domain.
type AdUseCase interface {
	// WatchAd runs the auction for the filter, resolves billing for the
	// viewer and returns where to send them. It returns domain.ErrNotFound
	// or domain.ErrBudgetExhausted when no ad can be served, and an error
	// wrapping domain.ErrStoreUnavailable when storage fails.
	WatchAd(ctx context.Context, filter domain.AdFilter, viewer ViewerContext) (*Redirect, error)

	// CreateCampaign validates and stores a new campaign.
	CreateCampaign(ctx context.Context, req domain.NewCampaign) (*domain.Campaign, error)

	// ExportCampaigns writes all campaigns to w as an indented JSON array.
	ExportCampaigns(ctx context.Context, w io.Writer) error

	// ExportViewers writes all viewer records to w as an indented JSON array.
	ExportViewers(ctx context.Context, w io.Writer) error
}

// ViewerContext is the viewer identity plus the audit attributes derived
// from the request by the inbound adapter.
type ViewerContext struct {
	domain.Viewer
	Browser  string
	Platform string
	Mobile   bool
}

// Redirect is the outcome of a served ad request.
type Redirect struct {
	CampaignID     string
	DestinationURL string
	Billed         bool
	Amount         int64
}
