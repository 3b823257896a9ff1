package domain

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// AdType is the ad format a campaign is booked for.
type AdType string

const (
	AdTypePopunder   AdType = "popunder"
	AdTypeDirectLink AdType = "directlink"
)

// Valid reports whether t is one of the supported ad formats.
func (t AdType) Valid() bool {
	return t == AdTypePopunder || t == AdTypeDirectLink
}

// Category is the content category a campaign targets.
type Category string

const (
	CategoryAdult      Category = "adult"
	CategoryMainstream Category = "mainstream"
)

// Valid reports whether c is one of the supported categories.
func (c Category) Valid() bool {
	return c == CategoryAdult || c == CategoryMainstream
}

// Campaign represents an advertising campaign. Bids and budgets are stored
// in integer units (e.g. cents). BudgetTotal never changes after creation;
// BudgetRemaining only ever decreases and stays within [0, BudgetTotal].
type Campaign struct {
	ID              string    `json:"id"`
	Name            string    `json:"campaignName"`
	AdType          AdType    `json:"adType"`
	Category        Category  `json:"category"`
	BidValue        int64     `json:"bidValue"`
	DestinationURL  string    `json:"destinationUrl"`
	BudgetTotal     int64     `json:"campaignBudget"`
	BudgetRemaining int64     `json:"remainingBudget"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Eligible reports whether the campaign can serve a request described by f:
// type and category must match, the bid must reach the floor and the
// remaining budget must cover one more charge. Exclusions are honoured.
func (c Campaign) Eligible(f AdFilter) bool {
	if c.AdType != f.AdType || c.Category != f.Category {
		return false
	}
	if c.BidValue < f.MinBid || c.BudgetRemaining < c.BidValue {
		return false
	}
	return !f.Excludes(c.ID)
}

// Outranks reports whether c beats other in the auction. Higher bids win;
// equal bids fall back to the lexically lowest id so the result is stable.
func (c Campaign) Outranks(other Campaign) bool {
	if c.BidValue != other.BidValue {
		return c.BidValue > other.BidValue
	}
	return c.ID < other.ID
}

// NewCampaign describes a campaign submitted for creation.
type NewCampaign struct {
	Name           string   `json:"campaignName"`
	AdType         AdType   `json:"adType"`
	Category       Category `json:"category"`
	BidValue       int64    `json:"bidValue"`
	DestinationURL string   `json:"destinationUrl"`
	Budget         int64    `json:"campaignBudget"`
}

// Validate checks the submission and returns an error wrapping
// ErrInvalidCampaign describing the first problem found.
func (n NewCampaign) Validate() error {
	switch {
	case strings.TrimSpace(n.Name) == "":
		return fmt.Errorf("%w: campaignName is required", ErrInvalidCampaign)
	case !n.AdType.Valid():
		return fmt.Errorf("%w: unsupported adType %q", ErrInvalidCampaign, n.AdType)
	case !n.Category.Valid():
		return fmt.Errorf("%w: unsupported category %q", ErrInvalidCampaign, n.Category)
	case n.BidValue <= 0:
		return fmt.Errorf("%w: bidValue must be positive", ErrInvalidCampaign)
	case n.Budget <= 0:
		return fmt.Errorf("%w: campaignBudget must be positive", ErrInvalidCampaign)
	}
	u, err := url.Parse(n.DestinationURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: destinationUrl must be an absolute http(s) URL", ErrInvalidCampaign)
	}
	return nil
}

// Campaign builds the stored form of the submission. The remaining budget
// starts at the full budget.
func (n NewCampaign) Campaign(id string, now time.Time) Campaign {
	return Campaign{
		ID:              id,
		Name:            strings.TrimSpace(n.Name),
		AdType:          n.AdType,
		Category:        n.Category,
		BidValue:        n.BidValue,
		DestinationURL:  n.DestinationURL,
		BudgetTotal:     n.Budget,
		BudgetRemaining: n.Budget,
		CreatedAt:       now,
	}
}
