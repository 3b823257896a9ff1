package usecase

import "adrelay/internal/core/port"

// ResolveRedirect turns a resolved visit into the redirect handed to the
// inbound adapter.
func ResolveRedirect(v Visit) *port.Redirect {
	return &port.Redirect{
		CampaignID:     v.Campaign.ID,
		DestinationURL: v.Campaign.DestinationURL,
		Billed:         v.Billed(),
		Amount:         v.Amount(),
	}
}
