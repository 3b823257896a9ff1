package domain

import "time"

// VisitOutcome classifies what billing decided for a visit.
type VisitOutcome string

const (
	OutcomeBilled          VisitOutcome = "billed"
	OutcomeRepeat          VisitOutcome = "repeat"
	OutcomeBudgetExhausted VisitOutcome = "budget_exhausted"
)

// VisitEvent is the raw record emitted for every billing decision.
type VisitEvent struct {
	ID         string       `json:"id"`
	CampaignID string       `json:"campaign_id"`
	IP         string       `json:"ip_address"`
	UserAgent  string       `json:"user_agent"`
	Browser    string       `json:"browser,omitempty"`
	Platform   string       `json:"platform,omitempty"`
	Mobile     bool         `json:"mobile"`
	Outcome    VisitOutcome `json:"outcome"`
	Amount     int64        `json:"amount"`
	OccurredAt time.Time    `json:"occurred_at"`
}
