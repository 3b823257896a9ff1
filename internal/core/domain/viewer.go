package domain

import (
	"strings"
	"time"
)

// Viewer identifies the visitor behind a request. Deduplication is keyed on
// IP alone; UserAgent is kept for auditing.
type Viewer struct {
	IP        string
	UserAgent string
}

// ViewerKey addresses a single ViewerRecord.
type ViewerKey struct {
	IP         string `json:"ipAddress"`
	CampaignID string `json:"campaignId"`
}

// Compare orders keys by campaign id, then IP, byte-wise. Ledger listings
// use this order on every backend.
func (k ViewerKey) Compare(other ViewerKey) int {
	if n := strings.Compare(k.CampaignID, other.CampaignID); n != 0 {
		return n
	}
	return strings.Compare(k.IP, other.IP)
}

// ViewerRecord is the interaction history of one viewer with one campaign.
// It is created once, on the first visit, and only updated afterwards.
type ViewerRecord struct {
	ViewerKey
	UserAgent   string    `json:"userAgent"`
	FirstSeenAt time.Time `json:"firstSeenAt"`
	LastSeenAt  time.Time `json:"latestClicked"`
	VisitCount  int64     `json:"numberClick"`
}

// NewViewerRecord returns the record written on a viewer's first visit.
func NewViewerRecord(v Viewer, campaignID string, now time.Time) ViewerRecord {
	return ViewerRecord{
		ViewerKey:   ViewerKey{IP: v.IP, CampaignID: campaignID},
		UserAgent:   v.UserAgent,
		FirstSeenAt: now,
		LastSeenAt:  now,
		VisitCount:  1,
	}
}
