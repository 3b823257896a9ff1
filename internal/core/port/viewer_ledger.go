package port

import (
	"context"
	"time"

	"adrelay/internal/core/domain"
)

// ViewerLedger records which viewers have seen which campaigns. Like
// CampaignStore it must stay correct with many concurrent writers.
type ViewerLedger interface {
	// CreateIfAbsent inserts rec unless a record with the same key already
	// exists. Among racing callers for one key exactly one observes
	// created == true.
	CreateIfAbsent(ctx context.Context, rec domain.ViewerRecord) (created bool, err error)
	// IncrementVisit atomically bumps the visit count of an existing record
	// and moves its last-seen time to at. It returns domain.ErrViewerNotFound
	// if the record does not exist.
	IncrementVisit(ctx context.Context, key domain.ViewerKey, at time.Time) error
	// List returns every viewer record.
	List(ctx context.Context) ([]domain.ViewerRecord, error)
}
