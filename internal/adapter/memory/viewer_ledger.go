package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"adrelay/internal/core/domain"
	"adrelay/internal/core/port"
)

var _ port.ViewerLedger = (*ViewerLedger)(nil)

// ViewerLedger keeps viewer records in a map keyed by (ip, campaign).
type ViewerLedger struct {
	mu   sync.Mutex
	rows map[domain.ViewerKey]domain.ViewerRecord
}

func NewViewerLedger() *ViewerLedger {
	return &ViewerLedger{rows: map[domain.ViewerKey]domain.ViewerRecord{}}
}

func (l *ViewerLedger) CreateIfAbsent(_ context.Context, rec domain.ViewerRecord) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.rows[rec.ViewerKey]; ok {
		return false, nil
	}
	l.rows[rec.ViewerKey] = rec
	return true, nil
}

func (l *ViewerLedger) IncrementVisit(_ context.Context, key domain.ViewerKey, at time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	rec, ok := l.rows[key]
	if !ok {
		return domain.ErrViewerNotFound
	}
	rec.VisitCount++
	if at.After(rec.LastSeenAt) {
		rec.LastSeenAt = at
	}
	l.rows[key] = rec
	return nil
}

func (l *ViewerLedger) List(_ context.Context) ([]domain.ViewerRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]domain.ViewerRecord, 0, len(l.rows))
	for _, rec := range l.rows {
		out = append(out, rec)
	}
	slices.SortFunc(out, func(a, b domain.ViewerRecord) int {
		return a.ViewerKey.Compare(b.ViewerKey)
	})
	return out, nil
}

// Get returns a copy of the record stored under key.
func (l *ViewerLedger) Get(key domain.ViewerKey) (domain.ViewerRecord, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	rec, ok := l.rows[key]
	return rec, ok
}
