package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adrelay/internal/core/domain"
	"adrelay/internal/core/port"
)

var _ port.ViewerLedger = (*ViewerLedger)(nil)

// ViewerLedger implements port.ViewerLedger on the viewers table, whose
// primary key (ip_address, campaign_id) enforces one record per viewer.
type ViewerLedger struct {
	pool *pgxpool.Pool
}

func NewViewerLedger(pool *pgxpool.Pool) *ViewerLedger {
	return &ViewerLedger{pool: pool}
}

// CreateIfAbsent relies on ON CONFLICT DO NOTHING: of several concurrent
// inserts for one key, exactly one affects a row.
func (l *ViewerLedger) CreateIfAbsent(ctx context.Context, rec domain.ViewerRecord) (bool, error) {
	tag, err := l.pool.Exec(ctx, `
        INSERT INTO viewers (ip_address, campaign_id, user_agent, first_seen_at, last_seen_at, visit_count)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (ip_address, campaign_id) DO NOTHING`,
		rec.IP, rec.CampaignID, rec.UserAgent, rec.FirstSeenAt, rec.LastSeenAt, rec.VisitCount)
	if err != nil {
		return false, storeErr("insert viewer", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (l *ViewerLedger) IncrementVisit(ctx context.Context, key domain.ViewerKey, at time.Time) error {
	tag, err := l.pool.Exec(ctx, `
        UPDATE viewers
        SET visit_count = visit_count + 1,
            last_seen_at = GREATEST(last_seen_at, $3)
        WHERE ip_address = $1 AND campaign_id = $2`, key.IP, key.CampaignID, at)
	if err != nil {
		return storeErr("increment visit", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrViewerNotFound
	}
	return nil
}

func (l *ViewerLedger) List(ctx context.Context) ([]domain.ViewerRecord, error) {
	rows, err := l.pool.Query(ctx, `
        SELECT ip_address, campaign_id, user_agent, first_seen_at, last_seen_at, visit_count
        FROM viewers
        ORDER BY campaign_id COLLATE "C", ip_address COLLATE "C"`)
	if err != nil {
		return nil, storeErr("list viewers", err)
	}
	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ViewerRecord, error) {
		var r domain.ViewerRecord
		err := row.Scan(&r.IP, &r.CampaignID, &r.UserAgent, &r.FirstSeenAt, &r.LastSeenAt, &r.VisitCount)
		return r, err
	})
	if err != nil {
		return nil, storeErr("scan viewers", err)
	}
	return records, nil
}
