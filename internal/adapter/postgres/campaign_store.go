package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adrelay/internal/core/domain"
	"adrelay/internal/core/port"
)

var _ port.CampaignStore = (*CampaignStore)(nil)

const campaignColumns = `id, name, ad_type, category, bid_value, destination_url, budget_total, budget_remaining, created_at`

// CampaignStore implements port.CampaignStore using pgxpool for PostgreSQL.
// Budget debits are single conditional UPDATE statements, so they stay
// correct when several service instances share one database.
type CampaignStore struct {
	pool *pgxpool.Pool
}

// NewCampaignStore returns a new store instance.
func NewCampaignStore(pool *pgxpool.Pool) *CampaignStore {
	return &CampaignStore{pool: pool}
}

// FindEligible returns campaigns matching the filter, best bid first and
// lowest id first among equal bids. Ids compare byte-wise (COLLATE "C") to
// match the in-process ranking.
func (s *CampaignStore) FindEligible(ctx context.Context, filter domain.AdFilter) ([]domain.Campaign, error) {
	exclude := filter.Exclude
	if exclude == nil {
		// A NULL array would turn the NOT ANY predicate into NULL and drop
		// every row.
		exclude = []string{}
	}
	query := `
        SELECT ` + campaignColumns + `
        FROM campaigns
        WHERE ad_type = $1
          AND category = $2
          AND bid_value >= $3
          AND budget_remaining >= bid_value
          AND NOT (id = ANY($4::text[]))
        ORDER BY bid_value DESC, id COLLATE "C" ASC`
	rows, err := s.pool.Query(ctx, query, string(filter.AdType), string(filter.Category), filter.MinBid, exclude)
	if err != nil {
		return nil, storeErr("find eligible campaigns", err)
	}
	campaigns, err := pgx.CollectRows(rows, scanCampaign)
	if err != nil {
		return nil, storeErr("scan campaigns", err)
	}
	return campaigns, nil
}

// ConditionalDebit subtracts amount only when the remaining budget covers
// it. The predicate and the write are one statement, so the row lock taken
// by UPDATE serializes racing debits and re-evaluates the predicate for
// each of them.
func (s *CampaignStore) ConditionalDebit(ctx context.Context, campaignID string, amount int64) (bool, error) {
	if amount <= 0 {
		return false, fmt.Errorf("debit amount must be positive, got %d", amount)
	}
	tag, err := s.pool.Exec(ctx, `
        UPDATE campaigns
        SET budget_remaining = budget_remaining - $2
        WHERE id = $1 AND budget_remaining >= $2`, campaignID, amount)
	if err != nil {
		return false, storeErr("debit campaign", err)
	}
	return tag.RowsAffected() == 1, nil
}

// Create inserts a campaign. A duplicate id is reported as an invalid
// campaign rather than a storage failure.
func (s *CampaignStore) Create(ctx context.Context, c domain.Campaign) error {
	_, err := s.pool.Exec(ctx, `
        INSERT INTO campaigns (`+campaignColumns+`)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		c.ID, c.Name, string(c.AdType), string(c.Category), c.BidValue,
		c.DestinationURL, c.BudgetTotal, c.BudgetRemaining, c.CreatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: campaign %s already exists", domain.ErrInvalidCampaign, c.ID)
	}
	if err != nil {
		return storeErr("insert campaign", err)
	}
	return nil
}

// List returns every campaign ordered by creation time.
func (s *CampaignStore) List(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns ORDER BY created_at, id COLLATE "C"`)
	if err != nil {
		return nil, storeErr("list campaigns", err)
	}
	campaigns, err := pgx.CollectRows(rows, scanCampaign)
	if err != nil {
		return nil, storeErr("scan campaigns", err)
	}
	return campaigns, nil
}

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var (
		c                domain.Campaign
		adType, category string
	)
	err := row.Scan(
		&c.ID,
		&c.Name,
		&adType,
		&category,
		&c.BidValue,
		&c.DestinationURL,
		&c.BudgetTotal,
		&c.BudgetRemaining,
		&c.CreatedAt,
	)
	c.AdType = domain.AdType(adType)
	c.Category = domain.Category(category)
	return c, err
}
