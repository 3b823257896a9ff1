package configs

import "fmt"

const (
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendMemory   = "memory"
)

// Store selects the backend of each storage port. The memory backend is
// only correct while a single instance serves traffic.
type Store struct {
	Campaigns string `env:"CAMPAIGNS" envDefault:"postgres"`
	Viewers   string `env:"VIEWERS" envDefault:"postgres"`
}

// Validate rejects unknown backends and combinations that cannot work.
func (c Store) Validate() error {
	switch c.Campaigns {
	case BackendPostgres, BackendMemory:
	default:
		return fmt.Errorf("unsupported campaign store %q", c.Campaigns)
	}
	switch c.Viewers {
	case BackendPostgres, BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("unsupported viewer store %q", c.Viewers)
	}
	// viewers.campaign_id references campaigns.id.
	if c.Viewers == BackendPostgres && c.Campaigns != BackendPostgres {
		return fmt.Errorf("viewer store %q requires campaign store %q", c.Viewers, BackendPostgres)
	}
	return nil
}

// NeedsPostgres reports whether any port is backed by PostgreSQL.
func (c Store) NeedsPostgres() bool {
	return c.Campaigns == BackendPostgres || c.Viewers == BackendPostgres
}
