package config

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}
	if c.Database.StatementTimeout < 0 {
		return fmt.Errorf("database.statement_timeout must be >= 0 (got %s)", c.Database.StatementTimeout)
	}

	if err := c.Reconcile.validate(); err != nil {
		return fmt.Errorf("reconcile: %w", err)
	}

	if err := c.Classifier.validate(); err != nil {
		return fmt.Errorf("classifier: %w", err)
	}

	return nil
}

func (r *ReconcileConfig) validate() error {
	if r.GlobalCap <= 0 {
		return fmt.Errorf("global_cap must be > 0 (got %d)", r.GlobalCap)
	}
	if r.PerUserCap <= 0 {
		return fmt.Errorf("per_user_cap must be > 0 (got %d)", r.PerUserCap)
	}
	if r.PerUserCap > r.GlobalCap {
		return fmt.Errorf("per_user_cap (%d) must not exceed global_cap (%d)", r.PerUserCap, r.GlobalCap)
	}
	if r.TripCatalogLimit <= 0 {
		return fmt.Errorf("trip_catalog_limit must be > 0 (got %d)", r.TripCatalogLimit)
	}
	if r.MaxParallelBuckets <= 0 {
		return fmt.Errorf("max_parallel_buckets must be > 0 (got %d)", r.MaxParallelBuckets)
	}
	if r.LeaseTTL <= 0 {
		return fmt.Errorf("lease_ttl must be > 0 (got %s)", r.LeaseTTL)
	}
	if r.StaleProcessingAfter < 0 {
		return fmt.Errorf("stale_processing_after must be >= 0 (got %s)", r.StaleProcessingAfter)
	}
	if _, err := cron.ParseStandard(r.Schedule); err != nil {
		return fmt.Errorf("schedule %q: %w", r.Schedule, err)
	}
	if _, err := time.LoadLocation(r.Timezone); err != nil {
		return fmt.Errorf("timezone %q: %w", r.Timezone, err)
	}
	return nil
}

func (c *ClassifierConfig) validate() error {
	switch c.Provider {
	case ProviderAnthropic, ProviderGemini:
	default:
		return fmt.Errorf("unknown provider %q", c.Provider)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", c.Timeout)
	}
	return nil
}
