package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required")
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)",
			c.Database.MinConns, c.Database.MaxConns)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Server.RateLimitRPS < 0 {
		return fmt.Errorf("server.rate_limit_rps must be >= 0 (got %g)", c.Server.RateLimitRPS)
	}
	if c.Server.RateLimitRPS > 0 && c.Server.RateLimitBurst < 1 {
		return fmt.Errorf("server.rate_limit_burst must be >= 1 when rate limiting is on (got %d)", c.Server.RateLimitBurst)
	}

	if err := c.Topics.validate(); err != nil {
		return fmt.Errorf("topics: %w", err)
	}

	return nil
}

func (t *TopicsConfig) validate() error {
	if t.MaxPageSize < 1 {
		return fmt.Errorf("max_page_size must be >= 1 (got %d)", t.MaxPageSize)
	}
	if t.DefaultPageSize < 1 || t.DefaultPageSize > t.MaxPageSize {
		return fmt.Errorf("default_page_size must be in 1..%d (got %d)", t.MaxPageSize, t.DefaultPageSize)
	}
	if t.HardDeleteRetentionDays < 0 {
		return fmt.Errorf("hard_delete_retention_days must be >= 0 (got %d)", t.HardDeleteRetentionDays)
	}
	return nil
}
