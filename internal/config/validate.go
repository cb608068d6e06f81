package config

import (
	"fmt"
	"slices"
)

// SortFields lists the account columns a listing may be ordered by.
var SortFields = []string{"name", "created_at", "updated_at"}

// Outlines lists the supported listing layouts.
var Outlines = []string{"brief", "long"}

// AccessLevels lists the supported account access levels.
var AccessLevels = []string{"Public", "Private", "Shared"}

// MaxPerPage caps the per-page preference and the system default alike.
const MaxPerPage = 100

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.AutoCompleteRateLimit < 1 {
		return fmt.Errorf("server.auto_complete_rate_limit must be >= 1 (got %d)", c.Server.AutoCompleteRateLimit)
	}

	if c.Session.TTL <= 0 {
		return fmt.Errorf("session.ttl must be > 0 (got %s)", c.Session.TTL)
	}
	if c.Session.CookieName == "" {
		return fmt.Errorf("session.cookie_name must not be empty")
	}

	if err := c.Accounts.validate(); err != nil {
		return fmt.Errorf("accounts: %w", err)
	}

	return nil
}

func (a *AccountsConfig) validate() error {
	if a.PerPage < 1 || a.PerPage > MaxPerPage {
		return fmt.Errorf("per_page must be in 1..%d (got %d)", MaxPerPage, a.PerPage)
	}
	if !slices.Contains(Outlines, a.Outline) {
		return fmt.Errorf("outline must be one of %v (got %q)", Outlines, a.Outline)
	}
	if !slices.Contains(SortFields, a.SortBy) {
		return fmt.Errorf("sort_by must be one of %v (got %q)", SortFields, a.SortBy)
	}
	if !slices.Contains(AccessLevels, a.DefaultAccess) {
		return fmt.Errorf("default_access must be one of %v (got %q)", AccessLevels, a.DefaultAccess)
	}
	if a.AutoCompleteLimit < 1 {
		return fmt.Errorf("auto_complete_limit must be >= 1 (got %d)", a.AutoCompleteLimit)
	}
	if a.HardDeleteRetentionDays < 1 {
		return fmt.Errorf("hard_delete_retention_days must be >= 1 (got %d)", a.HardDeleteRetentionDays)
	}
	return nil
}
