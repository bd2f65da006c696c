package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := c.Catalog.validate(); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	if c.UI.MenuWidth < 20 {
		return fmt.Errorf("ui: menu_width must be >= 20 (got %d)", c.UI.MenuWidth)
	}
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}

func (s *StorageConfig) validate() error {
	s.Driver = strings.ToLower(strings.TrimSpace(s.Driver))
	switch s.Driver {
	case DriverCSV, DriverSQLite:
	default:
		return fmt.Errorf("driver must be %q or %q (got %q)", DriverCSV, DriverSQLite, s.Driver)
	}
	if strings.TrimSpace(s.Path) == "" {
		return fmt.Errorf("path is required")
	}
	return nil
}

func (c CatalogConfig) validate() error {
	if c.NameMaxLength <= 0 {
		return fmt.Errorf("name_max_length must be > 0 (got %d)", c.NameMaxLength)
	}
	if c.ContinentMaxLength <= 0 {
		return fmt.Errorf("continent_max_length must be > 0 (got %d)", c.ContinentMaxLength)
	}
	if c.SelectionAttempts <= 0 {
		return fmt.Errorf("selection_attempts must be > 0 (got %d)", c.SelectionAttempts)
	}
	return nil
}

func (l LogConfig) validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("level %q is not one of debug, info, warn, error", l.Level)
	}
	switch strings.ToLower(l.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("format %q is not json or text", l.Format)
	}
	return nil
}
