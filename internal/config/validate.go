package config

import (
	"errors"
	"fmt"

	"retime/internal/charset"
	"retime/internal/timecode"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateRetime(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateHistory(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateRetime() error {
	if c.Retime.DelaySeconds < 0 || c.Retime.DelaySeconds >= timecode.MaxDelaySeconds {
		return fmt.Errorf("retime.delay_seconds must be between 0 and %d", timecode.MaxDelaySeconds-1)
	}
	if _, err := timecode.ParseDirection(c.Retime.Direction); err != nil {
		return fmt.Errorf("retime.direction: %w", err)
	}
	if c.Retime.Workers < 1 || c.Retime.Workers > maxWorkers {
		return fmt.Errorf("retime.workers must be between 1 and %d", maxWorkers)
	}
	if _, err := charset.Lookup(c.Retime.Charset); err != nil {
		return fmt.Errorf("retime.charset: %w", err)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level %q must be one of debug, info, warn, error", c.Logging.Level)
	}
}

func (c *Config) validateHistory() error {
	if c.History.Enabled && c.History.Path == "" {
		return errors.New("history.path must be set when history.enabled is true")
	}
	return nil
}
