// Package config loads, normalizes, and validates retime configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. Flags given on the command line take
// precedence over the values loaded here; the CLI applies them after Load.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
