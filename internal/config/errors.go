package config

import "errors"

// Validation errors returned by [Config.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfig indicates invalid listener settings
	// (for example, a port outside the valid TCP range).
	ErrInvalidServerConfig = errors.New("invalid server configuration")
)
