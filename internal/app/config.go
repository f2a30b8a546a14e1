package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ProgramPath string // hcl file or directory of hcl files

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ProgramPath == "" {
		return nil, errors.New("ProgramPath is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
