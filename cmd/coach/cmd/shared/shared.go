package shared

import (
	"context"
	"fmt"
	"os"

	"interview-coach/internal/app"
	"interview-coach/internal/config"
)

var (
	Verbose    bool
	ConfigPath string
)

// LoadConfig reads .env, the config file and the environment, in that order
func LoadConfig() (*config.Config, error) {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	cfg, err := config.Load(ConfigPath)
	if err != nil {
		return nil, err
	}
	if Verbose {
		cfg.Server.Environment = "development"
	}
	return cfg, nil
}

// Core loads the configuration and wires the orchestrator
func Core(ctx context.Context) (*app.Core, func(), error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	return app.InitializeCore(ctx, cfg)
}
