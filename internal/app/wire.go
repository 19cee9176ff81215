//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"

	"interview-coach/internal/config"
)

// InitializeCore wires the orchestrator and its store for command line use
func InitializeCore(ctx context.Context, cfg *config.Config) (*Core, func(), error) {
	wire.Build(coreSet)
	return nil, nil, nil
}

// InitializeApp wires the HTTP server on top of the core
func InitializeApp(ctx context.Context, cfg *config.Config) (*App, func(), error) {
	wire.Build(coreSet, serverSet)
	return nil, nil, nil
}
