// Package main is the entry point for the qtypes CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/qolzam/qtypes/cmd/qtypes/commands"
	"github.com/qolzam/qtypes/internal/config"
	"github.com/qolzam/qtypes/internal/log"
)

var (
	// Version information (set by build)
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	if err := run(); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return err
	}
	if cfg.Output.NoColor {
		log.SetNoColor(true)
	}

	cmd := commands.NewRootCommand(cfg)
	cmd.Version = fmt.Sprintf("%s (commit: %s)", Version, Commit)
	return cmd.ExecuteContext(context.Background())
}
