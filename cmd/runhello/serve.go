package main

import (
	"fmt"
	"log/slog"

	"github.com/benaskins/runhello/internal/api"
	"github.com/benaskins/runhello/internal/config"
	"github.com/spf13/cobra"
)

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	srv := api.NewServer(slog.Default())
	if err := srv.ListenTCP(cfg.Addr()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
