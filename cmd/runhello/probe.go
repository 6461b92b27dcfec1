package main

import (
	"fmt"
	"time"

	"github.com/benaskins/runhello/internal/config"
	"github.com/benaskins/runhello/internal/health"
	"github.com/spf13/cobra"
)

var probeTimeout time.Duration

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Check the local instance's health endpoint",
	Long:  "GET http://127.0.0.1:$PORT/health and exit non-zero unless it answers 2xx. Intended for container HEALTHCHECK.",
	Args:  cobra.NoArgs,
	RunE:  runProbe,
}

func init() {
	probeCmd.Flags().DurationVar(&probeTimeout, "timeout", health.DefaultTimeout, "Maximum time to wait for a response")
	rootCmd.AddCommand(probeCmd)
}

func runProbe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	err = health.SingleCheck(cmd.Context(), health.Config{
		Port:    cfg.Port(),
		Timeout: probeTimeout,
	})
	if err != nil {
		return fmt.Errorf("unhealthy: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "OK")
	return nil
}
