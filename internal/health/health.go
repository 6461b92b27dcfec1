// Package health probes a running instance's health endpoint.
package health

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

const (
	DefaultPath    = "/health"
	DefaultTimeout = 2 * time.Second
)

// Config describes a single health probe.
type Config struct {
	Host    string        // defaults to 127.0.0.1
	Port    int
	Path    string        // defaults to DefaultPath
	Timeout time.Duration // defaults to DefaultTimeout
}

func (c Config) url() string {
	host := c.Host
	if host == "" {
		host = "127.0.0.1"
	}
	path := c.Path
	if path == "" {
		path = DefaultPath
	}
	return fmt.Sprintf("http://%s:%d%s", host, c.Port, path)
}

// SingleCheck runs one HTTP health check and returns nil if the endpoint
// answered with a 2xx status.
func SingleCheck(ctx context.Context, cfg Config) error {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.url(), nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unhealthy status: %d", resp.StatusCode)
	}
	return nil
}
