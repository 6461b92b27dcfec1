package main

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/benaskins/runhello/internal/api"
)

func TestProbeHealthy(t *testing.T) {
	srv := api.NewServer(nil)
	if err := srv.Listen("127.0.0.1:0"); err != nil {
		t.Fatalf("listen: %v", err)
	}
	go srv.Serve()
	defer srv.Close()

	t.Setenv("PORT", strconv.Itoa(srv.Addr().(*net.TCPAddr).Port))

	var out bytes.Buffer
	probeCmd.SetOut(&out)
	defer probeCmd.SetOut(nil)

	probeCmd.SetContext(context.Background())
	if err := runProbe(probeCmd, nil); err != nil {
		t.Fatalf("probe: %v", err)
	}
	if strings.TrimSpace(out.String()) != "OK" {
		t.Errorf("output = %q, want OK", out.String())
	}
}

func TestProbeUnhealthy(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	srv := &http.Server{Handler: http.NotFoundHandler()}
	go srv.Serve(ln)
	defer srv.Close()

	t.Setenv("PORT", strconv.Itoa(ln.Addr().(*net.TCPAddr).Port))

	probeCmd.SetContext(context.Background())
	if err := runProbe(probeCmd, nil); err == nil {
		t.Error("expected probe to fail against a 404 endpoint")
	}
}

func TestServeBindFailure(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()

	t.Setenv("PORT", strconv.Itoa(ln.Addr().(*net.TCPAddr).Port))

	if err := runServe(rootCmd, nil); err == nil {
		t.Fatal("expected bind failure to be returned")
	}
}

func TestRootRejectsArgs(t *testing.T) {
	if err := rootCmd.Args(rootCmd, []string{"extra"}); err == nil {
		t.Error("expected positional arguments to be rejected")
	}
}
