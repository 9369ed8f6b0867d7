package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"designfoli-web/internal/auth"
	"designfoli-web/internal/cli"
	"designfoli-web/internal/config"
	"designfoli-web/internal/designfoli"
	"designfoli-web/internal/supabase"
)

var Version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	var identity auth.Provider
	if cfg.SupabaseEnabled() {
		client, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabasePublishableKey)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		identity = client
	}

	sessionDir := os.Getenv("DESIGNFOLI_HOME")
	if sessionDir == "" {
		sessionDir = auth.DefaultDir()
	}

	root := cli.NewRootCmd(cli.Options{
		Client:          designfoli.NewClient(cfg.APIBaseURL),
		Identity:        identity,
		Sessions:        auth.FileStore{Dir: sessionDir},
		Out:             os.Stdout,
		RefreshInterval: cfg.TokenRefreshInterval,
	}, Version)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
