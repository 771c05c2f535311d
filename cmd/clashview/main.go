package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"clashview/internal/config"
	"clashview/internal/ui"
	"clashview/internal/util/logx"
	"clashview/internal/version"
)

func main() {
	logx.SetLevelFromEnv()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}

	if cfg.ShowVersion {
		fmt.Println("clashview", version.String())
		return
	}

	// Setup cancellation on SIGINT/SIGTERM
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logx.Infof("starting clashview %s: %s", version.String(), cfg.String())
	if err := ui.Run(ctx, cfg); err != nil {
		logx.Errorf("clashview exited with error: %v", err)
		fmt.Fprintln(os.Stderr, "clashview:", err)
		os.Exit(1)
	}
}
