package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/cmlabs-hris/hrms-lite/internal/client"
	"github.com/cmlabs-hris/hrms-lite/internal/config"
	"github.com/cmlabs-hris/hrms-lite/internal/console"
)

func main() {
	cfg, err := config.LoadConsole()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	// stdout belongs to the UI
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: config.SlogLevel(cfg.LogLevel),
	})))

	ctx := context.Background()
	app := console.NewApp(client.New(cfg.APIBaseURL), console.NewBanner(cfg.BannerTTL))

	// a failed initial load is already on the banner; the shell still starts
	_ = app.Initialize(ctx)

	shell := console.NewShell(app, console.TextRenderer{}, os.Stdin, os.Stdout)
	if err := shell.Run(ctx); err != nil {
		slog.Error("Console stopped", "error", err)
		os.Exit(1)
	}
}
