package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tasklist/cmd"
	"tasklist/config"
	"tasklist/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("tasklist failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var configPath, port string
	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.StringVar(&port, "port", "", "Server port (overrides config)")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if port != "" {
		cfg.Server.Port = port
	}

	app, err := cmd.NewBuilder(cfg).Build()
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return app.Run(ctx)
}
