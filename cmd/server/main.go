package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ogurasousui/codex-employee-dashboard/internal/platform/bootstrap"
	"github.com/ogurasousui/codex-employee-dashboard/internal/platform/config"
	"github.com/ogurasousui/codex-employee-dashboard/internal/platform/server"
)

func main() {
	configPath := flag.String("config", "", "path to config file (defaults to CONFIG_PATH env or assets/local.yaml)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(config.Path(*configPath))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	app, err := bootstrap.New(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to initialize %s storage: %v", cfg.Storage.Driver, err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("failed to close storage: %v", err)
		}
	}()

	if err := app.Employees.Load(ctx); err != nil {
		log.Fatalf("failed to load employees: %v", err)
	}
	log.Printf("loaded %d employees from %s storage (session: %s)", len(app.Employees.AllEmployees()), cfg.Storage.Driver, app.Auth.State())

	grpcServer := server.New(cfg.Server.ListenAddr, cfg.Server.MetricsAddr, app.Employees, app.Auth)

	log.Printf("gRPC server listening on %s", cfg.Server.ListenAddr)

	if err := grpcServer.Run(ctx); err != nil {
		log.Fatalf("server stopped with error: %v", err)
	}
}
