package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/pokerliga/settlement-service/internal/app/background"
	"github.com/pokerliga/settlement-service/internal/app/setup"
	deliveryhttp "github.com/pokerliga/settlement-service/internal/delivery/http"
	"github.com/pokerliga/settlement-service/internal/infrastructure/migrate"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}

	deps, err := setup.InitializeDependencies()
	if err != nil {
		log.Fatalf("failed to init dependencies: %v", err)
	}
	defer deps.Publisher.Close()

	if migrationPath := os.Getenv("MIGRATION_PATH"); migrationPath != "" {
		if err := migrate.RunMigrations(deps.DB, migrationPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	ucs := setup.InitializeUseCases(deps)

	var syncInterval time.Duration
	if raw := deps.Config.RateSync.Interval; raw != "" && raw != "0" {
		syncInterval, err = time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("invalid rate sync interval %q: %v", raw, err)
		}
	}
	tasks := background.NewBackgroundTasks(
		deps.Repositories.SettlementRepo,
		ucs.RateSyncUsecase,
		deps.Publisher,
		syncInterval,
		deps.Logger,
	)
	tasks.StartAll(context.Background())

	router := deliveryhttp.NewRouter(
		ucs.SettlementUsecase,
		ucs.LedgerUsecase,
		ucs.RateUsecase,
		ucs.RateSyncUsecase,
	)

	addr := fmt.Sprintf("%s:%s", deps.Config.HTTPServer.Host, deps.Config.HTTPServer.Port)
	log.Printf("HTTP server started on %s\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
