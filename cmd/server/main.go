package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/Spok95/krevos/internal/api"
	"github.com/Spok95/krevos/internal/config"
	"github.com/Spok95/krevos/internal/domain/costing"
	"github.com/Spok95/krevos/internal/domain/expenses"
	"github.com/Spok95/krevos/internal/domain/inventory"
	"github.com/Spok95/krevos/internal/domain/menu"
	"github.com/Spok95/krevos/internal/domain/recipes"
	"github.com/Spok95/krevos/internal/domain/reports"
	"github.com/Spok95/krevos/internal/domain/sales"
	"github.com/Spok95/krevos/internal/infra/db"
	httpx "github.com/Spok95/krevos/internal/infra/http"
	"github.com/Spok95/krevos/internal/infra/logger"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

func runMigrations(dsn string, log *slog.Logger) error {
	sqlDB, err := goose.OpenDBWithDriver("postgres", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()
	return goose.Up(sqlDB, "migrations")
}

func main() {
	cfg, err := config.Load("config/example.yaml")
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.App.Env)

	if err := runMigrations(cfg.Postgres.DSN, log); err != nil {
		log.Error("migrations failed", "err", err)
		return
	}
	log.Info("migrations applied")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Error("db connect failed", "err", err)
		return
	}
	defer pool.Close()
	log.Info("db connected")

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Error("bad timezone, using local", "tz", cfg.App.Timezone, "err", err)
		loc = time.Local
	}

	invRepo := inventory.NewRepo(pool)
	menuRepo := menu.NewRepo(pool)
	recipeRepo := recipes.NewRepo(pool)
	saleRepo := sales.NewRepo(pool)
	expenseRepo := expenses.NewRepo(pool)

	engine := costing.New(recipeRepo, invRepo, menuRepo, cfg.Billing.PackagingCost)
	processor := sales.NewProcessor(menuRepo, recipeRepo, saleRepo, loc)
	reporter := reports.New(saleRepo, expenseRepo)

	handler := api.New(api.Deps{
		Inventory: invRepo,
		Menu:      menuRepo,
		Recipes:   recipeRepo,
		Processor: processor,
		Costing:   engine,
		Expenses:  expenseRepo,
		Reports:   reporter,
	}, api.Settings{
		AdminSecret:    cfg.Admin.Secret,
		RestaurantName: cfg.Billing.RestaurantName,
		PackagingCost:  cfg.Billing.PackagingCost,
		StaffFood:      cfg.Billing.StaffFood,
		ManagerSalary:  cfg.Billing.ManagerSalary,
	}, loc, log)

	srv := httpx.New(cfg.HTTP.Addr, cfg.Metrics.Enabled, handler.Routes())
	go func() {
		if err := srv.Start(); err != nil && err.Error() != "http: Server closed" {
			log.Error("http server error", "err", err)
		}
	}()
	log.Info("HTTP server started", "addr", cfg.HTTP.Addr)

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info("graceful shutdown complete")
}
