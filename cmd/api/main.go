package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tacoloco/internal/auth"
	"tacoloco/internal/config"
	"tacoloco/internal/db"
	"tacoloco/internal/logger"
	"tacoloco/internal/menu"
	"tacoloco/internal/order"
	"tacoloco/internal/router"
	"tacoloco/internal/storage"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config_invalid", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("api_stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	// ───────────────────────── MENU STORE ─────────────────────────
	repo, closeRepo, err := openMenuRepository(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeRepo()

	// ───────────────────────── STORAGE ─────────────────────────
	var objects menu.ObjectStore
	if cfg.Storage.Enabled() {
		r2Client, err := storage.NewR2Client(ctx, cfg.Storage)
		if err != nil {
			return err
		}
		objects = r2Client
	}

	// ───────────────────────── SERVICES ─────────────────────────
	menuService := menu.NewService(menu.NewCache(repo), objects, cfg.Storage.SeedKey, log)
	orderService := order.NewService(menuService, log)

	if objects != nil {
		if _, err := menuService.ImportSeed(ctx); err != nil {
			log.Warn("menu_seed_import_failed", "key", cfg.Storage.SeedKey, "error", err)
		}
	}

	// ───────────────────────── HANDLERS ─────────────────────────
	deps := router.Deps{
		Logger:       log,
		AllowOrigins: cfg.CORSAllowedOrigins,
		Orders:       order.NewHandler(orderService, log),
		Menu:         menu.NewHandler(menuService),
		AdminMenu:    menu.NewAdminHandler(menuService),
	}

	if cfg.AdminEnabled() {
		issuer, err := auth.NewTokenIssuer(cfg.Auth.JWTSecret)
		if err != nil {
			return err
		}
		admins := auth.NewInMemoryAdminRepository(auth.Admin{
			Username:     cfg.Auth.AdminUsername,
			PasswordHash: cfg.Auth.AdminPasswordHash,
		})
		deps.Auth = auth.NewHandler(auth.NewService(admins, issuer))
		deps.Tokens = issuer
	} else {
		log.Warn("admin_routes_disabled", "reason", "JWT_SECRET or ADMIN_PASSWORD_HASH not set")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.NewRouter(deps),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// ───────────────────────── START ─────────────────────────
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("api_starting", "addr", srv.Addr, "catalog_backend", cfg.Catalog.Backend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("api_shutting_down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func openMenuRepository(ctx context.Context, cfg *config.Config, log *slog.Logger) (menu.Repository, func(), error) {
	if cfg.Catalog.Backend != config.BackendPostgres {
		return menu.NewInMemoryRepository(menu.DefaultItems()...), func() {}, nil
	}

	pool, err := db.ConnectPostgres(ctx, cfg.Catalog.DatabaseURL, log)
	if err != nil {
		return nil, nil, err
	}

	repo := menu.NewPostgresRepository(pool)
	seeded, err := repo.SeedIfEmpty(ctx, menu.DefaultItems())
	if err != nil {
		pool.Close()
		return nil, nil, err
	}
	if seeded {
		log.Info("menu_default_seeded", "items", len(menu.DefaultItems()))
	}

	return repo, pool.Close, nil
}
