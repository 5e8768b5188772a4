package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/sync/errgroup"

	"github.com/MadeByDW91/gokartpartpicker/internal/config"
	"github.com/MadeByDW91/gokartpartpicker/internal/repository/seed"
	"github.com/MadeByDW91/gokartpartpicker/internal/transport/http/health"
	reqmw "github.com/MadeByDW91/gokartpartpicker/internal/transport/http/middleware"
	"github.com/MadeByDW91/gokartpartpicker/platform/closer"
	"github.com/MadeByDW91/gokartpartpicker/platform/logger"
)

type app struct {
	di     *di
	server *http.Server
}

func New(ctx context.Context) (*app, error) {
	a := &app{}

	if err := a.init(ctx); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *app) Run(ctx context.Context) error { return a.run(ctx) }

func (a *app) init(ctx context.Context) error {
	inits := []func(context.Context) error{
		a.initConfig,
		a.initLogger,
		a.initCloser,
		a.initDI,
		a.initTables,
		a.initSeed,
		a.initServer,
	}

	for _, initFn := range inits {
		if err := initFn(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) initConfig(_ context.Context) error {
	return config.Load()
}

func (a *app) initLogger(_ context.Context) error {
	return logger.Init(
		config.C().Logger.Level(),
		config.C().Logger.AsJSON(),
	)
}

func (a *app) initCloser(_ context.Context) error {
	closer.SetLogger(logger.L())
	return nil
}

func (a *app) initDI(_ context.Context) error {
	a.di = NewDI()
	return nil
}

func (a *app) initTables(ctx context.Context) error {
	if !a.di.usePostgres() {
		logger.Info(ctx, "in-memory storage, migrations skipped")
		return nil
	}

	if err := a.di.Migrator(ctx).Up(); err != nil {
		logger.Error(ctx, "failed to apply migrations", logger.ErrorF(err))
		return err
	}
	return nil
}

func (a *app) initSeed(ctx context.Context) error {
	if !config.C().Storage.SeedOnStart() {
		return nil
	}

	seeded, err := seed.CatalogBootstrap(ctx, a.di.PartRepository(ctx), a.di.BuildRepository(ctx))
	if err != nil {
		logger.Error(ctx, "failed to seed catalog", logger.ErrorF(err))
		return err
	}
	logger.Info(ctx, "catalog seed", logger.Bool("seeded", seeded))

	return nil
}

func (a *app) initServer(ctx context.Context) error {
	cfg := config.C()

	if cfg.Admin.Token() == "" {
		logger.Warn(ctx, "ADMIN_TOKEN is not set, admin endpoints will answer 503")
	}

	r := a.di.Router(ctx)
	r.Use(
		middleware.RequestID,
		reqmw.RequestLogger,
		middleware.Recoverer,
		cors.Handler(cors.Options{
			AllowedOrigins:   []string{cfg.Server.CORSOrigin()},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", reqmw.AdminTokenHeader},
			AllowCredentials: true,
			MaxAge:           300,
		}),
	)

	r.Get("/health", health.HealthCheck)

	parts := a.di.PartHandler(ctx)
	builds := a.di.BuildHandler(ctx)
	r.Route("/parts", parts)
	r.Route("/api/parts", parts)
	r.Route("/builds", builds)
	r.Route("/api/builds", builds)
	r.Route("/api/build-items", a.di.BuildItemHandler(ctx))
	r.Route("/api/compatibility-profiles", a.di.ProfileHandler(ctx))

	a.server = &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           r,
		ReadHeaderTimeout: cfg.Server.ReadTimeout(),
	}

	return nil
}

func (a *app) run(ctx context.Context) error {
	defer gracefulShutdown()

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		logger.Info(egCtx,
			"🚀 partpicker server listening",
			logger.String("address", config.C().Server.Address()),
			logger.String("storage", config.C().Storage.Driver()),
		)
		err := a.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	eg.Go(func() error {
		<-egCtx.Done()
		logger.Info(ctx, "🛑 Server shutdown...")

		//nolint:contextcheck
		sdCtx, cancel := context.WithTimeout(context.Background(), config.C().Server.ShutdownTimeout())
		defer cancel()

		return a.server.Shutdown(sdCtx)
	})

	if err := eg.Wait(); err != nil {
		return err
	}
	return nil
}

//nolint:contextcheck
func gracefulShutdown() {
	ctx, cancel := context.WithTimeout(
		context.Background(), // do not inherit cancellation from ctx
		config.C().Server.ShutdownTimeout(),
	)
	defer cancel()
	defer func() { _ = logger.L().Sync() }()

	err := closer.CloseAll(ctx)
	if err != nil {
		logger.Error(ctx, "❌ Error during server shutdown", logger.ErrorF(err))
		logger.Error(ctx, "❌😵‍💫 Server stopped")
		return
	}
	logger.Info(ctx, "✅ Server stopped")
}
