package app

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/MadeByDW91/gokartpartpicker/internal/config"
	envconfig "github.com/MadeByDW91/gokartpartpicker/internal/config/env"
	"github.com/MadeByDW91/gokartpartpicker/internal/converter"
	buildrepo "github.com/MadeByDW91/gokartpartpicker/internal/repository/build"
	"github.com/MadeByDW91/gokartpartpicker/internal/repository/memory"
	partrepo "github.com/MadeByDW91/gokartpartpicker/internal/repository/part"
	profilerepo "github.com/MadeByDW91/gokartpartpicker/internal/repository/profile"
	buildsvc "github.com/MadeByDW91/gokartpartpicker/internal/service/build"
	partsvc "github.com/MadeByDW91/gokartpartpicker/internal/service/part"
	catproducer "github.com/MadeByDW91/gokartpartpicker/internal/service/producer/catalog"
	profilesvc "github.com/MadeByDW91/gokartpartpicker/internal/service/profile"
	buildhttp "github.com/MadeByDW91/gokartpartpicker/internal/transport/http/build/v1"
	itemhttp "github.com/MadeByDW91/gokartpartpicker/internal/transport/http/builditem/v1"
	"github.com/MadeByDW91/gokartpartpicker/internal/transport/http/middleware"
	parthttp "github.com/MadeByDW91/gokartpartpicker/internal/transport/http/part/v1"
	profilehttp "github.com/MadeByDW91/gokartpartpicker/internal/transport/http/profile/v1"
	"github.com/MadeByDW91/gokartpartpicker/internal/validation"
	"github.com/MadeByDW91/gokartpartpicker/platform/closer"
	"github.com/MadeByDW91/gokartpartpicker/platform/db/migrator"
	"github.com/MadeByDW91/gokartpartpicker/platform/kafka"
	"github.com/MadeByDW91/gokartpartpicker/platform/kafka/producer"
	"github.com/MadeByDW91/gokartpartpicker/platform/logger"
)

// PartRepository is served by both storage drivers.
type PartRepository interface {
	partsvc.PartRepository
	buildsvc.PartReader
}

type BuildService interface {
	buildhttp.BuildService
	itemhttp.BuildItemService
}

type di struct {
	store *memory.Store

	dbPool   *pgxpool.Pool
	migrator *migrator.Migrator

	partRepository    PartRepository
	profileRepository profilesvc.ProfileRepository
	buildRepository   buildsvc.BuildRepository

	syncProducer        sarama.SyncProducer
	catalogProducer     kafka.Producer
	catalogEventsSender partsvc.EventSender

	validator *validation.Validator

	partService    parthttp.PartService
	profileService profilehttp.ProfileService
	buildService   BuildService

	router *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) usePostgres() bool {
	return config.C().Storage.Driver() == envconfig.DriverPostgres
}

func (d *di) MemoryStore(_ context.Context) *memory.Store {
	if d.store == nil {
		d.store = memory.NewStore()
	}

	return d.store
}

func (d *di) DBPool(ctx context.Context) *pgxpool.Pool {
	if d.dbPool == nil {
		pool, err := pgxpool.New(ctx, config.C().Postgres.DSN())
		if err != nil {
			panic(fmt.Sprintf("failed to create pg pool: %v\n", err))
		}

		closer.AddNamed("PGX Pool",
			func(ctx context.Context) error {
				pool.Close()
				return nil
			})

		if err := pool.Ping(ctx); err != nil {
			panic(fmt.Sprintf("failed to ping db: %v\n", err))
		}

		d.dbPool = pool
	}

	return d.dbPool
}

func (d *di) Migrator(ctx context.Context) *migrator.Migrator {
	if d.migrator == nil {
		d.migrator = migrator.NewMigrator(
			stdlib.OpenDBFromPool(d.DBPool(ctx)),
			config.C().Postgres.MigrationDirectory(),
		)

		closer.AddNamed("Migrator",
			func(ctx context.Context) error {
				return d.migrator.Close()
			})
	}

	return d.migrator
}

func (d *di) PartRepository(ctx context.Context) PartRepository {
	if d.partRepository == nil {
		if d.usePostgres() {
			d.partRepository = partrepo.NewPartRepository(d.DBPool(ctx))
		} else {
			d.partRepository = d.MemoryStore(ctx).Parts()
		}
	}

	return d.partRepository
}

func (d *di) ProfileRepository(ctx context.Context) profilesvc.ProfileRepository {
	if d.profileRepository == nil {
		if d.usePostgres() {
			d.profileRepository = profilerepo.NewProfileRepository(d.DBPool(ctx))
		} else {
			d.profileRepository = d.MemoryStore(ctx).Profiles()
		}
	}

	return d.profileRepository
}

func (d *di) BuildRepository(ctx context.Context) buildsvc.BuildRepository {
	if d.buildRepository == nil {
		if d.usePostgres() {
			d.buildRepository = buildrepo.NewBuildRepository(d.DBPool(ctx))
		} else {
			d.buildRepository = d.MemoryStore(ctx).Builds()
		}
	}

	return d.buildRepository
}

func (d *di) SyncProducer(_ context.Context) sarama.SyncProducer {
	if d.syncProducer == nil {
		cfg := config.C()

		p, err := sarama.NewSyncProducer(
			cfg.Kafka.Brokers(),
			cfg.Kafka.CatalogEventsProducerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create sync producer: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka sync producer", func(ctx context.Context) error {
			return p.Close()
		})

		d.syncProducer = p
	}

	return d.syncProducer
}

func (d *di) CatalogProducer(ctx context.Context) kafka.Producer {
	if d.catalogProducer == nil {
		d.catalogProducer = producer.NewProducer(
			d.SyncProducer(ctx),
			config.C().Kafka.CatalogEventsTopic(),
			logger.L(),
		)
	}

	return d.catalogProducer
}

func (d *di) CatalogEventsSender(ctx context.Context) partsvc.EventSender {
	if d.catalogEventsSender == nil {
		if config.C().Kafka.Enabled() {
			d.catalogEventsSender = catproducer.NewCatalogProducer(
				d.CatalogProducer(ctx),
				converter.NewKafkaConverter(),
			)
		} else {
			d.catalogEventsSender = catproducer.NewNopSender()
		}
	}

	return d.catalogEventsSender
}

func (d *di) Validator(_ context.Context) *validation.Validator {
	if d.validator == nil {
		d.validator = validation.New()
	}

	return d.validator
}

func (d *di) PartService(ctx context.Context) parthttp.PartService {
	if d.partService == nil {
		d.partService = partsvc.NewPartService(
			d.PartRepository(ctx),
			d.CatalogEventsSender(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.partService
}

func (d *di) ProfileService(ctx context.Context) profilehttp.ProfileService {
	if d.profileService == nil {
		d.profileService = profilesvc.NewProfileService(
			d.ProfileRepository(ctx),
			d.PartRepository(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.profileService
}

func (d *di) BuildService(ctx context.Context) BuildService {
	if d.buildService == nil {
		d.buildService = buildsvc.NewBuildService(
			d.BuildRepository(ctx),
			d.PartRepository(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.buildService
}

func (d *di) PartHandler(ctx context.Context) func(chi.Router) {
	return parthttp.NewPartHandler(
		d.PartService(ctx),
		d.Validator(ctx),
		middleware.RequireAdmin(config.C().Admin.Token()),
	).Register
}

func (d *di) ProfileHandler(ctx context.Context) func(chi.Router) {
	return profilehttp.NewProfileHandler(d.ProfileService(ctx), d.Validator(ctx)).Register
}

func (d *di) BuildHandler(ctx context.Context) func(chi.Router) {
	return buildhttp.NewBuildHandler(d.BuildService(ctx), d.Validator(ctx)).Register
}

func (d *di) BuildItemHandler(ctx context.Context) func(chi.Router) {
	return itemhttp.NewBuildItemHandler(d.BuildService(ctx), d.Validator(ctx)).Register
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}
