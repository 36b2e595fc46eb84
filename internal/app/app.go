package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/report_intake/internal/address"
	"github.com/shenikar/report_intake/internal/attachment"
	"github.com/shenikar/report_intake/internal/config"
	"github.com/shenikar/report_intake/internal/consent"
	"github.com/shenikar/report_intake/internal/draft"
	"github.com/shenikar/report_intake/internal/models"
	"github.com/shenikar/report_intake/internal/repository"
	"github.com/shenikar/report_intake/internal/service"
	"github.com/shenikar/report_intake/internal/station"
	"github.com/shenikar/report_intake/internal/submission"
	"github.com/shenikar/report_intake/internal/validation"
	"github.com/shenikar/report_intake/internal/webhook"
	"github.com/shenikar/report_intake/pkg/postgres"
	redisclient "github.com/shenikar/report_intake/pkg/redis"
)

// MigrationsSource - каталог миграций черновиков
const MigrationsSource = "file://migrations"

// App - собранные зависимости шлюза приема заявлений
type App struct {
	Config      *config.Config
	Logger      *logrus.Logger
	Redis       *redis.Client
	DB          *pgxpool.Pool
	Drafts      draft.Repository
	Attachments *attachment.LocalStore
	Intake      service.IntakeService
	Worker      *webhook.WebhookWorker
}

// runMigrations применяет миграции таблицы черновиков
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(MigrationsSource, migrationURL)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// New подключает хранилища и собирает сервис приема заявлений
func New(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*App, error) {
	a := &App{Config: cfg, Logger: log}

	// Redis нужен всегда: очередь событий отправки живет в нем
	rdb, err := redisclient.NewRedisClient(ctx, redisclient.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return nil, err
	}
	a.Redis = rdb
	log.Info("Successfully connected to Redis")

	if err := a.openDrafts(ctx); err != nil {
		a.Close()
		return nil, err
	}

	a.Attachments, err = attachment.NewLocalStore(cfg.AttachmentDir)
	if err != nil {
		a.Close()
		return nil, err
	}

	var addresses models.AddressDirectory
	if cfg.AddressDirectoryFile != "" {
		dir, err := address.LoadFile(cfg.AddressDirectoryFile)
		if err != nil {
			a.Close()
			return nil, err
		}
		addresses = dir
		log.WithField("file", cfg.AddressDirectoryFile).Info("Address directory loaded")
	}

	fallback := [2]float64{cfg.DefaultLongitude, cfg.DefaultLatitude}
	searchClient := station.NewHTTPSearchClient(cfg.ReportAPIURL, cfg.ReportAPIToken, cfg.ReportAPITimeout)

	factory := service.NewSessionFactory(service.SessionDeps{
		Drafts:    a.Drafts,
		KeyPrefix: cfg.DraftKeyPrefix,
		Validator: validation.NewEngine(),
		Resolver:  station.NewResolver(searchClient, fallback, log),
		Consent:   consent.NewGate(consent.DefaultPrompt, log),
		ReportAPI: submission.NewHTTPReportAPI(cfg.ReportAPIURL, cfg.ReportAPIToken, cfg.ReportAPITimeout),
		// вложения читаются и удаляются только внутри ATTACHMENT_DIR
		Opener:      a.Attachments,
		Attachments: a.Attachments,
		Addresses:   addresses,
		Submit: submission.Config{
			MaxAttempts: cfg.SubmitMaxAttempts,
			BaseDelay:   cfg.SubmitBaseDelay,
		},
		Logger: log,
	})

	a.Intake = service.NewIntakeService(factory, webhook.NewRedisEventPublisher(rdb), log)
	a.Worker = webhook.NewWebhookWorker(rdb, log, cfg)
	return a, nil
}

// openDrafts выбирает хранилище черновиков по DRAFT_BACKEND
func (a *App) openDrafts(ctx context.Context) error {
	switch a.Config.DraftBackend {
	case config.DraftBackendPostgres:
		if err := runMigrations(a.Config, a.Logger); err != nil {
			return err
		}
		pool, err := postgres.NewPostgresDB(ctx, a.Config.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		a.DB = pool
		a.Drafts = repository.NewPostgresDraftRepository(pool)
	case config.DraftBackendFile:
		repo, err := repository.NewFileDraftRepository(a.Config.DraftDir)
		if err != nil {
			return err
		}
		a.Drafts = repo
	default:
		a.Drafts = repository.NewRedisDraftRepository(a.Redis, a.Config.DraftTTL)
	}

	a.Logger.WithField("backend", a.Config.DraftBackend).Info("Draft storage ready")
	return nil
}

// DraftStore возвращает хранилище черновика заявителя
func (a *App) DraftStore(reporter string) *draft.Store {
	return draft.NewStore(a.Drafts, draft.SlotFor(a.Config.DraftKeyPrefix, reporter), a.Logger)
}

// Close дожидается записи черновиков и закрывает соединения
func (a *App) Close() {
	if a.Intake != nil {
		a.Intake.Close()
	}
	if a.DB != nil {
		a.DB.Close()
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			a.Logger.WithError(err).Warn("Failed to close Redis client")
		}
	}
}
