package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"AOSocial/internal/config"
	"AOSocial/internal/format"
	"AOSocial/internal/infrastructure/ao"
	"AOSocial/internal/infrastructure/graphql"
	"AOSocial/internal/infrastructure/scheduler"
	"AOSocial/internal/infrastructure/storage"
	"AOSocial/internal/logging"
	"AOSocial/internal/ports"
	"AOSocial/internal/usecase"
)

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg    config.Config
	logger *slog.Logger
	closer io.Closer

	CU        *ao.CUClient
	Profiles  *usecase.ProfileEditor
	Balances  *usecase.BalanceBoard
	Formatter *format.Formatter
}

// New opens the profile store and builds the network clients and use cases.
func New(ctx context.Context, cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level, cfg.Logging.Format)
	}

	store, closer, err := openStore(ctx, cfg.Storage)
	if err != nil {
		return nil, err
	}

	client := &http.Client{Timeout: cfg.AO.Timeout}
	cu := ao.NewCUClient(cfg.AO.CUURL, client, baseLogger.With("component", "ao.cu"))
	relay := ao.NewRelayClient(cfg.AO.RelayURL, client, baseLogger.With("component", "ao.relay"))
	resolver := graphql.NewResolver(cfg.GraphQL.URL, client, baseLogger.With("component", "graphql"))

	profiles := usecase.NewProfileEditor(usecase.ProfileEditorDeps{
		Store:     store,
		Resolver:  resolver,
		Messenger: relay,
		Logger:    baseLogger.With("component", "profile"),
	})
	balances := usecase.NewBalanceBoard(usecase.BalanceBoardDeps{
		Resolver: resolver,
		Querier:  cu,
		Tokens:   cfg.Tokens,
		Logger:   baseLogger.With("component", "balances"),
	})

	return &Application{
		cfg:       cfg,
		logger:    baseLogger,
		closer:    closer,
		CU:        cu,
		Profiles:  profiles,
		Balances:  balances,
		Formatter: &format.Formatter{Now: time.Now, Location: cfg.Scheduler.Location()},
	}, nil
}

// Owner is the configured wallet address.
func (a *Application) Owner() string {
	return a.cfg.Wallet.Address
}

// Watch refreshes balances on the configured cron expression until ctx is done.
func (a *Application) Watch(ctx context.Context, publish func(usecase.Board)) error {
	if a.Owner() == "" {
		return fmt.Errorf("wallet address is not configured")
	}

	driver := scheduler.NewCronScheduler(a.cfg.Scheduler.CronExpression, a.cfg.Scheduler.Location())
	watcher := usecase.NewBalanceWatcher(driver, a.Balances, a.Owner(), publish, a.logger.With("component", "watcher"))
	if err := watcher.Start(ctx); err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	a.logger.Info("watching balances", "owner", a.Owner(), "cron", a.cfg.Scheduler.CronExpression)

	<-ctx.Done()
	return watcher.Stop(context.WithoutCancel(ctx))
}

// Close releases the profile store.
func (a *Application) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

type closableStore interface {
	ports.ProfileStore
	io.Closer
}

func openStore(ctx context.Context, cfg config.StorageConfig) (ports.ProfileStore, io.Closer, error) {
	var (
		store closableStore
		err   error
	)

	switch cfg.Backend {
	case config.BackendValkey:
		client, dialErr := storage.DialValkey(ctx, cfg.Valkey.Address, cfg.Valkey.Password)
		if dialErr != nil {
			return nil, nil, dialErr
		}
		store = storage.NewValkeyProfileStore(client, cfg.Valkey.Prefix)
	case config.BackendSQLite, "":
		store, err = storage.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}

	return store, store, nil
}
