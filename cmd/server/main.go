// Command server boots the inventory service: snapshot-backed product store,
// notification dispatcher, broadcast hub and the HTTP API.
package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/ponabinanth/inventory-service/pkg/api"
	"github.com/ponabinanth/inventory-service/pkg/broadcast"
	"github.com/ponabinanth/inventory-service/pkg/config"
	"github.com/ponabinanth/inventory-service/pkg/httpserver"
	"github.com/ponabinanth/inventory-service/pkg/inventory"
	"github.com/ponabinanth/inventory-service/pkg/logger"
	"github.com/ponabinanth/inventory-service/pkg/notifier"
	"github.com/ponabinanth/inventory-service/pkg/requestid"
	"github.com/ponabinanth/inventory-service/pkg/revision"
	"github.com/ponabinanth/inventory-service/pkg/snapshot"
)

type appConfig struct {
	Env               string        `env:"APP_ENV" envDefault:"development"`
	DataDir           string        `env:"DATA_DIR" envDefault:"./data"`
	EventBufferSize   int           `env:"EVENT_BUFFER_SIZE" envDefault:"16"`
	KeepaliveInterval time.Duration `env:"KEEPALIVE_INTERVAL" envDefault:"20s"`
}

func main() {
	if err := run(); err != nil {
		slog.Error("service stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run() error {
	var (
		appCfg      appConfig
		serverCfg   httpserver.Config
		notifierCfg notifier.Config
	)
	config.MustLoad(&appCfg)
	config.MustLoad(&serverCfg)
	config.MustLoad(&notifierCfg)

	log := logger.New(
		logger.WithEnvironment(appCfg.Env, "inventory-service"),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	log.Info("service starting", slog.String("env", appCfg.Env))

	productSnap, err := snapshot.New[[]inventory.Product](filepath.Join(appCfg.DataDir, "products.json"))
	if err != nil {
		return err
	}
	store, err := inventory.New(productSnap, log)
	if err != nil {
		return err
	}
	log.Info("product store loaded", slog.Int("products", store.Len()))

	historySnap, err := snapshot.New[[]notifier.Record](filepath.Join(appCfg.DataDir, "notifications.json"))
	if err != nil {
		return err
	}
	history, err := notifier.NewHistory(historySnap)
	if err != nil {
		return err
	}
	log.Info("notification history loaded", slog.Int("records", history.Len()))

	hub := broadcast.New(&revision.Clock{},
		broadcast.WithBufferSize(appCfg.EventBufferSize),
		broadcast.WithKeepaliveInterval(appCfg.KeepaliveInterval),
		broadcast.WithLogger(log),
	)
	defer hub.Close()

	senders, err := notifier.SendersFromConfig(notifierCfg, log)
	if err != nil {
		return err
	}
	dispatcher := notifier.NewDispatcher(senders, history, hub, log)

	router := api.NewRouter(api.Deps{
		Store:      store,
		Hub:        hub,
		Dispatcher: dispatcher,
		History:    history,
		Logger:     log,
		HealthChecks: []func(context.Context) error{
			func(context.Context) error { return dirWritable(appCfg.DataDir) },
		},
	})

	return httpserver.New(serverCfg, log).Run(context.Background(), router)
}

// dirWritable verifies the snapshot directory still accepts writes, which is
// the one external dependency this service has.
func dirWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".healthz-*")
	if err != nil {
		return err
	}
	name := f.Name()
	if err := f.Close(); err != nil {
		return err
	}
	return os.Remove(name)
}
