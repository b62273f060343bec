package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/askorupa/adbot/internal/commander"
	"github.com/askorupa/adbot/internal/config"
	"github.com/askorupa/adbot/internal/controller"
	"github.com/askorupa/adbot/internal/logger"
	"github.com/askorupa/adbot/internal/observe"
	"github.com/askorupa/adbot/internal/persist"
	"github.com/askorupa/adbot/internal/twitch"
	"github.com/askorupa/adbot/pkg/tower"
)

func main() {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Config loading failed")
	}
	log.Info().Str("frontend", cfg.Frontend).Str("gameConfig", cfg.GameConfigPath).
		Msg("Config loaded")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	shutdownObserve, err := observe.InitProvider(ctx, observe.ProviderConfig{ServiceName: "adbot"})
	if err != nil {
		log.Fatal().Err(err).Msg("Metrics provider initialization failed")
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := shutdownObserve(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Metrics provider shutdown error")
		}
	}()
	metrics := observe.DefaultMetrics()

	gameCfg, err := tower.LoadConfig(cfg.GameConfigPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Game config loading failed")
	}

	store, err := persist.NewFileStore(cfg.StateDir, metrics)
	if err != nil {
		log.Fatal().Err(err).Msg("Snapshot store initialization failed")
	}
	defer store.Close()

	ctrl := controller.New(gameCfg, store, metrics)
	defer ctrl.Stop()

	machines, err := persist.LoadAll(cfg.StateDir, gameCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Snapshot scan failed")
	}
	ctrl.LoadPlayers(machines)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return runMetricsServer(groupCtx, cfg.MetricsAddr)
	})

	remote := commander.NewRemote(ctrl, cfg.ControlAddr)
	group.Go(func() error {
		return remote.Run(groupCtx)
	})

	switch cfg.Frontend {
	case config.FrontendTwitch:
		bot := twitch.NewBot(cfg.Twitch, ctrl, twitch.NewTokenSource(groupCtx, cfg.Twitch))
		ctrl.SetResponseEventHandler(bot.SendResponse)
		group.Go(func() error {
			return bot.Run(groupCtx)
		})
	case config.FrontendLocal:
		local := commander.NewLocal(ctrl, os.Stdin, os.Stdout)
		ctrl.SetResponseEventHandler(local.SendResponse)
		group.Go(func() error {
			defer cancel()
			return local.Run(groupCtx)
		})
	}

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("Frontend error")
	}
	log.Info().Msg("Shutting down")
}

// runMetricsServer serves the Prometheus scrape endpoint until the context
// is canceled.
func runMetricsServer(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		srv.Shutdown(shutdownCtx)
	}()
	log.Info().Str("addr", addr).Msg("Metrics server listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
