package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/graceworks/steeple/internal/api"
	"github.com/graceworks/steeple/internal/entropy"
	"github.com/graceworks/steeple/internal/persistence"
)

var (
	serveHost string
	servePort int
	serveNew  bool
)

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to listen on (overrides config)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().BoolVar(&serveNew, "new", false, "Start a fresh game instead of loading the save slot")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  `Load the configured save slot (or start fresh) and serve the simulation over HTTP.`,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveHost != "" {
		cfg.API.Host = serveHost
	}
	if servePort > 0 {
		cfg.API.Port = servePort
	}

	db, err := persistence.Open(cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	newRand := func() *entropy.Rand { return entropy.New(cfg.Game.Seed) }

	game, err := openGame(cfg, db, newRand, serveNew)
	if err != nil {
		return err
	}

	srv := api.NewServer(game, db, cfg.API, cfg.Storage.Slot, newRand)
	srv.Start()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	slog.Info("shutting down")
	if err := db.SaveGame(cfg.Storage.Slot, srv.Game()); err != nil {
		slog.Error("save on shutdown failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
