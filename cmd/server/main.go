package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/animaldominion/dominion-server-go/internal/catalog"
	"github.com/animaldominion/dominion-server-go/internal/config"
	"github.com/animaldominion/dominion-server-go/internal/game"
	"github.com/animaldominion/dominion-server-go/internal/repository"
	"github.com/animaldominion/dominion-server-go/internal/server"
)

var (
	configPath = flag.String("config", "config/config.yaml", "path to configuration file")
	version    = "dev" // set via ldflags during build
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting dominion server",
		zap.String("version", version),
		zap.String("config", *configPath),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	cat, err := catalog.Load(cfg.Game.CardsPath)
	if err != nil {
		logger.Fatal("failed to load card catalog", zap.Error(err))
	}
	logger.Info("card catalog loaded",
		zap.Int("cards", cat.Len()),
		zap.Int("max_level", cat.MaxLevel()),
	)

	decks, err := catalog.LoadDecks(cfg.Game.DecksPath, cat)
	if err != nil {
		logger.Fatal("failed to load starter decks", zap.Error(err))
	}
	logger.Info("starter decks loaded",
		zap.Int("deck1_size", len(decks.Player1)),
		zap.Int("deck2_size", len(decks.Player2)),
	)

	params := game.Params{
		BiomeName:      cfg.Game.BiomeName,
		CNBase:         cfg.Game.CNBase,
		Lmax:           cfg.Game.Lmax,
		HandSize:       cfg.Game.HandSize,
		ActionsPerTurn: cfg.Game.ActionsPerTurn,
	}
	engine := game.NewEngine(cat, params, logger)
	logger.Info("game engine initialized", zap.String("biome", params.BiomeName))

	if cfg.Database.URL != "" {
		db, dbErr := repository.NewDB(ctx, cfg.Database, logger)
		if dbErr != nil {
			logger.Fatal("failed to connect to database", zap.Error(dbErr))
		}
		defer db.Close()

		stats := db.Stats()
		logger.Info("database connection pool initialized",
			zap.Int32("total_conns", stats.TotalConns()),
			zap.Int32("idle_conns", stats.IdleConns()),
		)

		resultRepo := repository.NewResultRepository(db)
		if schemaErr := resultRepo.EnsureSchema(ctx); schemaErr != nil {
			logger.Fatal("failed to ensure results schema", zap.Error(schemaErr))
		}
		engine.SetMatchRecorder(resultRepo)
		logger.Info("match result recording enabled")
	} else {
		logger.Warn("database url not configured; match recording disabled")
	}

	newRand := func() *rand.Rand {
		seed := cfg.Game.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		return rand.New(rand.NewSource(seed))
	}

	wsServer := server.New(engine, decks, newRand, logger)
	go func() {
		if serveErr := wsServer.Start(cfg.Server.WebSocket); serveErr != nil {
			logger.Error("websocket server error", zap.Error(serveErr))
		}
	}()

	logger.Info("dominion server initialized",
		zap.String("version", version),
		zap.String("websocket_address", cfg.Server.WebSocket.Address),
	)

	sig := <-sigChan
	logger.Info("received shutdown signal", zap.String("signal", sig.String()))
	cancel()
	logger.Info("dominion server stopped")
}

// initLogger initializes the zap logger based on configuration
func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
