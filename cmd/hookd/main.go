package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"hookd/internal/config"
	"hookd/internal/entity"
	"hookd/internal/httpapi"
	"hookd/internal/registry"
)

func main() {
	// Flags with environment variable defaults
	defaultAddr := ":8080"
	if v := os.Getenv("HOOKD_ADDR"); v != "" {
		defaultAddr = v
	}
	addr := flag.String("addr", defaultAddr, "HTTP listen address, e.g. :8080")
	definitionsDir := flag.String("definitions-dir", "", "Directory of entity definition files (*.yaml, *.json)")
	maxEntities := flag.Int("max-entities", 0, "Maximum number of managed entities (0=default)")
	logLevel := flag.String("log-level", "info", "Log level: debug|info|warn|error")
	configPath := flag.String("config", "", "Optional config file (.yaml/.json/.toml); flags override")
	flag.Parse()

	cfg := config.Config{}
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *configPath).Msg("failed to load config")
		}
		cfg = loaded
	}
	if cfg.Addr == "" {
		cfg.Addr = *addr
	}
	if cfg.DefinitionsDir == "" {
		cfg.DefinitionsDir = *definitionsDir
	}
	if cfg.MaxEntities == 0 {
		cfg.MaxEntities = *maxEntities
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = *logLevel
	}

	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger()
	log.Logger = logger
	httpapi.SetLogger(logger)
	if cfg.MaxBodyBytes > 0 {
		httpapi.SetMaxBodyBytes(cfg.MaxBodyBytes)
	}
	httpapi.SetCORSOptions(cfg.CORSEnabled, cfg.CORSAllowedOrigins, cfg.CORSAllowedMethods, cfg.CORSAllowedHeaders)

	reg := entity.NewWithConfig(entity.RegistryConfig{MaxEntities: cfg.MaxEntities})
	if cfg.DefinitionsDir != "" {
		defs, err := registry.LoadDir(cfg.DefinitionsDir)
		if err != nil {
			logger.Fatal().Err(err).Str("dir", cfg.DefinitionsDir).Msg("failed to load definitions")
		}
		if err := registry.Apply(reg, defs); err != nil {
			logger.Fatal().Err(err).Msg("failed to apply definitions")
		}
		logger.Info().Int("entities", len(defs)).Msg("definitions applied")
	}

	mux := httpapi.NewMux(reg)
	srv := &http.Server{Addr: cfg.Addr, Handler: mux}

	go func() {
		logger.Info().Str("addr", cfg.Addr).Msg("hookd listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown (Ctrl+C / SIGTERM)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown error")
	}
}
