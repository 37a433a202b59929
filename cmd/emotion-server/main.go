package main

import (
	"flag"
	"net/http"

	"go.uber.org/zap"

	"github.com/jlafferty/emotion"
	"github.com/jlafferty/emotion/internal/history"
	"github.com/jlafferty/emotion/internal/server"
	"github.com/jlafferty/emotion/pkg/config"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err), zap.String("path", *configPath))
	}

	// Load the trained artifact once; inference cannot proceed without it.
	model, err := emotion.ModelFromDisk(cfg.Model.Dir)
	if err != nil {
		logger.Fatal("Failed to load model", zap.Error(err), zap.String("dir", cfg.Model.Dir))
	}
	logger.Info("Model loaded",
		zap.String("name", model.Name),
		zap.Int("vocabulary_size", model.VocabularySize()))

	store := history.NewMemoryStore(cfg.History.Capacity)
	srv := server.New(logger, emotion.NewPredictor(model), store, server.Options{
		MaxTextLength: cfg.Server.MaxTextLength,
		MaxBatchSize:  cfg.Server.MaxBatchSize,
	})

	logger.Info("Starting server", zap.String("address", cfg.Server.Address))
	if err := http.ListenAndServe(cfg.Server.Address, srv.Handler()); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
