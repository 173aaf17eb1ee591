package main

import (
	"math/rand"
	"time"

	"github.com/ErikWohl/ODE-Project-skribbl-io-Backend/config"
	"github.com/ErikWohl/ODE-Project-skribbl-io-Backend/logger"
	"github.com/ErikWohl/ODE-Project-skribbl-io-Backend/persistence"
	"github.com/ErikWohl/ODE-Project-skribbl-io-Backend/server"
	"github.com/ErikWohl/ODE-Project-skribbl-io-Backend/services"
	"github.com/ErikWohl/ODE-Project-skribbl-io-Backend/words"
)

func main() {
	// Initialize logger
	logger.Init()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.Log.Fatalf("Failed to load configuration: %v", err)
	}

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	// Build the word source from the configured dictionary
	source, err := loadWordSource(cfg, rnd)
	if err != nil {
		logger.Log.Fatalf("Failed to build word source: %v", err)
	}
	logger.Log.Infof("Word source ready with %d distinct words.", source.Len())

	// Initialize Game Server
	gameServer := server.NewGameServer(cfg, source)

	// Start Server
	logger.Log.Infof("Starting game server on %s", cfg.Server.HTTPAddress)
	if err := gameServer.Start(); err != nil {
		logger.Log.Fatalf("Failed to start server: %v", err)
	}
}

func loadWordSource(cfg *config.Config, rnd *rand.Rand) (*words.Source, error) {
	if cfg.Words.Source == "postgres" {
		store, err := openStore(cfg.Database.Postgres)
		if err != nil {
			return nil, err
		}
		logger.Log.Info("Database connection successful.")
		return services.NewWordService(store).LoadSource(cfg.Words.Language, cfg.Game.OfferCount, rnd)
	}

	list := cfg.Words.Static
	if len(list) == 0 {
		list = words.DefaultList
	}
	return words.NewSource(list, cfg.Game.OfferCount, rnd)
}

func openStore(pg config.PostgresConfig) (persistence.Store, error) {
	if pg.Driver == "sql" {
		return persistence.NewPostgreSQL(pg.Host, pg.Port, pg.User, pg.Password, pg.DBName)
	}
	return persistence.NewGormPostgreSQL(pg.Host, pg.Port, pg.User, pg.Password, pg.DBName)
}
