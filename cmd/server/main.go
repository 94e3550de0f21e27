package main

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"hotpot-server/internal/api"
	"hotpot-server/internal/catalog"
	"hotpot-server/internal/config"
	"hotpot-server/internal/core"
	"hotpot-server/internal/db"
	"hotpot-server/internal/events"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	_ = godotenv.Load()
	cfg := config.Load()

	store, err := db.Open(cfg.StorageDriver, cfg.SQLitePath, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StorageDriver).Msg("storage init failed")
	}

	menu, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatal().Err(err).Msg("catalog init failed")
	}

	registry := core.NewRegistry(store, menu, events.New(cfg.AMQPURL))

	if err := api.Serve(cfg.Addr, registry); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
