package main

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mlowery2/blockpuzzle/internal/httpserver"
	"github.com/mlowery2/blockpuzzle/internal/store"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	db, err := openDB(getEnv("DB_PATH", "./data/app.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	if err := migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	cfg := httpserver.Config{ClearDelay: clearDelayFromEnv()}
	if getEnv("BEST_STORE", "sqlite") == "redis" {
		cfg.Redis = redis.NewClient(&redis.Options{Addr: getEnv("REDIS_ADDR", "localhost:6379")})
		log.Info().Str("addr", cfg.Redis.Options().Addr).Msg("best scores backed by redis")
	}

	sessions := store.NewMemoryStore()
	srv := httpserver.New(sessions, db, cfg)
	port := getEnv("PORT", "5176")
	log.Info().Str("port", port).Msg("starting blockpuzzle server")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// clearDelayFromEnv reads CLEAR_DELAY_MS; 0/unset falls back to the engine
// default.
func clearDelayFromEnv() time.Duration {
	if v := os.Getenv("CLEAR_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Millisecond
		}
	}
	return 0
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
