package main

import (
	"flag"
	"os"

	"codearea/internal/config"
	"codearea/internal/store/postgres"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	down := flag.Int("down", 0, "roll back this many migrations instead of applying")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.MustLoad()
	if cfg.DB.Driver != config.DriverPostgres {
		log.Fatal().Str("driver", cfg.DB.Driver).Msg("migrations only apply to the postgres store")
	}

	var err error
	if *down > 0 {
		err = postgres.MigrateDown(cfg.DB.DSN, *down)
	} else {
		err = postgres.MigrateUp(cfg.DB.DSN)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
}
