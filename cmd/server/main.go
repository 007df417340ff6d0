package main

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/rs/zerolog/log"

	_ "github.com/lib/pq"

	"github.com/altx-finance/ledger-engine/cmd/httpserver"
	"github.com/altx-finance/ledger-engine/internal/middleware"
	"github.com/altx-finance/ledger-engine/pkg/configpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.GetLogger(config)

	conn, err := sql.Open(config.DBDriver, config.DBSource)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to db")
	}

	server, err := httpserver.New(conn, logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	ctx, cancel := context.WithCancel(logger.WithContext(context.Background()))
	defer cancel()

	if server.Scheduler != nil {
		go server.Scheduler.Run(ctx)
	}

	err = http.ListenAndServe(config.ServerAddress, server)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
