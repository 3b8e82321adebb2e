package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/travigo/stopboard/pkg/api"
	"github.com/travigo/stopboard/pkg/hafas"
	"github.com/urfave/cli/v2"
	_ "go.uber.org/automaxprocs"

	_ "time/tzdata"
)

func main() {
	if os.Getenv("STOPBOARD_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("STOPBOARD_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "stopboard",
		Description: "Live departure board for a single stop, backed by a HAFAS upstream",

		Commands: []*cli.Command{
			api.RegisterCLI(),
			hafas.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
