package hafas

import (
	"context"

	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "hafas",
		Usage: "Query the HAFAS upstream directly",
		Subcommands: []*cli.Command{
			{
				Name:  "fetch",
				Usage: "fetch and normalize one departure board, bypassing the cache",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "upstream-config",
						Usage:   "YAML file overriding the default upstream profile",
						EnvVars: []string{"STOPBOARD_UPSTREAM_CONFIG"},
					},
				},
				Action: func(c *cli.Context) error {
					profile, err := LoadProfile(c.String("upstream-config"))
					if err != nil {
						return err
					}

					source, err := NewSource(profile)
					if err != nil {
						return err
					}

					departures, err := source.Departures(context.Background())
					if err != nil {
						return err
					}

					log.Info().
						Str("endpoint", profile.Endpoint).
						Str("stop", profile.StopLid).
						Int("departures", len(departures)).
						Msg("Fetched departure board")
					pretty.Println(departures)

					return nil
				},
			},
		},
	}
}
