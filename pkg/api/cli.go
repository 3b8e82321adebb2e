package api

import (
	"github.com/rs/zerolog/log"
	"github.com/travigo/stopboard/pkg/api/routes"
	"github.com/travigo/stopboard/pkg/boardcache"
	"github.com/travigo/stopboard/pkg/demo"
	"github.com/travigo/stopboard/pkg/hafas"
	"github.com/travigo/stopboard/pkg/util"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "server",
		Usage: "Serves the departure board API and web shell",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run the departure board server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "listen",
						Value:   ":3000",
						Usage:   "listen target for the web server (PORT overrides the default)",
						EnvVars: []string{"STOPBOARD_LISTEN"},
					},
					&cli.BoolFlag{
						Name:    "demo",
						Usage:   "serve synthetic departures instead of querying HAFAS",
						EnvVars: []string{"STOPBOARD_DEMO", "DEMO"},
					},
					&cli.StringFlag{
						Name:    "public",
						Value:   "./public",
						Usage:   "directory holding the web shell, empty to disable",
						EnvVars: []string{"STOPBOARD_PUBLIC_DIR"},
					},
					&cli.StringFlag{
						Name:    "upstream-config",
						Usage:   "YAML file overriding the default upstream profile",
						EnvVars: []string{"STOPBOARD_UPSTREAM_CONFIG"},
					},
					&cli.DurationFlag{
						Name:    "cache-ttl",
						Value:   boardcache.DefaultTTL,
						Usage:   "maximum age of a board served without refreshing",
						EnvVars: []string{"STOPBOARD_CACHE_TTL"},
					},
					&cli.BoolFlag{
						Name:    "single-flight",
						Usage:   "coalesce concurrent refreshes into a single upstream call",
						EnvVars: []string{"STOPBOARD_SINGLE_FLIGHT"},
					},
				},
				Action: func(c *cli.Context) error {
					listen := c.String("listen")
					if !c.IsSet("listen") {
						listen = util.ListenAddress(util.GetEnvironmentVariables(), listen)
					}

					boards, err := newBoardProvider(c)
					if err != nil {
						return err
					}

					log.Info().
						Str("listen", listen).
						Str("mode", boards.Status()).
						Msg("Departure board server starting")

					return SetupServer(listen, boards, c.String("public"))
				},
			},
		},
	}
}

func newBoardProvider(c *cli.Context) (routes.BoardProvider, error) {
	if c.Bool("demo") {
		log.Info().Msg("DEMO mode active, serving fake data")
		return &demo.Source{}, nil
	}

	profile, err := hafas.LoadProfile(c.String("upstream-config"))
	if err != nil {
		return nil, err
	}

	source, err := hafas.NewSource(profile)
	if err != nil {
		return nil, err
	}

	cache := boardcache.New(source, c.Duration("cache-ttl"))
	cache.SingleFlight = c.Bool("single-flight")

	log.Info().
		Str("endpoint", profile.Endpoint).
		Str("stop", profile.StopLid).
		Str("ttl", cache.TTL.String()).
		Bool("singleflight", cache.SingleFlight).
		Msg("Using HAFAS upstream")

	return cache, nil
}
