package main

import (
	"os"

	"github.com/saulo-duarte/chronos-quiz/internal/config"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "quiz",
		Usage: "practice weekly and full-series multiple-choice quizzes",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bank", Usage: "question bank JSON file", EnvVars: []string{"BANK_PATH"}},
			&cli.StringFlag{Name: "url", Usage: "fetch the question bank from this URL", EnvVars: []string{"BANK_URL"}},
			&cli.StringFlag{Name: "dsn", Usage: "read the question bank from Postgres", EnvVars: []string{"DATABASE_DSN"}},
		},
		Before: func(c *cli.Context) error {
			config.Init()
			config.Logger.SetOutput(os.Stderr)
			return nil
		},
		Commands: []*cli.Command{
			playCommand(),
			weeksCommand(),
			buildCommand(),
			importCommand(),
			generateCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		config.Logger.WithError(err).Error("quiz failed")
		os.Exit(1)
	}
}
