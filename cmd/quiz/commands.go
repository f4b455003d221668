package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/saulo-duarte/chronos-quiz/internal/aiquiz"
	"github.com/saulo-duarte/chronos-quiz/internal/bank"
	"github.com/saulo-duarte/chronos-quiz/internal/catalog"
	quizcli "github.com/saulo-duarte/chronos-quiz/internal/cli"
	"github.com/saulo-duarte/chronos-quiz/internal/config"
	"github.com/saulo-duarte/chronos-quiz/internal/quiz"
	"github.com/urfave/cli/v2"
)

// loadBank resolves the source from the global flags: --dsn when
// BANK_SOURCE=db, then --url, then --bank.
func loadBank(c *cli.Context) (*quiz.Bank, error) {
	s := config.Current
	var repo bank.Repository

	switch {
	case c.String("dsn") != "" && s.BankSource == "db":
		if err := config.Connect(c.Context, c.String("dsn")); err != nil {
			return nil, err
		}
		repo = bank.NewRepository(config.DB)
	case c.String("url") != "":
		s.BankSource = "url"
		s.BankURL = c.String("url")
	default:
		s.BankSource = "file"
		if p := c.String("bank"); p != "" {
			s.BankPath = p
		}
	}

	src, err := bank.Open(s, repo)
	if err != nil {
		return nil, err
	}
	return bank.LoadAndValidate(c.Context, src)
}

func playCommand() *cli.Command {
	return &cli.Command{
		Name:  "play",
		Usage: "run a quiz session in the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "mode", Value: string(quiz.ModeFull), Usage: "full or weekly"},
			&cli.IntFlag{Name: "week", Usage: "week number, starting at 1 (weekly mode)"},
		},
		Action: func(c *cli.Context) error {
			b, err := loadBank(c)
			if err != nil {
				return err
			}

			mode := quiz.Mode(c.String("mode"))
			week := quiz.NoWeek
			if mode == quiz.ModeWeekly {
				if !c.IsSet("week") {
					return errors.New("--week is required in weekly mode")
				}
				week = c.Int("week") - 1
			}

			sess, err := quiz.Start(b, mode, week)
			if err != nil {
				return err
			}

			_, err = quizcli.Run(c.Context, sess, os.Stdin, os.Stdout)
			if errors.Is(err, quizcli.ErrQuit) {
				fmt.Fprintln(os.Stdout, "Bye.")
				return nil
			}
			return err
		},
	}
}

func weeksCommand() *cli.Command {
	return &cli.Command{
		Name:  "weeks",
		Usage: "list the weeks in the question bank",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "resources", Usage: "YAML file with study links", EnvVars: []string{"RESOURCES_PATH"}},
		},
		Action: func(c *cli.Context) error {
			b, err := loadBank(c)
			if err != nil {
				return err
			}
			links, err := catalog.LoadLinks(c.String("resources"))
			if err != nil {
				return err
			}
			cat, err := catalog.NewService(b, links).List(c.Context)
			if err != nil {
				return err
			}
			return quizcli.PrintCatalog(os.Stdout, cat)
		},
	}
}

func buildCommand() *cli.Command {
	return &cli.Command{
		Name:  "build",
		Usage: "group a flat JSON list of questions into a question bank document",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "in", Required: true, Usage: "JSON array of questions"},
			&cli.StringFlag{Name: "out", Value: "quiz_data.json"},
			&cli.IntFlag{Name: "week-length", Value: quiz.WeekLength},
			&cli.IntFlag{Name: "max-weeks", Usage: "0 keeps every full week"},
		},
		Action: func(c *cli.Context) error {
			var questions []quiz.Question
			if err := readJSON(c.String("in"), &questions); err != nil {
				return err
			}

			b := bank.Build(questions, c.Int("week-length"), c.Int("max-weeks"))
			for _, w := range bank.Validate(b) {
				config.Logger.WithField("where", w.Where).Warn(w.Message)
			}
			if err := writeJSON(c.String("out"), b); err != nil {
				return err
			}

			config.Logger.WithField("out", c.String("out")).Infof("Wrote %d questions in %d weeks", len(b.FullSeries), len(b.Weeks))
			return nil
		},
	}
}

func importCommand() *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "replace the question bank stored in Postgres with a JSON document",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "from", Required: true, Usage: "question bank JSON file"},
		},
		Action: func(c *cli.Context) error {
			if err := config.Connect(c.Context, c.String("dsn")); err != nil {
				return err
			}

			b, err := bank.LoadAndValidate(c.Context, &bank.FileSource{Path: c.String("from")})
			if err != nil {
				return err
			}

			repo := bank.NewRepository(config.DB)
			if err := repo.Migrate(c.Context); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			if err := repo.ReplaceBank(c.Context, b); err != nil {
				return err
			}

			config.Logger.Info("Question bank imported")
			return nil
		},
	}
}

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "generate questions with Gemini into a flat JSON list for build",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "topic", Required: true},
			&cli.StringFlag{Name: "difficulty", Value: "medium"},
			&cli.IntFlag{Name: "count", Value: 10},
			&cli.StringFlag{Name: "context", Usage: "extra material for the prompt"},
			&cli.StringFlag{Name: "out", Value: "generated.json"},
		},
		Action: func(c *cli.Context) error {
			provider, err := aiquiz.NewGeminiProvider(c.Context)
			if err != nil {
				return err
			}

			resp, err := aiquiz.NewService(provider).GenerateQuestions(c.Context, aiquiz.QuestionRequest{
				Topic:      c.String("topic"),
				Difficulty: c.String("difficulty"),
				Count:      c.Int("count"),
				Context:    c.String("context"),
			})
			if err != nil {
				return err
			}

			if resp.Rejected > 0 {
				config.Logger.Warnf("Dropped %d unusable questions", resp.Rejected)
			}
			return writeJSON(c.String("out"), resp.Questions)
		},
	}
}

func readJSON(path string, v interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
