package bank

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/saulo-duarte/chronos-quiz/internal/config"
	"github.com/saulo-duarte/chronos-quiz/internal/quiz"
	"github.com/sirupsen/logrus"
)

var (
	ErrEmptyDocument   = errors.New("question bank has no questions")
	ErrUnknownSource   = errors.New("unknown question bank source")
	ErrMissingLocation = errors.New("question bank location not configured")
)

// Source loads a complete question bank.
type Source interface {
	Load(ctx context.Context) (*quiz.Bank, error)
}

// Decode parses a question-bank document.
func Decode(r io.Reader) (*quiz.Bank, error) {
	var b quiz.Bank
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return nil, fmt.Errorf("decode question bank: %w", err)
	}
	if len(b.FullSeries) == 0 && len(b.Weeks) == 0 {
		return nil, ErrEmptyDocument
	}
	return &b, nil
}

// Open picks the source named in settings. repo is only used for "db".
func Open(s config.Settings, repo Repository) (Source, error) {
	switch s.BankSource {
	case "", "file":
		if s.BankPath == "" {
			return nil, ErrMissingLocation
		}
		return &FileSource{Path: s.BankPath}, nil
	case "url":
		if s.BankURL == "" {
			return nil, ErrMissingLocation
		}
		return &URLSource{URL: s.BankURL}, nil
	case "db":
		if repo == nil {
			return nil, fmt.Errorf("%w: db source without repository", ErrMissingLocation)
		}
		return &DBSource{Repo: repo}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, s.BankSource)
	}
}

// LoadAndValidate loads the bank and logs every validation warning.
func LoadAndValidate(ctx context.Context, src Source) (*quiz.Bank, error) {
	log := config.WithContext(ctx)

	b, err := src.Load(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load question bank")
		return nil, err
	}

	for _, w := range Validate(b) {
		log.WithField("where", w.Where).Warn(w.Message)
	}

	log.WithFields(logrus.Fields{
		"full_series": len(b.FullSeries),
		"weeks":       len(b.Weeks),
	}).Info("Question bank loaded")
	return b, nil
}
