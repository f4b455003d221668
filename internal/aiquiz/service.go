package aiquiz

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/saulo-duarte/chronos-quiz/internal/config"
	"github.com/saulo-duarte/chronos-quiz/internal/quiz"
	"github.com/sirupsen/logrus"
)

var (
	ErrMissingTopic        = errors.New("topic is required")
	ErrProviderUnavailable = errors.New("question generator is not configured")
	ErrNoValidQuestions    = errors.New("model returned no usable questions")
)

var letterPrefix = regexp.MustCompile(`^[A-Da-d][\)\.:]\s+`)

type Service interface {
	GenerateQuestions(ctx context.Context, req QuestionRequest) (*QuestionResponse, error)
}

type service struct {
	provider Provider
}

func NewService(provider Provider) Service {
	return &service{provider: provider}
}

func (s *service) GenerateQuestions(ctx context.Context, req QuestionRequest) (*QuestionResponse, error) {
	log := config.WithContext(ctx)

	req.Topic = strings.TrimSpace(req.Topic)
	if req.Topic == "" {
		return nil, ErrMissingTopic
	}
	if s.provider == nil {
		return nil, ErrProviderUnavailable
	}
	req.Count = clampCount(req.Count)

	generated, err := s.provider.SendPrompt(ctx, systemPrompt, BuildUserPrompt(req))
	if err != nil {
		return nil, err
	}

	resp := &QuestionResponse{Questions: make([]quiz.Question, 0, req.Count)}
	for _, g := range generated {
		q, ok := normalize(g)
		if !ok || len(resp.Questions) == req.Count {
			resp.Rejected++
			continue
		}
		resp.Questions = append(resp.Questions, q)
	}

	log.WithFields(logrus.Fields{
		"topic":    req.Topic,
		"accepted": len(resp.Questions),
		"rejected": resp.Rejected,
	}).Info("AI questions generated")

	if len(resp.Questions) == 0 {
		return nil, ErrNoValidQuestions
	}
	return resp, nil
}

// normalize turns a model question into a bank question. The answer must end
// up as the literal text of one option; a bare letter is resolved by position.
func normalize(g Generated) (quiz.Question, bool) {
	q := quiz.Question{
		Text:        strings.TrimSpace(g.Question),
		Explanation: strings.TrimSpace(g.Explanation),
	}
	if q.Text == "" || len(g.Options) < 2 {
		return quiz.Question{}, false
	}

	for _, opt := range g.Options {
		opt = strings.TrimSpace(letterPrefix.ReplaceAllString(strings.TrimSpace(opt), ""))
		if opt == "" {
			return quiz.Question{}, false
		}
		q.Options = append(q.Options, opt)
	}

	answer := strings.TrimSpace(g.Answer)
	if len(answer) == 1 {
		if i := int(strings.ToUpper(answer)[0] - 'A'); i >= 0 && i < len(q.Options) {
			answer = q.Options[i]
		}
	}
	q.Answer = strings.TrimSpace(letterPrefix.ReplaceAllString(answer, ""))

	if q.CorrectIndex() < 0 {
		return quiz.Question{}, false
	}
	return q, true
}
