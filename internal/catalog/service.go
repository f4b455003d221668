package catalog

import (
	"context"

	"github.com/saulo-duarte/chronos-quiz/internal/config"
	"github.com/saulo-duarte/chronos-quiz/internal/quiz"
)

type CatalogService interface {
	List(ctx context.Context) (*Catalog, error)
}

type catalogService struct {
	bank  *quiz.Bank
	links *Links
}

func NewService(bank *quiz.Bank, links *Links) CatalogService {
	return &catalogService{bank: bank, links: links}
}

// List builds the week-selection view. Counts reflect what a weekly session
// actually plays, so long weeks are reported as WeekLength.
func (s *catalogService) List(ctx context.Context) (*Catalog, error) {
	if s.bank == nil {
		config.WithContext(ctx).Error("Catalog requested without a question bank")
		return nil, quiz.ErrNoQuestionBank
	}

	c := &Catalog{
		FullSeriesCount: len(s.bank.FullSeries),
		Weeks:           make([]WeekCard, 0, len(s.bank.Weeks)),
	}
	if s.links != nil {
		c.CourseURL = s.links.Course
	}

	for i, w := range s.bank.Weeks {
		count := len(w.Questions)
		if count > quiz.WeekLength {
			count = quiz.WeekLength
		}
		c.Weeks = append(c.Weeks, WeekCard{
			Index:         i,
			Name:          w.Name,
			QuestionCount: count,
			LearnURL:      s.links.Week(i),
		})
	}
	return c, nil
}
