package bank

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/chronos-quiz/internal/quiz"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	SeriesFull = "full"
	SeriesWeek = "week"
)

type QuestionRow struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Series        string         `gorm:"type:text;not null;index:idx_bank_order" json:"series"`
	WeekIndex     int            `gorm:"not null;default:0;index:idx_bank_order" json:"week_index"`
	WeekName      string         `gorm:"type:text" json:"week_name,omitempty"`
	OrderIndex    int            `gorm:"not null;index:idx_bank_order" json:"order_index"`
	Content       string         `gorm:"type:text;not null" json:"content"`
	Options       datatypes.JSON `gorm:"type:jsonb;not null" json:"options"`
	CorrectAnswer string         `gorm:"type:text;not null" json:"correct_answer"`
	Explanation   *string        `gorm:"type:text" json:"explanation,omitempty"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (QuestionRow) TableName() string { return "bank_questions" }

type Repository interface {
	Migrate(ctx context.Context) error
	ReplaceBank(ctx context.Context, b *quiz.Bank) error
	ListRows(ctx context.Context) ([]*QuestionRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&QuestionRow{})
}

// ReplaceBank swaps the stored bank for b in a single transaction.
func (r *repository) ReplaceBank(ctx context.Context, b *quiz.Bank) error {
	rows, err := toRows(b)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&QuestionRow{}).Error; err != nil {
			return fmt.Errorf("clear bank: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(rows, 200).Error; err != nil {
			return fmt.Errorf("insert bank: %w", err)
		}
		return nil
	})
}

func (r *repository) ListRows(ctx context.Context) ([]*QuestionRow, error) {
	var rows []*QuestionRow
	if err := r.db.WithContext(ctx).
		Order("series ASC, week_index ASC, order_index ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func toRows(b *quiz.Bank) ([]*QuestionRow, error) {
	if b == nil {
		return nil, quiz.ErrNoQuestionBank
	}

	var rows []*QuestionRow
	add := func(series string, week int, weekName string, qs []quiz.Question) error {
		for i, q := range qs {
			opts, err := json.Marshal(q.Options)
			if err != nil {
				return fmt.Errorf("encode options: %w", err)
			}
			row := &QuestionRow{
				ID:            uuid.New(),
				Series:        series,
				WeekIndex:     week,
				WeekName:      weekName,
				OrderIndex:    i,
				Content:       q.Text,
				Options:       datatypes.JSON(opts),
				CorrectAnswer: q.Answer,
			}
			if q.Explanation != "" {
				expl := q.Explanation
				row.Explanation = &expl
			}
			rows = append(rows, row)
		}
		return nil
	}

	if err := add(SeriesFull, 0, "", b.FullSeries); err != nil {
		return nil, err
	}
	for i, w := range b.Weeks {
		if err := add(SeriesWeek, i, w.Name, w.Questions); err != nil {
			return nil, err
		}
	}
	return rows, nil
}

// FromRows rebuilds a bank from rows ordered by series, week and position.
func FromRows(rows []*QuestionRow) (*quiz.Bank, error) {
	b := &quiz.Bank{}
	weeks := map[int]*quiz.Week{}
	maxWeek := -1

	for _, row := range rows {
		var opts []string
		if err := json.Unmarshal(row.Options, &opts); err != nil {
			return nil, fmt.Errorf("decode options of %s: %w", row.ID, err)
		}
		q := quiz.Question{Text: row.Content, Options: opts, Answer: row.CorrectAnswer}
		if row.Explanation != nil {
			q.Explanation = *row.Explanation
		}

		switch row.Series {
		case SeriesFull:
			b.FullSeries = append(b.FullSeries, q)
		case SeriesWeek:
			w, ok := weeks[row.WeekIndex]
			if !ok {
				w = &quiz.Week{Name: row.WeekName}
				weeks[row.WeekIndex] = w
			}
			w.Questions = append(w.Questions, q)
			if row.WeekIndex > maxWeek {
				maxWeek = row.WeekIndex
			}
		}
	}

	for i := 0; i <= maxWeek; i++ {
		if w, ok := weeks[i]; ok {
			b.Weeks = append(b.Weeks, *w)
		} else {
			b.Weeks = append(b.Weeks, quiz.Week{Name: fmt.Sprintf("Week %d", i+1)})
		}
	}

	if len(b.FullSeries) == 0 && len(b.Weeks) == 0 {
		return nil, ErrEmptyDocument
	}
	return b, nil
}

type DBSource struct {
	Repo Repository
}

func (d *DBSource) Load(ctx context.Context) (*quiz.Bank, error) {
	rows, err := d.Repo.ListRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bank rows: %w", err)
	}
	return FromRows(rows)
}
