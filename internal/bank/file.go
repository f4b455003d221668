package bank

import (
	"context"
	"fmt"
	"os"

	"github.com/saulo-duarte/chronos-quiz/internal/quiz"
)

type FileSource struct {
	Path string
}

func (f *FileSource) Load(_ context.Context) (*quiz.Bank, error) {
	fh, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("open question bank: %w", err)
	}
	defer fh.Close()

	return Decode(fh)
}
