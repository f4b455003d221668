package bank

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/saulo-duarte/chronos-quiz/internal/quiz"
)

// URLSource fetches the static question-bank document once per Load.
type URLSource struct {
	URL    string
	Client *http.Client
}

func (u *URLSource) client() *http.Client {
	if u.Client != nil {
		return u.Client
	}
	return &http.Client{Timeout: 15 * time.Second}
}

func (u *URLSource) Load(ctx context.Context) (*quiz.Bank, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := u.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch question bank: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch question bank: HTTP %d", resp.StatusCode)
	}
	return Decode(resp.Body)
}
