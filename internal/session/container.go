package session

import (
	"time"

	"github.com/saulo-duarte/chronos-quiz/internal/quiz"
)

type SessionContainer struct {
	Service SessionService
	Handler *Handler
}

func NewSessionContainer(bank *quiz.Bank) *SessionContainer {
	service := NewService(bank, time.Now)
	return &SessionContainer{
		Service: service,
		Handler: NewHandler(service),
	}
}
