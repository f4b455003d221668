package catalog

import "github.com/saulo-duarte/chronos-quiz/internal/quiz"

type CatalogContainer struct {
	Service CatalogService
	Handler *Handler
}

func NewCatalogContainer(bank *quiz.Bank, links *Links) *CatalogContainer {
	service := NewService(bank, links)
	return &CatalogContainer{
		Service: service,
		Handler: NewHandler(service),
	}
}
