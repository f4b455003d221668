package container

import (
	"context"

	"github.com/saulo-duarte/chronos-quiz/internal/aiquiz"
	"github.com/saulo-duarte/chronos-quiz/internal/auth"
	"github.com/saulo-duarte/chronos-quiz/internal/bank"
	"github.com/saulo-duarte/chronos-quiz/internal/catalog"
	"github.com/saulo-duarte/chronos-quiz/internal/config"
	"github.com/saulo-duarte/chronos-quiz/internal/quiz"
	"github.com/saulo-duarte/chronos-quiz/internal/router"
	"github.com/saulo-duarte/chronos-quiz/internal/session"
)

type Container struct {
	Bank             *quiz.Bank
	CatalogContainer *catalog.CatalogContainer
	SessionContainer *session.SessionContainer
	AIQuizContainer  *aiquiz.AIQuizContainer
	AuthHandler      *auth.Handler
}

func New() *Container {
	config.Init()
	auth.Init()

	ctx := context.Background()
	log := config.WithContext(ctx)

	var repo bank.Repository
	if config.Current.DatabaseDSN != "" {
		if err := config.Connect(ctx, config.Current.DatabaseDSN); err != nil {
			log.WithError(err).Fatal("Failed to connect to DB")
		}
		repo = bank.NewRepository(config.DB)
		if err := repo.Migrate(ctx); err != nil {
			log.WithError(err).Fatal("Failed to migrate question bank")
		}
	}

	src, err := bank.Open(config.Current, repo)
	if err != nil {
		log.WithError(err).Fatal("Invalid question bank configuration")
	}
	b, err := bank.LoadAndValidate(ctx, src)
	if err != nil {
		log.WithError(err).Fatal("Failed to load question bank")
	}

	links, err := catalog.LoadLinks(config.Current.ResourcesPath)
	if err != nil {
		log.WithError(err).Warn("Ignoring resource links")
		links = &catalog.Links{}
	}

	return &Container{
		Bank:             b,
		CatalogContainer: catalog.NewCatalogContainer(b, links),
		SessionContainer: session.NewSessionContainer(b),
		AIQuizContainer:  aiquiz.NewAIQuizContainer(ctx),
		AuthHandler:      auth.NewHandler(),
	}
}

func (c *Container) RouterConfig() router.RouterConfig {
	return router.RouterConfig{
		AuthHandler:    c.AuthHandler,
		CatalogHandler: c.CatalogContainer.Handler,
		SessionHandler: c.SessionContainer.Handler,
		AIQuizHandler:  c.AIQuizContainer.Handler,
	}
}
