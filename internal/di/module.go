package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/folioorder/internal/app"
	"github.com/polkiloo/folioorder/internal/blob"
	"github.com/polkiloo/folioorder/internal/config"
	"github.com/polkiloo/folioorder/internal/logger"
	"github.com/polkiloo/folioorder/internal/server/http/handlers"
	"github.com/polkiloo/folioorder/internal/server/http/router"
	"github.com/polkiloo/folioorder/internal/storage/postgres"
	"github.com/polkiloo/folioorder/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		postgres.Module,
		blob.Module,
		usecase.Module,
		fx.Provide(func(facade *app.PortfolioFacade) handlers.PortfolioFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
