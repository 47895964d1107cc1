package blob

import (
	"context"

	"go.uber.org/fx"

	"github.com/polkiloo/folioorder/internal/config"
)

// Module exposes the attachment byte store to the fx graph.
var Module = fx.Provide(newStore)

type storeParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
}

func newStore(p storeParams) (Store, error) {
	return NewFromConfig(p.Ctx, p.Config)
}
