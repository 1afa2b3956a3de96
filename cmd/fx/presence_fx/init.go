package presence_fx

import (
	"context"

	"go.uber.org/fx"
	"voyago/internal/presence"
)

var Module = fx.Options(
	fx.Provide(presence.NewHub),
	fx.Invoke(runHub))

func runHub(lc fx.Lifecycle, hub *presence.Hub) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go hub.Run()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			hub.Stop()
			return nil
		},
	})
}
