package bulkops

import (
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		fx.Annotate(
			NewPgxRunner,
			fx.As(new(Runner)),
		),
	),
	fx.Provide(New),
)
