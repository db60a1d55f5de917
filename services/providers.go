package services

import (
	"github.com/l3montree-dev/applibrary/shared"
	"go.uber.org/fx"
)

var ServiceModule = fx.Options(
	fx.Provide(fx.Annotate(NewConfigService, fx.As(new(shared.ConfigService)))),
	fx.Provide(fx.Annotate(NewDatabaseLeaderElector, fx.As(new(shared.LeaderElector)))),
	fx.Provide(fx.Annotate(NewAppService, fx.As(new(shared.AppService)))),
	fx.Provide(fx.Annotate(NewAppVersionService, fx.As(new(shared.AppVersionService)))),
	fx.Provide(fx.Annotate(NewTrashService, fx.As(new(shared.TrashService)))),
)
