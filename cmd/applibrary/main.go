// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/applibrary/config"
	"github.com/l3montree-dev/applibrary/controllers"
	"github.com/l3montree-dev/applibrary/daemons"
	"github.com/l3montree-dev/applibrary/database"
	"github.com/l3montree-dev/applibrary/database/repositories"
	"github.com/l3montree-dev/applibrary/middlewares"
	"github.com/l3montree-dev/applibrary/objectstorage"
	"github.com/l3montree-dev/applibrary/router"
	"github.com/l3montree-dev/applibrary/services"
	"github.com/l3montree-dev/applibrary/shared"
	"github.com/l3montree-dev/applibrary/tracing"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

//	@title			app library API
//	@version		v1
//	@description	admin API of the app library

//	@license.name	AGPL-3
//	@license.url	https://github.com/l3montree-dev/applibrary/blob/main/LICENSE.txt

// @host		localhost:8080
// @BasePath	/api/v1
func main() {
	shared.InitLogger()

	cfg, err := config.Load(nil)
	if err != nil {
		slog.Error("could not load config", "err", err)
		os.Exit(1)
	}

	if cfg.ErrorTrackingDSN != "" {
		initSentry(cfg)

		// Catch panics
		defer func() {
			if err := recover(); err != nil {
				sentry.CurrentHub().Recover(err)
				// Wait for events to be send to server
				sentry.Flush(time.Second * 5)
			}
		}()
	}

	fx.New(
		fx.Supply(cfg),
		fx.Provide(newPgxPool),
		fx.Provide(newDatabase),
		repositories.Module,
		services.ServiceModule,
		controllers.ControllerModule,
		objectstorage.Module,
		tracing.Module,
		middlewares.Module,
		router.RouterModule,
		daemons.Module,

		fx.Invoke(func(server *echo.Echo) {}),
	).Run()
}

func newPgxPool(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, err := database.NewPgxConnPool(cfg.Database)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(pool.Close))
	return pool, nil
}

func newDatabase(pool *pgxpool.Pool, cfg config.Config) (shared.DB, error) {
	db, err := database.NewGormDB(pool)
	if err != nil {
		return nil, err
	}

	if cfg.DisableAutoMigrate {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
		return db, nil
	}

	slog.Info("running database migrations...")
	if err := database.RunMigrationsWithDB(db); err != nil {
		slog.Error("failed to run database migrations", "error", err)
		return nil, err
	}
	return db, nil
}

func initSentry(cfg config.Config) {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.ErrorTrackingDSN,
		Environment: cfg.Environment,
		Release:     config.Version,

		// In debug mode, the debug information is printed to stdout to help you
		// understand what Sentry is doing.
		Debug: cfg.IsDev(),

		AttachStacktrace: true,
		SendDefaultPII:   false,
	})
	if err != nil {
		slog.Error("Failed to init sentry", "err", err)
	}
}
