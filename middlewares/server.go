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

package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/l3montree-dev/applibrary/config"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.uber.org/fx"
)

// StartedAt is set once the http server is constructed and reported by the info endpoint.
var StartedAt time.Time

func registerMiddlewares(e *echo.Echo, cfg config.Config) {
	e.Pre(middleware.AddTrailingSlash())
	e.Use(middleware.CORSWithConfig(
		middleware.CORSConfig{
			AllowOrigins:     cfg.CORSAllowOrigins,
			AllowHeaders:     middleware.DefaultCORSConfig.AllowHeaders,
			AllowMethods:     middleware.DefaultCORSConfig.AllowMethods,
			AllowCredentials: !allowsAnyOrigin(cfg.CORSAllowOrigins),
		},
	))

	e.Use(otelecho.Middleware(cfg.Tracing.ServiceName, otelecho.WithSkipper(func(ctx echo.Context) bool {
		return isHealthCheck(ctx)
	})))
	e.Use(logger())
	e.Use(recovermiddleware())

	e.HTTPErrorHandler = errorHandler(e)
}

func allowsAnyOrigin(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}

func errorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		// do the logging straight inside the error handler
		// this keeps controller methods clean
		he := &echo.HTTPError{}
		if !errors.As(err, &he) {
			he = &echo.HTTPError{
				Code:     http.StatusInternalServerError,
				Message:  http.StatusText(http.StatusInternalServerError),
				Internal: err,
			}
		}

		attrs := []any{"method", ctx.Request().Method, "path", ctx.Request().URL.Path, "status", he.Code}
		if he.Internal != nil {
			attrs = append(attrs, "err", he.Internal)
		}
		if he.Code >= http.StatusInternalServerError {
			slog.Error(err.Error(), attrs...)
		} else {
			slog.Warn(err.Error(), attrs...)
		}

		if ctx.Response().Committed {
			return
		}

		var message any
		switch m := he.Message.(type) {
		case string:
			if e.Debug && he.Internal != nil {
				message = echo.Map{"message": m, "error": he.Internal.Error()}
			} else {
				message = echo.Map{"message": m}
			}
		case json.Marshaler:
			// do nothing - this type knows how to format itself to JSON
			message = m
		case error:
			message = echo.Map{"message": m.Error()}
		default:
			message = m
		}

		if ctx.Request().Method == http.MethodHead {
			err = ctx.NoContent(he.Code)
		} else {
			err = ctx.JSON(he.Code, message)
		}
		if err != nil {
			slog.Error("could not send error response", "error", err)
		}
	}
}

// NewServer builds the echo instance and binds it to the fx lifecycle.
// Routers register their routes on it before OnStart fires.
func NewServer(lc fx.Lifecycle, cfg config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.IsDev()
	e.Logger.SetLevel(99)
	registerMiddlewares(e, cfg)

	if cfg.IsDev() {
		AddProfileEndpoints(e)
	}

	StartedAt = time.Now()

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			listener, err := net.Listen("tcp", ":"+cfg.Port)
			if err != nil {
				return err
			}
			e.Listener = listener
			slog.Info("starting http server", "port", cfg.Port)
			go func() {
				if err := e.Start(""); err != nil && !errors.Is(err, http.ErrServerClosed) {
					slog.Error("http server stopped", "err", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})

	return e
}

var Module = fx.Module("server", fx.Provide(NewServer))
