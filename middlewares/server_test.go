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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/l3montree-dev/applibrary/config"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	registerMiddlewares(e, config.Config{CORSAllowOrigins: []string{"*"}})
	return e
}

func TestErrorHandler(t *testing.T) {
	t.Run("should send the message of http errors", func(t *testing.T) {
		e := newTestEcho()
		e.GET("/apps/", func(ctx echo.Context) error {
			return echo.NewHTTPError(http.StatusConflict, "app id already taken").WithInternal(errors.New("duplicate key"))
		})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/apps/", nil))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.JSONEq(t, `{"message":"app id already taken"}`, rec.Body.String())
	})

	t.Run("should hide plain errors behind a 500", func(t *testing.T) {
		e := newTestEcho()
		e.GET("/apps/", func(ctx echo.Context) error {
			return errors.New("pq: connection refused")
		})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/apps/", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "connection refused")
	})

	t.Run("should add the trailing slash before routing", func(t *testing.T) {
		e := newTestEcho()
		e.GET("/apps/", func(ctx echo.Context) error {
			return ctx.NoContent(http.StatusNoContent)
		})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/apps", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestRecoverMiddleware(t *testing.T) {
	e := newTestEcho()
	e.GET("/panic/", func(ctx echo.Context) error {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestRateLimit(t *testing.T) {
	t.Run("should deny requests above the burst", func(t *testing.T) {
		e := newTestEcho()
		e.GET("/files/", func(ctx echo.Context) error {
			return ctx.NoContent(http.StatusNoContent)
		}, RateLimit(1))

		codes := make([]int, 0, 2)
		for range 2 {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/files/", nil))
			codes = append(codes, rec.Code)
		}
		assert.Equal(t, []int{http.StatusNoContent, http.StatusTooManyRequests}, codes)
	})

	t.Run("should be a no-op without a limit", func(t *testing.T) {
		e := newTestEcho()
		e.GET("/files/", func(ctx echo.Context) error {
			return ctx.NoContent(http.StatusNoContent)
		}, RateLimit(0))

		for range 5 {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/files/", nil))
			assert.Equal(t, http.StatusNoContent, rec.Code)
		}
	})
}
