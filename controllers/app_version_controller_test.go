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

package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/l3montree-dev/applibrary/database/models"
	"github.com/l3montree-dev/applibrary/dtos"
	"github.com/l3montree-dev/applibrary/mocks"
	"github.com/l3montree-dev/applibrary/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	return httpErr.Code
}

func TestCreateVersionHandler(t *testing.T) {
	t.Run("should pass the current flag to the service and answer with 201", func(t *testing.T) {
		ctx, rec := newJSONContext(http.MethodPost, "/versions/", `{"appId":"vlc-1","version":"3.0.21","isCurrent":true,"installCommand":"setup.exe /S"}`)

		service := mocks.NewAppVersionService(t)
		service.On("CreateVersion", mock.Anything, "vlc-1", "3.0.21", mock.MatchedBy(func(f dtos.VersionFields) bool {
			return f.InstallCommand != nil && *f.InstallCommand == "setup.exe /S"
		}), true).Return(models.AppVersion{
			VersionID: "vlc-1_3.0.21",
			Version:   "3.0.21",
			IsCurrent: true,
			App:       models.App{AppID: "vlc-1"},
		}, nil)

		err := NewAppVersionController(service).Create(ctx)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var dto dtos.AppVersionDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
		assert.Equal(t, "vlc-1_3.0.21", dto.VersionID)
		assert.Equal(t, "vlc-1", dto.AppID)
		assert.True(t, dto.IsCurrent)
	})

	t.Run("should reject requests without a version", func(t *testing.T) {
		ctx, _ := newJSONContext(http.MethodPost, "/versions/", `{"appId":"vlc-1"}`)
		service := mocks.NewAppVersionService(t)

		err := NewAppVersionController(service).Create(ctx)
		assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
	})

	t.Run("should map service errors", func(t *testing.T) {
		cases := map[int]error{
			http.StatusNotFound: shared.NewNotFoundError("app not found"),
			http.StatusConflict: shared.NewConflictError("version already exists"),
		}
		for code, serviceErr := range cases {
			ctx, _ := newJSONContext(http.MethodPost, "/versions/", `{"appId":"vlc-1","version":"1"}`)
			service := mocks.NewAppVersionService(t)
			service.On("CreateVersion", mock.Anything, "vlc-1", "1", mock.Anything, false).Return(models.AppVersion{}, serviceErr)

			err := NewAppVersionController(service).Create(ctx)
			assert.Equal(t, code, httpStatus(t, err))
		}
	})
}

func TestUpdateVersionHandler(t *testing.T) {
	t.Run("should forward a missing isCurrent as nil", func(t *testing.T) {
		ctx, rec := newJSONContext(http.MethodPatch, "/versions/vlc-1_3.0.21/", `{"releaseNotes":"bugfixes"}`)
		ctx.SetParamNames("versionID")
		ctx.SetParamValues("vlc-1_3.0.21")

		service := mocks.NewAppVersionService(t)
		service.On("UpdateVersion", mock.Anything, "vlc-1_3.0.21", mock.MatchedBy(func(req dtos.AppVersionPatchRequest) bool {
			return req.IsCurrent == nil && *req.ReleaseNotes == "bugfixes"
		})).Return(models.AppVersion{VersionID: "vlc-1_3.0.21", IsCurrent: true}, nil)

		require.NoError(t, NewAppVersionController(service).Update(ctx))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("should reject an empty version", func(t *testing.T) {
		ctx, _ := newJSONContext(http.MethodPatch, "/versions/x/", `{"version":""}`)
		ctx.SetParamNames("versionID")
		ctx.SetParamValues("x")

		err := NewAppVersionController(mocks.NewAppVersionService(t)).Update(ctx)
		assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
	})
}

func TestListVersionsHandler(t *testing.T) {
	t.Run("should require the app id", func(t *testing.T) {
		ctx, _ := newJSONContext(http.MethodGet, "/versions/", "")
		err := NewAppVersionController(mocks.NewAppVersionService(t)).List(ctx)
		assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
	})

	t.Run("should list the versions of the app", func(t *testing.T) {
		ctx, rec := newJSONContext(http.MethodGet, "/versions/?appId=vlc-1", "")
		service := mocks.NewAppVersionService(t)
		service.On("ListByApp", mock.Anything, "vlc-1").Return([]models.AppVersion{{VersionID: "vlc-1_1"}}, nil)

		require.NoError(t, NewAppVersionController(service).List(ctx))
		var res []dtos.AppVersionDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Len(t, res, 1)
	})
}
