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
	"net/http"
	"strings"

	"github.com/l3montree-dev/applibrary/dtos"
	"github.com/l3montree-dev/applibrary/shared"
	"github.com/l3montree-dev/applibrary/transformer"
	"github.com/labstack/echo/v4"
)

type AppVersionController struct {
	appVersionService shared.AppVersionService
}

func NewAppVersionController(appVersionService shared.AppVersionService) *AppVersionController {
	return &AppVersionController{appVersionService: appVersionService}
}

// @Summary List the versions of an app
// @Param appId query string true "App ID"
// @Success 200 {array} dtos.AppVersionDTO
// @Router /versions [get]
func (h *AppVersionController) List(ctx shared.Context) error {
	appID := strings.TrimSpace(ctx.QueryParam("appId"))
	if appID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "appId is required")
	}

	versions, err := h.appVersionService.ListByApp(ctx.Request().Context(), appID)
	if err != nil {
		return toHTTPError(err, "could not list versions")
	}
	return ctx.JSON(http.StatusOK, transformer.AppVersionModelsToDTOs(versions))
}

// @Summary Create a version, optionally marking it as the current one
// @Param body body dtos.AppVersionCreateRequest true "Request body"
// @Success 201 {object} dtos.AppVersionDTO
// @Router /versions [post]
func (h *AppVersionController) Create(ctx shared.Context) error {
	var req dtos.AppVersionCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	version, err := h.appVersionService.CreateVersion(ctx.Request().Context(), req.AppID, req.Version, req.VersionFields, req.IsCurrent)
	if err != nil {
		return toHTTPError(err, "could not create version")
	}
	return ctx.JSON(http.StatusCreated, transformer.AppVersionModelToDTO(version))
}

// @Summary Update a version
// @Param versionID path string true "Version ID"
// @Param body body dtos.AppVersionPatchRequest true "Request body"
// @Success 200 {object} dtos.AppVersionDTO
// @Router /versions/{versionID} [patch]
func (h *AppVersionController) Update(ctx shared.Context) error {
	var req dtos.AppVersionPatchRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	version, err := h.appVersionService.UpdateVersion(ctx.Request().Context(), shared.GetParam(ctx, "versionID"), req)
	if err != nil {
		return toHTTPError(err, "could not update version")
	}
	return ctx.JSON(http.StatusOK, transformer.AppVersionModelToDTO(version))
}

func (h *AppVersionController) Delete(ctx shared.Context) error {
	if err := h.appVersionService.SoftDelete(ctx.Request().Context(), shared.GetParam(ctx, "versionID")); err != nil {
		return toHTTPError(err, "could not delete version")
	}
	return ctx.JSON(http.StatusOK, dtos.SuccessResponse{Success: true})
}

func (h *AppVersionController) Restore(ctx shared.Context) error {
	version, err := h.appVersionService.Restore(ctx.Request().Context(), shared.GetParam(ctx, "versionID"))
	if err != nil {
		return toHTTPError(err, "could not restore version")
	}
	return ctx.JSON(http.StatusOK, transformer.AppVersionModelToDTO(version))
}
