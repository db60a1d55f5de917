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

	"github.com/l3montree-dev/applibrary/dtos"
	"github.com/l3montree-dev/applibrary/shared"
	"github.com/l3montree-dev/applibrary/transformer"
)

type AppController struct {
	appService shared.AppService
}

func NewAppController(appService shared.AppService) *AppController {
	return &AppController{appService: appService}
}

// @Summary List apps
// @Param name query string false "Case-insensitive name fragment or exact app id"
// @Success 200 {array} dtos.AppDTO
// @Router /apps [get]
func (h *AppController) List(ctx shared.Context) error {
	apps, err := h.appService.List(ctx.Request().Context(), ctx.QueryParam("name"))
	if err != nil {
		return toHTTPError(err, "could not list apps")
	}
	return ctx.JSON(http.StatusOK, transformer.AppModelsToDTOs(apps))
}

// @Summary Read an app with its versions
// @Param appID path string true "App ID"
// @Success 200 {object} dtos.AppDTO
// @Router /apps/{appID} [get]
func (h *AppController) Read(ctx shared.Context) error {
	app, err := h.appService.Read(ctx.Request().Context(), shared.GetParam(ctx, "appID"))
	if err != nil {
		return toHTTPError(err, "could not read app")
	}
	return ctx.JSON(http.StatusOK, transformer.AppModelToDetailsDTO(app))
}

// @Summary Create app
// @Param body body dtos.AppCreateRequest true "Request body"
// @Success 201 {object} dtos.AppDTO
// @Router /apps [post]
func (h *AppController) Create(ctx shared.Context) error {
	var req dtos.AppCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	app, err := h.appService.Create(ctx.Request().Context(), req)
	if err != nil {
		return toHTTPError(err, "could not create app")
	}
	return ctx.JSON(http.StatusCreated, transformer.AppModelToDTO(app))
}

func (h *AppController) Update(ctx shared.Context) error {
	var req dtos.AppPatchRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	app, err := h.appService.Update(ctx.Request().Context(), shared.GetParam(ctx, "appID"), req)
	if err != nil {
		return toHTTPError(err, "could not update app")
	}
	return ctx.JSON(http.StatusOK, transformer.AppModelToDTO(app))
}

func (h *AppController) Delete(ctx shared.Context) error {
	if err := h.appService.SoftDelete(ctx.Request().Context(), shared.GetParam(ctx, "appID")); err != nil {
		return toHTTPError(err, "could not delete app")
	}
	return ctx.JSON(http.StatusOK, dtos.SuccessResponse{Success: true})
}

func (h *AppController) Restore(ctx shared.Context) error {
	app, err := h.appService.Restore(ctx.Request().Context(), shared.GetParam(ctx, "appID"))
	if err != nil {
		return toHTTPError(err, "could not restore app")
	}
	return ctx.JSON(http.StatusOK, transformer.AppModelToDTO(app))
}
