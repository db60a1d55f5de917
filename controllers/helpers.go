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
	"errors"
	"net/http"

	"github.com/l3montree-dev/applibrary/shared"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// toHTTPError maps the error kinds of the service layer onto status codes.
// Only messages of domain errors reach the client, everything else gets the fallback.
func toHTTPError(err error, fallback string) error {
	switch {
	case errors.Is(err, shared.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, shared.PublicMessage(err, fallback)).WithInternal(err)
	case errors.Is(err, shared.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return echo.NewHTTPError(http.StatusNotFound, shared.PublicMessage(err, "not found")).WithInternal(err)
	case errors.Is(err, shared.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, shared.PublicMessage(err, fallback)).WithInternal(err)
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, fallback).WithInternal(err)
	}
}

func bindAndValidate(ctx shared.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not validate request: "+err.Error())
	}
	return nil
}
