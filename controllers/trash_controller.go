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
	"fmt"
	"net/http"
	"strconv"

	"github.com/l3montree-dev/applibrary/database/models"
	"github.com/l3montree-dev/applibrary/dtos"
	"github.com/l3montree-dev/applibrary/shared"
	"github.com/l3montree-dev/applibrary/transformer"
	"github.com/labstack/echo/v4"
)

type TrashController struct {
	trashService shared.TrashService
}

func NewTrashController(trashService shared.TrashService) *TrashController {
	return &TrashController{trashService: trashService}
}

func (h *TrashController) ListApps(ctx shared.Context) error {
	apps, err := h.trashService.ListDeletedApps(ctx.Request().Context())
	if err != nil {
		return toHTTPError(err, "could not list deleted apps")
	}
	return ctx.JSON(http.StatusOK, transformer.AppModelsToDTOs(apps))
}

func (h *TrashController) ListVersions(ctx shared.Context) error {
	versions, err := h.trashService.ListDeletedVersions(ctx.Request().Context())
	if err != nil {
		return toHTTPError(err, "could not list deleted versions")
	}
	return ctx.JSON(http.StatusOK, transformer.DeletedAppVersionsToDTOs(versions))
}

// @Summary Purge every app and version in the trash
// @Success 200 {object} dtos.SuccessResponse
// @Router /trash/apps [delete]
func (h *TrashController) Empty(ctx shared.Context) error {
	if _, err := h.trashService.EmptyTrash(ctx.Request().Context()); err != nil {
		return toHTTPError(err, "could not empty trash")
	}
	return ctx.JSON(http.StatusOK, dtos.SuccessResponse{Success: true})
}

func (h *TrashController) PurgeVersion(ctx shared.Context) error {
	if err := h.trashService.PurgeVersion(ctx.Request().Context(), shared.GetParam(ctx, "versionID")); err != nil {
		return toHTTPError(err, "could not purge version")
	}
	return ctx.JSON(http.StatusOK, dtos.SuccessResponse{Success: true})
}

// @Summary Purge everything which is in the trash for longer than the retention period
// @Success 200 {object} dtos.CleanupResponse
// @Router /trash/cleanup [post]
func (h *TrashController) Cleanup(ctx shared.Context) error {
	retentionDays := h.trashService.RetentionDays()
	run, err := h.trashService.Cleanup(ctx.Request().Context(), models.CleanupTriggerManual)
	if err != nil {
		return toHTTPError(err, "could not clean up trash")
	}
	return ctx.JSON(http.StatusOK, dtos.CleanupResponse{
		Success:       true,
		Message:       fmt.Sprintf("removed items deleted more than %d days ago", retentionDays),
		RetentionDays: retentionDays,
		Run:           run,
	})
}

func (h *TrashController) ListCleanupRuns(ctx shared.Context) error {
	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive number")
		}
		limit = parsed
	}

	runs, err := h.trashService.ListCleanupRuns(ctx.Request().Context(), limit)
	if err != nil {
		return toHTTPError(err, "could not list cleanup runs")
	}
	return ctx.JSON(http.StatusOK, runs)
}
