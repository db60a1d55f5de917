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

	"github.com/l3montree-dev/applibrary/config"
	"github.com/l3montree-dev/applibrary/dtos"
	"github.com/l3montree-dev/applibrary/shared"
	"github.com/labstack/echo/v4"
)

type FileController struct {
	objectStore   shared.ObjectStore
	maxUploadSize int64
}

func NewFileController(objectStore shared.ObjectStore, cfg config.Config) *FileController {
	return &FileController{
		objectStore:   objectStore,
		maxUploadSize: cfg.Storage.MaxUploadSize,
	}
}

// @Summary Upload an installer artifact
// @Param file formData file true "The artifact"
// @Param path formData string false "Object key, defaults to the file name"
// @Success 200 {object} dtos.FileUploadResponse
// @Router /files [post]
func (h *FileController) Upload(ctx shared.Context) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required").WithInternal(err)
	}
	if h.maxUploadSize > 0 && fileHeader.Size > h.maxUploadSize {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("file exceeds the maximum size of %d bytes", h.maxUploadSize))
	}

	path := ctx.FormValue("path")
	if path == "" {
		path = fileHeader.Filename
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not read file").WithInternal(err)
	}
	defer file.Close()

	stored, err := h.objectStore.Upload(ctx.Request().Context(), path, fileHeader.Header.Get(echo.HeaderContentType), file, fileHeader.Size)
	if err != nil {
		return toHTTPError(err, "could not upload file")
	}
	return ctx.JSON(http.StatusOK, dtos.FileUploadResponse{Path: stored})
}

func (h *FileController) Delete(ctx shared.Context) error {
	if err := h.objectStore.Delete(ctx.Request().Context(), ctx.QueryParam("path")); err != nil {
		return toHTTPError(err, "could not delete file")
	}
	return ctx.JSON(http.StatusOK, dtos.SuccessResponse{Success: true})
}

func (h *FileController) SignedURL(ctx shared.Context) error {
	url, expiresAt, err := h.objectStore.SignedURL(ctx.Request().Context(), ctx.QueryParam("path"))
	if err != nil {
		return toHTTPError(err, "could not create signed url")
	}
	return ctx.JSON(http.StatusOK, dtos.SignedURLResponse{URL: url, ExpiresAt: expiresAt})
}
