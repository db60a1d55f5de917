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

package router

import (
	"github.com/l3montree-dev/applibrary/config"
	"github.com/l3montree-dev/applibrary/controllers"
	"github.com/l3montree-dev/applibrary/middlewares"
	"github.com/labstack/echo/v4"
)

type FileRouter struct {
	*echo.Group
}

func NewFileRouter(apiV1Router APIV1Router, fileController *controllers.FileController, cfg config.Config) FileRouter {
	fileRouter := apiV1Router.Group.Group("/files", middlewares.RateLimit(cfg.FilesRateLimit))
	fileRouter.POST("/", fileController.Upload)
	fileRouter.DELETE("/", fileController.Delete)
	fileRouter.GET("/signed-url/", fileController.SignedURL)

	return FileRouter{Group: fileRouter}
}
