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
	"github.com/l3montree-dev/applibrary/controllers"
	"github.com/labstack/echo/v4"
)

type TrashRouter struct {
	*echo.Group
}

func NewTrashRouter(
	apiV1Router APIV1Router,
	trashController *controllers.TrashController,
	appVersionController *controllers.AppVersionController,
) TrashRouter {
	trashRouter := apiV1Router.Group.Group("/trash")
	trashRouter.GET("/apps/", trashController.ListApps)
	trashRouter.DELETE("/apps/", trashController.Empty)

	trashRouter.GET("/versions/", trashController.ListVersions)
	trashRouter.DELETE("/versions/:versionID/", trashController.PurgeVersion)
	trashRouter.POST("/versions/:versionID/restore/", appVersionController.Restore)

	trashRouter.POST("/cleanup/", trashController.Cleanup)
	trashRouter.GET("/cleanup-runs/", trashController.ListCleanupRuns)

	return TrashRouter{Group: trashRouter}
}
