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

package services

import (
	"testing"

	"github.com/l3montree-dev/applibrary/config"
	"github.com/l3montree-dev/applibrary/database/repositories"
	"github.com/l3montree-dev/applibrary/integrationtestutil"
	"gorm.io/gorm"
)

type testEnv struct {
	db                *gorm.DB
	appService        *AppService
	appVersionService *AppVersionService
	trashService      *TrashService
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	db := integrationtestutil.NewSQLiteDB(t)

	appRepository := repositories.NewAppRepository(db)
	appVersionRepository := repositories.NewAppVersionRepository(db)
	cleanupRunRepository := repositories.NewCleanupRunRepository(db)

	cfg := config.Config{Trash: config.TrashConfig{RetentionDays: 30}}

	return testEnv{
		db:                db,
		appService:        NewAppService(appRepository, appVersionRepository),
		appVersionService: NewAppVersionService(appRepository, appVersionRepository),
		trashService:      NewTrashService(appRepository, appVersionRepository, cleanupRunRepository, cfg),
	}
}
