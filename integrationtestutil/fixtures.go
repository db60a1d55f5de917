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

package integrationtestutil

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/applibrary/database/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func CreateApp(t testing.TB, db *gorm.DB, appID string) models.App {
	t.Helper()
	app := models.App{
		AppID:     appID,
		Name:      "App " + appID,
		Publisher: "l3montree",
	}
	require.NoError(t, db.Create(&app).Error)
	return app
}

func CreateVersion(t testing.TB, db *gorm.DB, app models.App, version string, isCurrent bool) models.AppVersion {
	t.Helper()
	v := models.AppVersion{
		VersionID: models.DeriveVersionID(app.AppID, version),
		AppID:     app.ID,
		Version:   version,
		IsCurrent: isCurrent,
	}
	require.NoError(t, db.Create(&v).Error)
	return v
}

// Trash sets deleted_at of the given row directly, which allows to move rows back in time.
func Trash(t testing.TB, db *gorm.DB, model any, id uuid.UUID, deletedAt time.Time) {
	t.Helper()
	require.NoError(t, db.Unscoped().Model(model).Where("id = ?", id).Update("deleted_at", deletedAt.UTC().Truncate(time.Second)).Error)
}

// CurrentVersions returns the non-deleted current versions of an app.
func CurrentVersions(t testing.TB, db *gorm.DB, appID uuid.UUID) []models.AppVersion {
	t.Helper()
	var versions []models.AppVersion
	require.NoError(t, db.Where("app_id = ? AND is_current = ?", appID, true).Find(&versions).Error)
	return versions
}
