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

package transformer

import (
	"testing"
	"time"

	"github.com/l3montree-dev/applibrary/database/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func version(v string, createdAt time.Time) models.AppVersion {
	av := models.AppVersion{Version: v}
	av.CreatedAt = createdAt
	return av
}

func TestSortVersionsDesc(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	versions := []models.AppVersion{
		version("1.2", base),
		version("nightly", base.Add(time.Hour)),
		version("v1.10.0", base.Add(2*time.Hour)),
		version("1.9.3", base.Add(3*time.Hour)),
		version("2024-preview", base.Add(4*time.Hour)),
		version("2.0.0-rc.1", base.Add(5*time.Hour)),
	}

	SortVersionsDesc(versions)

	got := make([]string, len(versions))
	for i, v := range versions {
		got[i] = v.Version
	}
	assert.Equal(t, []string{"2.0.0-rc.1", "v1.10.0", "1.9.3", "1.2", "2024-preview", "nightly"}, got)
}

func TestAppVersionModelToDTO(t *testing.T) {
	deletedAt := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	v := models.AppVersion{
		VersionID: "vlc-1a2b3c4d_3.0.21",
		Version:   "3.0.21",
		IsCurrent: true,
		App:       models.App{AppID: "vlc-1a2b3c4d"},
	}
	v.DeletedAt = gorm.DeletedAt{Time: deletedAt, Valid: true}

	dto := AppVersionModelToDTO(v)
	assert.Equal(t, "vlc-1a2b3c4d", dto.AppID)
	assert.True(t, dto.IsCurrent)
	assert.Equal(t, &deletedAt, dto.DeletedAt)

	deleted := DeletedAppVersionsToDTOs([]models.DeletedAppVersion{{
		AppVersion:  models.AppVersion{VersionID: "x_1"},
		AppName:     "X",
		AppPublicID: "x",
	}})
	assert.Equal(t, "x", deleted[0].AppID)
	assert.Equal(t, "X", deleted[0].AppName)
	assert.Nil(t, deleted[0].DeletedAt)
}

func TestAppModelToDetailsDTO(t *testing.T) {
	app := models.App{AppID: "git-0000", Name: "Git"}
	app.Versions = []models.AppVersion{{Version: "2.44.0"}, {Version: "2.45.1"}}

	dto := AppModelToDetailsDTO(app)
	assert.Len(t, dto.Versions, 2)
	assert.Equal(t, "2.45.1", dto.Versions[0].Version)
	assert.Equal(t, "git-0000", dto.Versions[0].AppID)
	assert.Nil(t, dto.DeletedAt)
}
