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
	"github.com/l3montree-dev/applibrary/database/models"
	"github.com/l3montree-dev/applibrary/dtos"
)

func AppModelsToDTOs(apps []models.App) []dtos.AppDTO {
	appDTOs := make([]dtos.AppDTO, len(apps))
	for i, app := range apps {
		appDTOs[i] = AppModelToDTO(app)
	}
	return appDTOs
}

func AppModelToDTO(app models.App) dtos.AppDTO {
	dto := dtos.AppDTO{
		AppID:       app.AppID,
		Name:        app.Name,
		Publisher:   app.Publisher,
		Description: app.Description,
		Category:    app.Category,
		CreatedAt:   app.CreatedAt,
		UpdatedAt:   app.UpdatedAt,
	}
	if app.DeletedAt.Valid {
		dto.DeletedAt = &app.DeletedAt.Time
	}
	return dto
}

// AppModelToDetailsDTO includes the versions, highest version first.
func AppModelToDetailsDTO(app models.App) dtos.AppDTO {
	dto := AppModelToDTO(app)
	versions := make([]models.AppVersion, len(app.Versions))
	copy(versions, app.Versions)
	SortVersionsDesc(versions)

	dto.Versions = make([]dtos.AppVersionDTO, len(versions))
	for i, v := range versions {
		// the versions were loaded through the app, the back reference might be empty
		v.App = app
		dto.Versions[i] = AppVersionModelToDTO(v)
	}
	return dto
}
