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
	"slices"
	"strings"

	"github.com/l3montree-dev/applibrary/database/models"
	"github.com/l3montree-dev/applibrary/dtos"
	"golang.org/x/mod/semver"
)

func AppVersionModelsToDTOs(versions []models.AppVersion) []dtos.AppVersionDTO {
	versionDTOs := make([]dtos.AppVersionDTO, len(versions))
	for i, v := range versions {
		versionDTOs[i] = AppVersionModelToDTO(v)
	}
	return versionDTOs
}

func AppVersionModelToDTO(v models.AppVersion) dtos.AppVersionDTO {
	dto := dtos.AppVersionDTO{
		VersionID:        v.VersionID,
		AppID:            v.App.AppID,
		Version:          v.Version,
		ReleaseNotes:     v.ReleaseNotes,
		DetectionScript:  v.DetectionScript,
		InstallCommand:   v.InstallCommand,
		UninstallCommand: v.UninstallCommand,
		FilePath:         v.FilePath,
		Description:      v.Description,
		IsCurrent:        v.IsCurrent,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
	if v.DeletedAt.Valid {
		dto.DeletedAt = &v.DeletedAt.Time
	}
	return dto
}

func DeletedAppVersionsToDTOs(versions []models.DeletedAppVersion) []dtos.DeletedAppVersionDTO {
	versionDTOs := make([]dtos.DeletedAppVersionDTO, len(versions))
	for i, v := range versions {
		dto := AppVersionModelToDTO(v.AppVersion)
		dto.AppID = v.AppPublicID
		versionDTOs[i] = dtos.DeletedAppVersionDTO{
			AppVersionDTO: dto,
			AppName:       v.AppName,
		}
	}
	return versionDTOs
}

// canonicalSemver accepts versions with and without the v prefix.
func canonicalSemver(version string) string {
	version = strings.TrimSpace(version)
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	if !semver.IsValid(version) {
		return ""
	}
	return semver.Canonical(version)
}

// SortVersionsDesc orders semantic versions from highest to lowest. Versions which are not
// semantic versions follow, newest created first.
func SortVersionsDesc(versions []models.AppVersion) {
	slices.SortStableFunc(versions, func(a, b models.AppVersion) int {
		va, vb := canonicalSemver(a.Version), canonicalSemver(b.Version)
		switch {
		case va != "" && vb != "":
			if c := semver.Compare(vb, va); c != 0 {
				return c
			}
		case va != "":
			return -1
		case vb != "":
			return 1
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}
