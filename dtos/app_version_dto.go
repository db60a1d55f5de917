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

package dtos

import (
	"time"
)

type AppVersionDTO struct {
	VersionID        string     `json:"versionId"`
	AppID            string     `json:"appId"`
	Version          string     `json:"version"`
	ReleaseNotes     *string    `json:"releaseNotes"`
	DetectionScript  *string    `json:"detectionScript"`
	InstallCommand   *string    `json:"installCommand"`
	UninstallCommand *string    `json:"uninstallCommand"`
	FilePath         *string    `json:"filePath"`
	Description      *string    `json:"description"`
	IsCurrent        bool       `json:"isCurrent"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
	DeletedAt        *time.Time `json:"deletedAt,omitempty"`
}

// DeletedAppVersionDTO is a trashed version enriched with the app it belongs to.
type DeletedAppVersionDTO struct {
	AppVersionDTO
	AppName string `json:"appName"`
}

// VersionFields are the free form attributes of a version.
type VersionFields struct {
	ReleaseNotes     *string `json:"releaseNotes"`
	DetectionScript  *string `json:"detectionScript"`
	InstallCommand   *string `json:"installCommand"`
	UninstallCommand *string `json:"uninstallCommand"`
	FilePath         *string `json:"filePath"`
	Description      *string `json:"description"`
}

// requests
type AppVersionCreateRequest struct {
	VersionFields
	AppID     string `json:"appId" validate:"required"`
	Version   string `json:"version" validate:"required"`
	IsCurrent bool   `json:"isCurrent"`
}

// AppVersionPatchRequest updates the set fields. A nil IsCurrent keeps the current flag as it is.
type AppVersionPatchRequest struct {
	VersionFields
	Version   *string `json:"version" validate:"omitnil,min=1"`
	IsCurrent *bool   `json:"isCurrent"`
}
