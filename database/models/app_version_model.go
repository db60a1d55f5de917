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

package models

import (
	"strings"

	"github.com/google/uuid"
)

type AppVersion struct {
	SoftDeletableModel

	// VersionID is derived from the public app id and the version string, see DeriveVersionID.
	VersionID string    `json:"versionId" gorm:"type:text;not null"`
	AppID     uuid.UUID `json:"-" gorm:"type:uuid;not null;index"`
	App       App       `json:"-" gorm:"foreignKey:AppID;references:ID"`

	Version          string  `json:"version" gorm:"type:text;not null"`
	ReleaseNotes     *string `json:"releaseNotes" gorm:"type:text"`
	DetectionScript  *string `json:"detectionScript" gorm:"type:text"`
	InstallCommand   *string `json:"installCommand" gorm:"type:text"`
	UninstallCommand *string `json:"uninstallCommand" gorm:"type:text"`
	FilePath         *string `json:"filePath" gorm:"type:text"`
	Description      *string `json:"description" gorm:"type:text"`
	IsCurrent        bool    `json:"isCurrent" gorm:"not null;default:false"`
}

func (AppVersion) TableName() string {
	return "app_versions"
}

// DeriveVersionID builds the version identifier from the public app id and the version string.
// The same pair always yields the same identifier.
func DeriveVersionID(appID string, version string) string {
	return appID + "_" + strings.TrimSpace(version)
}

// DeletedAppVersion is a trashed version together with the app it belongs to.
type DeletedAppVersion struct {
	AppVersion
	AppName     string `json:"appName"`
	AppPublicID string `json:"appPublicId"`
}
