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

type App struct {
	SoftDeletableModel

	// AppID is the public identifier of the app. The primary key never leaves the service.
	AppID       string  `json:"appId" gorm:"type:text;not null;uniqueIndex"`
	Name        string  `json:"name" gorm:"type:text;not null"`
	Publisher   string  `json:"publisher" gorm:"type:text;not null"`
	Description *string `json:"description" gorm:"type:text"`
	Category    *string `json:"category" gorm:"type:text"`

	Versions []AppVersion `json:"versions,omitempty" gorm:"foreignKey:AppID;references:ID"`
}

func (App) TableName() string {
	return "apps"
}
