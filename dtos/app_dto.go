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

type AppDTO struct {
	AppID       string     `json:"appId"`
	Name        string     `json:"name"`
	Publisher   string     `json:"publisher"`
	Description *string    `json:"description"`
	Category    *string    `json:"category"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	DeletedAt   *time.Time `json:"deletedAt,omitempty"`

	Versions []AppVersionDTO `json:"versions,omitempty"`
}

// requests
type AppCreateRequest struct {
	Name        string  `json:"name" validate:"required"`
	Publisher   string  `json:"publisher" validate:"required"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
}

// AppPatchRequest only touches the fields which are set.
type AppPatchRequest struct {
	Name        *string `json:"name" validate:"omitnil,min=1"`
	Publisher   *string `json:"publisher" validate:"omitnil,min=1"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
}
