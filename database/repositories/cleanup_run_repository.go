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

package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/applibrary/database/models"
	"github.com/l3montree-dev/applibrary/shared"
	"github.com/l3montree-dev/applibrary/utils"
)

type cleanupRunRepository struct {
	utils.Repository[uuid.UUID, models.CleanupRun, shared.DB]
	db shared.DB
}

func NewCleanupRunRepository(db shared.DB) *cleanupRunRepository {
	return &cleanupRunRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.CleanupRun](db),
	}
}

func (r *cleanupRunRepository) ListRecent(limit int) ([]models.CleanupRun, error) {
	var runs []models.CleanupRun
	err := r.db.Order("started_at DESC").Limit(limit).Find(&runs).Error
	return runs, err
}
