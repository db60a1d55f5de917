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
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/applibrary/database/models"
	"github.com/l3montree-dev/applibrary/shared"
	"github.com/l3montree-dev/applibrary/utils"
	"gorm.io/gorm"
)

type appRepository struct {
	utils.Repository[uuid.UUID, models.App, shared.DB]
	db shared.DB
}

func NewAppRepository(db shared.DB) *appRepository {
	return &appRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.App](db),
	}
}

func (r *appRepository) ReadByAppID(tx shared.DB, appID string) (models.App, error) {
	var app models.App
	err := r.GetDB(tx).Where("app_id = ?", appID).First(&app).Error
	return app, err
}

func (r *appRepository) ReadDeletedByAppID(tx shared.DB, appID string) (models.App, error) {
	var app models.App
	err := r.GetDB(tx).Unscoped().Where("app_id = ? AND deleted_at IS NOT NULL", appID).First(&app).Error
	return app, err
}

// ReadIncludingDeleted finds the app by its primary key, even if it is in the trash.
func (r *appRepository) ReadIncludingDeleted(tx shared.DB, id uuid.UUID) (models.App, error) {
	var app models.App
	err := r.GetDB(tx).Unscoped().Where("id = ?", id).First(&app).Error
	return app, err
}

func (r *appRepository) AppIDTaken(tx shared.DB, appID string) (bool, error) {
	var count int64
	err := r.GetDB(tx).Unscoped().Model(&models.App{}).Where("app_id = ?", appID).Count(&count).Error
	return count > 0, err
}

// maximum number of apps returned by a name search
const searchLimit = 100

// ListActive returns the apps which are not in the trash. A non-empty name restricts the
// result to apps whose name contains it case-insensitively or whose app id equals it,
// newest first and capped at searchLimit.
func (r *appRepository) ListActive(name string) ([]models.App, error) {
	var apps []models.App
	if name == "" {
		err := r.db.Order("updated_at DESC").Find(&apps).Error
		return apps, err
	}

	err := r.db.Where("LOWER(name) LIKE LOWER(?) OR app_id = ?", "%"+name+"%", name).
		Order("created_at DESC").
		Limit(searchLimit).
		Find(&apps).Error
	return apps, err
}

func (r *appRepository) ListDeleted() ([]models.App, error) {
	var apps []models.App
	err := r.db.Unscoped().Where("deleted_at IS NOT NULL").Order("deleted_at DESC").Find(&apps).Error
	return apps, err
}

func (r *appRepository) Update(tx shared.DB, id uuid.UUID, updates map[string]any) error {
	res := r.GetDB(tx).Model(&models.App{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *appRepository) SoftDelete(tx shared.DB, id uuid.UUID) error {
	res := r.GetDB(tx).Where("id = ?", id).Delete(&models.App{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *appRepository) PurgeDeleted(tx shared.DB, deletedBefore *time.Time) (int64, error) {
	q := r.GetDB(tx).Unscoped().Where("deleted_at IS NOT NULL")
	if deletedBefore != nil {
		q = q.Where("deleted_at < ?", *deletedBefore)
	}
	res := q.Delete(&models.App{})
	return res.RowsAffected, res.Error
}
