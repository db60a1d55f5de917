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

type appVersionRepository struct {
	utils.Repository[uuid.UUID, models.AppVersion, shared.DB]
	db shared.DB
}

// the owning app is needed for the public identifiers even while it is in the trash
func withTrashed(db *gorm.DB) *gorm.DB {
	return db.Unscoped()
}

func NewAppVersionRepository(db shared.DB) *appVersionRepository {
	return &appVersionRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.AppVersion](db),
	}
}

func (r *appVersionRepository) ReadByVersionID(tx shared.DB, versionID string) (models.AppVersion, error) {
	var version models.AppVersion
	err := r.GetDB(tx).Preload("App", withTrashed).Where("version_id = ?", versionID).First(&version).Error
	return version, err
}

// ReadDeletedByVersionID returns the most recently trashed row with the given version id.
func (r *appVersionRepository) ReadDeletedByVersionID(tx shared.DB, versionID string) (models.AppVersion, error) {
	var version models.AppVersion
	err := r.GetDB(tx).Unscoped().
		Where("version_id = ? AND deleted_at IS NOT NULL", versionID).
		Order("deleted_at DESC").
		First(&version).Error
	return version, err
}

func (r *appVersionRepository) VersionIDExists(tx shared.DB, versionID string) (bool, error) {
	var count int64
	err := r.GetDB(tx).Model(&models.AppVersion{}).Where("version_id = ?", versionID).Count(&count).Error
	return count > 0, err
}

func (r *appVersionRepository) ListByApp(tx shared.DB, appID uuid.UUID) ([]models.AppVersion, error) {
	var versions []models.AppVersion
	err := r.GetDB(tx).Preload("App", withTrashed).Where("app_id = ?", appID).Order("created_at DESC").Find(&versions).Error
	return versions, err
}

func (r *appVersionRepository) ListDeleted() ([]models.DeletedAppVersion, error) {
	var versions []models.DeletedAppVersion
	err := r.db.Unscoped().Model(&models.AppVersion{}).
		Select("app_versions.*, apps.name AS app_name, apps.app_id AS app_public_id").
		Joins("JOIN apps ON apps.id = app_versions.app_id").
		Where("app_versions.deleted_at IS NOT NULL").
		Order("app_versions.deleted_at DESC").
		Scan(&versions).Error
	return versions, err
}

func (r *appVersionRepository) UnsetCurrentSiblings(tx shared.DB, appID uuid.UUID, exceptID uuid.UUID) (int64, error) {
	res := r.GetDB(tx).Model(&models.AppVersion{}).
		Where("app_id = ? AND id <> ? AND is_current = ?", appID, exceptID, true).
		Update("is_current", false)
	return res.RowsAffected, res.Error
}

func (r *appVersionRepository) SetCurrent(tx shared.DB, id uuid.UUID) error {
	res := r.GetDB(tx).Model(&models.AppVersion{}).Where("id = ?", id).Update("is_current", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *appVersionRepository) HasCurrentSibling(tx shared.DB, appID uuid.UUID, exceptID uuid.UUID) (bool, error) {
	var count int64
	err := r.GetDB(tx).Model(&models.AppVersion{}).
		Where("app_id = ? AND id <> ? AND is_current = ?", appID, exceptID, true).
		Count(&count).Error
	return count > 0, err
}

func (r *appVersionRepository) Update(tx shared.DB, id uuid.UUID, updates map[string]any) (int64, error) {
	res := r.GetDB(tx).Model(&models.AppVersion{}).Where("id = ?", id).Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *appVersionRepository) SoftDelete(tx shared.DB, id uuid.UUID) error {
	res := r.GetDB(tx).Where("id = ?", id).Delete(&models.AppVersion{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *appVersionRepository) Restore(tx shared.DB, id uuid.UUID, isCurrent bool) error {
	res := r.GetDB(tx).Unscoped().Model(&models.AppVersion{}).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Updates(map[string]any{"deleted_at": nil, "is_current": isCurrent})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *appVersionRepository) PurgeDeleted(tx shared.DB, deletedBefore *time.Time) (int64, error) {
	db := r.GetDB(tx)
	trashedApps := db.Unscoped().Model(&models.App{}).Select("id").Where("deleted_at IS NOT NULL")

	var res *gorm.DB
	if deletedBefore != nil {
		trashedApps = trashedApps.Where("deleted_at < ?", *deletedBefore)
		res = db.Unscoped().
			Where("(deleted_at IS NOT NULL AND deleted_at < ?) OR app_id IN (?)", *deletedBefore, trashedApps).
			Delete(&models.AppVersion{})
	} else {
		res = db.Unscoped().
			Where("deleted_at IS NOT NULL OR app_id IN (?)", trashedApps).
			Delete(&models.AppVersion{})
	}
	return res.RowsAffected, res.Error
}

func (r *appVersionRepository) PurgeDeletedByVersionID(tx shared.DB, versionID string) (int64, error) {
	res := r.GetDB(tx).Unscoped().
		Where("version_id = ? AND deleted_at IS NOT NULL", versionID).
		Delete(&models.AppVersion{})
	return res.RowsAffected, res.Error
}
