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
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/l3montree-dev/applibrary/database"
	"github.com/l3montree-dev/applibrary/database/models"
	"github.com/l3montree-dev/applibrary/integrationtestutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestUnsetCurrentSiblings(t *testing.T) {
	t.Run("should clear the flag of every sibling but keep the excepted version", func(t *testing.T) {
		db := integrationtestutil.NewSQLiteDB(t)
		repo := NewAppVersionRepository(db)

		app := integrationtestutil.CreateApp(t, db, "firefox-1a2b3c4d")
		old := integrationtestutil.CreateVersion(t, db, app, "1.0.0", true)
		next := integrationtestutil.CreateVersion(t, db, app, "1.1.0", false)

		affected, err := repo.UnsetCurrentSiblings(nil, app.ID, next.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)
		require.NoError(t, repo.SetCurrent(nil, next.ID))

		current := integrationtestutil.CurrentVersions(t, db, app.ID)
		require.Len(t, current, 1)
		assert.Equal(t, next.ID, current[0].ID)

		reloaded, err := repo.Read(old.ID)
		require.NoError(t, err)
		assert.False(t, reloaded.IsCurrent)
	})

	t.Run("should not touch versions of other apps", func(t *testing.T) {
		db := integrationtestutil.NewSQLiteDB(t)
		repo := NewAppVersionRepository(db)

		a := integrationtestutil.CreateApp(t, db, "a-00000001")
		b := integrationtestutil.CreateApp(t, db, "b-00000002")
		integrationtestutil.CreateVersion(t, db, a, "1.0", true)
		bCurrent := integrationtestutil.CreateVersion(t, db, b, "1.0", true)

		affected, err := repo.UnsetCurrentSiblings(nil, a.ID, uuid.New())
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)

		current := integrationtestutil.CurrentVersions(t, db, b.ID)
		require.Len(t, current, 1)
		assert.Equal(t, bCurrent.ID, current[0].ID)
	})

	t.Run("should issue exactly one update statement", func(t *testing.T) {
		sqlDB, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer sqlDB.Close()

		db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
			Logger:                 logger.Default.LogMode(logger.Silent),
			SkipDefaultTransaction: true,
		})
		require.NoError(t, err)

		appID := uuid.New()
		exceptID := uuid.New()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "app_versions" SET "is_current"=$1,"updated_at"=$2 WHERE (app_id = $3 AND id <> $4 AND is_current = $5) AND "app_versions"."deleted_at" IS NULL`)).
			WithArgs(false, sqlmock.AnyArg(), appID, exceptID, true).
			WillReturnResult(sqlmock.NewResult(0, 3))

		affected, err := NewAppVersionRepository(db).UnsetCurrentSiblings(nil, appID, exceptID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), affected)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOneCurrentVersionIndex(t *testing.T) {
	db := integrationtestutil.NewSQLiteDB(t)
	app := integrationtestutil.CreateApp(t, db, "vlc-0000aaaa")
	integrationtestutil.CreateVersion(t, db, app, "3.0.20", true)

	second := models.AppVersion{
		VersionID: models.DeriveVersionID(app.AppID, "3.0.21"),
		AppID:     app.ID,
		Version:   "3.0.21",
		IsCurrent: true,
	}
	err := db.Create(&second).Error
	require.Error(t, err)
	assert.True(t, database.IsDuplicateKeyError(err))
}

func TestVersionIDIsReusableAfterSoftDelete(t *testing.T) {
	db := integrationtestutil.NewSQLiteDB(t)
	repo := NewAppVersionRepository(db)
	app := integrationtestutil.CreateApp(t, db, "7zip-0000bbbb")
	first := integrationtestutil.CreateVersion(t, db, app, "23.01", false)

	require.NoError(t, repo.SoftDelete(nil, first.ID))

	exists, err := repo.VersionIDExists(nil, first.VersionID)
	require.NoError(t, err)
	assert.False(t, exists)

	integrationtestutil.CreateVersion(t, db, app, "23.01", false)

	trashed, err := repo.ReadDeletedByVersionID(nil, first.VersionID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, trashed.ID)
}

func TestRestoreVersion(t *testing.T) {
	db := integrationtestutil.NewSQLiteDB(t)
	repo := NewAppVersionRepository(db)
	app := integrationtestutil.CreateApp(t, db, "git-0000cccc")
	v := integrationtestutil.CreateVersion(t, db, app, "2.45.0", true)

	require.NoError(t, repo.SoftDelete(nil, v.ID))
	assert.ErrorIs(t, repo.SoftDelete(nil, v.ID), gorm.ErrRecordNotFound)

	require.NoError(t, repo.Restore(nil, v.ID, false))
	restored, err := repo.Read(v.ID)
	require.NoError(t, err)
	assert.False(t, restored.IsDeleted())
	assert.False(t, restored.IsCurrent)

	// restoring an active row is a no-op and reported as not found
	assert.ErrorIs(t, repo.Restore(nil, v.ID, false), gorm.ErrRecordNotFound)
}

func TestListDeletedVersions(t *testing.T) {
	db := integrationtestutil.NewSQLiteDB(t)
	repo := NewAppVersionRepository(db)
	app := integrationtestutil.CreateApp(t, db, "obs-0000dddd")
	older := integrationtestutil.CreateVersion(t, db, app, "29.0", false)
	newer := integrationtestutil.CreateVersion(t, db, app, "30.0", false)
	integrationtestutil.CreateVersion(t, db, app, "30.1", true)

	now := time.Now().UTC()
	integrationtestutil.Trash(t, db, &models.AppVersion{}, older.ID, now.Add(-2*time.Hour))
	integrationtestutil.Trash(t, db, &models.AppVersion{}, newer.ID, now.Add(-1*time.Hour))

	deleted, err := repo.ListDeleted()
	require.NoError(t, err)
	require.Len(t, deleted, 2)
	assert.Equal(t, newer.ID, deleted[0].ID)
	assert.Equal(t, older.ID, deleted[1].ID)
	assert.Equal(t, app.Name, deleted[0].AppName)
	assert.Equal(t, app.AppID, deleted[0].AppPublicID)
}

func TestPurgeDeleted(t *testing.T) {
	t.Run("should purge trashed versions and every version of a trashed app", func(t *testing.T) {
		db := integrationtestutil.NewSQLiteDB(t)
		versions := NewAppVersionRepository(db)
		apps := NewAppRepository(db)

		kept := integrationtestutil.CreateApp(t, db, "kept-00000001")
		trashedVersion := integrationtestutil.CreateVersion(t, db, kept, "1.0", false)
		activeVersion := integrationtestutil.CreateVersion(t, db, kept, "2.0", true)

		gone := integrationtestutil.CreateApp(t, db, "gone-00000002")
		integrationtestutil.CreateVersion(t, db, gone, "1.0", true)
		integrationtestutil.CreateVersion(t, db, gone, "2.0", false)

		require.NoError(t, versions.SoftDelete(nil, trashedVersion.ID))
		require.NoError(t, apps.SoftDelete(nil, gone.ID))

		err := versions.Transaction(func(tx *gorm.DB) error {
			purgedVersions, err := versions.PurgeDeleted(tx, nil)
			if err != nil {
				return err
			}
			assert.Equal(t, int64(3), purgedVersions)

			purgedApps, err := apps.PurgeDeleted(tx, nil)
			assert.Equal(t, int64(1), purgedApps)
			return err
		})
		require.NoError(t, err)

		var remaining []models.AppVersion
		require.NoError(t, db.Unscoped().Find(&remaining).Error)
		require.Len(t, remaining, 1)
		assert.Equal(t, activeVersion.ID, remaining[0].ID)

		var orphans int64
		require.NoError(t, db.Unscoped().Model(&models.AppVersion{}).
			Where("app_id NOT IN (?)", db.Unscoped().Model(&models.App{}).Select("id")).
			Count(&orphans).Error)
		assert.Zero(t, orphans)
	})

	t.Run("should only purge rows trashed before the cutoff", func(t *testing.T) {
		db := integrationtestutil.NewSQLiteDB(t)
		versions := NewAppVersionRepository(db)
		apps := NewAppRepository(db)

		now := time.Now().UTC().Truncate(time.Second)
		cutoff := now.Add(-30 * 24 * time.Hour)

		app := integrationtestutil.CreateApp(t, db, "keepass-00000003")
		expired := integrationtestutil.CreateVersion(t, db, app, "2.55", false)
		recent := integrationtestutil.CreateVersion(t, db, app, "2.56", false)
		integrationtestutil.Trash(t, db, &models.AppVersion{}, expired.ID, cutoff.Add(-time.Hour))
		integrationtestutil.Trash(t, db, &models.AppVersion{}, recent.ID, cutoff.Add(time.Hour))

		oldApp := integrationtestutil.CreateApp(t, db, "putty-00000004")
		integrationtestutil.CreateVersion(t, db, oldApp, "0.80", true)
		integrationtestutil.Trash(t, db, &models.App{}, oldApp.ID, cutoff.Add(-24*time.Hour))

		youngApp := integrationtestutil.CreateApp(t, db, "winscp-00000005")
		youngVersion := integrationtestutil.CreateVersion(t, db, youngApp, "6.1", true)
		integrationtestutil.Trash(t, db, &models.App{}, youngApp.ID, cutoff.Add(24*time.Hour))

		purgedVersions, err := versions.PurgeDeleted(nil, &cutoff)
		require.NoError(t, err)
		assert.Equal(t, int64(2), purgedVersions)

		purgedApps, err := apps.PurgeDeleted(nil, &cutoff)
		require.NoError(t, err)
		assert.Equal(t, int64(1), purgedApps)

		var ids []uuid.UUID
		require.NoError(t, db.Unscoped().Model(&models.AppVersion{}).Order("version").Pluck("id", &ids).Error)
		assert.ElementsMatch(t, []uuid.UUID{recent.ID, youngVersion.ID}, ids)

		stillTrashed, err := apps.ListDeleted()
		require.NoError(t, err)
		require.Len(t, stillTrashed, 1)
		assert.Equal(t, youngApp.ID, stillTrashed[0].ID)
	})

	t.Run("should purge a single trashed version by its version id", func(t *testing.T) {
		db := integrationtestutil.NewSQLiteDB(t)
		versions := NewAppVersionRepository(db)

		app := integrationtestutil.CreateApp(t, db, "notepad-00000006")
		v := integrationtestutil.CreateVersion(t, db, app, "8.6", false)

		purged, err := versions.PurgeDeletedByVersionID(nil, v.VersionID)
		require.NoError(t, err)
		assert.Zero(t, purged, "active versions must not be purged")

		require.NoError(t, versions.SoftDelete(nil, v.ID))
		purged, err = versions.PurgeDeletedByVersionID(nil, v.VersionID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), purged)
	})
}
