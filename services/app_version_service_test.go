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

package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/l3montree-dev/applibrary/database/models"
	"github.com/l3montree-dev/applibrary/dtos"
	"github.com/l3montree-dev/applibrary/integrationtestutil"
	"github.com/l3montree-dev/applibrary/mocks"
	"github.com/l3montree-dev/applibrary/monitoring"
	"github.com/l3montree-dev/applibrary/shared"
	"github.com/l3montree-dev/applibrary/utils"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateVersion(t *testing.T) {
	ctx := context.Background()

	t.Run("should move the current flag to the new version", func(t *testing.T) {
		env := newTestEnv(t)
		app := integrationtestutil.CreateApp(t, env.db, "firefox-aaaa0001")

		first, err := env.appVersionService.CreateVersion(ctx, app.AppID, "127.0", dtos.VersionFields{}, true)
		require.NoError(t, err)
		assert.True(t, first.IsCurrent)

		second, err := env.appVersionService.CreateVersion(ctx, app.AppID, " 128.0 ", dtos.VersionFields{
			InstallCommand: utils.Ptr("msiexec /i firefox.msi /qn"),
			ReleaseNotes:   utils.Ptr("   "),
		}, true)
		require.NoError(t, err)
		assert.True(t, second.IsCurrent)
		assert.Equal(t, "firefox-aaaa0001_128.0", second.VersionID)
		assert.Equal(t, "128.0", second.Version)
		assert.Equal(t, "msiexec /i firefox.msi /qn", *second.InstallCommand)
		assert.Nil(t, second.ReleaseNotes)
		assert.Equal(t, app.AppID, second.App.AppID)

		current := integrationtestutil.CurrentVersions(t, env.db, app.ID)
		require.Len(t, current, 1)
		assert.Equal(t, second.ID, current[0].ID)
	})

	t.Run("should leave the current version alone if the new one is not marked", func(t *testing.T) {
		env := newTestEnv(t)
		app := integrationtestutil.CreateApp(t, env.db, "vlc-aaaa0002")
		current := integrationtestutil.CreateVersion(t, env.db, app, "3.0.20", true)

		v, err := env.appVersionService.CreateVersion(ctx, app.AppID, "3.0.21", dtos.VersionFields{}, false)
		require.NoError(t, err)
		assert.False(t, v.IsCurrent)

		stillCurrent := integrationtestutil.CurrentVersions(t, env.db, app.ID)
		require.Len(t, stillCurrent, 1)
		assert.Equal(t, current.ID, stillCurrent[0].ID)
	})

	t.Run("should reject a version which already exists", func(t *testing.T) {
		env := newTestEnv(t)
		app := integrationtestutil.CreateApp(t, env.db, "git-aaaa0003")
		integrationtestutil.CreateVersion(t, env.db, app, "2.45.0", true)

		_, err := env.appVersionService.CreateVersion(ctx, app.AppID, "2.45.0", dtos.VersionFields{}, true)
		assert.ErrorIs(t, err, shared.ErrConflict)

		current := integrationtestutil.CurrentVersions(t, env.db, app.ID)
		assert.Len(t, current, 1)
	})

	t.Run("should allow to recreate a version which is in the trash", func(t *testing.T) {
		env := newTestEnv(t)
		app := integrationtestutil.CreateApp(t, env.db, "git-aaaa0004")
		v := integrationtestutil.CreateVersion(t, env.db, app, "2.45.0", false)
		require.NoError(t, env.appVersionService.SoftDelete(ctx, v.VersionID))

		_, err := env.appVersionService.CreateVersion(ctx, app.AppID, "2.45.0", dtos.VersionFields{}, false)
		assert.NoError(t, err)
	})

	t.Run("should fail for unknown or trashed apps", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.appVersionService.CreateVersion(ctx, "does-not-exist", "1.0", dtos.VersionFields{}, false)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		app := integrationtestutil.CreateApp(t, env.db, "gone-aaaa0005")
		require.NoError(t, env.appService.SoftDelete(ctx, app.AppID))
		_, err = env.appVersionService.CreateVersion(ctx, app.AppID, "1.0", dtos.VersionFields{}, false)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("should require a version", func(t *testing.T) {
		env := newTestEnv(t)
		app := integrationtestutil.CreateApp(t, env.db, "empty-aaaa0006")
		_, err := env.appVersionService.CreateVersion(ctx, app.AppID, "  ", dtos.VersionFields{}, false)
		assert.ErrorIs(t, err, shared.ErrValidation)
	})

	t.Run("should return the stored version if the current flag cannot be set", func(t *testing.T) {
		app := models.App{AppID: "flaky-aaaa0007"}
		appRepository := mocks.NewAppRepository(t)
		appRepository.On("ReadByAppID", mock.Anything, app.AppID).Return(app, nil)

		appVersionRepository := mocks.NewAppVersionRepository(t)
		appVersionRepository.On("VersionIDExists", mock.Anything, "flaky-aaaa0007_1.0").Return(false, nil)
		appVersionRepository.On("Create", mock.Anything, mock.Anything).Return(nil)
		appVersionRepository.On("Transaction", mock.Anything).Return(func(f func(shared.DB) error) error {
			return f(nil)
		})
		appVersionRepository.On("UnsetCurrentSiblings", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), fmt.Errorf("deadlock detected"))

		failuresBefore := testutil.ToFloat64(monitoring.CurrentFlagFailures)

		s := NewAppVersionService(appRepository, appVersionRepository)
		v, err := s.CreateVersion(ctx, app.AppID, "1.0", dtos.VersionFields{}, true)
		require.NoError(t, err)
		assert.False(t, v.IsCurrent)
		assert.Equal(t, "flaky-aaaa0007_1.0", v.VersionID)
		assert.Equal(t, failuresBefore+1, testutil.ToFloat64(monitoring.CurrentFlagFailures))
		appVersionRepository.AssertNotCalled(t, "SetCurrent", mock.Anything, mock.Anything)
	})

	t.Run("should map a unique violation of the insert to a conflict", func(t *testing.T) {
		app := models.App{AppID: "race-aaaa0008"}
		appRepository := mocks.NewAppRepository(t)
		appRepository.On("ReadByAppID", mock.Anything, app.AppID).Return(app, nil)

		appVersionRepository := mocks.NewAppVersionRepository(t)
		appVersionRepository.On("VersionIDExists", mock.Anything, mock.Anything).Return(false, nil)
		appVersionRepository.On("Create", mock.Anything, mock.Anything).Return(fmt.Errorf("ERROR: duplicate key value violates unique constraint (SQLSTATE 23505)"))

		s := NewAppVersionService(appRepository, appVersionRepository)
		_, err := s.CreateVersion(ctx, app.AppID, "1.0", dtos.VersionFields{}, false)
		assert.ErrorIs(t, err, shared.ErrConflict)
	})
}

func TestUpdateVersion(t *testing.T) {
	ctx := context.Background()

	t.Run("should keep the flag if IsCurrent is not set", func(t *testing.T) {
		env := newTestEnv(t)
		app := integrationtestutil.CreateApp(t, env.db, "obs-bbbb0001")
		v := integrationtestutil.CreateVersion(t, env.db, app, "30.0", true)

		updated, err := env.appVersionService.UpdateVersion(ctx, v.VersionID, dtos.AppVersionPatchRequest{
			VersionFields: dtos.VersionFields{Description: utils.Ptr("lts")},
		})
		require.NoError(t, err)
		assert.True(t, updated.IsCurrent)
		assert.Equal(t, "lts", *updated.Description)
		assert.Equal(t, app.AppID, updated.App.AppID)
	})

	t.Run("should move the flag to the updated version", func(t *testing.T) {
		env := newTestEnv(t)
		app := integrationtestutil.CreateApp(t, env.db, "obs-bbbb0002")
		old := integrationtestutil.CreateVersion(t, env.db, app, "29.0", true)
		v := integrationtestutil.CreateVersion(t, env.db, app, "30.0", false)

		updated, err := env.appVersionService.UpdateVersion(ctx, v.VersionID, dtos.AppVersionPatchRequest{IsCurrent: utils.Ptr(true)})
		require.NoError(t, err)
		assert.True(t, updated.IsCurrent)

		current := integrationtestutil.CurrentVersions(t, env.db, app.ID)
		require.Len(t, current, 1)
		assert.Equal(t, v.ID, current[0].ID)
		assert.NotEqual(t, old.ID, current[0].ID)
	})

	t.Run("should not touch siblings if the version was current before", func(t *testing.T) {
		env := newTestEnv(t)
		app := integrationtestutil.CreateApp(t, env.db, "obs-bbbb0003")
		v := integrationtestutil.CreateVersion(t, env.db, app, "30.0", true)

		updated, err := env.appVersionService.UpdateVersion(ctx, v.VersionID, dtos.AppVersionPatchRequest{IsCurrent: utils.Ptr(true)})
		require.NoError(t, err)
		assert.True(t, updated.IsCurrent)
		assert.Len(t, integrationtestutil.CurrentVersions(t, env.db, app.ID), 1)
	})

	t.Run("should clear the flag", func(t *testing.T) {
		env := newTestEnv(t)
		app := integrationtestutil.CreateApp(t, env.db, "obs-bbbb0004")
		v := integrationtestutil.CreateVersion(t, env.db, app, "30.0", true)

		updated, err := env.appVersionService.UpdateVersion(ctx, v.VersionID, dtos.AppVersionPatchRequest{IsCurrent: utils.Ptr(false)})
		require.NoError(t, err)
		assert.False(t, updated.IsCurrent)
		assert.Empty(t, integrationtestutil.CurrentVersions(t, env.db, app.ID))
	})

	t.Run("should derive a new version id when the version changes", func(t *testing.T) {
		env := newTestEnv(t)
		app := integrationtestutil.CreateApp(t, env.db, "obs-bbbb0005")
		v := integrationtestutil.CreateVersion(t, env.db, app, "30.0", false)

		updated, err := env.appVersionService.UpdateVersion(ctx, v.VersionID, dtos.AppVersionPatchRequest{Version: utils.Ptr("30.1")})
		require.NoError(t, err)
		assert.Equal(t, "obs-bbbb0005_30.1", updated.VersionID)
		assert.Equal(t, v.ID, updated.ID)

		_, err = env.appVersionService.UpdateVersion(ctx, v.VersionID, dtos.AppVersionPatchRequest{})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("should reject a version change onto an existing version", func(t *testing.T) {
		env := newTestEnv(t)
		app := integrationtestutil.CreateApp(t, env.db, "obs-bbbb0006")
		integrationtestutil.CreateVersion(t, env.db, app, "30.0", false)
		v := integrationtestutil.CreateVersion(t, env.db, app, "30.1", false)

		_, err := env.appVersionService.UpdateVersion(ctx, v.VersionID, dtos.AppVersionPatchRequest{Version: utils.Ptr("30.0")})
		assert.ErrorIs(t, err, shared.ErrConflict)
	})

	t.Run("should change the version of a version whose app is in the trash", func(t *testing.T) {
		env := newTestEnv(t)
		app := integrationtestutil.CreateApp(t, env.db, "obs-bbbb0008")
		v := integrationtestutil.CreateVersion(t, env.db, app, "30.0", false)
		require.NoError(t, env.appService.SoftDelete(ctx, app.AppID))

		updated, err := env.appVersionService.UpdateVersion(ctx, v.VersionID, dtos.AppVersionPatchRequest{Version: utils.Ptr("30.2")})
		require.NoError(t, err)
		assert.Equal(t, "obs-bbbb0008_30.2", updated.VersionID)
	})

	t.Run("should not find trashed versions", func(t *testing.T) {
		env := newTestEnv(t)
		app := integrationtestutil.CreateApp(t, env.db, "obs-bbbb0007")
		v := integrationtestutil.CreateVersion(t, env.db, app, "30.0", false)
		require.NoError(t, env.appVersionService.SoftDelete(ctx, v.VersionID))

		_, err := env.appVersionService.UpdateVersion(ctx, v.VersionID, dtos.AppVersionPatchRequest{IsCurrent: utils.Ptr(true)})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestRestoreVersion(t *testing.T) {
	ctx := context.Background()

	t.Run("should restore a current version as not current if a sibling took over", func(t *testing.T) {
		env := newTestEnv(t)
		app := integrationtestutil.CreateApp(t, env.db, "zoom-cccc0001")
		old := integrationtestutil.CreateVersion(t, env.db, app, "5.0", true)
		require.NoError(t, env.appVersionService.SoftDelete(ctx, old.VersionID))

		next, err := env.appVersionService.CreateVersion(ctx, app.AppID, "6.0", dtos.VersionFields{}, true)
		require.NoError(t, err)
		require.True(t, next.IsCurrent)

		restored, err := env.appVersionService.Restore(ctx, old.VersionID)
		require.NoError(t, err)
		assert.False(t, restored.IsCurrent)
		assert.False(t, restored.IsDeleted())

		current := integrationtestutil.CurrentVersions(t, env.db, app.ID)
		require.Len(t, current, 1)
		assert.Equal(t, next.ID, current[0].ID)
	})

	t.Run("should keep the flag if no sibling is current", func(t *testing.T) {
		env := newTestEnv(t)
		app := integrationtestutil.CreateApp(t, env.db, "zoom-cccc0002")
		v := integrationtestutil.CreateVersion(t, env.db, app, "5.0", true)
		require.NoError(t, env.appVersionService.SoftDelete(ctx, v.VersionID))

		restored, err := env.appVersionService.Restore(ctx, v.VersionID)
		require.NoError(t, err)
		assert.True(t, restored.IsCurrent)
	})

	t.Run("should fail if the version is not in the trash", func(t *testing.T) {
		env := newTestEnv(t)
		app := integrationtestutil.CreateApp(t, env.db, "zoom-cccc0003")
		v := integrationtestutil.CreateVersion(t, env.db, app, "5.0", false)

		_, err := env.appVersionService.Restore(ctx, v.VersionID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("should fail if an active version with the same id exists", func(t *testing.T) {
		env := newTestEnv(t)
		app := integrationtestutil.CreateApp(t, env.db, "zoom-cccc0004")
		v := integrationtestutil.CreateVersion(t, env.db, app, "5.0", false)
		require.NoError(t, env.appVersionService.SoftDelete(ctx, v.VersionID))
		integrationtestutil.CreateVersion(t, env.db, app, "5.0", false)

		_, err := env.appVersionService.Restore(ctx, v.VersionID)
		assert.ErrorIs(t, err, shared.ErrConflict)
	})

	t.Run("should require the app to be restored first", func(t *testing.T) {
		env := newTestEnv(t)
		app := integrationtestutil.CreateApp(t, env.db, "zoom-cccc0005")
		v := integrationtestutil.CreateVersion(t, env.db, app, "5.0", false)
		require.NoError(t, env.appVersionService.SoftDelete(ctx, v.VersionID))
		require.NoError(t, env.appService.SoftDelete(ctx, app.AppID))

		_, err := env.appVersionService.Restore(ctx, v.VersionID)
		assert.ErrorIs(t, err, shared.ErrConflict)
	})
}

func TestListVersionsByApp(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	app := integrationtestutil.CreateApp(t, env.db, "signal-dddd0001")
	integrationtestutil.CreateVersion(t, env.db, app, "7.0", false)
	trashed := integrationtestutil.CreateVersion(t, env.db, app, "7.1", false)
	require.NoError(t, env.appVersionService.SoftDelete(ctx, trashed.VersionID))

	versions, err := env.appVersionService.ListByApp(ctx, app.AppID)
	require.NoError(t, err)
	require.Len(t, versions, 1)
	assert.Equal(t, "7.0", versions[0].Version)
	assert.Equal(t, app.AppID, versions[0].App.AppID)

	_, err = env.appVersionService.ListByApp(ctx, "unknown")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
