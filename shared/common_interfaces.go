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

package shared

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/applibrary/database/models"
	"github.com/l3montree-dev/applibrary/dtos"
	"github.com/l3montree-dev/applibrary/utils"
)

type LeaderElector interface {
	IsLeader() bool
}

type DaemonRunner interface {
	Start()
	Stop() context.Context
}

type ConfigRepository interface {
	Save(tx DB, config *models.Config) error
	GetDB(tx DB) DB
}

type ConfigService interface {
	// retrieves the value for the given key and marshals it into v
	GetJSONConfig(key string, v any) error
	SetJSONConfig(key string, v any) error
}

type AppRepository interface {
	utils.Repository[uuid.UUID, models.App, DB]
	// ReadByAppID only finds apps which are not in the trash.
	ReadByAppID(tx DB, appID string) (models.App, error)
	ReadDeletedByAppID(tx DB, appID string) (models.App, error)
	ReadIncludingDeleted(tx DB, id uuid.UUID) (models.App, error)
	// AppIDTaken also considers trashed apps, their ids stay reserved until purged.
	AppIDTaken(tx DB, appID string) (bool, error)
	ListActive(name string) ([]models.App, error)
	ListDeleted() ([]models.App, error)
	Update(tx DB, id uuid.UUID, updates map[string]any) error
	SoftDelete(tx DB, id uuid.UUID) error
	// PurgeDeleted hard deletes trashed apps. A nil cutoff purges all of them.
	// Versions must be purged beforehand.
	PurgeDeleted(tx DB, deletedBefore *time.Time) (int64, error)
}

type AppVersionRepository interface {
	utils.Repository[uuid.UUID, models.AppVersion, DB]
	ReadByVersionID(tx DB, versionID string) (models.AppVersion, error)
	ReadDeletedByVersionID(tx DB, versionID string) (models.AppVersion, error)
	VersionIDExists(tx DB, versionID string) (bool, error)
	ListByApp(tx DB, appID uuid.UUID) ([]models.AppVersion, error)
	ListDeleted() ([]models.DeletedAppVersion, error)
	// UnsetCurrentSiblings clears the current flag of every non-deleted version of the app
	// except the given one in a single statement.
	UnsetCurrentSiblings(tx DB, appID uuid.UUID, exceptID uuid.UUID) (int64, error)
	SetCurrent(tx DB, id uuid.UUID) error
	HasCurrentSibling(tx DB, appID uuid.UUID, exceptID uuid.UUID) (bool, error)
	Update(tx DB, id uuid.UUID, updates map[string]any) (int64, error)
	SoftDelete(tx DB, id uuid.UUID) error
	Restore(tx DB, id uuid.UUID, isCurrent bool) error
	// PurgeDeleted hard deletes trashed versions and every version of a trashed app.
	// A nil cutoff ignores the age.
	PurgeDeleted(tx DB, deletedBefore *time.Time) (int64, error)
	PurgeDeletedByVersionID(tx DB, versionID string) (int64, error)
}

type CleanupRunRepository interface {
	Create(tx DB, run *models.CleanupRun) error
	Save(tx DB, run *models.CleanupRun) error
	ListRecent(limit int) ([]models.CleanupRun, error)
}

type AppService interface {
	List(ctx context.Context, name string) ([]models.App, error)
	Read(ctx context.Context, appID string) (models.App, error)
	Create(ctx context.Context, req dtos.AppCreateRequest) (models.App, error)
	Update(ctx context.Context, appID string, req dtos.AppPatchRequest) (models.App, error)
	SoftDelete(ctx context.Context, appID string) error
	Restore(ctx context.Context, appID string) (models.App, error)
}

type AppVersionService interface {
	ListByApp(ctx context.Context, appID string) ([]models.AppVersion, error)
	CreateVersion(ctx context.Context, appID string, version string, fields dtos.VersionFields, markCurrent bool) (models.AppVersion, error)
	UpdateVersion(ctx context.Context, versionID string, req dtos.AppVersionPatchRequest) (models.AppVersion, error)
	SoftDelete(ctx context.Context, versionID string) error
	Restore(ctx context.Context, versionID string) (models.AppVersion, error)
}

type TrashService interface {
	ListDeletedApps(ctx context.Context) ([]models.App, error)
	ListDeletedVersions(ctx context.Context) ([]models.DeletedAppVersion, error)
	EmptyTrash(ctx context.Context) (models.CleanupRun, error)
	Cleanup(ctx context.Context, trigger models.CleanupTrigger) (models.CleanupRun, error)
	PurgeVersion(ctx context.Context, versionID string) error
	ListCleanupRuns(ctx context.Context, limit int) ([]models.CleanupRun, error)
	RetentionDays() int
}

type ObjectStore interface {
	Upload(ctx context.Context, path string, contentType string, body io.Reader, size int64) (string, error)
	Delete(ctx context.Context, path string) error
	SignedURL(ctx context.Context, path string) (string, time.Time, error)
}
