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
	"encoding/json"
	"log/slog"
	"time"

	"github.com/l3montree-dev/applibrary/config"
	"github.com/l3montree-dev/applibrary/database/models"
	"github.com/l3montree-dev/applibrary/monitoring"
	"github.com/l3montree-dev/applibrary/shared"
	"github.com/l3montree-dev/applibrary/tracing"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
)

const (
	defaultCleanupRunLimit = 20
	maxCleanupRunLimit     = 200
)

type TrashService struct {
	appRepository        shared.AppRepository
	appVersionRepository shared.AppVersionRepository
	cleanupRunRepository shared.CleanupRunRepository
	retentionDays        int
	now                  func() time.Time
}

var _ shared.TrashService = (*TrashService)(nil)

func NewTrashService(appRepository shared.AppRepository, appVersionRepository shared.AppVersionRepository, cleanupRunRepository shared.CleanupRunRepository, cfg config.Config) *TrashService {
	return &TrashService{
		appRepository:        appRepository,
		appVersionRepository: appVersionRepository,
		cleanupRunRepository: cleanupRunRepository,
		retentionDays:        cfg.Trash.RetentionDays,
		now:                  time.Now,
	}
}

func (s *TrashService) RetentionDays() int {
	return s.retentionDays
}

func (s *TrashService) ListDeletedApps(ctx context.Context) ([]models.App, error) {
	_, span := tracing.Tracer.Start(ctx, "TrashService.ListDeletedApps")
	defer span.End()

	apps, err := s.appRepository.ListDeleted()
	if err != nil {
		return nil, errors.Wrap(err, "could not list deleted apps")
	}
	return apps, nil
}

func (s *TrashService) ListDeletedVersions(ctx context.Context) ([]models.DeletedAppVersion, error) {
	_, span := tracing.Tracer.Start(ctx, "TrashService.ListDeletedVersions")
	defer span.End()

	versions, err := s.appVersionRepository.ListDeleted()
	if err != nil {
		return nil, errors.Wrap(err, "could not list deleted versions")
	}
	return versions, nil
}

// EmptyTrash hard deletes everything in the trash regardless of its age.
func (s *TrashService) EmptyTrash(ctx context.Context) (models.CleanupRun, error) {
	return s.purge(ctx, models.CleanupTriggerEmpty, nil)
}

// Cleanup hard deletes everything which is in the trash for longer than the retention period.
// Versions of an expired app are purged with it, even if they are not trashed themselves.
func (s *TrashService) Cleanup(ctx context.Context, trigger models.CleanupTrigger) (models.CleanupRun, error) {
	cutoff := s.now().UTC().AddDate(0, 0, -s.retentionDays)
	return s.purge(ctx, trigger, &cutoff)
}

func (s *TrashService) purge(ctx context.Context, trigger models.CleanupTrigger, cutoff *time.Time) (models.CleanupRun, error) {
	_, span := tracing.Tracer.Start(ctx, "TrashService.purge")
	defer span.End()

	run := models.CleanupRun{
		Trigger:      trigger,
		StartedAt:    s.now().UTC(),
		Status:       models.CleanupStatusRunning,
		DeleteBefore: cutoff,
	}
	if cutoff != nil {
		retentionDays := s.retentionDays
		run.RetentionDays = &retentionDays
	}
	if err := s.cleanupRunRepository.Create(nil, &run); err != nil {
		return run, errors.Wrap(err, "could not record cleanup run")
	}

	var deletedApps, deletedVersions int64
	// versions first, otherwise the foreign key of a trashed app's versions blocks the app
	err := s.appVersionRepository.Transaction(func(tx shared.DB) error {
		var err error
		deletedVersions, err = s.appVersionRepository.PurgeDeleted(tx, cutoff)
		if err != nil {
			return errors.Wrap(err, "could not purge versions")
		}
		deletedApps, err = s.appRepository.PurgeDeleted(tx, cutoff)
		if err != nil {
			return errors.Wrap(err, "could not purge apps")
		}
		return nil
	})

	finishedAt := s.now().UTC()
	run.FinishedAt = &finishedAt
	monitoring.TrashCleanupDuration.Observe(finishedAt.Sub(run.StartedAt).Seconds())

	if err != nil {
		run.Status = models.CleanupStatusFailed
		if details, marshalErr := json.Marshal(map[string]string{"error": err.Error()}); marshalErr == nil {
			run.Details = datatypes.JSON(details)
		}
		if saveErr := s.cleanupRunRepository.Save(nil, &run); saveErr != nil {
			slog.Error("could not save failed cleanup run", "runId", run.ID, "err", saveErr)
		}
		monitoring.TrashCleanupRuns.WithLabelValues(string(trigger), string(run.Status)).Inc()
		return run, err
	}

	run.Status = models.CleanupStatusSucceeded
	run.DeletedApps = deletedApps
	run.DeletedVersions = deletedVersions
	monitoring.TrashCleanupRuns.WithLabelValues(string(trigger), string(run.Status)).Inc()
	monitoring.TrashPurgedRows.WithLabelValues("apps").Add(float64(deletedApps))
	monitoring.TrashPurgedRows.WithLabelValues("app_versions").Add(float64(deletedVersions))

	if err := s.cleanupRunRepository.Save(nil, &run); err != nil {
		// the purge itself is committed, only the bookkeeping is lost
		monitoring.Alert("could not save cleanup run", err, "runId", run.ID)
	}

	slog.Info("trash purged", "trigger", trigger, "deletedApps", deletedApps, "deletedVersions", deletedVersions, "cutoff", cutoff)
	return run, nil
}

// PurgeVersion hard deletes a version which is in the trash.
func (s *TrashService) PurgeVersion(ctx context.Context, versionID string) error {
	_, span := tracing.Tracer.Start(ctx, "TrashService.PurgeVersion")
	defer span.End()

	purged, err := s.appVersionRepository.PurgeDeletedByVersionID(nil, versionID)
	if err != nil {
		return errors.Wrap(err, "could not purge version")
	}
	if purged == 0 {
		return shared.NewNotFoundError("version not in trash")
	}
	monitoring.TrashPurgedRows.WithLabelValues("app_versions").Add(float64(purged))
	return nil
}

func (s *TrashService) ListCleanupRuns(ctx context.Context, limit int) ([]models.CleanupRun, error) {
	_, span := tracing.Tracer.Start(ctx, "TrashService.ListCleanupRuns")
	defer span.End()

	if limit <= 0 {
		limit = defaultCleanupRunLimit
	}
	limit = min(limit, maxCleanupRunLimit)

	runs, err := s.cleanupRunRepository.ListRecent(limit)
	if err != nil {
		return nil, errors.Wrap(err, "could not list cleanup runs")
	}
	return runs, nil
}
