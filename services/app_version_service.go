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
	"strings"

	"github.com/l3montree-dev/applibrary/database"
	"github.com/l3montree-dev/applibrary/database/models"
	"github.com/l3montree-dev/applibrary/dtos"
	"github.com/l3montree-dev/applibrary/monitoring"
	"github.com/l3montree-dev/applibrary/shared"
	"github.com/l3montree-dev/applibrary/tracing"
	"github.com/l3montree-dev/applibrary/utils"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// AppVersionService keeps the is_current flag consistent: at most one non-deleted version
// per app is current. The partial unique index idx_app_versions_one_current backs this up.
type AppVersionService struct {
	appRepository        shared.AppRepository
	appVersionRepository shared.AppVersionRepository
}

var _ shared.AppVersionService = (*AppVersionService)(nil)

func NewAppVersionService(appRepository shared.AppRepository, appVersionRepository shared.AppVersionRepository) *AppVersionService {
	return &AppVersionService{
		appRepository:        appRepository,
		appVersionRepository: appVersionRepository,
	}
}

func (s *AppVersionService) resolveApp(appID string) (models.App, error) {
	app, err := s.appRepository.ReadByAppID(nil, appID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.App{}, shared.NewNotFoundError("app not found")
		}
		return models.App{}, errors.Wrap(err, "could not read app")
	}
	return app, nil
}

func applyFields(v *models.AppVersion, fields dtos.VersionFields) {
	v.ReleaseNotes = utils.TrimmedOrNil(fields.ReleaseNotes)
	v.DetectionScript = utils.TrimmedOrNil(fields.DetectionScript)
	v.InstallCommand = utils.TrimmedOrNil(fields.InstallCommand)
	v.UninstallCommand = utils.TrimmedOrNil(fields.UninstallCommand)
	v.FilePath = utils.TrimmedOrNil(fields.FilePath)
	v.Description = utils.TrimmedOrNil(fields.Description)
}

// fieldUpdates only contains the fields which are set. An empty string clears the column.
func fieldUpdates(fields dtos.VersionFields) map[string]any {
	updates := map[string]any{}
	set := func(column string, value *string) {
		if value != nil {
			updates[column] = utils.TrimmedOrNil(value)
		}
	}
	set("release_notes", fields.ReleaseNotes)
	set("detection_script", fields.DetectionScript)
	set("install_command", fields.InstallCommand)
	set("uninstall_command", fields.UninstallCommand)
	set("file_path", fields.FilePath)
	set("description", fields.Description)
	return updates
}

func (s *AppVersionService) ListByApp(ctx context.Context, appID string) ([]models.AppVersion, error) {
	_, span := tracing.Tracer.Start(ctx, "AppVersionService.ListByApp")
	defer span.End()

	app, err := s.resolveApp(appID)
	if err != nil {
		return nil, err
	}
	versions, err := s.appVersionRepository.ListByApp(nil, app.ID)
	if err != nil {
		return nil, errors.Wrap(err, "could not list versions")
	}
	return versions, nil
}

// CreateVersion always inserts the version as not current. If markCurrent is set, the flag is
// moved to the new version in a second transaction. A failure of that transaction is reported
// but does not fail the call: the version exists and the caller gets it back with IsCurrent false.
func (s *AppVersionService) CreateVersion(ctx context.Context, appID string, version string, fields dtos.VersionFields, markCurrent bool) (models.AppVersion, error) {
	_, span := tracing.Tracer.Start(ctx, "AppVersionService.CreateVersion")
	defer span.End()

	version = strings.TrimSpace(version)
	if version == "" {
		return models.AppVersion{}, shared.NewValidationError("version is required")
	}

	app, err := s.resolveApp(appID)
	if err != nil {
		return models.AppVersion{}, err
	}

	versionID := models.DeriveVersionID(app.AppID, version)
	exists, err := s.appVersionRepository.VersionIDExists(nil, versionID)
	if err != nil {
		return models.AppVersion{}, errors.Wrap(err, "could not check for existing version")
	}
	if exists {
		return models.AppVersion{}, shared.NewConflictError("version already exists")
	}

	v := models.AppVersion{
		VersionID: versionID,
		AppID:     app.ID,
		Version:   version,
		IsCurrent: false,
	}
	applyFields(&v, fields)

	if err := s.appVersionRepository.Create(nil, &v); err != nil {
		if database.IsDuplicateKeyError(err) {
			return models.AppVersion{}, shared.NewConflictError("version already exists")
		}
		return models.AppVersion{}, errors.Wrap(err, "could not create version")
	}
	v.App = app

	if !markCurrent {
		return v, nil
	}

	err = s.appVersionRepository.Transaction(func(tx shared.DB) error {
		if _, err := s.appVersionRepository.UnsetCurrentSiblings(tx, app.ID, v.ID); err != nil {
			return err
		}
		return s.appVersionRepository.SetCurrent(tx, v.ID)
	})
	if err != nil {
		monitoring.CurrentFlagFailures.Inc()
		monitoring.Alert("could not mark new version as current", err, "versionId", v.VersionID)
		return v, nil
	}

	v.IsCurrent = true
	return v, nil
}

// UpdateVersion applies the patch in one transaction. The previous value of the current flag
// is always taken from the stored row. A nil IsCurrent keeps it.
func (s *AppVersionService) UpdateVersion(ctx context.Context, versionID string, req dtos.AppVersionPatchRequest) (models.AppVersion, error) {
	_, span := tracing.Tracer.Start(ctx, "AppVersionService.UpdateVersion")
	defer span.End()

	var updated models.AppVersion
	err := s.appVersionRepository.Transaction(func(tx shared.DB) error {
		current, err := s.appVersionRepository.ReadByVersionID(tx, versionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.NewNotFoundError("version not found")
			}
			return errors.Wrap(err, "could not read version")
		}

		wasCurrentBefore := current.IsCurrent
		markCurrent := utils.OrDefault(req.IsCurrent, wasCurrentBefore)

		updates := fieldUpdates(req.VersionFields)
		updates["is_current"] = markCurrent

		resultingVersionID := current.VersionID
		if req.Version != nil {
			version := strings.TrimSpace(*req.Version)
			if version == "" {
				return shared.NewValidationError("version must not be empty")
			}
			if version != current.Version {
				app, err := s.appRepository.ReadIncludingDeleted(tx, current.AppID)
				if err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return shared.NewNotFoundError("app not found")
					}
					return errors.Wrap(err, "could not read app")
				}

				resultingVersionID = models.DeriveVersionID(app.AppID, version)
				exists, err := s.appVersionRepository.VersionIDExists(tx, resultingVersionID)
				if err != nil {
					return errors.Wrap(err, "could not check for existing version")
				}
				if exists {
					return shared.NewConflictError("version already exists")
				}
				updates["version"] = version
				updates["version_id"] = resultingVersionID
			}
		}

		if markCurrent && !wasCurrentBefore {
			if _, err := s.appVersionRepository.UnsetCurrentSiblings(tx, current.AppID, current.ID); err != nil {
				return errors.Wrap(err, "could not unset current siblings")
			}
		}

		if _, err := s.appVersionRepository.Update(tx, current.ID, updates); err != nil {
			if database.IsDuplicateKeyError(err) {
				return shared.NewConflictError("version was changed concurrently")
			}
			return errors.Wrap(err, "could not update version")
		}

		updated, err = s.appVersionRepository.ReadByVersionID(tx, resultingVersionID)
		return err
	})
	if err != nil {
		return models.AppVersion{}, err
	}
	return updated, nil
}

func (s *AppVersionService) SoftDelete(ctx context.Context, versionID string) error {
	_, span := tracing.Tracer.Start(ctx, "AppVersionService.SoftDelete")
	defer span.End()

	v, err := s.appVersionRepository.ReadByVersionID(nil, versionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shared.NewNotFoundError("version not found")
		}
		return errors.Wrap(err, "could not read version")
	}
	if err := s.appVersionRepository.SoftDelete(nil, v.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shared.NewNotFoundError("version not found")
		}
		return errors.Wrap(err, "could not delete version")
	}
	return nil
}

// Restore brings the most recently trashed row with the given id back. It only stays current
// if no other version of the app took over in the meantime.
func (s *AppVersionService) Restore(ctx context.Context, versionID string) (models.AppVersion, error) {
	_, span := tracing.Tracer.Start(ctx, "AppVersionService.Restore")
	defer span.End()

	var restored models.AppVersion
	err := s.appVersionRepository.Transaction(func(tx shared.DB) error {
		trashed, err := s.appVersionRepository.ReadDeletedByVersionID(tx, versionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.NewNotFoundError("version not in trash")
			}
			return errors.Wrap(err, "could not read version")
		}

		app, err := s.appRepository.ReadIncludingDeleted(tx, trashed.AppID)
		if err != nil {
			return errors.Wrap(err, "could not read app")
		}
		if app.DeletedAt.Valid {
			return shared.NewConflictError("the app of this version is in the trash, restore the app first")
		}

		exists, err := s.appVersionRepository.VersionIDExists(tx, versionID)
		if err != nil {
			return errors.Wrap(err, "could not check for existing version")
		}
		if exists {
			return shared.NewConflictError("version already exists")
		}

		isCurrent := trashed.IsCurrent
		if isCurrent {
			taken, err := s.appVersionRepository.HasCurrentSibling(tx, trashed.AppID, trashed.ID)
			if err != nil {
				return errors.Wrap(err, "could not check current siblings")
			}
			isCurrent = !taken
		}

		if err := s.appVersionRepository.Restore(tx, trashed.ID, isCurrent); err != nil {
			return errors.Wrap(err, "could not restore version")
		}

		restored, err = s.appVersionRepository.ReadByVersionID(tx, versionID)
		return err
	})
	if err != nil {
		return models.AppVersion{}, err
	}
	return restored, nil
}
