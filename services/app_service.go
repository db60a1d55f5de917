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

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/l3montree-dev/applibrary/database"
	"github.com/l3montree-dev/applibrary/database/models"
	"github.com/l3montree-dev/applibrary/dtos"
	"github.com/l3montree-dev/applibrary/shared"
	"github.com/l3montree-dev/applibrary/tracing"
	"github.com/l3montree-dev/applibrary/utils"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// attempts to find a free public identifier before giving up
const maxAppIDAttempts = 5

type AppService struct {
	appRepository        shared.AppRepository
	appVersionRepository shared.AppVersionRepository
}

var _ shared.AppService = (*AppService)(nil)

func NewAppService(appRepository shared.AppRepository, appVersionRepository shared.AppVersionRepository) *AppService {
	return &AppService{
		appRepository:        appRepository,
		appVersionRepository: appVersionRepository,
	}
}

// newAppID builds the public identifier from the app name and a short random suffix.
func newAppID(name string) string {
	base := slug.Make(name)
	if base == "" {
		base = "app"
	}
	return base + "-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

func (s *AppService) readActive(tx shared.DB, appID string) (models.App, error) {
	app, err := s.appRepository.ReadByAppID(tx, appID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.App{}, shared.NewNotFoundError("app not found")
		}
		return models.App{}, errors.Wrap(err, "could not read app")
	}
	return app, nil
}

// List returns all apps outside the trash, or the matches of a name search if name is set.
func (s *AppService) List(ctx context.Context, name string) ([]models.App, error) {
	_, span := tracing.Tracer.Start(ctx, "AppService.List")
	defer span.End()

	apps, err := s.appRepository.ListActive(strings.TrimSpace(name))
	if err != nil {
		return nil, errors.Wrap(err, "could not list apps")
	}
	return apps, nil
}

// Read returns the app together with its versions which are not in the trash.
func (s *AppService) Read(ctx context.Context, appID string) (models.App, error) {
	_, span := tracing.Tracer.Start(ctx, "AppService.Read")
	defer span.End()

	app, err := s.readActive(nil, appID)
	if err != nil {
		return models.App{}, err
	}

	versions, err := s.appVersionRepository.ListByApp(nil, app.ID)
	if err != nil {
		return models.App{}, errors.Wrap(err, "could not list versions")
	}
	app.Versions = versions
	return app, nil
}

func (s *AppService) Create(ctx context.Context, req dtos.AppCreateRequest) (models.App, error) {
	_, span := tracing.Tracer.Start(ctx, "AppService.Create")
	defer span.End()

	name := strings.TrimSpace(req.Name)
	publisher := strings.TrimSpace(req.Publisher)
	if name == "" || publisher == "" {
		return models.App{}, shared.NewValidationError("name and publisher are required")
	}

	app := models.App{
		Name:        name,
		Publisher:   publisher,
		Description: utils.TrimmedOrNil(req.Description),
		Category:    utils.TrimmedOrNil(req.Category),
	}

	for range maxAppIDAttempts {
		candidate := newAppID(name)
		taken, err := s.appRepository.AppIDTaken(nil, candidate)
		if err != nil {
			return models.App{}, errors.Wrap(err, "could not check app id")
		}
		if taken {
			continue
		}

		app.AppID = candidate
		err = s.appRepository.Create(nil, &app)
		if err == nil {
			return app, nil
		}
		if !database.IsDuplicateKeyError(err) {
			return models.App{}, errors.Wrap(err, "could not create app")
		}
		// lost a race for the identifier, try the next one
		app.ID = uuid.Nil
	}
	return models.App{}, shared.NewConflictError("could not allocate a unique app id")
}

func (s *AppService) Update(ctx context.Context, appID string, req dtos.AppPatchRequest) (models.App, error) {
	_, span := tracing.Tracer.Start(ctx, "AppService.Update")
	defer span.End()

	app, err := s.readActive(nil, appID)
	if err != nil {
		return models.App{}, err
	}

	updates := map[string]any{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return models.App{}, shared.NewValidationError("name must not be empty")
		}
		updates["name"] = name
	}
	if req.Publisher != nil {
		publisher := strings.TrimSpace(*req.Publisher)
		if publisher == "" {
			return models.App{}, shared.NewValidationError("publisher must not be empty")
		}
		updates["publisher"] = publisher
	}
	if req.Description != nil {
		updates["description"] = utils.TrimmedOrNil(req.Description)
	}
	if req.Category != nil {
		updates["category"] = utils.TrimmedOrNil(req.Category)
	}

	if len(updates) == 0 {
		return app, nil
	}

	if err := s.appRepository.Update(nil, app.ID, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.App{}, shared.NewNotFoundError("app not found")
		}
		return models.App{}, errors.Wrap(err, "could not update app")
	}
	return s.readActive(nil, appID)
}

// SoftDelete moves the app into the trash. Its versions stay untouched.
func (s *AppService) SoftDelete(ctx context.Context, appID string) error {
	_, span := tracing.Tracer.Start(ctx, "AppService.SoftDelete")
	defer span.End()

	app, err := s.readActive(nil, appID)
	if err != nil {
		return err
	}
	if err := s.appRepository.SoftDelete(nil, app.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shared.NewNotFoundError("app not found")
		}
		return errors.Wrap(err, "could not delete app")
	}
	return nil
}

func (s *AppService) Restore(ctx context.Context, appID string) (models.App, error) {
	_, span := tracing.Tracer.Start(ctx, "AppService.Restore")
	defer span.End()

	app, err := s.appRepository.ReadDeletedByAppID(nil, appID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.App{}, shared.NewNotFoundError("app not in trash")
		}
		return models.App{}, errors.Wrap(err, "could not read app")
	}

	if err := s.appRepository.Activate(nil, app.ID); err != nil {
		return models.App{}, errors.Wrap(err, "could not restore app")
	}
	return s.readActive(nil, appID)
}
