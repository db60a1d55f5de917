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

package mocks

import (
	"context"

	"github.com/l3montree-dev/applibrary/database/models"
	"github.com/l3montree-dev/applibrary/dtos"
	"github.com/stretchr/testify/mock"
)

type AppVersionService struct {
	mock.Mock
}

func (_m *AppVersionService) ListByApp(ctx context.Context, appID string) ([]models.AppVersion, error) {
	ret := _m.Called(ctx, appID)

	if len(ret) == 0 {
		panic("no return value specified for ListByApp")
	}

	if rf, ok := ret.Get(0).(func(context.Context, string) ([]models.AppVersion, error)); ok {
		return rf(ctx, appID)
	}

	var r0 []models.AppVersion
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.AppVersion)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *AppVersionService) CreateVersion(ctx context.Context, appID string, version string, fields dtos.VersionFields, markCurrent bool) (models.AppVersion, error) {
	ret := _m.Called(ctx, appID, version, fields, markCurrent)

	if len(ret) == 0 {
		panic("no return value specified for CreateVersion")
	}

	if rf, ok := ret.Get(0).(func(context.Context, string, string, dtos.VersionFields, bool) (models.AppVersion, error)); ok {
		return rf(ctx, appID, version, fields, markCurrent)
	}

	r0 := ret.Get(0).(models.AppVersion)
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *AppVersionService) UpdateVersion(ctx context.Context, versionID string, req dtos.AppVersionPatchRequest) (models.AppVersion, error) {
	ret := _m.Called(ctx, versionID, req)

	if len(ret) == 0 {
		panic("no return value specified for UpdateVersion")
	}

	if rf, ok := ret.Get(0).(func(context.Context, string, dtos.AppVersionPatchRequest) (models.AppVersion, error)); ok {
		return rf(ctx, versionID, req)
	}

	r0 := ret.Get(0).(models.AppVersion)
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *AppVersionService) SoftDelete(ctx context.Context, versionID string) error {
	ret := _m.Called(ctx, versionID)

	if len(ret) == 0 {
		panic("no return value specified for SoftDelete")
	}

	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		return rf(ctx, versionID)
	}

	r0 := ret.Error(0)
	return r0
}

func (_m *AppVersionService) Restore(ctx context.Context, versionID string) (models.AppVersion, error) {
	ret := _m.Called(ctx, versionID)

	if len(ret) == 0 {
		panic("no return value specified for Restore")
	}

	if rf, ok := ret.Get(0).(func(context.Context, string) (models.AppVersion, error)); ok {
		return rf(ctx, versionID)
	}

	r0 := ret.Get(0).(models.AppVersion)
	r1 := ret.Error(1)
	return r0, r1
}

// NewAppVersionService creates a new instance of AppVersionService. It also registers a cleanup function to assert the mocks expectations.
func NewAppVersionService(t interface {
	mock.TestingT
	Cleanup(func())
}) *AppVersionService {
	m := &AppVersionService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
