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

type AppService struct {
	mock.Mock
}

func (_m *AppService) List(ctx context.Context, name string) ([]models.App, error) {
	ret := _m.Called(ctx, name)

	if len(ret) == 0 {
		panic("no return value specified for List")
	}

	if rf, ok := ret.Get(0).(func(context.Context, string) ([]models.App, error)); ok {
		return rf(ctx, name)
	}

	var r0 []models.App
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.App)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *AppService) Read(ctx context.Context, appID string) (models.App, error) {
	ret := _m.Called(ctx, appID)

	if len(ret) == 0 {
		panic("no return value specified for Read")
	}

	if rf, ok := ret.Get(0).(func(context.Context, string) (models.App, error)); ok {
		return rf(ctx, appID)
	}

	r0 := ret.Get(0).(models.App)
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *AppService) Create(ctx context.Context, req dtos.AppCreateRequest) (models.App, error) {
	ret := _m.Called(ctx, req)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	if rf, ok := ret.Get(0).(func(context.Context, dtos.AppCreateRequest) (models.App, error)); ok {
		return rf(ctx, req)
	}

	r0 := ret.Get(0).(models.App)
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *AppService) Update(ctx context.Context, appID string, req dtos.AppPatchRequest) (models.App, error) {
	ret := _m.Called(ctx, appID, req)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	if rf, ok := ret.Get(0).(func(context.Context, string, dtos.AppPatchRequest) (models.App, error)); ok {
		return rf(ctx, appID, req)
	}

	r0 := ret.Get(0).(models.App)
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *AppService) SoftDelete(ctx context.Context, appID string) error {
	ret := _m.Called(ctx, appID)

	if len(ret) == 0 {
		panic("no return value specified for SoftDelete")
	}

	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		return rf(ctx, appID)
	}

	r0 := ret.Error(0)
	return r0
}

func (_m *AppService) Restore(ctx context.Context, appID string) (models.App, error) {
	ret := _m.Called(ctx, appID)

	if len(ret) == 0 {
		panic("no return value specified for Restore")
	}

	if rf, ok := ret.Get(0).(func(context.Context, string) (models.App, error)); ok {
		return rf(ctx, appID)
	}

	r0 := ret.Get(0).(models.App)
	r1 := ret.Error(1)
	return r0, r1
}

// NewAppService creates a new instance of AppService. It also registers a cleanup function to assert the mocks expectations.
func NewAppService(t interface {
	mock.TestingT
	Cleanup(func())
}) *AppService {
	m := &AppService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
