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
	"github.com/stretchr/testify/mock"
)

type TrashService struct {
	mock.Mock
}

func (_m *TrashService) ListDeletedApps(ctx context.Context) ([]models.App, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for ListDeletedApps")
	}

	if rf, ok := ret.Get(0).(func(context.Context) ([]models.App, error)); ok {
		return rf(ctx)
	}

	var r0 []models.App
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.App)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *TrashService) ListDeletedVersions(ctx context.Context) ([]models.DeletedAppVersion, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for ListDeletedVersions")
	}

	if rf, ok := ret.Get(0).(func(context.Context) ([]models.DeletedAppVersion, error)); ok {
		return rf(ctx)
	}

	var r0 []models.DeletedAppVersion
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.DeletedAppVersion)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *TrashService) EmptyTrash(ctx context.Context) (models.CleanupRun, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for EmptyTrash")
	}

	if rf, ok := ret.Get(0).(func(context.Context) (models.CleanupRun, error)); ok {
		return rf(ctx)
	}

	r0 := ret.Get(0).(models.CleanupRun)
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *TrashService) Cleanup(ctx context.Context, trigger models.CleanupTrigger) (models.CleanupRun, error) {
	ret := _m.Called(ctx, trigger)

	if len(ret) == 0 {
		panic("no return value specified for Cleanup")
	}

	if rf, ok := ret.Get(0).(func(context.Context, models.CleanupTrigger) (models.CleanupRun, error)); ok {
		return rf(ctx, trigger)
	}

	r0 := ret.Get(0).(models.CleanupRun)
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *TrashService) PurgeVersion(ctx context.Context, versionID string) error {
	ret := _m.Called(ctx, versionID)

	if len(ret) == 0 {
		panic("no return value specified for PurgeVersion")
	}

	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		return rf(ctx, versionID)
	}

	r0 := ret.Error(0)
	return r0
}

func (_m *TrashService) ListCleanupRuns(ctx context.Context, limit int) ([]models.CleanupRun, error) {
	ret := _m.Called(ctx, limit)

	if len(ret) == 0 {
		panic("no return value specified for ListCleanupRuns")
	}

	if rf, ok := ret.Get(0).(func(context.Context, int) ([]models.CleanupRun, error)); ok {
		return rf(ctx, limit)
	}

	var r0 []models.CleanupRun
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.CleanupRun)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *TrashService) RetentionDays() int {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for RetentionDays")
	}

	if rf, ok := ret.Get(0).(func() int); ok {
		return rf()
	}

	r0 := ret.Get(0).(int)
	return r0
}

// NewTrashService creates a new instance of TrashService. It also registers a cleanup function to assert the mocks expectations.
func NewTrashService(t interface {
	mock.TestingT
	Cleanup(func())
}) *TrashService {
	m := &TrashService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
