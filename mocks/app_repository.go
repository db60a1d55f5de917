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
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/applibrary/database/models"
	"github.com/l3montree-dev/applibrary/shared"
	"github.com/stretchr/testify/mock"
)

type AppRepository struct {
	mock.Mock
}

func (_m *AppRepository) Create(tx shared.DB, t *models.App) error {
	ret := _m.Called(tx, t)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	if rf, ok := ret.Get(0).(func(shared.DB, *models.App) error); ok {
		return rf(tx, t)
	}

	r0 := ret.Error(0)
	return r0
}

func (_m *AppRepository) Save(tx shared.DB, t *models.App) error {
	ret := _m.Called(tx, t)

	if len(ret) == 0 {
		panic("no return value specified for Save")
	}

	if rf, ok := ret.Get(0).(func(shared.DB, *models.App) error); ok {
		return rf(tx, t)
	}

	r0 := ret.Error(0)
	return r0
}

func (_m *AppRepository) Activate(tx shared.DB, id uuid.UUID) error {
	ret := _m.Called(tx, id)

	if len(ret) == 0 {
		panic("no return value specified for Activate")
	}

	if rf, ok := ret.Get(0).(func(shared.DB, uuid.UUID) error); ok {
		return rf(tx, id)
	}

	r0 := ret.Error(0)
	return r0
}

func (_m *AppRepository) Read(id uuid.UUID) (models.App, error) {
	ret := _m.Called(id)

	if len(ret) == 0 {
		panic("no return value specified for Read")
	}

	if rf, ok := ret.Get(0).(func(uuid.UUID) (models.App, error)); ok {
		return rf(id)
	}

	r0 := ret.Get(0).(models.App)
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *AppRepository) Transaction(f func(shared.DB) error) error {
	ret := _m.Called(f)

	if len(ret) == 0 {
		panic("no return value specified for Transaction")
	}

	if rf, ok := ret.Get(0).(func(func(shared.DB) error) error); ok {
		return rf(f)
	}

	r0 := ret.Error(0)
	return r0
}

func (_m *AppRepository) GetDB(tx shared.DB) shared.DB {
	ret := _m.Called(tx)

	if len(ret) == 0 {
		panic("no return value specified for GetDB")
	}

	if rf, ok := ret.Get(0).(func(shared.DB) shared.DB); ok {
		return rf(tx)
	}

	var r0 shared.DB
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(shared.DB)
	}
	return r0
}

func (_m *AppRepository) ReadByAppID(tx shared.DB, appID string) (models.App, error) {
	ret := _m.Called(tx, appID)

	if len(ret) == 0 {
		panic("no return value specified for ReadByAppID")
	}

	if rf, ok := ret.Get(0).(func(shared.DB, string) (models.App, error)); ok {
		return rf(tx, appID)
	}

	r0 := ret.Get(0).(models.App)
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *AppRepository) ReadDeletedByAppID(tx shared.DB, appID string) (models.App, error) {
	ret := _m.Called(tx, appID)

	if len(ret) == 0 {
		panic("no return value specified for ReadDeletedByAppID")
	}

	if rf, ok := ret.Get(0).(func(shared.DB, string) (models.App, error)); ok {
		return rf(tx, appID)
	}

	r0 := ret.Get(0).(models.App)
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *AppRepository) ReadIncludingDeleted(tx shared.DB, id uuid.UUID) (models.App, error) {
	ret := _m.Called(tx, id)

	if len(ret) == 0 {
		panic("no return value specified for ReadIncludingDeleted")
	}

	if rf, ok := ret.Get(0).(func(shared.DB, uuid.UUID) (models.App, error)); ok {
		return rf(tx, id)
	}

	r0 := ret.Get(0).(models.App)
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *AppRepository) AppIDTaken(tx shared.DB, appID string) (bool, error) {
	ret := _m.Called(tx, appID)

	if len(ret) == 0 {
		panic("no return value specified for AppIDTaken")
	}

	if rf, ok := ret.Get(0).(func(shared.DB, string) (bool, error)); ok {
		return rf(tx, appID)
	}

	r0 := ret.Get(0).(bool)
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *AppRepository) ListActive(name string) ([]models.App, error) {
	ret := _m.Called(name)

	if len(ret) == 0 {
		panic("no return value specified for ListActive")
	}

	if rf, ok := ret.Get(0).(func(string) ([]models.App, error)); ok {
		return rf(name)
	}

	var r0 []models.App
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.App)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *AppRepository) ListDeleted() ([]models.App, error) {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for ListDeleted")
	}

	if rf, ok := ret.Get(0).(func() ([]models.App, error)); ok {
		return rf()
	}

	var r0 []models.App
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.App)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *AppRepository) Update(tx shared.DB, id uuid.UUID, updates map[string]any) error {
	ret := _m.Called(tx, id, updates)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	if rf, ok := ret.Get(0).(func(shared.DB, uuid.UUID, map[string]any) error); ok {
		return rf(tx, id, updates)
	}

	r0 := ret.Error(0)
	return r0
}

func (_m *AppRepository) SoftDelete(tx shared.DB, id uuid.UUID) error {
	ret := _m.Called(tx, id)

	if len(ret) == 0 {
		panic("no return value specified for SoftDelete")
	}

	if rf, ok := ret.Get(0).(func(shared.DB, uuid.UUID) error); ok {
		return rf(tx, id)
	}

	r0 := ret.Error(0)
	return r0
}

func (_m *AppRepository) PurgeDeleted(tx shared.DB, deletedBefore *time.Time) (int64, error) {
	ret := _m.Called(tx, deletedBefore)

	if len(ret) == 0 {
		panic("no return value specified for PurgeDeleted")
	}

	if rf, ok := ret.Get(0).(func(shared.DB, *time.Time) (int64, error)); ok {
		return rf(tx, deletedBefore)
	}

	r0 := ret.Get(0).(int64)
	r1 := ret.Error(1)
	return r0, r1
}

// NewAppRepository creates a new instance of AppRepository. It also registers a cleanup function to assert the mocks expectations.
func NewAppRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *AppRepository {
	m := &AppRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
