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

type AppVersionRepository struct {
	mock.Mock
}

func (_m *AppVersionRepository) Create(tx shared.DB, t *models.AppVersion) error {
	ret := _m.Called(tx, t)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	if rf, ok := ret.Get(0).(func(shared.DB, *models.AppVersion) error); ok {
		return rf(tx, t)
	}

	r0 := ret.Error(0)
	return r0
}

func (_m *AppVersionRepository) Save(tx shared.DB, t *models.AppVersion) error {
	ret := _m.Called(tx, t)

	if len(ret) == 0 {
		panic("no return value specified for Save")
	}

	if rf, ok := ret.Get(0).(func(shared.DB, *models.AppVersion) error); ok {
		return rf(tx, t)
	}

	r0 := ret.Error(0)
	return r0
}

func (_m *AppVersionRepository) Activate(tx shared.DB, id uuid.UUID) error {
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

func (_m *AppVersionRepository) Read(id uuid.UUID) (models.AppVersion, error) {
	ret := _m.Called(id)

	if len(ret) == 0 {
		panic("no return value specified for Read")
	}

	if rf, ok := ret.Get(0).(func(uuid.UUID) (models.AppVersion, error)); ok {
		return rf(id)
	}

	r0 := ret.Get(0).(models.AppVersion)
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *AppVersionRepository) Transaction(f func(shared.DB) error) error {
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

func (_m *AppVersionRepository) GetDB(tx shared.DB) shared.DB {
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

func (_m *AppVersionRepository) ReadByVersionID(tx shared.DB, versionID string) (models.AppVersion, error) {
	ret := _m.Called(tx, versionID)

	if len(ret) == 0 {
		panic("no return value specified for ReadByVersionID")
	}

	if rf, ok := ret.Get(0).(func(shared.DB, string) (models.AppVersion, error)); ok {
		return rf(tx, versionID)
	}

	r0 := ret.Get(0).(models.AppVersion)
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *AppVersionRepository) ReadDeletedByVersionID(tx shared.DB, versionID string) (models.AppVersion, error) {
	ret := _m.Called(tx, versionID)

	if len(ret) == 0 {
		panic("no return value specified for ReadDeletedByVersionID")
	}

	if rf, ok := ret.Get(0).(func(shared.DB, string) (models.AppVersion, error)); ok {
		return rf(tx, versionID)
	}

	r0 := ret.Get(0).(models.AppVersion)
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *AppVersionRepository) VersionIDExists(tx shared.DB, versionID string) (bool, error) {
	ret := _m.Called(tx, versionID)

	if len(ret) == 0 {
		panic("no return value specified for VersionIDExists")
	}

	if rf, ok := ret.Get(0).(func(shared.DB, string) (bool, error)); ok {
		return rf(tx, versionID)
	}

	r0 := ret.Get(0).(bool)
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *AppVersionRepository) ListByApp(tx shared.DB, appID uuid.UUID) ([]models.AppVersion, error) {
	ret := _m.Called(tx, appID)

	if len(ret) == 0 {
		panic("no return value specified for ListByApp")
	}

	if rf, ok := ret.Get(0).(func(shared.DB, uuid.UUID) ([]models.AppVersion, error)); ok {
		return rf(tx, appID)
	}

	var r0 []models.AppVersion
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.AppVersion)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *AppVersionRepository) ListDeleted() ([]models.DeletedAppVersion, error) {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for ListDeleted")
	}

	if rf, ok := ret.Get(0).(func() ([]models.DeletedAppVersion, error)); ok {
		return rf()
	}

	var r0 []models.DeletedAppVersion
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.DeletedAppVersion)
	}
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *AppVersionRepository) UnsetCurrentSiblings(tx shared.DB, appID uuid.UUID, exceptID uuid.UUID) (int64, error) {
	ret := _m.Called(tx, appID, exceptID)

	if len(ret) == 0 {
		panic("no return value specified for UnsetCurrentSiblings")
	}

	if rf, ok := ret.Get(0).(func(shared.DB, uuid.UUID, uuid.UUID) (int64, error)); ok {
		return rf(tx, appID, exceptID)
	}

	r0 := ret.Get(0).(int64)
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *AppVersionRepository) SetCurrent(tx shared.DB, id uuid.UUID) error {
	ret := _m.Called(tx, id)

	if len(ret) == 0 {
		panic("no return value specified for SetCurrent")
	}

	if rf, ok := ret.Get(0).(func(shared.DB, uuid.UUID) error); ok {
		return rf(tx, id)
	}

	r0 := ret.Error(0)
	return r0
}

func (_m *AppVersionRepository) HasCurrentSibling(tx shared.DB, appID uuid.UUID, exceptID uuid.UUID) (bool, error) {
	ret := _m.Called(tx, appID, exceptID)

	if len(ret) == 0 {
		panic("no return value specified for HasCurrentSibling")
	}

	if rf, ok := ret.Get(0).(func(shared.DB, uuid.UUID, uuid.UUID) (bool, error)); ok {
		return rf(tx, appID, exceptID)
	}

	r0 := ret.Get(0).(bool)
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *AppVersionRepository) Update(tx shared.DB, id uuid.UUID, updates map[string]any) (int64, error) {
	ret := _m.Called(tx, id, updates)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	if rf, ok := ret.Get(0).(func(shared.DB, uuid.UUID, map[string]any) (int64, error)); ok {
		return rf(tx, id, updates)
	}

	r0 := ret.Get(0).(int64)
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *AppVersionRepository) SoftDelete(tx shared.DB, id uuid.UUID) error {
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

func (_m *AppVersionRepository) Restore(tx shared.DB, id uuid.UUID, isCurrent bool) error {
	ret := _m.Called(tx, id, isCurrent)

	if len(ret) == 0 {
		panic("no return value specified for Restore")
	}

	if rf, ok := ret.Get(0).(func(shared.DB, uuid.UUID, bool) error); ok {
		return rf(tx, id, isCurrent)
	}

	r0 := ret.Error(0)
	return r0
}

func (_m *AppVersionRepository) PurgeDeleted(tx shared.DB, deletedBefore *time.Time) (int64, error) {
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

func (_m *AppVersionRepository) PurgeDeletedByVersionID(tx shared.DB, versionID string) (int64, error) {
	ret := _m.Called(tx, versionID)

	if len(ret) == 0 {
		panic("no return value specified for PurgeDeletedByVersionID")
	}

	if rf, ok := ret.Get(0).(func(shared.DB, string) (int64, error)); ok {
		return rf(tx, versionID)
	}

	r0 := ret.Get(0).(int64)
	r1 := ret.Error(1)
	return r0, r1
}

// NewAppVersionRepository creates a new instance of AppVersionRepository. It also registers a cleanup function to assert the mocks expectations.
func NewAppVersionRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *AppVersionRepository {
	m := &AppVersionRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
