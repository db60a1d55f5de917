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
	"github.com/l3montree-dev/applibrary/database/models"
	"github.com/l3montree-dev/applibrary/shared"
	"github.com/stretchr/testify/mock"
)

type CleanupRunRepository struct {
	mock.Mock
}

func (_m *CleanupRunRepository) Create(tx shared.DB, run *models.CleanupRun) error {
	ret := _m.Called(tx, run)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	if rf, ok := ret.Get(0).(func(shared.DB, *models.CleanupRun) error); ok {
		return rf(tx, run)
	}

	r0 := ret.Error(0)
	return r0
}

func (_m *CleanupRunRepository) Save(tx shared.DB, run *models.CleanupRun) error {
	ret := _m.Called(tx, run)

	if len(ret) == 0 {
		panic("no return value specified for Save")
	}

	if rf, ok := ret.Get(0).(func(shared.DB, *models.CleanupRun) error); ok {
		return rf(tx, run)
	}

	r0 := ret.Error(0)
	return r0
}

func (_m *CleanupRunRepository) ListRecent(limit int) ([]models.CleanupRun, error) {
	ret := _m.Called(limit)

	if len(ret) == 0 {
		panic("no return value specified for ListRecent")
	}

	if rf, ok := ret.Get(0).(func(int) ([]models.CleanupRun, error)); ok {
		return rf(limit)
	}

	var r0 []models.CleanupRun
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.CleanupRun)
	}
	r1 := ret.Error(1)
	return r0, r1
}

// NewCleanupRunRepository creates a new instance of CleanupRunRepository. It also registers a cleanup function to assert the mocks expectations.
func NewCleanupRunRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *CleanupRunRepository {
	m := &CleanupRunRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
