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
	"github.com/stretchr/testify/mock"
)

type ConfigService struct {
	mock.Mock
}

func (_m *ConfigService) GetJSONConfig(key string, v any) error {
	ret := _m.Called(key, v)

	if len(ret) == 0 {
		panic("no return value specified for GetJSONConfig")
	}

	if rf, ok := ret.Get(0).(func(string, any) error); ok {
		return rf(key, v)
	}

	r0 := ret.Error(0)
	return r0
}

func (_m *ConfigService) SetJSONConfig(key string, v any) error {
	ret := _m.Called(key, v)

	if len(ret) == 0 {
		panic("no return value specified for SetJSONConfig")
	}

	if rf, ok := ret.Get(0).(func(string, any) error); ok {
		return rf(key, v)
	}

	r0 := ret.Error(0)
	return r0
}

// NewConfigService creates a new instance of ConfigService. It also registers a cleanup function to assert the mocks expectations.
func NewConfigService(t interface {
	mock.TestingT
	Cleanup(func())
}) *ConfigService {
	m := &ConfigService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
