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

type LeaderElector struct {
	mock.Mock
}

func (_m *LeaderElector) IsLeader() bool {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for IsLeader")
	}

	if rf, ok := ret.Get(0).(func() bool); ok {
		return rf()
	}

	r0 := ret.Get(0).(bool)
	return r0
}

// NewLeaderElector creates a new instance of LeaderElector. It also registers a cleanup function to assert the mocks expectations.
func NewLeaderElector(t interface {
	mock.TestingT
	Cleanup(func())
}) *LeaderElector {
	m := &LeaderElector{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
