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
	"io"
	"time"
	"github.com/stretchr/testify/mock"
)

type ObjectStore struct {
	mock.Mock
}

func (_m *ObjectStore) Upload(ctx context.Context, path string, contentType string, body io.Reader, size int64) (string, error) {
	ret := _m.Called(ctx, path, contentType, body, size)

	if len(ret) == 0 {
		panic("no return value specified for Upload")
	}

	if rf, ok := ret.Get(0).(func(context.Context, string, string, io.Reader, int64) (string, error)); ok {
		return rf(ctx, path, contentType, body, size)
	}

	r0 := ret.Get(0).(string)
	r1 := ret.Error(1)
	return r0, r1
}

func (_m *ObjectStore) Delete(ctx context.Context, path string) error {
	ret := _m.Called(ctx, path)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		return rf(ctx, path)
	}

	r0 := ret.Error(0)
	return r0
}

func (_m *ObjectStore) SignedURL(ctx context.Context, path string) (string, time.Time, error) {
	ret := _m.Called(ctx, path)

	if len(ret) == 0 {
		panic("no return value specified for SignedURL")
	}

	if rf, ok := ret.Get(0).(func(context.Context, string) (string, time.Time, error)); ok {
		return rf(ctx, path)
	}

	r0 := ret.Get(0).(string)
	r1 := ret.Get(1).(time.Time)
	r2 := ret.Error(2)
	return r0, r1, r2
}

// NewObjectStore creates a new instance of ObjectStore. It also registers a cleanup function to assert the mocks expectations.
func NewObjectStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *ObjectStore {
	m := &ObjectStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
