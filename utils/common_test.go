// Copyright (C) 2024 Tim Bastin, l3montree GmbH
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

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyThenNil(t *testing.T) {
	assert.Nil(t, EmptyThenNil(""))
	assert.Nil(t, EmptyThenNil("   "))
	assert.Equal(t, "winget", *EmptyThenNil("  winget "))
}

func TestTrimmedOrNil(t *testing.T) {
	assert.Nil(t, TrimmedOrNil(nil))
	assert.Nil(t, TrimmedOrNil(Ptr(" ")))
	assert.Equal(t, "msiexec /i", *TrimmedOrNil(Ptr("msiexec /i ")))
}

func TestOrDefault(t *testing.T) {
	assert.Equal(t, 3, OrDefault(nil, 3))
	assert.Equal(t, 5, OrDefault(Ptr(5), 3))
	assert.Equal(t, "", SafeDereference(nil))
}
