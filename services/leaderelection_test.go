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

package services

import (
	"testing"
	"time"

	"github.com/l3montree-dev/applibrary/database/repositories"
	"github.com/l3montree-dev/applibrary/integrationtestutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaderElection(t *testing.T) {
	db := integrationtestutil.NewSQLiteDB(t)
	configService := NewConfigService(repositories.NewConfigRepository(db))

	now := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	first := newDatabaseLeaderElector(configService)
	first.now = clock
	second := newDatabaseLeaderElector(configService)
	second.now = clock

	isLeader, err := first.checkIfLeader()
	require.NoError(t, err)
	assert.True(t, isLeader, "the first instance takes over an empty election")

	isLeader, err = second.checkIfLeader()
	require.NoError(t, err)
	assert.False(t, isLeader)

	// the leader keeps its lease alive
	now = now.Add(5 * time.Minute)
	isLeader, err = first.checkIfLeader()
	require.NoError(t, err)
	assert.True(t, isLeader)

	now = now.Add(5 * time.Minute)
	isLeader, err = second.checkIfLeader()
	require.NoError(t, err)
	assert.False(t, isLeader)

	// the leader died
	now = now.Add(leaderTimeout + time.Second)
	isLeader, err = second.checkIfLeader()
	require.NoError(t, err)
	assert.True(t, isLeader)

	isLeader, err = first.checkIfLeader()
	require.NoError(t, err)
	assert.False(t, isLeader)
}
