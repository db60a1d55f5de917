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

package commands

import (
	"bytes"
	"testing"
	"time"

	"github.com/l3montree-dev/applibrary/database/models"
	"github.com/l3montree-dev/applibrary/integrationtestutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestExportApps(t *testing.T) {
	db := integrationtestutil.NewSQLiteDB(t)

	vlc := integrationtestutil.CreateApp(t, db, "vlc-1a2b3c4d")
	integrationtestutil.CreateVersion(t, db, vlc, "3.0.9", false)
	integrationtestutil.CreateVersion(t, db, vlc, "3.0.21", true)
	trashedVersion := integrationtestutil.CreateVersion(t, db, vlc, "2.2.8", false)
	integrationtestutil.Trash(t, db, &models.AppVersion{}, trashedVersion.ID, time.Now())

	gimp := integrationtestutil.CreateApp(t, db, "gimp-5e6f7a8b")
	integrationtestutil.Trash(t, db, &models.App{}, gimp.ID, time.Now())

	var buf bytes.Buffer
	require.NoError(t, exportApps(db, &buf))

	var doc exportDocument
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))

	require.Len(t, doc.Apps, 1)
	app := doc.Apps[0]
	assert.Equal(t, "vlc-1a2b3c4d", app.AppID)
	require.Len(t, app.Versions, 2)
	assert.Equal(t, "3.0.21", app.Versions[0].Version)
	assert.True(t, app.Versions[0].IsCurrent)
	assert.Equal(t, "3.0.9", app.Versions[1].Version)
}

func TestExportAppsWithoutApps(t *testing.T) {
	db := integrationtestutil.NewSQLiteDB(t)

	var buf bytes.Buffer
	require.NoError(t, exportApps(db, &buf))
	assert.Equal(t, "apps: []\n", buf.String())
}
