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

package integrationtestutil

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqliteSchema mirrors the postgres migrations closely enough for repository and service tests.
// The partial unique indexes are identical.
const sqliteSchema = `
CREATE TABLE apps (
    id          text PRIMARY KEY,
    app_id      text     NOT NULL,
    name        text     NOT NULL,
    publisher   text     NOT NULL,
    description text,
    category    text,
    created_at  datetime NOT NULL,
    updated_at  datetime NOT NULL,
    deleted_at  datetime
);
CREATE UNIQUE INDEX idx_apps_app_id ON apps (app_id);
CREATE TABLE app_versions (
    id                text PRIMARY KEY,
    version_id        text     NOT NULL,
    app_id            text     NOT NULL REFERENCES apps (id),
    version           text     NOT NULL,
    release_notes     text,
    detection_script  text,
    install_command   text,
    uninstall_command text,
    file_path         text,
    description       text,
    is_current        boolean  NOT NULL DEFAULT false,
    created_at        datetime NOT NULL,
    updated_at        datetime NOT NULL,
    deleted_at        datetime
);
CREATE UNIQUE INDEX idx_app_versions_version_id_active ON app_versions (version_id) WHERE deleted_at IS NULL;
CREATE UNIQUE INDEX idx_app_versions_one_current ON app_versions (app_id) WHERE is_current AND deleted_at IS NULL;
CREATE TABLE config (
    key text PRIMARY KEY,
    val text
);
CREATE TABLE trash_cleanup_runs (
    id               text PRIMARY KEY,
    trigger          text     NOT NULL,
    retention_days   integer,
    delete_before    datetime,
    started_at       datetime NOT NULL,
    finished_at      datetime,
    status           text     NOT NULL,
    deleted_apps     integer  NOT NULL DEFAULT 0,
    deleted_versions integer  NOT NULL DEFAULT 0,
    details          text
)
`

// NewSQLiteDB returns a gorm instance backed by a fresh sqlite file with foreign keys enabled.
func NewSQLiteDB(t testing.TB) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "applibrary.db")
	db, err := gorm.Open(gormlite.Open("file:"+path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		NowFunc:        func() time.Time { return time.Now().UTC() },
		TranslateError: true,
	})
	require.NoError(t, err)

	for _, stmt := range strings.Split(sqliteSchema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		require.NoError(t, db.Exec(stmt).Error)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}
