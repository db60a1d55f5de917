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

package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("should fall back to the defaults", func(t *testing.T) {
		cfg, err := Load(nil)
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, 30, cfg.Trash.RetentionDays)
		assert.Equal(t, "@daily", cfg.Trash.CleanupSchedule)
		assert.Equal(t, 24*time.Hour, cfg.Storage.SignedURLTTL)
		assert.Equal(t, int32(25), cfg.Database.MaxOpenConns)
		assert.Equal(t, []string{"*"}, cfg.CORSAllowOrigins)
	})

	t.Run("should read values from the environment", func(t *testing.T) {
		t.Setenv("TRASH_RETENTION_DAYS", "7")
		t.Setenv("STORAGE_SIGNED_URL_TTL", "30m")
		t.Setenv("STORAGE_BUCKET", "installers")
		t.Setenv("POSTGRES_HOST", "db.internal")
		t.Setenv("DB_CONN_MAX_IDLE_TIME", "1m")
		t.Setenv("CORS_ALLOW_ORIGINS", "https://admin.example.com,http://localhost:3000")

		cfg, err := Load(nil)
		require.NoError(t, err)

		assert.Equal(t, 7, cfg.Trash.RetentionDays)
		assert.Equal(t, 30*time.Minute, cfg.Storage.SignedURLTTL)
		assert.Equal(t, "installers", cfg.Storage.Bucket)
		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, time.Minute, cfg.Database.ConnMaxIdleTime)
		assert.Equal(t, []string{"https://admin.example.com", "http://localhost:3000"}, cfg.CORSAllowOrigins)
	})

	t.Run("should prefer annotated flags over the environment", func(t *testing.T) {
		t.Setenv("TRASH_RETENTION_DAYS", "7")

		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		flags.Int("retention-days", 0, "")
		require.NoError(t, flags.SetAnnotation("retention-days", FlagAnnotation, []string{"TRASH_RETENTION_DAYS"}))
		require.NoError(t, flags.Parse([]string{"--retention-days=3"}))

		cfg, err := Load(flags)
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Trash.RetentionDays)
	})

	t.Run("should reject a negative retention window", func(t *testing.T) {
		t.Setenv("TRASH_RETENTION_DAYS", "-1")

		_, err := Load(nil)
		assert.Error(t, err)
	})
}
