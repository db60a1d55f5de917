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

package router

import (
	"database/sql"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/applibrary/config"
	"github.com/l3montree-dev/applibrary/database"
	"github.com/l3montree-dev/applibrary/middlewares"
	"github.com/l3montree-dev/applibrary/shared"
	"github.com/labstack/echo/v4"
)

type InfoResponse struct {
	Build    BuildInfo    `json:"build"`
	Runtime  RuntimeInfo  `json:"runtime"`
	Process  ProcessInfo  `json:"process"`
	Database DatabaseInfo `json:"database"`
}

type BuildInfo struct {
	Version   string `json:"version,omitempty"`
	Commit    string `json:"commit,omitempty"`
	Branch    string `json:"branch,omitempty"`
	BuildDate string `json:"buildDate,omitempty"`
}

type ProcessInfo struct {
	PID           int    `json:"pid"`
	Hostname      string `json:"hostname,omitempty"`
	UptimeSeconds int    `json:"uptimeSeconds"`
}

type RuntimeInfo struct {
	GoVersion     string   `json:"goVersion,omitempty"`
	NumGoroutines int      `json:"numGoroutines,omitempty"`
	Mem           MemStats `json:"mem"`
}

// MemStats focuses on a small, relevant subset of runtime.MemStats
type MemStats struct {
	Alloc      uint64 `json:"alloc"`
	TotalAlloc uint64 `json:"totalAlloc"`
	Sys        uint64 `json:"sys"`
	HeapAlloc  uint64 `json:"heapAlloc"`
}

// PoolInfo exposes the pool limits and runtime stats, never credentials.
type PoolInfo struct {
	DBName          string `json:"dbName,omitempty"`
	MaxOpenConns    int32  `json:"maxOpenConns,omitempty"`
	ConnMaxLifetime string `json:"connMaxLifetime,omitempty"`
	ConnMaxIdleTime string `json:"connMaxIdleTime,omitempty"`

	TotalConns    int `json:"totalConns"`
	IdleConns     int `json:"idleConns"`
	AcquiredConns int `json:"acquiredConns"`
	MaxConns      int `json:"maxConns"`
}

type DatabaseInfo struct {
	Status string  `json:"status"`
	Error  *string `json:"error,omitempty"`

	MigrationVersion *uint   `json:"migrationVersion,omitempty"`
	MigrationDirty   *bool   `json:"migrationDirty,omitempty"`
	MigrationError   *string `json:"migrationError,omitempty"`

	// set when no pgx pool backs the connection
	Stats *sql.DBStats `json:"stats,omitempty"`
	Pool  *PoolInfo    `json:"pool,omitempty"`
}

func infoHandler(db shared.DB, pool *pgxpool.Pool, cfg config.Config) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		var mem runtime.MemStats
		runtime.ReadMemStats(&mem)

		resp := InfoResponse{
			Build: BuildInfo{
				Version:   config.Version,
				Commit:    config.Commit,
				Branch:    config.Branch,
				BuildDate: config.BuildDate,
			},
			Runtime: RuntimeInfo{
				GoVersion:     runtime.Version(),
				NumGoroutines: runtime.NumGoroutine(),
				Mem: MemStats{
					Alloc:      mem.Alloc,
					TotalAlloc: mem.TotalAlloc,
					Sys:        mem.Sys,
					HeapAlloc:  mem.HeapAlloc,
				},
			},
			Process: ProcessInfo{
				PID:           os.Getpid(),
				UptimeSeconds: int(time.Since(middlewares.StartedAt).Seconds()),
			},
			Database: databaseInfo(ctx, db, pool, cfg.Database),
		}

		if host, _ := os.Hostname(); host != "" {
			resp.Process.Hostname = host
		}

		return ctx.JSON(http.StatusOK, resp)
	}
}

func databaseInfo(ctx echo.Context, db shared.DB, pool *pgxpool.Pool, poolCfg database.PoolConfig) DatabaseInfo {
	fail := func(msg string) DatabaseInfo {
		return DatabaseInfo{Status: "unhealthy", Error: &msg}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fail("failed to get database instance")
	}
	if err := sqlDB.PingContext(ctx.Request().Context()); err != nil {
		return fail("database ping failed")
	}

	info := DatabaseInfo{Status: "healthy"}
	if pool != nil {
		stats := pool.Stat()
		info.Pool = &PoolInfo{
			DBName:          poolCfg.DBName,
			MaxOpenConns:    poolCfg.MaxOpenConns,
			ConnMaxLifetime: poolCfg.ConnMaxLifetime.String(),
			ConnMaxIdleTime: poolCfg.ConnMaxIdleTime.String(),
			TotalConns:      int(stats.TotalConns()),
			IdleConns:       int(stats.IdleConns()),
			AcquiredConns:   int(stats.AcquiredConns()),
			MaxConns:        int(stats.MaxConns()),
		}
	} else {
		stats := sqlDB.Stats()
		info.Stats = &stats
	}

	if ver, dirty, err := database.GetMigrationVersionWithDB(db); err == nil {
		info.MigrationVersion = &ver
		info.MigrationDirty = &dirty
	} else {
		errStr := err.Error()
		info.MigrationError = &errStr
	}
	return info
}
