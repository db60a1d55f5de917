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

package daemons

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/l3montree-dev/applibrary/config"
	"github.com/l3montree-dev/applibrary/database/models"
	"github.com/l3montree-dev/applibrary/monitoring"
	"github.com/l3montree-dev/applibrary/shared"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const lastCleanupKey = "trash.cleanup"

// a leader change shortly after a sweep must not trigger a second one
const minCleanupInterval = time.Hour

type lastCleanup struct {
	Time   time.Time            `json:"time"`
	RunID  string               `json:"runId"`
	Status models.CleanupStatus `json:"status"`
}

// TrashCleanupDaemon runs the retention sweep on a cron schedule.
// Every instance schedules the job, only the leader executes it.
type TrashCleanupDaemon struct {
	trashService  shared.TrashService
	leaderElector shared.LeaderElector
	configService shared.ConfigService

	now func() time.Time
}

func NewTrashCleanupDaemon(trashService shared.TrashService, leaderElector shared.LeaderElector, configService shared.ConfigService) *TrashCleanupDaemon {
	return &TrashCleanupDaemon{
		trashService:  trashService,
		leaderElector: leaderElector,
		configService: configService,
		now:           time.Now,
	}
}

func (d *TrashCleanupDaemon) lastRun() (time.Time, error) {
	var last lastCleanup
	err := d.configService.GetJSONConfig(lastCleanupKey, &last)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return time.Time{}, nil
	}
	return last.Time, err
}

func (d *TrashCleanupDaemon) markRun(run models.CleanupRun) error {
	return d.configService.SetJSONConfig(lastCleanupKey, lastCleanup{
		Time:   d.now().UTC(),
		RunID:  run.ID.String(),
		Status: run.Status,
	})
}

// RunOnce executes a single sweep if this instance is the leader and the last sweep is old enough.
// It reports whether a sweep was attempted.
func (d *TrashCleanupDaemon) RunOnce(ctx context.Context) bool {
	if !d.leaderElector.IsLeader() {
		slog.Debug("not the leader, skipping trash cleanup")
		return false
	}

	last, err := d.lastRun()
	if err != nil {
		slog.Error("could not get last trash cleanup time", "err", err)
		return false
	}
	if d.now().Sub(last) < minCleanupInterval {
		slog.Info("trash cleanup ran recently, skipping", "lastRun", last)
		return false
	}

	start := d.now()
	run, err := d.trashService.Cleanup(ctx, models.CleanupTriggerSchedule)
	if err != nil {
		monitoring.Alert("scheduled trash cleanup failed", err)
	} else {
		slog.Info("scheduled trash cleanup finished", "deletedApps", run.DeletedApps, "deletedVersions", run.DeletedVersions, "duration", time.Since(start))
	}

	// failed runs are marked too, the next attempt waits for the following schedule
	if err := d.markRun(run); err != nil {
		slog.Error("could not mark trash cleanup as done", "err", err)
	}
	return true
}

type slogCronLogger struct{}

func (slogCronLogger) Info(msg string, keysAndValues ...any) {
	slog.Debug("cron: "+msg, keysAndValues...)
}

func (slogCronLogger) Error(err error, msg string, keysAndValues ...any) {
	monitoring.Alert("cron: "+msg, err, keysAndValues...)
}

// NewScheduler registers the cleanup job. An empty schedule disables it.
func NewScheduler(cfg config.Config, daemon *TrashCleanupDaemon) (*cron.Cron, error) {
	logger := slogCronLogger{}
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)

	schedule := cfg.Trash.CleanupSchedule
	if schedule == "" {
		slog.Info("trash cleanup schedule is empty, scheduled cleanup disabled")
		return c, nil
	}

	if _, err := c.AddFunc(schedule, func() {
		daemon.RunOnce(context.Background())
	}); err != nil {
		return nil, err
	}
	slog.Info("scheduled trash cleanup", "schedule", schedule, "retentionDays", cfg.Trash.RetentionDays)
	return c, nil
}

func startScheduler(lc fx.Lifecycle, runner shared.DaemonRunner) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			runner.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			select {
			case <-runner.Stop().Done():
			case <-ctx.Done():
			}
			return nil
		},
	})
}

var Module = fx.Module("daemons",
	fx.Provide(NewTrashCleanupDaemon),
	fx.Provide(fx.Annotate(NewScheduler, fx.As(new(shared.DaemonRunner)))),
	fx.Invoke(startScheduler),
)
