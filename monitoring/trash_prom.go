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

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var TrashCleanupRuns = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "applibrary_trash_cleanup_runs_total",
	Help: "The total number of trash cleanup runs by trigger and outcome",
}, []string{"trigger", "status"})

var TrashPurgedRows = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "applibrary_trash_purged_rows_total",
	Help: "The total number of hard deleted rows",
}, []string{"table"})

var TrashCleanupDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "applibrary_trash_cleanup_duration_seconds",
	Help:    "Duration of trash cleanup runs in seconds",
	Buckets: prometheus.DefBuckets,
})
