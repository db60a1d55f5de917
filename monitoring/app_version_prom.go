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

// CurrentFlagFailures counts versions which were stored but could not be marked as current.
var CurrentFlagFailures = promauto.NewCounter(prometheus.CounterOpts{
	Name: "applibrary_current_flag_failures_total",
	Help: "The total number of failed attempts to mark a freshly created version as current",
})

var ObjectStoreOperations = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "applibrary_object_store_operations_total",
	Help: "The total number of object store operations by operation and outcome",
}, []string{"operation", "status"})

var SignedURLCacheHits = promauto.NewCounter(prometheus.CounterOpts{
	Name: "applibrary_signed_url_cache_hits_total",
	Help: "The total number of signed urls served from the cache",
})
