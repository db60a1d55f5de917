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

package tracing

import (
	"context"
	"testing"

	"github.com/l3montree-dev/applibrary/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTracerProvider(t *testing.T) {
	t.Run("should work without an exporter", func(t *testing.T) {
		tp, err := NewTracerProvider(context.Background(), config.TracingConfig{ServiceName: "applibrary"})
		require.NoError(t, err)
		defer tp.Shutdown(context.Background()) // nolint:errcheck

		_, span := Tracer.Start(context.Background(), "test")
		defer span.End()
		assert.True(t, span.SpanContext().IsValid())
	})

	t.Run("should reject unknown exporters", func(t *testing.T) {
		_, err := NewTracerProvider(context.Background(), config.TracingConfig{Exporter: "zipkin"})
		assert.Error(t, err)
	})
}
