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
	"fmt"
	"log/slog"
	"os"

	"github.com/l3montree-dev/applibrary/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

const (
	ExporterNone     = ""
	ExporterOTLPHTTP = "otlp-http"
	ExporterOTLPGRPC = "otlp-grpc"
	ExporterStdout   = "stdout"
)

// Tracer is used by the services to wrap the database heavy operations into spans.
var Tracer trace.Tracer = otel.Tracer("github.com/l3montree-dev/applibrary")

func newExporter(ctx context.Context, kind string) (sdktrace.SpanExporter, error) {
	// the otlp exporters read OTEL_EXPORTER_OTLP_ENDPOINT and friends on their own
	switch kind {
	case ExporterOTLPHTTP:
		return otlptracehttp.New(ctx)
	case ExporterOTLPGRPC:
		return otlptracegrpc.New(ctx)
	case ExporterStdout:
		return stdouttrace.New(stdouttrace.WithWriter(os.Stdout), stdouttrace.WithPrettyPrint())
	default:
		return nil, fmt.Errorf("unknown trace exporter %q", kind)
	}
}

// NewTracerProvider installs the global tracer provider.
// Without a configured exporter spans are still created but never exported.
func NewTracerProvider(ctx context.Context, cfg config.TracingConfig) (*sdktrace.TracerProvider, error) {
	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(resource.NewSchemaless(
			attribute.String("service.name", cfg.ServiceName),
			attribute.String("service.version", config.Version),
		)),
	}

	if cfg.Exporter != ExporterNone {
		exporter, err := newExporter(ctx, cfg.Exporter)
		if err != nil {
			return nil, err
		}
		opts = append(opts, sdktrace.WithBatcher(exporter))
		slog.Info("tracing enabled", "exporter", cfg.Exporter, "service", cfg.ServiceName)
	}

	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	return tp, nil
}

func provideTracerProvider(lc fx.Lifecycle, cfg config.Config) (*sdktrace.TracerProvider, error) {
	tp, err := NewTracerProvider(context.Background(), cfg.Tracing)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return tp.Shutdown(ctx)
		},
	})
	return tp, nil
}

var Module = fx.Module("tracing",
	fx.Provide(provideTracerProvider),
	// force construction so the global provider is set before the server starts
	fx.Invoke(func(*sdktrace.TracerProvider) {}),
)
