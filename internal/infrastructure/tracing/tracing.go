package tracing

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

const serviceName = "artisan-marketplace"

// InitTracing wires an OTLP/HTTP exporter for the marketplace service. The
// environment label separates demo deployments from local runs in the
// collector; spans themselves are opened per request in the app bootstrap.
func InitTracing(collectorHost, environment string) (*trace.TracerProvider, error) {
	exporter, err := otlptrace.New(
		context.Background(),
		otlptracehttp.NewClient(
			otlptracehttp.WithEndpoint(fmt.Sprintf("%s:4318", collectorHost)),
			otlptracehttp.WithInsecure(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP trace exporter: %w", err)
	}

	attributes := []attribute.KeyValue{
		semconv.ServiceNameKey.String(serviceName),
	}
	if environment != "" {
		attributes = append(attributes, semconv.DeploymentEnvironmentKey.String(environment))
	}

	tracerProvider := trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithResource(
			resource.NewWithAttributes(semconv.SchemaURL, attributes...),
		),
	)

	otel.SetTracerProvider(tracerProvider)

	return tracerProvider, nil
}

func ServiceName() string {
	return serviceName
}
