/*
 * @license
 * Copyright 2025 Dynatrace LLC
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package log

import (
	"context"
	"log/slog"
	"os"

	"github.com/Dynatrace/OneAgent-SDK-for-Go/sdk"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	"go.opentelemetry.io/otel/log/global"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.20.0"

	"github.com/dynatrace/sendgrid-manager/pkg/version"
)

const (
	// envVarOtelAPIHost holds only the host part of the OTLP endpoint.
	envVarOtelAPIHost = "SENDGRID_MANAGER_OTEL_API_HOST"
	envVarOtelToken   = "SENDGRID_MANAGER_OTEL_API_TOKEN"

	otelLogsPath = "/api/v2/otlp/v1/logs"
)

// initOpenTelemetryHandler returns a handler exporting log records via OTLP/HTTP, or nil if no endpoint is configured
// or the exporter can not be set up.
func initOpenTelemetryHandler(ctx context.Context) slog.Handler {
	host := os.Getenv(envVarOtelAPIHost)
	token := os.Getenv(envVarOtelToken)

	if host == "" || token == "" {
		return nil
	}

	oneagentsdk := sdk.CreateInstance()

	var attributes []attribute.KeyValue
	for k, v := range oneagentsdk.GetEnrichmentMetadata() {
		attributes = append(attributes, attribute.String(k, v))
	}
	attributes = append(attributes,
		semconv.ServiceNameKey.String(version.ApplicationName),
		semconv.ServiceVersionKey.String(version.Version),
	)

	res, err := resource.New(ctx, resource.WithAttributes(attributes...))
	if err != nil {
		Warn("Failed to create OpenTelemetry resource, log export is disabled: %s", err)
		return nil
	}

	exporter, err := otlploghttp.New(
		ctx,
		otlploghttp.WithEndpoint(host),
		otlploghttp.WithURLPath(otelLogsPath),
		otlploghttp.WithHeaders(map[string]string{"Authorization": "Api-Token " + token}),
	)
	if err != nil {
		Warn("Failed to create OTLP log exporter, log export is disabled: %s", err)
		return nil
	}

	lp := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewSimpleProcessor(exporter)),
		sdklog.WithResource(res),
	)
	global.SetLoggerProvider(lp)

	return otelslog.NewHandler(version.ApplicationName, otelslog.WithLoggerProvider(lp))
}
