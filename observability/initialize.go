// Copyright (c) 2025 TravelDesk Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package observability

import (
	"context"
	"errors"
	"sync"

	"github.com/traveldesk/traveldesk-go/configs"
	"github.com/traveldesk/traveldesk-go/log"

	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

var (
	initOnce sync.Once
	initErr  error

	// ErrNoExporters is returned when no exporters are configured.
	ErrNoExporters = errors.New("observability disabled: no exporters configured")
)

// Init initializes metric export based on the observability configuration.
// With no exporter configured, recording calls stay as no-ops.
func Init(ctx context.Context, cfg *configs.ObservabilityConfig) error {
	initOnce.Do(func() {
		if cfg == nil || !cfg.Enabled() {
			log.Info("No observability exporters configured, metrics will not be exported")
			initErr = ErrNoExporters
			return
		}

		readers, err := newMetricReaders(ctx, cfg)
		if err != nil {
			initErr = err
			return
		}
		if len(readers) == 0 {
			initErr = ErrNoExporters
			return
		}

		if cfg.UseGlobalProvider {
			registerGlobalMetrics(readers)
		} else {
			registerLocalMetrics(readers)
		}
		log.Info("Initialized MeterProvider from observability config")
	})
	return initErr
}

// Shutdown flushes and stops any meter providers created by Init.
func Shutdown(ctx context.Context) error {
	var errs []error

	if localMeterProvider != nil {
		if err := localMeterProvider.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	if globalMeterProvider != nil {
		if err := globalMeterProvider.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// newMetricReaders creates one or more metric readers based on the provided
// configuration.
func newMetricReaders(ctx context.Context, cfg *configs.ObservabilityConfig) ([]sdkmetric.Reader, error) {
	var readers []sdkmetric.Reader
	var errs []error

	if cfg.StdoutEnable {
		if exp, err := stdoutmetric.New(); err == nil {
			readers = append(readers, sdkmetric.NewPeriodicReader(exp))
			log.Info("Exporting metrics to Stdout")
		} else {
			errs = append(errs, err)
		}
	}

	if cfg.MetricsEndpoint != "" {
		exp, err := otlpmetrichttp.New(ctx, otlpmetrichttp.WithEndpointURL(cfg.MetricsEndpoint))
		if err == nil {
			readers = append(readers, sdkmetric.NewPeriodicReader(exp))
			log.Info("Exporting metrics to OTLP endpoint", "endpoint", cfg.MetricsEndpoint)
		} else {
			errs = append(errs, err)
		}
	}

	return readers, errors.Join(errs...)
}
