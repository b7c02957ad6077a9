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

// Package observability exports tool-invocation metrics through OpenTelemetry.
package observability

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// InstrumentationName is the name of this instrumentation package.
const InstrumentationName = "github.com/traveldesk/traveldesk-go"

const (
	MetricNameToolCount    = "tool.invocation.count"
	MetricNameToolErrors   = "tool.invocation.errors"
	MetricNameToolDuration = "tool.invocation.duration"

	AttrToolName = "tool.name"
)

// Tool invocation duration buckets (seconds). Tools are HTTP-bound, so the
// range tops out well below typical LLM latencies.
var toolDurationBuckets = []float64{
	0.01, 0.02, 0.04, 0.08, 0.16, 0.32, 0.64, 1.28, 2.56, 5.12, 10.24, 20.48,
}

var (
	localOnce           sync.Once
	globalOnce          sync.Once
	instrumentsMu       sync.RWMutex
	localMeterProvider  *sdkmetric.MeterProvider
	globalMeterProvider *sdkmetric.MeterProvider

	// Slices hold instruments from both providers when local and global
	// registration are enabled together.
	toolCountCounters      []metric.Int64Counter
	toolErrorCounters      []metric.Int64Counter
	toolDurationHistograms []metric.Float64Histogram
)

// registerLocalMetrics initializes the metrics system with an isolated
// MeterProvider. It does NOT overwrite the global OTel MeterProvider.
func registerLocalMetrics(readers []sdkmetric.Reader) {
	localOnce.Do(func() {
		options := []sdkmetric.Option{}
		for _, r := range readers {
			options = append(options, sdkmetric.WithReader(r))
		}

		mp := sdkmetric.NewMeterProvider(options...)
		localMeterProvider = mp
		initializeInstruments(mp.Meter(InstrumentationName))
	})
}

// registerGlobalMetrics configures the global OpenTelemetry MeterProvider,
// so unrelated OTel measurements in the process are exported too.
func registerGlobalMetrics(readers []sdkmetric.Reader) {
	globalOnce.Do(func() {
		options := []sdkmetric.Option{}
		for _, r := range readers {
			options = append(options, sdkmetric.WithReader(r))
		}

		mp := sdkmetric.NewMeterProvider(options...)
		globalMeterProvider = mp
		otel.SetMeterProvider(mp)
		initializeInstruments(otel.GetMeterProvider().Meter(InstrumentationName))
	})
}

func initializeInstruments(m metric.Meter) {
	instrumentsMu.Lock()
	defer instrumentsMu.Unlock()

	if c, err := m.Int64Counter(
		MetricNameToolCount,
		metric.WithDescription("Number of tool invocations"),
		metric.WithUnit("1"),
	); err == nil {
		toolCountCounters = append(toolCountCounters, c)
	}

	if c, err := m.Int64Counter(
		MetricNameToolErrors,
		metric.WithDescription("Number of tool invocations that returned an error envelope"),
		metric.WithUnit("1"),
	); err == nil {
		toolErrorCounters = append(toolErrorCounters, c)
	}

	if h, err := m.Float64Histogram(
		MetricNameToolDuration,
		metric.WithDescription("Tool invocation duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(toolDurationBuckets...),
	); err == nil {
		toolDurationHistograms = append(toolDurationHistograms, h)
	}
}

// RecordToolInvocation records one tool call: a count, a duration sample and,
// when the tool answered with an error envelope, an error count.
func RecordToolInvocation(ctx context.Context, toolName string, duration time.Duration, isError bool) {
	attrs := metric.WithAttributes(attribute.String(AttrToolName, toolName))

	instrumentsMu.RLock()
	defer instrumentsMu.RUnlock()

	for _, counter := range toolCountCounters {
		counter.Add(ctx, 1, attrs)
	}
	if isError {
		for _, counter := range toolErrorCounters {
			counter.Add(ctx, 1, attrs)
		}
	}
	for _, histogram := range toolDurationHistograms {
		histogram.Record(ctx, duration.Seconds(), attrs)
	}
}
