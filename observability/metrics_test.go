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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestRecordToolInvocation(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	meter := mp.Meter("test-meter")

	// Appends into the package-level instrument slices, which is fine for testing.
	initializeInstruments(meter)

	ctx := context.Background()

	RecordToolInvocation(ctx, "get_weather", 120*time.Millisecond, false)
	RecordToolInvocation(ctx, "get_weather", 80*time.Millisecond, true)

	var rm metricdata.ResourceMetrics
	err := reader.Collect(ctx, &rm)
	assert.NoError(t, err)

	var countSum, errorSum int64
	var durationCount uint64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			switch m.Name {
			case MetricNameToolCount:
				data := m.Data.(metricdata.Sum[int64])
				for _, dp := range data.DataPoints {
					countSum += dp.Value
				}
			case MetricNameToolErrors:
				data := m.Data.(metricdata.Sum[int64])
				for _, dp := range data.DataPoints {
					errorSum += dp.Value
				}
			case MetricNameToolDuration:
				data := m.Data.(metricdata.Histogram[float64])
				for _, dp := range data.DataPoints {
					durationCount += dp.Count
					name, _ := dp.Attributes.Value(AttrToolName)
					assert.Equal(t, "get_weather", name.AsString())
				}
			}
		}
	}

	assert.Equal(t, int64(2), countSum)
	assert.Equal(t, int64(1), errorSum)
	assert.Equal(t, uint64(2), durationCount)
}

func TestRegisterLocalMetrics(t *testing.T) {
	// registerLocalMetrics uses sync.Once, so only execution safety is checked.
	reader := sdkmetric.NewManualReader()
	assert.NotPanics(t, func() {
		registerLocalMetrics([]sdkmetric.Reader{reader})
	})
}

func TestInitDisabledWithoutExporters(t *testing.T) {
	err := Init(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoExporters)
}
