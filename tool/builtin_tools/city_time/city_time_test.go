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

package city_time

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/traveldesk/traveldesk-go/schema"
)

func pinClock(t *testing.T, instant time.Time) {
	t.Helper()
	nowFunc = func() time.Time { return instant }
	t.Cleanup(func() { nowFunc = time.Now })
}

// Mid-January, so the northern hemisphere is on standard time and the
// southern hemisphere is on daylight saving.
var january = time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)

func TestGetCurrentTimeWinter(t *testing.T) {
	pinClock(t, january)

	resp := GetCurrentTime(context.Background(), "new york")

	assert.Equal(t, schema.StatusSuccess, resp.Status)
	assert.Equal(t, "New York", resp.Data["city"])
	assert.Equal(t, "America/New_York", resp.Data["timezone"])
	assert.Equal(t, "2026-01-15T07:00:00", resp.Data["current_time"])
	assert.Equal(t, "-05:00", resp.Data["utc_offset"])
	assert.Equal(t, false, resp.Data["is_dst"])
	assert.Equal(t, "Current time in New York is 2026-01-15 07:00:00 EST", resp.Message)
}

func TestGetCurrentTimeSouthernDST(t *testing.T) {
	pinClock(t, january)

	resp := GetCurrentTime(context.Background(), "Sydney")

	assert.Equal(t, schema.StatusSuccess, resp.Status)
	assert.Equal(t, "Australia/Sydney", resp.Data["timezone"])
	assert.Equal(t, "+11:00", resp.Data["utc_offset"])
	assert.Equal(t, true, resp.Data["is_dst"])
}

func TestGetCurrentTimeSummerDST(t *testing.T) {
	pinClock(t, time.Date(2026, time.July, 15, 12, 0, 0, 0, time.UTC))

	resp := GetCurrentTime(context.Background(), "London")

	assert.Equal(t, schema.StatusSuccess, resp.Status)
	assert.Equal(t, "+01:00", resp.Data["utc_offset"])
	assert.Equal(t, true, resp.Data["is_dst"])
}

func TestGetCurrentTimeSubstringMatch(t *testing.T) {
	pinClock(t, january)

	// "new" hits "new york" first in table order.
	resp := GetCurrentTime(context.Background(), "new")

	assert.Equal(t, schema.StatusSuccess, resp.Status)
	assert.Equal(t, "America/New_York", resp.Data["timezone"])
}

func TestGetCurrentTimeUnknownCity(t *testing.T) {
	resp := GetCurrentTime(context.Background(), "Gotham")

	assert.Equal(t, schema.StatusError, resp.Status)
	assert.Equal(t, schema.ErrCodeTimezoneNotFound, resp.ErrorCode)
	assert.Contains(t, resp.Message, "'Gotham' is not available")
}

func TestGetTimezoneInfo(t *testing.T) {
	pinClock(t, january)

	resp := GetTimezoneInfo(context.Background(), "Asia/Tokyo")

	assert.Equal(t, schema.StatusSuccess, resp.Status)
	assert.Equal(t, "Asia/Tokyo", resp.Data["timezone"])
	assert.Equal(t, "2026-01-15 21:00:00", resp.Data["current_time"])
	assert.Equal(t, "+09:00", resp.Data["utc_offset"])
	assert.Equal(t, false, resp.Data["is_dst"])
	assert.Equal(t, "JST", resp.Data["abbreviation"])
	assert.Equal(t, "2026-01-15 12:00:00 UTC", resp.Data["utc_time"])
	assert.Equal(t, "Timezone information for Asia/Tokyo", resp.Message)
}

func TestGetTimezoneInfoInvalid(t *testing.T) {
	for _, id := range []string{"Not/AZone", "Mars", ""} {
		resp := GetTimezoneInfo(context.Background(), id)

		assert.Equal(t, schema.StatusError, resp.Status, "id %q", id)
		assert.Equal(t, schema.ErrCodeInvalidTimezone, resp.ErrorCode, "id %q", id)
	}
}

func TestListSupportedCities(t *testing.T) {
	resp := ListSupportedCities(context.Background())

	assert.Equal(t, schema.StatusSuccess, resp.Status)
	regions, ok := resp.Data["supported_cities"].(map[string][]string)
	assert.True(t, ok)
	assert.Contains(t, regions["Europe"], "London")
	assert.Contains(t, regions["Asia"], "Tokyo")
	assert.Contains(t, regions["South America"], "Sao Paulo")
}
