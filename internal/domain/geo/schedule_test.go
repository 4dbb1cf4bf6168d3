package geo

import (
	"testing"
	"time"
	_ "time/tzdata"

	"proximity/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

// 2026-03-09 is a Monday.
func at(day, hour, minute int) time.Time {
	return time.Date(2026, time.March, 9+day, hour, minute, 0, 0, time.UTC)
}

func TestIsScheduleActive(t *testing.T) {
	weekdaysOnly := &entity.ZoneSchedule{Weekdays: []int{1, 2, 3, 4, 5}}
	businessHours := &entity.ZoneSchedule{
		Weekdays: []int{1, 2, 3, 4, 5},
		Windows:  []entity.TimeWindow{{Start: 9 * 60, End: 18 * 60}},
	}
	overnight := &entity.ZoneSchedule{
		Windows: []entity.TimeWindow{{Start: 22 * 60, End: 2 * 60}},
	}

	tests := []struct {
		name     string
		schedule *entity.ZoneSchedule
		at       time.Time
		want     bool
	}{
		{name: "nil schedule", schedule: nil, at: at(6, 3, 0), want: true},
		{name: "no windows on allowed weekday", schedule: weekdaysOnly, at: at(0, 3, 0), want: true},
		{name: "excluded weekday", schedule: weekdaysOnly, at: at(5, 12, 0), want: false},
		{name: "sunday is seven", schedule: &entity.ZoneSchedule{Weekdays: []int{7}}, at: at(6, 12, 0), want: true},
		{name: "inside window", schedule: businessHours, at: at(1, 12, 30), want: true},
		{name: "window start inclusive", schedule: businessHours, at: at(1, 9, 0), want: true},
		{name: "window end inclusive", schedule: businessHours, at: at(1, 18, 0), want: true},
		{name: "after window", schedule: businessHours, at: at(1, 18, 1), want: false},
		{name: "excluded weekday inside window", schedule: businessHours, at: at(6, 12, 0), want: false},
		{name: "overnight before midnight", schedule: overnight, at: at(2, 23, 15), want: true},
		{name: "overnight after midnight", schedule: overnight, at: at(2, 1, 59), want: true},
		{name: "overnight gap", schedule: overnight, at: at(2, 12, 0), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsScheduleActive(tt.schedule, tt.at))
		})
	}
}

func TestIsScheduleActive_NoWindowsAlwaysActive(t *testing.T) {
	schedule := &entity.ZoneSchedule{Weekdays: []int{1, 2, 3, 4, 5, 6, 7}}
	for minute := 0; minute < minutesPerDay; minute += 7 {
		assert.True(t, IsScheduleActive(schedule, at(0, 0, 0).Add(time.Duration(minute)*time.Minute)))
	}
}

func TestIsZoneActiveAt_UsesZoneTimezone(t *testing.T) {
	zone := &entity.ProximityZone{
		Timezone: "America/Mexico_City",
		Schedule: &entity.ZoneSchedule{
			Windows: []entity.TimeWindow{{Start: 9 * 60, End: 10 * 60}},
		},
	}

	// 15:30 UTC is 09:30 in Mexico City (UTC-6, no DST since 2022).
	assert.True(t, IsZoneActiveAt(zone, at(0, 15, 30)))
	assert.False(t, IsZoneActiveAt(zone, at(0, 9, 30)))
}

func TestIsZoneActiveAt_MalformedScheduleAlwaysActive(t *testing.T) {
	zone := &entity.ProximityZone{
		ScheduleMalformed: true,
		Schedule:          &entity.ZoneSchedule{Weekdays: []int{1}},
	}

	assert.True(t, IsZoneActiveAt(zone, at(5, 3, 0)))
}

func TestValidateSchedule(t *testing.T) {
	assert.True(t, ValidateSchedule(nil))
	assert.True(t, ValidateSchedule(&entity.ZoneSchedule{Weekdays: []int{1, 7}, Windows: []entity.TimeWindow{{Start: 0, End: 1439}}}))
	assert.False(t, ValidateSchedule(&entity.ZoneSchedule{Weekdays: []int{0}}))
	assert.False(t, ValidateSchedule(&entity.ZoneSchedule{Weekdays: []int{8}}))
	assert.False(t, ValidateSchedule(&entity.ZoneSchedule{Windows: []entity.TimeWindow{{Start: 0, End: 1440}}}))
}
