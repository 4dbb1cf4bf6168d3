package geo

import (
	"time"

	"proximity/internal/domain/entity"
)

const minutesPerDay = 24 * 60

// ISOWeekday converts time.Weekday to ISO numbering, Monday=1 through Sunday=7.
func ISOWeekday(d time.Weekday) int {
	if d == time.Sunday {
		return 7
	}

	return int(d)
}

// IsScheduleActive reports whether a schedule allows activation at t.
// A nil schedule is always active. An empty weekday set places no weekday
// restriction and an empty window set places no time-of-day restriction.
// Windows are inclusive on both ends; a window whose start is after its end
// wraps past midnight.
func IsScheduleActive(schedule *entity.ZoneSchedule, t time.Time) bool {
	if schedule == nil {
		return true
	}

	if len(schedule.Weekdays) > 0 && !containsWeekday(schedule.Weekdays, ISOWeekday(t.Weekday())) {
		return false
	}

	if len(schedule.Windows) == 0 {
		return true
	}

	minute := t.Hour()*60 + t.Minute()
	for _, w := range schedule.Windows {
		if windowContains(w, minute) {
			return true
		}
	}

	return false
}

// IsZoneActiveAt evaluates the zone schedule in the zone's own timezone.
// Zones whose stored schedule could not be decoded are always active.
func IsZoneActiveAt(zone *entity.ProximityZone, t time.Time) bool {
	if zone.ScheduleMalformed {
		return true
	}

	return IsScheduleActive(zone.Schedule, t.In(zoneLocation(zone)))
}

// ValidateSchedule reports whether every weekday and window bound is in range.
func ValidateSchedule(schedule *entity.ZoneSchedule) bool {
	if schedule == nil {
		return true
	}
	for _, d := range schedule.Weekdays {
		if d < 1 || d > 7 {
			return false
		}
	}
	for _, w := range schedule.Windows {
		if w.Start < 0 || w.Start >= minutesPerDay || w.End < 0 || w.End >= minutesPerDay {
			return false
		}
	}

	return true
}

func containsWeekday(days []int, day int) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}

	return false
}

func windowContains(w entity.TimeWindow, minute int) bool {
	if w.Start <= w.End {
		return minute >= w.Start && minute <= w.End
	}

	return minute >= w.Start || minute <= w.End
}

func zoneLocation(zone *entity.ProximityZone) *time.Location {
	if zone.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(zone.Timezone)
	if err != nil {
		return time.UTC
	}

	return loc
}
