// Package tz converts weekly wall-clock times between a user's zone and UTC.
//
// Both directions are anchored to one fixed calendar week, the week starting
// Monday 2026-01-05. A (time-of-day, day-of-week) pair is placed on that week's
// date for the day, converted with the zone rules in effect on that date and
// read back. Results therefore never depend on the date the conversion runs,
// at the price of using that week's DST offset for every future occurrence.
package tz

import (
	"strings"
	"time"

	"github.com/diegoclair/wardrobe-notifier/internal/domain"
)

// referenceMonday is day 0 of the anchor week.
var referenceMonday = time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)

// Location resolves an IANA zone name. Empty or unknown names resolve to UTC.
func Location(name string) *time.Location {
	name = strings.TrimSpace(name)
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ParseClock parses an HH:MM time of day.
func ParseClock(clock string) (hour, minute int, err error) {
	t, err := time.Parse(domain.ClockLayout, strings.TrimSpace(clock))
	if err != nil {
		return 0, 0, domain.NewValidationError("notification_time", "expected HH:MM")
	}
	return t.Hour(), t.Minute(), nil
}

// NormalizeClock returns clock in canonical zero-padded HH:MM form.
func NormalizeClock(clock string) (string, error) {
	h, m, err := ParseClock(clock)
	if err != nil {
		return "", err
	}
	return time.Date(0, 1, 1, h, m, 0, 0, time.UTC).Format(domain.ClockLayout), nil
}

// ValidateDay checks that day is in [0,6].
func ValidateDay(day int) error {
	if day < domain.Monday || day > domain.Sunday {
		return domain.NewValidationError("day_of_week", "must be between 0 (Monday) and 6 (Sunday)")
	}
	return nil
}

// Weekday returns t's day of week with Monday as 0.
func Weekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % domain.DaysInWeek
}

// LocalToUTC converts a local time of day and weekday in loc to UTC.
func LocalToUTC(clock string, day int, loc *time.Location) (string, int, error) {
	return convert(clock, day, loc, time.UTC)
}

// UTCToLocal converts a UTC time of day and weekday to loc.
func UTCToLocal(clock string, day int, loc *time.Location) (string, int, error) {
	return convert(clock, day, time.UTC, loc)
}

func convert(clock string, day int, from, to *time.Location) (string, int, error) {
	if err := ValidateDay(day); err != nil {
		return "", 0, err
	}
	h, m, err := ParseClock(clock)
	if err != nil {
		return "", 0, err
	}
	if from == nil {
		from = time.UTC
	}
	if to == nil {
		to = time.UTC
	}

	ref := referenceMonday.AddDate(0, 0, day)
	src := time.Date(ref.Year(), ref.Month(), ref.Day(), h, m, 0, 0, from)
	dst := src.In(to)

	return dst.Format(domain.ClockLayout), Weekday(dst), nil
}
