package truckban

import (
	"fmt"
	"regexp"
	"strconv"

	"agrimarket-delivery/internal/apperr"
)

const minutesPerDay = 24 * 60

var reClock = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):([0-5][0-9])$`)

// ParseClock converts an HH:mm string into minutes since midnight.
func ParseClock(s string) (int, error) {
	m := reClock.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("time %q is not HH:mm: %w", s, apperr.ErrInvalid)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("time %q out of range: %w", s, apperr.ErrInvalid)
	}
	return hour*60 + minute, nil
}

// ValidClock reports whether s is a well-formed HH:mm time.
func ValidClock(s string) bool {
	_, err := ParseClock(s)
	return err == nil
}

// FormatTime renders an HH:mm time as "h:mm AM/PM". Unparseable input is returned unchanged.
func FormatTime(s string) string {
	minutes, err := ParseClock(s)
	if err != nil {
		return s
	}
	hour, minute := minutes/60, minutes%60
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	hour %= 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, minute, suffix)
}
