package pricing

import (
	"strconv"
	"strings"
	"time"
)

type RuleType string

const (
	RuleTypePeakHours     RuleType = "peak_hours"
	RuleTypeWeekend       RuleType = "weekend"
	RuleTypeIndoor        RuleType = "indoor"
	RuleTypeMultipleHours RuleType = "multiple_hours"
	RuleTypeBundle        RuleType = "bundle"
)

// RuleTypes is the fixed application order of the multiplicative rules,
// followed by the equipment-only bundle rule.
var RuleTypes = []RuleType{
	RuleTypeIndoor,
	RuleTypePeakHours,
	RuleTypeWeekend,
	RuleTypeMultipleHours,
	RuleTypeBundle,
}

func (t RuleType) String() string {
	return string(t)
}

func (t RuleType) IsValid() bool {
	switch t {
	case RuleTypePeakHours, RuleTypeWeekend, RuleTypeIndoor, RuleTypeMultipleHours, RuleTypeBundle:
		return true
	default:
		return false
	}
}

// WeekdaySet holds ISO weekday numbers (1=Monday .. 7=Sunday).
// An empty set means "applies every day".
type WeekdaySet map[int]bool

// ParseWeekdaySet parses a comma-separated day list such as "1,2,3,4,5".
// Unparsable or out-of-range entries invalidate the whole set.
func ParseWeekdaySet(s string) (WeekdaySet, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}

	set := WeekdaySet{}
	for _, part := range strings.Split(s, ",") {
		day, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || day < 1 || day > 7 {
			return nil, false
		}
		set[day] = true
	}
	return set, true
}

func (w WeekdaySet) IsEmpty() bool {
	return len(w) == 0
}

// Applies reports whether the set covers the given date's weekday.
// An empty set applies to all days.
func (w WeekdaySet) Applies(date time.Time) bool {
	if len(w) == 0 {
		return true
	}
	return w[ISOWeekday(date)]
}

func (w WeekdaySet) String() string {
	if len(w) == 0 {
		return ""
	}
	parts := make([]string, 0, len(w))
	for day := 1; day <= 7; day++ {
		if w[day] {
			parts = append(parts, strconv.Itoa(day))
		}
	}
	return strings.Join(parts, ",")
}

// ISOWeekday returns 1 for Monday through 7 for Sunday.
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
