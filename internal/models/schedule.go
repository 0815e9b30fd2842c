package models

import (
	"sort"
	"strconv"
	"strings"
)

// Schedule maps a day code to the open time slots of that day.
type Schedule map[string]map[string]bool

// Times returns the open slots of day in chronological order.
func (s Schedule) Times(day string) []string {
	slots := s[day]
	times := make([]string, 0, len(slots))
	for t, open := range slots {
		if open {
			times = append(times, t)
		}
	}
	sort.Slice(times, func(i, j int) bool {
		mi, mj := slotMinutes(times[i]), slotMinutes(times[j])
		if mi != mj {
			return mi < mj
		}
		return times[i] < times[j]
	})
	return times
}

// slotMinutes converts "8:00" style keys to minutes since midnight; unparsable
// keys sort last.
func slotMinutes(slot string) int {
	hour, minute, _ := strings.Cut(slot, ":")
	h, err := strconv.Atoi(hour)
	if err != nil {
		return 24 * 60
	}
	m, err := strconv.Atoi(minute)
	if err != nil {
		m = 0
	}
	return h*60 + m
}

// ScheduleDay is one rendered row of a teacher's weekly schedule.
type ScheduleDay struct {
	Day   Day
	Times []string
}
