package service

import (
	"encoding/json"
	"strings"

	"github.com/noah-isme/tutor-market/internal/models"
)

// slotSuffix turns an hour token from a URL ("14") into a stored slot key ("14:00").
const slotSuffix = ":00"

// dayCodeLength is the number of leading characters of a day token that are significant.
const dayCodeLength = 3

// ResolveSchedule normalises a raw availability blob into a schedule holding
// only the open slots. Every day present in the blob gets an entry, possibly
// empty. Malformed input never fails; it degrades to fewer open slots.
func ResolveSchedule(raw []byte) models.Schedule {
	schedule := models.Schedule{}

	var days map[string]json.RawMessage
	if err := json.Unmarshal(raw, &days); err != nil {
		// blobs imported as a JSON string that wraps the object
		var wrapped string
		if json.Unmarshal(raw, &wrapped) != nil {
			return schedule
		}
		if err := json.Unmarshal([]byte(wrapped), &days); err != nil {
			return schedule
		}
	}

	for day, rawSlots := range days {
		open := make(map[string]bool)
		var slots map[string]interface{}
		if err := json.Unmarshal(rawSlots, &slots); err == nil {
			for slot, value := range slots {
				if truthy(value) {
					open[slot] = true
				}
			}
		}
		schedule[day] = open
	}
	return schedule
}

// IsSlotOpen reports whether the (day, hour) pair is offered by the schedule.
// The day token is cut to its first three characters and the hour token gets
// the ":00" suffix before lookup.
func IsSlotOpen(schedule models.Schedule, dayToken, hour string) bool {
	slots, ok := schedule[DayCode(dayToken)]
	if !ok || hour == "" {
		return false
	}
	return slots[SlotKey(hour)]
}

// DayCode truncates a day token such as "monday" to its three-letter code.
func DayCode(token string) string {
	runes := []rune(token)
	if len(runes) > dayCodeLength {
		runes = runes[:dayCodeLength]
	}
	return string(runes)
}

// SlotKey converts an hour token into the stored minute-granular key.
func SlotKey(hour string) string {
	return hour + slotSuffix
}

func truthy(value interface{}) bool {
	switch v := value.(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case string:
		trimmed := strings.TrimSpace(strings.ToLower(v))
		return trimmed != "" && trimmed != "false" && trimmed != "0"
	case map[string]interface{}:
		return len(v) > 0
	case []interface{}:
		return len(v) > 0
	default:
		return false
	}
}
