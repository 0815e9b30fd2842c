package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx/types"

	"github.com/noah-isme/tutor-market/internal/models"
)

// dataFile is the layout of the teachers data file.
type dataFile struct {
	Goals    map[string]string `json:"goals"`
	Teachers []dataTeacher     `json:"teachers"`
}

type dataTeacher struct {
	ID      int64           `json:"id"`
	Name    string          `json:"name"`
	About   string          `json:"about"`
	Rating  float64         `json:"rating"`
	Picture string          `json:"picture"`
	Price   float64         `json:"price"`
	Goals   []string        `json:"goals"`
	Free    json.RawMessage `json:"free"`
}

var weekDays = []models.Day{
	{Code: "mon", Label: "Понедельник", Name: "monday"},
	{Code: "tue", Label: "Вторник", Name: "tuesday"},
	{Code: "wed", Label: "Среда", Name: "wednesday"},
	{Code: "thu", Label: "Четверг", Name: "thursday"},
	{Code: "fri", Label: "Пятница", Name: "friday"},
	{Code: "sat", Label: "Суббота", Name: "saturday"},
	{Code: "sun", Label: "Воскресенье", Name: "sunday"},
}

var goalIcons = map[string]string{
	"travel":   "⛱",
	"study":    "🏫",
	"work":     "🏢",
	"relocate": "🚜",
}

// goalOrder fixes the insertion order, and so the ids, of the known goals.
var goalOrder = []string{"travel", "study", "work", "relocate"}

func buildSeed(file dataFile) (models.Seed, error) {
	seed := models.Seed{Days: weekDays}

	codes := make([]string, 0, len(file.Goals))
	for code := range file.Goals {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool {
		return goalRank(codes[i]) < goalRank(codes[j]) ||
			(goalRank(codes[i]) == goalRank(codes[j]) && codes[i] < codes[j])
	})
	for _, code := range codes {
		seed.Goals = append(seed.Goals, models.Goal{Code: code, Label: file.Goals[code], Icon: goalIcons[code]})
	}

	seen := make(map[int64]bool, len(file.Teachers))
	for _, t := range file.Teachers {
		if t.ID <= 0 {
			return models.Seed{}, fmt.Errorf("teacher %q: id must be positive", t.Name)
		}
		if seen[t.ID] {
			return models.Seed{}, fmt.Errorf("teacher id %d appears twice", t.ID)
		}
		seen[t.ID] = true
		for _, code := range t.Goals {
			if _, ok := file.Goals[code]; !ok {
				return models.Seed{}, fmt.Errorf("teacher %d: unknown goal %q", t.ID, code)
			}
		}
		seed.Teachers = append(seed.Teachers, models.SeedTeacher{
			Teacher: models.Teacher{
				ID:      t.ID,
				Name:    strings.TrimSpace(t.Name),
				About:   t.About,
				Rating:  t.Rating,
				Picture: t.Picture,
				Price:   t.Price,
				Free:    availability(t.Free),
			},
			GoalCodes: t.Goals,
		})
	}
	return seed, nil
}

func goalRank(code string) int {
	for i, known := range goalOrder {
		if known == code {
			return i
		}
	}
	return len(goalOrder)
}

// availability keeps the blob as given; a missing or null blob becomes an
// empty object so the column is always valid JSON.
func availability(raw json.RawMessage) types.JSONText {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return types.JSONText("{}")
	}
	return types.JSONText(trimmed)
}
