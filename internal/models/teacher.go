package models

import "github.com/jmoiron/sqlx/types"

// Teacher represents a tutor listed on the marketplace.
type Teacher struct {
	ID      int64          `db:"id" json:"id"`
	Name    string         `db:"name" json:"name"`
	About   string         `db:"about" json:"about"`
	Rating  float64        `db:"rating" json:"rating"`
	Picture string         `db:"picture" json:"picture"`
	Price   float64        `db:"price" json:"price"`
	Free    types.JSONText `db:"free" json:"free"`
}

// TeacherSort enumerates the supported listing orders.
type TeacherSort string

const (
	SortRandom         TeacherSort = "random"
	SortByRating       TeacherSort = "by_rating"
	SortExpensiveFirst TeacherSort = "expensive_first"
	SortCheapFirst     TeacherSort = "cheap_first"
)

// TeacherSortChoices lists sort options in display order.
var TeacherSortChoices = []Choice{
	{Value: string(SortRandom), Label: "В случайном порядке"},
	{Value: string(SortByRating), Label: "Сначала лучшие по рейтингу"},
	{Value: string(SortExpensiveFirst), Label: "Сначала дорогие"},
	{Value: string(SortCheapFirst), Label: "Сначала недорогие"},
}

// ParseTeacherSort reports whether raw names one of the supported orders.
func ParseTeacherSort(raw string) (TeacherSort, bool) {
	switch TeacherSort(raw) {
	case SortRandom, SortByRating, SortExpensiveFirst, SortCheapFirst:
		return TeacherSort(raw), true
	}
	return "", false
}

// TeacherFilter captures filtering options for listing teachers.
type TeacherFilter struct {
	GoalCode string
	Sort     TeacherSort
	Limit    int
}
