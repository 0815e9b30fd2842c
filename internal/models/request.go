package models

import "time"

// Request is a free-form tutoring request not tied to a teacher.
type Request struct {
	ID          int64     `db:"id" json:"id"`
	Goal        string    `db:"goal" json:"goal"`
	Time        string    `db:"time" json:"time"`
	ClientName  string    `db:"client_name" json:"client_name"`
	ClientPhone string    `db:"client_phone" json:"client_phone"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

const (
	DefaultRequestGoal = "travel"
	DefaultRequestTime = "5-7"
)

// RequestGoalChoices is the fixed goal option set of the request form.
var RequestGoalChoices = []Choice{
	{Value: "travel", Label: "Для путешествий"},
	{Value: "study", Label: "Для учебы"},
	{Value: "work", Label: "Для работы"},
	{Value: "relocate", Label: "Для переезда"},
}

// RequestTimeChoices is the fixed weekly time-budget option set.
var RequestTimeChoices = []Choice{
	{Value: "1-2", Label: "1-2 часа в неделю"},
	{Value: "3-5", Label: "3-5 часов в неделю"},
	{Value: "5-7", Label: "5-7 часов в неделю"},
	{Value: "7-10", Label: "7-10 часов в неделю"},
}

// RequestConfirmation is echoed back on the request confirmation page.
type RequestConfirmation struct {
	Goal        string `json:"goal"`
	GoalLabel   string `json:"goal_label"`
	Time        string `json:"time"`
	TimeLabel   string `json:"time_label"`
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
}
