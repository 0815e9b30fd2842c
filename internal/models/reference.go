package models

// Day is a weekday reference row.
type Day struct {
	ID    int    `db:"id" json:"id"`
	Code  string `db:"key_en" json:"code"`
	Label string `db:"value_ru" json:"label"`
	Name  string `db:"value_en" json:"name"`
}

// Goal is a learning goal reference row.
type Goal struct {
	ID    int    `db:"id" json:"id"`
	Code  string `db:"key_en" json:"code"`
	Label string `db:"value_ru" json:"label"`
	Icon  string `db:"icon" json:"icon"`
}

// Choice is a single option of a fixed form choice set.
type Choice struct {
	Value string
	Label string
}

// ChoiceLabel returns the label registered for value.
func ChoiceLabel(choices []Choice, value string) (string, bool) {
	for _, choice := range choices {
		if choice.Value == value {
			return choice.Label, true
		}
	}
	return "", false
}
