package models

// Seed is the reference and teacher data loaded by the import tool.
type Seed struct {
	Days     []Day
	Goals    []Goal
	Teachers []SeedTeacher
}

// SeedTeacher is a teacher together with the goal codes it is linked to.
type SeedTeacher struct {
	Teacher
	GoalCodes []string
}
