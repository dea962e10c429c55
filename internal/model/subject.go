package model

// Subject is one entry of a timetable. Credits is a pointer so a record
// without credit hours can be told apart from a zero-credit subject.
type Subject struct {
	Name    string `json:"name"`
	Credits *int   `json:"credits" validate:"required,gte=0"`
}

// Credits returns a pointer to n, for building Subject literals.
func Credits(n int) *int {
	return &n
}

// CreditSummary is the dashboard view of a list of subjects.
type CreditSummary struct {
	TotalSubjects int `json:"total_subjects"`
	TotalCredits  int `json:"total_credits"`
}
