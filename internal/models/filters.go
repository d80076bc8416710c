package models

// Filters narrow a company search. Values are opaque to this service.
type Filters struct {
	Role              string `json:"role,omitempty" validate:"max=100"`
	YearsOfExperience string `json:"yoe,omitempty" validate:"max=20"`
	AssessmentType    string `json:"type,omitempty" validate:"max=50"`
	Topic             string `json:"topic,omitempty" validate:"max=100"`
	Difficulty        string `json:"difficulty,omitempty" validate:"max=20"`
	Year              string `json:"year,omitempty" validate:"max=10"`
}

// QueryParams lists the non-empty filters in search service order.
func (f Filters) QueryParams() [][2]string {
	all := [][2]string{
		{"role", f.Role},
		{"yoe", f.YearsOfExperience},
		{"type", f.AssessmentType},
		{"topic", f.Topic},
		{"difficulty", f.Difficulty},
		{"year", f.Year},
	}
	params := make([][2]string, 0, len(all))
	for _, p := range all {
		if p[1] != "" {
			params = append(params, p)
		}
	}
	return params
}

// assessment type that unlocks the year-wise panel
const AssessmentInterview = "Interview"
