package schema

// CategoryLine is one row of a grade report, covering a single scheme
// category in declaration order.
type CategoryLine struct {
	Name          string         `json:"name"`
	WeightPercent float64        `json:"weight_percent"`
	Status        CategoryStatus `json:"status"`
	Score         float64        `json:"score,omitempty"` // 0.0-1.0, only meaningful for known status
}

// GradeReport is the full outcome of analyzing a grade file. Exactly one
// of the two result branches is populated: unknown categories yield the
// minimum-score fields, a fully known scheme yields the final grade.
type GradeReport struct {
	Categories   []CategoryLine `json:"categories"`
	PassingGrade float64        `json:"passing_grade"`

	// Populated when one or more categories are unknown.
	Unknowns    []string `json:"unknowns,omitempty"`
	MinRequired int      `json:"min_required,omitempty"`
	Attainable  bool     `json:"attainable"`

	// Populated when every category has a known score.
	HasFinal bool    `json:"has_final"`
	Final    float64 `json:"final,omitempty"`
	Passed   bool    `json:"passed,omitempty"`
}
