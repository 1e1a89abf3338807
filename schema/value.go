package schema

// GradeValue is the result of evaluating a grade expression. A value is
// either a known score on the 0.0-1.0 scale or the symbolic unknown, which
// stands in for work that has not been graded yet.
type GradeValue struct {
	score   float64
	unknown bool
}

// Known returns a value carrying a concrete score.
func Known(score float64) GradeValue {
	return GradeValue{score: score}
}

// Unknown returns the symbolic unknown value.
func Unknown() GradeValue {
	return GradeValue{unknown: true}
}

// IsUnknown reports whether the value is the symbolic unknown.
func (v GradeValue) IsUnknown() bool {
	return v.unknown
}

// Score returns the concrete score. It is zero for unknown values, so
// callers must check IsUnknown first.
func (v GradeValue) Score() float64 {
	return v.score
}
