package core

import (
	"testing"

	"github.com/huangsam/whatsmygrade/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseFullFile tests a complete grade file with all three sections.
func TestParseFullFile(t *testing.T) {
	content := `
# CS 101, fall semester
[breakdown]
exams: 0.6
hw: 0.4

[grades]
exams: 80%
hw: unknown

[config]
passing_grade: 0.7
`
	file, err := Parse(content)
	require.NoError(t, err)

	assert.Equal(t, []string{"exams", "hw"}, file.Scheme.Categories())
	assert.InDelta(t, 0.6, file.Scheme.Weight("exams"), 1e-9)
	assert.InDelta(t, 0.4, file.Scheme.Weight("hw"), 1e-9)

	require.Len(t, file.Entries, 2)
	assert.Equal(t, "exams", file.Entries[0].Name)
	assert.InDelta(t, 0.8, file.Entries[0].Value.Score(), 1e-9)
	assert.Equal(t, "hw", file.Entries[1].Name)
	assert.True(t, file.Entries[1].Value.IsUnknown())

	assert.InDelta(t, 0.7, file.Config.PassingGrade, 1e-9)
	assert.True(t, file.Config.PassingGradeSet)
}

// TestParseDefaults tests defaults when sections are absent.
func TestParseDefaults(t *testing.T) {
	file, err := Parse("")
	require.NoError(t, err)

	assert.Empty(t, file.Scheme.Categories())
	assert.Empty(t, file.Entries)
	assert.InDelta(t, DefaultPassingGrade, file.Config.PassingGrade, 1e-9)
	assert.False(t, file.Config.PassingGradeSet)
}

// TestParseStatementWithoutSection verifies the exact error for a statement
// before any section header.
func TestParseStatementWithoutSection(t *testing.T) {
	_, err := Parse("badline")
	require.Error(t, err)

	var userErr *schema.UserError
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, `Unexpected statement "badline"`, userErr.Message)
}

// TestParseMalformedStatements covers the statement-shape errors.
func TestParseMalformedStatements(t *testing.T) {
	tests := []struct {
		name    string
		content string
		message string
	}{
		{
			name:    "missing value name",
			content: "[grades]\n:= 50%",
			message: "Missing value name",
		},
		{
			name:    "missing colon",
			content: "[grades]\nexams 50%",
			message: "Expected colon",
		},
		{
			name:    "empty expression",
			content: "[grades]\nexams:",
			message: "Expected expression following a colon",
		},
		{
			name:    "invalid expression",
			content: "[grades]\nexams: not_a_function(1)",
			message: `Invalid expression "not_a_function(1)"`,
		},
		{
			name:    "unknown weight",
			content: "[breakdown]\nexams: unknown",
			message: "Invalid weight",
		},
		{
			name:    "unknown config option",
			content: "[config]\nfavorite_color: 1",
			message: `Unknown config option "favorite_color"`,
		},
		{
			name:    "unknown passing grade",
			content: "[config]\npassing_grade: unknown",
			message: "Invalid passing grade",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.content)
			require.Error(t, err)

			var userErr *schema.UserError
			require.ErrorAs(t, err, &userErr)
			assert.Equal(t, tt.message, userErr.Message)
		})
	}
}

// TestParseUnrecognizedSection verifies statements under an unknown section
// are still validated and evaluated but have no effect.
func TestParseUnrecognizedSection(t *testing.T) {
	file, err := Parse("[notes]\nmidterm: 50%")
	require.NoError(t, err)
	assert.Empty(t, file.Scheme.Categories())
	assert.Empty(t, file.Entries)

	// Malformed statements under an unknown section still fail.
	_, err = Parse("[notes]\nmidterm: garbage(")
	require.Error(t, err)
}

// TestParseCommentsAndBlanks verifies skipped lines.
func TestParseCommentsAndBlanks(t *testing.T) {
	content := "# header comment\n\n[breakdown]\n# weight for exams\nexams: 1.0\n\n"
	file, err := Parse(content)
	require.NoError(t, err)
	assert.Equal(t, []string{"exams"}, file.Scheme.Categories())
}

// TestParseDuplicateEntries verifies duplicates are accumulated verbatim:
// the scheme keeps both names while the grades list keeps both entries.
func TestParseDuplicateEntries(t *testing.T) {
	content := `
[breakdown]
exams: 0.5
exams: 0.3
hw: 0.5
[grades]
hw: 50%
hw: 90%
`
	file, err := Parse(content)
	require.NoError(t, err)

	assert.Equal(t, []string{"exams", "exams", "hw"}, file.Scheme.Categories())
	// Weight lookup is last-write-wins for the duplicated name.
	assert.InDelta(t, 0.3, file.Scheme.Weight("exams"), 1e-9)

	require.Len(t, file.Entries, 2)
	assert.InDelta(t, 0.5, file.Entries[0].Value.Score(), 1e-9)
	assert.InDelta(t, 0.9, file.Entries[1].Value.Score(), 1e-9)
}

// TestParseNameWithSpacesAndDashes verifies the value name character class.
func TestParseNameWithSpacesAndDashes(t *testing.T) {
	file, err := Parse("[breakdown]\nfinal-exam part 2: 1.0")
	require.NoError(t, err)
	assert.Equal(t, []string{"final-exam part 2"}, file.Scheme.Categories())
}
