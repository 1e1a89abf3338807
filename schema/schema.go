// Package schema has configs, models and global variables for all parts of whatsmygrade.
package schema

// GradeEntry is a single statement from the [grades] section of a grade
// file. Entries are accumulated in declaration order; duplicate names are
// allowed and later entries win when the report builds its lookup.
type GradeEntry struct {
	Name  string     // Category name as written in the grade file
	Value GradeValue // Evaluated score, possibly unknown
}
