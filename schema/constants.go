package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// CategoryStatus represents the reporting status of a scheme category.
	CategoryStatus string
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
)

// All category statuses supported.
const (
	KnownStatus       CategoryStatus = "known"       // a concrete score was declared
	UnknownStatus     CategoryStatus = "unknown"     // declared with the symbolic unknown value
	UnspecifiedStatus CategoryStatus = "unspecified" // in the scheme but absent from [grades]
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
}
