package domain

// Fallback labels for absent descriptions and unresolved foreign keys.
const (
	DefaultEventSubject = "Time Entry"
	UnknownClientLabel  = "Unknown client"
	UnknownMatterLabel  = "Unknown matter"
)

// ChartSlice is one labelled value of a pie or bar chart.
type ChartSlice struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}
