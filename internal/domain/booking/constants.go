package booking

// DefaultDurationMin is applied in service resolution when a service has no
// stored duration. This is the only place a fallback duration exists.
const DefaultDurationMin = 30

const (
	DateFormat = "2006-01-02"
	TimeFormat = "15:04"
)
