package domain

// Counter names tracked in the stats document
const (
	CounterUsers    = "users"
	CounterMessages = "messages"
	CounterRequests = "requests"
)

// Stats is the cumulative usage counter document
type Stats struct {
	Counters  map[string]int   `json:"counters"`
	Languages map[Language]int `json:"languages"`
}

// NewStats returns an empty stats document with initialized maps
func NewStats() Stats {
	return Stats{
		Counters:  make(map[string]int),
		Languages: make(map[Language]int),
	}
}

// Clone returns a deep copy safe to hand out for reporting
func (s Stats) Clone() Stats {
	out := NewStats()
	for k, v := range s.Counters {
		out.Counters[k] = v
	}
	for k, v := range s.Languages {
		out.Languages[k] = v
	}
	return out
}
