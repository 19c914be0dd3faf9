package reconcile

import "fmt"

// Outcome reports what an upsert did.
type Outcome int

// Outcomes.
const (
	OutcomeInserted Outcome = iota
	OutcomeReplaced
	OutcomeMerged
)

// String returns the string representation of an Outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeInserted:
		return "inserted"
	case OutcomeReplaced:
		return "replaced"
	case OutcomeMerged:
		return "merged"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Stats counts upsert outcomes.
type Stats struct {
	Inserted int `json:"inserted" yaml:"inserted"`
	Replaced int `json:"replaced" yaml:"replaced"`
	Merged   int `json:"merged" yaml:"merged"`
}

// Total returns the number of upserts counted.
func (s Stats) Total() int {
	return s.Inserted + s.Replaced + s.Merged
}

// Add returns the sum of two Stats.
func (s Stats) Add(other Stats) Stats {
	return Stats{
		Inserted: s.Inserted + other.Inserted,
		Replaced: s.Replaced + other.Replaced,
		Merged:   s.Merged + other.Merged,
	}
}

// Record counts one outcome.
func (s *Stats) Record(o Outcome) {
	switch o {
	case OutcomeInserted:
		s.Inserted++
	case OutcomeReplaced:
		s.Replaced++
	case OutcomeMerged:
		s.Merged++
	}
}
