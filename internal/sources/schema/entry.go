package schema

import "context"

// Entry holds the fields every per-schema record shares.
type Entry struct {
	ID               Text     `json:"id"`
	Name             Text     `json:"name"`
	Description      Text     `json:"description"`
	InterestingFacts FactList `json:"interesting_facts"`
	Imagery
}

// DisplayName returns the name, falling back to the raw id.
func (e Entry) DisplayName() string {
	if name := e.Name.String(); name != "" {
		return name
	}
	return e.ID.String()
}

// Facts returns at most limit interesting facts.
func (e Entry) Facts(limit int) []string {
	return Facts(e.InterestingFacts.Strings(), limit)
}

// Report logs every shared field of the entry that was present but unusable.
func (e Entry) Report(ctx context.Context, objectID string) {
	Report(ctx, objectID, "name", e.Name)
	Report(ctx, objectID, "description", e.Description)
	Report(ctx, objectID, "interesting_facts", e.InterestingFacts)
}
