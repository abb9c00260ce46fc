// Package catalog defines the practice-area catalog collaborator. The core
// never validates a form's practice area against the catalog beyond
// non-emptiness; the catalog exists so editing surfaces can offer the valid
// choices in order.
package catalog

import "context"

// PracticeArea is one selectable practice area.
type PracticeArea struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Catalog supplies the ordered practice areas an editing surface may offer.
type Catalog interface {
	PracticeAreas(ctx context.Context) ([]PracticeArea, error)
}

// Static is a fixed, in-memory catalog.
type Static struct {
	areas []PracticeArea
}

// NewStatic copies the given areas into a Static catalog.
func NewStatic(areas []PracticeArea) *Static {
	return &Static{areas: append([]PracticeArea(nil), areas...)}
}

// Default returns the stock practice areas offered when no catalog service
// is wired.
func Default() *Static {
	return NewStatic([]PracticeArea{
		{ID: "family-law", Label: "Family Law"},
		{ID: "criminal-defense", Label: "Criminal Defense"},
		{ID: "personal-injury", Label: "Personal Injury"},
		{ID: "estate-planning", Label: "Estate Planning"},
		{ID: "immigration", Label: "Immigration"},
		{ID: "business-law", Label: "Business Law"},
		{ID: "real-estate", Label: "Real Estate"},
		{ID: "employment-law", Label: "Employment Law"},
	})
}

// PracticeAreas returns the configured areas in order.
func (s *Static) PracticeAreas(_ context.Context) ([]PracticeArea, error) {
	return append([]PracticeArea(nil), s.areas...), nil
}
