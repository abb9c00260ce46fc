package catalog

import (
	"context"
	"testing"
)

func TestStaticReturnsAreasInOrder(t *testing.T) {
	t.Parallel()

	areas := []PracticeArea{
		{ID: "family-law", Label: "Family Law"},
		{ID: "immigration", Label: "Immigration"},
	}
	c := NewStatic(areas)

	got, err := c.PracticeAreas(context.Background())
	if err != nil {
		t.Fatalf("PracticeAreas: %v", err)
	}
	if len(got) != 2 || got[0].ID != "family-law" || got[1].ID != "immigration" {
		t.Fatalf("areas = %v", got)
	}

	// The catalog hands out copies; callers cannot reorder its backing slice.
	got[0], got[1] = got[1], got[0]
	again, _ := c.PracticeAreas(context.Background())
	if again[0].ID != "family-law" {
		t.Fatal("returned slice aliased the catalog's state")
	}
}

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()

	areas, err := Default().PracticeAreas(context.Background())
	if err != nil {
		t.Fatalf("PracticeAreas: %v", err)
	}
	if len(areas) == 0 {
		t.Fatal("default catalog should not be empty")
	}
	seen := make(map[string]struct{}, len(areas))
	for _, area := range areas {
		if area.ID == "" || area.Label == "" {
			t.Fatalf("incomplete area: %+v", area)
		}
		if _, dup := seen[area.ID]; dup {
			t.Fatalf("duplicate area id %q", area.ID)
		}
		seen[area.ID] = struct{}{}
	}
}
