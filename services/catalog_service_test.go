package services

import (
	"testing"

	"github.com/Massiue/HealthyMealPlanner/models"
)

func seedFixture() []models.Meal {
	return []models.Meal{
		{ID: "seed-a", Source: models.SourceSeed, Name: "Seed A", Type: models.Breakfast, Calories: 300, Protein: 10},
		{ID: "seed-b", Source: models.SourceSeed, Name: "Seed B", Type: models.Lunch, Calories: 500, Protein: 25},
		{ID: "seed-c", Source: models.SourceSeed, Name: "Seed C", Type: models.Dinner, Calories: 450, Protein: 20},
	}
}

func catalogFixture() []models.Meal {
	return []models.Meal{
		{ID: "7", Source: models.SourceCatalog, Name: "DB Seven", Type: models.Lunch, Calories: 600, Protein: 35},
		{ID: "9", Source: models.SourceCatalog, Name: "DB Nine", Type: models.Dinner, Calories: 520, Protein: 30},
	}
}

func ids(meals []models.Meal) []string {
	out := make([]string, 0, len(meals))
	for _, m := range meals {
		out = append(out, m.ID)
	}
	return out
}

// TestMergeCatalog_EmptyOverlay verifies that with no overlay rows the merge
// is simply persisted meals followed by every seed meal.
func TestMergeCatalog_EmptyOverlay(t *testing.T) {
	merged := MergeCatalog(catalogFixture(), seedFixture(), nil)

	want := []string{"7", "9", "seed-a", "seed-b", "seed-c"}
	got := ids(merged)
	if len(got) != len(want) {
		t.Fatalf("merged %d meals, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d = %q, want %q (persisted must precede seed)", i, got[i], want[i])
		}
	}
}

// TestMergeCatalog_DeletedSeedExcluded verifies a seed meal flagged deleted
// never appears, regardless of persisted catalog contents.
func TestMergeCatalog_DeletedSeedExcluded(t *testing.T) {
	overlay := []models.SeedMealStatus{{SeedID: "seed-b", Deleted: true}}

	merged := MergeCatalog(catalogFixture(), seedFixture(), overlay)
	for _, m := range merged {
		if m.ID == "seed-b" {
			t.Fatal("deleted seed meal seed-b appeared in merged catalog")
		}
	}
	if len(merged) != 4 {
		t.Errorf("merged %d meals, want 4", len(merged))
	}
}

// TestMergeCatalog_ConvertedSeedExcluded verifies a converted seed meal is
// absent while its persisted replacement is present exactly once.
func TestMergeCatalog_ConvertedSeedExcluded(t *testing.T) {
	converted := uint(7)
	overlay := []models.SeedMealStatus{{SeedID: "seed-a", ConvertedMealID: &converted}}

	merged := MergeCatalog(catalogFixture(), seedFixture(), overlay)

	count7 := 0
	for _, m := range merged {
		if m.ID == "seed-a" {
			t.Fatal("converted seed meal seed-a appeared in merged catalog")
		}
		if m.ID == "7" {
			count7++
		}
	}
	if count7 != 1 {
		t.Errorf("persisted replacement id=7 appeared %d times, want exactly 1", count7)
	}
}

// TestMergeCatalog_DuplicateIDs verifies the first occurrence wins when a
// persisted meal accidentally shares an id with a seed meal.
func TestMergeCatalog_DuplicateIDs(t *testing.T) {
	persisted := append(catalogFixture(), models.Meal{
		ID: "seed-a", Source: models.SourceCatalog, Name: "Impostor", Type: models.Breakfast,
	})

	merged := MergeCatalog(persisted, seedFixture(), nil)

	seen := map[string]int{}
	for _, m := range merged {
		seen[m.ID]++
	}
	for id, n := range seen {
		if n > 1 {
			t.Errorf("id %q appeared %d times, want 1", id, n)
		}
	}
	// The persisted copy comes first in the concatenation, so it wins.
	for _, m := range merged {
		if m.ID == "seed-a" && m.Name != "Impostor" {
			t.Errorf("duplicate id resolved to %q, want the persisted entry", m.Name)
		}
	}
}

// TestMergeCatalog_OverlayOnlyAffectsSeeds verifies overlay rows never hide
// persisted meals even when ids match.
func TestMergeCatalog_OverlayOnlyAffectsSeeds(t *testing.T) {
	overlay := []models.SeedMealStatus{{SeedID: "7", Deleted: true}}

	merged := MergeCatalog(catalogFixture(), seedFixture(), overlay)
	found := false
	for _, m := range merged {
		if m.ID == "7" {
			found = true
		}
	}
	if !found {
		t.Error("overlay deletion of id 7 hid a persisted meal; it must only filter seeds")
	}
}

// TestSeedMeals_ReturnsCopy verifies callers cannot mutate the shared seed
// catalog through the returned slice.
func TestSeedMeals_ReturnsCopy(t *testing.T) {
	first := SeedMeals()
	first[0].Name = "mutated"

	if SeedMeals()[0].Name == "mutated" {
		t.Error("mutating the returned slice changed the seed catalog")
	}
}
