package recipe

import "testing"

func TestRequirementsForUnknownItem(t *testing.T) {
	if reqs := RequirementsFor("postre-99"); reqs != nil {
		t.Fatalf("expected nil for unknown item, got %v", reqs)
	}
	if HasRecipe("postre-99") {
		t.Error("unknown item must not report a recipe")
	}
}

func TestRequirementsForPreservesDeclaredOrder(t *testing.T) {
	reqs := RequirementsFor("torta-4")
	if len(reqs) != 4 {
		t.Fatalf("expected 4 requirements for torta-4, got %d", len(reqs))
	}

	expected := []string{"Jamón", "Queso amarillo", "Mayonesa", "Pan para torta"}
	for i, req := range reqs {
		if req.IngredientName != expected[i] {
			t.Errorf("position %d: expected %s, got %s", i, expected[i], req.IngredientName)
		}
	}
	if reqs[3].Quantity != 1 {
		t.Errorf("expected 1 Pan para torta per torta, got %v", reqs[3].Quantity)
	}
}

func TestSharedIngredientAcrossRecipes(t *testing.T) {
	// Azúcar appears in both aguas; the table itself holds the duplicates,
	// deduplication is the resolver's concern
	for _, id := range []string{"agua-2", "agua-3"} {
		found := false
		for _, req := range RequirementsFor(id) {
			if req.IngredientName == "Azúcar" {
				found = true
			}
		}
		if !found {
			t.Errorf("expected Azúcar in %s requirements", id)
		}
	}
}

func TestItemIDsCoversSeededMenu(t *testing.T) {
	ids := ItemIDs()
	if len(ids) != 9 {
		t.Fatalf("expected 9 recipes, got %d", len(ids))
	}
	seen := map[string]bool{}
	for _, id := range ids {
		seen[id] = true
	}
	for _, want := range []string{"torta-1", "torta-2", "torta-3", "torta-4", "agua-1", "agua-2", "agua-3", "papas-1", "papas-2"} {
		if !seen[want] {
			t.Errorf("missing recipe for %s", want)
		}
	}
}
