package service

import (
	"log"
	"strings"

	"go-torteria-api/internal/model"
	"go-torteria-api/internal/recipe"
	"go-torteria-api/internal/repository"
)

// AvailabilityService computes ingredient-based availability verdicts for
// catalog items. All operations are read-only with respect to stock and never
// return an error: when the inventory snapshot cannot be fetched the resolver
// fails open and reports every requested item as fully available, so an
// inventory hiccup never blocks the storefront.
type AvailabilityService interface {
	ResolveOne(itemID string) model.AvailabilityVerdict
	ResolveMany(itemIDs []string) map[string]model.AvailabilityVerdict
	ResolveCombo(comboID string, constituentIDs []string) model.AvailabilityVerdict
}

type availabilityService struct {
	ingredientRepo repository.IngredientRepository
}

func NewAvailabilityService(ingredientRepo repository.IngredientRepository) AvailabilityService {
	return &availabilityService{ingredientRepo: ingredientRepo}
}

// stockSnapshot is one full inventory read keyed by lowercased ingredient
// name. ok is false when the read failed or returned nothing; callers must
// then collapse to the fail-open verdict. Swapping the degradation policy
// (e.g. fail closed) only requires changing how !ok is interpreted here and
// in the Resolve methods.
type stockSnapshot struct {
	byName map[string]model.Ingredient
	ok     bool
}

func (s *availabilityService) takeSnapshot() stockSnapshot {
	ingredients, err := s.ingredientRepo.FindAll()
	if err != nil {
		log.Printf("availability: inventory fetch failed, assuming full availability: %v", err)
		return stockSnapshot{ok: false}
	}
	if len(ingredients) == 0 {
		// Empty inventory means the store operates without stock data.
		return stockSnapshot{ok: false}
	}

	byName := make(map[string]model.Ingredient, len(ingredients))
	for _, ing := range ingredients {
		key := strings.ToLower(ing.Name)
		if _, exists := byName[key]; !exists {
			byName[key] = ing
		}
	}
	return stockSnapshot{byName: byName, ok: true}
}

// evaluate applies the recipe of one item against a healthy snapshot.
// Requirement order follows the recipe's declared list; a name missing from
// stock or stocked below the required quantity marks the item unavailable,
// while a covered ingredient at or below its reorder threshold is only
// flagged as low stock.
func (s *availabilityService) evaluate(itemID string, reqs []recipe.Requirement, snap stockSnapshot) model.AvailabilityVerdict {
	missing := []string{}
	lowStock := []string{}

	for _, req := range reqs {
		ing, found := snap.byName[strings.ToLower(req.IngredientName)]
		switch {
		case !found || ing.StockQuantity < req.Quantity:
			missing = appendUnique(missing, req.IngredientName)
		case ing.IsLowStock():
			lowStock = appendUnique(lowStock, req.IngredientName)
		}
	}

	return model.AvailabilityVerdict{
		ItemID:              itemID,
		IsAvailable:         len(missing) == 0,
		MissingIngredients:  missing,
		LowStockIngredients: lowStock,
	}
}

func (s *availabilityService) ResolveOne(itemID string) model.AvailabilityVerdict {
	reqs := recipe.RequirementsFor(itemID)
	if len(reqs) == 0 {
		// No registered recipe: available by default.
		return model.FullyAvailable(itemID)
	}

	snap := s.takeSnapshot()
	if !snap.ok {
		return model.FullyAvailable(itemID)
	}

	return s.evaluate(itemID, reqs, snap)
}

// ResolveMany evaluates a batch of items against a single inventory snapshot.
// This is the call the catalog view uses for its visible item set; the one
// fetch is the whole point of the method over looping ResolveOne.
func (s *availabilityService) ResolveMany(itemIDs []string) map[string]model.AvailabilityVerdict {
	verdicts := make(map[string]model.AvailabilityVerdict, len(itemIDs))

	snap := s.takeSnapshot()
	for _, itemID := range itemIDs {
		reqs := recipe.RequirementsFor(itemID)
		if len(reqs) == 0 || !snap.ok {
			verdicts[itemID] = model.FullyAvailable(itemID)
			continue
		}
		verdicts[itemID] = s.evaluate(itemID, reqs, snap)
	}

	return verdicts
}

// ResolveCombo folds the constituents' verdicts into one verdict keyed by the
// combo id: available only when every constituent is available, with missing
// names collected from unavailable constituents and low-stock names from all
// of them, deduplicated in first-encountered order.
func (s *availabilityService) ResolveCombo(comboID string, constituentIDs []string) model.AvailabilityVerdict {
	verdicts := s.ResolveMany(constituentIDs)

	allAvailable := true
	missing := []string{}
	lowStock := []string{}

	for _, itemID := range constituentIDs {
		verdict, ok := verdicts[itemID]
		if !ok {
			continue
		}
		if !verdict.IsAvailable {
			allAvailable = false
			for _, name := range verdict.MissingIngredients {
				missing = appendUnique(missing, name)
			}
		}
		for _, name := range verdict.LowStockIngredients {
			lowStock = appendUnique(lowStock, name)
		}
	}

	return model.AvailabilityVerdict{
		ItemID:              comboID,
		IsAvailable:         allAvailable,
		MissingIngredients:  missing,
		LowStockIngredients: lowStock,
	}
}

func appendUnique(names []string, name string) []string {
	for _, existing := range names {
		if existing == name {
			return names
		}
	}
	return append(names, name)
}
