package model

// AvailabilityVerdict is the derived result of resolving one catalog item (or
// combo) against the current ingredient snapshot. It is computed fresh on
// every resolution request and never persisted.
//
// MissingIngredients lists required ingredients that are absent from stock or
// below the recipe quantity; any entry makes the item unavailable.
// LowStockIngredients is advisory only: the ingredient covers the recipe but
// sits at or below its reorder threshold. Both lists preserve
// first-encountered order with duplicates removed.
type AvailabilityVerdict struct {
	ItemID              string   `json:"item_id"`
	IsAvailable         bool     `json:"is_available"`
	MissingIngredients  []string `json:"missing_ingredients"`
	LowStockIngredients []string `json:"low_stock_ingredients"`
}

// FullyAvailable builds the verdict used for items with no recipe and as the
// fail-open fallback when inventory data cannot be fetched.
func FullyAvailable(itemID string) AvailabilityVerdict {
	return AvailabilityVerdict{
		ItemID:              itemID,
		IsAvailable:         true,
		MissingIngredients:  []string{},
		LowStockIngredients: []string{},
	}
}
