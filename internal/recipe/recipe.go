// Package recipe holds the static mapping from catalog item slug to the base
// ingredients needed to produce one unit of the item. It is shipped as
// configuration, not persisted: new catalog items without a registered recipe
// are treated as having no requirements and therefore always available.
package recipe

// Requirement is one ingredient line of a recipe. Quantity is expressed in
// the stored ingredient's own unit (kg, liters, pieces); there is no unit
// conversion, so the requirement and the stock record must agree on the unit.
type Requirement struct {
	IngredientName string
	Quantity       float64
}

// requirements maps catalog item slug to its ordered ingredient list.
// Ingredient names are matched case-insensitively against stock records.
var requirements = map[string][]Requirement{
	// Tortas
	"torta-1": { // Torta de Carne Ahumada
		{IngredientName: "Carne ahumada", Quantity: 0.15},
		{IngredientName: "Aguacate", Quantity: 0.05},
		{IngredientName: "Jitomate", Quantity: 0.05},
		{IngredientName: "Cebolla", Quantity: 0.03},
		{IngredientName: "Pan para torta", Quantity: 1},
	},
	"torta-2": { // Torta Chichimeca
		{IngredientName: "Carne de res", Quantity: 0.15},
		{IngredientName: "Nopales", Quantity: 0.08},
		{IngredientName: "Queso Oaxaca", Quantity: 0.05},
		{IngredientName: "Salsa verde", Quantity: 0.03},
		{IngredientName: "Pan para torta", Quantity: 1},
	},
	"torta-3": { // Torta de Chistorra
		{IngredientName: "Chistorra (chorizo español)", Quantity: 0.12},
		{IngredientName: "Pimientos", Quantity: 0.05},
		{IngredientName: "Queso Manchego", Quantity: 0.04},
		{IngredientName: "Cebolla caramelizada", Quantity: 0.04},
		{IngredientName: "Pan para torta", Quantity: 1},
	},
	"torta-4": { // Torta de Jamón
		{IngredientName: "Jamón", Quantity: 0.1},
		{IngredientName: "Queso amarillo", Quantity: 0.05},
		{IngredientName: "Mayonesa", Quantity: 0.02},
		{IngredientName: "Pan para torta", Quantity: 1},
	},

	// Aguas frescas
	"agua-1": { // Horchata
		{IngredientName: "Concentrado de horchata", Quantity: 0.15},
		{IngredientName: "Canela", Quantity: 0.02},
		{IngredientName: "Leche condensada", Quantity: 0.05},
	},
	"agua-2": { // Jamaica
		{IngredientName: "Flor de jamaica", Quantity: 0.05},
		{IngredientName: "Azúcar", Quantity: 0.03},
	},
	"agua-3": { // Tamarindo
		{IngredientName: "Pulpa de tamarindo", Quantity: 0.08},
		{IngredientName: "Chile piquín", Quantity: 0.01},
		{IngredientName: "Azúcar", Quantity: 0.03},
	},

	// Papas
	"papas-1": { // Papas Fritas Naturales
		{IngredientName: "Papas", Quantity: 0.2},
		{IngredientName: "Aceite para freír", Quantity: 0.05},
		{IngredientName: "Sal de mar", Quantity: 0.01},
	},
	"papas-2": { // Papas Gajo
		{IngredientName: "Papas", Quantity: 0.25},
		{IngredientName: "Aceite para freír", Quantity: 0.06},
		{IngredientName: "Sal de mar", Quantity: 0.01},
	},
}

// RequirementsFor returns the ordered requirement list for a catalog item, or
// nil when no recipe is registered. Unknown ids are not an error: the
// resolver interprets an empty list as "always available".
func RequirementsFor(itemID string) []Requirement {
	return requirements[itemID]
}

// HasRecipe reports whether a recipe is registered for the item.
func HasRecipe(itemID string) bool {
	_, ok := requirements[itemID]
	return ok
}

// ItemIDs returns every catalog item slug with a registered recipe. Order is
// unspecified.
func ItemIDs() []string {
	ids := make([]string, 0, len(requirements))
	for id := range requirements {
		ids = append(ids, id)
	}
	return ids
}
