package model

// Ingredient is a stocked raw material tracked by the admin panel.
// StockQuantity and MinStockLevel share the same Unit; quantities are never
// converted between units.
type Ingredient struct {
	BaseModel
	Name          string  `gorm:"type:varchar(255);uniqueIndex;not null" json:"name" validate:"required"`
	StockQuantity float64 `gorm:"type:decimal(10,3);default:0" json:"stock_quantity" validate:"gte=0"`
	MinStockLevel float64 `gorm:"type:decimal(10,3);default:0" json:"min_stock_level" validate:"gte=0"`
	Unit          string  `gorm:"type:varchar(20)" json:"unit" validate:"required"`
}

// IsLowStock reports whether the remaining quantity is at or below the
// reorder threshold. Advisory only; a low ingredient can still cover a recipe.
func (i *Ingredient) IsLowStock() bool {
	return i.StockQuantity <= i.MinStockLevel
}
