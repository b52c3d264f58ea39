package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product categories as shown on the menu
const (
	CategoryTorta = "torta"
	CategoryAgua  = "agua"
	CategoryPapas = "papas"
	CategoryCombo = "combo"
)

// Product is a sellable catalog item (torta, agua fresca, papas or combo).
//
// IsAvailable is the manually set admin override. It is independent from the
// ingredient-computed availability verdict; the two are surfaced separately
// and never reconciled automatically.
type Product struct {
	BaseModel
	Slug        string  `gorm:"type:varchar(50);uniqueIndex;not null" json:"slug" validate:"required"`
	Name        string  `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Description string  `gorm:"type:text" json:"description"`
	BasePrice   float64 `gorm:"type:decimal(10,2);default:0" json:"base_price" validate:"gte=0"`
	Category    string  `gorm:"type:varchar(20);not null;index" json:"category" validate:"required,oneof=torta agua papas combo"`
	ImageURL    *string `gorm:"type:text" json:"image_url,omitempty"`
	IsAvailable bool    `gorm:"default:true" json:"is_available"`

	// Constituent items, only populated for category "combo"
	ComboItems []ComboItem `gorm:"foreignKey:ComboID" json:"combo_items,omitempty"`
}

// IsCombo reports whether the product bundles other catalog items.
func (p *Product) IsCombo() bool {
	return p.Category == CategoryCombo
}

// ConstituentSlugs returns the catalog item slugs referenced by a combo, in
// declared order. Empty for non-combo products.
func (p *Product) ConstituentSlugs() []string {
	slugs := make([]string, len(p.ComboItems))
	for i, item := range p.ComboItems {
		slugs[i] = item.ProductSlug
	}
	return slugs
}

// ComboItem links a combo product to one of its constituent catalog items.
// Constituents are referenced by slug so combos keep working against the
// static recipe table even if a product row is reseeded.
type ComboItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	ComboID     uuid.UUID `gorm:"type:uuid;not null;index" json:"combo_id"`
	ProductSlug string    `gorm:"type:varchar(50);not null" json:"product_slug" validate:"required"`
	Quantity    int       `gorm:"default:1" json:"quantity" validate:"gte=1"`
	Position    int       `gorm:"default:0" json:"position"` // preserves declared order
}

// BeforeCreate mirrors BaseModel's UUID hook for the join row.
func (ci *ComboItem) BeforeCreate(tx *gorm.DB) error {
	if ci.ID == uuid.Nil {
		ci.ID = uuid.New()
	}
	return nil
}
