package repository

import (
	"errors"
	"testing"

	"go-torteria-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func mustCreateProduct(t *testing.T, db *gorm.DB, slug, name, category string, available bool) *model.Product {
	t.Helper()
	p := &model.Product{
		Slug:        slug,
		Name:        name,
		BasePrice:   50,
		Category:    category,
		IsAvailable: available,
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("create product %q: %v", slug, err)
	}
	return p
}

func TestProductFindAllOrdersByCategoryThenName(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductRepo(db)

	mustCreateProduct(t, db, "torta-4", "Torta de Jamón", model.CategoryTorta, true)
	mustCreateProduct(t, db, "agua-2", "Agua de Jamaica", model.CategoryAgua, true)
	mustCreateProduct(t, db, "torta-1", "Torta de Carne Ahumada", model.CategoryTorta, true)

	products, err := repo.FindAll()
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("expected 3 products, got %d", len(products))
	}
	if products[0].Category != model.CategoryAgua {
		t.Errorf("expected agua category first, got %s", products[0].Category)
	}
	if products[1].Name != "Torta de Carne Ahumada" {
		t.Errorf("expected name ordering within category, got %s", products[1].Name)
	}
}

func TestProductFindAvailableFiltersManualFlag(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductRepo(db)

	mustCreateProduct(t, db, "torta-4", "Torta de Jamón", model.CategoryTorta, true)
	mustCreateProduct(t, db, "torta-3", "Torta de Chistorra", model.CategoryTorta, false)

	available, err := repo.FindAvailable()
	if err != nil {
		t.Fatalf("FindAvailable: %v", err)
	}
	if len(available) != 1 || available[0].Slug != "torta-4" {
		t.Fatalf("expected only torta-4, got %+v", available)
	}
}

func TestProductComboItemsPreloadedInOrder(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductRepo(db)

	combo := &model.Product{
		Slug:        "combo-3",
		Name:        "Combo Entre Clases",
		BasePrice:   65,
		Category:    model.CategoryCombo,
		IsAvailable: true,
		ComboItems: []model.ComboItem{
			{ProductSlug: "torta-4", Quantity: 1, Position: 0},
			{ProductSlug: "agua-2", Quantity: 1, Position: 1},
		},
	}
	if err := repo.Create(combo); err != nil {
		t.Fatalf("Create combo: %v", err)
	}

	found, err := repo.FindBySlug("combo-3")
	if err != nil {
		t.Fatalf("FindBySlug: %v", err)
	}
	slugs := found.ConstituentSlugs()
	if len(slugs) != 2 || slugs[0] != "torta-4" || slugs[1] != "agua-2" {
		t.Fatalf("expected ordered constituents [torta-4 agua-2], got %v", slugs)
	}
}

func TestProductReplaceComboItems(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductRepo(db)

	combo := &model.Product{
		Slug:        "combo-2",
		Name:        "Combo Estudiante",
		BasePrice:   80,
		Category:    model.CategoryCombo,
		IsAvailable: true,
		ComboItems: []model.ComboItem{
			{ProductSlug: "torta-4", Quantity: 1},
		},
	}
	if err := repo.Create(combo); err != nil {
		t.Fatalf("Create combo: %v", err)
	}

	newItems := []model.ComboItem{
		{ProductSlug: "torta-2", Quantity: 1},
		{ProductSlug: "agua-1", Quantity: 1},
	}
	if err := repo.ReplaceComboItems(combo.ID, newItems); err != nil {
		t.Fatalf("ReplaceComboItems: %v", err)
	}

	found, err := repo.FindByID(combo.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	slugs := found.ConstituentSlugs()
	if len(slugs) != 2 || slugs[0] != "torta-2" || slugs[1] != "agua-1" {
		t.Fatalf("expected replaced constituents [torta-2 agua-1], got %v", slugs)
	}
}

func TestProductSetAvailability(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductRepo(db)

	p := mustCreateProduct(t, db, "papas-1", "Papas Fritas Naturales", model.CategoryPapas, true)

	if err := repo.SetAvailability(p.ID, false, "admin@example.com"); err != nil {
		t.Fatalf("SetAvailability: %v", err)
	}
	found, err := repo.FindByID(p.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found.IsAvailable {
		t.Error("expected product to be unavailable")
	}

	if err := repo.SetAvailability(uuid.New(), true, "admin@example.com"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound for unknown id, got %v", err)
	}
}

func TestProductDeleteRemovesComboItems(t *testing.T) {
	db := openTestDB(t)
	repo := NewProductRepo(db)

	combo := &model.Product{
		Slug:        "combo-1",
		Name:        "Combo de Amigas",
		BasePrice:   150,
		Category:    model.CategoryCombo,
		IsAvailable: true,
		ComboItems: []model.ComboItem{
			{ProductSlug: "torta-4", Quantity: 2},
			{ProductSlug: "papas-1", Quantity: 1},
		},
	}
	if err := repo.Create(combo); err != nil {
		t.Fatalf("Create combo: %v", err)
	}

	if err := repo.Delete(combo.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	var count int64
	if err := db.Model(&model.ComboItem{}).Where("combo_id = ?", combo.ID).Count(&count).Error; err != nil {
		t.Fatalf("count combo items: %v", err)
	}
	if count != 0 {
		t.Errorf("expected combo items removed, %d remain", count)
	}
}
