package service

import (
	"errors"
	"testing"

	"go-torteria-api/internal/model"
	"go-torteria-api/internal/repository"
)

func newCatalogFixture(t *testing.T) CatalogService {
	t.Helper()
	db := openTestDB(t)
	return NewCatalogService(repository.NewProductRepo(db))
}

func seedCatalog(t *testing.T, svc CatalogService) {
	t.Helper()
	products := []*model.Product{
		{Slug: "torta-4", Name: "Torta de Jamón", BasePrice: 65, Category: model.CategoryTorta, IsAvailable: true},
		{Slug: "agua-2", Name: "Agua de Jamaica", BasePrice: 20, Category: model.CategoryAgua, IsAvailable: true},
		{Slug: "combo-3", Name: "Combo Entre Clases", BasePrice: 65, Category: model.CategoryCombo, IsAvailable: true, ComboItems: []model.ComboItem{
			{ProductSlug: "torta-4", Quantity: 1, Position: 0},
			{ProductSlug: "agua-2", Quantity: 1, Position: 1},
		}},
	}
	for _, p := range products {
		if err := svc.CreateProduct(p, "admin@example.com"); err != nil {
			t.Fatalf("seed product %s: %v", p.Slug, err)
		}
	}
}

func TestCreateProductRejectsDuplicateSlug(t *testing.T) {
	svc := newCatalogFixture(t)
	seedCatalog(t, svc)

	dup := &model.Product{Slug: "torta-4", Name: "Otra Torta", BasePrice: 60, Category: model.CategoryTorta}
	if err := svc.CreateProduct(dup, "a@b.c"); !errors.Is(err, ErrSlugExists) {
		t.Fatalf("expected ErrSlugExists, got %v", err)
	}
}

func TestCreateProductRejectsUnknownCategory(t *testing.T) {
	svc := newCatalogFixture(t)

	bad := &model.Product{Slug: "postre-1", Name: "Flan", BasePrice: 30, Category: "postre"}
	if err := svc.CreateProduct(bad, "a@b.c"); err == nil {
		t.Fatal("expected validation error for unknown category")
	}
}

func TestGetComboConstituents(t *testing.T) {
	svc := newCatalogFixture(t)
	seedCatalog(t, svc)

	combo, constituents, err := svc.GetComboConstituents("combo-3")
	if err != nil {
		t.Fatalf("GetComboConstituents: %v", err)
	}
	if combo.Slug != "combo-3" {
		t.Errorf("expected combo-3, got %s", combo.Slug)
	}
	if len(constituents) != 2 || constituents[0] != "torta-4" || constituents[1] != "agua-2" {
		t.Fatalf("expected ordered [torta-4 agua-2], got %v", constituents)
	}
}

func TestGetComboConstituentsRejectsNonCombo(t *testing.T) {
	svc := newCatalogFixture(t)
	seedCatalog(t, svc)

	if _, _, err := svc.GetComboConstituents("torta-4"); !errors.Is(err, ErrNotACombo) {
		t.Fatalf("expected ErrNotACombo, got %v", err)
	}
	if _, _, err := svc.GetComboConstituents("combo-99"); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestToggleAvailabilityIsIndependentOfVerdicts(t *testing.T) {
	svc := newCatalogFixture(t)
	seedCatalog(t, svc)

	product, err := svc.GetProductBySlug("torta-4")
	if err != nil {
		t.Fatalf("GetProductBySlug: %v", err)
	}

	updated, err := svc.ToggleAvailability(product.ID, false, "admin@example.com")
	if err != nil {
		t.Fatalf("ToggleAvailability: %v", err)
	}
	if updated.IsAvailable {
		t.Error("expected manual flag off")
	}

	// The manual flag only drives the catalog filter; no resolver involved
	available, err := svc.GetAvailableProducts()
	if err != nil {
		t.Fatalf("GetAvailableProducts: %v", err)
	}
	for _, p := range available {
		if p.Slug == "torta-4" {
			t.Error("manually disabled product still listed as available")
		}
	}
}

func TestUpdateProductReplacesComboItems(t *testing.T) {
	svc := newCatalogFixture(t)
	seedCatalog(t, svc)

	combo, err := svc.GetProductBySlug("combo-3")
	if err != nil {
		t.Fatalf("GetProductBySlug: %v", err)
	}

	patch := &model.Product{
		Slug:        combo.Slug,
		Name:        combo.Name,
		BasePrice:   combo.BasePrice,
		Category:    combo.Category,
		IsAvailable: combo.IsAvailable,
		ComboItems: []model.ComboItem{
			{ProductSlug: "torta-4", Quantity: 2},
		},
	}
	updated, err := svc.UpdateProduct(combo.ID, patch, "admin@example.com")
	if err != nil {
		t.Fatalf("UpdateProduct: %v", err)
	}
	slugs := updated.ConstituentSlugs()
	if len(slugs) != 1 || slugs[0] != "torta-4" {
		t.Fatalf("expected constituents [torta-4], got %v", slugs)
	}
}

func TestSearchProducts(t *testing.T) {
	svc := newCatalogFixture(t)
	seedCatalog(t, svc)

	results, err := svc.SearchProducts("jam")
	if err != nil {
		t.Fatalf("SearchProducts: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 matches (torta + agua), got %d", len(results))
	}
}
