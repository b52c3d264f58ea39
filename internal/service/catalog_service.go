package service

import (
	"errors"

	"go-torteria-api/internal/model"
	"go-torteria-api/internal/repository"
	"go-torteria-api/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrSlugExists      = errors.New("product with this slug already exists")
	ErrNotACombo       = errors.New("product is not a combo")
)

// CatalogService manages the product and combo catalog. The IsAvailable flag
// it toggles is the manual admin override; computed ingredient verdicts come
// from AvailabilityService and the two are never merged here.
type CatalogService interface {
	CreateProduct(req *model.Product, updatedBy string) error
	UpdateProduct(id uuid.UUID, req *model.Product, updatedBy string) (*model.Product, error)
	ToggleAvailability(id uuid.UUID, isAvailable bool, updatedBy string) (*model.Product, error)
	DeleteProduct(id uuid.UUID) error
	GetAllProducts() ([]model.Product, error)
	GetProductBySlug(slug string) (*model.Product, error)
	GetProductsByCategory(category string) ([]model.Product, error)
	GetAvailableProducts() ([]model.Product, error)
	GetCombos() ([]model.Product, error)
	GetComboConstituents(slug string) (*model.Product, []string, error)
	SearchProducts(query string) ([]model.Product, error)
}

type catalogService struct {
	productRepo repository.ProductRepository
}

func NewCatalogService(productRepo repository.ProductRepository) CatalogService {
	return &catalogService{productRepo: productRepo}
}

func (s *catalogService) CreateProduct(req *model.Product, updatedBy string) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return validator.FirstError(errs)
	}

	existing, _ := s.productRepo.FindBySlug(req.Slug)
	if existing != nil && existing.ID != uuid.Nil {
		return ErrSlugExists
	}

	req.CreatedBy = updatedBy
	req.UpdatedBy = updatedBy
	return s.productRepo.Create(req)
}

func (s *catalogService) UpdateProduct(id uuid.UUID, req *model.Product, updatedBy string) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validator.FirstError(errs)
	}

	existing, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, ErrProductNotFound
	}

	if req.Slug != existing.Slug {
		other, _ := s.productRepo.FindBySlug(req.Slug)
		if other != nil && other.ID != uuid.Nil && other.ID != id {
			return nil, ErrSlugExists
		}
	}

	existing.Slug = req.Slug
	existing.Name = req.Name
	existing.Description = req.Description
	existing.BasePrice = req.BasePrice
	existing.Category = req.Category
	existing.ImageURL = req.ImageURL
	existing.IsAvailable = req.IsAvailable
	existing.UpdatedBy = updatedBy

	if err := s.productRepo.Update(existing); err != nil {
		return nil, err
	}

	// Combo constituents are replaced wholesale when provided
	if existing.IsCombo() && req.ComboItems != nil {
		if err := s.productRepo.ReplaceComboItems(existing.ID, req.ComboItems); err != nil {
			return nil, err
		}
		return s.productRepo.FindByID(id)
	}

	return existing, nil
}

func (s *catalogService) ToggleAvailability(id uuid.UUID, isAvailable bool, updatedBy string) (*model.Product, error) {
	if err := s.productRepo.SetAvailability(id, isAvailable, updatedBy); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return s.productRepo.FindByID(id)
}

func (s *catalogService) DeleteProduct(id uuid.UUID) error {
	if err := s.productRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	return nil
}

func (s *catalogService) GetAllProducts() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

func (s *catalogService) GetProductBySlug(slug string) (*model.Product, error) {
	product, err := s.productRepo.FindBySlug(slug)
	if err != nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *catalogService) GetProductsByCategory(category string) ([]model.Product, error) {
	return s.productRepo.FindByCategory(category)
}

func (s *catalogService) GetAvailableProducts() ([]model.Product, error) {
	return s.productRepo.FindAvailable()
}

func (s *catalogService) GetCombos() ([]model.Product, error) {
	return s.productRepo.FindByCategory(model.CategoryCombo)
}

// GetComboConstituents resolves a combo slug to its constituent item slugs,
// in declared order, for the availability resolver.
func (s *catalogService) GetComboConstituents(slug string) (*model.Product, []string, error) {
	combo, err := s.productRepo.FindBySlug(slug)
	if err != nil {
		return nil, nil, ErrProductNotFound
	}
	if !combo.IsCombo() {
		return nil, nil, ErrNotACombo
	}
	return combo, combo.ConstituentSlugs(), nil
}

func (s *catalogService) SearchProducts(query string) ([]model.Product, error) {
	return s.productRepo.Search(query)
}
