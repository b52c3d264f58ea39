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
	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrIngredientExists   = errors.New("ingredient with this name already exists")
	ErrNegativeStock      = errors.New("stock quantity cannot be negative")
)

// InventoryService covers the admin panel's ingredient management. Mutations
// are single-row and last-write-wins; the availability resolver picks up
// changes on its next snapshot fetch.
type InventoryService interface {
	CreateIngredient(req *model.Ingredient, updatedBy string) error
	UpdateIngredient(id uuid.UUID, req *model.Ingredient, updatedBy string) (*model.Ingredient, error)
	SetStock(id uuid.UUID, newQuantity float64, updatedBy string) (*model.Ingredient, error)
	DeleteIngredient(id uuid.UUID) error
	GetAllIngredients() ([]model.Ingredient, error)
	GetLowStockIngredients() ([]model.Ingredient, error)
	SearchIngredients(query string) ([]model.Ingredient, error)
}

type inventoryService struct {
	ingredientRepo repository.IngredientRepository
}

func NewInventoryService(ingredientRepo repository.IngredientRepository) InventoryService {
	return &inventoryService{ingredientRepo: ingredientRepo}
}

func (s *inventoryService) CreateIngredient(req *model.Ingredient, updatedBy string) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return validator.FirstError(errs)
	}

	// Names are the matching key for recipe requirements, so they must be
	// unique case-insensitively. This also pins one unit per name.
	existing, _ := s.ingredientRepo.FindByName(req.Name)
	if existing != nil && existing.ID != uuid.Nil {
		return ErrIngredientExists
	}

	req.CreatedBy = updatedBy
	req.UpdatedBy = updatedBy
	return s.ingredientRepo.Create(req)
}

func (s *inventoryService) UpdateIngredient(id uuid.UUID, req *model.Ingredient, updatedBy string) (*model.Ingredient, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validator.FirstError(errs)
	}

	existing, err := s.ingredientRepo.FindByID(id)
	if err != nil {
		return nil, ErrIngredientNotFound
	}

	// Renaming onto another ingredient would merge two recipe keys
	if req.Name != existing.Name {
		other, _ := s.ingredientRepo.FindByName(req.Name)
		if other != nil && other.ID != uuid.Nil && other.ID != id {
			return nil, ErrIngredientExists
		}
	}

	existing.Name = req.Name
	existing.StockQuantity = req.StockQuantity
	existing.MinStockLevel = req.MinStockLevel
	existing.Unit = req.Unit
	existing.UpdatedBy = updatedBy

	if err := s.ingredientRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// SetStock is the convenience path behind the admin panel's quick stock
// field: it touches only the quantity, leaving the rest of the record alone.
func (s *inventoryService) SetStock(id uuid.UUID, newQuantity float64, updatedBy string) (*model.Ingredient, error) {
	if newQuantity < 0 {
		return nil, ErrNegativeStock
	}

	if err := s.ingredientRepo.UpdateStock(id, newQuantity, updatedBy); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIngredientNotFound
		}
		return nil, err
	}

	return s.ingredientRepo.FindByID(id)
}

func (s *inventoryService) DeleteIngredient(id uuid.UUID) error {
	if err := s.ingredientRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrIngredientNotFound
		}
		return err
	}
	return nil
}

func (s *inventoryService) GetAllIngredients() ([]model.Ingredient, error) {
	return s.ingredientRepo.FindAll()
}

func (s *inventoryService) GetLowStockIngredients() ([]model.Ingredient, error) {
	return s.ingredientRepo.FindLowStock()
}

func (s *inventoryService) SearchIngredients(query string) ([]model.Ingredient, error) {
	return s.ingredientRepo.Search(query)
}
