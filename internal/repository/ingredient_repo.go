package repository

import (
	"go-torteria-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IngredientRepository interface {
	Create(ingredient *model.Ingredient) error
	FindAll() ([]model.Ingredient, error)
	FindByID(id uuid.UUID) (*model.Ingredient, error)
	FindByName(name string) (*model.Ingredient, error)
	FindLowStock() ([]model.Ingredient, error)
	Search(nameSubstring string) ([]model.Ingredient, error)
	Update(ingredient *model.Ingredient) error
	UpdateStock(id uuid.UUID, newQuantity float64, updatedBy string) error
	Delete(id uuid.UUID) error
}

type ingredientRepo struct {
	db *gorm.DB
}

func NewIngredientRepo(db *gorm.DB) IngredientRepository {
	return &ingredientRepo{db}
}

func (r *ingredientRepo) Create(ingredient *model.Ingredient) error {
	return r.db.Create(ingredient).Error
}

func (r *ingredientRepo) FindAll() ([]model.Ingredient, error) {
	var ingredients []model.Ingredient
	err := r.db.Order("name asc").Find(&ingredients).Error
	return ingredients, err
}

func (r *ingredientRepo) FindByID(id uuid.UUID) (*model.Ingredient, error) {
	var ingredient model.Ingredient
	err := r.db.First(&ingredient, "id = ?", id).Error
	return &ingredient, err
}

func (r *ingredientRepo) FindByName(name string) (*model.Ingredient, error) {
	var ingredient model.Ingredient
	err := r.db.First(&ingredient, "LOWER(name) = LOWER(?)", name).Error
	return &ingredient, err
}

// FindLowStock filters client-side: the column comparison is between two
// fields of the same row, and the list is small enough that one full read
// keeps the repository contract down to a single query shape.
func (r *ingredientRepo) FindLowStock() ([]model.Ingredient, error) {
	ingredients, err := r.FindAll()
	if err != nil {
		return nil, err
	}

	lowStock := []model.Ingredient{}
	for _, ing := range ingredients {
		if ing.IsLowStock() {
			lowStock = append(lowStock, ing)
		}
	}
	return lowStock, nil
}

func (r *ingredientRepo) Search(nameSubstring string) ([]model.Ingredient, error) {
	var ingredients []model.Ingredient
	err := r.db.
		Where("LOWER(name) LIKE LOWER(?)", "%"+nameSubstring+"%").
		Order("name asc").
		Find(&ingredients).Error
	return ingredients, err
}

func (r *ingredientRepo) Update(ingredient *model.Ingredient) error {
	return r.db.Save(ingredient).Error
}

// UpdateStock touches only stock_quantity (plus audit fields); updated_at is
// refreshed by GORM on the partial update.
func (r *ingredientRepo) UpdateStock(id uuid.UUID, newQuantity float64, updatedBy string) error {
	result := r.db.Model(&model.Ingredient{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"stock_quantity": newQuantity,
			"updated_by":     updatedBy,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ingredientRepo) Delete(id uuid.UUID) error {
	result := r.db.Delete(&model.Ingredient{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
