package repository

import (
	"go-torteria-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll() ([]model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	FindBySlug(slug string) (*model.Product, error)
	FindByCategory(category string) ([]model.Product, error)
	FindAvailable() ([]model.Product, error)
	Search(nameSubstring string) ([]model.Product, error)
	Update(product *model.Product) error
	SetAvailability(id uuid.UUID, isAvailable bool, updatedBy string) error
	ReplaceComboItems(comboID uuid.UUID, items []model.ComboItem) error
	Delete(id uuid.UUID) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func comboItemsOrdered(db *gorm.DB) *gorm.DB {
	return db.Order("combo_items.position asc")
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Preload("ComboItems", comboItemsOrdered).
		Order("category asc").Order("name asc").
		Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("ComboItems", comboItemsOrdered).First(&product, "id = ?", id).Error
	return &product, err
}

func (r *productRepo) FindBySlug(slug string) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("ComboItems", comboItemsOrdered).First(&product, "slug = ?", slug).Error
	return &product, err
}

func (r *productRepo) FindByCategory(category string) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Preload("ComboItems", comboItemsOrdered).
		Where("category = ?", category).
		Order("name asc").
		Find(&products).Error
	return products, err
}

// FindAvailable filters on the manually set admin flag only. The computed
// ingredient verdicts are a separate signal served by the availability API.
func (r *productRepo) FindAvailable() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Preload("ComboItems", comboItemsOrdered).
		Where("is_available = ?", true).
		Order("category asc").Order("name asc").
		Find(&products).Error
	return products, err
}

func (r *productRepo) Search(nameSubstring string) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Preload("ComboItems", comboItemsOrdered).
		Where("LOWER(name) LIKE LOWER(?)", "%"+nameSubstring+"%").
		Order("name asc").
		Find(&products).Error
	return products, err
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) SetAvailability(id uuid.UUID, isAvailable bool, updatedBy string) error {
	result := r.db.Model(&model.Product{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_available": isAvailable,
			"updated_by":   updatedBy,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ReplaceComboItems swaps a combo's constituent rows atomically.
func (r *productRepo) ReplaceComboItems(comboID uuid.UUID, items []model.ComboItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.ComboItem{}, "combo_id = ?", comboID).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].ComboID = comboID
			items[i].Position = i
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}

func (r *productRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.ComboItem{}, "combo_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Product{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
