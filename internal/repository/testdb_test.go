package repository

import (
	"fmt"
	"testing"

	"go-torteria-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB spins up an isolated in-memory sqlite database per test.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&model.Ingredient{}, &model.Product{}, &model.ComboItem{}, &model.User{}); err != nil {
		t.Fatalf("failed to migrate sqlite: %v", err)
	}
	return conn
}

func mustCreateIngredient(t *testing.T, db *gorm.DB, name string, stock, min float64) *model.Ingredient {
	t.Helper()
	ing := &model.Ingredient{
		Name:          name,
		StockQuantity: stock,
		MinStockLevel: min,
		Unit:          "kg",
	}
	if err := db.Create(ing).Error; err != nil {
		t.Fatalf("create ingredient %q: %v", name, err)
	}
	return ing
}
