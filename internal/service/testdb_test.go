package service

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
