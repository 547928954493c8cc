package services

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kitchify/kitchify-server/models"
	"github.com/kitchify/kitchify-server/utils"
)

func setupLedgerDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Ingredient{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func seedIngredient(t *testing.T, db *gorm.DB, id string, qty, min float64) {
	t.Helper()
	ing := models.Ingredient{ID: id, Name: "Ingredient " + id, Quantity: qty, Unit: "units", Minimum: min}
	if err := db.Create(&ing).Error; err != nil {
		t.Fatalf("seed ingredient: %v", err)
	}
}

func TestDecrementIsConditional(t *testing.T) {
	db := setupLedgerDB(t)
	ledger := NewStockLedger(db)
	seedIngredient(t, db, "1", 5, 2)

	assert.NoError(t, ledger.Decrement("1", 3))

	ing, err := ledger.Find("1")
	assert.NoError(t, err)
	assert.Equal(t, 2.0, ing.Quantity)

	// More than remains: the conditional update must match nothing.
	err = ledger.Decrement("1", 3)
	assert.ErrorIs(t, err, ErrStockConflict)

	ing, err = ledger.Find("1")
	assert.NoError(t, err)
	assert.Equal(t, 2.0, ing.Quantity)

	// Unknown ingredient looks the same as insufficient stock.
	assert.ErrorIs(t, ledger.Decrement("nope", 1), ErrStockConflict)
}

func TestDecrementToExactlyZero(t *testing.T) {
	db := setupLedgerDB(t)
	ledger := NewStockLedger(db)
	seedIngredient(t, db, "1", 4, 1)

	assert.NoError(t, ledger.Decrement("1", 4))

	ing, err := ledger.Find("1")
	assert.NoError(t, err)
	assert.Equal(t, 0.0, ing.Quantity)
}

func TestIncrement(t *testing.T) {
	db := setupLedgerDB(t)
	ledger := NewStockLedger(db)
	seedIngredient(t, db, "1", 1, 2)

	ing, err := ledger.Increment("1", 10)
	assert.NoError(t, err)
	assert.Equal(t, 11.0, ing.Quantity)

	_, err = ledger.Increment("missing", 10)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestFindLowStock(t *testing.T) {
	db := setupLedgerDB(t)
	ledger := NewStockLedger(db)
	seedIngredient(t, db, "1", 5, 10) // below minimum
	seedIngredient(t, db, "2", 10, 10) // exactly at minimum counts as low
	seedIngredient(t, db, "3", 50, 10)

	low, err := ledger.FindLowStock()
	assert.NoError(t, err)
	assert.Len(t, low, 2)
	assert.Equal(t, "1", low[0].ID)
	assert.Equal(t, "2", low[1].ID)
}

func TestCheckAvailability(t *testing.T) {
	db := setupLedgerDB(t)
	ledger := NewStockLedger(db)
	seedIngredient(t, db, "1", 10, 2)
	seedIngredient(t, db, "2", 3, 1)

	reqs := []models.RecipeIngredient{
		{IngredientID: "1", Quantity: 2, Position: 0},
		{IngredientID: "2", Quantity: 1, Position: 1},
	}

	res, err := ledger.CheckAvailability(reqs, 3)
	assert.NoError(t, err)
	assert.True(t, res.Available)

	// Multiplier 4 needs 4 of "2" but only 3 exist.
	res, err = ledger.CheckAvailability(reqs, 4)
	assert.NoError(t, err)
	assert.False(t, res.Available)
	assert.Contains(t, res.Missing, "Ingredient 2")
	assert.Contains(t, res.Missing, "available: 3")
	assert.Contains(t, res.Missing, "required: 4")

	// Checking is read-only.
	ing, _ := ledger.Find("2")
	assert.Equal(t, 3.0, ing.Quantity)
}

func TestCheckAvailabilityReportsFirstFailure(t *testing.T) {
	db := setupLedgerDB(t)
	ledger := NewStockLedger(db)
	seedIngredient(t, db, "1", 1, 0)
	seedIngredient(t, db, "2", 1, 0)

	reqs := []models.RecipeIngredient{
		{IngredientID: "1", Quantity: 5, Position: 0},
		{IngredientID: "2", Quantity: 5, Position: 1},
	}

	// Both are short; the stored order decides which one gets reported.
	res, err := ledger.CheckAvailability(reqs, 1)
	assert.NoError(t, err)
	assert.False(t, res.Available)
	assert.Contains(t, res.Missing, "Ingredient 1")
}

func TestCheckAvailabilityUnknownIngredient(t *testing.T) {
	db := setupLedgerDB(t)
	ledger := NewStockLedger(db)

	res, err := ledger.CheckAvailability([]models.RecipeIngredient{
		{IngredientID: "ghost", Quantity: 1},
	}, 1)
	assert.NoError(t, err)
	assert.False(t, res.Available)
	assert.Contains(t, res.Missing, "ghost")
	assert.Contains(t, res.Missing, "not found")
}

func TestConcurrentDecrementsNeverGoNegative(t *testing.T) {
	// File-backed DB so every pooled connection sees the same ledger.
	db, err := gorm.Open(sqlite.Open(t.TempDir()+"/ledger.db"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.Ingredient{}))

	sqlDB, err := db.DB()
	assert.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	ledger := NewStockLedger(db)
	seedIngredient(t, db, "1", 5, 0)

	var wg sync.WaitGroup
	results := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- ledger.Decrement("1", 1)
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrStockConflict)
		}
	}
	assert.Equal(t, 5, succeeded)

	ing, err := ledger.Find("1")
	assert.NoError(t, err)
	assert.Equal(t, 0.0, ing.Quantity)
}

func TestMain(m *testing.M) {
	utils.InitLogger()
	m.Run()
}
