package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/kitchify/kitchify-server/models"
)

// ErrStockConflict is returned by Decrement when the conditional update
// matched no row: either the ingredient is gone or its quantity dropped below
// the requested amount since the availability check.
var ErrStockConflict = errors.New("insufficient stock or unknown ingredient")

// StockLedger owns every mutation of ingredient quantities. Decrement is a
// single conditional UPDATE so the quantity can never be driven negative,
// even by concurrent orders that each passed an availability check.
type StockLedger struct {
	db *gorm.DB
}

func NewStockLedger(db *gorm.DB) *StockLedger {
	return &StockLedger{db: db}
}

// WithTx returns a ledger bound to a transaction handle, so deductions can be
// rolled back together with the order row.
func (l *StockLedger) WithTx(tx *gorm.DB) *StockLedger {
	return &StockLedger{db: tx}
}

func (l *StockLedger) Find(id string) (*models.Ingredient, error) {
	var ing models.Ingredient
	if err := l.db.First(&ing, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ing, nil
}

func (l *StockLedger) All() ([]models.Ingredient, error) {
	var ings []models.Ingredient
	if err := l.db.Order("id asc").Find(&ings).Error; err != nil {
		return nil, err
	}
	return ings, nil
}

// FindLowStock returns all ingredients at or below their minimum.
func (l *StockLedger) FindLowStock() ([]models.Ingredient, error) {
	var ings []models.Ingredient
	if err := l.db.Where("quantity <= minimum").Order("id asc").Find(&ings).Error; err != nil {
		return nil, err
	}
	return ings, nil
}

// Decrement reduces an ingredient's quantity by amount, but only if the
// resulting quantity stays >= 0. The guard lives in the WHERE clause so the
// read-modify-write happens atomically in the database, not in application
// code. Returns ErrStockConflict when nothing was updated.
func (l *StockLedger) Decrement(id string, amount float64) error {
	res := l.db.Model(&models.Ingredient{}).
		Where("id = ? AND quantity >= ?", id, amount).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("decrement %s by %v: %w", id, amount, ErrStockConflict)
	}
	return nil
}

// Increment restocks an ingredient. Amount must be positive; that is
// validated at the HTTP boundary, not here.
func (l *StockLedger) Increment(id string, amount float64) (*models.Ingredient, error) {
	res := l.db.Model(&models.Ingredient{}).
		Where("id = ?", id).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", amount))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return l.Find(id)
}

// ResetQuantity sets an ingredient's quantity to an absolute value. Only used
// by the demo/test reset path; normal operation never overwrites quantities.
func (l *StockLedger) ResetQuantity(id string, quantity float64) error {
	return l.db.Model(&models.Ingredient{}).
		Where("id = ?", id).
		UpdateColumn("quantity", quantity).Error
}
