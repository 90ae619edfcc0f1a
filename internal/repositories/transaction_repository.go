package repositories

import (
	"errors"
	"time"

	"upipay_backend/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

type TransactionRepository interface {
	Insert(tx *models.Transaction) error
	FindByReference(reference string) (*models.Transaction, error)
	Update(reference string, patch map[string]interface{}) error
	// List returns newest-first.
	List() ([]models.Transaction, error)
	// SumAmountSince aggregates amounts for an address from a point in
	// time. Used for the daily ceiling; derived on demand, never a stored
	// counter, so it cannot drift.
	SumAmountSince(address string, since time.Time) (decimal.Decimal, error)
	// ListPendingCreatedBefore feeds the expiry sweep.
	ListPendingCreatedBefore(cutoff time.Time) ([]models.Transaction, error)
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Insert(tx *models.Transaction) error {
	return r.db.Create(tx).Error
}

func (r *transactionRepository) FindByReference(reference string) (*models.Transaction, error) {
	var tx models.Transaction
	err := r.db.Where("reference = ?", reference).First(&tx).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return &tx, nil
}

func (r *transactionRepository) Update(reference string, patch map[string]interface{}) error {
	result := r.db.Model(&models.Transaction{}).Where("reference = ?", reference).Updates(patch)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

func (r *transactionRepository) List() ([]models.Transaction, error) {
	var txs []models.Transaction
	err := r.db.Order("created_at DESC").Find(&txs).Error
	return txs, err
}

func (r *transactionRepository) SumAmountSince(address string, since time.Time) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	err := r.db.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("upi_id = ? AND created_at >= ?", address, since).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

func (r *transactionRepository) ListPendingCreatedBefore(cutoff time.Time) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := r.db.
		Where("status = ? AND created_at < ?", models.TransactionStatusPending, cutoff).
		Find(&txs).Error
	return txs, err
}
