package persistence

import (
	"context"

	"github.com/fincore/backend/internal/domain/accounting"
	"github.com/fincore/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAccountMappingRepository implements accounting.MappingReader using GORM.
// It performs no interpretation: every method returns fully joined raw rows
// and leaves classification to the resolver.
type GormAccountMappingRepository struct {
	db *gorm.DB
}

// NewGormAccountMappingRepository creates a new GormAccountMappingRepository
func NewGormAccountMappingRepository(db *gorm.DB) *GormAccountMappingRepository {
	return &GormAccountMappingRepository{db: db}
}

// mappingSelect is the join shared by all three query shapes. The LEFT JOIN
// on gl accounts keeps rows whose account reference dangles, so the resolver
// can report them instead of a query silently dropping them.
func (r *GormAccountMappingRepository) mappingSelect(ctx context.Context, productID uuid.UUID, category accounting.ProductCategory) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("acc_product_mappings AS mapping").
		Select("mapping.id, mapping.product_id, mapping.product_category, mapping.financial_account_type, " +
			"gl.id AS gl_account_id, gl.name AS gl_account_name, gl.gl_code, " +
			"pt.id AS payment_type_id, pt.name AS payment_type_name, " +
			"charge.id AS charge_id, charge.name AS charge_name, charge.is_penalty AS penalty").
		Joins("LEFT JOIN acc_gl_accounts AS gl ON gl.id = mapping.gl_account_id").
		Joins("LEFT JOIN payment_types AS pt ON pt.id = mapping.payment_type_id").
		Joins("LEFT JOIN charges AS charge ON charge.id = mapping.charge_id").
		Where("mapping.product_id = ? AND mapping.product_category = ?", productID, category).
		Order("mapping.id ASC")
}

// RoleRows returns the financial-account-role rows of a product: mappings
// bound to neither a payment type nor a charge.
func (r *GormAccountMappingRepository) RoleRows(ctx context.Context, productID uuid.UUID, category accounting.ProductCategory) ([]accounting.MappingRow, error) {
	var records []models.MappingRowRecord
	err := r.mappingSelect(ctx, productID, category).
		Where("mapping.payment_type_id IS NULL AND mapping.charge_id IS NULL").
		Scan(&records).Error
	if err != nil {
		return nil, &accounting.StorageUnavailableError{Err: err}
	}
	return toMappingRows(records), nil
}

// PaymentChannelRows returns the payment-channel rows of a product.
func (r *GormAccountMappingRepository) PaymentChannelRows(ctx context.Context, productID uuid.UUID, category accounting.ProductCategory) ([]accounting.MappingRow, error) {
	var records []models.MappingRowRecord
	err := r.mappingSelect(ctx, productID, category).
		Where("mapping.payment_type_id IS NOT NULL").
		Scan(&records).Error
	if err != nil {
		return nil, &accounting.StorageUnavailableError{Err: err}
	}
	return toMappingRows(records), nil
}

// ChargeRows returns the charge rows of a product filtered by the penalty
// flag on the joined charge definition.
func (r *GormAccountMappingRepository) ChargeRows(ctx context.Context, productID uuid.UUID, category accounting.ProductCategory, penalty bool) ([]accounting.MappingRow, error) {
	var records []models.MappingRowRecord
	err := r.mappingSelect(ctx, productID, category).
		Where("mapping.charge_id IS NOT NULL AND charge.is_penalty = ?", penalty).
		Scan(&records).Error
	if err != nil {
		return nil, &accounting.StorageUnavailableError{Err: err}
	}
	return toMappingRows(records), nil
}

func toMappingRows(records []models.MappingRowRecord) []accounting.MappingRow {
	rows := make([]accounting.MappingRow, len(records))
	for i, record := range records {
		rows[i] = record.ToDomain()
	}
	return rows
}

// Ensure GormAccountMappingRepository implements accounting.MappingReader
var _ accounting.MappingReader = (*GormAccountMappingRepository)(nil)
