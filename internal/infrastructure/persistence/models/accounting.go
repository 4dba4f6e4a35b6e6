package models

import (
	"time"

	"github.com/fincore/backend/internal/domain/accounting"
	"github.com/google/uuid"
)

// GLAccountModel is the persistence model for a general-ledger account.
type GLAccountModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(200);not null"`
	GLCode    string    `gorm:"type:varchar(45);not null;uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (GLAccountModel) TableName() string {
	return "acc_gl_accounts"
}

// PaymentTypeModel is the persistence model for a payment type (payment channel).
type PaymentTypeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (PaymentTypeModel) TableName() string {
	return "payment_types"
}

// ChargeModel is the persistence model for a fee or penalty charge definition.
type ChargeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(200);not null"`
	IsPenalty bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (ChargeModel) TableName() string {
	return "charges"
}

// ProductMappingModel is the persistence model for one product-to-account
// configuration entry. Exactly one of PaymentTypeID / ChargeID may be set;
// a row with neither is a financial-account-role binding.
type ProductMappingModel struct {
	ID                   uuid.UUID                  `gorm:"type:uuid;primaryKey"`
	ProductID            uuid.UUID                  `gorm:"type:uuid;not null;index:idx_acc_mapping_product,priority:1"`
	ProductCategory      accounting.ProductCategory `gorm:"type:varchar(20);not null;index:idx_acc_mapping_product,priority:2"`
	FinancialAccountType int                        `gorm:"not null"`
	GLAccountID          uuid.UUID                  `gorm:"type:uuid;not null;index"`
	PaymentTypeID        *uuid.UUID                 `gorm:"type:uuid"`
	ChargeID             *uuid.UUID                 `gorm:"type:uuid"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName returns the table name for GORM
func (ProductMappingModel) TableName() string {
	return "acc_product_mappings"
}

// MappingRowRecord is the flat shape produced by joining a mapping row with
// its ledger account, payment type, and charge reference data. Nullable
// columns stay pointers so a dangling reference is visible to the domain.
type MappingRowRecord struct {
	ID                   uuid.UUID
	ProductID            uuid.UUID
	ProductCategory      string
	FinancialAccountType int
	GLAccountID          *uuid.UUID
	GLAccountName        *string
	GLCode               *string
	PaymentTypeID        *uuid.UUID
	PaymentTypeName      *string
	ChargeID             *uuid.UUID
	ChargeName           *string
	Penalty              *bool
}

// ToDomain converts the flat record into a domain MappingRow. A missing
// ledger account joins through as a nil LedgerAccount, which the resolver
// treats as an integrity fault.
func (r MappingRowRecord) ToDomain() accounting.MappingRow {
	row := accounting.MappingRow{
		ID:        r.ID,
		ProductID: r.ProductID,
		Category:  accounting.ProductCategory(r.ProductCategory),
		RoleCode:  accounting.RoleCode(r.FinancialAccountType),
	}

	if r.GLAccountID != nil {
		account := accounting.LedgerAccountRef{ID: *r.GLAccountID}
		if r.GLAccountName != nil {
			account.Name = *r.GLAccountName
		}
		if r.GLCode != nil {
			account.Code = *r.GLCode
		}
		row.LedgerAccount = &account
	}

	if r.PaymentTypeID != nil {
		channel := accounting.PaymentChannel{ID: *r.PaymentTypeID}
		if r.PaymentTypeName != nil {
			channel.Name = *r.PaymentTypeName
		}
		row.PaymentType = &channel
	}

	if r.ChargeID != nil {
		charge := accounting.ChargeRef{ID: *r.ChargeID}
		if r.ChargeName != nil {
			charge.Name = *r.ChargeName
		}
		if r.Penalty != nil {
			charge.IsPenalty = *r.Penalty
		}
		row.Charge = &charge
	}

	return row
}
