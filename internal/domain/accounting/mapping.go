package accounting

import "github.com/google/uuid"

// LedgerAccountRef identifies the general-ledger account a mapping binds to.
// Immutable value; copied into results, never shared.
type LedgerAccountRef struct {
	ID   uuid.UUID
	Name string
	Code string
}

// PaymentChannel is a payment method (cash, bank transfer, ...) that can
// carry its own dedicated fund-source account.
type PaymentChannel struct {
	ID   uuid.UUID
	Name string
}

// ChargeRef identifies a fee or penalty charge definition.
type ChargeRef struct {
	ID        uuid.UUID
	Name      string
	IsPenalty bool
}

// RowKind discriminates the three mutually exclusive kinds of mapping row.
type RowKind string

const (
	// RowKindRole binds a financial account role to a ledger account
	RowKindRole RowKind = "ROLE"

	// RowKindPaymentChannel binds a payment type to a fund-source account
	RowKindPaymentChannel RowKind = "PAYMENT_CHANNEL"

	// RowKindCharge binds a charge to an income account
	RowKindCharge RowKind = "CHARGE"
)

// MappingRow is one raw product-to-account configuration record as read from
// storage. Rows are ephemeral: built per resolution call and discarded after
// assembly.
//
// LedgerAccount is nil only when the persisted account reference dangles
// (the referenced GL account no longer exists); such a row is invalid and
// the resolver reports it as an integrity fault.
type MappingRow struct {
	ID            uuid.UUID
	ProductID     uuid.UUID
	Category      ProductCategory
	RoleCode      RoleCode
	LedgerAccount *LedgerAccountRef
	PaymentType   *PaymentChannel
	Charge        *ChargeRef
}

// Kind classifies the row by its discriminant fields. A row with a payment
// type is a payment-channel row, a row with a charge is a charge row, and a
// row with neither is a role row.
func (r MappingRow) Kind() RowKind {
	switch {
	case r.PaymentType != nil:
		return RowKindPaymentChannel
	case r.Charge != nil:
		return RowKindCharge
	default:
		return RowKindRole
	}
}
