package accounting

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MappingReader fetches raw mapping rows for a product. The three methods
// correspond to the three row kinds; an implementation must never return a
// row of a different kind from any of them, and must fully populate
// reference data via its joins (a dangling ledger account comes back as a
// row with a nil LedgerAccount, never as a partially filled one).
type MappingReader interface {
	RoleRows(ctx context.Context, productID uuid.UUID, category ProductCategory) ([]MappingRow, error)
	PaymentChannelRows(ctx context.Context, productID uuid.UUID, category ProductCategory) ([]MappingRow, error)
	ChargeRows(ctx context.Context, productID uuid.UUID, category ProductCategory, penalty bool) ([]MappingRow, error)
}

// RoleAccounts maps semantic output keys (e.g. "fundSourceAccountId") to the
// ledger accounts bound to them.
type RoleAccounts map[string]LedgerAccountRef

// PaymentChannelAccount pairs a payment channel with its fund-source account.
type PaymentChannelAccount struct {
	Channel PaymentChannel
	Account LedgerAccountRef
}

// ChargeAccount pairs a charge with its income account.
type ChargeAccount struct {
	Charge  ChargeRef
	Account LedgerAccountRef
}

// MappingResolver classifies raw mapping rows into typed role, payment
// channel, and charge bindings. It is stateless: every resolution is a pure
// read of the store plus the process-constant role registry, so concurrent
// use needs no synchronization.
type MappingResolver struct {
	reader MappingReader
	logger *zap.Logger
}

// NewMappingResolver creates a MappingResolver over the given reader. A nil
// logger disables diagnostics.
func NewMappingResolver(reader MappingReader, logger *zap.Logger) *MappingResolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MappingResolver{
		reader: reader,
		logger: logger.Named("accounting.resolver"),
	}
}

// ResolveRoleAccounts returns the role→ledger-account bindings of a product
// under the given accounting rule.
//
// Rows whose role code is not registered for (category, rule) are skipped:
// variants intentionally define fewer roles, and a code outside the variant's
// table is configuration that does not apply, not an error. When two rows
// carry the same role code the one the store returned last wins; the
// collision is logged because two role rows for one role indicate corrupted
// product configuration.
func (r *MappingResolver) ResolveRoleAccounts(ctx context.Context, productID uuid.UUID, category ProductCategory, rule AccountingRuleType) (RoleAccounts, error) {
	rows, err := r.reader.RoleRows(ctx, productID, category)
	if err != nil {
		return nil, wrapStorageErr(err)
	}

	result := make(RoleAccounts, len(rows))
	for _, row := range rows {
		if row.Kind() != RowKindRole {
			r.logger.Warn("non-role row returned by role query, ignoring",
				zap.String("product_id", productID.String()),
				zap.String("row_id", row.ID.String()),
				zap.String("kind", string(row.Kind())),
			)
			continue
		}
		if row.LedgerAccount == nil {
			return nil, &MappingIntegrityError{
				RowID:     row.ID,
				ProductID: productID,
				Reason:    "role mapping references a ledger account that no longer exists",
			}
		}

		key, ok := OutputKey(category, rule, row.RoleCode)
		if !ok {
			r.logger.Warn("role code not registered for accounting rule, skipping row",
				zap.String("product_id", productID.String()),
				zap.String("category", category.String()),
				zap.String("accounting_rule", rule.String()),
				zap.Int("role_code", int(row.RoleCode)),
			)
			continue
		}

		if previous, exists := result[key]; exists {
			r.logger.Warn("duplicate role mapping, last row wins",
				zap.String("product_id", productID.String()),
				zap.String("output_key", key),
				zap.String("replaced_account", previous.ID.String()),
				zap.String("winning_account", row.LedgerAccount.ID.String()),
			)
		}
		result[key] = *row.LedgerAccount
	}

	return result, nil
}

// ResolvePaymentChannelAccounts returns the payment-channel fund-source
// bindings of a product, in the order the store returned them. Channel
// bindings apply regardless of the product's accounting rule.
func (r *MappingResolver) ResolvePaymentChannelAccounts(ctx context.Context, productID uuid.UUID, category ProductCategory) ([]PaymentChannelAccount, error) {
	rows, err := r.reader.PaymentChannelRows(ctx, productID, category)
	if err != nil {
		return nil, wrapStorageErr(err)
	}

	result := make([]PaymentChannelAccount, 0, len(rows))
	for _, row := range rows {
		if row.Kind() != RowKindPaymentChannel {
			r.logger.Warn("non-channel row returned by payment-channel query, ignoring",
				zap.String("product_id", productID.String()),
				zap.String("row_id", row.ID.String()),
				zap.String("kind", string(row.Kind())),
			)
			continue
		}
		if row.LedgerAccount == nil {
			return nil, &MappingIntegrityError{
				RowID:     row.ID,
				ProductID: productID,
				Reason:    "payment channel mapping references a ledger account that no longer exists",
			}
		}
		result = append(result, PaymentChannelAccount{
			Channel: *row.PaymentType,
			Account: *row.LedgerAccount,
		})
	}

	return result, nil
}

// ResolveChargeAccounts returns the charge→income-account bindings of a
// product, restricted to penalty charges when penalty is true and to fee
// charges otherwise. Ordering follows the store like payment channels.
func (r *MappingResolver) ResolveChargeAccounts(ctx context.Context, productID uuid.UUID, category ProductCategory, penalty bool) ([]ChargeAccount, error) {
	rows, err := r.reader.ChargeRows(ctx, productID, category, penalty)
	if err != nil {
		return nil, wrapStorageErr(err)
	}

	result := make([]ChargeAccount, 0, len(rows))
	for _, row := range rows {
		if row.Kind() != RowKindCharge {
			r.logger.Warn("non-charge row returned by charge query, ignoring",
				zap.String("product_id", productID.String()),
				zap.String("row_id", row.ID.String()),
				zap.String("kind", string(row.Kind())),
			)
			continue
		}
		if row.Charge.IsPenalty != penalty {
			continue
		}
		if row.LedgerAccount == nil {
			return nil, &MappingIntegrityError{
				RowID:     row.ID,
				ProductID: productID,
				Reason:    "charge mapping references a ledger account that no longer exists",
			}
		}
		result = append(result, ChargeAccount{
			Charge:  *row.Charge,
			Account: *row.LedgerAccount,
		})
	}

	return result, nil
}
