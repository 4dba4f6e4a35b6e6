package accounting

import (
	"context"

	"github.com/fincore/backend/internal/domain/accounting"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MappingService shapes resolver output into the caller-facing result
// structures. Empty results are always empty collections, never nil: a
// product with no configuration and a product whose accounting rule has no
// registered roles both produce an empty shape, and only diagnostics tell
// them apart.
type MappingService struct {
	resolver *accounting.MappingResolver
	logger   *zap.Logger
}

// NewMappingService creates a new MappingService
func NewMappingService(reader accounting.MappingReader, logger *zap.Logger) *MappingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MappingService{
		resolver: accounting.NewMappingResolver(reader, logger),
		logger:   logger.Named("accounting.mappings"),
	}
}

// ===================== Response DTOs =====================

// LedgerAccountResponse represents a resolved ledger account binding
type LedgerAccountResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Code string    `json:"code"`
}

// PaymentChannelMappingResponse pairs a payment type with its fund-source account
type PaymentChannelMappingResponse struct {
	PaymentTypeID   uuid.UUID             `json:"payment_type_id"`
	PaymentTypeName string                `json:"payment_type_name"`
	FundSource      LedgerAccountResponse `json:"fund_source_account"`
}

// ChargeMappingResponse pairs a charge with its income account
type ChargeMappingResponse struct {
	ChargeID      uuid.UUID             `json:"charge_id"`
	ChargeName    string                `json:"charge_name"`
	Penalty       bool                  `json:"penalty"`
	IncomeAccount LedgerAccountResponse `json:"income_account"`
}

// ProductMappingsResponse is the composed accounting configuration of one
// product, as attached to product detail views
type ProductMappingsResponse struct {
	ProductID       uuid.UUID                        `json:"product_id"`
	Category        string                           `json:"product_category"`
	AccountingRule  string                           `json:"accounting_rule"`
	RoleAccounts    map[string]LedgerAccountResponse `json:"accounting_mappings"`
	PaymentChannels []PaymentChannelMappingResponse  `json:"payment_channel_to_fund_source_mappings"`
	FeeCharges      []ChargeMappingResponse          `json:"fee_to_income_account_mappings"`
	PenaltyCharges  []ChargeMappingResponse          `json:"penalty_to_income_account_mappings"`
}

// ===================== Operations =====================

// RoleAccounts resolves the role→account map of a product under the given
// accounting rule.
func (s *MappingService) RoleAccounts(ctx context.Context, productID uuid.UUID, category accounting.ProductCategory, rule accounting.AccountingRuleType) (map[string]LedgerAccountResponse, error) {
	roles, err := s.resolver.ResolveRoleAccounts(ctx, productID, category, rule)
	if err != nil {
		return nil, err
	}
	return toRoleAccountResponses(roles), nil
}

// PaymentChannelAccounts resolves the payment-channel fund-source bindings
// of a product.
func (s *MappingService) PaymentChannelAccounts(ctx context.Context, productID uuid.UUID, category accounting.ProductCategory) ([]PaymentChannelMappingResponse, error) {
	channels, err := s.resolver.ResolvePaymentChannelAccounts(ctx, productID, category)
	if err != nil {
		return nil, err
	}
	return toPaymentChannelResponses(channels), nil
}

// ChargeAccounts resolves the charge→income-account bindings of a product,
// penalties or fees depending on the flag.
func (s *MappingService) ChargeAccounts(ctx context.Context, productID uuid.UUID, category accounting.ProductCategory, penalty bool) ([]ChargeMappingResponse, error) {
	charges, err := s.resolver.ResolveChargeAccounts(ctx, productID, category, penalty)
	if err != nil {
		return nil, err
	}
	return toChargeResponses(charges), nil
}

// ProductMappings composes the full accounting configuration of a product:
// role map plus payment-channel, fee, and penalty sub-mappings.
func (s *MappingService) ProductMappings(ctx context.Context, productID uuid.UUID, category accounting.ProductCategory, rule accounting.AccountingRuleType) (*ProductMappingsResponse, error) {
	roles, err := s.resolver.ResolveRoleAccounts(ctx, productID, category, rule)
	if err != nil {
		return nil, err
	}
	if len(roles) == 0 {
		s.logger.Debug("no role accounts resolved",
			zap.String("product_id", productID.String()),
			zap.String("category", category.String()),
			zap.String("accounting_rule", rule.String()),
		)
	}

	channels, err := s.resolver.ResolvePaymentChannelAccounts(ctx, productID, category)
	if err != nil {
		return nil, err
	}
	fees, err := s.resolver.ResolveChargeAccounts(ctx, productID, category, false)
	if err != nil {
		return nil, err
	}
	penalties, err := s.resolver.ResolveChargeAccounts(ctx, productID, category, true)
	if err != nil {
		return nil, err
	}

	return &ProductMappingsResponse{
		ProductID:       productID,
		Category:        category.String(),
		AccountingRule:  rule.String(),
		RoleAccounts:    toRoleAccountResponses(roles),
		PaymentChannels: toPaymentChannelResponses(channels),
		FeeCharges:      toChargeResponses(fees),
		PenaltyCharges:  toChargeResponses(penalties),
	}, nil
}

// ===================== Assembly helpers =====================

func toLedgerAccountResponse(ref accounting.LedgerAccountRef) LedgerAccountResponse {
	return LedgerAccountResponse{
		ID:   ref.ID,
		Name: ref.Name,
		Code: ref.Code,
	}
}

func toRoleAccountResponses(roles accounting.RoleAccounts) map[string]LedgerAccountResponse {
	result := make(map[string]LedgerAccountResponse, len(roles))
	for key, ref := range roles {
		result[key] = toLedgerAccountResponse(ref)
	}
	return result
}

func toPaymentChannelResponses(channels []accounting.PaymentChannelAccount) []PaymentChannelMappingResponse {
	result := make([]PaymentChannelMappingResponse, 0, len(channels))
	for _, pc := range channels {
		result = append(result, PaymentChannelMappingResponse{
			PaymentTypeID:   pc.Channel.ID,
			PaymentTypeName: pc.Channel.Name,
			FundSource:      toLedgerAccountResponse(pc.Account),
		})
	}
	return result
}

func toChargeResponses(charges []accounting.ChargeAccount) []ChargeMappingResponse {
	result := make([]ChargeMappingResponse, 0, len(charges))
	for _, ca := range charges {
		result = append(result, ChargeMappingResponse{
			ChargeID:      ca.Charge.ID,
			ChargeName:    ca.Charge.Name,
			Penalty:       ca.Charge.IsPenalty,
			IncomeAccount: toLedgerAccountResponse(ca.Account),
		})
	}
	return result
}
