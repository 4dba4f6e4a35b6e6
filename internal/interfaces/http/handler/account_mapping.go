package handler

import (
	"strconv"

	appaccounting "github.com/fincore/backend/internal/application/accounting"
	"github.com/fincore/backend/internal/domain/accounting"
	"github.com/fincore/backend/internal/interfaces/http/dto"
	"github.com/fincore/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AccountMappingHandler serves the ledger account mapping read API
type AccountMappingHandler struct {
	BaseHandler
	service *appaccounting.MappingService
}

// NewAccountMappingHandler creates a new AccountMappingHandler
func NewAccountMappingHandler(service *appaccounting.MappingService) *AccountMappingHandler {
	return &AccountMappingHandler{service: service}
}

type mappingPathParams struct {
	category  accounting.ProductCategory
	productID uuid.UUID
}

// bindPathParams parses and validates the category and product ID path segments.
// Category matching is case-insensitive.
func (h *AccountMappingHandler) bindPathParams(c *gin.Context) (mappingPathParams, bool) {
	category, ok := accounting.ParseProductCategory(c.Param("category"))
	if !ok {
		h.ValidationError(c, []dto.ValidationDetail{
			{Field: "category", Message: "Must be one of: LOAN, SAVINGS, SHARES"},
		})
		return mappingPathParams{}, false
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		h.ValidationError(c, []dto.ValidationDetail{
			{Field: "productId", Message: "Must be a valid UUID"},
		})
		return mappingPathParams{}, false
	}

	return mappingPathParams{category: category, productID: productID}, true
}

// mappingQuery carries the accounting rule filter shared by the role-backed endpoints
type mappingQuery struct {
	AccountingRule string `form:"accountingRule,default=CASH_BASED" json:"accountingRule" binding:"required,oneof=CASH_BASED ACCRUAL_UPFRONT ACCRUAL_PERIODIC"`
}

// chargeQuery carries the penalty filter for the charge overrides endpoint
type chargeQuery struct {
	Penalty string `form:"penalty,default=false" json:"penalty" binding:"required,boolean"`
}

// bindAccountingRule binds the accountingRule query parameter, defaulting to CASH_BASED
func (h *AccountMappingHandler) bindAccountingRule(c *gin.Context) (accounting.AccountingRuleType, bool) {
	var q mappingQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		middleware.HandleValidationError(c, err)
		return "", false
	}

	// The oneof binding tag constrains the value, the domain parse stays
	// the single authority on rule names
	rule, ok := accounting.ParseAccountingRuleType(q.AccountingRule)
	if !ok {
		h.ValidationError(c, []dto.ValidationDetail{
			{Field: "accountingRule", Message: "Must be one of: CASH_BASED, ACCRUAL_UPFRONT, ACCRUAL_PERIODIC"},
		})
		return "", false
	}
	return rule, true
}

// bindPenalty binds the penalty query parameter, defaulting to fee charges
func (h *AccountMappingHandler) bindPenalty(c *gin.Context) (bool, bool) {
	var q chargeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		middleware.HandleValidationError(c, err)
		return false, false
	}
	penalty, _ := strconv.ParseBool(q.Penalty)
	return penalty, true
}

// GetProductMappings returns the composed mapping view for a product:
// role accounts plus payment channel and charge overrides
func (h *AccountMappingHandler) GetProductMappings(c *gin.Context) {
	params, ok := h.bindPathParams(c)
	if !ok {
		return
	}
	rule, ok := h.bindAccountingRule(c)
	if !ok {
		return
	}

	result, err := h.service.ProductMappings(c.Request.Context(), params.productID, params.category, rule)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// GetRoleMappings returns the financial-account-role to ledger account map for a product
func (h *AccountMappingHandler) GetRoleMappings(c *gin.Context) {
	params, ok := h.bindPathParams(c)
	if !ok {
		return
	}
	rule, ok := h.bindAccountingRule(c)
	if !ok {
		return
	}

	result, err := h.service.RoleAccounts(c.Request.Context(), params.productID, params.category, rule)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// GetPaymentChannelMappings returns per payment type fund source overrides for a product
func (h *AccountMappingHandler) GetPaymentChannelMappings(c *gin.Context) {
	params, ok := h.bindPathParams(c)
	if !ok {
		return
	}

	result, err := h.service.PaymentChannelAccounts(c.Request.Context(), params.productID, params.category)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// GetChargeMappings returns per charge income account overrides for a product.
// The penalty query parameter selects penalty or fee charges, defaulting to fees.
func (h *AccountMappingHandler) GetChargeMappings(c *gin.Context) {
	params, ok := h.bindPathParams(c)
	if !ok {
		return
	}

	penalty, ok := h.bindPenalty(c)
	if !ok {
		return
	}

	result, err := h.service.ChargeAccounts(c.Request.Context(), params.productID, params.category, penalty)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
