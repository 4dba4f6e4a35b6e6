package accounting

import "strings"

// ProductCategory identifies the financial product family a mapping belongs to.
type ProductCategory string

const (
	// ProductCategoryLoan covers loan products
	ProductCategoryLoan ProductCategory = "LOAN"

	// ProductCategorySavings covers savings and deposit products
	ProductCategorySavings ProductCategory = "SAVINGS"

	// ProductCategoryShares covers share products
	ProductCategoryShares ProductCategory = "SHARES"
)

// String returns the string representation of ProductCategory
func (p ProductCategory) String() string {
	return string(p)
}

// IsValid returns true if the product category is valid
func (p ProductCategory) IsValid() bool {
	switch p {
	case ProductCategoryLoan, ProductCategorySavings, ProductCategoryShares:
		return true
	}
	return false
}

// ParseProductCategory parses a product category from its string form,
// case-insensitively. The bool result reports whether the input was valid.
func ParseProductCategory(s string) (ProductCategory, bool) {
	c := ProductCategory(strings.ToUpper(strings.TrimSpace(s)))
	return c, c.IsValid()
}

// AccountingRuleType is the accounting-rule variant configured on a product.
// It determines which financial account role codes are valid for the product
// and what they mean.
type AccountingRuleType string

const (
	// AccountingRuleCashBased recognizes income and expenses when cash moves
	AccountingRuleCashBased AccountingRuleType = "CASH_BASED"

	// AccountingRuleAccrualUpfront accrues income at disbursement time
	AccountingRuleAccrualUpfront AccountingRuleType = "ACCRUAL_UPFRONT"

	// AccountingRuleAccrualPeriodic accrues income on a periodic schedule
	AccountingRuleAccrualPeriodic AccountingRuleType = "ACCRUAL_PERIODIC"
)

// String returns the string representation of AccountingRuleType
func (a AccountingRuleType) String() string {
	return string(a)
}

// IsValid returns true if the accounting rule type is valid
func (a AccountingRuleType) IsValid() bool {
	switch a {
	case AccountingRuleCashBased, AccountingRuleAccrualUpfront, AccountingRuleAccrualPeriodic:
		return true
	}
	return false
}

// IsAccrual returns true for either accrual variant
func (a AccountingRuleType) IsAccrual() bool {
	return a == AccountingRuleAccrualUpfront || a == AccountingRuleAccrualPeriodic
}

// ParseAccountingRuleType parses an accounting rule type from its string
// form, case-insensitively. The bool result reports whether the input was
// valid.
func ParseAccountingRuleType(s string) (AccountingRuleType, bool) {
	a := AccountingRuleType(strings.ToUpper(strings.TrimSpace(s)))
	return a, a.IsValid()
}
