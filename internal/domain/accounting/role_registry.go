package accounting

// RoleCode is the persisted financial-account-role discriminator. The same
// integer means different things for different (product category, accounting
// rule) pairs, so a RoleCode is never interpreted on its own, only through
// OutputKey.
type RoleCode int

// Role codes for loan products. Codes 7-9 are only meaningful under the
// accrual rules.
const (
	LoanFundSource          RoleCode = 1
	LoanPortfolio           RoleCode = 2
	LoanInterestIncome      RoleCode = 3
	LoanFeeIncome           RoleCode = 4
	LoanPenaltyIncome       RoleCode = 5
	LoanWriteOff            RoleCode = 6
	LoanInterestReceivable  RoleCode = 7
	LoanFeesReceivable      RoleCode = 8
	LoanPenaltiesReceivable RoleCode = 9
	LoanTransfersSuspense   RoleCode = 10
	LoanOverpayment         RoleCode = 11
	LoanRecoveryIncome      RoleCode = 12
)

// Role codes for savings products.
const (
	SavingsReference         RoleCode = 1
	SavingsControl           RoleCode = 2
	SavingsInterestExpense   RoleCode = 3
	SavingsFeeIncome         RoleCode = 4
	SavingsPenaltyIncome     RoleCode = 5
	SavingsTransfersSuspense RoleCode = 10
	SavingsOverdraftControl  RoleCode = 11
	SavingsInterestIncome    RoleCode = 12
	SavingsWriteOff          RoleCode = 13
	SavingsEscheatLiability  RoleCode = 14
)

// Role codes for share products.
const (
	SharesReference RoleCode = 1
	SharesSuspense  RoleCode = 2
	SharesFeeIncome RoleCode = 3
	SharesEquity    RoleCode = 4
)

// Output keys under which resolved ledger accounts are returned. Consumers
// (journal generation, product setup) address role accounts by these keys.
const (
	KeyFundSource               = "fundSourceAccountId"
	KeyLoanPortfolio            = "loanPortfolioAccountId"
	KeyInterestOnLoan           = "interestOnLoanAccountId"
	KeyIncomeFromFee            = "incomeFromFeeAccountId"
	KeyIncomeFromPenalty        = "incomeFromPenaltyAccountId"
	KeyWriteOff                 = "writeOffAccountId"
	KeyInterestReceivable       = "interestReceivableAccountId"
	KeyFeesReceivable           = "feesReceivableAccountId"
	KeyPenaltiesReceivable      = "penaltiesReceivableAccountId"
	KeyTransfersInSuspense      = "transfersInSuspenseAccountId"
	KeyOverpaymentLiability     = "overpaymentLiabilityAccountId"
	KeyIncomeFromRecovery       = "incomeFromRecoveryAccountId"
	KeySavingsReference         = "savingsReferenceAccountId"
	KeySavingsControl           = "savingsControlAccountId"
	KeyInterestOnSavings        = "interestOnSavingsAccountId"
	KeyOverdraftPortfolio       = "overdraftPortfolioControlAccountId"
	KeyIncomeFromInterest       = "incomeFromInterestAccountId"
	KeyEscheatLiability         = "escheatLiabilityAccountId"
	KeyShareReference           = "shareReferenceAccountId"
	KeyShareSuspense            = "shareSuspenseAccountId"
	KeyShareEquity              = "shareEquityAccountId"
)

// registryKey is the triple that scopes a role code's meaning.
type registryKey struct {
	category ProductCategory
	rule     AccountingRuleType
	code     RoleCode
}

var cashLoanRoles = map[RoleCode]string{
	LoanFundSource:        KeyFundSource,
	LoanPortfolio:         KeyLoanPortfolio,
	LoanInterestIncome:    KeyInterestOnLoan,
	LoanFeeIncome:         KeyIncomeFromFee,
	LoanPenaltyIncome:     KeyIncomeFromPenalty,
	LoanWriteOff:          KeyWriteOff,
	LoanTransfersSuspense: KeyTransfersInSuspense,
	LoanOverpayment:       KeyOverpaymentLiability,
	LoanRecoveryIncome:    KeyIncomeFromRecovery,
}

var accrualLoanRoles = map[RoleCode]string{
	LoanFundSource:          KeyFundSource,
	LoanPortfolio:           KeyLoanPortfolio,
	LoanInterestIncome:      KeyInterestOnLoan,
	LoanFeeIncome:           KeyIncomeFromFee,
	LoanPenaltyIncome:       KeyIncomeFromPenalty,
	LoanWriteOff:            KeyWriteOff,
	LoanInterestReceivable:  KeyInterestReceivable,
	LoanFeesReceivable:      KeyFeesReceivable,
	LoanPenaltiesReceivable: KeyPenaltiesReceivable,
	LoanTransfersSuspense:   KeyTransfersInSuspense,
	LoanOverpayment:         KeyOverpaymentLiability,
	LoanRecoveryIncome:      KeyIncomeFromRecovery,
}

var cashSavingsRoles = map[RoleCode]string{
	SavingsReference:         KeySavingsReference,
	SavingsControl:           KeySavingsControl,
	SavingsInterestExpense:   KeyInterestOnSavings,
	SavingsFeeIncome:         KeyIncomeFromFee,
	SavingsPenaltyIncome:     KeyIncomeFromPenalty,
	SavingsTransfersSuspense: KeyTransfersInSuspense,
	SavingsOverdraftControl:  KeyOverdraftPortfolio,
	SavingsInterestIncome:    KeyIncomeFromInterest,
	SavingsWriteOff:          KeyWriteOff,
	SavingsEscheatLiability:  KeyEscheatLiability,
}

var cashSharesRoles = map[RoleCode]string{
	SharesReference: KeyShareReference,
	SharesSuspense:  KeyShareSuspense,
	SharesFeeIncome: KeyIncomeFromFee,
	SharesEquity:    KeyShareEquity,
}

// roleRegistry is built once at process start and never mutated. Savings and
// shares deliberately have no accrual entries; lookups for those variants
// miss, and the resolver skips the rows.
var roleRegistry = buildRoleRegistry()

func buildRoleRegistry() map[registryKey]string {
	reg := make(map[registryKey]string, 64)
	add := func(category ProductCategory, rule AccountingRuleType, roles map[RoleCode]string) {
		for code, key := range roles {
			reg[registryKey{category: category, rule: rule, code: code}] = key
		}
	}

	add(ProductCategoryLoan, AccountingRuleCashBased, cashLoanRoles)
	add(ProductCategoryLoan, AccountingRuleAccrualUpfront, accrualLoanRoles)
	add(ProductCategoryLoan, AccountingRuleAccrualPeriodic, accrualLoanRoles)
	add(ProductCategorySavings, AccountingRuleCashBased, cashSavingsRoles)
	add(ProductCategoryShares, AccountingRuleCashBased, cashSharesRoles)

	return reg
}

// OutputKey translates a (category, rule, role code) triple into the key the
// resolved ledger account is published under. The bool result is false when
// the code is not registered for the pair, which callers treat as "this row
// does not apply to the requested accounting rule".
func OutputKey(category ProductCategory, rule AccountingRuleType, code RoleCode) (string, bool) {
	key, ok := roleRegistry[registryKey{category: category, rule: rule, code: code}]
	return key, ok
}
