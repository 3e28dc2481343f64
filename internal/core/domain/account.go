package domain

// AccountGroup is the top level of the chart of accounts.
type AccountGroup string

const (
	GroupAsset     AccountGroup = "Asset"
	GroupLiability AccountGroup = "Liability"
	GroupEquity    AccountGroup = "Equity"
)

// AccountHead sits below the group. Income and Expenses accounts are told
// apart by head, their group is Equity.
type AccountHead string

const (
	HeadAsset     AccountHead = "Asset"
	HeadLiability AccountHead = "Liability"
	HeadEquity    AccountHead = "Equity"
	HeadIncome    AccountHead = "Income"
	HeadExpenses  AccountHead = "Expenses"
)

// AccountSubhead is the finest classification and routes an account into a statement section.
type AccountSubhead string

const (
	SubheadCurrentAsset        AccountSubhead = "Current Asset"
	SubheadCash                AccountSubhead = "Cash"
	SubheadBank                AccountSubhead = "Bank"
	SubheadSundryDebtors       AccountSubhead = "Sundry Debtors"
	SubheadNonCurrentAsset     AccountSubhead = "Non-Current Asset"
	SubheadCurrentLiability    AccountSubhead = "Current Liability"
	SubheadSundryCreditors     AccountSubhead = "Sundry Creditors"
	SubheadNonCurrentLiability AccountSubhead = "Non-Current Liability"
	SubheadEquity              AccountSubhead = "Equity"
	SubheadSales               AccountSubhead = "Sales"
	SubheadIndirectIncome      AccountSubhead = "Indirect Income"
	SubheadCostOfGoodsSold     AccountSubhead = "Cost of Goods Sold"
	SubheadDirectExpense       AccountSubhead = "Direct Expense"
	SubheadIndirectExpense     AccountSubhead = "Indirect Expense"
)

// Contra account names excluded from subhead rollups.
const (
	SalesDiscountAccountName    = "Sales Discount"
	PurchaseDiscountAccountName = "Purchase Discount"
)

// OpeningBalanceAdjustmentsAccountName is the system account that balances opening-balance postings.
const OpeningBalanceAdjustmentsAccountName = "Opening Balance Adjustments"

// AccountStructure is one (group, head, subhead) triple.
type AccountStructure struct {
	Group   AccountGroup   `json:"group" yaml:"group"`
	Head    AccountHead    `json:"head" yaml:"head"`
	Subhead AccountSubhead `json:"subhead" yaml:"subhead"`
}

// validStructures is the fixed table of allowed classification triples.
var validStructures = []AccountStructure{
	{GroupAsset, HeadAsset, SubheadCurrentAsset},
	{GroupAsset, HeadAsset, SubheadCash},
	{GroupAsset, HeadAsset, SubheadBank},
	{GroupAsset, HeadAsset, SubheadSundryDebtors},
	{GroupAsset, HeadAsset, SubheadNonCurrentAsset},
	{GroupLiability, HeadLiability, SubheadCurrentLiability},
	{GroupLiability, HeadLiability, SubheadSundryCreditors},
	{GroupLiability, HeadLiability, SubheadNonCurrentLiability},
	{GroupEquity, HeadEquity, SubheadEquity},
	{GroupEquity, HeadIncome, SubheadSales},
	{GroupEquity, HeadIncome, SubheadIndirectIncome},
	{GroupEquity, HeadExpenses, SubheadCostOfGoodsSold},
	{GroupEquity, HeadExpenses, SubheadDirectExpense},
	{GroupEquity, HeadExpenses, SubheadIndirectExpense},
}

// ValidStructures returns a copy of the valid-structure table.
func ValidStructures() []AccountStructure {
	out := make([]AccountStructure, len(validStructures))
	copy(out, validStructures)
	return out
}

// IsValid reports whether the triple is in the valid-structure table.
func (s AccountStructure) IsValid() bool {
	for _, v := range validStructures {
		if v == s {
			return true
		}
	}
	return false
}

// Account is a leaf of the chart of accounts for one tenant.
type Account struct {
	AccountID       string  `json:"accountID"`
	TenantID        string  `json:"tenantID"`
	Name            string  `json:"name"`
	Code            string  `json:"code"`
	Description     string  `json:"description"`
	ParentAccountID *string `json:"parentAccountID,omitempty"`
	AccountStructure
	SystemProtected bool `json:"systemProtected"`
	// Bank fields hold plaintext in the domain and are sealed by the service before storage.
	BankAccountNumber string `json:"bankAccountNumber,omitempty"`
	BankIFSC          string `json:"bankIFSC,omitempty"`
	AuditFields
}

// IsContra reports whether the account is a discount contra account kept out of subhead rollups.
func (a Account) IsContra() bool {
	return IsContraAccountName(a.Name)
}

// IsContraAccountName reports whether name is one of the contra discount accounts.
func IsContraAccountName(name string) bool {
	return name == SalesDiscountAccountName || name == PurchaseDiscountAccountName
}

// AccountUpdate carries the optional fields of an account edit.
type AccountUpdate struct {
	Name              *string
	Code              *string
	Description       *string
	Structure         *AccountStructure
	ParentAccountID   *string
	BankAccountNumber *string
	BankIFSC          *string
}

// ChangesClassification reports whether the update touches group/head/subhead or parent.
func (u AccountUpdate) ChangesClassification(current Account) bool {
	if u.Structure != nil && *u.Structure != current.AccountStructure {
		return true
	}
	if u.ParentAccountID != nil {
		if current.ParentAccountID == nil || *current.ParentAccountID != *u.ParentAccountID {
			return true
		}
	}
	return false
}
