package models

// Account is a row of the accounts table.
// Bank fields hold sealed ciphertext when a field key is configured.
type Account struct {
	AccountID         string  `db:"account_id"`
	TenantID          string  `db:"tenant_id"`
	Name              string  `db:"name"`
	Code              string  `db:"code"`
	Description       string  `db:"description"`
	ParentAccountID   *string `db:"parent_account_id"`
	AccountGroup      string  `db:"account_group"`
	AccountHead       string  `db:"account_head"`
	AccountSubhead    string  `db:"account_subhead"`
	SystemProtected   bool    `db:"system_protected"`
	BankAccountNumber string  `db:"bank_account_number"`
	BankIFSC          string  `db:"bank_ifsc"`
	AuditFields
}
