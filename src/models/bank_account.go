package models

type BankAccount struct {
	ID            int     `db:"id" json:"id"`
	CustomerOID   string  `db:"customer_oid" json:"customer_oid"`
	InstitutionID int     `db:"institution_id" json:"institution_id"`
	AccountNumber string  `db:"account_number" json:"account_number"`
	AccountType   string  `db:"account_type" json:"account_type"`
	Balance       float64 `db:"balance" json:"balance"`
	Currency      string  `db:"currency" json:"currency"`
}
