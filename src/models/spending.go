package models

// Spending is a per-category amount aggregated over one month.
type Spending struct {
	ID          int     `db:"id" json:"id"`
	CustomerOID string  `db:"customer_oid" json:"customer_oid"`
	Category    string  `db:"category" json:"category"`
	Amount      float64 `db:"amount" json:"amount"`
	Month       string  `db:"month" json:"month"`
}
