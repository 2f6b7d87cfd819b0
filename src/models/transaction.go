package models

import (
	"time"
)

type Transaction struct {
	ID          int       `db:"id" json:"id"`
	CustomerOID string    `db:"customer_oid" json:"customer_oid"`
	Amount      float64   `db:"amount" json:"amount"`
	Date        time.Time `db:"date" json:"date"`
	Description string    `db:"description" json:"description"`
	Category    string    `db:"category" json:"category"`
}
