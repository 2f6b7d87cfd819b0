package models

type DerivativeTransaction struct {
	ID             int     `db:"id" json:"id"`
	CustomerOID    string  `db:"customer_oid" json:"customer_oid"`
	InstrumentType string  `db:"instrument_type" json:"instrument_type"`
	Side           string  `db:"side" json:"side"`
	Underlying     string  `db:"underlying" json:"underlying"`
	StrikePrice    float64 `db:"strike_price" json:"strike_price"`
	Premium        float64 `db:"premium" json:"premium"`
	ExpirationDate string  `db:"expiration_date" json:"expiration_date"`
	ExecutionDate  string  `db:"execution_date" json:"execution_date"`
	Strategy       string  `db:"strategy" json:"strategy,omitempty"`
	Status         string  `db:"status" json:"status"`
	Counterparty   string  `db:"counterparty" json:"counterparty,omitempty"`
}
