package models

// Customer is the owning entity of every other collection. CustomerOID is
// either a canonical UUID or a legacy alphanumeric identifier already present
// in storage; it never changes once assigned.
type Customer struct {
	ID          int    `db:"id" json:"-"`
	CustomerOID string `db:"customer_oid" json:"customer_oid"`
	Name        string `db:"name" json:"name"`
}
