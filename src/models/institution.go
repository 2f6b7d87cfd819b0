package models

// Institution is shared reference data: bank accounts point at it, but no
// customer owns it, so customer deletion never touches this table.
type Institution struct {
	ID            int    `db:"id" json:"id"`
	Name          string `db:"name" json:"name"`
	RoutingNumber string `db:"routing_number" json:"routing_number"`
	Type          string `db:"institution_type" json:"type"`
	ContactInfo   string `db:"contact_info" json:"contact_info,omitempty"`
}
