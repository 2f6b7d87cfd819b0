package models

type Asset struct {
	ID           int     `db:"id" json:"id"`
	CustomerOID  string  `db:"customer_oid" json:"customer_oid"`
	AssetType    string  `db:"asset_type" json:"asset_type"`
	Symbol       string  `db:"symbol" json:"symbol"`
	Quantity     float64 `db:"quantity" json:"quantity"`
	CurrentValue float64 `db:"current_value" json:"current_value"`
}
