package schemas

import "bankapi/src/models"

// BankAccountWithInstitution mirrors a bank account row with its institution
// resolved inline. Institution is null when the reference cannot be resolved.
type BankAccountWithInstitution struct {
	models.BankAccount
	Institution *models.Institution `json:"institution"`
}

type HasData struct {
	Assets       bool `json:"assets"`
	Accounts     bool `json:"accounts"`
	Transactions bool `json:"transactions"`
	Spending     bool `json:"spending"`
	Derivatives  bool `json:"derivatives"`
}

type PortfolioSummary struct {
	CustomerOID              string  `json:"customer_oid"`
	TotalCashBalance         float64 `json:"total_cash_balance"`
	TotalSpending            float64 `json:"total_spending"`
	TotalAssets              int     `json:"total_assets"`
	TotalAccounts            int     `json:"total_accounts"`
	TotalTransactions        int     `json:"total_transactions"`
	TotalSpendingCategories  int     `json:"total_spending_categories"`
	TotalDerivativePositions int     `json:"total_derivative_positions"`
	HasData                  HasData `json:"has_data"`
}

// PortfolioResponse is the full cross-entity snapshot for one customer.
// Collections are always present (empty, never null) so the summary math and
// the JSON shape stay consistent.
type PortfolioResponse struct {
	CustomerOID            string                         `json:"customer_oid"`
	User                   CustomerResponse               `json:"user"`
	Assets                 []models.Asset                 `json:"assets"`
	BankAccounts           []BankAccountWithInstitution   `json:"bank_accounts"`
	Transactions           []models.Transaction           `json:"transactions"`
	Spending               []models.Spending              `json:"spending"`
	DerivativeTransactions []models.DerivativeTransaction `json:"derivative_transactions"`
	PortfolioSummary       PortfolioSummary               `json:"portfolio_summary"`
}
