package controllers

import (
	"context"
	"errors"
	"fmt"

	"bankapi/src/models"
	"bankapi/src/repositories"
	"bankapi/src/schemas"
	"bankapi/src/utils"
)

// GetUserPortfolio assembles the full cross-entity snapshot for one customer.
// The customer must exist; a well-formed identifier with no customer behind it
// is a not-found, never an empty snapshot. Any collection fetch failure aborts
// the whole aggregation so the summary always matches the returned data.
func (c *Controller) GetUserPortfolio(ctx context.Context, rawOID string) (*schemas.PortfolioResponse, error) {
	customerOID, err := c.ResolveCustomerOID(ctx, rawOID)
	if err != nil {
		return nil, err
	}

	if snapshot := c.cachedSnapshot(ctx, customerOID); snapshot != nil {
		return snapshot, nil
	}

	customer, err := c.CustomerRepo.GetByOID(ctx, customerOID)
	if err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return nil, utils.NotFound(fmt.Sprintf("User with CustomerOID '%s' not found", customerOID))
		}
		return nil, err
	}

	assets, err := c.AssetRepo.GetByCustomerOID(ctx, customerOID)
	if err != nil {
		return nil, err
	}
	accounts, err := c.BankAccountRepo.GetByCustomerOID(ctx, customerOID)
	if err != nil {
		return nil, err
	}
	transactions, err := c.TransactionRepo.GetByCustomerOID(ctx, customerOID)
	if err != nil {
		return nil, err
	}
	spending, err := c.SpendingRepo.GetByCustomerOID(ctx, customerOID)
	if err != nil {
		return nil, err
	}
	derivatives, err := c.DerivativeRepo.GetByCustomerOID(ctx, customerOID)
	if err != nil {
		return nil, err
	}

	institutionIDs := make([]int, 0, len(accounts))
	seen := make(map[int]bool, len(accounts))
	for _, account := range accounts {
		if !seen[account.InstitutionID] {
			seen[account.InstitutionID] = true
			institutionIDs = append(institutionIDs, account.InstitutionID)
		}
	}
	institutions, err := c.InstitutionRepo.GetByIDs(ctx, institutionIDs)
	if err != nil {
		return nil, err
	}

	accountsWithInstitutions := make([]schemas.BankAccountWithInstitution, 0, len(accounts))
	for _, account := range accounts {
		entry := schemas.BankAccountWithInstitution{BankAccount: account}
		if institution, ok := institutions[account.InstitutionID]; ok {
			entry.Institution = &institution
		}
		accountsWithInstitutions = append(accountsWithInstitutions, entry)
	}

	snapshot := &schemas.PortfolioResponse{
		CustomerOID: customerOID,
		User: schemas.CustomerResponse{
			CustomerOID: customer.CustomerOID,
			Name:        customer.Name,
		},
		Assets:                 assets,
		BankAccounts:           accountsWithInstitutions,
		Transactions:           transactions,
		Spending:               spending,
		DerivativeTransactions: derivatives,
		PortfolioSummary:       BuildPortfolioSummary(customerOID, assets, accounts, transactions, spending, derivatives),
	}

	c.storeSnapshot(ctx, customerOID, snapshot)
	return snapshot, nil
}

// BuildPortfolioSummary derives the summary statistics from already-fetched
// collections. It touches no storage so it can be tested in isolation.
func BuildPortfolioSummary(
	customerOID string,
	assets []models.Asset,
	accounts []models.BankAccount,
	transactions []models.Transaction,
	spending []models.Spending,
	derivatives []models.DerivativeTransaction,
) schemas.PortfolioSummary {
	var totalCash float64
	for _, account := range accounts {
		totalCash += account.Balance
	}

	var totalSpending float64
	categories := make(map[string]bool)
	for _, s := range spending {
		totalSpending += s.Amount
		categories[s.Category] = true
	}

	return schemas.PortfolioSummary{
		CustomerOID:              customerOID,
		TotalCashBalance:         totalCash,
		TotalSpending:            totalSpending,
		TotalAssets:              len(assets),
		TotalAccounts:            len(accounts),
		TotalTransactions:        len(transactions),
		TotalSpendingCategories:  len(categories),
		TotalDerivativePositions: len(derivatives),
		HasData: schemas.HasData{
			Assets:       len(assets) > 0,
			Accounts:     len(accounts) > 0,
			Transactions: len(transactions) > 0,
			Spending:     len(spending) > 0,
			Derivatives:  len(derivatives) > 0,
		},
	}
}
