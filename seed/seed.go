// Command seed populates the database with the sample dataset used for
// exercising the portfolio endpoints. It goes through the same repositories
// as the API, so the write-time referential checks apply to seeded data too.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"bankapi/src/config"
	"bankapi/src/database"
	"bankapi/src/models"
	"bankapi/src/repositories"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	oidJohn    = "550e8400-e29b-41d4-a716-446655440001"
	oidJane    = "550e8400-e29b-41d4-a716-446655440002"
	oidRobert  = "550e8400-e29b-41d4-a716-446655440003"
	oidABC     = "550e8400-e29b-41d4-a716-446655440004"
	oidMichael = "550e8400-e29b-41d4-a716-446655440005"
)

func main() {
	cfg, err := config.LoadConfig("./settings", os.Getenv("ENV"))
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	db, err := database.SetupDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := seed(context.Background(), db); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Sample data created successfully")
}

func seed(ctx context.Context, db *pgxpool.Pool) error {
	customerRepo := repositories.NewCustomerRepository(db)
	institutionRepo := repositories.NewInstitutionRepository(db)
	accountRepo := repositories.NewBankAccountRepository(db)
	assetRepo := repositories.NewAssetRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	spendingRepo := repositories.NewSpendingRepository(db)
	derivativeRepo := repositories.NewDerivativeRepository(db)

	customers := []models.Customer{
		{CustomerOID: oidJohn, Name: "John Doe"},
		{CustomerOID: oidJane, Name: "Jane Smith"},
		{CustomerOID: oidRobert, Name: "Robert Johnson"},
		{CustomerOID: oidABC, Name: "ABC Corporation"},
		{CustomerOID: oidMichael, Name: "Michael Chen"},
	}
	for i := range customers {
		if err := customerRepo.Create(ctx, &customers[i], nil); err != nil {
			return err
		}
	}

	institutions := []models.Institution{
		{Name: "Global Bank", RoutingNumber: "021000021", Type: "bank", ContactInfo: "contact@globalbank.com"},
		{Name: "Investment Corp", RoutingNumber: "026009593", Type: "broker", ContactInfo: "support@investcorp.com"},
		{Name: "Crypto Exchange", RoutingNumber: "091000019", Type: "exchange", ContactInfo: "help@cryptoex.com"},
	}
	for i := range institutions {
		if err := institutionRepo.Create(ctx, &institutions[i], nil); err != nil {
			return err
		}
	}
	globalBank, investCorp, cryptoEx := institutions[0].ID, institutions[1].ID, institutions[2].ID

	accounts := []models.BankAccount{
		{CustomerOID: oidJohn, InstitutionID: globalBank, AccountNumber: "US1234567890123456", AccountType: "checking", Balance: 50000.0, Currency: "USD"},
		{CustomerOID: oidJohn, InstitutionID: globalBank, AccountNumber: "DE9876543210987654", AccountType: "savings", Balance: 25000.0, Currency: "EUR"},
		{CustomerOID: oidJane, InstitutionID: globalBank, AccountNumber: "US2345678901234567", AccountType: "checking", Balance: 75000.0, Currency: "USD"},
		{CustomerOID: oidJane, InstitutionID: investCorp, AccountNumber: "US3456789012345678", AccountType: "brokerage", Balance: 100000.0, Currency: "USD"},
		{CustomerOID: oidRobert, InstitutionID: globalBank, AccountNumber: "US4567890123456789", AccountType: "checking", Balance: 30000.0, Currency: "USD"},
		{CustomerOID: oidABC, InstitutionID: investCorp, AccountNumber: "US5678901234567890", AccountType: "corporate", Balance: 500000.0, Currency: "USD"},
		{CustomerOID: oidMichael, InstitutionID: cryptoEx, AccountNumber: "US6789012345678901", AccountType: "checking", Balance: 85000.0, Currency: "USD"},
	}
	for i := range accounts {
		if err := accountRepo.Create(ctx, &accounts[i], nil); err != nil {
			return err
		}
	}

	assets := []models.Asset{
		{CustomerOID: oidJohn, AssetType: "stock", Symbol: "AAPL", Quantity: 100, CurrentValue: 19500},
		{CustomerOID: oidJohn, AssetType: "stock", Symbol: "GOOGL", Quantity: 50, CurrentValue: 8900},
		{CustomerOID: oidJohn, AssetType: "bond", Symbol: "US10Y", Quantity: 10000, CurrentValue: 10000},
		{CustomerOID: oidJohn, AssetType: "crypto", Symbol: "BTC", Quantity: 2.5, CurrentValue: 162500},
		{CustomerOID: oidJohn, AssetType: "etf", Symbol: "SPY", Quantity: 200, CurrentValue: 110000},
		{CustomerOID: oidJane, AssetType: "stock", Symbol: "TSLA", Quantity: 150, CurrentValue: 37500},
		{CustomerOID: oidJane, AssetType: "stock", Symbol: "NVDA", Quantity: 75, CurrentValue: 91000},
		{CustomerOID: oidJane, AssetType: "crypto", Symbol: "BTC", Quantity: 5.0, CurrentValue: 325000},
		{CustomerOID: oidJane, AssetType: "crypto", Symbol: "ETH", Quantity: 20.0, CurrentValue: 70000},
		{CustomerOID: oidRobert, AssetType: "bond", Symbol: "US10Y", Quantity: 20000, CurrentValue: 20000},
		{CustomerOID: oidRobert, AssetType: "etf", Symbol: "SPY", Quantity: 100, CurrentValue: 55000},
		{CustomerOID: oidABC, AssetType: "stock", Symbol: "AAPL", Quantity: 1000, CurrentValue: 195000},
		{CustomerOID: oidABC, AssetType: "bond", Symbol: "CORP_BONDS", Quantity: 100000, CurrentValue: 100000},
		{CustomerOID: oidMichael, AssetType: "stock", Symbol: "AMZN", Quantity: 25, CurrentValue: 4900},
		{CustomerOID: oidMichael, AssetType: "etf", Symbol: "VTI", Quantity: 300, CurrentValue: 82500},
	}
	for i := range assets {
		if err := assetRepo.Create(ctx, &assets[i], nil); err != nil {
			return err
		}
	}

	transactions := []models.Transaction{
		{CustomerOID: oidJohn, Amount: -15000, Date: date("2025-01-15"), Description: "Buy AAPL", Category: "buy"},
		{CustomerOID: oidJohn, Amount: -8500, Date: date("2025-02-20"), Description: "Buy GOOGL", Category: "buy"},
		{CustomerOID: oidJohn, Amount: 25000, Date: date("2025-03-10"), Description: "USD deposit", Category: "deposit"},
		{CustomerOID: oidJohn, Amount: -12000, Date: date("2025-04-05"), Description: "Buy BTC", Category: "buy"},
		{CustomerOID: oidJohn, Amount: 3000, Date: date("2025-05-15"), Description: "Sell AAPL", Category: "sell"},
		{CustomerOID: oidJohn, Amount: 250, Date: date("2025-06-01"), Description: "SPY dividend", Category: "dividend"},
		{CustomerOID: oidJane, Amount: -25000, Date: date("2025-01-20"), Description: "Buy TSLA", Category: "buy"},
		{CustomerOID: oidJane, Amount: -18000, Date: date("2025-02-15"), Description: "Buy NVDA", Category: "buy"},
		{CustomerOID: oidJane, Amount: 8000, Date: date("2025-05-20"), Description: "Sell TSLA", Category: "sell"},
		{CustomerOID: oidRobert, Amount: -20000, Date: date("2025-01-10"), Description: "Buy US10Y", Category: "buy"},
		{CustomerOID: oidRobert, Amount: 180, Date: date("2025-04-20"), Description: "JNJ dividend", Category: "dividend"},
		{CustomerOID: oidABC, Amount: -150000, Date: date("2025-01-05"), Description: "Buy AAPL", Category: "buy"},
		{CustomerOID: oidABC, Amount: 200000, Date: date("2025-03-01"), Description: "USD deposit", Category: "deposit"},
		{CustomerOID: oidMichael, Amount: -35000, Date: date("2025-01-25"), Description: "Buy AMZN", Category: "buy"},
		{CustomerOID: oidMichael, Amount: -15000, Date: date("2025-05-10"), Description: "Buy VTI", Category: "buy"},
	}
	for i := range transactions {
		if err := transactionRepo.Create(ctx, &transactions[i], nil); err != nil {
			return err
		}
	}

	spending := []models.Spending{
		{CustomerOID: oidJohn, Category: "groceries", Amount: 800, Month: "2025-01"},
		{CustomerOID: oidJohn, Category: "utilities", Amount: 300, Month: "2025-01"},
		{CustomerOID: oidJohn, Category: "entertainment", Amount: 500, Month: "2025-01"},
		{CustomerOID: oidJohn, Category: "groceries", Amount: 750, Month: "2025-02"},
		{CustomerOID: oidJohn, Category: "healthcare", Amount: 250, Month: "2025-02"},
		{CustomerOID: oidJane, Category: "groceries", Amount: 1200, Month: "2025-01"},
		{CustomerOID: oidJane, Category: "travel", Amount: 2500, Month: "2025-01"},
		{CustomerOID: oidJane, Category: "shopping", Amount: 1500, Month: "2025-02"},
		{CustomerOID: oidRobert, Category: "groceries", Amount: 600, Month: "2025-01"},
		{CustomerOID: oidRobert, Category: "utilities", Amount: 250, Month: "2025-01"},
		{CustomerOID: oidABC, Category: "office_supplies", Amount: 5000, Month: "2025-01"},
		{CustomerOID: oidABC, Category: "marketing", Amount: 15000, Month: "2025-01"},
		{CustomerOID: oidMichael, Category: "groceries", Amount: 900, Month: "2025-01"},
		{CustomerOID: oidMichael, Category: "travel", Amount: 1200, Month: "2025-01"},
	}
	for i := range spending {
		if err := spendingRepo.Create(ctx, &spending[i], nil); err != nil {
			return err
		}
	}

	derivatives := []models.DerivativeTransaction{
		{CustomerOID: oidJohn, InstrumentType: "option", Side: "buy", Underlying: "AAPL",
			StrikePrice: 150.0, Premium: 500.0, ExpirationDate: "2025-12-15", ExecutionDate: "2025-07-15",
			Strategy: "covered_call", Status: "open", Counterparty: "BANK"},
		{CustomerOID: oidJohn, InstrumentType: "option", Side: "sell", Underlying: "SPY",
			StrikePrice: 420.0, Premium: 300.0, ExpirationDate: "2025-09-15", ExecutionDate: "2025-06-15",
			Strategy: "cash_secured_put", Status: "open", Counterparty: "BROKER"},
		{CustomerOID: oidJane, InstrumentType: "option", Side: "buy", Underlying: "TSLA",
			StrikePrice: 200.0, Premium: 1500.0, ExpirationDate: "2025-11-15", ExecutionDate: "2025-05-15",
			Strategy: "long_call", Status: "open", Counterparty: "EXCHANGE"},
		{CustomerOID: oidJane, InstrumentType: "future", Side: "buy", Underlying: "GOLD",
			StrikePrice: 2100.0, Premium: 2000.0, ExpirationDate: "2025-10-15", ExecutionDate: "2025-04-15",
			Strategy: "hedge", Status: "open", Counterparty: "EXCHANGE"},
	}
	for i := range derivatives {
		if err := derivativeRepo.Create(ctx, &derivatives[i], nil); err != nil {
			return err
		}
	}

	return nil
}

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		log.Fatalf("bad date %q: %v", s, err)
	}
	return d
}
