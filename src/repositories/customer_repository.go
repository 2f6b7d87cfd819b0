package repositories

import (
	"context"

	"bankapi/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CascadeResult reports how many rows each dependent table lost when a
// customer was deleted.
type CascadeResult struct {
	Assets                 int64
	BankAccounts           int64
	Transactions           int64
	Spending               int64
	DerivativeTransactions int64
}

func (r CascadeResult) Total() int64 {
	return r.Assets + r.BankAccounts + r.Transactions + r.Spending + r.DerivativeTransactions
}

type CustomerRepository interface {
	Create(ctx context.Context, c *models.Customer, tx pgx.Tx) error
	GetByOID(ctx context.Context, customerOID string) (*models.Customer, error)
	GetAll(ctx context.Context) ([]models.Customer, error)
	DeleteCascade(ctx context.Context, customerOID string) (*CascadeResult, error)
}

type customerRepo struct {
	db           *pgxpool.Pool
	assets       AssetRepository
	accounts     BankAccountRepository
	transactions TransactionRepository
	spending     SpendingRepository
	derivatives  DerivativeRepository
}

func NewCustomerRepository(db *pgxpool.Pool) CustomerRepository {
	return &customerRepo{
		db:           db,
		assets:       NewAssetRepository(db),
		accounts:     NewBankAccountRepository(db),
		transactions: NewTransactionRepository(db),
		spending:     NewSpendingRepository(db),
		derivatives:  NewDerivativeRepository(db),
	}
}

func (r *customerRepo) Create(ctx context.Context, c *models.Customer, tx pgx.Tx) error {
	query := `
		INSERT INTO customers (customer_oid, name)
		VALUES ($1, $2)
		RETURNING id`

	var err error
	if tx == nil {
		tx, err = r.db.Begin(ctx)
		if err != nil {
			return err
		}
		defer func() {
			if err != nil {
				_ = tx.Rollback(ctx)
			}
		}()

		err = tx.QueryRow(ctx, query, c.CustomerOID, c.Name).Scan(&c.ID)
		if err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicateCustomer
			}
			return err
		}
		return tx.Commit(ctx)
	}

	err = tx.QueryRow(ctx, query, c.CustomerOID, c.Name).Scan(&c.ID)
	if isUniqueViolation(err) {
		return ErrDuplicateCustomer
	}
	return err
}

func (r *customerRepo) GetByOID(ctx context.Context, customerOID string) (*models.Customer, error) {
	var c models.Customer
	err := r.db.QueryRow(ctx,
		`SELECT id, customer_oid, name FROM customers WHERE customer_oid = $1`,
		customerOID,
	).Scan(&c.ID, &c.CustomerOID, &c.Name)
	if err == pgx.ErrNoRows {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *customerRepo) GetAll(ctx context.Context) ([]models.Customer, error) {
	rows, err := r.db.Query(ctx, `SELECT id, customer_oid, name FROM customers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]models.Customer, 0)
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.CustomerOID, &c.Name); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

// DeleteCascade removes the customer row together with every dependent row in
// one transaction. Either all seven tables are purged for this customer or
// none are. Institutions are shared reference data and are left untouched.
func (r *customerRepo) DeleteCascade(ctx context.Context, customerOID string) (*CascadeResult, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	result := &CascadeResult{}
	dependents := []struct {
		delete func(context.Context, string, pgx.Tx) (int64, error)
		count  *int64
	}{
		{r.assets.DeleteByCustomerOID, &result.Assets},
		{r.accounts.DeleteByCustomerOID, &result.BankAccounts},
		{r.transactions.DeleteByCustomerOID, &result.Transactions},
		{r.spending.DeleteByCustomerOID, &result.Spending},
		{r.derivatives.DeleteByCustomerOID, &result.DerivativeTransactions},
	}

	for _, dep := range dependents {
		*dep.count, err = dep.delete(ctx, customerOID, tx)
		if err != nil {
			return nil, err
		}
	}

	var tag pgconn.CommandTag
	tag, err = tx.Exec(ctx, `DELETE FROM customers WHERE customer_oid = $1`, customerOID)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		err = ErrCustomerNotFound
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}
	return result, nil
}
