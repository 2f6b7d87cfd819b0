package repositories

import (
	"context"

	"bankapi/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BankAccountRepository interface {
	Create(ctx context.Context, b *models.BankAccount, tx pgx.Tx) error
	GetByCustomerOID(ctx context.Context, customerOID string) ([]models.BankAccount, error)
	DeleteByCustomerOID(ctx context.Context, customerOID string, tx pgx.Tx) (int64, error)
}

type bankAccountRepo struct {
	db *pgxpool.Pool
}

func NewBankAccountRepository(db *pgxpool.Pool) BankAccountRepository {
	return &bankAccountRepo{db: db}
}

func (r *bankAccountRepo) Create(ctx context.Context, b *models.BankAccount, tx pgx.Tx) error {
	query := `
		INSERT INTO bank_accounts (customer_oid, institution_id, account_number, account_type, balance, currency)
		VALUES ($1, $2, $3, $4, $5, $6)
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

		err = tx.QueryRow(ctx, query, b.CustomerOID, b.InstitutionID, b.AccountNumber, b.AccountType, b.Balance, b.Currency).Scan(&b.ID)
		if err != nil {
			if isForeignKeyViolation(err) {
				return ErrCustomerNotFound
			}
			return err
		}
		return tx.Commit(ctx)
	}

	err = tx.QueryRow(ctx, query, b.CustomerOID, b.InstitutionID, b.AccountNumber, b.AccountType, b.Balance, b.Currency).Scan(&b.ID)
	if isForeignKeyViolation(err) {
		return ErrCustomerNotFound
	}
	return err
}

func (r *bankAccountRepo) GetByCustomerOID(ctx context.Context, customerOID string) ([]models.BankAccount, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, customer_oid, institution_id, account_number, account_type, balance, currency FROM bank_accounts WHERE customer_oid = $1 ORDER BY id`,
		customerOID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := make([]models.BankAccount, 0)
	for rows.Next() {
		var b models.BankAccount
		if err := rows.Scan(&b.ID, &b.CustomerOID, &b.InstitutionID, &b.AccountNumber, &b.AccountType, &b.Balance, &b.Currency); err != nil {
			return nil, err
		}
		accounts = append(accounts, b)
	}
	return accounts, rows.Err()
}

func (r *bankAccountRepo) DeleteByCustomerOID(ctx context.Context, customerOID string, tx pgx.Tx) (int64, error) {
	query := `DELETE FROM bank_accounts WHERE customer_oid = $1`
	if tx != nil {
		tag, err := tx.Exec(ctx, query, customerOID)
		return tag.RowsAffected(), err
	}
	tag, err := r.db.Exec(ctx, query, customerOID)
	return tag.RowsAffected(), err
}
