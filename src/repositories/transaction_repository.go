package repositories

import (
	"context"
	"time"

	"bankapi/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TransactionRepository interface {
	Create(ctx context.Context, t *models.Transaction, tx pgx.Tx) error
	GetByCustomerOID(ctx context.Context, customerOID string) ([]models.Transaction, error)
	DeleteByCustomerOID(ctx context.Context, customerOID string, tx pgx.Tx) (int64, error)
}

type transactionRepo struct {
	db *pgxpool.Pool
}

func NewTransactionRepository(db *pgxpool.Pool) TransactionRepository {
	return &transactionRepo{db: db}
}

func (r *transactionRepo) Create(ctx context.Context, t *models.Transaction, tx pgx.Tx) error {
	query := `
		INSERT INTO transactions (customer_oid, amount, date, description, category)
		VALUES ($1, $2, $3, $4, $5)
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

		err = tx.QueryRow(ctx, query, t.CustomerOID, t.Amount, t.Date, t.Description, t.Category).Scan(&t.ID)
		if err != nil {
			if isForeignKeyViolation(err) {
				return ErrCustomerNotFound
			}
			return err
		}
		return tx.Commit(ctx)
	}

	err = tx.QueryRow(ctx, query, t.CustomerOID, t.Amount, t.Date, t.Description, t.Category).Scan(&t.ID)
	if isForeignKeyViolation(err) {
		return ErrCustomerNotFound
	}
	return err
}

func (r *transactionRepo) GetByCustomerOID(ctx context.Context, customerOID string) ([]models.Transaction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, customer_oid, amount, date, description, category FROM transactions WHERE customer_oid = $1 ORDER BY date, id`,
		customerOID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := make([]models.Transaction, 0)
	for rows.Next() {
		var t models.Transaction
		var date time.Time
		if err := rows.Scan(&t.ID, &t.CustomerOID, &t.Amount, &date, &t.Description, &t.Category); err != nil {
			return nil, err
		}
		t.Date = date
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

func (r *transactionRepo) DeleteByCustomerOID(ctx context.Context, customerOID string, tx pgx.Tx) (int64, error) {
	query := `DELETE FROM transactions WHERE customer_oid = $1`
	if tx != nil {
		tag, err := tx.Exec(ctx, query, customerOID)
		return tag.RowsAffected(), err
	}
	tag, err := r.db.Exec(ctx, query, customerOID)
	return tag.RowsAffected(), err
}
