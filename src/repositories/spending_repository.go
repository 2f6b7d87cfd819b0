package repositories

import (
	"context"

	"bankapi/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SpendingRepository interface {
	Create(ctx context.Context, s *models.Spending, tx pgx.Tx) error
	GetByCustomerOID(ctx context.Context, customerOID string) ([]models.Spending, error)
	DeleteByCustomerOID(ctx context.Context, customerOID string, tx pgx.Tx) (int64, error)
}

type spendingRepo struct {
	db *pgxpool.Pool
}

func NewSpendingRepository(db *pgxpool.Pool) SpendingRepository {
	return &spendingRepo{db: db}
}

func (r *spendingRepo) Create(ctx context.Context, s *models.Spending, tx pgx.Tx) error {
	query := `
		INSERT INTO spending (customer_oid, category, amount, month)
		VALUES ($1, $2, $3, $4)
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

		err = tx.QueryRow(ctx, query, s.CustomerOID, s.Category, s.Amount, s.Month).Scan(&s.ID)
		if err != nil {
			if isForeignKeyViolation(err) {
				return ErrCustomerNotFound
			}
			return err
		}
		return tx.Commit(ctx)
	}

	err = tx.QueryRow(ctx, query, s.CustomerOID, s.Category, s.Amount, s.Month).Scan(&s.ID)
	if isForeignKeyViolation(err) {
		return ErrCustomerNotFound
	}
	return err
}

func (r *spendingRepo) GetByCustomerOID(ctx context.Context, customerOID string) ([]models.Spending, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, customer_oid, category, amount, month FROM spending WHERE customer_oid = $1 ORDER BY month, id`,
		customerOID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	spending := make([]models.Spending, 0)
	for rows.Next() {
		var s models.Spending
		if err := rows.Scan(&s.ID, &s.CustomerOID, &s.Category, &s.Amount, &s.Month); err != nil {
			return nil, err
		}
		spending = append(spending, s)
	}
	return spending, rows.Err()
}

func (r *spendingRepo) DeleteByCustomerOID(ctx context.Context, customerOID string, tx pgx.Tx) (int64, error) {
	query := `DELETE FROM spending WHERE customer_oid = $1`
	if tx != nil {
		tag, err := tx.Exec(ctx, query, customerOID)
		return tag.RowsAffected(), err
	}
	tag, err := r.db.Exec(ctx, query, customerOID)
	return tag.RowsAffected(), err
}
