package repositories

import (
	"context"

	"bankapi/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DerivativeRepository interface {
	Create(ctx context.Context, d *models.DerivativeTransaction, tx pgx.Tx) error
	GetByCustomerOID(ctx context.Context, customerOID string) ([]models.DerivativeTransaction, error)
	DeleteByCustomerOID(ctx context.Context, customerOID string, tx pgx.Tx) (int64, error)
}

type derivativeRepo struct {
	db *pgxpool.Pool
}

func NewDerivativeRepository(db *pgxpool.Pool) DerivativeRepository {
	return &derivativeRepo{db: db}
}

func (r *derivativeRepo) Create(ctx context.Context, d *models.DerivativeTransaction, tx pgx.Tx) error {
	query := `
		INSERT INTO derivative_transactions
			(customer_oid, instrument_type, side, underlying, strike_price, premium,
			 expiration_date, execution_date, strategy, status, counterparty)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	args := []interface{}{
		d.CustomerOID, d.InstrumentType, d.Side, d.Underlying, d.StrikePrice, d.Premium,
		d.ExpirationDate, d.ExecutionDate, d.Strategy, d.Status, d.Counterparty,
	}

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

		err = tx.QueryRow(ctx, query, args...).Scan(&d.ID)
		if err != nil {
			if isForeignKeyViolation(err) {
				return ErrCustomerNotFound
			}
			return err
		}
		return tx.Commit(ctx)
	}

	err = tx.QueryRow(ctx, query, args...).Scan(&d.ID)
	if isForeignKeyViolation(err) {
		return ErrCustomerNotFound
	}
	return err
}

func (r *derivativeRepo) GetByCustomerOID(ctx context.Context, customerOID string) ([]models.DerivativeTransaction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, customer_oid, instrument_type, side, underlying, strike_price, premium,
		        expiration_date, execution_date, strategy, status, counterparty
		 FROM derivative_transactions WHERE customer_oid = $1 ORDER BY id`,
		customerOID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	derivatives := make([]models.DerivativeTransaction, 0)
	for rows.Next() {
		var d models.DerivativeTransaction
		if err := rows.Scan(&d.ID, &d.CustomerOID, &d.InstrumentType, &d.Side, &d.Underlying,
			&d.StrikePrice, &d.Premium, &d.ExpirationDate, &d.ExecutionDate,
			&d.Strategy, &d.Status, &d.Counterparty); err != nil {
			return nil, err
		}
		derivatives = append(derivatives, d)
	}
	return derivatives, rows.Err()
}

func (r *derivativeRepo) DeleteByCustomerOID(ctx context.Context, customerOID string, tx pgx.Tx) (int64, error) {
	query := `DELETE FROM derivative_transactions WHERE customer_oid = $1`
	if tx != nil {
		tag, err := tx.Exec(ctx, query, customerOID)
		return tag.RowsAffected(), err
	}
	tag, err := r.db.Exec(ctx, query, customerOID)
	return tag.RowsAffected(), err
}
