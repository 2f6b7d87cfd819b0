package repositories

import (
	"context"

	"bankapi/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AssetRepository interface {
	Create(ctx context.Context, a *models.Asset, tx pgx.Tx) error
	GetByCustomerOID(ctx context.Context, customerOID string) ([]models.Asset, error)
	DeleteByCustomerOID(ctx context.Context, customerOID string, tx pgx.Tx) (int64, error)
}

type assetRepo struct {
	db *pgxpool.Pool
}

func NewAssetRepository(db *pgxpool.Pool) AssetRepository {
	return &assetRepo{db: db}
}

func (r *assetRepo) Create(ctx context.Context, a *models.Asset, tx pgx.Tx) error {
	query := `
		INSERT INTO assets (customer_oid, asset_type, symbol, quantity, current_value)
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

		err = tx.QueryRow(ctx, query, a.CustomerOID, a.AssetType, a.Symbol, a.Quantity, a.CurrentValue).Scan(&a.ID)
		if err != nil {
			if isForeignKeyViolation(err) {
				return ErrCustomerNotFound
			}
			return err
		}
		return tx.Commit(ctx)
	}

	err = tx.QueryRow(ctx, query, a.CustomerOID, a.AssetType, a.Symbol, a.Quantity, a.CurrentValue).Scan(&a.ID)
	if isForeignKeyViolation(err) {
		return ErrCustomerNotFound
	}
	return err
}

func (r *assetRepo) GetByCustomerOID(ctx context.Context, customerOID string) ([]models.Asset, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, customer_oid, asset_type, symbol, quantity, current_value FROM assets WHERE customer_oid = $1 ORDER BY id`,
		customerOID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assets := make([]models.Asset, 0)
	for rows.Next() {
		var a models.Asset
		if err := rows.Scan(&a.ID, &a.CustomerOID, &a.AssetType, &a.Symbol, &a.Quantity, &a.CurrentValue); err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

func (r *assetRepo) DeleteByCustomerOID(ctx context.Context, customerOID string, tx pgx.Tx) (int64, error) {
	query := `DELETE FROM assets WHERE customer_oid = $1`
	if tx != nil {
		tag, err := tx.Exec(ctx, query, customerOID)
		return tag.RowsAffected(), err
	}
	tag, err := r.db.Exec(ctx, query, customerOID)
	return tag.RowsAffected(), err
}
