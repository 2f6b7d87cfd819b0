package repositories

import (
	"context"

	"bankapi/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type InstitutionRepository interface {
	Create(ctx context.Context, i *models.Institution, tx pgx.Tx) error
	GetByIDs(ctx context.Context, ids []int) (map[int]models.Institution, error)
	GetAll(ctx context.Context) ([]models.Institution, error)
}

type institutionRepo struct {
	db *pgxpool.Pool
}

func NewInstitutionRepository(db *pgxpool.Pool) InstitutionRepository {
	return &institutionRepo{db: db}
}

func (r *institutionRepo) Create(ctx context.Context, i *models.Institution, tx pgx.Tx) error {
	query := `
		INSERT INTO institutions (name, routing_number, institution_type, contact_info)
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

		err = tx.QueryRow(ctx, query, i.Name, i.RoutingNumber, i.Type, i.ContactInfo).Scan(&i.ID)
		if err != nil {
			return err
		}
		return tx.Commit(ctx)
	}

	return tx.QueryRow(ctx, query, i.Name, i.RoutingNumber, i.Type, i.ContactInfo).Scan(&i.ID)
}

// GetByIDs resolves a set of institution ids in one query, keyed by id.
func (r *institutionRepo) GetByIDs(ctx context.Context, ids []int) (map[int]models.Institution, error) {
	institutions := make(map[int]models.Institution, len(ids))
	if len(ids) == 0 {
		return institutions, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, name, routing_number, institution_type, contact_info FROM institutions WHERE id = ANY($1)`,
		ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var i models.Institution
		if err := rows.Scan(&i.ID, &i.Name, &i.RoutingNumber, &i.Type, &i.ContactInfo); err != nil {
			return nil, err
		}
		institutions[i.ID] = i
	}
	return institutions, rows.Err()
}

func (r *institutionRepo) GetAll(ctx context.Context) ([]models.Institution, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, routing_number, institution_type, contact_info FROM institutions ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	institutions := make([]models.Institution, 0)
	for rows.Next() {
		var i models.Institution
		if err := rows.Scan(&i.ID, &i.Name, &i.RoutingNumber, &i.Type, &i.ContactInfo); err != nil {
			return nil, err
		}
		institutions = append(institutions, i)
	}
	return institutions, rows.Err()
}
