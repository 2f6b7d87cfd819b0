package controllers_test

import (
	"context"

	"bankapi/src/api/controllers"
	"bankapi/src/models"
	"bankapi/src/repositories"

	"github.com/jackc/pgx/v5"
)

// memStore backs the repository mocks with plain slices so controller logic
// can be exercised without a database. Dependent inserts enforce the same
// referential check the schema does.
type memStore struct {
	customers    []models.Customer
	institutions []models.Institution
	assets       []models.Asset
	accounts     []models.BankAccount
	transactions []models.Transaction
	spending     []models.Spending
	derivatives  []models.DerivativeTransaction
	nextID int
	// failCollections makes every collection listing fail. Customer lookups
	// are unaffected so aggregation failures can be staged past the
	// existence check.
	failCollections error
}

func newMemStore() *memStore {
	return &memStore{nextID: 1}
}

func (s *memStore) id() int {
	id := s.nextID
	s.nextID++
	return id
}

func (s *memStore) hasCustomer(oid string) bool {
	for _, c := range s.customers {
		if c.CustomerOID == oid {
			return true
		}
	}
	return false
}

func newTestController(store *memStore) *controllers.Controller {
	return &controllers.Controller{
		CustomerRepo:    &memCustomerRepo{store},
		AssetRepo:       &memAssetRepo{store},
		BankAccountRepo: &memBankAccountRepo{store},
		InstitutionRepo: &memInstitutionRepo{store},
		TransactionRepo: &memTransactionRepo{store},
		SpendingRepo:    &memSpendingRepo{store},
		DerivativeRepo:  &memDerivativeRepo{store},
	}
}

type memCustomerRepo struct{ store *memStore }

func (r *memCustomerRepo) Create(_ context.Context, c *models.Customer, _ pgx.Tx) error {
	if r.store.hasCustomer(c.CustomerOID) {
		return repositories.ErrDuplicateCustomer
	}
	c.ID = r.store.id()
	r.store.customers = append(r.store.customers, *c)
	return nil
}

func (r *memCustomerRepo) GetByOID(_ context.Context, oid string) (*models.Customer, error) {
	for _, c := range r.store.customers {
		if c.CustomerOID == oid {
			customer := c
			return &customer, nil
		}
	}
	return nil, repositories.ErrCustomerNotFound
}

func (r *memCustomerRepo) GetAll(_ context.Context) ([]models.Customer, error) {
	return append([]models.Customer{}, r.store.customers...), nil
}

func (r *memCustomerRepo) DeleteCascade(_ context.Context, oid string) (*repositories.CascadeResult, error) {
	if !r.store.hasCustomer(oid) {
		return nil, repositories.ErrCustomerNotFound
	}

	result := &repositories.CascadeResult{}
	kept := r.store.assets[:0]
	for _, a := range r.store.assets {
		if a.CustomerOID == oid {
			result.Assets++
		} else {
			kept = append(kept, a)
		}
	}
	r.store.assets = kept

	keptAccounts := r.store.accounts[:0]
	for _, a := range r.store.accounts {
		if a.CustomerOID == oid {
			result.BankAccounts++
		} else {
			keptAccounts = append(keptAccounts, a)
		}
	}
	r.store.accounts = keptAccounts

	keptTx := r.store.transactions[:0]
	for _, t := range r.store.transactions {
		if t.CustomerOID == oid {
			result.Transactions++
		} else {
			keptTx = append(keptTx, t)
		}
	}
	r.store.transactions = keptTx

	keptSpending := r.store.spending[:0]
	for _, sp := range r.store.spending {
		if sp.CustomerOID == oid {
			result.Spending++
		} else {
			keptSpending = append(keptSpending, sp)
		}
	}
	r.store.spending = keptSpending

	keptDerivatives := r.store.derivatives[:0]
	for _, d := range r.store.derivatives {
		if d.CustomerOID == oid {
			result.DerivativeTransactions++
		} else {
			keptDerivatives = append(keptDerivatives, d)
		}
	}
	r.store.derivatives = keptDerivatives

	keptCustomers := r.store.customers[:0]
	for _, c := range r.store.customers {
		if c.CustomerOID != oid {
			keptCustomers = append(keptCustomers, c)
		}
	}
	r.store.customers = keptCustomers

	return result, nil
}

type memAssetRepo struct{ store *memStore }

func (r *memAssetRepo) Create(_ context.Context, a *models.Asset, _ pgx.Tx) error {
	if !r.store.hasCustomer(a.CustomerOID) {
		return repositories.ErrCustomerNotFound
	}
	a.ID = r.store.id()
	r.store.assets = append(r.store.assets, *a)
	return nil
}

func (r *memAssetRepo) GetByCustomerOID(_ context.Context, oid string) ([]models.Asset, error) {
	if r.store.failCollections != nil {
		return nil, r.store.failCollections
	}
	assets := make([]models.Asset, 0)
	for _, a := range r.store.assets {
		if a.CustomerOID == oid {
			assets = append(assets, a)
		}
	}
	return assets, nil
}

func (r *memAssetRepo) DeleteByCustomerOID(_ context.Context, oid string, _ pgx.Tx) (int64, error) {
	var count int64
	kept := r.store.assets[:0]
	for _, a := range r.store.assets {
		if a.CustomerOID == oid {
			count++
		} else {
			kept = append(kept, a)
		}
	}
	r.store.assets = kept
	return count, nil
}

type memBankAccountRepo struct{ store *memStore }

func (r *memBankAccountRepo) Create(_ context.Context, b *models.BankAccount, _ pgx.Tx) error {
	if !r.store.hasCustomer(b.CustomerOID) {
		return repositories.ErrCustomerNotFound
	}
	b.ID = r.store.id()
	r.store.accounts = append(r.store.accounts, *b)
	return nil
}

func (r *memBankAccountRepo) GetByCustomerOID(_ context.Context, oid string) ([]models.BankAccount, error) {
	if r.store.failCollections != nil {
		return nil, r.store.failCollections
	}
	accounts := make([]models.BankAccount, 0)
	for _, a := range r.store.accounts {
		if a.CustomerOID == oid {
			accounts = append(accounts, a)
		}
	}
	return accounts, nil
}

func (r *memBankAccountRepo) DeleteByCustomerOID(_ context.Context, oid string, _ pgx.Tx) (int64, error) {
	var count int64
	kept := r.store.accounts[:0]
	for _, a := range r.store.accounts {
		if a.CustomerOID == oid {
			count++
		} else {
			kept = append(kept, a)
		}
	}
	r.store.accounts = kept
	return count, nil
}

type memInstitutionRepo struct{ store *memStore }

func (r *memInstitutionRepo) Create(_ context.Context, i *models.Institution, _ pgx.Tx) error {
	i.ID = r.store.id()
	r.store.institutions = append(r.store.institutions, *i)
	return nil
}

func (r *memInstitutionRepo) GetByIDs(_ context.Context, ids []int) (map[int]models.Institution, error) {
	institutions := make(map[int]models.Institution, len(ids))
	for _, id := range ids {
		for _, i := range r.store.institutions {
			if i.ID == id {
				institutions[id] = i
			}
		}
	}
	return institutions, nil
}

func (r *memInstitutionRepo) GetAll(_ context.Context) ([]models.Institution, error) {
	return append([]models.Institution{}, r.store.institutions...), nil
}

type memTransactionRepo struct{ store *memStore }

func (r *memTransactionRepo) Create(_ context.Context, t *models.Transaction, _ pgx.Tx) error {
	if !r.store.hasCustomer(t.CustomerOID) {
		return repositories.ErrCustomerNotFound
	}
	t.ID = r.store.id()
	r.store.transactions = append(r.store.transactions, *t)
	return nil
}

func (r *memTransactionRepo) GetByCustomerOID(_ context.Context, oid string) ([]models.Transaction, error) {
	if r.store.failCollections != nil {
		return nil, r.store.failCollections
	}
	transactions := make([]models.Transaction, 0)
	for _, t := range r.store.transactions {
		if t.CustomerOID == oid {
			transactions = append(transactions, t)
		}
	}
	return transactions, nil
}

func (r *memTransactionRepo) DeleteByCustomerOID(_ context.Context, oid string, _ pgx.Tx) (int64, error) {
	var count int64
	kept := r.store.transactions[:0]
	for _, t := range r.store.transactions {
		if t.CustomerOID == oid {
			count++
		} else {
			kept = append(kept, t)
		}
	}
	r.store.transactions = kept
	return count, nil
}

type memSpendingRepo struct{ store *memStore }

func (r *memSpendingRepo) Create(_ context.Context, s *models.Spending, _ pgx.Tx) error {
	if !r.store.hasCustomer(s.CustomerOID) {
		return repositories.ErrCustomerNotFound
	}
	s.ID = r.store.id()
	r.store.spending = append(r.store.spending, *s)
	return nil
}

func (r *memSpendingRepo) GetByCustomerOID(_ context.Context, oid string) ([]models.Spending, error) {
	if r.store.failCollections != nil {
		return nil, r.store.failCollections
	}
	spending := make([]models.Spending, 0)
	for _, s := range r.store.spending {
		if s.CustomerOID == oid {
			spending = append(spending, s)
		}
	}
	return spending, nil
}

func (r *memSpendingRepo) DeleteByCustomerOID(_ context.Context, oid string, _ pgx.Tx) (int64, error) {
	var count int64
	kept := r.store.spending[:0]
	for _, s := range r.store.spending {
		if s.CustomerOID == oid {
			count++
		} else {
			kept = append(kept, s)
		}
	}
	r.store.spending = kept
	return count, nil
}

type memDerivativeRepo struct{ store *memStore }

func (r *memDerivativeRepo) Create(_ context.Context, d *models.DerivativeTransaction, _ pgx.Tx) error {
	if !r.store.hasCustomer(d.CustomerOID) {
		return repositories.ErrCustomerNotFound
	}
	d.ID = r.store.id()
	r.store.derivatives = append(r.store.derivatives, *d)
	return nil
}

func (r *memDerivativeRepo) GetByCustomerOID(_ context.Context, oid string) ([]models.DerivativeTransaction, error) {
	if r.store.failCollections != nil {
		return nil, r.store.failCollections
	}
	derivatives := make([]models.DerivativeTransaction, 0)
	for _, d := range r.store.derivatives {
		if d.CustomerOID == oid {
			derivatives = append(derivatives, d)
		}
	}
	return derivatives, nil
}

func (r *memDerivativeRepo) DeleteByCustomerOID(_ context.Context, oid string, _ pgx.Tx) (int64, error) {
	var count int64
	kept := r.store.derivatives[:0]
	for _, d := range r.store.derivatives {
		if d.CustomerOID == oid {
			count++
		} else {
			kept = append(kept, d)
		}
	}
	r.store.derivatives = kept
	return count, nil
}
