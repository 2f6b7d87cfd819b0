package controllers

import (
	"context"
	"time"

	"bankapi/src/repositories"
	"bankapi/src/schemas"
	redis_utils "bankapi/src/utils/redis"

	"github.com/jackc/pgx/v5/pgxpool"
)

type IController interface {
	GetAllCustomers(ctx context.Context) ([]schemas.CustomerResponse, error)
	RegisterCustomer(ctx context.Context, req *schemas.RegisterCustomerRequest) (*schemas.RegisterCustomerResponse, error)
	CustomerExists(ctx context.Context, customerOID string) (*schemas.CustomerExistsResponse, error)
	DeleteCustomer(ctx context.Context, customerOID string) (*schemas.DeleteCustomerResponse, error)
	GetUserPortfolio(ctx context.Context, customerOID string) (*schemas.PortfolioResponse, error)
}

type Controller struct {
	CustomerRepo    repositories.CustomerRepository
	AssetRepo       repositories.AssetRepository
	BankAccountRepo repositories.BankAccountRepository
	InstitutionRepo repositories.InstitutionRepository
	TransactionRepo repositories.TransactionRepository
	SpendingRepo    repositories.SpendingRepository
	DerivativeRepo  repositories.DerivativeRepository

	// Cache is optional; a nil cache disables snapshot caching.
	Cache    SnapshotCache
	CacheTTL time.Duration
}

// SnapshotCache stores serialized portfolio snapshots. Get returns
// redis_utils.ErrCacheMiss when the key is absent.
type SnapshotCache interface {
	Get(ctx context.Context, key string, result interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
}

func NewController(db *pgxpool.Pool, cache *redis_utils.RedisHandler) *Controller {
	controller := &Controller{
		CustomerRepo:    repositories.NewCustomerRepository(db),
		AssetRepo:       repositories.NewAssetRepository(db),
		BankAccountRepo: repositories.NewBankAccountRepository(db),
		InstitutionRepo: repositories.NewInstitutionRepository(db),
		TransactionRepo: repositories.NewTransactionRepository(db),
		SpendingRepo:    repositories.NewSpendingRepository(db),
		DerivativeRepo:  repositories.NewDerivativeRepository(db),
		CacheTTL:        time.Minute,
	}
	if cache != nil {
		controller.Cache = cache
	}
	return controller
}
