package database

import (
	"context"
	"fmt"

	"bankapi/src/config"
	aws_handler "bankapi/src/utils/aws"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SetupDB opens the postgres connection pool. When password_secret is set the
// database password is pulled from AWS Secrets Manager before building the DSN.
func SetupDB(cfg *config.Config) (*pgxpool.Pool, error) {
	sqlCfg := cfg.Databases.SQL
	if sqlCfg.PasswordSecret != "" {
		awsHandler, err := aws_handler.NewAWSHandler(cfg.AWS.Region)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize AWS session: %w", err)
		}
		password, err := awsHandler.SecretManager.GetSecretValue(sqlCfg.PasswordSecret)
		if err != nil {
			return nil, fmt.Errorf("failed to read database password secret: %w", err)
		}
		sqlCfg.Password = password
	}

	poolCfg, err := pgxpool.ParseConfig(sqlCfg.DSN())
	if err != nil {
		return nil, err
	}

	poolCfg.MaxConns = 5
	poolCfg.MinConns = 1

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return pool, nil
}
