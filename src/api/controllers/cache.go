package controllers

import (
	"context"
	"errors"
	"fmt"

	"bankapi/src/schemas"
	"bankapi/src/utils"
	redis_utils "bankapi/src/utils/redis"
)

func snapshotKey(customerOID string) string {
	return fmt.Sprintf("portfolio:%s", customerOID)
}

// cachedSnapshot returns the cached portfolio for the customer, or nil on any
// miss or cache failure. Cache trouble degrades to a direct read, never an
// error to the caller.
func (c *Controller) cachedSnapshot(ctx context.Context, customerOID string) *schemas.PortfolioResponse {
	if c.Cache == nil {
		return nil
	}
	var snapshot schemas.PortfolioResponse
	err := c.Cache.Get(ctx, snapshotKey(customerOID), &snapshot)
	if err != nil {
		if !errors.Is(err, redis_utils.ErrCacheMiss) {
			utils.LoggerFromContext(ctx).WithError(err).Warn("portfolio cache read failed")
		}
		return nil
	}
	return &snapshot
}

func (c *Controller) storeSnapshot(ctx context.Context, customerOID string, snapshot *schemas.PortfolioResponse) {
	if c.Cache == nil {
		return
	}
	if err := c.Cache.Set(ctx, snapshotKey(customerOID), snapshot, c.CacheTTL); err != nil {
		utils.LoggerFromContext(ctx).WithError(err).Warn("portfolio cache write failed")
	}
}

func (c *Controller) invalidateSnapshot(ctx context.Context, customerOID string) {
	if c.Cache == nil {
		return
	}
	if err := c.Cache.Delete(ctx, snapshotKey(customerOID)); err != nil {
		utils.LoggerFromContext(ctx).WithError(err).Warn("portfolio cache invalidation failed")
	}
}
