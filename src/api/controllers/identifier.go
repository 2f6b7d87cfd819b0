package controllers

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"bankapi/src/repositories"
	"bankapi/src/utils"

	"github.com/google/uuid"
)

// legacyOIDPattern matches pre-UUID customer identifiers still present in
// storage. New identifiers are always UUIDs.
var legacyOIDPattern = regexp.MustCompile(`^[A-Z0-9-]{8,36}$`)

// ResolveCustomerOID validates a raw customer identifier. Canonical UUIDs are
// accepted as-is. Anything else is accepted only when it has the legacy shape
// and already exists in storage; unknown non-UUID input is rejected.
func (c *Controller) ResolveCustomerOID(ctx context.Context, raw string) (string, error) {
	if raw == "" {
		return "", utils.BadRequest("CustomerOID cannot be empty")
	}

	if _, err := uuid.Parse(raw); err == nil {
		return raw, nil
	}

	if legacyOIDPattern.MatchString(raw) {
		_, err := c.CustomerRepo.GetByOID(ctx, raw)
		if err == nil {
			return raw, nil
		}
		if !errors.Is(err, repositories.ErrCustomerNotFound) {
			return "", err
		}
	}

	return "", utils.BadRequest(fmt.Sprintf(
		"Invalid CustomerOID format: '%s'. Expected UUID format (e.g., 550e8400-e29b-41d4-a716-446655440000) or a known legacy identifier",
		raw))
}
