package controllers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bankapi/src/models"
	"bankapi/src/repositories"
	"bankapi/src/schemas"
	"bankapi/src/utils"

	"github.com/google/uuid"
)

func (c *Controller) GetAllCustomers(ctx context.Context) ([]schemas.CustomerResponse, error) {
	customers, err := c.CustomerRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]schemas.CustomerResponse, 0, len(customers))
	for _, customer := range customers {
		responses = append(responses, schemas.CustomerResponse{
			CustomerOID: customer.CustomerOID,
			Name:        customer.Name,
		})
	}
	return responses, nil
}

// RegisterCustomer creates a new customer. All validation happens before any
// write: the name must be at least 2 characters after trimming, and a supplied
// identifier must be well-formed and not collide with any existing customer,
// UUID or legacy.
func (c *Controller) RegisterCustomer(ctx context.Context, req *schemas.RegisterCustomerRequest) (*schemas.RegisterCustomerResponse, error) {
	name := strings.TrimSpace(req.Name)
	if len(name) < 2 {
		return nil, utils.BadRequest("Name must be at least 2 characters long")
	}

	if req.CustomerOID != "" {
		customerOID, err := c.ResolveCustomerOID(ctx, req.CustomerOID)
		if err != nil {
			return nil, err
		}
		customer := &models.Customer{CustomerOID: customerOID, Name: name}
		if err := c.CustomerRepo.Create(ctx, customer, nil); err != nil {
			if errors.Is(err, repositories.ErrDuplicateCustomer) {
				return nil, utils.Conflict(fmt.Sprintf("Customer with CustomerOID '%s' already exists", customerOID))
			}
			return nil, err
		}
		return c.registered(ctx, customer), nil
	}

	// Generated identifiers retry once on the astronomically unlikely UUID
	// collision before giving up.
	var customer *models.Customer
	for attempt := 0; attempt < 2; attempt++ {
		customer = &models.Customer{CustomerOID: uuid.NewString(), Name: name}
		err := c.CustomerRepo.Create(ctx, customer, nil)
		if err == nil {
			return c.registered(ctx, customer), nil
		}
		if !errors.Is(err, repositories.ErrDuplicateCustomer) {
			return nil, err
		}
	}
	return nil, utils.InternalServerError("Failed to generate a unique CustomerOID")
}

func (c *Controller) registered(ctx context.Context, customer *models.Customer) *schemas.RegisterCustomerResponse {
	utils.LoggerFromContext(ctx).WithField("customer_oid", customer.CustomerOID).Info("customer registered")
	return &schemas.RegisterCustomerResponse{
		CustomerOID: customer.CustomerOID,
		Name:        customer.Name,
		Message:     "Customer registered successfully",
	}
}

// CustomerExists reports whether a well-formed identifier is present. An
// absent but valid identifier is not an error.
func (c *Controller) CustomerExists(ctx context.Context, rawOID string) (*schemas.CustomerExistsResponse, error) {
	customerOID, err := c.ResolveCustomerOID(ctx, rawOID)
	if err != nil {
		return nil, err
	}

	customer, err := c.CustomerRepo.GetByOID(ctx, customerOID)
	if err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return &schemas.CustomerExistsResponse{CustomerOID: customerOID, Exists: false}, nil
		}
		return nil, err
	}
	return &schemas.CustomerExistsResponse{
		CustomerOID: customerOID,
		Exists:      true,
		Name:        customer.Name,
	}, nil
}

// DeleteCustomer removes the customer and every dependent row atomically.
// This is the only destructive operation in the service; there is no undo.
func (c *Controller) DeleteCustomer(ctx context.Context, rawOID string) (*schemas.DeleteCustomerResponse, error) {
	customerOID, err := c.ResolveCustomerOID(ctx, rawOID)
	if err != nil {
		return nil, err
	}

	result, err := c.CustomerRepo.DeleteCascade(ctx, customerOID)
	if err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return nil, utils.NotFound(fmt.Sprintf("Customer with CustomerOID '%s' not found", customerOID))
		}
		return nil, err
	}

	c.invalidateSnapshot(ctx, customerOID)
	utils.LoggerFromContext(ctx).WithFields(map[string]interface{}{
		"customer_oid": customerOID,
		"rows_deleted": result.Total(),
	}).Info("customer deleted")

	return &schemas.DeleteCustomerResponse{
		CustomerOID: customerOID,
		Message:     "Customer and all associated data deleted successfully",
	}, nil
}
