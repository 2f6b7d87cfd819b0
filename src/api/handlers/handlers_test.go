package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	handlers "bankapi/src/api/handlers"
	"bankapi/src/schemas"
	"bankapi/src/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// controllerStub lets each test script the controller outcome without a
// database behind it.
type controllerStub struct {
	customers  []schemas.CustomerResponse
	registered *schemas.RegisterCustomerResponse
	exists     *schemas.CustomerExistsResponse
	deleted    *schemas.DeleteCustomerResponse
	portfolio  *schemas.PortfolioResponse
	err        error
}

func (s *controllerStub) GetAllCustomers(context.Context) ([]schemas.CustomerResponse, error) {
	return s.customers, s.err
}

func (s *controllerStub) RegisterCustomer(context.Context, *schemas.RegisterCustomerRequest) (*schemas.RegisterCustomerResponse, error) {
	return s.registered, s.err
}

func (s *controllerStub) CustomerExists(context.Context, string) (*schemas.CustomerExistsResponse, error) {
	return s.exists, s.err
}

func (s *controllerStub) DeleteCustomer(context.Context, string) (*schemas.DeleteCustomerResponse, error) {
	return s.deleted, s.err
}

func (s *controllerStub) GetUserPortfolio(context.Context, string) (*schemas.PortfolioResponse, error) {
	return s.portfolio, s.err
}

func newTestServer(stub *controllerStub) *httptest.Server {
	handler := handlers.NewHandler(stub, "bank-api")
	router := chi.NewRouter()
	router.Get("/health", handler.Healthcheck)
	router.Get("/customers", handler.GetAllCustomers)
	router.Post("/register-customer", handler.RegisterCustomer)
	router.Get("/customer/{customer_oid}/exists", handler.CustomerExists)
	router.Delete("/customer/{customer_oid}", handler.DeleteCustomer)
	router.Get("/user-portfolio/{customer_oid}", handler.GetUserPortfolio)
	return httptest.NewServer(router)
}

func decodeBody(t *testing.T, res *http.Response, v interface{}) {
	t.Helper()
	defer res.Body.Close()
	require.NoError(t, json.NewDecoder(res.Body).Decode(v))
}

func TestHealthcheck(t *testing.T) {
	ts := newTestServer(&controllerStub{})
	defer ts.Close()

	res, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var body map[string]string
	decodeBody(t, res, &body)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "bank-api", body["service"])
}

func TestGetAllCustomersHandler(t *testing.T) {
	ts := newTestServer(&controllerStub{
		customers: []schemas.CustomerResponse{
			{CustomerOID: "550e8400-e29b-41d4-a716-446655440001", Name: "John Doe"},
		},
	})
	defer ts.Close()

	res, err := http.Get(ts.URL + "/customers")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var body []schemas.CustomerResponse
	decodeBody(t, res, &body)
	require.Len(t, body, 1)
	assert.Equal(t, "John Doe", body[0].Name)
}

func TestRegisterCustomerHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ts := newTestServer(&controllerStub{
			registered: &schemas.RegisterCustomerResponse{
				CustomerOID: "550e8400-e29b-41d4-a716-446655440001",
				Name:        "Jane Doe",
				Message:     "Customer registered successfully",
			},
		})
		defer ts.Close()

		payload, _ := json.Marshal(schemas.RegisterCustomerRequest{Name: "Jane Doe"})
		res, err := http.Post(ts.URL+"/register-customer", "application/json", bytes.NewReader(payload))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, res.StatusCode)

		var body schemas.RegisterCustomerResponse
		decodeBody(t, res, &body)
		assert.Equal(t, "Jane Doe", body.Name)
		assert.NotEmpty(t, body.CustomerOID)
	})

	t.Run("malformed body", func(t *testing.T) {
		ts := newTestServer(&controllerStub{})
		defer ts.Close()

		res, err := http.Post(ts.URL+"/register-customer", "application/json", bytes.NewReader([]byte("{not json")))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("duplicate surfaces as conflict with detail", func(t *testing.T) {
		ts := newTestServer(&controllerStub{
			err: utils.Conflict("Customer with CustomerOID '550e8400-e29b-41d4-a716-446655440001' already exists"),
		})
		defer ts.Close()

		payload, _ := json.Marshal(schemas.RegisterCustomerRequest{Name: "Jane Doe"})
		res, err := http.Post(ts.URL+"/register-customer", "application/json", bytes.NewReader(payload))
		require.NoError(t, err)
		require.Equal(t, http.StatusConflict, res.StatusCode)

		var body map[string]string
		decodeBody(t, res, &body)
		assert.Contains(t, body["detail"], "already exists")
	})
}

func TestBackendErrorRendering(t *testing.T) {
	ts := newTestServer(&controllerStub{err: errors.New("connection reset")})
	defer ts.Close()

	res, err := http.Get(ts.URL + "/customers")
	require.NoError(t, err)
	require.Equal(t, http.StatusInternalServerError, res.StatusCode)
	assert.Equal(t, "application/json", res.Header.Get("Content-Type"))

	var body map[string]string
	decodeBody(t, res, &body)
	assert.Equal(t, "connection reset", body["detail"])
}

func TestCustomerExistsHandler(t *testing.T) {
	ts := newTestServer(&controllerStub{
		exists: &schemas.CustomerExistsResponse{
			CustomerOID: "550e8400-e29b-41d4-a716-446655440001",
			Exists:      false,
		},
	})
	defer ts.Close()

	res, err := http.Get(ts.URL + "/customer/550e8400-e29b-41d4-a716-446655440001/exists")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var body schemas.CustomerExistsResponse
	decodeBody(t, res, &body)
	assert.False(t, body.Exists)
}

func TestDeleteCustomerHandler(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ts := newTestServer(&controllerStub{
			err: utils.NotFound("Customer with CustomerOID '550e8400-e29b-41d4-a716-446655440009' not found"),
		})
		defer ts.Close()

		req, err := http.NewRequest(http.MethodDelete, ts.URL+"/customer/550e8400-e29b-41d4-a716-446655440009", nil)
		require.NoError(t, err)
		res, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})

	t.Run("success", func(t *testing.T) {
		ts := newTestServer(&controllerStub{
			deleted: &schemas.DeleteCustomerResponse{
				CustomerOID: "550e8400-e29b-41d4-a716-446655440001",
				Message:     "Customer and all associated data deleted successfully",
			},
		})
		defer ts.Close()

		req, err := http.NewRequest(http.MethodDelete, ts.URL+"/customer/550e8400-e29b-41d4-a716-446655440001", nil)
		require.NoError(t, err)
		res, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, res.StatusCode)

		var body schemas.DeleteCustomerResponse
		decodeBody(t, res, &body)
		assert.Contains(t, body.Message, "deleted successfully")
	})
}

func TestGetUserPortfolioHandler(t *testing.T) {
	ts := newTestServer(&controllerStub{
		portfolio: &schemas.PortfolioResponse{
			CustomerOID: "550e8400-e29b-41d4-a716-446655440001",
			User: schemas.CustomerResponse{
				CustomerOID: "550e8400-e29b-41d4-a716-446655440001",
				Name:        "John Doe",
			},
			PortfolioSummary: schemas.PortfolioSummary{
				CustomerOID:      "550e8400-e29b-41d4-a716-446655440001",
				TotalCashBalance: 350.5,
				TotalAccounts:    2,
				HasData:          schemas.HasData{Accounts: true},
			},
		},
	})
	defer ts.Close()

	res, err := http.Get(ts.URL + "/user-portfolio/550e8400-e29b-41d4-a716-446655440001")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var body map[string]interface{}
	decodeBody(t, res, &body)
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440001", body["customer_oid"])

	summary, ok := body["portfolio_summary"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 350.5, summary["total_cash_balance"])
}
