package schemas

type CustomerResponse struct {
	CustomerOID string `json:"customer_oid"`
	Name        string `json:"name"`
}

type RegisterCustomerRequest struct {
	Name        string `json:"name"`
	CustomerOID string `json:"customer_oid,omitempty"`
}

type RegisterCustomerResponse struct {
	CustomerOID string `json:"customer_oid"`
	Name        string `json:"name"`
	Message     string `json:"message"`
}

type CustomerExistsResponse struct {
	CustomerOID string `json:"customer_oid"`
	Exists      bool   `json:"exists"`
	Name        string `json:"name,omitempty"`
}

type DeleteCustomerResponse struct {
	CustomerOID string `json:"customer_oid"`
	Message     string `json:"message"`
}
