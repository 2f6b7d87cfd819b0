package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"bankapi/src/schemas"
	"bankapi/src/utils"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) GetAllCustomers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	customers, err := h.Controller.GetAllCustomers(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, customers, http.StatusOK)
}

func (h *Handler) RegisterCustomer(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req schemas.RegisterCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.HandleErrors(w, utils.BadRequest("Invalid request body"))
		return
	}

	response, err := h.Controller.RegisterCustomer(ctx, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, response, http.StatusOK)
}

func (h *Handler) CustomerExists(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	customerOID := chi.URLParam(r, "customer_oid")
	response, err := h.Controller.CustomerExists(ctx, customerOID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, response, http.StatusOK)
}

func (h *Handler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	customerOID := chi.URLParam(r, "customer_oid")
	response, err := h.Controller.DeleteCustomer(ctx, customerOID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, response, http.StatusOK)
}
