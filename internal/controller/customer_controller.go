// internal/controller/customer_controller.go
package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/orendahq/cusprod-backend/internal/model"
	"github.com/orendahq/cusprod-backend/internal/service"
)

type CustomerController struct {
	CustomerService *service.CustomerService
}

func (c *CustomerController) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name    string `json:"name"`
		Phone   string `json:"phone"`
		Email   string `json:"email"`
		Address string `json:"address"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	customer := &model.Customer{
		Name:    body.Name,
		Phone:   body.Phone,
		Email:   body.Email,
		Address: body.Address,
	}
	created, err := c.CustomerService.CreateCustomer(r.Context(), customer)
	if err != nil {
		respondError(r.Context(), w, err, "Failed to create customer")
		return
	}

	respondSuccess(w, http.StatusCreated, created, "Customer created successfully")
}

func (c *CustomerController) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := c.CustomerService.ListCustomers(r.Context())
	if err != nil {
		respondError(r.Context(), w, err, "Failed to fetch customers")
		return
	}

	respondSuccess(w, http.StatusOK, customers, "Customers retrieved successfully")
}

func (c *CustomerController) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid customer id")
		return
	}

	customer, err := c.CustomerService.GetCustomer(r.Context(), id)
	if err != nil {
		respondError(r.Context(), w, err, "Failed to fetch customer")
		return
	}

	respondSuccess(w, http.StatusOK, customer, "Customer retrieved successfully")
}

func (c *CustomerController) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid customer id")
		return
	}

	var body model.Customer
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := c.CustomerService.UpdateCustomer(r.Context(), id, &body)
	if err != nil {
		respondError(r.Context(), w, err, "Failed to update customer")
		return
	}

	respondSuccess(w, http.StatusOK, updated, "Customer updated successfully")
}

func (c *CustomerController) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid customer id")
		return
	}

	if err := c.CustomerService.DeleteCustomer(r.Context(), id); err != nil {
		respondError(r.Context(), w, err, "Failed to delete customer")
		return
	}

	respondSuccess(w, http.StatusOK, nil, "Customer deleted successfully")
}
