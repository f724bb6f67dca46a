// internal/controller/order_controller.go
package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/orendahq/cusprod-backend/internal/model"
	"github.com/orendahq/cusprod-backend/internal/service"
)

type OrderController struct {
	OrderService *service.OrderService
}

func (c *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var body struct {
		CustomerID int `json:"customerId"`
		ProductID  int `json:"productId"`
		Quantity   int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := c.OrderService.CreateOrder(r.Context(), body.CustomerID, body.ProductID, body.Quantity)
	if err != nil {
		respondError(r.Context(), w, err, "Failed to create order")
		return
	}

	respondSuccess(w, http.StatusCreated, order, "Order created successfully")
}

func (c *OrderController) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := c.OrderService.ListOrders(r.Context())
	if err != nil {
		respondError(r.Context(), w, err, "Failed to fetch orders")
		return
	}

	respondSuccess(w, http.StatusOK, orders, "Orders retrieved successfully")
}

func (c *OrderController) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := c.OrderService.GetOrder(r.Context(), id)
	if err != nil {
		respondError(r.Context(), w, err, "Failed to fetch order")
		return
	}

	respondSuccess(w, http.StatusOK, order, "Order retrieved successfully")
}

func (c *OrderController) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid order id")
		return
	}

	var patch model.OrderPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := c.OrderService.UpdateOrder(r.Context(), id, &patch)
	if err != nil {
		respondError(r.Context(), w, err, "Failed to update order")
		return
	}

	respondSuccess(w, http.StatusOK, order, "Order updated successfully")
}

func (c *OrderController) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid order id")
		return
	}

	if err := c.OrderService.DeleteOrder(r.Context(), id); err != nil {
		respondError(r.Context(), w, err, "Failed to delete order")
		return
	}

	respondSuccess(w, http.StatusOK, nil, "Order deleted successfully")
}
