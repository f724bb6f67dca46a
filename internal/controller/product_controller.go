// internal/controller/product_controller.go
package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/orendahq/cusprod-backend/internal/model"
	"github.com/orendahq/cusprod-backend/internal/service"
)

type ProductController struct {
	ProductService *service.ProductService
}

func (c *ProductController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name  string `json:"name"`
		Price string `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product := &model.Product{Name: body.Name, Price: body.Price}
	created, err := c.ProductService.CreateProduct(r.Context(), product)
	if err != nil {
		respondError(r.Context(), w, err, "Failed to create product")
		return
	}

	respondSuccess(w, http.StatusCreated, created, "Product created successfully")
}

func (c *ProductController) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := c.ProductService.ListProducts(r.Context())
	if err != nil {
		respondError(r.Context(), w, err, "Failed to fetch products")
		return
	}

	respondSuccess(w, http.StatusOK, products, "Products retrieved successfully")
}

func (c *ProductController) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := c.ProductService.GetProduct(r.Context(), id)
	if err != nil {
		respondError(r.Context(), w, err, "Failed to fetch product")
		return
	}

	respondSuccess(w, http.StatusOK, product, "Product retrieved successfully")
}

func (c *ProductController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var body model.Product
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := c.ProductService.UpdateProduct(r.Context(), id, &body)
	if err != nil {
		respondError(r.Context(), w, err, "Failed to update product")
		return
	}

	respondSuccess(w, http.StatusOK, updated, "Product updated successfully")
}

func (c *ProductController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := c.ProductService.DeleteProduct(r.Context(), id); err != nil {
		respondError(r.Context(), w, err, "Failed to delete product")
		return
	}

	respondSuccess(w, http.StatusOK, nil, "Product deleted successfully")
}
