// Package apiclient is a typed client for the /api/v1 contract.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	appErrors "github.com/orendahq/cusprod-backend/internal/errors"
	"github.com/orendahq/cusprod-backend/internal/model"
)

type Client struct {
	Base string
	HTTP *http.Client
}

func New(base string) *Client {
	return &Client{Base: base, HTTP: http.DefaultClient}
}

type responseEnvelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// do issues one request and decodes the envelope. Failure statuses are mapped
// back onto the service error taxonomy so callers can branch the same way on
// both sides of the wire. entity and id shape the not-found error and are
// ignored for operations that cannot 404.
func (c *Client) do(ctx context.Context, method, path, entity string, id int, body interface{}, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.Base+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env responseEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusBadRequest:
		return &appErrors.ValidationError{Field: "request", Reason: env.Message}
	case resp.StatusCode == http.StatusNotFound:
		return appErrors.NewNotFound(entity, id)
	case resp.StatusCode == http.StatusConflict:
		return appErrors.NewConflict(env.Message)
	case resp.StatusCode >= 400:
		return fmt.Errorf("server error (%d): %s", resp.StatusCode, env.Message)
	}

	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}

// ---- Orders ----

func (c *Client) ListOrders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	err := c.do(ctx, http.MethodGet, "/orders", "order", 0, nil, &orders)
	return orders, err
}

func (c *Client) GetOrder(ctx context.Context, id int) (*model.Order, error) {
	var o model.Order
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", id), "order", id, nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *Client) CreateOrder(ctx context.Context, customerID, productID, quantity int) (*model.Order, error) {
	body := map[string]int{
		"customerId": customerID,
		"productId":  productID,
		"quantity":   quantity,
	}
	var o model.Order
	if err := c.do(ctx, http.MethodPost, "/orders/create", "order", 0, body, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *Client) UpdateOrder(ctx context.Context, id int, patch model.OrderPatch) (*model.Order, error) {
	var o model.Order
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/orders/%d", id), "order", id, patch, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *Client) DeleteOrder(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/orders/%d", id), "order", id, nil, nil)
}

// ---- Customers ----

func (c *Client) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	var customers []model.Customer
	err := c.do(ctx, http.MethodGet, "/customer", "customer", 0, nil, &customers)
	return customers, err
}

func (c *Client) GetCustomer(ctx context.Context, id int) (*model.Customer, error) {
	var out model.Customer
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/customer/%d", id), "customer", id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateCustomer(ctx context.Context, in model.Customer) (*model.Customer, error) {
	var out model.Customer
	if err := c.do(ctx, http.MethodPost, "/customer/create", "customer", 0, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCustomer(ctx context.Context, id int, in model.Customer) (*model.Customer, error) {
	var out model.Customer
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/customer/%d", id), "customer", id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCustomer(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/customer/%d", id), "customer", id, nil, nil)
}

// ---- Products ----

func (c *Client) ListProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := c.do(ctx, http.MethodGet, "/products", "product", 0, nil, &products)
	return products, err
}

func (c *Client) GetProduct(ctx context.Context, id int) (*model.Product, error) {
	var out model.Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), "product", id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateProduct(ctx context.Context, in model.Product) (*model.Product, error) {
	var out model.Product
	if err := c.do(ctx, http.MethodPost, "/products/create", "product", 0, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int, in model.Product) (*model.Product, error) {
	var out model.Product
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), "product", id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), "product", id, nil, nil)
}
