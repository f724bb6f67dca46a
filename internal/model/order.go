// internal/model/order.go
package model

type Order struct {
	ID         int `db:"id" json:"id"`
	CustomerID int `db:"customer_id" json:"customerId"`
	ProductID  int `db:"product_id" json:"productId"`
	Quantity   int `db:"quantity" json:"quantity"`

	// Populated by the composed list query only.
	Customer *CustomerSummary `json:"customer,omitempty"`
	Product  *ProductSummary  `json:"product,omitempty"`
}

// OrderPatch carries the fields of a partial update. Nil means "leave as is".
type OrderPatch struct {
	CustomerID *int `json:"customerId"`
	ProductID  *int `json:"productId"`
	Quantity   *int `json:"quantity"`
}
