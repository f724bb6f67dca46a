// internal/model/product.go
package model

// Price is stored as text, the same way the schema keeps it.
type Product struct {
	ID    int    `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Price string `db:"price" json:"price"`
}

// ProductSummary is the projection embedded in composed order responses.
type ProductSummary struct {
	Name  string `db:"name" json:"name"`
	Price string `db:"price" json:"price"`
}
