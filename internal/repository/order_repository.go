package repository

import (
	"database/sql"
	"fmt"

	appErrors "github.com/orendahq/cusprod-backend/internal/errors"
	"github.com/orendahq/cusprod-backend/internal/model"
)

type OrderRepositoryInterface interface {
	Create(o *model.Order) error
	GetByID(id int) (*model.Order, error)
	ListWithRelations() ([]model.Order, error)
	Update(id int, patch *model.OrderPatch) (*model.Order, error)
	Delete(id int) error
	CountByCustomer(customerID int) (int, error)
	CountByProduct(productID int) (int, error)
}

type OrderRepository struct {
	DB *sql.DB
}

func (r *OrderRepository) Create(o *model.Order) error {
	query := `
        INSERT INTO orders (customer_id, product_id, quantity)
        VALUES ($1, $2, $3)
        RETURNING id
    `
	return r.DB.QueryRow(query, o.CustomerID, o.ProductID, o.Quantity).Scan(&o.ID)
}

func (r *OrderRepository) GetByID(id int) (*model.Order, error) {
	query := `SELECT id, customer_id, product_id, quantity FROM orders WHERE id=$1`
	var o model.Order
	err := r.DB.QueryRow(query, id).Scan(&o.ID, &o.CustomerID, &o.ProductID, &o.Quantity)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewNotFound("order", id)
		}
		return nil, err
	}
	return &o, nil
}

// ListWithRelations returns every order with its customer and product
// projections attached. Orders whose references no longer resolve still
// appear, with nil projections.
func (r *OrderRepository) ListWithRelations() ([]model.Order, error) {
	query := `
        SELECT o.id, o.customer_id, o.product_id, o.quantity,
               c.name, c.phone, c.email, c.address,
               p.name, p.price
        FROM orders o
        LEFT JOIN customers c ON c.id = o.customer_id
        LEFT JOIN products p ON p.id = o.product_id
        ORDER BY o.id
    `
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []model.Order{}
	for rows.Next() {
		var o model.Order
		var cName, cPhone, cEmail, cAddress sql.NullString
		var pName, pPrice sql.NullString
		if err := rows.Scan(
			&o.ID, &o.CustomerID, &o.ProductID, &o.Quantity,
			&cName, &cPhone, &cEmail, &cAddress,
			&pName, &pPrice,
		); err != nil {
			return nil, err
		}
		if cName.Valid {
			o.Customer = &model.CustomerSummary{
				Name:    cName.String,
				Phone:   cPhone.String,
				Email:   cEmail.String,
				Address: cAddress.String,
			}
		}
		if pName.Valid {
			o.Product = &model.ProductSummary{
				Name:  pName.String,
				Price: pPrice.String,
			}
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// Update applies only the fields present in the patch.
func (r *OrderRepository) Update(id int, patch *model.OrderPatch) (*model.Order, error) {
	query := `UPDATE orders SET`
	args := []interface{}{}
	argPos := 1

	if patch.CustomerID != nil {
		query += fmt.Sprintf(" customer_id=$%d,", argPos)
		args = append(args, *patch.CustomerID)
		argPos++
	}
	if patch.ProductID != nil {
		query += fmt.Sprintf(" product_id=$%d,", argPos)
		args = append(args, *patch.ProductID)
		argPos++
	}
	if patch.Quantity != nil {
		query += fmt.Sprintf(" quantity=$%d,", argPos)
		args = append(args, *patch.Quantity)
		argPos++
	}
	if len(args) == 0 {
		// Nothing to change; still report not-found for a missing row.
		return r.GetByID(id)
	}

	query = query[:len(query)-1] + fmt.Sprintf(" WHERE id=$%d", argPos)
	args = append(args, id)

	res, err := r.DB.Exec(query, args...)
	if err != nil {
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, appErrors.NewNotFound("order", id)
	}
	return r.GetByID(id)
}

func (r *OrderRepository) Delete(id int) error {
	res, err := r.DB.Exec(`DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return appErrors.NewNotFound("order", id)
	}
	return nil
}

func (r *OrderRepository) CountByCustomer(customerID int) (int, error) {
	var count int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM orders WHERE customer_id=$1`, customerID).Scan(&count)
	return count, err
}

func (r *OrderRepository) CountByProduct(productID int) (int, error) {
	var count int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM orders WHERE product_id=$1`, productID).Scan(&count)
	return count, err
}

var _ OrderRepositoryInterface = (*OrderRepository)(nil)
