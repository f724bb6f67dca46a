package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	appErrors "github.com/orendahq/cusprod-backend/internal/errors"
	"github.com/orendahq/cusprod-backend/internal/model"
)

// uniqueViolation is the Postgres error code for duplicate keys.
const uniqueViolation = "23505"

type CustomerRepositoryInterface interface {
	Create(c *model.Customer) error
	GetByID(id int) (*model.Customer, error)
	ListAll() ([]model.Customer, error)
	Update(id int, c *model.Customer) (*model.Customer, error)
	Delete(id int) error
	EmailExists(email string) (bool, error)
}

type CustomerRepository struct {
	DB *sql.DB
}

func (r *CustomerRepository) Create(c *model.Customer) error {
	query := `
        INSERT INTO customers (name, phone, email, address)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `
	err := r.DB.QueryRow(query, c.Name, c.Phone, c.Email, c.Address).Scan(&c.ID)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
		return appErrors.NewConflict(fmt.Sprintf("email %s is already in use", c.Email))
	}
	return err
}

func (r *CustomerRepository) GetByID(id int) (*model.Customer, error) {
	query := `
        SELECT id, name, phone, email, address
        FROM customers
        WHERE id = $1
    `
	var c model.Customer
	err := r.DB.QueryRow(query, id).Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewNotFound("customer", id)
		}
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) ListAll() ([]model.Customer, error) {
	query := `
        SELECT id, name, phone, email, address
        FROM customers
        ORDER BY id
    `
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := []model.Customer{}
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *CustomerRepository) Update(id int, c *model.Customer) (*model.Customer, error) {
	query := `
        UPDATE customers
        SET name=$1, phone=$2, email=$3, address=$4
        WHERE id=$5
    `
	res, err := r.DB.Exec(query, c.Name, c.Phone, c.Email, c.Address, id)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
		return nil, appErrors.NewConflict(fmt.Sprintf("email %s is already in use", c.Email))
	}
	if err != nil {
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, appErrors.NewNotFound("customer", id)
	}
	return r.GetByID(id)
}

func (r *CustomerRepository) Delete(id int) error {
	res, err := r.DB.Exec(`DELETE FROM customers WHERE id=$1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return appErrors.NewNotFound("customer", id)
	}
	return nil
}

func (r *CustomerRepository) EmailExists(email string) (bool, error) {
	var count int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM customers WHERE email=$1`, email).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

var _ CustomerRepositoryInterface = (*CustomerRepository)(nil)
