package repository

import (
	"database/sql"

	appErrors "github.com/orendahq/cusprod-backend/internal/errors"
	"github.com/orendahq/cusprod-backend/internal/model"
)

type ProductRepositoryInterface interface {
	Create(p *model.Product) error
	GetByID(id int) (*model.Product, error)
	ListAll() ([]model.Product, error)
	Update(id int, p *model.Product) (*model.Product, error)
	Delete(id int) error
}

type ProductRepository struct {
	DB *sql.DB
}

func (r *ProductRepository) Create(p *model.Product) error {
	query := `
        INSERT INTO products (name, price)
        VALUES ($1, $2)
        RETURNING id
    `
	return r.DB.QueryRow(query, p.Name, p.Price).Scan(&p.ID)
}

func (r *ProductRepository) GetByID(id int) (*model.Product, error) {
	query := `SELECT id, name, price FROM products WHERE id=$1`
	var p model.Product
	err := r.DB.QueryRow(query, id).Scan(&p.ID, &p.Name, &p.Price)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewNotFound("product", id)
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) ListAll() ([]model.Product, error) {
	rows, err := r.DB.Query(`SELECT id, name, price FROM products ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) Update(id int, p *model.Product) (*model.Product, error) {
	res, err := r.DB.Exec(`UPDATE products SET name=$1, price=$2 WHERE id=$3`, p.Name, p.Price, id)
	if err != nil {
		return nil, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, appErrors.NewNotFound("product", id)
	}
	return r.GetByID(id)
}

func (r *ProductRepository) Delete(id int) error {
	res, err := r.DB.Exec(`DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return appErrors.NewNotFound("product", id)
	}
	return nil
}

var _ ProductRepositoryInterface = (*ProductRepository)(nil)
