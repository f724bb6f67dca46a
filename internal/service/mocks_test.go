package service_test

import (
	"context"
	"fmt"
	"time"

	appErrors "github.com/orendahq/cusprod-backend/internal/errors"
	"github.com/orendahq/cusprod-backend/internal/model"
)

// --- Mock repositories backed by in-memory maps ---

type mockCustomerRepo struct {
	customers map[int]*model.Customer
	nextID    int
}

func newMockCustomerRepo() *mockCustomerRepo {
	return &mockCustomerRepo{customers: map[int]*model.Customer{}, nextID: 1}
}

func (m *mockCustomerRepo) Create(c *model.Customer) error {
	c.ID = m.nextID
	m.nextID++
	stored := *c
	m.customers[c.ID] = &stored
	return nil
}

func (m *mockCustomerRepo) GetByID(id int) (*model.Customer, error) {
	c, ok := m.customers[id]
	if !ok {
		return nil, appErrors.NewNotFound("customer", id)
	}
	copied := *c
	return &copied, nil
}

func (m *mockCustomerRepo) ListAll() ([]model.Customer, error) {
	out := []model.Customer{}
	for i := 1; i < m.nextID; i++ {
		if c, ok := m.customers[i]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *mockCustomerRepo) Update(id int, c *model.Customer) (*model.Customer, error) {
	if _, ok := m.customers[id]; !ok {
		return nil, appErrors.NewNotFound("customer", id)
	}
	updated := *c
	updated.ID = id
	m.customers[id] = &updated
	return m.GetByID(id)
}

func (m *mockCustomerRepo) Delete(id int) error {
	if _, ok := m.customers[id]; !ok {
		return appErrors.NewNotFound("customer", id)
	}
	delete(m.customers, id)
	return nil
}

func (m *mockCustomerRepo) EmailExists(email string) (bool, error) {
	for _, c := range m.customers {
		if c.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type mockProductRepo struct {
	products map[int]*model.Product
	nextID   int
}

func newMockProductRepo() *mockProductRepo {
	return &mockProductRepo{products: map[int]*model.Product{}, nextID: 1}
}

func (m *mockProductRepo) Create(p *model.Product) error {
	p.ID = m.nextID
	m.nextID++
	stored := *p
	m.products[p.ID] = &stored
	return nil
}

func (m *mockProductRepo) GetByID(id int) (*model.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, appErrors.NewNotFound("product", id)
	}
	copied := *p
	return &copied, nil
}

func (m *mockProductRepo) ListAll() ([]model.Product, error) {
	out := []model.Product{}
	for i := 1; i < m.nextID; i++ {
		if p, ok := m.products[i]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *mockProductRepo) Update(id int, p *model.Product) (*model.Product, error) {
	if _, ok := m.products[id]; !ok {
		return nil, appErrors.NewNotFound("product", id)
	}
	updated := *p
	updated.ID = id
	m.products[id] = &updated
	return m.GetByID(id)
}

func (m *mockProductRepo) Delete(id int) error {
	if _, ok := m.products[id]; !ok {
		return appErrors.NewNotFound("product", id)
	}
	delete(m.products, id)
	return nil
}

type mockOrderRepo struct {
	orders    map[int]*model.Order
	nextID    int
	listCalls int

	customers *mockCustomerRepo
	products  *mockProductRepo
}

func newMockOrderRepo(customers *mockCustomerRepo, products *mockProductRepo) *mockOrderRepo {
	return &mockOrderRepo{
		orders:    map[int]*model.Order{},
		nextID:    1,
		customers: customers,
		products:  products,
	}
}

func (m *mockOrderRepo) Create(o *model.Order) error {
	o.ID = m.nextID
	m.nextID++
	stored := *o
	m.orders[o.ID] = &stored
	return nil
}

func (m *mockOrderRepo) GetByID(id int) (*model.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, appErrors.NewNotFound("order", id)
	}
	copied := *o
	return &copied, nil
}

// ListWithRelations composes projections the way the JOIN does.
func (m *mockOrderRepo) ListWithRelations() ([]model.Order, error) {
	m.listCalls++
	out := []model.Order{}
	for i := 1; i < m.nextID; i++ {
		o, ok := m.orders[i]
		if !ok {
			continue
		}
		composed := *o
		if m.customers != nil {
			if c, err := m.customers.GetByID(o.CustomerID); err == nil {
				composed.Customer = &model.CustomerSummary{
					Name: c.Name, Phone: c.Phone, Email: c.Email, Address: c.Address,
				}
			}
		}
		if m.products != nil {
			if p, err := m.products.GetByID(o.ProductID); err == nil {
				composed.Product = &model.ProductSummary{Name: p.Name, Price: p.Price}
			}
		}
		out = append(out, composed)
	}
	return out, nil
}

func (m *mockOrderRepo) Update(id int, patch *model.OrderPatch) (*model.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, appErrors.NewNotFound("order", id)
	}
	if patch.CustomerID != nil {
		o.CustomerID = *patch.CustomerID
	}
	if patch.ProductID != nil {
		o.ProductID = *patch.ProductID
	}
	if patch.Quantity != nil {
		o.Quantity = *patch.Quantity
	}
	return m.GetByID(id)
}

func (m *mockOrderRepo) Delete(id int) error {
	if _, ok := m.orders[id]; !ok {
		return appErrors.NewNotFound("order", id)
	}
	delete(m.orders, id)
	return nil
}

func (m *mockOrderRepo) CountByCustomer(customerID int) (int, error) {
	count := 0
	for _, o := range m.orders {
		if o.CustomerID == customerID {
			count++
		}
	}
	return count, nil
}

func (m *mockOrderRepo) CountByProduct(productID int) (int, error) {
	count := 0
	for _, o := range m.orders {
		if o.ProductID == productID {
			count++
		}
	}
	return count, nil
}

// mockCache is a map-backed cache recording invalidations.
type mockCache struct {
	entries     map[string]string
	invalidated int
}

func newMockCache() *mockCache {
	return &mockCache{entries: map[string]string{}}
}

func (m *mockCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	m.entries[key] = fmt.Sprintf("%v", value)
	return nil
}

func (m *mockCache) Get(ctx context.Context, key string) (string, error) {
	return m.entries[key], nil
}

func (m *mockCache) Invalidate(ctx context.Context, key string) error {
	m.invalidated++
	delete(m.entries, key)
	return nil
}

func (m *mockCache) GenerateKey(operation, key string) string {
	return fmt.Sprintf("test:%s:%s", operation, key)
}
