package service_test

import (
	"context"
	"testing"

	appErrors "github.com/orendahq/cusprod-backend/internal/errors"
	"github.com/orendahq/cusprod-backend/internal/model"
	"github.com/orendahq/cusprod-backend/internal/service"
)

func newCustomerFixture() (*service.CustomerService, *mockCustomerRepo, *mockOrderRepo) {
	customers := newMockCustomerRepo()
	products := newMockProductRepo()
	orders := newMockOrderRepo(customers, products)

	svc := &service.CustomerService{
		CustomerRepo: customers,
		OrderRepo:    orders,
	}
	return svc, customers, orders
}

func validCustomer() *model.Customer {
	return &model.Customer{
		Name:    "Ayu Lestari",
		Phone:   "081355512345",
		Email:   "ayu.lestari@example.com",
		Address: "Jl. Diponegoro 8, Surabaya",
	}
}

func TestCreateCustomerRoundTrip(t *testing.T) {
	svc, _, _ := newCustomerFixture()

	in := validCustomer()
	created, err := svc.CreateCustomer(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fetched, err := svc.GetCustomer(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if *fetched != *created {
		t.Errorf("round trip mismatch: created %+v, fetched %+v", created, fetched)
	}
}

func TestCreateCustomerValidation(t *testing.T) {
	svc, customers, _ := newCustomerFixture()

	cases := []struct {
		name   string
		mutate func(*model.Customer)
	}{
		{"missing name", func(c *model.Customer) { c.Name = "" }},
		{"missing phone", func(c *model.Customer) { c.Phone = "  " }},
		{"missing email", func(c *model.Customer) { c.Email = "" }},
		{"malformed email", func(c *model.Customer) { c.Email = "not-an-email" }},
		{"email without domain", func(c *model.Customer) { c.Email = "ayu@" }},
		{"missing address", func(c *model.Customer) { c.Address = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validCustomer()
			tc.mutate(in)
			_, err := svc.CreateCustomer(context.Background(), in)
			if !appErrors.IsValidation(err) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}

	if len(customers.customers) != 0 {
		t.Errorf("rejected customers must not be persisted, found %d", len(customers.customers))
	}
}

func TestCreateCustomerDuplicateEmail(t *testing.T) {
	svc, customers, _ := newCustomerFixture()

	if _, err := svc.CreateCustomer(context.Background(), validCustomer()); err != nil {
		t.Fatal(err)
	}

	duplicate := validCustomer()
	duplicate.Name = "Someone Else"
	_, err := svc.CreateCustomer(context.Background(), duplicate)
	if !appErrors.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
	if len(customers.customers) != 1 {
		t.Errorf("conflicting create must not add a row, found %d", len(customers.customers))
	}
}

func TestDeleteCustomerRejectedWhileReferenced(t *testing.T) {
	svc, customers, orders := newCustomerFixture()

	created, err := svc.CreateCustomer(context.Background(), validCustomer())
	if err != nil {
		t.Fatal(err)
	}
	orders.Create(&model.Order{CustomerID: created.ID, ProductID: 1, Quantity: 2})

	err = svc.DeleteCustomer(context.Background(), created.ID)
	if !appErrors.IsConflict(err) {
		t.Fatalf("expected conflict while referenced, got %v", err)
	}
	if _, ok := customers.customers[created.ID]; !ok {
		t.Error("customer must survive a rejected delete")
	}

	// Once the referencing order is gone the delete succeeds.
	if err := orders.Delete(1); err != nil {
		t.Fatal(err)
	}
	if err := svc.DeleteCustomer(context.Background(), created.ID); err != nil {
		t.Fatalf("unexpected error after dereferencing: %v", err)
	}
}

func TestCustomerNotFound(t *testing.T) {
	svc, _, _ := newCustomerFixture()

	if _, err := svc.GetCustomer(context.Background(), 9); !appErrors.IsNotFound(err) {
		t.Errorf("get: expected not-found, got %v", err)
	}
	if _, err := svc.UpdateCustomer(context.Background(), 9, validCustomer()); !appErrors.IsNotFound(err) {
		t.Errorf("update: expected not-found, got %v", err)
	}
	if err := svc.DeleteCustomer(context.Background(), 9); !appErrors.IsNotFound(err) {
		t.Errorf("delete: expected not-found, got %v", err)
	}
}
