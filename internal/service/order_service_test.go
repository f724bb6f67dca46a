package service_test

import (
	"context"
	"strings"
	"testing"

	appErrors "github.com/orendahq/cusprod-backend/internal/errors"
	"github.com/orendahq/cusprod-backend/internal/model"
	"github.com/orendahq/cusprod-backend/internal/service"
)

func newOrderFixture() (*service.OrderService, *mockOrderRepo, *mockCustomerRepo, *mockProductRepo) {
	customers := newMockCustomerRepo()
	products := newMockProductRepo()
	orders := newMockOrderRepo(customers, products)

	customers.Create(&model.Customer{
		Name: "Sinta Dewi", Phone: "0812", Email: "sinta@example.com", Address: "Jakarta",
	})
	products.Create(&model.Product{Name: "Arabica Beans", Price: "150000"})

	svc := &service.OrderService{
		OrderRepo:    orders,
		CustomerRepo: customers,
		ProductRepo:  products,
	}
	return svc, orders, customers, products
}

func TestCreateOrder(t *testing.T) {
	svc, orders, _, _ := newOrderFixture()

	created, err := svc.CreateOrder(context.Background(), 1, 1, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected a generated id")
	}

	stored, err := orders.GetByID(created.ID)
	if err != nil {
		t.Fatalf("created order not persisted: %v", err)
	}
	if stored.CustomerID != 1 || stored.ProductID != 1 || stored.Quantity != 2 {
		t.Errorf("stored order %+v does not match input", stored)
	}
}

func TestCreateOrderValidation(t *testing.T) {
	svc, orders, _, _ := newOrderFixture()

	cases := []struct {
		name                            string
		customerID, productID, quantity int
	}{
		{"missing customerId", 0, 1, 2},
		{"missing productId", 1, 0, 2},
		{"zero quantity", 1, 1, 0},
		{"negative quantity", 1, 1, -3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateOrder(context.Background(), tc.customerID, tc.productID, tc.quantity)
			if !appErrors.IsValidation(err) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}

	if len(orders.orders) != 0 {
		t.Errorf("rejected orders must not be persisted, found %d", len(orders.orders))
	}
}

func TestCreateOrderRejectsMissingReferences(t *testing.T) {
	svc, _, _, _ := newOrderFixture()

	_, err := svc.CreateOrder(context.Background(), 99, 1, 2)
	if !appErrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(err.Error(), "customer 99") {
		t.Errorf("error should name the missing reference, got %q", err.Error())
	}

	_, err = svc.CreateOrder(context.Background(), 1, 42, 2)
	if !appErrors.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(err.Error(), "product 42") {
		t.Errorf("error should name the missing reference, got %q", err.Error())
	}
}

func TestListOrdersComposesProjections(t *testing.T) {
	svc, _, _, _ := newOrderFixture()

	if _, err := svc.CreateOrder(context.Background(), 1, 1, 2); err != nil {
		t.Fatal(err)
	}

	listed, err := svc.ListOrders(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 order, got %d", len(listed))
	}

	o := listed[0]
	if o.Customer == nil || o.Customer.Name != "Sinta Dewi" || o.Customer.Email != "sinta@example.com" {
		t.Errorf("customer projection does not match customerId: %+v", o.Customer)
	}
	if o.Product == nil || o.Product.Name != "Arabica Beans" || o.Product.Price != "150000" {
		t.Errorf("product projection does not match productId: %+v", o.Product)
	}
}

func TestListOrdersReadsThroughCache(t *testing.T) {
	svc, orders, _, _ := newOrderFixture()
	cache := newMockCache()
	svc.Cache = cache

	if _, err := svc.CreateOrder(context.Background(), 1, 1, 2); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.ListOrders(context.Background()); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.ListOrders(context.Background()); err != nil {
		t.Fatal(err)
	}
	if orders.listCalls != 1 {
		t.Errorf("second list should be served from cache, repo hit %d times", orders.listCalls)
	}

	// A mutation invalidates, so the next list goes back to the repository.
	if err := svc.DeleteOrder(context.Background(), 1); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.ListOrders(context.Background()); err != nil {
		t.Fatal(err)
	}
	if orders.listCalls != 2 {
		t.Errorf("list after mutation should refetch, repo hit %d times", orders.listCalls)
	}
}

func TestUpdateOrderPartial(t *testing.T) {
	svc, _, _, _ := newOrderFixture()

	created, err := svc.CreateOrder(context.Background(), 1, 1, 2)
	if err != nil {
		t.Fatal(err)
	}

	quantity := 9
	updated, err := svc.UpdateOrder(context.Background(), created.ID, &model.OrderPatch{Quantity: &quantity})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Quantity != 9 {
		t.Errorf("expected quantity 9, got %d", updated.Quantity)
	}
	if updated.CustomerID != 1 || updated.ProductID != 1 {
		t.Errorf("untouched fields changed: %+v", updated)
	}
}

func TestUpdateOrderValidation(t *testing.T) {
	svc, _, _, _ := newOrderFixture()

	created, _ := svc.CreateOrder(context.Background(), 1, 1, 2)

	bad := -1
	if _, err := svc.UpdateOrder(context.Background(), created.ID, &model.OrderPatch{Quantity: &bad}); !appErrors.IsValidation(err) {
		t.Errorf("expected validation error for non-positive quantity, got %v", err)
	}

	missing := 77
	if _, err := svc.UpdateOrder(context.Background(), created.ID, &model.OrderPatch{ProductID: &missing}); !appErrors.IsValidation(err) {
		t.Errorf("expected validation error for missing product reference, got %v", err)
	}
}

func TestUpdateOrderNotFound(t *testing.T) {
	svc, _, _, _ := newOrderFixture()

	quantity := 3
	_, err := svc.UpdateOrder(context.Background(), 123, &model.OrderPatch{Quantity: &quantity})
	if !appErrors.IsNotFound(err) {
		t.Errorf("expected not-found, got %v", err)
	}
}

func TestDeleteOrderIdempotentNotFound(t *testing.T) {
	svc, _, _, _ := newOrderFixture()

	created, _ := svc.CreateOrder(context.Background(), 1, 1, 2)

	if err := svc.DeleteOrder(context.Background(), created.ID); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}

	// A second and third delete observe not-found, nothing else.
	for i := 0; i < 2; i++ {
		err := svc.DeleteOrder(context.Background(), created.ID)
		if !appErrors.IsNotFound(err) {
			t.Errorf("repeat delete %d: expected not-found, got %v", i+1, err)
		}
	}
}

func TestGetOrderNotFound(t *testing.T) {
	svc, _, _, _ := newOrderFixture()

	_, err := svc.GetOrder(context.Background(), 55)
	if !appErrors.IsNotFound(err) {
		t.Errorf("expected not-found, got %v", err)
	}
}
