// internal/service/order_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/orendahq/cusprod-backend/internal/cache"
	appErrors "github.com/orendahq/cusprod-backend/internal/errors"
	"github.com/orendahq/cusprod-backend/internal/model"
	"github.com/orendahq/cusprod-backend/internal/queue"
	"github.com/orendahq/cusprod-backend/internal/repository"
)

const listCacheTTL = 30 * time.Second

type OrderService struct {
	OrderRepo    repository.OrderRepositoryInterface
	CustomerRepo repository.CustomerRepositoryInterface
	ProductRepo  repository.ProductRepositoryInterface
	Cache        cache.Cache
	Queue        queue.Queue
}

// resolveReferences fails with a validation error naming whichever reference
// does not exist. Any other repository failure passes through untouched.
func (s *OrderService) resolveReferences(customerID, productID *int) error {
	if customerID != nil {
		if _, err := s.CustomerRepo.GetByID(*customerID); err != nil {
			if appErrors.IsNotFound(err) {
				return appErrors.NewValidation("customerId", fmt.Sprintf("customer %d does not exist", *customerID))
			}
			return err
		}
	}
	if productID != nil {
		if _, err := s.ProductRepo.GetByID(*productID); err != nil {
			if appErrors.IsNotFound(err) {
				return appErrors.NewValidation("productId", fmt.Sprintf("product %d does not exist", *productID))
			}
			return err
		}
	}
	return nil
}

func (s *OrderService) CreateOrder(ctx context.Context, customerID, productID, quantity int) (*model.Order, error) {
	if customerID <= 0 {
		return nil, appErrors.NewValidation("customerId", "is required")
	}
	if productID <= 0 {
		return nil, appErrors.NewValidation("productId", "is required")
	}
	if quantity <= 0 {
		return nil, appErrors.NewValidation("quantity", "must be a positive integer")
	}
	if err := s.resolveReferences(&customerID, &productID); err != nil {
		return nil, err
	}

	o := &model.Order{
		CustomerID: customerID,
		ProductID:  productID,
		Quantity:   quantity,
	}
	if err := s.OrderRepo.Create(o); err != nil {
		return nil, err
	}

	s.afterMutation(ctx, "created", o.ID)
	return o, nil
}

// ListOrders returns every order with its customer and product projections,
// read through the cache when one is configured.
func (s *OrderService) ListOrders(ctx context.Context) ([]model.Order, error) {
	key := ""
	if s.Cache != nil {
		key = s.Cache.GenerateKey("list", "orders")
		cached, err := s.Cache.Get(ctx, key)
		if err != nil {
			slog.WarnContext(ctx, "order list cache read failed", "error", err)
		} else if cached != "" {
			var orders []model.Order
			if err := json.Unmarshal([]byte(cached), &orders); err == nil {
				return orders, nil
			}
		}
	}

	orders, err := s.OrderRepo.ListWithRelations()
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if body, err := json.Marshal(orders); err == nil {
			if err := s.Cache.Set(ctx, key, string(body), listCacheTTL); err != nil {
				slog.WarnContext(ctx, "order list cache write failed", "error", err)
			}
		}
	}
	return orders, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id int) (*model.Order, error) {
	return s.OrderRepo.GetByID(id)
}

// UpdateOrder applies only the supplied fields.
func (s *OrderService) UpdateOrder(ctx context.Context, id int, patch *model.OrderPatch) (*model.Order, error) {
	if patch.Quantity != nil && *patch.Quantity <= 0 {
		return nil, appErrors.NewValidation("quantity", "must be a positive integer")
	}
	if err := s.resolveReferences(patch.CustomerID, patch.ProductID); err != nil {
		return nil, err
	}

	updated, err := s.OrderRepo.Update(id, patch)
	if err != nil {
		return nil, err
	}

	s.afterMutation(ctx, "updated", id)
	return updated, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, id int) error {
	if err := s.OrderRepo.Delete(id); err != nil {
		return err
	}

	s.afterMutation(ctx, "deleted", id)
	return nil
}

func (s *OrderService) afterMutation(ctx context.Context, action string, id int) {
	if s.Cache != nil {
		if err := s.Cache.Invalidate(ctx, s.Cache.GenerateKey("list", "orders")); err != nil {
			slog.WarnContext(ctx, "failed to invalidate order list cache", "error", err)
		}
	}
	if s.Queue != nil {
		if err := s.Queue.Publish(queue.TopicRecordEvents, queue.NewRecordEvent("order", action, id)); err != nil {
			slog.WarnContext(ctx, "failed to publish record event", "entity", "order", "action", action, "error", err)
		}
	}
}
