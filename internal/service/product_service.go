// internal/service/product_service.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/orendahq/cusprod-backend/internal/cache"
	appErrors "github.com/orendahq/cusprod-backend/internal/errors"
	"github.com/orendahq/cusprod-backend/internal/model"
	"github.com/orendahq/cusprod-backend/internal/queue"
	"github.com/orendahq/cusprod-backend/internal/repository"
)

type ProductService struct {
	ProductRepo repository.ProductRepositoryInterface
	OrderRepo   repository.OrderRepositoryInterface
	Cache       cache.Cache
	Queue       queue.Queue
}

func (s *ProductService) validate(p *model.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return appErrors.NewValidation("name", "is required")
	}
	if strings.TrimSpace(p.Price) == "" {
		return appErrors.NewValidation("price", "is required")
	}
	// Price travels as text but must be a positive decimal.
	value, err := strconv.ParseFloat(p.Price, 64)
	if err != nil {
		return appErrors.NewValidation("price", "must be a decimal number")
	}
	if value <= 0 {
		return appErrors.NewValidation("price", "must be greater than zero")
	}
	return nil
}

func (s *ProductService) CreateProduct(ctx context.Context, p *model.Product) (*model.Product, error) {
	if err := s.validate(p); err != nil {
		return nil, err
	}
	if err := s.ProductRepo.Create(p); err != nil {
		return nil, err
	}

	s.afterMutation(ctx, "created", p.ID)
	return p, nil
}

func (s *ProductService) ListProducts(ctx context.Context) ([]model.Product, error) {
	return s.ProductRepo.ListAll()
}

func (s *ProductService) GetProduct(ctx context.Context, id int) (*model.Product, error) {
	return s.ProductRepo.GetByID(id)
}

func (s *ProductService) UpdateProduct(ctx context.Context, id int, p *model.Product) (*model.Product, error) {
	if err := s.validate(p); err != nil {
		return nil, err
	}

	updated, err := s.ProductRepo.Update(id, p)
	if err != nil {
		return nil, err
	}

	s.afterMutation(ctx, "updated", id)
	return updated, nil
}

// DeleteProduct rejects the delete while orders still reference the row.
func (s *ProductService) DeleteProduct(ctx context.Context, id int) error {
	referenced, err := s.OrderRepo.CountByProduct(id)
	if err != nil {
		return err
	}
	if referenced > 0 {
		return appErrors.NewConflict(fmt.Sprintf("product %d is referenced by %d order(s)", id, referenced))
	}

	if err := s.ProductRepo.Delete(id); err != nil {
		return err
	}

	s.afterMutation(ctx, "deleted", id)
	return nil
}

func (s *ProductService) afterMutation(ctx context.Context, action string, id int) {
	if s.Cache != nil {
		if err := s.Cache.Invalidate(ctx, s.Cache.GenerateKey("list", "orders")); err != nil {
			slog.WarnContext(ctx, "failed to invalidate order list cache", "error", err)
		}
	}
	if s.Queue != nil {
		if err := s.Queue.Publish(queue.TopicRecordEvents, queue.NewRecordEvent("product", action, id)); err != nil {
			slog.WarnContext(ctx, "failed to publish record event", "entity", "product", "action", action, "error", err)
		}
	}
}
