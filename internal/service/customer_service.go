// internal/service/customer_service.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/orendahq/cusprod-backend/internal/cache"
	appErrors "github.com/orendahq/cusprod-backend/internal/errors"
	"github.com/orendahq/cusprod-backend/internal/model"
	"github.com/orendahq/cusprod-backend/internal/queue"
	"github.com/orendahq/cusprod-backend/internal/repository"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type CustomerService struct {
	CustomerRepo repository.CustomerRepositoryInterface
	OrderRepo    repository.OrderRepositoryInterface
	Cache        cache.Cache
	Queue        queue.Queue
}

func (s *CustomerService) validate(c *model.Customer) error {
	if strings.TrimSpace(c.Name) == "" {
		return appErrors.NewValidation("name", "is required")
	}
	if strings.TrimSpace(c.Phone) == "" {
		return appErrors.NewValidation("phone", "is required")
	}
	if strings.TrimSpace(c.Email) == "" {
		return appErrors.NewValidation("email", "is required")
	}
	if !emailPattern.MatchString(c.Email) {
		return appErrors.NewValidation("email", "must be a valid email address")
	}
	if strings.TrimSpace(c.Address) == "" {
		return appErrors.NewValidation("address", "is required")
	}
	return nil
}

func (s *CustomerService) CreateCustomer(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	if err := s.validate(c); err != nil {
		return nil, err
	}

	taken, err := s.CustomerRepo.EmailExists(c.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, appErrors.NewConflict(fmt.Sprintf("email %s is already in use", c.Email))
	}

	if err := s.CustomerRepo.Create(c); err != nil {
		return nil, err
	}

	s.afterMutation(ctx, "created", c.ID)
	return c, nil
}

func (s *CustomerService) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	return s.CustomerRepo.ListAll()
}

func (s *CustomerService) GetCustomer(ctx context.Context, id int) (*model.Customer, error) {
	return s.CustomerRepo.GetByID(id)
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, id int, c *model.Customer) (*model.Customer, error) {
	if err := s.validate(c); err != nil {
		return nil, err
	}

	updated, err := s.CustomerRepo.Update(id, c)
	if err != nil {
		return nil, err
	}

	s.afterMutation(ctx, "updated", id)
	return updated, nil
}

// DeleteCustomer rejects the delete while orders still reference the row.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id int) error {
	referenced, err := s.OrderRepo.CountByCustomer(id)
	if err != nil {
		return err
	}
	if referenced > 0 {
		return appErrors.NewConflict(fmt.Sprintf("customer %d is referenced by %d order(s)", id, referenced))
	}

	if err := s.CustomerRepo.Delete(id); err != nil {
		return err
	}

	s.afterMutation(ctx, "deleted", id)
	return nil
}

func (s *CustomerService) afterMutation(ctx context.Context, action string, id int) {
	if s.Cache != nil {
		if err := s.Cache.Invalidate(ctx, s.Cache.GenerateKey("list", "orders")); err != nil {
			slog.WarnContext(ctx, "failed to invalidate order list cache", "error", err)
		}
	}
	if s.Queue != nil {
		if err := s.Queue.Publish(queue.TopicRecordEvents, queue.NewRecordEvent("customer", action, id)); err != nil {
			slog.WarnContext(ctx, "failed to publish record event", "entity", "customer", "action", action, "error", err)
		}
	}
}
