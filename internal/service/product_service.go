package service

import (
	"context"
	"errors"
	"strings"

	"driveincinema/internal/entity"
	"driveincinema/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// maxPrice is the smallest value that no longer fits a numeric(10,2) column.
var maxPrice = decimal.New(1, 8)

func validPrice(price decimal.Decimal) bool {
	return !price.IsNegative() && price.LessThan(maxPrice)
}

type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Category    string
	Image       string
	Available   *bool
}

// ProductPatch carries only the fields a client sent; nil means unchanged.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Category    *string
	Image       *string
	Available   *bool
}

type ProductService struct {
	products     repository.ProductRepository
	securityLogs repository.SecurityLogRepository
}

func NewProductService(products repository.ProductRepository, securityLogs repository.SecurityLogRepository) *ProductService {
	return &ProductService{products: products, securityLogs: securityLogs}
}

func (s *ProductService) List(ctx context.Context) ([]entity.Product, error) {
	return s.products.List(ctx)
}

func (s *ProductService) Create(ctx context.Context, actor Actor, input ProductInput) (*entity.Product, error) {
	name := strings.TrimSpace(input.Name)
	category := strings.TrimSpace(input.Category)
	if name == "" || category == "" || !validPrice(input.Price) {
		return nil, ErrInvalidInput
	}
	available := true
	if input.Available != nil {
		available = *input.Available
	}
	product := &entity.Product{
		Name:        name,
		Description: input.Description,
		Price:       input.Price,
		Category:    category,
		Image:       input.Image,
		Available:   available,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, productError(err)
	}
	_ = s.audit(ctx, actor, "create", product.ID)
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, actor Actor, id uuid.UUID, patch ProductPatch) (*entity.Product, error) {
	fields := map[string]any{}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, ErrInvalidInput
		}
		fields["name"] = name
	}
	if patch.Category != nil {
		category := strings.TrimSpace(*patch.Category)
		if category == "" {
			return nil, ErrInvalidInput
		}
		fields["category"] = category
	}
	if patch.Price != nil {
		if !validPrice(*patch.Price) {
			return nil, ErrInvalidInput
		}
		fields["price"] = *patch.Price
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.Image != nil {
		fields["image"] = *patch.Image
	}
	if patch.Available != nil {
		fields["available"] = *patch.Available
	}

	if len(fields) == 0 {
		product, err := s.products.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, ErrNotFound
		}
		return product, nil
	}

	product, err := s.products.Update(ctx, id, fields)
	if err != nil {
		return nil, productError(err)
	}
	_ = s.audit(ctx, actor, "update", id)
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Product, error) {
	product, err := s.products.Delete(ctx, id)
	if err != nil {
		return nil, productError(err)
	}
	_ = s.audit(ctx, actor, "delete", id)
	return product, nil
}

func (s *ProductService) audit(ctx context.Context, actor Actor, op string, productID uuid.UUID) error {
	return writeSecurityLog(ctx, s.securityLogs, &actor.UserID, actor.IPAddress, entity.ProductChanged, map[string]any{
		"op":         op,
		"product_id": productID.String(),
	})
}

func productError(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repository.ErrDuplicate):
		return ErrConflict
	}
	return err
}
