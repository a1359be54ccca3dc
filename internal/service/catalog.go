package service

import (
	"context"
	"fmt"

	"github.com/artemkv/storefront/internal/models"
	"github.com/artemkv/storefront/internal/repo"
)

type CatalogService struct {
	Repo *repo.GormRepo
}

func (s *CatalogService) ListProducts(ctx context.Context, f repo.ProductFilter) ([]models.Product, error) {
	products, err := s.Repo.FilterProducts(ctx, f)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, p *models.Product) error {
	if p.Name == "" || p.Price == 0 || p.Category == "" {
		return fmt.Errorf("name, price and category are required: %w", ErrValidation)
	}
	return s.Repo.CreateProduct(ctx, p)
}
