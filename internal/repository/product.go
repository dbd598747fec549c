package repository

import (
	"context"
	"velocity-shop/internal/model"
)

type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, productID string) (*model.Product, error)
}

type productRepoImpl struct {
	products []model.Product
}

// NewProductRepository serves the built-in catalog. It is never written to.
func NewProductRepository() ProductRepository {
	return &productRepoImpl{
		products: seedProducts,
	}
}

func (r *productRepoImpl) List(ctx context.Context) ([]model.Product, error) {
	products := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		products = append(products, p.Clone())
	}

	return products, nil
}

func (r *productRepoImpl) FindByID(ctx context.Context, productID string) (*model.Product, error) {
	for _, p := range r.products {
		if p.ID == productID {
			product := p.Clone()
			return &product, nil
		}
	}

	return nil, ErrNotFound
}

func thumbnail(url string) *string {
	return &url
}

var seedProducts = []model.Product{
	{
		ID:          "prod1",
		Name:        "Air Zoom Pegasus",
		Price:       120,
		Category:    model.CategoryMen,
		Image:       "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=800",
		Thumbnail:   thumbnail("https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=200"),
		Description: "Premium running shoes with responsive cushioning",
		Sizes:       []string{"7", "8", "9", "10", "11"},
	},
	{
		ID:          "prod2",
		Name:        "React Infinity",
		Price:       160,
		Category:    model.CategoryWomen,
		Image:       "https://images.unsplash.com/photo-1606107557195-0e29a4b5b4aa?w=800",
		Thumbnail:   thumbnail("https://broken-link-404.com/image.jpg"),
		Description: "Designed for long-distance comfort",
		Sizes:       []string{"6", "7", "8", "9", "10"},
	},
	{
		ID:          "prod3",
		Name:        "Dri-FIT Training Shirt",
		Price:       35,
		Category:    model.CategoryMen,
		Image:       "https://images.unsplash.com/photo-1618354691714-7d92150909db?w=800",
		Thumbnail:   thumbnail("https://images.unsplash.com/photo-1618354691714-7d92150909db?w=200"),
		Description: "Moisture-wicking performance tee",
		Sizes:       []string{"S", "M", "L", "XL"},
	},
	{
		ID:          "prod4",
		Name:        "Pro Compression Tights",
		Price:       65,
		Category:    model.CategoryWomen,
		Image:       "https://images.unsplash.com/photo-1506629082955-511b1aa562c8?w=800",
		Thumbnail:   thumbnail("https://images.unsplash.com/photo-1506629082955-511b1aa562c8?w=200"),
		Description: "High-performance compression fit",
		Sizes:       []string{"XS", "S", "M", "L"},
	},
	{
		ID:          "prod5",
		Name:        "Court Vision Basketball",
		Price:       85,
		Category:    model.CategoryMen,
		Image:       "https://images.unsplash.com/photo-1608231387042-66d1773070a5?w=800",
		Thumbnail:   thumbnail("https://images.unsplash.com/photo-1608231387042-66d1773070a5?w=200"),
		Description: "Classic basketball sneakers",
		Sizes:       []string{"8", "9", "10", "11", "12"},
	},
	{
		ID:          "prod6",
		Name:        "Windrunner Jacket",
		Price:       100,
		Category:    model.CategoryWomen,
		Image:       "https://images.unsplash.com/photo-1551488831-00ddcb6c6bd3?w=800",
		Thumbnail:   thumbnail("https://images.unsplash.com/photo-1551488831-00ddcb6c6bd3?w=200"),
		Description: "Lightweight weather-resistant jacket",
		Sizes:       []string{"XS", "S", "M", "L", "XL"},
	},
}
