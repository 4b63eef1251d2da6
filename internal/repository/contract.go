package repository

import (
	"context"

	"github.com/saubb/artisan/internal/domain"
)

type ProductRepository interface {
	GetProducts(ctx context.Context) (data []domain.Product, err error)
	AddProduct(ctx context.Context, data domain.Product) (product domain.Product, err error)
}

type ImageRepository interface {
	SaveImage(ctx context.Context, fileName string, content []byte) (publicPath string, err error)
}

type ReferenceDataRepository interface {
	RegionalPricing() string
	RawMaterialSources() string
}
