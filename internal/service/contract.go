package service

import (
	"context"

	"github.com/saubb/artisan/internal/dto"
)

type ProductService interface {
	GetProducts(ctx context.Context) (data []dto.ProductResponse, err error)
	UploadProduct(ctx context.Context, req dto.UploadProductRequest) (product dto.ProductResponse, err error)
}

type AnalysisService interface {
	AnalyzeProduct(ctx context.Context, req dto.AnalysisRequest) (analysis string, err error)
}
