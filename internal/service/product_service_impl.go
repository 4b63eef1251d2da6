package service

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"

	"github.com/saubb/artisan/internal/domain"
	"github.com/saubb/artisan/internal/dto"
	"github.com/saubb/artisan/internal/infrastructure/ai"
	"github.com/saubb/artisan/internal/repository"
	"github.com/saubb/artisan/pkg/errs"
	"github.com/saubb/artisan/pkg/utils"
)

const productCopyPrompt = "Generate a compelling product name and a short, one-sentence marketing description for this artisan craft item. Format the response as a JSON object with keys 'name' and 'info'."

type ProductServiceImpl struct {
	productRepo repository.ProductRepository
	imageRepo   repository.ImageRepository
	aiClient    ai.Client
}

func CreateNewProductService(productRepo repository.ProductRepository, imageRepo repository.ImageRepository, aiClient ai.Client) ProductService {
	return &ProductServiceImpl{productRepo: productRepo, imageRepo: imageRepo, aiClient: aiClient}
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context) (data []dto.ProductResponse, err error) {
	products, err := s.productRepo.GetProducts(ctx)
	if err != nil {
		return nil, err
	}

	data = make([]dto.ProductResponse, 0, len(products))
	for _, product := range products {
		data = append(data, dto.ProductResponse{
			ID:    product.ID,
			Name:  product.Name,
			Price: product.Price,
			Info:  product.Info,
			Image: product.Image,
		})
	}

	return data, nil
}

func (s *ProductServiceImpl) UploadProduct(ctx context.Context, req dto.UploadProductRequest) (product dto.ProductResponse, err error) {
	// Reject bad input before spending an AI call on it.
	price, err := strconv.ParseInt(req.Price, 10, 64)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UploadProduct").Str("price", req.Price).Msg("")
		return product, errs.ErrInvalidInput
	}

	if len(req.ImageData) == 0 {
		return product, errs.ErrNoImage
	}

	imagePath, err := s.imageRepo.SaveImage(ctx, req.FileName, req.ImageData)
	if err != nil {
		return product, err
	}

	text, err := s.aiClient.GenerateFromImage(ctx, productCopyPrompt, req.ImageData, req.MimeType)
	if err != nil {
		return product, err
	}

	generated, err := parseGeneratedCopy(text)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UploadProduct").Str("response", text).Msg("")
		return product, errs.ErrAiResponseParse
	}

	created, err := s.productRepo.AddProduct(ctx, domain.Product{
		ID:    ulid.Make().String(),
		Name:  generated.Name,
		Price: price,
		Info:  generated.Info,
		Image: imagePath,
	})
	if err != nil {
		return product, err
	}

	return dto.ProductResponse{
		ID:    created.ID,
		Name:  created.Name,
		Price: created.Price,
		Info:  created.Info,
		Image: created.Image,
	}, nil
}

// parseGeneratedCopy turns a raw completion into the name/info pair. The model
// is told to return bare JSON but routinely wraps it in a code fence anyway.
func parseGeneratedCopy(text string) (generated dto.GeneratedCopy, err error) {
	cleaned := utils.StripCodeFence(text)

	if err = json.Unmarshal([]byte(cleaned), &generated); err != nil {
		return generated, err
	}

	return generated, nil
}
