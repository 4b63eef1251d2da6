package service

import (
	"context"
	"fmt"

	"github.com/saubb/artisan/internal/dto"
	"github.com/saubb/artisan/internal/infrastructure/ai"
	"github.com/saubb/artisan/internal/repository"
)

type AnalysisServiceImpl struct {
	referenceRepo repository.ReferenceDataRepository
	aiClient      ai.Client
}

func CreateNewAnalysisService(referenceRepo repository.ReferenceDataRepository, aiClient ai.Client) AnalysisService {
	return &AnalysisServiceImpl{referenceRepo: referenceRepo, aiClient: aiClient}
}

// AnalyzeProduct assembles grounding data plus instructions and returns
// whatever Markdown the model produces. All arithmetic (profit, margin,
// city ranking) is delegated to the model; nothing is computed or verified
// locally.
func (s *AnalysisServiceImpl) AnalyzeProduct(ctx context.Context, req dto.AnalysisRequest) (analysis string, err error) {
	prompt := s.buildAnalysisPrompt(req)

	return s.aiClient.Generate(ctx, prompt)
}

func (s *AnalysisServiceImpl) buildAnalysisPrompt(req dto.AnalysisRequest) string {
	return fmt.Sprintf(`You are an expert business consultant for Indian artisans. Analyze the following product using the provided market reference data.

REFERENCE DATA - REGIONAL PRICING (price and demand by city, INR):
%s

REFERENCE DATA - RAW MATERIAL SOURCES:
%s

PRODUCT DETAILS:
- Product Name: %s
- Category: %s
- Raw Material Cost: %v INR
- Selling Price: %v INR

Respond in Markdown with exactly these three sections:

## Business Analysis
Calculate the profit per unit and the profit margin percentage. State clearly whether the margin needs improvement, and suggest an optimized selling price with a short rationale.

## Market Expansion
From the regional pricing data, pick the top two alternate cities by profit potential for this category and quote their price and demand figures.

## Marketing Strategy
Write a ready-to-post promotional message, a short social media caption with 3-4 hashtags, and a recommended posting time.`,
		s.referenceRepo.RegionalPricing(),
		s.referenceRepo.RawMaterialSources(),
		req.ProductName,
		req.ProductCategory,
		req.RawMaterialCost,
		req.SellingPrice,
	)
}
