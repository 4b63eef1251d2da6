package controller

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/saubb/artisan/internal/dto"
	"github.com/saubb/artisan/internal/service"
	"github.com/saubb/artisan/pkg/errs"
	"github.com/saubb/artisan/pkg/response"
)

type Controller struct {
	productService  service.ProductService
	analysisService service.AnalysisService
}

func CreateNewController(e *echo.Echo, productService service.ProductService, analysisService service.AnalysisService) {
	c := Controller{
		productService:  productService,
		analysisService: analysisService,
	}
	e.GET("/get-products", c.GetProducts)
	e.POST("/upload-product", c.UploadProduct)
	e.POST("/analyze-product", c.AnalyzeProduct)
}

func (c *Controller) GetProducts(e echo.Context) error {
	products, err := c.productService.GetProducts(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteJSONResponse(e, http.StatusOK, products)
}

func (c *Controller) UploadProduct(e echo.Context) error {
	fileHeader, err := e.FormFile("productImage")
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "UploadProduct").Msg("")
		return response.WriteErrorResponse(e, errs.ErrNoImage)
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "UploadProduct").Msg("")
		return response.WriteErrorResponse(e, errs.ErrInternalServer)
	}
	defer file.Close()

	imageData, err := io.ReadAll(file)
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "UploadProduct").Msg("")
		return response.WriteErrorResponse(e, errs.ErrInternalServer)
	}

	payload := dto.UploadProductRequest{
		Price:     e.FormValue("price"),
		FileName:  fileHeader.Filename,
		MimeType:  fileHeader.Header.Get("Content-Type"),
		ImageData: imageData,
	}

	product, err := c.productService.UploadProduct(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteJSONResponse(e, http.StatusCreated, product)
}

func (c *Controller) AnalyzeProduct(e echo.Context) error {
	payload := dto.AnalysisRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "AnalyzeProduct").Msg("")
		return response.WriteErrorResponse(e, errs.ErrInvalidInput)
	}

	analysis, err := c.analysisService.AnalyzeProduct(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteJSONResponse(e, http.StatusOK, response.AnalysisResponse{Analysis: analysis})
}
