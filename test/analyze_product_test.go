package test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saubb/artisan/internal/dto"
)

func (s *IntegrationTestSuite) analyzeProduct(payload dto.AnalysisRequest) *http.Response {
	reqBody, err := json.Marshal(payload)
	s.Require().NoError(err)

	req, err := http.NewRequest(http.MethodPost,
		fmt.Sprintf("http://localhost:%s/analyze-product", s.app.Config.ServicePort),
		bytes.NewBuffer(reqBody),
	)
	s.Require().NoError(err)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	client := http.Client{}
	resp, err := client.Do(req)
	s.Require().NoError(err)

	return resp
}

func (s *IntegrationTestSuite) Test_AnalyzeProduct() {
	resp := s.analyzeProduct(dto.AnalysisRequest{
		ProductName:     "Teak Bowl",
		ProductCategory: "woodwork",
		RawMaterialCost: "300",
		SellingPrice:    "2500",
	})
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)

	var analysisResp struct {
		Analysis string `json:"analysis"`
	}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&analysisResp))
	s.Contains(analysisResp.Analysis, "## Business Analysis")

	// The prompt handed to the model embeds both reference datasets verbatim.
	s.Require().NotEmpty(s.ai.analysisPrompts)
	prompt := s.ai.analysisPrompts[len(s.ai.analysisPrompts)-1]
	s.Contains(prompt, "REGIONAL PRICING")
	s.Contains(prompt, `"city": "Jaipur"`)
	s.Contains(prompt, `"material": "teak wood"`)
}

func (s *IntegrationTestSuite) Test_AnalyzeProduct_FormStringBody() {
	// The shape the browser form actually submits: every value a string.
	body := `{"productName":"Teak Bowl","productCategory":"woodwork","rawMaterialCost":"300","sellingPrice":"2500"}`

	req, err := http.NewRequest(http.MethodPost,
		fmt.Sprintf("http://localhost:%s/analyze-product", s.app.Config.ServicePort),
		bytes.NewBufferString(body),
	)
	s.Require().NoError(err)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	client := http.Client{}
	resp, err := client.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)

	s.Require().NotEmpty(s.ai.analysisPrompts)
	prompt := s.ai.analysisPrompts[len(s.ai.analysisPrompts)-1]
	s.Contains(prompt, "Raw Material Cost: 300 INR")
	s.Contains(prompt, "Selling Price: 2500 INR")
}

func (s *IntegrationTestSuite) Test_AnalyzeProduct_BareNumberBody() {
	body := `{"productName":"Teak Bowl","productCategory":"woodwork","rawMaterialCost":300,"sellingPrice":2500}`

	req, err := http.NewRequest(http.MethodPost,
		fmt.Sprintf("http://localhost:%s/analyze-product", s.app.Config.ServicePort),
		bytes.NewBufferString(body),
	)
	s.Require().NoError(err)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	client := http.Client{}
	resp, err := client.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *IntegrationTestSuite) Test_AnalyzeProduct_ZeroSellingPrice() {
	resp := s.analyzeProduct(dto.AnalysisRequest{
		ProductName:     "Teak Bowl",
		ProductCategory: "woodwork",
		RawMaterialCost: "300",
		SellingPrice:    "0",
	})
	defer resp.Body.Close()

	// No bounds checking on the analysis branch: the request goes through and
	// the zero reaches the model untouched.
	s.Equal(http.StatusOK, resp.StatusCode)

	s.Require().NotEmpty(s.ai.analysisPrompts)
	prompt := s.ai.analysisPrompts[len(s.ai.analysisPrompts)-1]
	s.Contains(prompt, "Selling Price: 0 INR")
}
