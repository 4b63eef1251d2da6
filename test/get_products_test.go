package test

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/saubb/artisan/internal/dto"
)

func (s *IntegrationTestSuite) Test_GetProducts_EmptyCatalog() {
	resp, err := http.Get(fmt.Sprintf("http://localhost:%s/get-products", s.app.Config.ServicePort))
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)

	var products []dto.ProductResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&products))
	s.Empty(products)
}
