package test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"strings"

	"github.com/saubb/artisan/internal/domain"
	"github.com/saubb/artisan/internal/dto"
)

func (s *IntegrationTestSuite) uploadProduct(price string, withImage bool) *http.Response {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if withImage {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="productImage"; filename="bowl.jpg"`)
		header.Set("Content-Type", "image/jpeg")
		part, err := writer.CreatePart(header)
		s.Require().NoError(err)
		_, err = part.Write([]byte("fake image bytes"))
		s.Require().NoError(err)
	}

	s.Require().NoError(writer.WriteField("price", price))
	s.Require().NoError(writer.Close())

	req, err := http.NewRequest(http.MethodPost,
		fmt.Sprintf("http://localhost:%s/upload-product", s.app.Config.ServicePort),
		body,
	)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	client := http.Client{}
	resp, err := client.Do(req)
	s.Require().NoError(err)

	return resp
}

func (s *IntegrationTestSuite) Test_UploadProduct() {
	resp := s.uploadProduct("2500", true)
	defer resp.Body.Close()

	s.Equal(http.StatusCreated, resp.StatusCode)

	var product dto.ProductResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&product))

	s.Equal("Teak Bowl", product.Name)
	s.Equal(int64(2500), product.Price)
	s.Equal("A hand-carved bowl.", product.Info)
	s.True(strings.HasPrefix(product.Image, "/uploads/"))
	s.NotEmpty(product.ID)

	// The catalog document on disk now carries the record.
	content, err := os.ReadFile(s.catalogFile)
	s.Require().NoError(err)

	var catalog []domain.Product
	s.Require().NoError(json.Unmarshal(content, &catalog))
	s.Require().Len(catalog, 1)
	s.Equal("Teak Bowl", catalog[0].Name)
	s.Equal(product.Image, catalog[0].Image)

	// And the stored image is served back under its public path.
	imageResp, err := http.Get(fmt.Sprintf("http://localhost:%s%s", s.app.Config.ServicePort, product.Image))
	s.Require().NoError(err)
	defer imageResp.Body.Close()
	s.Equal(http.StatusOK, imageResp.StatusCode)
}

func (s *IntegrationTestSuite) Test_UploadProduct_MissingImage() {
	resp := s.uploadProduct("2500", false)
	defer resp.Body.Close()

	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *IntegrationTestSuite) Test_UploadProduct_NonNumericPrice() {
	before := len(s.ai.imagePrompts)

	resp := s.uploadProduct("abc", true)
	defer resp.Body.Close()

	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal(before, len(s.ai.imagePrompts))
}
