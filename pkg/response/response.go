package response

import (
	"github.com/labstack/echo/v4"

	"github.com/saubb/artisan/pkg/errs"
)

// ErrorResponse is the wire shape the frontend expects on every failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

type AnalysisResponse struct {
	Analysis string `json:"analysis"`
}

func WriteJSONResponse(c echo.Context, statusCode int, data interface{}) error {
	return c.JSON(statusCode, data)
}

func WriteErrorResponse(c echo.Context, err error) error {
	statusCode := errs.GetErrorStatusCode(err)

	return c.JSON(statusCode, ErrorResponse{Error: err.Error()})
}
