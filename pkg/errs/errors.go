package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusNotFound       = http.StatusNotFound
)

var (
	ErrInternalServer  = errors.New("Internal server error")
	ErrInvalidInput    = errors.New("Invalid request input")
	ErrNoImage         = errors.New("No image uploaded")
	ErrStorageRead     = errors.New("Failed to retrieve products")
	ErrStorageWrite    = errors.New("Failed to save product")
	ErrAiInvocation    = errors.New("AI analysis request failed")
	ErrAiResponseParse = errors.New("AI response could not be interpreted")
	ErrNotFound        = errors.New("Resource not found")
)

var errorMap = map[error]int{
	ErrInternalServer:  ErrStatusInternalServer,
	ErrInvalidInput:    ErrStatusClient,
	ErrNoImage:         ErrStatusClient,
	ErrStorageRead:     ErrStatusInternalServer,
	ErrStorageWrite:    ErrStatusInternalServer,
	ErrAiInvocation:    ErrStatusInternalServer,
	ErrAiResponseParse: ErrStatusInternalServer,
	ErrNotFound:        ErrStatusNotFound,
}

func GetErrorStatusCode(err error) int {
	errStatusCode, ok := errorMap[err]
	if !ok {
		errStatusCode = errorMap[ErrInternalServer]
	}
	return errStatusCode
}
