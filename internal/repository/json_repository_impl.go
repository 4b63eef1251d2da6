package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/saubb/artisan/internal/domain"
	"github.com/saubb/artisan/pkg/errs"
)

// JSONProductRepositoryImpl keeps the whole catalog in a single JSON document.
// Appends are a read-modify-rewrite of the full file, so a mutex serializes
// writers; without it two overlapping appends would both read the old list and
// the second rewrite would drop the first product.
type JSONProductRepositoryImpl struct {
	filePath string
	mu       sync.Mutex
}

func CreateNewJSONProductRepository(filePath string) (ProductRepository, error) {
	repo := &JSONProductRepositoryImpl{filePath: filePath}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		if err := os.WriteFile(filePath, []byte("[]"), 0o644); err != nil {
			return nil, err
		}
	}

	// Fail fast on a corrupt catalog rather than on the first request.
	if _, err := repo.readCatalog(); err != nil {
		return nil, err
	}

	return repo, nil
}

func (r *JSONProductRepositoryImpl) GetProducts(ctx context.Context) (data []domain.Product, err error) {
	data, err = r.readCatalog()
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return nil, errs.ErrStorageRead
	}

	return data, nil
}

func (r *JSONProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (product domain.Product, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.readCatalog()
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Msg("")
		return product, errs.ErrStorageRead
	}

	products = append(products, data)

	if err = r.writeCatalog(products); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Msg("")
		return product, errs.ErrStorageWrite
	}

	return data, nil
}

func (r *JSONProductRepositoryImpl) readCatalog() ([]domain.Product, error) {
	content, err := os.ReadFile(r.filePath)
	if err != nil {
		return nil, err
	}

	products := []domain.Product{}
	if err := json.Unmarshal(content, &products); err != nil {
		return nil, err
	}

	return products, nil
}

// writeCatalog rewrites the document through a temp file and rename so a crash
// mid-write never leaves a half-written catalog behind.
func (r *JSONProductRepositoryImpl) writeCatalog(products []domain.Product) error {
	content, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return err
	}

	tmpFile := filepath.Join(filepath.Dir(r.filePath), "."+filepath.Base(r.filePath)+".tmp")
	if err := os.WriteFile(tmpFile, content, 0o644); err != nil {
		return err
	}

	return os.Rename(tmpFile, r.filePath)
}
