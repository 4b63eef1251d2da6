package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ReferenceDataRepositoryImpl holds the two grounding datasets embedded into
// analysis prompts. They are loaded once at startup and treated as opaque
// blobs; the service never inspects their structure.
type ReferenceDataRepositoryImpl struct {
	regionalPricing    string
	rawMaterialSources string
}

func CreateNewReferenceDataRepository(dataDir string) (ReferenceDataRepository, error) {
	regionalPricing, err := loadReferenceFile(filepath.Join(dataDir, "regional_pricing.json"))
	if err != nil {
		return nil, err
	}

	rawMaterialSources, err := loadReferenceFile(filepath.Join(dataDir, "raw_material_sources.json"))
	if err != nil {
		return nil, err
	}

	return &ReferenceDataRepositoryImpl{
		regionalPricing:    regionalPricing,
		rawMaterialSources: rawMaterialSources,
	}, nil
}

func (r *ReferenceDataRepositoryImpl) RegionalPricing() string {
	return r.regionalPricing
}

func (r *ReferenceDataRepositoryImpl) RawMaterialSources() string {
	return r.rawMaterialSources
}

func loadReferenceFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("loading reference dataset %s: %w", path, err)
	}

	if !json.Valid(content) {
		return "", fmt.Errorf("reference dataset %s is not valid JSON", path)
	}

	return string(content), nil
}
