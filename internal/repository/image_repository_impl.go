package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/saubb/artisan/pkg/errs"
)

type DiskImageRepositoryImpl struct {
	uploadsDir string
}

func CreateNewDiskImageRepository(uploadsDir string) (ImageRepository, error) {
	if err := os.MkdirAll(uploadsDir, 0o755); err != nil {
		return nil, err
	}

	return &DiskImageRepositoryImpl{uploadsDir: uploadsDir}, nil
}

// SaveImage stores the uploaded bytes under a millisecond-timestamp prefix so
// two uploads of the same file name cannot collide, and returns the public URL
// path the stored product record will carry.
func (r *DiskImageRepositoryImpl) SaveImage(ctx context.Context, fileName string, content []byte) (publicPath string, err error) {
	storedName := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(fileName))

	if err = os.WriteFile(filepath.Join(r.uploadsDir, storedName), content, 0o644); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "SaveImage").Msg("")
		return "", errs.ErrStorageWrite
	}

	return "/uploads/" + storedName, nil
}
