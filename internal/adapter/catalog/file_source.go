package catalog

import (
	"context"
	"os"

	"flag-quiz/internal/domain"
)

// FileSource loads the catalog from a JSON file on disk.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Load(ctx context.Context) ([]domain.Country, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewCatalogLoadError("catalog load canceled", err)
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, domain.NewCatalogLoadError("failed to open "+s.path, err)
	}
	defer f.Close()
	return decodeCountries(f, s.path)
}
