package dataset

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// FileSource lê o dataset de um arquivo JSON local
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Name() string {
	return "file://" + s.path
}

func (s *FileSource) Load(_ context.Context) ([]domain.Sale, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, errors.Wrap(err, "dataset: open file")
	}
	defer f.Close()

	return decodeSales(f)
}
