// Package seed loads cupcake seed files and writes them through the service layer.
package seed

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"cupcake-api/internal/model"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for seed files that are not JSON or YAML.
var ErrUnsupportedFormat = errors.New("unsupported seed file format")

// Loader defines the interface for loading seed files.
type Loader interface {
	// Load reads a seed file and returns the cupcakes it describes.
	Load(ctx context.Context, path string) ([]model.NewCupcake, error)
}

// File is the on-disk seed document, shaped like the list response.
type File struct {
	Cupcakes []model.NewCupcake `json:"cupcakes" yaml:"cupcakes"`
}

// Decode parses a seed document from r. The format follows name's extension:
// .json, .yaml or .yml, each optionally followed by .gz.
func Decode(r io.Reader, name string) ([]model.NewCupcake, error) {
	ext := strings.ToLower(path.Ext(name))
	if ext == ".gz" {
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader for %s: %w", name, err)
		}
		defer gz.Close()

		r = gz
		ext = strings.ToLower(path.Ext(strings.TrimSuffix(name, path.Ext(name))))
	}

	var doc File
	switch ext {
	case ".json":
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode JSON seed file %s: %w", name, err)
		}
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to decode YAML seed file %s: %w", name, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}

	return doc.Cupcakes, nil
}
