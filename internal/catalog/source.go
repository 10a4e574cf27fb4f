package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Source loads a full set of datasets.
type Source interface {
	Name() string
	Load(ctx context.Context) (Datasets, error)
}

//go:embed seed/catalog.yaml
var seedYAML []byte

// EmbeddedSource serves the seed datasets compiled into the binary.
type EmbeddedSource struct{}

func (EmbeddedSource) Name() string { return "embedded" }

func (EmbeddedSource) Load(ctx context.Context) (Datasets, error) {
	if err := ctx.Err(); err != nil {
		return Datasets{}, err
	}
	d, err := DecodeYAML(seedYAML)
	if err != nil {
		return Datasets{}, fmt.Errorf("decode embedded seed: %w", err)
	}
	return d, nil
}

// YAMLSource reads datasets from a YAML file on every load, so edits to the
// file show up on the next refresh.
type YAMLSource struct {
	Path string
}

func (s YAMLSource) Name() string { return "yaml:" + s.Path }

func (s YAMLSource) Load(ctx context.Context) (Datasets, error) {
	if err := ctx.Err(); err != nil {
		return Datasets{}, err
	}
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return Datasets{}, fmt.Errorf("read dataset file: %w", err)
	}
	d, err := DecodeYAML(raw)
	if err != nil {
		return Datasets{}, fmt.Errorf("decode %s: %w", s.Path, err)
	}
	return d, nil
}

// DecodeYAML parses a dataset document. Unknown keys are rejected so typos in
// hand-edited files fail loudly instead of silently dropping fields.
// An empty document yields empty datasets.
func DecodeYAML(raw []byte) (Datasets, error) {
	var d Datasets
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil && !errors.Is(err, io.EOF) {
		return Datasets{}, err
	}
	return d, nil
}
