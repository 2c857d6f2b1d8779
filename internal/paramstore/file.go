// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package paramstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/MKhiriev/alto-starter/internal/logger"
)

type fileSource struct {
	path   string
	logger *logger.Logger
}

// NewFileSource returns a [Source] reading a JSON object from path. Nested
// objects are kept as maps and numbers as json.Number.
func NewFileSource(path string, logger *logger.Logger) Source {
	return &fileSource{path: path, logger: logger}
}

func (f *fileSource) Load(ctx context.Context) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigSourceUnavailable, err)
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrConfigSourceUnavailable, f.path, err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var values map[string]any
	if err = dec.Decode(&values); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrConfigSourceUnavailable, f.path, err)
	}
	if values == nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigSourceUnavailable, f.path, ErrInvalidConfigFile)
	}

	f.logger.Debug().
		Str("path", f.path).
		Int("keys", len(values)).
		Msg("loaded local configuration file")

	return values, nil
}
