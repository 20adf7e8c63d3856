// Loading: strict YAML decoding of declaration documents.
package schema

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load decodes one declaration document from r and validates it.
// Decoding is strict: fields not declared by the document model are
// rejected, so typos in declaration files surface as errors instead of
// silently vanishing. An empty input yields an empty, valid File.
func Load(r io.Reader) (*File, error) {
	// 1. Strict decode.
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &File{}, nil
		}

		return nil, fmt.Errorf("schema: decode: %w", err)
	}
	// 2. Structural validation.
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string) (*File, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}
	defer fd.Close()

	return Load(fd)
}
