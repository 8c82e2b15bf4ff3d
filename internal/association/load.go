package association

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadTables reads a YAML table file. Sections left out of the file keep
// their built-in contents.
func LoadTables(path string) (*Tables, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tables: %w", err)
	}
	defer f.Close()
	return ReadTables(f)
}

// ReadTables parses YAML table data from r.
func ReadTables(r io.Reader) (*Tables, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read tables: %w", err)
	}

	var src TableSource
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&src); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode tables: %w", err)
	}

	def := DefaultSource()
	if src.Figures == nil {
		src.Figures = def.Figures
	}
	if src.Lexicon == nil {
		src.Lexicon = def.Lexicon
	}
	if src.Categories == nil {
		src.Categories = def.Categories
	}
	if src.Metaphors == nil {
		src.Metaphors = def.Metaphors
	}

	t, err := NewTables(src)
	if err != nil {
		return nil, fmt.Errorf("invalid tables: %w", err)
	}
	return t, nil
}
