package graphio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DecodeYAML parses and validates a YAML document. Unknown keys are rejected.
func DecodeYAML(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty YAML document", ErrMalformed)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// EncodeYAML writes doc as YAML.
func EncodeYAML(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}

	return enc.Close()
}

// DecodeTOML parses and validates a TOML document. Unknown keys are rejected.
func DecodeTOML(r io.Reader) (*Document, error) {
	var doc Document
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown keys %v", ErrMalformed, undecoded)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}

// EncodeTOML writes doc as TOML.
func EncodeTOML(w io.Writer, doc *Document) error {
	return toml.NewEncoder(w).Encode(doc)
}

// Load reads the file at path, choosing the decoder by extension:
// .yaml/.yml for YAML, .toml for TOML, anything else for plain text.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var doc *Document
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		doc, err = DecodeYAML(f)
	case ".toml":
		doc, err = DecodeTOML(f)
	default:
		doc, err = Read(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}
