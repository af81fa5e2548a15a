package io

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/chartgeom/pkg/errors"
)

// Format is a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Formats maps file extensions to encodings.
var Formats = map[string]Format{
	".json": FormatJSON,
	".yaml": FormatYAML,
	".yml":  FormatYAML,
	".toml": FormatTOML,
}

// FormatFromPath selects the encoding from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	f, ok := Formats[ext]
	if !ok {
		return "", errors.New(errors.ErrCodeInvalidDocument, "unsupported document extension %q (must be .json, .yaml, .yml or .toml)", ext)
	}
	return f, nil
}

// Decode reads a document from r without validating it. Decode does not
// close r.
func Decode(r io.Reader, format Format) (*Document, error) {
	var doc Document
	var err error
	switch format {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&doc)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&doc)
	case FormatTOML:
		_, err = toml.NewDecoder(r).Decode(&doc)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown document format %q", format)
	}
	if stderrors.Is(err, io.EOF) {
		return nil, errors.New(errors.ErrCodeInvalidDocument, "empty %s document", format)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode %s", format)
	}
	return &doc, nil
}

// Read decodes, validates and converts a document from r.
func Read(r io.Reader, format Format) (*Chart, error) {
	doc, err := Decode(r, format)
	if err != nil {
		return nil, err
	}
	return convert(doc)
}

// LoadDocument opens the document at path and decodes it using the encoding
// its extension selects. The document is not validated.
func LoadDocument(path string) (*Document, error) {
	if err := errors.ValidateDocumentPath(path); err != nil {
		return nil, err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Load reads the document at path and returns the chart it describes.
func Load(path string) (*Chart, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}
	c, err := convert(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func convert(doc *Document) (*Chart, error) {
	if err := Validate(doc); err != nil {
		return nil, err
	}
	c, err := doc.Chart()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "convert document")
	}
	return c, nil
}
