// Package planfile loads training plan documents from YAML or JSON
// files into the entity collections the validation engine consumes.
// The loader never fills in or repairs data: absent fields stay
// zero-valued so the engine can report them.
package planfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/planforge/planlint/internal/core/plan"
)

// =============================================================================
// Errors
// =============================================================================

// ErrUnsupportedFormat reports a plan file extension the loader does
// not recognise.
var ErrUnsupportedFormat = errors.New("unsupported plan file format (expected .yaml, .yml or .json)")

// ParseError reports a plan file that could not be read or decoded.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("plan file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// =============================================================================
// Loading
// =============================================================================

// Load reads one plan document. The format is chosen by file
// extension; unknown document keys are rejected so typos surface as
// load errors rather than silently dropped collections.
func Load(path string) (plan.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return plan.Document{}, &ParseError{Path: path, Err: err}
	}

	doc, err := decode(path, raw)
	if err != nil {
		return plan.Document{}, &ParseError{Path: path, Err: err}
	}
	return doc, nil
}

// LoadAll reads several plan documents and merges their collections by
// concatenation in argument order, so cross-file references resolve in
// one validation context.
func LoadAll(paths []string) (plan.Document, error) {
	var merged plan.Document
	for _, path := range paths {
		doc, err := Load(path)
		if err != nil {
			return plan.Document{}, err
		}
		merged = merged.Merge(doc)
	}
	return merged, nil
}

func decode(path string, raw []byte) (plan.Document, error) {
	var doc plan.Document

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				// An empty file is an empty plan, not a parse error.
				return plan.Document{}, nil
			}
			return plan.Document{}, err
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return plan.Document{}, err
		}
	default:
		return plan.Document{}, ErrUnsupportedFormat
	}

	return doc, nil
}
