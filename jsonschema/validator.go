// Package jsonschema checks assembled lots against a JSON Schema before they
// are stored.
package jsonschema

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fwojciec/artlot"
	"github.com/xeipuuv/gojsonschema"
)

// LotSchema is the built-in schema of a lot record. It checks types, value
// ranges and code formats; it never requires a field to be non-empty beyond
// what every parsed page provides.
//
//go:embed lot.schema.json
var LotSchema string

var _ artlot.LotValidator = (*Validator)(nil)

// Validator validates lots against a compiled JSON Schema.
// It is safe for concurrent use.
type Validator struct {
	schema *gojsonschema.Schema
}

// NewValidator compiles the built-in lot schema.
func NewValidator() (*Validator, error) {
	return newValidator(gojsonschema.NewStringLoader(LotSchema), "(built-in)")
}

// NewValidatorFromFile compiles the schema stored at path.
func NewValidatorFromFile(path string) (*Validator, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve schema path: %w", err)
	}
	return newValidator(gojsonschema.NewReferenceLoader("file://"+abs), abs)
}

func newValidator(loader gojsonschema.JSONLoader, name string) (*Validator, error) {
	schema, err := gojsonschema.NewSchema(loader)
	if err != nil {
		return nil, artlot.Errorf(artlot.EINVALID, "failed to load schema %s: %v", name, err)
	}
	return &Validator{schema: schema}, nil
}

// ValidateLot returns EINVALID listing every field of the lot that breaks
// the schema.
func (v *Validator) ValidateLot(lot *artlot.Lot) error {
	data, err := json.Marshal(lot)
	if err != nil {
		return err
	}

	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return err
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		msgs = append(msgs, field+": "+desc.Description())
	}
	return artlot.Errorf(artlot.EINVALID, "lot does not match schema: %s", strings.Join(msgs, "; "))
}
