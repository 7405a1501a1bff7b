// Package yamlutil decodes the bundler's YAML config files. It is the
// only package that imports the YAML library directly, so callers stay
// decoupled from the parser choice.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxConfigSize caps config input. Bundler configs are a handful of
// lines; anything past 1MB is rejected rather than parsed.
var MaxConfigSize = 1 << 20

var (
	ErrEmptyDocument    = errors.New("yamlutil: empty document")
	ErrNilDestination   = errors.New("yamlutil: nil destination")
	ErrDocumentTooLarge = errors.New("yamlutil: document exceeds size cap")
)

// UnmarshalStrict decodes data into v, rejecting unknown fields so a
// typo in a config key fails loudly instead of silently keeping the
// default value.
func UnmarshalStrict(data []byte, v any) error {
	if err := checkDocument(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

func checkDocument(data []byte, v any) error {
	if len(data) == 0 {
		return ErrEmptyDocument
	}
	if len(data) > MaxConfigSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrDocumentTooLarge, len(data), MaxConfigSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}
