// Package species extracts a species label from an organism name.
//
// Reference names in the input table follow a fixed convention of
// underscore-delimited fields, for example
//
//	NC_000913_3_Escherichia_coli_K12
//
// where fields 3 and 4 (0-based) carry the genus and species. [FieldParser]
// implements that convention and rejects names that do not follow it.
package species

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedName is returned for names that do not follow the parser's
// naming convention.
var ErrMalformedName = errors.New("species: malformed organism name")

// Parser turns an organism name into a species label.
type Parser interface {
	Parse(name string) (string, error)
}

// FieldParser splits a name on Separator and joins the selected fields with
// Join.
type FieldParser struct {
	Separator string
	Fields    []int
	Join      string
}

// DefaultFieldParser returns the genus/species parser: fields 3 and 4 of an
// underscore-delimited name, joined by a space.
func DefaultFieldParser() FieldParser {
	return FieldParser{Separator: "_", Fields: []int{3, 4}, Join: " "}
}

// Parse implements [Parser].
func (p FieldParser) Parse(name string) (string, error) {
	parts := strings.Split(name, p.Separator)

	picked := make([]string, 0, len(p.Fields))
	for _, f := range p.Fields {
		if f < 0 || f >= len(parts) {
			return "", fmt.Errorf("%w: %q has %d fields, need field %d", ErrMalformedName, name, len(parts), f)
		}
		if parts[f] == "" {
			return "", fmt.Errorf("%w: %q has empty field %d", ErrMalformedName, name, f)
		}
		picked = append(picked, parts[f])
	}

	return strings.Join(picked, p.Join), nil
}

// RawParser uses the organism name as the label.
type RawParser struct{}

// Parse implements [Parser]. Only empty names are rejected.
func (RawParser) Parse(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty name", ErrMalformedName)
	}
	return name, nil
}

// ParserByName returns the parser registered under name: "fields" (the
// default convention) or "raw".
func ParserByName(name string) (Parser, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "fields":
		return DefaultFieldParser(), nil
	case "raw":
		return RawParser{}, nil
	default:
		return nil, fmt.Errorf("species: unknown parser %q", name)
	}
}
