package core

import (
	"fmt"
	"strconv"
	"sync/atomic"
)

// LabelRecord is one validated unit of work: a single article whose labels
// should be printed. Description is stored sanitized (see CleanField); the
// encoder consumes records as-is.
type LabelRecord struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"` // number of labels, always >= 0
}

// QuantityRule controls how the parser reads the quantity column.
type QuantityRule string

const (
	// QuantityStrict skips any row whose quantity cell is not a positive
	// integer.
	QuantityStrict QuantityRule = "strict"
	// QuantityLenient defaults missing or non-numeric quantities to zero
	// so the row survives for manual correction.
	QuantityLenient QuantityRule = "lenient"
)

// ParseQuantityRule converts a config string to a QuantityRule.
func ParseQuantityRule(s string) (QuantityRule, error) {
	switch QuantityRule(s) {
	case QuantityStrict, QuantityLenient:
		return QuantityRule(s), nil
	case "":
		return QuantityStrict, nil
	default:
		return "", fmt.Errorf("unknown quantity rule: %q", s)
	}
}

// InputSchema names the column headers one source system uses for the three
// required fields. Header matching is exact after whitespace trimming.
type InputSchema struct {
	Key               string       `json:"key"`               // Unique identifier: "sap-es"
	Label             string       `json:"label"`             // Display name: "SAP export (Spanish)"
	CodeColumn        string       `json:"codeColumn"`        // Header of the article code column
	DescriptionColumn string       `json:"descriptionColumn"` // Header of the description column
	QuantityColumn    string       `json:"quantityColumn"`    // Header of the label quantity column
	Rule              QuantityRule `json:"quantityRule"`      // Defaults to QuantityStrict when empty
}

// Validate checks that the schema is complete enough to register.
func (s InputSchema) Validate() error {
	if s.Key == "" {
		return fmt.Errorf("schema key is required")
	}
	if s.CodeColumn == "" || s.DescriptionColumn == "" || s.QuantityColumn == "" {
		return fmt.Errorf("schema %s: all three column headers are required", s.Key)
	}
	if _, err := ParseQuantityRule(string(s.Rule)); err != nil {
		return fmt.Errorf("schema %s: %w", s.Key, err)
	}
	return nil
}

// rule returns the effective quantity rule, defaulting to strict.
func (s InputSchema) rule() QuantityRule {
	if s.Rule == "" {
		return QuantityStrict
	}
	return s.Rule
}

// ParseResult reports what the parser made of one paste.
type ParseResult struct {
	Records      []LabelRecord `json:"records"`
	DataRows     int           `json:"dataRows"`     // non-empty lines examined after the header
	Skipped      int           `json:"skipped"`      // rows dropped for failing validation
	SkippedLines []int         `json:"skippedLines"` // 1-based input line numbers of dropped rows
}

// IDSequence issues unique record identifiers from a monotonic counter.
// The zero value is ready to use and safe for concurrent callers.
type IDSequence struct {
	n atomic.Uint64
}

// Next returns the next identifier in the sequence.
func (s *IDSequence) Next() string {
	return "rec-" + strconv.FormatUint(s.n.Add(1), 10)
}
