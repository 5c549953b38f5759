package stats

import (
	"strconv"
	"strings"
)

// Field names recognized by the metric set, as produced by header
// normalization (trimmed, lower-cased).
const (
	FieldUnitPrice = "unit price"
	FieldQuantity  = "quantity"
	FieldDiscount  = "percentage discount"
)

// Schema is the ordered list of field names taken from the header line.
// It is fixed once the header is read and aligns every later record by
// position.
type Schema []string

// NewSchema normalizes raw header tokens into a schema. Duplicate names
// are kept as-is; when a row is built, later positions silently
// overwrite earlier ones.
func NewSchema(tokens []string) Schema {
	s := make(Schema, len(tokens))
	for i, t := range tokens {
		s[i] = strings.ToLower(strings.TrimSpace(t))
	}
	return s
}

// Row is one decoded record: field name to coerced value. A value is a
// float64 when the raw text parses fully as a number, otherwise the
// original string. Rows are never mutated after decoding; trackers hold
// references, not copies.
type Row map[string]any

// DecodeRow aligns one record's tokens with the schema and coerces each
// value. Tokens beyond the schema length are discarded; schema fields
// beyond the token count stay absent from the row.
func DecodeRow(tokens []string, schema Schema) Row {
	row := make(Row, len(schema))
	for i, name := range schema {
		if i >= len(tokens) {
			break
		}
		row[name] = coerce(tokens[i])
	}
	return row
}

// coerce interprets raw field text. The empty string is numerically
// valid under the coercion rule and yields zero, not a missing marker.
func coerce(raw string) any {
	t := strings.TrimSpace(raw)
	if t == "" {
		return float64(0)
	}
	if f, err := strconv.ParseFloat(t, 64); err == nil {
		return f
	}
	return raw
}

// Number returns the field's numeric value. ok is false when the field
// is absent from the row or holds non-numeric text.
func (r Row) Number(field string) (float64, bool) {
	v, ok := r[field]
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	return f, ok
}
