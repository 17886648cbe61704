package catalog

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Batch is the result of a tolerant list decode: the records that decoded,
// in response order, plus one Diagnostic per record that was dropped.
type Batch[T any] struct {
	Items       []T
	Diagnostics []Diagnostic
}

// Diagnostic describes a record dropped from a batch.
type Diagnostic struct {
	Index  int
	ID     string
	Reason string
}

func (d Diagnostic) String() string {
	if d.ID == "" {
		return fmt.Sprintf("record %d: %s", d.Index, d.Reason)
	}
	return fmt.Sprintf("record %d (%s): %s", d.Index, d.ID, d.Reason)
}

type record interface {
	identity() string
}

// decodeBatch decodes each raw element on its own. Malformed elements and
// repeated ids are skipped and reported instead of failing the batch.
func decodeBatch[T record](raw []json.RawMessage, decode func(fields) (T, error)) Batch[T] {
	batch := Batch[T]{Items: make([]T, 0, len(raw))}
	seen := make(map[string]struct{}, len(raw))

	for i, item := range raw {
		var f fields
		if err := json.Unmarshal(item, &f); err != nil || f == nil {
			batch.Diagnostics = append(batch.Diagnostics, Diagnostic{Index: i, Reason: "not a json object"})
			continue
		}

		rec, err := decode(f)
		if err != nil {
			batch.Diagnostics = append(batch.Diagnostics, Diagnostic{Index: i, ID: f.peekID(), Reason: err.Error()})
			continue
		}

		id := rec.identity()
		if _, dup := seen[id]; dup {
			batch.Diagnostics = append(batch.Diagnostics, Diagnostic{Index: i, ID: id, Reason: "duplicate id"})
			continue
		}
		seen[id] = struct{}{}
		batch.Items = append(batch.Items, rec)
	}
	return batch
}

// fields is one JSON object keyed by field name.
type fields map[string]json.RawMessage

func (f fields) present(key string) bool {
	return !isNull(f[key])
}

func (f fields) peekID() string {
	id, _ := stringValue(f["id"])
	return id
}

func (f fields) requiredString(key string) (string, error) {
	if !f.present(key) {
		return "", errors.Errorf("missing required field %q", key)
	}
	s, ok := stringValue(f[key])
	if !ok {
		return "", errors.Errorf("field %q is not a string", key)
	}
	return s, nil
}

// stringValue reads a json string, or a json number as its literal text.
func stringValue(raw json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), true
	}
	return "", false
}

func (f fields) requiredID() (string, error) {
	id, err := f.requiredString("id")
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", errors.New(`field "id" is empty`)
	}
	return id, nil
}

// optionalString falls back to "" when the field is absent, null or neither
// a string nor a number.
func (f fields) optionalString(key string) string {
	if !f.present(key) {
		return ""
	}
	s, _ := stringValue(f[key])
	return s
}

// optionalInt falls back to 0 when the field is absent, null or not a number.
// Fractional values are truncated toward zero. Values outside the int32 range
// are rejected.
func (f fields) optionalInt(key string) (int, error) {
	if !f.present(key) {
		return 0, nil
	}
	var n float64
	if err := json.Unmarshal(f[key], &n); err != nil || math.IsNaN(n) {
		return 0, nil
	}
	if n > math.MaxInt32 || n < math.MinInt32 {
		return 0, errors.Errorf("field %q is out of range", key)
	}
	return int(n), nil
}

// requiredDecimal accepts a json number or a numeric string.
func (f fields) requiredDecimal(key string) (decimal.Decimal, error) {
	if !f.present(key) {
		return decimal.Decimal{}, errors.Errorf("missing required field %q", key)
	}
	var d decimal.Decimal
	if err := json.Unmarshal(f[key], &d); err != nil {
		return decimal.Decimal{}, errors.Errorf("field %q is not a number", key)
	}
	return d, nil
}
