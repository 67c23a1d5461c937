package statsapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// statObject is a JSON object decoded with its key order kept. Stat columns
// follow the order the API sends them in.
type statObject struct {
	keys   []string
	values map[string]json.RawMessage
}

func (o *statObject) UnmarshalJSON(data []byte) error {
	o.keys = nil
	o.values = nil
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("statsapi: expected object, got %v", tok)
	}
	o.values = make(map[string]json.RawMessage)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("statsapi: expected object key, got %v", keyTok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		if _, seen := o.values[key]; !seen {
			o.keys = append(o.keys, key)
		}
		o.values[key] = raw
	}
	_, err = dec.Token()
	return err
}

// Keys returns the keys in document order.
func (o statObject) Keys() []string {
	return o.keys
}

// Present reports whether the object was in the payload.
func (o statObject) Present() bool {
	return o.values != nil
}

// Value converts one member to a table cell. Position objects collapse to
// their abbreviation.
func (o statObject) Value(key string) (any, bool) {
	raw, ok := o.values[key]
	if !ok {
		return nil, false
	}
	return cellValue(raw), true
}

func cellValue(raw json.RawMessage) any {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil
	}
	switch val := v.(type) {
	case json.Number:
		if i, err := strconv.Atoi(val.String()); err == nil {
			return i
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	case map[string]any:
		if abbrv, ok := val["abbreviation"].(string); ok {
			return abbrv
		}
		return val
	}
	return v
}

// flexInt accepts a JSON number or a numeric string. Ranks arrive as either.
type flexInt struct {
	value int
	valid bool
}

func (f *flexInt) UnmarshalJSON(data []byte) error {
	*f = flexInt{}
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" || s == "-" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	*f = flexInt{value: n, valid: true}
	return nil
}

// cell returns the value or nil when the rank was absent.
func (f flexInt) cell() any {
	if !f.valid {
		return nil
	}
	return f.value
}

// orDefault dereferences p, or returns def when the field was absent.
func orDefault[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

// optCell returns *p as a table cell, or nil when the field was absent.
func optCell[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

// idCell returns a positive id as a cell and nil otherwise.
func idCell(id int) any {
	if id <= 0 {
		return nil
	}
	return id
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
