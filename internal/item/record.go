package item

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// Record is a flat JSON item object. Array fields are spread over
// "<key>_<index>" keys instead of being nested.
type Record map[string]any

// UnmarshalJSON decodes numbers as json.Number so integers keep their precision
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return err
	}
	*r = Record(m)
	return nil
}

// Bool returns the boolean at key, or def when absent or not a boolean
func (r Record) Bool(key string, def bool) bool {
	if b, ok := r[key].(bool); ok {
		return b
	}
	return def
}

// StringValue returns the string at key and whether one was present
func (r Record) StringValue(key string) (string, bool) {
	s, ok := r[key].(string)
	return s, ok
}

// String returns the string at key, or def
func (r Record) String(key, def string) string {
	if s, ok := r.StringValue(key); ok {
		return s
	}
	return def
}

// Int returns the number at key truncated to an integer, or def.
// Null and non-numeric values yield def.
func (r Record) Int(key string, def int64) int64 {
	switch v := r[key].(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n
		}
		if f, err := v.Float64(); err == nil {
			return truncate(f, def)
		}
	case float64:
		return truncate(v, def)
	case float32:
		return truncate(float64(v), def)
	case int:
		return int64(v)
	case int64:
		return v
	case int32:
		return int64(v)
	case int16:
		return int64(v)
	case uint16:
		return int64(v)
	case uint8:
		return int64(v)
	}
	return def
}

// Float returns the number at key as a float32, or def.
// Null and non-numeric values yield def.
func (r Record) Float(key string, def float32) float32 {
	switch v := r[key].(type) {
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return float32(f)
		}
	case float64:
		return float32(v)
	case float32:
		return v
	case int:
		return float32(v)
	case int64:
		return float32(v)
	case int32:
		return float32(v)
	}
	return def
}

// indexedKey names the flat key of element index of an array field
func indexedKey(base string, index int) string {
	return fmt.Sprintf("%s_%d", base, index)
}

func truncate(f float64, def int64) int64 {
	if math.IsNaN(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return def
	}
	return int64(f)
}
