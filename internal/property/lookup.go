package property

import "math"

// Each lookup returns def when the property is absent or holds a value of
// an unexpected type, so reading a property list never fails.

func lookup[T any](c Container, name string, index int, def T) T {
	if c == nil {
		return def
	}
	p, ok := c.Find(name, index)
	if !ok {
		return def
	}
	v, ok := p.Value.(T)
	if !ok {
		return def
	}
	return v
}

// Bool reads a boolean
func Bool(c Container, name string, def bool) bool {
	return lookup(c, name, 0, def)
}

// String reads a string
func String(c Container, name string, def string) string {
	return lookup(c, name, 0, def)
}

// Float reads a single-precision float. Doubles are narrowed.
func Float(c Container, name string, def float32) float32 {
	if c == nil {
		return def
	}
	p, ok := c.Find(name, 0)
	if !ok {
		return def
	}
	switch v := p.Value.(type) {
	case float32:
		return v
	case float64:
		return float32(v)
	}
	return def
}

// Integer reads any integer kind at index, widened to int64
func Integer(c Container, name string, index int, def int64) int64 {
	if c == nil {
		return def
	}
	p, ok := c.Find(name, index)
	if !ok {
		return def
	}
	if v, ok := toInt64(p.Value); ok {
		return v
	}
	return def
}

// Number reads any numeric kind, truncating floats toward zero
func Number(c Container, name string, def int64) int64 {
	if c == nil {
		return def
	}
	p, ok := c.Find(name, 0)
	if !ok {
		return def
	}
	if v, ok := toInt64(p.Value); ok {
		return v
	}
	switch v := p.Value.(type) {
	case float32:
		return truncate(float64(v), def)
	case float64:
		return truncate(v, def)
	}
	return def
}

// Struct reads a nested property list
func Struct(c Container, name string) (*List, bool) {
	l := lookup[*List](c, name, 0, nil)
	return l, l != nil
}

// Reference reads an object reference
func Reference(c Container, name string) (ObjectReference, bool) {
	if c == nil {
		return ObjectReference{}, false
	}
	p, ok := c.Find(name, 0)
	if !ok {
		return ObjectReference{}, false
	}
	ref, ok := p.Value.(ObjectReference)
	return ref, ok
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case uint8:
		return int64(n), true
	case int16:
		return int64(n), true
	case uint16:
		return int64(n), true
	case int32:
		return int64(n), true
	case uint32:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		return int64(n), true
	case int:
		return int64(n), true
	}
	return 0, false
}

func truncate(f float64, def int64) int64 {
	if math.IsNaN(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return def
	}
	return int64(f)
}
