package property

import (
	"strconv"
	"strings"
)

// Name is a name token: a base string plus an optional instance number.
// Instance 0 means the name carries no numeric suffix.
type Name struct {
	Base     string
	Instance int32
}

// NewName returns a name without instance suffix
func NewName(base string) Name {
	return Name{Base: base}
}

// NameWithInstance returns base with the numeric suffix instance
func NameWithInstance(base string, instance int32) Name {
	return Name{Base: base, Instance: instance}
}

func (n Name) String() string {
	if n.Instance <= 0 {
		return n.Base
	}
	return n.Base + "_" + strconv.FormatInt(int64(n.Instance), 10)
}

// ParseName splits a trailing "_<n>" suffix into the instance number.
// Suffixes with a leading zero stay part of the base.
func ParseName(s string) Name {
	idx := strings.LastIndexByte(s, '_')
	if idx <= 0 || idx == len(s)-1 {
		return Name{Base: s}
	}
	suffix := s[idx+1:]
	if suffix[0] == '0' {
		return Name{Base: s}
	}
	n, err := strconv.ParseInt(suffix, 10, 32)
	if err != nil {
		return Name{Base: s}
	}
	return Name{Base: s[:idx], Instance: int32(n)}
}

// MarshalText implements encoding.TextMarshaler
func (n Name) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (n *Name) UnmarshalText(text []byte) error {
	*n = ParseName(string(text))
	return nil
}
