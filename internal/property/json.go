package property

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ErrNullObject is returned for an archive dump holding a null object
var ErrNullObject = errors.New(ErrMsgNullObject)

// Typed JSON dump of properties, objects and archives. The dump keeps every
// property's kind so that a round trip reproduces the exact Go value types.

type propertyJSON struct {
	Name       string          `json:"name"`
	Type       Kind            `json:"type"`
	Index      int             `json:"index,omitempty"`
	StructType string          `json:"structType,omitempty"`
	ArrayType  Kind            `json:"arrayType,omitempty"`
	Value      json.RawMessage `json:"value"`
}

type referenceJSON struct {
	Type   string `json:"type"`
	ID     int32  `json:"id"`
	Path   string `json:"path,omitempty"`
	Length int    `json:"length,omitempty"`
}

type extraDataJSON struct {
	Type string `json:"type"`
	Data []byte `json:"data,omitempty"`
}

type objectJSON struct {
	ID         int32          `json:"id"`
	Class      Name           `json:"class"`
	Names      []Name         `json:"names,omitempty"`
	Item       bool           `json:"item,omitempty"`
	Properties *List          `json:"properties"`
	ExtraData  *extraDataJSON `json:"extraData,omitempty"`
}

type archiveJSON struct {
	Objects []*Object `json:"objects"`
}

// MarshalJSON implements json.Marshaler
func (p Property) MarshalJSON() ([]byte, error) {
	var value json.RawMessage
	var err error
	if p.Kind == KindArray {
		value, err = encodeArray(p.ArrayKind, p.Value)
	} else {
		value, err = encodeValue(p.Kind, p.Value)
	}
	if err != nil {
		return nil, fmt.Errorf(ErrFmtEncodeValue, p.Name, p.Index, err)
	}
	return json.Marshal(propertyJSON{
		Name:       p.Name,
		Type:       p.Kind,
		Index:      p.Index,
		StructType: p.StructType,
		ArrayType:  p.ArrayKind,
		Value:      value,
	})
}

// UnmarshalJSON implements json.Unmarshaler
func (p *Property) UnmarshalJSON(data []byte) error {
	var raw propertyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.Name = raw.Name
	p.Index = raw.Index
	p.Kind = raw.Type
	p.StructType = raw.StructType
	p.ArrayKind = raw.ArrayType

	var err error
	switch raw.Type {
	case KindStruct:
		p.Value, err = decodeStruct(raw.StructType, raw.Value)
	case KindArray:
		p.Value, err = decodeArray(raw.ArrayType, raw.Value)
	default:
		p.Value, err = decodeValue(raw.Type, raw.Value)
	}
	if err != nil {
		return fmt.Errorf(ErrFmtDecodeValue, raw.Name, raw.Index, err)
	}
	return nil
}

// MarshalJSON implements json.Marshaler
func (l *List) MarshalJSON() ([]byte, error) {
	props := l.Properties()
	if props == nil {
		props = []Property{}
	}
	return json.Marshal(props)
}

// UnmarshalJSON implements json.Unmarshaler
func (l *List) UnmarshalJSON(data []byte) error {
	var props []Property
	if err := json.Unmarshal(data, &props); err != nil {
		return err
	}
	l.props = props
	return nil
}

// MarshalJSON implements json.Marshaler
func (o *Object) MarshalJSON() ([]byte, error) {
	out := objectJSON{
		ID:         o.ID,
		Class:      o.ClassName,
		Names:      o.Names,
		Item:       o.IsItem,
		Properties: o.Properties,
	}
	if out.Properties == nil {
		out.Properties = NewList()
	}
	switch ed := o.ExtraData.(type) {
	case ExtraDataZero:
		out.ExtraData = &extraDataJSON{Type: extraDataTagZero}
	case ExtraDataBlob:
		out.ExtraData = &extraDataJSON{Type: extraDataTagBlob, Data: ed.Data}
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler
func (o *Object) UnmarshalJSON(data []byte) error {
	var raw objectJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	o.ID = raw.ID
	o.ClassName = raw.Class
	o.Names = raw.Names
	o.IsItem = raw.Item
	o.Properties = raw.Properties
	if o.Properties == nil {
		o.Properties = NewList()
	}
	o.ExtraData = nil
	if raw.ExtraData != nil {
		switch raw.ExtraData.Type {
		case extraDataTagZero:
			o.ExtraData = ExtraDataZero{}
		case extraDataTagBlob:
			o.ExtraData = ExtraDataBlob{Data: raw.ExtraData.Data}
		default:
			return fmt.Errorf(ErrMsgUnknownExtraData, raw.ExtraData.Type)
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler
func (a *Archive) MarshalJSON() ([]byte, error) {
	objects := a.Objects
	if objects == nil {
		objects = []*Object{}
	}
	return json.Marshal(archiveJSON{Objects: objects})
}

// UnmarshalJSON implements json.Unmarshaler. Object ids are reassigned by position.
func (a *Archive) UnmarshalJSON(data []byte) error {
	var raw archiveJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for i, o := range raw.Objects {
		if o == nil {
			return fmt.Errorf(ErrFmtNullObject, ErrNullObject, i)
		}
		o.ID = int32(i)
	}
	a.Objects = raw.Objects
	return nil
}

func encodeValue(kind Kind, v any) (json.RawMessage, error) {
	switch kind {
	case KindObject:
		ref, ok := v.(ObjectReference)
		if !ok {
			return nil, fmt.Errorf(ErrMsgUnsupportedValue, v, kind)
		}
		out := referenceJSON{Type: referenceTagID, ID: ref.ObjectID, Length: ref.Length}
		if ref.Type == ReferenceByPath {
			out = referenceJSON{Type: referenceTagPath, ID: NoObject, Path: ref.Path}
		}
		return json.Marshal(out)
	case KindStruct:
		switch s := v.(type) {
		case *List:
			return s.MarshalJSON()
		case Vector:
			return json.Marshal(s)
		}
		return nil, fmt.Errorf(ErrMsgUnsupportedValue, v, kind)
	}
	return json.Marshal(v)
}

func encodeArray(elem Kind, v any) (json.RawMessage, error) {
	values, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf(ErrMsgUnsupportedValue, v, KindArray)
	}
	elems := make([]json.RawMessage, 0, len(values))
	for _, e := range values {
		raw, err := encodeValue(elem, e)
		if err != nil {
			return nil, err
		}
		elems = append(elems, raw)
	}
	return json.Marshal(elems)
}

func decodeStruct(structType string, raw json.RawMessage) (any, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, fmt.Errorf(ErrMsgMissingStructValue, structType)
	}
	if structType == StructTypeVector {
		var v Vector
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		return v, nil
	}
	l := NewList()
	if err := l.UnmarshalJSON(raw); err != nil {
		return nil, err
	}
	return l, nil
}

func decodeArray(elem Kind, raw json.RawMessage) (any, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, err
	}
	values := make([]any, 0, len(elems))
	for _, e := range elems {
		v, err := decodeValue(elem, e)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func decodeValue(kind Kind, raw json.RawMessage) (any, error) {
	switch kind {
	case KindBool:
		var b bool
		err := json.Unmarshal(raw, &b)
		return b, err
	case KindByte:
		n, err := parseUint(raw, 8, kind)
		return uint8(n), err
	case KindInt16:
		n, err := parseInt(raw, 16, kind)
		return int16(n), err
	case KindUInt16:
		n, err := parseUint(raw, 16, kind)
		return uint16(n), err
	case KindInt:
		n, err := parseInt(raw, 32, kind)
		return int32(n), err
	case KindUInt32:
		n, err := parseUint(raw, 32, kind)
		return uint32(n), err
	case KindInt64:
		return parseInt(raw, 64, kind)
	case KindUInt64:
		return parseUint(raw, 64, kind)
	case KindFloat:
		n, err := parseFloat(raw, 32)
		return float32(n), err
	case KindDouble:
		return parseFloat(raw, 64)
	case KindStr:
		var s string
		err := json.Unmarshal(raw, &s)
		return s, err
	case KindName:
		var n Name
		err := json.Unmarshal(raw, &n)
		return n, err
	case KindObject:
		var ref referenceJSON
		if err := json.Unmarshal(raw, &ref); err != nil {
			return nil, err
		}
		switch ref.Type {
		case referenceTagID:
			return IDReference(ref.ID, ref.Length), nil
		case referenceTagPath:
			return PathReference(ref.Path), nil
		}
		return nil, fmt.Errorf(ErrMsgUnknownReference, ref.Type)
	}
	return nil, fmt.Errorf(ErrMsgUnknownKind, kind)
}

func number(raw json.RawMessage) (json.Number, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var n json.Number
	if err := dec.Decode(&n); err != nil {
		return "", err
	}
	return n, nil
}

func parseInt(raw json.RawMessage, bits int, kind Kind) (int64, error) {
	n, err := number(raw)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(n.String(), 10, bits)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgIntegerOutOfRange, n, kind)
	}
	return v, nil
}

func parseUint(raw json.RawMessage, bits int, kind Kind) (uint64, error) {
	n, err := number(raw)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(n.String(), 10, bits)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgIntegerOutOfRange, n, kind)
	}
	return v, nil
}

func parseFloat(raw json.RawMessage, bits int) (float64, error) {
	n, err := number(raw)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(n.String(), bits)
}
