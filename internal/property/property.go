package property

// Property is one named, typed and optionally indexed value of a property list
type Property struct {
	Name  string
	Index int
	Kind  Kind
	Value any
	// StructType names the struct layout of a StructProperty
	StructType string
	// ArrayKind is the element kind of an ArrayProperty
	ArrayKind Kind
}

// At returns a copy of p stored at the given array index
func (p Property) At(index int) Property {
	p.Index = index
	return p
}

// NewBool creates a BoolProperty
func NewBool(name string, v bool) Property {
	return Property{Name: name, Kind: KindBool, Value: v}
}

// NewByte creates a ByteProperty
func NewByte(name string, v uint8) Property {
	return Property{Name: name, Kind: KindByte, Value: v}
}

// NewInt16 creates an Int16Property
func NewInt16(name string, v int16) Property {
	return Property{Name: name, Kind: KindInt16, Value: v}
}

// NewUInt16 creates a UInt16Property
func NewUInt16(name string, v uint16) Property {
	return Property{Name: name, Kind: KindUInt16, Value: v}
}

// NewInt creates an IntProperty
func NewInt(name string, v int32) Property {
	return Property{Name: name, Kind: KindInt, Value: v}
}

// NewUInt32 creates a UInt32Property
func NewUInt32(name string, v uint32) Property {
	return Property{Name: name, Kind: KindUInt32, Value: v}
}

// NewFloat creates a FloatProperty
func NewFloat(name string, v float32) Property {
	return Property{Name: name, Kind: KindFloat, Value: v}
}

// NewDouble creates a DoubleProperty
func NewDouble(name string, v float64) Property {
	return Property{Name: name, Kind: KindDouble, Value: v}
}

// NewStr creates a StrProperty
func NewStr(name, v string) Property {
	return Property{Name: name, Kind: KindStr, Value: v}
}

// NewNameProperty creates a NameProperty
func NewNameProperty(name string, v Name) Property {
	return Property{Name: name, Kind: KindName, Value: v}
}

// NewObject creates an ObjectProperty
func NewObject(name string, ref ObjectReference) Property {
	return Property{Name: name, Kind: KindObject, Value: ref}
}

// NewStruct creates a StructProperty holding a nested property list
func NewStruct(name, structType string, list *List) Property {
	return Property{Name: name, Kind: KindStruct, StructType: structType, Value: list}
}

// NewVector creates a Vector StructProperty
func NewVector(name string, v Vector) Property {
	return Property{Name: name, Kind: KindStruct, StructType: StructTypeVector, Value: v}
}

// NewArray creates an ArrayProperty of elements of kind elem
func NewArray(name string, elem Kind, values []any) Property {
	if values == nil {
		values = []any{}
	}
	return Property{Name: name, Kind: KindArray, ArrayKind: elem, Value: values}
}

// Container is the read capability every property source offers:
// find the property stored under name at index.
type Container interface {
	Find(name string, index int) (Property, bool)
}

// List is an ordered property list. Order is preserved because some formats
// depend on it.
type List struct {
	props []Property
}

// NewList creates a list holding props in order
func NewList(props ...Property) *List {
	l := &List{}
	l.Add(props...)
	return l
}

// Add appends properties
func (l *List) Add(props ...Property) {
	l.props = append(l.props, props...)
}

// Find returns the first property named name at index
func (l *List) Find(name string, index int) (Property, bool) {
	if l == nil {
		return Property{}, false
	}
	for _, p := range l.props {
		if p.Name == name && p.Index == index {
			return p, true
		}
	}
	return Property{}, false
}

// Has reports whether any property named name exists at any index
func (l *List) Has(name string) bool {
	if l == nil {
		return false
	}
	for _, p := range l.props {
		if p.Name == name {
			return true
		}
	}
	return false
}

// Properties returns the properties in order. The slice must not be modified.
func (l *List) Properties() []Property {
	if l == nil {
		return nil
	}
	return l.props
}

// Len returns the number of properties
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.props)
}
