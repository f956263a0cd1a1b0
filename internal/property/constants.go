package property

// Kind names a property type as it appears in a save
type Kind string

// Property kinds
const (
	KindBool   Kind = "BoolProperty"
	KindByte   Kind = "ByteProperty"
	KindInt16  Kind = "Int16Property"
	KindUInt16 Kind = "UInt16Property"
	KindInt    Kind = "IntProperty"
	KindUInt32 Kind = "UInt32Property"
	KindInt64  Kind = "Int64Property"
	KindUInt64 Kind = "UInt64Property"
	KindFloat  Kind = "FloatProperty"
	KindDouble Kind = "DoubleProperty"
	KindStr    Kind = "StrProperty"
	KindName   Kind = "NameProperty"
	KindObject Kind = "ObjectProperty"
	KindStruct Kind = "StructProperty"
	KindArray  Kind = "ArrayProperty"
)

// Struct type names with a dedicated value representation
const (
	StructTypeVector = "Vector"
)

// Object reference constants
const (
	// NoObject is the object id of a reference that points nowhere
	NoObject int32 = -1

	ReferenceLengthShort = 4
	ReferenceLengthLong  = 8
)

// OwnerInventoryProperty links an item object to the inventory holding it
const OwnerInventoryProperty = "OwnerInventory"

// JSON dump type tags
const (
	referenceTagID   = "id"
	referenceTagPath = "path"

	extraDataTagZero = "zero"
	extraDataTagBlob = "blob"
)

// Error messages
const (
	ErrMsgUnknownKind        = "unknown property type %q"
	ErrFmtDecodeValue        = "decode property %s[%d]: %w"
	ErrFmtEncodeValue        = "encode property %s[%d]: %w"
	ErrMsgUnknownReference   = "unknown reference type %q"
	ErrMsgUnknownExtraData   = "unknown extra data type %q"
	ErrMsgIntegerOutOfRange  = "value %s out of range for %s"
	ErrMsgUnsupportedValue   = "unsupported value %T for %s"
	ErrMsgMissingStructValue = "struct %s has no value"
	ErrMsgNullObject         = "null object"
	ErrFmtNullObject         = "%w at index %d"
)
