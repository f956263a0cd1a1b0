package property

// ReferenceType tells whether a reference points at an object id or an asset path
type ReferenceType int

const (
	ReferenceByID ReferenceType = iota
	ReferenceByPath
)

// ObjectReference points at another object in the save or at an asset path
type ObjectReference struct {
	Type     ReferenceType
	ObjectID int32
	Path     string
	// Length is the on-disk size tag of an id reference (4 or 8)
	Length int
}

// IDReference builds a reference to object id with the given length tag
func IDReference(id int32, length int) ObjectReference {
	return ObjectReference{Type: ReferenceByID, ObjectID: id, Length: length}
}

// PathReference builds a reference to an asset path
func PathReference(path string) ObjectReference {
	return ObjectReference{Type: ReferenceByPath, ObjectID: NoObject, Path: path}
}

// Vector is a three-component float struct
type Vector struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}
