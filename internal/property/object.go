package property

// ExtraData is the optional binary payload trailing an object's properties
type ExtraData interface {
	extraDataTag() string
}

// ExtraDataZero marks an object without extra payload
type ExtraDataZero struct{}

func (ExtraDataZero) extraDataTag() string { return extraDataTagZero }

// ExtraDataBlob is an opaque payload kept as read
type ExtraDataBlob struct {
	Data []byte
}

func (ExtraDataBlob) extraDataTag() string { return extraDataTagBlob }

// Object is one save object: a class, its name tokens and its properties
type Object struct {
	ID         int32
	ClassName  Name
	Names      []Name
	IsItem     bool
	Properties *List
	ExtraData  ExtraData
}

// NewGameObject creates an empty object of the given class
func NewGameObject(className Name) *Object {
	return &Object{
		ClassName:  className,
		Properties: NewList(),
	}
}

// Find implements Container over the object's properties
func (o *Object) Find(name string, index int) (Property, bool) {
	if o == nil {
		return Property{}, false
	}
	return o.Properties.Find(name, index)
}

// OwnerInventory returns the object id of the inventory holding o
func (o *Object) OwnerInventory() (int32, bool) {
	ref, ok := Reference(o, OwnerInventoryProperty)
	if !ok || ref.Type != ReferenceByID {
		return NoObject, false
	}
	return ref.ObjectID, true
}

// Archive is the object collection of one save
type Archive struct {
	Objects []*Object
}

// Append adds o with the next free object id and returns that id
func (a *Archive) Append(o *Object) int32 {
	o.ID = int32(len(a.Objects))
	a.Objects = append(a.Objects, o)
	return o.ID
}

// Get returns the object with the given id
func (a *Archive) Get(id int32) (*Object, bool) {
	if id < 0 || int(id) >= len(a.Objects) {
		return nil, false
	}
	return a.Objects[id], true
}

// InventoryItems returns the item objects owned by inventory id, in archive order
func (a *Archive) InventoryItems(id int32) []*Object {
	var items []*Object
	for _, o := range a.Objects {
		if !o.IsItem {
			continue
		}
		if owner, ok := o.OwnerInventory(); ok && owner == id {
			items = append(items, o)
		}
	}
	return items
}
