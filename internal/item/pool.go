package item

import "github.com/osse101/ArkTools_Go/internal/property"

// IDSet holds the item ids present in one inventory
type IDSet map[uint64]struct{}

// CollectIDs gathers the ids of items. Objects without a complete ItemId are skipped.
func CollectIDs(items []*property.Object) IDSet {
	set := make(IDSet, len(items))
	for _, o := range items {
		if id, ok := ItemIDOf(o); ok {
			set[id] = struct{}{}
		}
	}
	return set
}

// Has reports membership; a nil set is empty
func (s IDSet) Has(id uint64) bool {
	_, ok := s[id]
	return ok
}

// Add records id
func (s IDSet) Add(id uint64) {
	s[id] = struct{}{}
}

// NameSet holds every name token used anywhere in a save
type NameSet map[property.Name]struct{}

// CollectNames gathers the name tokens of objects
func CollectNames(objects []*property.Object) NameSet {
	set := make(NameSet, len(objects))
	for _, o := range objects {
		for _, n := range o.Names {
			set[n] = struct{}{}
		}
	}
	return set
}

// Has reports membership; a nil set is empty
func (s NameSet) Has(n property.Name) bool {
	_, ok := s[n]
	return ok
}

// Add records n
func (s NameSet) Add(n property.Name) {
	s[n] = struct{}{}
}

// Pool is the uniqueness context of a live encode: ids of the target
// inventory and names of the whole save. ToGameObject only reads it; callers
// encoding several items in a row call Reserve between encodes.
type Pool struct {
	IDs   IDSet
	Names NameSet
}

// NewPool snapshots the ids of inventoryItems and the names of saveObjects
func NewPool(inventoryItems, saveObjects []*property.Object) *Pool {
	return &Pool{
		IDs:   CollectIDs(inventoryItems),
		Names: CollectNames(saveObjects),
	}
}

// HasItemID reports whether id is taken. A nil pool takes nothing.
func (p *Pool) HasItemID(id uint64) bool {
	return p != nil && p.IDs.Has(id)
}

// HasName reports whether n is taken. A nil pool takes nothing.
func (p *Pool) HasName(n property.Name) bool {
	return p != nil && p.Names.Has(n)
}

// Reserve records the id and names of a freshly encoded object
func (p *Pool) Reserve(o *property.Object) {
	if id, ok := ItemIDOf(o); ok {
		if p.IDs == nil {
			p.IDs = IDSet{}
		}
		p.IDs.Add(id)
	}
	if p.Names == nil {
		p.Names = NameSet{}
	}
	for _, n := range o.Names {
		p.Names.Add(n)
	}
}
