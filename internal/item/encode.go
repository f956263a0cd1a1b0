package item

import (
	"fmt"
	"time"

	"github.com/osse101/ArkTools_Go/internal/domain"
	"github.com/osse101/ArkTools_Go/internal/property"
	"github.com/osse101/ArkTools_Go/internal/utils"
)

// Encoder projects items into save formats. It holds the random source and
// clock so conversions stay deterministic under test.
type Encoder struct {
	random    utils.RandomSource
	now       func() time.Time
	nameLimit int32
}

// EncoderOption configures an Encoder
type EncoderOption func(*Encoder)

// WithClock replaces time.Now as the upload time source
func WithClock(now func() time.Time) EncoderOption {
	return func(e *Encoder) {
		e.now = now
	}
}

// WithNameLimit caps name instance probing below limit
func WithNameLimit(limit int32) EncoderOption {
	return func(e *Encoder) {
		e.nameLimit = limit
	}
}

// NewEncoder creates an encoder drawing item ids from random
func NewEncoder(random utils.RandomSource, opts ...EncoderOption) *Encoder {
	e := &Encoder{
		random:    random,
		now:       time.Now,
		nameLimit: defaultNameLimit,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ToCluster builds an uploadable cluster entry. Every field is written, in
// the fixed order the game reads. The item id is not checked for collisions.
func (e *Encoder) ToCluster(it *domain.Item) (*property.List, error) {
	if !it.HasBlueprint() {
		return nil, fmt.Errorf(ErrFmtUnresolvedBlueprint, domain.ErrUnresolvedBlueprint, it.ClassName)
	}
	id, err := NewItemID(e.random, nil)
	if err != nil {
		return nil, err
	}

	tribute := property.NewList(
		property.NewObject(PropItemArchetype, property.PathReference(it.BlueprintGeneratedClass)),
		itemIDProperty(id),
	)
	for _, f := range clusterLayout {
		tribute.Add(f.emit(it, formatCluster, false)...)
	}

	uploadTime := e.now().Unix() + int64(it.UploadOffset)
	return property.NewList(
		property.NewStruct(PropArkTributeItem, StructItemNetInfo, tribute),
		property.NewFloat(PropVersion, ClusterVersion),
		property.NewInt(PropUploadTime, int32(uploadTime)),
	), nil
}

// ToGameObject builds a new item object owned by ownerInventory. Only
// non-default fields are written. The id avoids every id in pool.IDs and
// the name token takes the smallest free instance of the class name.
// pool is not modified; see Pool.Reserve.
func (e *Encoder) ToGameObject(it *domain.Item, pool *Pool, ownerInventory int32) (*property.Object, error) {
	id, err := NewItemID(e.random, pool.HasItemID)
	if err != nil {
		return nil, err
	}
	name, err := FreeName(it.ClassName, pool.HasName, e.nameLimit)
	if err != nil {
		return nil, err
	}

	obj := property.NewGameObject(property.NewName(it.ClassName))
	obj.Names = []property.Name{name}
	obj.IsItem = true
	obj.ExtraData = property.ExtraDataZero{}
	for _, f := range liveLayout {
		obj.Properties.Add(f.emit(it, formatLive, true)...)
	}
	obj.Properties.Add(
		itemIDProperty(id),
		property.NewObject(PropOwnerInventory, property.IDReference(ownerInventory, property.ReferenceLengthLong)),
	)
	return obj, nil
}
