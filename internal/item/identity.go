package item

import (
	"fmt"

	"github.com/osse101/ArkTools_Go/internal/domain"
	"github.com/osse101/ArkTools_Go/internal/property"
	"github.com/osse101/ArkTools_Go/internal/utils"
)

// SplitItemID returns the two 32-bit halves stored as ItemID1 (high) and ItemID2 (low)
func SplitItemID(id uint64) (hi, lo uint32) {
	return uint32(id >> 32), uint32(id)
}

// JoinItemID reassembles an id from its stored halves
func JoinItemID(hi, lo uint32) uint64 {
	return uint64(hi)<<32 | uint64(lo)
}

// NewItemID draws ids from random until taken rejects none of them.
// A nil taken accepts the first draw.
func NewItemID(random utils.RandomSource, taken func(uint64) bool) (uint64, error) {
	for attempt := 0; attempt < MaxItemIDAttempts; attempt++ {
		id := random.Uint64()
		if taken == nil || !taken(id) {
			return id, nil
		}
	}
	return 0, fmt.Errorf(ErrFmtExhaustedIDSpace, domain.ErrExhaustedIDSpace, MaxItemIDAttempts)
}

// FreeName returns base with the smallest instance suffix not rejected by taken.
// Suffixes are probed from 1 up to, but excluding, limit.
func FreeName(base string, taken func(property.Name) bool, limit int32) (property.Name, error) {
	for i := firstNameInstance; i < limit; i++ {
		name := property.NameWithInstance(base, i)
		if taken == nil || !taken(name) {
			return name, nil
		}
	}
	return property.Name{}, fmt.Errorf(ErrFmtExhaustedNameSpace, domain.ErrExhaustedNameSpace, base)
}

// ItemIDOf reads the id stored in an ItemId struct. Halves are stored as
// signed ints in live saves, so any integer kind is accepted.
func ItemIDOf(c property.Container) (uint64, bool) {
	netID, ok := property.Struct(c, PropItemID)
	if !ok {
		return 0, false
	}
	if !netID.Has(PropItemID1) || !netID.Has(PropItemID2) {
		return 0, false
	}
	hi := property.Integer(netID, PropItemID1, 0, 0)
	lo := property.Integer(netID, PropItemID2, 0, 0)
	return JoinItemID(uint32(hi), uint32(lo)), true
}

func itemIDProperty(id uint64) property.Property {
	hi, lo := SplitItemID(id)
	return property.NewStruct(PropItemID, StructItemNetID, property.NewList(
		property.NewUInt32(PropItemID1, hi),
		property.NewUInt32(PropItemID2, lo),
	))
}
