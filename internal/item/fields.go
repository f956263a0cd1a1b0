package item

import (
	"github.com/osse101/ArkTools_Go/internal/domain"
	"github.com/osse101/ArkTools_Go/internal/property"
)

// format selects the property-list representation a field is read from or written to
type format int

const (
	formatLive format = iota
	formatCluster
)

// field is one row of the policy table. Each row knows its name and default
// in every format; encoders pass sparse=true to omit values equal to the default.
type field interface {
	decode(src property.Container, f format, it *domain.Item)
	decodeJSON(r Record, it *domain.Item)
	emit(it *domain.Item, f format, sparse bool) []property.Property
	encodeJSON(it *domain.Item, r Record)
}

// flagField is a boolean. An empty name means the format does not carry the
// flag and the default applies.
type flagField struct {
	names [2]string
	key   string
	def   bool
	get   func(*domain.Item) bool
	set   func(*domain.Item, bool)
}

func (f flagField) decode(src property.Container, fm format, it *domain.Item) {
	if f.names[fm] == "" {
		f.set(it, f.def)
		return
	}
	f.set(it, property.Bool(src, f.names[fm], f.def))
}

func (f flagField) decodeJSON(r Record, it *domain.Item) {
	f.set(it, r.Bool(f.key, f.def))
}

func (f flagField) emit(it *domain.Item, fm format, sparse bool) []property.Property {
	v := f.get(it)
	if f.names[fm] == "" || (sparse && v == f.def) {
		return nil
	}
	return []property.Property{property.NewBool(f.names[fm], v)}
}

func (f flagField) encodeJSON(it *domain.Item, r Record) {
	r[f.key] = f.get(it)
}

// textField is a string defaulting to empty
type textField struct {
	name string
	key  string
	get  func(*domain.Item) string
	set  func(*domain.Item, string)
}

func (f textField) decode(src property.Container, _ format, it *domain.Item) {
	f.set(it, property.String(src, f.name, ""))
}

func (f textField) decodeJSON(r Record, it *domain.Item) {
	f.set(it, r.String(f.key, ""))
}

func (f textField) emit(it *domain.Item, _ format, sparse bool) []property.Property {
	v := f.get(it)
	if sparse && v == "" {
		return nil
	}
	return []property.Property{property.NewStr(f.name, v)}
}

func (f textField) encodeJSON(it *domain.Item, r Record) {
	r[f.key] = f.get(it)
}

// floatField is a float defaulting to zero, possibly named differently per format
type floatField struct {
	names [2]string
	key   string
	get   func(*domain.Item) float32
	set   func(*domain.Item, float32)
}

func (f floatField) decode(src property.Container, fm format, it *domain.Item) {
	f.set(it, property.Float(src, f.names[fm], 0))
}

func (f floatField) decodeJSON(r Record, it *domain.Item) {
	f.set(it, r.Float(f.key, 0))
}

func (f floatField) emit(it *domain.Item, fm format, sparse bool) []property.Property {
	v := f.get(it)
	if sparse && v == 0 {
		return nil
	}
	return []property.Property{property.NewFloat(f.names[fm], v)}
}

func (f floatField) encodeJSON(it *domain.Item, r Record) {
	r[f.key] = f.get(it)
}

// quantityField stores the absolute count in live saves and JSON, and the
// count beyond one in cluster entries. Every path clamps to at least one.
type quantityField struct{}

func (quantityField) decode(src property.Container, fm format, it *domain.Item) {
	if fm == formatCluster {
		it.Quantity = domain.ClampQuantity(property.Number(src, PropItemQuantity, 0) + 1)
		return
	}
	it.Quantity = domain.ClampQuantity(property.Number(src, PropItemQuantity, domain.MinQuantity))
}

func (quantityField) decodeJSON(r Record, it *domain.Item) {
	it.Quantity = domain.ClampQuantity(r.Int(KeyQuantity, domain.MinQuantity))
}

func (quantityField) emit(it *domain.Item, fm format, sparse bool) []property.Property {
	q := domain.ClampQuantity(int64(it.Quantity))
	if fm == formatCluster {
		return []property.Property{property.NewUInt32(PropItemQuantity, uint32(q-1))}
	}
	if sparse && q == domain.MinQuantity {
		return nil
	}
	return []property.Property{property.NewInt(PropItemQuantity, q)}
}

func (quantityField) encodeJSON(it *domain.Item, r Record) {
	r[KeyQuantity] = domain.ClampQuantity(int64(it.Quantity))
}

// qualityField is the single-byte quality index
type qualityField struct{}

func (qualityField) decode(src property.Container, _ format, it *domain.Item) {
	it.Quality = uint8(property.Integer(src, PropItemQuality, 0, 0))
}

func (qualityField) decodeJSON(r Record, it *domain.Item) {
	it.Quality = uint8(r.Int(KeyQuality, 0))
}

func (qualityField) emit(it *domain.Item, _ format, sparse bool) []property.Property {
	if sparse && it.Quality == 0 {
		return nil
	}
	return []property.Property{property.NewByte(PropItemQuality, it.Quality)}
}

func (qualityField) encodeJSON(it *domain.Item, r Record) {
	r[KeyQuality] = it.Quality
}

// arrayField is a fixed-size integer array. Absent indices decode to zero.
type arrayField struct {
	name string
	key  string
	kind property.Kind
	size int
	get  func(it *domain.Item, i int) int64
	set  func(it *domain.Item, i int, v int64)
}

func (f arrayField) decode(src property.Container, _ format, it *domain.Item) {
	for i := 0; i < f.size; i++ {
		f.set(it, i, property.Integer(src, f.name, i, 0))
	}
}

func (f arrayField) decodeJSON(r Record, it *domain.Item) {
	for i := 0; i < f.size; i++ {
		f.set(it, i, r.Int(indexedKey(f.key, i), 0))
	}
}

func (f arrayField) emit(it *domain.Item, _ format, sparse bool) []property.Property {
	props := make([]property.Property, 0, f.size)
	for i := 0; i < f.size; i++ {
		v := f.get(it, i)
		if sparse && v == 0 {
			continue
		}
		props = append(props, integerProperty(f.kind, f.name, v).At(i))
	}
	return props
}

func (f arrayField) encodeJSON(it *domain.Item, r Record) {
	for i := 0; i < f.size; i++ {
		r[indexedKey(f.key, i)] = f.get(it, i)
	}
}

// constField is a protocol constant written to cluster entries only
type constField struct {
	prop property.Property
}

func (constField) decode(property.Container, format, *domain.Item) {}

func (constField) decodeJSON(Record, *domain.Item) {}

func (c constField) emit(_ *domain.Item, fm format, _ bool) []property.Property {
	if fm != formatCluster {
		return nil
	}
	return []property.Property{c.prop}
}

func (constField) encodeJSON(*domain.Item, Record) {}

func integerProperty(kind property.Kind, name string, v int64) property.Property {
	switch kind {
	case property.KindByte:
		return property.NewByte(name, uint8(v))
	case property.KindInt16:
		return property.NewInt16(name, int16(v))
	case property.KindUInt16:
		return property.NewUInt16(name, uint16(v))
	case property.KindUInt32:
		return property.NewUInt32(name, uint32(v))
	}
	return property.NewInt(name, int32(v))
}

// ==================== Policy Table ====================

var (
	fieldCanEquip = flagField{
		names: [2]string{PropAllowEquipping, ""},
		key:   KeyCanEquip,
		def:   true,
		get:   func(it *domain.Item) bool { return it.CanEquip },
		set:   func(it *domain.Item, v bool) { it.CanEquip = v },
	}
	fieldCanSlot = flagField{
		names: [2]string{PropCanSlot, PropIsSlot},
		key:   KeyCanSlot,
		def:   true,
		get:   func(it *domain.Item) bool { return it.CanSlot },
		set:   func(it *domain.Item, v bool) { it.CanSlot = v },
	}
	fieldIsEngram = flagField{
		names: [2]string{PropIsEngram, PropIsEngram},
		key:   KeyIsEngram,
		get:   func(it *domain.Item) bool { return it.IsEngram },
		set:   func(it *domain.Item, v bool) { it.IsEngram = v },
	}
	fieldIsBlueprint = flagField{
		names: [2]string{PropIsBlueprint, PropIsBlueprint},
		key:   KeyIsBlueprint,
		get:   func(it *domain.Item) bool { return it.IsBlueprint },
		set:   func(it *domain.Item, v bool) { it.IsBlueprint = v },
	}
	fieldCanRemove = flagField{
		names: [2]string{PropAllowRemoval, PropAllowRemoval},
		key:   KeyCanRemove,
		def:   true,
		get:   func(it *domain.Item) bool { return it.CanRemove },
		set:   func(it *domain.Item, v bool) { it.CanRemove = v },
	}
	fieldCanRemoveFromCluster = flagField{
		names: [2]string{"", PropAllowRemovalFromSteam},
		key:   KeyCanRemoveFromCluster,
		def:   true,
		get:   func(it *domain.Item) bool { return it.CanRemoveFromCluster },
		set:   func(it *domain.Item, v bool) { it.CanRemoveFromCluster = v },
	}
	fieldIsHidden = flagField{
		names: [2]string{PropHideFromDisplay, PropHideFromDisplay},
		key:   KeyIsHidden,
		get:   func(it *domain.Item) bool { return it.IsHidden },
		set:   func(it *domain.Item, v bool) { it.IsHidden = v },
	}

	fieldQuantity = quantityField{}
	fieldQuality  = qualityField{}

	fieldCustomName = textField{
		name: PropCustomName,
		key:  KeyCustomName,
		get:  func(it *domain.Item) string { return it.CustomName },
		set:  func(it *domain.Item, v string) { it.CustomName = v },
	}
	fieldCustomDescription = textField{
		name: PropCustomDescription,
		key:  KeyCustomDescription,
		get:  func(it *domain.Item) string { return it.CustomDescription },
		set:  func(it *domain.Item, v string) { it.CustomDescription = v },
	}

	fieldDurability = floatField{
		names: [2]string{PropSavedDurability, PropItemDurability},
		key:   KeyDurability,
		get:   func(it *domain.Item) float32 { return it.Durability },
		set:   func(it *domain.Item, v float32) { it.Durability = v },
	}
	fieldRating = floatField{
		names: [2]string{PropItemRating, PropItemRating},
		key:   KeyRating,
		get:   func(it *domain.Item) float32 { return it.Rating },
		set:   func(it *domain.Item, v float32) { it.Rating = v },
	}

	fieldItemStatValues = arrayField{
		name: PropItemStatValues,
		key:  KeyItemStatsValue,
		kind: property.KindUInt16,
		size: domain.StatCount,
		get:  func(it *domain.Item, i int) int64 { return int64(it.ItemStatValues[i]) },
		set:  func(it *domain.Item, i int, v int64) { it.ItemStatValues[i] = uint16(v) },
	}
	fieldItemColors = arrayField{
		name: PropItemColorID,
		key:  KeyItemColor,
		kind: property.KindInt16,
		size: domain.ColorSlotCount,
		get:  func(it *domain.Item, i int) int64 { return int64(it.ItemColors[i]) },
		set:  func(it *domain.Item, i int, v int64) { it.ItemColors[i] = int16(v) },
	}
	fieldPreSkinItemColors = arrayField{
		name: PropPreSkinItemColorID,
		key:  KeyPreSkinItemColor,
		kind: property.KindInt16,
		size: domain.ColorSlotCount,
		get:  func(it *domain.Item, i int) int64 { return int64(it.PreSkinItemColors[i]) },
		set:  func(it *domain.Item, i int, v int64) { it.PreSkinItemColors[i] = int16(v) },
	}
	fieldEggLevelups = arrayField{
		name: PropEggLevelups,
		key:  KeyEggLevelup,
		kind: property.KindByte,
		size: domain.AttributeCount,
		get:  func(it *domain.Item, i int) int64 { return int64(it.EggLevelups[i]) },
		set:  func(it *domain.Item, i int, v int64) { it.EggLevelups[i] = uint8(v) },
	}
	fieldEggColors = arrayField{
		name: PropEggColors,
		key:  KeyEggColor,
		kind: property.KindByte,
		size: domain.ColorSlotCount,
		get:  func(it *domain.Item, i int) int64 { return int64(it.EggColors[i]) },
		set:  func(it *domain.Item, i int, v int64) { it.EggColors[i] = uint8(v) },
	}
)

// itemFields holds every semantic field, read by all three decoders
var itemFields = []field{
	fieldCanEquip,
	fieldCanSlot,
	fieldIsEngram,
	fieldIsBlueprint,
	fieldCanRemove,
	fieldCanRemoveFromCluster,
	fieldIsHidden,
	fieldQuantity,
	fieldCustomName,
	fieldCustomDescription,
	fieldDurability,
	fieldRating,
	fieldQuality,
	fieldItemStatValues,
	fieldItemColors,
	fieldPreSkinItemColors,
	fieldEggLevelups,
	fieldEggColors,
}

// liveLayout is the emission order of a new save object
var liveLayout = []field{
	fieldCanEquip,
	fieldCanSlot,
	fieldIsEngram,
	fieldIsBlueprint,
	fieldCanRemove,
	fieldIsHidden,
	fieldQuantity,
	fieldCustomName,
	fieldCustomDescription,
	fieldDurability,
	fieldRating,
	fieldQuality,
	fieldItemStatValues,
	fieldItemColors,
	fieldPreSkinItemColors,
	fieldEggLevelups,
	fieldEggColors,
}

// clusterLayout is the emission order of the tribute item block after
// ItemArchetype and ItemId. The game reads it positionally.
var clusterLayout = []field{
	fieldIsBlueprint,
	fieldIsEngram,
	constField{property.NewBool(PropIsCustomRecipe, false)},
	constField{property.NewBool(PropIsFoodRecipe, false)},
	constField{property.NewBool(PropIsRepairing, false)},
	fieldCanRemove,
	fieldCanRemoveFromCluster,
	fieldIsHidden,
	constField{property.NewBool(PropFromSteamInventory, false)},
	constField{property.NewBool(PropFromAllClusters, false)},
	constField{property.NewBool(PropIsEquipped, false)},
	fieldCanSlot,
	constField{property.NewUInt32(PropExpirationTime, 0)},
	fieldQuantity,
	fieldDurability,
	fieldRating,
	fieldQuality,
	fieldItemStatValues,
	fieldItemColors,
	constField{property.NewObject(PropItemCustomClass, property.IDReference(property.NoObject, property.ReferenceLengthLong))},
	constField{property.NewObject(PropItemSkinTemplate, property.IDReference(property.NoObject, property.ReferenceLengthLong))},
	constField{property.NewFloat(PropCraftingSkill, 0)},
	fieldCustomName,
	fieldCustomDescription,
	constField{property.NewDouble(PropNextSpoilingTime, 0)},
	constField{property.NewDouble(PropLastSpoilingTime, 0)},
	constField{property.NewObject(PropLastOwnerPlayer, property.IDReference(property.NoObject, property.ReferenceLengthShort))},
	constField{property.NewDouble(PropLastDurabilityDecrease, 0)},
	constField{property.NewVector(PropOriginalDropLocation, property.Vector{})},
	fieldPreSkinItemColors,
	fieldEggLevelups,
	constField{property.NewFloat(PropEggIneffectiveness, 0)},
	fieldEggColors,
	constField{property.NewByte(PropItemVersion, 0)},
	constField{property.NewInt(PropCustomItemID, 0)},
	constField{property.NewArray(PropSteamUserItemID, property.KindUInt64, nil)},
}
