package domain

import (
	"log/slog"
	"strings"
)

// Item is the format-independent record of one inventory item.
// Every decoder builds one and every encoder consumes one; it carries no
// identity of its own, so item IDs and name tokens are assigned at encode time.
type Item struct {
	CanEquip             bool
	CanSlot              bool
	IsEngram             bool
	IsBlueprint          bool
	CanRemove            bool
	CanRemoveFromCluster bool
	IsHidden             bool

	ClassName string
	// BlueprintGeneratedClass holds the full asset path including the
	// "BlueprintGeneratedClass " prefix. The bare prefix means unset.
	BlueprintGeneratedClass string

	Quantity int32

	CustomName        string
	CustomDescription string

	Durability float32
	Rating     float32
	Quality    uint8

	ItemStatValues    [StatCount]uint16
	ItemColors        [ColorSlotCount]int16
	PreSkinItemColors [ColorSlotCount]int16
	EggLevelups       [AttributeCount]uint8
	EggColors         [ColorSlotCount]uint8

	// UploadOffset is added to the current time when stamping a cluster upload
	UploadOffset int32
}

// NewItem returns an item with every field at its format-neutral default
func NewItem() *Item {
	return &Item{
		CanEquip:                true,
		CanSlot:                 true,
		CanRemove:               true,
		CanRemoveFromCluster:    true,
		Quantity:                MinQuantity,
		BlueprintGeneratedClass: BlueprintClassPrefix,
	}
}

// HasBlueprint reports whether the blueprint path is set
func (i *Item) HasBlueprint() bool {
	return i.BlueprintGeneratedClass != "" && i.BlueprintGeneratedClass != BlueprintClassPrefix
}

// BlueprintPath returns the asset path without the class prefix
func (i *Item) BlueprintPath() string {
	return strings.TrimPrefix(i.BlueprintGeneratedClass, BlueprintClassPrefix)
}

// ClampQuantity applies the quantity floor shared by every format
func ClampQuantity(q int64) int32 {
	if q < MinQuantity {
		return MinQuantity
	}
	if q > MaxQuantity {
		return MaxQuantity
	}
	return int32(q)
}

// LogValue renders the item compactly for structured logs, naming non-zero stats
func (i *Item) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("class", i.ClassName),
		slog.Int("quantity", int(i.Quantity)),
	}
	if i.IsBlueprint {
		attrs = append(attrs, slog.Bool("blueprint", true))
	}
	for idx, v := range i.ItemStatValues {
		if v != 0 {
			attrs = append(attrs, slog.Int(StatNames[idx], int(v)))
		}
	}
	for idx, v := range i.EggLevelups {
		if v != 0 {
			attrs = append(attrs, slog.Int("egg_"+AttributeNames[idx], int(v)))
		}
	}
	return slog.GroupValue(attrs...)
}
