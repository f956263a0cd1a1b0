package domain

import "math"

// StatNames indexes ItemStatValues; its length fixes StatCount
var StatNames = [...]string{
	"generic_quality",
	"armor",
	"max_durability",
	"weapon_damage_percent",
	"weapon_clip_ammo",
	"hypothermal_insulation",
	"weight",
	"hyperthermal_insulation",
}

// AttributeNames indexes EggLevelups; its length fixes AttributeCount
var AttributeNames = [...]string{
	"health",
	"stamina",
	"torpidity",
	"oxygen",
	"food",
	"water",
	"temperature",
	"weight",
	"melee_damage",
	"movement_speed",
	"fortitude",
	"crafting_speed",
}

// Array sizes shared by every item format
const (
	StatCount      = len(StatNames)
	AttributeCount = len(AttributeNames)
	ColorSlotCount = 6
)

// Quantity bounds
const (
	MinQuantity = 1
	MaxQuantity = math.MaxInt32
)

// BlueprintClassPrefix precedes every blueprint asset path. Alone it marks an unset blueprint.
const BlueprintClassPrefix = "BlueprintGeneratedClass "
