package item

import "math"

// ==================== Property Names ====================

// Boolean flags
const (
	PropAllowEquipping        = "bAllowEquppingItem"
	PropCanSlot               = "bCanSlot"
	PropIsSlot                = "bIsSlot"
	PropIsEngram              = "bIsEngram"
	PropIsBlueprint           = "bIsBlueprint"
	PropAllowRemoval          = "bAllowRemovalFromInventory"
	PropAllowRemovalFromSteam = "bAllowRemovalFromSteamInventory"
	PropHideFromDisplay       = "bHideFromInventoryDisplay"
	PropIsCustomRecipe        = "bIsCustomRecipe"
	PropIsFoodRecipe          = "bIsFoodRecipe"
	PropIsRepairing           = "bIsRepairing"
	PropFromSteamInventory    = "bFromSteamInventory"
	PropFromAllClusters       = "bIsFromAllClustersInventory"
	PropIsEquipped            = "bIsEquipped"
)

// Scalars and arrays
const (
	PropItemQuantity       = "ItemQuantity"
	PropCustomName         = "CustomItemName"
	PropCustomDescription  = "CustomItemDescription"
	PropSavedDurability    = "SavedDurability"
	PropItemDurability     = "ItemDurability"
	PropItemRating         = "ItemRating"
	PropItemQuality        = "ItemQualityIndex"
	PropItemStatValues     = "ItemStatValues"
	PropItemColorID        = "ItemColorID"
	PropPreSkinItemColorID = "PreSkinItemColorID"
	PropEggLevelups        = "EggNumberOfLevelUpPointsApplied"
	PropEggColors          = "EggColorSetIndices"
)

// Identity and references
const (
	PropItemID         = "ItemId"
	PropItemID1        = "ItemID1"
	PropItemID2        = "ItemID2"
	PropItemArchetype  = "ItemArchetype"
	PropOwnerInventory = "OwnerInventory"
)

// Cluster-only protocol fields
const (
	PropArkTributeItem         = "ArkTributeItem"
	PropVersion                = "Version"
	PropUploadTime             = "UploadTime"
	PropExpirationTime         = "ExpirationTimeUTC"
	PropItemCustomClass        = "ItemCustomClass"
	PropItemSkinTemplate       = "ItemSkinTemplate"
	PropCraftingSkill          = "CraftingSkill"
	PropNextSpoilingTime       = "NextSpoilingTime"
	PropLastSpoilingTime       = "LastSpoilingTime"
	PropLastOwnerPlayer        = "LastOwnerPlayer"
	PropLastDurabilityDecrease = "LastAutoDurabilityDecreaseTime"
	PropOriginalDropLocation   = "OriginalItemDropLocation"
	PropEggIneffectiveness     = "EggTamedIneffectivenessModifier"
	PropItemVersion            = "ItemVersion"
	PropCustomItemID           = "CustomItemID"
	PropSteamUserItemID        = "SteamUserItemID"
)

// Struct type names
const (
	StructItemNetInfo = "ItemNetInfo"
	StructItemNetID   = "ItemNetID"
)

// ClusterVersion is the format version stamped on every uploaded entry
const ClusterVersion float32 = 2.0

// ==================== JSON Keys ====================

const (
	KeyClassName               = "className"
	KeyBlueprintGeneratedClass = "blueprintGeneratedClass"
	KeyCanEquip                = "canEquip"
	KeyCanSlot                 = "canSlot"
	KeyIsEngram                = "isEngram"
	KeyIsBlueprint             = "isBlueprint"
	KeyCanRemove               = "canRemove"
	KeyCanRemoveFromCluster    = "canRemoveFromCluster"
	KeyIsHidden                = "isHidden"
	KeyQuantity                = "quantity"
	KeyCustomName              = "customName"
	KeyCustomDescription       = "customDescription"
	KeyDurability              = "durability"
	KeyRating                  = "rating"
	KeyQuality                 = "quality"
	KeyItemStatsValue          = "itemStatsValue"
	KeyItemColor               = "itemColor"
	KeyPreSkinItemColor        = "preSkinItemColor"
	KeyEggLevelup              = "eggLevelup"
	KeyEggColor                = "eggColor"
	KeyUploadOffset            = "uploadOffset"
)

// ==================== Limits ====================

const (
	// MaxItemIDAttempts bounds the redraws when looking for a free item id
	MaxItemIDAttempts = 1 << 16

	// firstNameInstance is the smallest name suffix handed out
	firstNameInstance int32 = 1

	// defaultNameLimit ends name probing at the top of the suffix range
	defaultNameLimit int32 = math.MaxInt32
)

// ==================== Error Formats ====================

const (
	ErrFmtMissingField        = "%w: %s"
	ErrFmtUnresolvedBlueprint = "%w: item %s"
	ErrFmtExhaustedNameSpace  = "%w: class %s"
	ErrFmtExhaustedIDSpace    = "%w after %d attempts"
)
