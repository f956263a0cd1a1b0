package item

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/osse101/ArkTools_Go/internal/domain"
)

const (
	testBlueprintPath = "/Game/PrimalEarth/CoreBlueprints/Weapons/PrimalItem_WeaponGun.PrimalItem_WeaponGun_C"
	testClassName     = "PrimalItem_WeaponGun_C"
	testArchetypePath = domain.BlueprintClassPrefix + testBlueprintPath
)

var testNow = time.Unix(1_700_000_000, 0)

// sampleItem returns an item with every field away from its default
func sampleItem() *domain.Item {
	it := domain.NewItem()
	it.ClassName = testClassName
	it.BlueprintGeneratedClass = domain.BlueprintClassPrefix + testBlueprintPath
	it.CanSlot = false
	it.IsEngram = true
	it.IsBlueprint = true
	it.CanRemove = false
	it.IsHidden = true
	it.Quantity = 5
	it.CustomName = "Old Faithful"
	it.CustomDescription = "Never jams"
	it.Durability = 87.5
	it.Rating = 3.25
	it.Quality = 4
	it.ItemStatValues[1] = 120
	it.ItemStatValues[3] = 4500
	it.ItemColors[0] = 12
	it.ItemColors[5] = -1
	it.PreSkinItemColors[2] = 7
	it.EggLevelups[0] = 30
	it.EggLevelups[11] = 2
	it.EggColors[4] = 9
	return it
}

func parseRecord(t *testing.T, src string) Record {
	t.Helper()
	var r Record
	require.NoError(t, json.Unmarshal([]byte(src), &r))
	return r
}

func fixedClock() time.Time {
	return testNow
}
