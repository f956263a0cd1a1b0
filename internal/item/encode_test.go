package item

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ArkTools_Go/internal/domain"
	"github.com/osse101/ArkTools_Go/internal/property"
	"github.com/osse101/ArkTools_Go/internal/utils"
)

func TestToCluster(t *testing.T) {
	t.Run("unresolved blueprint", func(t *testing.T) {
		it := domain.NewItem()
		it.ClassName = "PrimalItem_WeaponGun"

		entry, err := NewEncoder(utils.NewSeededSource(1)).ToCluster(it)
		assert.ErrorIs(t, err, domain.ErrUnresolvedBlueprint)
		assert.Contains(t, err.Error(), "PrimalItem_WeaponGun")
		assert.Nil(t, entry)
	})

	t.Run("entry envelope", func(t *testing.T) {
		it := sampleItem()
		it.UploadOffset = 3600
		enc := NewEncoder(utils.NewScriptedSource(0x0123456789ABCDEF), WithClock(fixedClock))

		entry, err := enc.ToCluster(it)
		require.NoError(t, err)

		props := entry.Properties()
		require.Len(t, props, 3)
		assert.Equal(t, PropArkTributeItem, props[0].Name)
		assert.Equal(t, StructItemNetInfo, props[0].StructType)
		assert.Equal(t, property.NewFloat(PropVersion, ClusterVersion), props[1])
		assert.Equal(t, property.NewInt(PropUploadTime, int32(testNow.Unix()+3600)), props[2])

		tribute, ok := property.Struct(entry, PropArkTributeItem)
		require.True(t, ok)
		netID, ok := property.Struct(tribute, PropItemID)
		require.True(t, ok)
		assert.Equal(t, int64(0x01234567), property.Integer(netID, PropItemID1, 0, -1))
		assert.Equal(t, int64(0x89ABCDEF), property.Integer(netID, PropItemID2, 0, -1))
	})

	t.Run("dense tribute block in game order", func(t *testing.T) {
		it := domain.NewItem()
		it.ClassName = testClassName
		it.BlueprintGeneratedClass = domain.BlueprintClassPrefix + testBlueprintPath

		entry, err := NewEncoder(utils.NewSeededSource(1)).ToCluster(it)
		require.NoError(t, err)
		tribute, _ := property.Struct(entry, PropArkTributeItem)
		props := tribute.Properties()

		assert.Equal(t, property.NewObject(PropItemArchetype, property.PathReference(testArchetypePath)), props[0])
		assert.Equal(t, PropItemID, props[1].Name)
		assert.Equal(t, PropIsBlueprint, props[2].Name)
		assert.Equal(t, PropSteamUserItemID, props[len(props)-1].Name)

		for _, name := range []string{
			PropIsBlueprint, PropIsEngram, PropIsCustomRecipe, PropIsFoodRecipe, PropIsRepairing,
			PropHideFromDisplay, PropFromSteamInventory, PropFromAllClusters, PropIsEquipped,
		} {
			assert.True(t, tribute.Has(name), name)
			assert.False(t, property.Bool(tribute, name, true), name)
		}
		assert.False(t, tribute.Has(PropAllowEquipping))
		assert.False(t, tribute.Has(PropSavedDurability))
		assert.Equal(t, int64(0), property.Integer(tribute, PropItemQuantity, 0, -1))

		counts := map[string]int{}
		for _, p := range props {
			counts[p.Name]++
		}
		assert.Equal(t, domain.StatCount, counts[PropItemStatValues])
		assert.Equal(t, domain.ColorSlotCount, counts[PropItemColorID])
		assert.Equal(t, domain.ColorSlotCount, counts[PropPreSkinItemColorID])
		assert.Equal(t, domain.AttributeCount, counts[PropEggLevelups])
		assert.Equal(t, domain.ColorSlotCount, counts[PropEggColors])
		assert.Equal(t, 1, counts[PropCustomName])

		owner, ok := property.Reference(tribute, PropLastOwnerPlayer)
		require.True(t, ok)
		assert.Equal(t, property.IDReference(property.NoObject, property.ReferenceLengthShort), owner)
		custom, ok := property.Reference(tribute, PropItemCustomClass)
		require.True(t, ok)
		assert.Equal(t, property.ReferenceLengthLong, custom.Length)
	})

	t.Run("quantity round trip", func(t *testing.T) {
		for _, q := range []int32{1, 2, 100, math.MaxInt32} {
			it := sampleItem()
			it.Quantity = q

			entry, err := NewEncoder(utils.NewSeededSource(7)).ToCluster(it)
			require.NoError(t, err)
			tribute, _ := property.Struct(entry, PropArkTributeItem)
			assert.Equal(t, int64(q-1), property.Integer(tribute, PropItemQuantity, 0, -1))

			back, err := FromClusterEntry(entry)
			require.NoError(t, err)
			assert.Equal(t, q, back.Quantity)
		}
	})

	t.Run("record round trip", func(t *testing.T) {
		it := sampleItem()
		it.CanEquip = true

		entry, err := NewEncoder(utils.NewSeededSource(3)).ToCluster(it)
		require.NoError(t, err)
		back, err := FromClusterEntry(entry)
		require.NoError(t, err)
		assert.Equal(t, it, back)
	})

	t.Run("cluster ids are not deduplicated", func(t *testing.T) {
		enc := NewEncoder(utils.NewScriptedSource(42))
		first, err := enc.ToCluster(sampleItem())
		require.NoError(t, err)
		second, err := enc.ToCluster(sampleItem())
		require.NoError(t, err)

		a, _ := property.Struct(first, PropArkTributeItem)
		b, _ := property.Struct(second, PropArkTributeItem)
		idA, _ := ItemIDOf(a)
		idB, _ := ItemIDOf(b)
		assert.Equal(t, idA, idB)
	})
}

func TestToGameObject(t *testing.T) {
	t.Run("default item is nearly empty", func(t *testing.T) {
		it := domain.NewItem()
		it.ClassName = "Foo"

		obj, err := NewEncoder(utils.NewSeededSource(1)).ToGameObject(it, nil, 17)
		require.NoError(t, err)

		props := obj.Properties.Properties()
		require.Len(t, props, 2)
		assert.Equal(t, PropItemID, props[0].Name)
		assert.Equal(t, property.NewObject(PropOwnerInventory, property.IDReference(17, property.ReferenceLengthLong)), props[1])
		assert.True(t, obj.IsItem)
		assert.Equal(t, property.ExtraDataZero{}, obj.ExtraData)
		assert.Equal(t, property.NewName("Foo"), obj.ClassName)
		assert.Equal(t, []property.Name{property.NameWithInstance("Foo", 1)}, obj.Names)

		owner, ok := obj.OwnerInventory()
		assert.True(t, ok)
		assert.Equal(t, int32(17), owner)
	})

	t.Run("sparse emission", func(t *testing.T) {
		it := domain.NewItem()
		it.ClassName = "Foo"
		it.CanEquip = false
		it.Quantity = 3
		it.ItemColors[2] = 5

		obj, err := NewEncoder(utils.NewSeededSource(1)).ToGameObject(it, nil, 0)
		require.NoError(t, err)

		assert.True(t, obj.Properties.Has(PropAllowEquipping))
		assert.False(t, obj.Properties.Has(PropCanSlot))
		assert.False(t, obj.Properties.Has(PropCustomName))
		assert.False(t, obj.Properties.Has(PropAllowRemovalFromSteam))
		assert.Equal(t, int64(3), property.Integer(obj, PropItemQuantity, 0, 0))

		color, ok := obj.Find(PropItemColorID, 2)
		require.True(t, ok)
		assert.Equal(t, property.KindInt16, color.Kind)
		_, ok = obj.Find(PropItemColorID, 0)
		assert.False(t, ok)
	})

	t.Run("decode round trip", func(t *testing.T) {
		it := sampleItem()
		it.BlueprintGeneratedClass = domain.BlueprintClassPrefix

		obj, err := NewEncoder(utils.NewSeededSource(9)).ToGameObject(it, nil, 4)
		require.NoError(t, err)
		assert.Equal(t, it, FromGameObject(obj))
	})

	t.Run("smallest free name instance", func(t *testing.T) {
		pool := &Pool{Names: NameSet{}}
		pool.Names.Add(property.NameWithInstance("Foo", 1))
		pool.Names.Add(property.NameWithInstance("Foo", 2))
		pool.Names.Add(property.NameWithInstance("Bar", 3))

		it := domain.NewItem()
		it.ClassName = "Foo"
		obj, err := NewEncoder(utils.NewSeededSource(1)).ToGameObject(it, pool, 0)
		require.NoError(t, err)
		assert.Equal(t, []property.Name{property.NameWithInstance("Foo", 3)}, obj.Names)
		assert.Equal(t, "Foo_3", obj.Names[0].String())
	})

	t.Run("id avoids existing ids", func(t *testing.T) {
		pool := &Pool{IDs: IDSet{7: {}, 9: {}}}
		random := utils.NewScriptedSource(7, 9, 7, 11)

		obj, err := NewEncoder(random).ToGameObject(sampleItem(), pool, 0)
		require.NoError(t, err)
		id, ok := ItemIDOf(obj)
		require.True(t, ok)
		assert.Equal(t, uint64(11), id)
		assert.Equal(t, 4, random.Draws())
	})

	t.Run("id redraw with mock source", func(t *testing.T) {
		existing := uint64(0xDEADBEEF00000001)
		pool := &Pool{IDs: IDSet{existing: {}}}
		random := new(MockRandomSource)
		random.On("Uint64").Return(existing).Once()
		random.On("Uint64").Return(uint64(0xFEEDFACE00000002)).Once()

		obj, err := NewEncoder(random).ToGameObject(sampleItem(), pool, 0)
		require.NoError(t, err)
		id, _ := ItemIDOf(obj)
		assert.Equal(t, uint64(0xFEEDFACE00000002), id)
		assert.False(t, pool.HasItemID(id), "pool is not modified by encode")
		random.AssertNumberOfCalls(t, "Uint64", 2)
	})

	t.Run("id space exhausted", func(t *testing.T) {
		pool := &Pool{IDs: IDSet{5: {}}}
		_, err := NewEncoder(utils.NewScriptedSource(5)).ToGameObject(sampleItem(), pool, 0)
		assert.ErrorIs(t, err, domain.ErrExhaustedIDSpace)
		assert.True(t, domain.IsBatchFatal(err))
	})

	t.Run("name space exhausted", func(t *testing.T) {
		pool := &Pool{Names: NameSet{}}
		for i := int32(1); i < 4; i++ {
			pool.Names.Add(property.NameWithInstance("Foo", i))
		}
		it := domain.NewItem()
		it.ClassName = "Foo"

		obj, err := NewEncoder(utils.NewSeededSource(1), WithNameLimit(4)).ToGameObject(it, pool, 0)
		assert.ErrorIs(t, err, domain.ErrExhaustedNameSpace)
		assert.Contains(t, err.Error(), "Foo")
		assert.True(t, domain.IsBatchFatal(err))
		assert.Nil(t, obj)
	})
}
