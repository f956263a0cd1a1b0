package transfer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ArkTools_Go/internal/domain"
	"github.com/osse101/ArkTools_Go/internal/item"
	"github.com/osse101/ArkTools_Go/internal/property"
	"github.com/osse101/ArkTools_Go/internal/utils"
)

func TestUploadToCluster(t *testing.T) {
	ctx := context.Background()

	t.Run("per-item failures do not stop the batch", func(t *testing.T) {
		svc := newTestService(utils.NewSeededSource(1))
		records := []item.Record{
			record("PrimalItem_Foo_C", item.KeyBlueprintGeneratedClass, testBlueprint, item.KeyQuantity, 4),
			record("", item.KeyQuantity, 2),
			record("PrimalItem_Bar_C"),
			record("PrimalItem_Foo_C", item.KeyBlueprintGeneratedClass, testBlueprint),
		}

		result, err := svc.UploadToCluster(ctx, records)
		require.NoError(t, err)
		assert.Len(t, result.Entries, 2)
		require.Len(t, result.Failures, 2)

		assert.Equal(t, 1, result.Failures[0].Position)
		assert.ErrorIs(t, result.Failures[0], domain.ErrMissingMandatoryField)
		assert.Equal(t, 2, result.Failures[1].Position)
		assert.Equal(t, "PrimalItem_Bar_C", result.Failures[1].ClassName)
		assert.ErrorIs(t, result.Failures[1], domain.ErrUnresolvedBlueprint)
		assert.Contains(t, result.Failures[1].Error(), "PrimalItem_Bar_C")

		first, err := item.FromClusterEntry(result.Entries[0])
		require.NoError(t, err)
		assert.Equal(t, int32(4), first.Quantity)
	})

	t.Run("fatal encoder error aborts", func(t *testing.T) {
		enc := new(MockEncoder)
		enc.On("ToCluster", mock.Anything).Return(property.NewList(), nil).Once()
		enc.On("ToCluster", mock.Anything).Return(nil, domain.ErrExhaustedIDSpace).Once()
		svc := NewService(enc, CacheConfig{})

		records := []item.Record{record("A"), record("B"), record("C")}
		result, err := svc.UploadToCluster(ctx, records)
		assert.ErrorIs(t, err, domain.ErrExhaustedIDSpace)
		assert.Len(t, result.Entries, 1)
		enc.AssertNumberOfCalls(t, "ToCluster", 2)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := newTestService(utils.NewSeededSource(1)).UploadToCluster(cctx, []item.Record{record("A")})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestAddToInventories(t *testing.T) {
	ctx := context.Background()

	t.Run("unique ids and names across the batch", func(t *testing.T) {
		archive := newTestArchive(t)
		random := utils.NewScriptedSource(existingID, 8, 8, 9, 8)
		svc := newTestService(random)

		result, err := svc.AddToInventories(ctx, archive, map[int32][]item.Record{
			inventoryA: {record("Foo", item.KeyQuantity, 3), record("Foo")},
			inventoryB: {record("Foo")},
		})
		require.NoError(t, err)
		assert.Empty(t, result.Failures)
		require.Len(t, result.Added, 3)
		require.Len(t, archive.Objects, 6)

		names := make([]string, 0, 3)
		for _, o := range result.Added {
			names = append(names, o.Names[0].String())
		}
		assert.Equal(t, []string{"Foo_2", "Foo_3", "Foo_4"}, names)

		idOf := func(o *property.Object) uint64 {
			id, ok := item.ItemIDOf(o)
			require.True(t, ok)
			return id
		}
		assert.Equal(t, uint64(8), idOf(result.Added[0]))
		assert.Equal(t, uint64(9), idOf(result.Added[1]))
		assert.Equal(t, uint64(8), idOf(result.Added[2]), "ids only need to be unique per inventory")

		assert.Len(t, archive.InventoryItems(inventoryA), 3)
		assert.Len(t, archive.InventoryItems(inventoryB), 1)
		assert.Equal(t, int32(3), result.Added[0].ID)
	})

	t.Run("unknown inventory is reported", func(t *testing.T) {
		archive := newTestArchive(t)
		svc := newTestService(utils.NewSeededSource(2))

		result, err := svc.AddToInventories(ctx, archive, map[int32][]item.Record{
			99:          {record("Foo")},
			existingFoo: {record("Foo")},
			inventoryB:  {record("Foo"), record("")},
		})
		require.NoError(t, err)
		assert.Len(t, result.Added, 1)
		require.Len(t, result.Failures, 3)

		assert.Equal(t, inventoryB, result.Failures[0].Inventory)
		assert.Equal(t, 1, result.Failures[0].Position)
		assert.ErrorIs(t, result.Failures[0], domain.ErrMissingMandatoryField)

		assert.Equal(t, existingFoo, result.Failures[1].Inventory)
		assert.Equal(t, NoPosition, result.Failures[1].Position)
		assert.ErrorIs(t, result.Failures[1], domain.ErrInventoryNotFound)
		assert.Equal(t, int32(99), result.Failures[2].Inventory)
		assert.Contains(t, result.Failures[2].Error(), "inventory 99")
	})

	t.Run("exhausted names abort the batch", func(t *testing.T) {
		archive := newTestArchive(t)
		svc := newTestService(utils.NewSeededSource(3), item.WithNameLimit(3))

		result, err := svc.AddToInventories(ctx, archive, map[int32][]item.Record{
			inventoryA: {record("Foo"), record("Foo"), record("Foo")},
		})
		assert.ErrorIs(t, err, domain.ErrExhaustedNameSpace)
		assert.True(t, domain.IsBatchFatal(err))
		assert.Len(t, result.Added, 1, "objects added before the abort stay")
		assert.Len(t, archive.Objects, 4)
	})
}

func TestRelease(t *testing.T) {
	ctx := context.Background()
	archive := newTestArchive(t)
	svc := newTestService(utils.NewScriptedSource(100, 101))

	_, err := svc.AddToInventories(ctx, archive, map[int32][]item.Record{
		inventoryA: {record("Foo")},
		inventoryB: {record("Foo")},
	})
	require.NoError(t, err)

	cache := svc.(*service).idSets
	assert.Equal(t, 2, cache.Len())

	svc.Release(archive)
	assert.Zero(t, cache.Len())
}

func TestImportCluster(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(utils.NewSeededSource(4))

	uploaded, err := svc.UploadToCluster(ctx, []item.Record{
		record("PrimalItem_Foo_C", item.KeyBlueprintGeneratedClass, testBlueprint, "itemColor_2", 5),
	})
	require.NoError(t, err)

	entries := append(uploaded.Entries, property.NewList(property.NewFloat(item.PropVersion, item.ClusterVersion)))
	records, failures := svc.ImportCluster(ctx, entries)

	require.Len(t, records, 1)
	assert.Equal(t, "PrimalItem_Foo_C", records[0][item.KeyClassName])
	assert.Equal(t, testBlueprint, records[0][item.KeyBlueprintGeneratedClass])
	assert.Equal(t, int64(5), records[0].Int("itemColor_2", 0))
	require.Len(t, failures, 1)
	assert.Equal(t, 1, failures[0].Position)
	assert.ErrorIs(t, failures[0], domain.ErrMissingMandatoryField)
	assert.Error(t, JoinFailures(failures))
	assert.NoError(t, JoinFailures(nil))
}

func TestExportInventory(t *testing.T) {
	ctx := context.Background()
	archive := newTestArchive(t)
	svc := newTestService(utils.NewSeededSource(5))

	_, err := svc.AddToInventories(ctx, archive, map[int32][]item.Record{
		inventoryA: {record("Bar", item.KeyQuantity, 12, item.KeyCustomName, "stack")},
	})
	require.NoError(t, err)

	records, err := svc.ExportInventory(ctx, archive, inventoryA)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Foo", records[0][item.KeyClassName])
	assert.Equal(t, "Bar", records[1][item.KeyClassName])
	assert.Equal(t, int64(12), records[1].Int(item.KeyQuantity, 0))
	assert.Equal(t, "stack", records[1].String(item.KeyCustomName, ""))
	assert.NotContains(t, records[1], item.KeyBlueprintGeneratedClass)

	empty, err := svc.ExportInventory(ctx, archive, inventoryB)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = svc.ExportInventory(ctx, archive, 42)
	assert.ErrorIs(t, err, domain.ErrInventoryNotFound)
	_, err = svc.ExportInventory(ctx, archive, existingFoo)
	assert.ErrorIs(t, err, domain.ErrInventoryNotFound)
}
