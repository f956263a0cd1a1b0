package transfer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osse101/ArkTools_Go/internal/domain"
	"github.com/osse101/ArkTools_Go/internal/item"
	"github.com/osse101/ArkTools_Go/internal/property"
	"github.com/osse101/ArkTools_Go/internal/utils"
)

const testBlueprint = "/Game/PrimalEarth/CoreBlueprints/Items/PrimalItem_Foo.PrimalItem_Foo_C"

// Object ids in the archive built by newTestArchive
const (
	inventoryA  int32 = 0
	inventoryB  int32 = 1
	existingFoo int32 = 2
	existingID        = uint64(7)
)

// newTestArchive returns two inventories and one Foo item with id 7 in the first
func newTestArchive(t *testing.T) *property.Archive {
	t.Helper()
	archive := &property.Archive{}
	for i := 0; i < 2; i++ {
		inv := property.NewGameObject(property.NewName("PrimalInventoryComponent"))
		inv.Names = []property.Name{property.NameWithInstance("PrimalInventoryComponent", int32(i+1))}
		archive.Append(inv)
	}

	it := domain.NewItem()
	it.ClassName = "Foo"
	obj, err := item.NewEncoder(utils.NewScriptedSource(existingID)).ToGameObject(it, nil, inventoryA)
	require.NoError(t, err)
	require.Equal(t, existingFoo, archive.Append(obj))
	return archive
}

func newTestService(random utils.RandomSource, opts ...item.EncoderOption) Service {
	return NewService(item.NewEncoder(random, opts...), CacheConfig{Size: 8})
}

func record(className string, kv ...any) item.Record {
	r := item.Record{}
	if className != "" {
		r[item.KeyClassName] = className
	}
	for i := 0; i+1 < len(kv); i += 2 {
		r[kv[i].(string)] = kv[i+1]
	}
	return r
}
