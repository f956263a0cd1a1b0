package item

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ArkTools_Go/internal/domain"
	"github.com/osse101/ArkTools_Go/internal/property"
	"github.com/osse101/ArkTools_Go/internal/utils"
)

func liveItem(t *testing.T, enc *Encoder, pool *Pool, class string, owner int32) *property.Object {
	t.Helper()
	it := domain.NewItem()
	it.ClassName = class
	obj, err := enc.ToGameObject(it, pool, owner)
	require.NoError(t, err)
	return obj
}

func TestNewPool(t *testing.T) {
	enc := NewEncoder(utils.NewScriptedSource(10, 20, 30))
	a := liveItem(t, enc, nil, "Foo", 1)
	b := liveItem(t, enc, nil, "Foo", 1)
	other := liveItem(t, enc, nil, "Bar", 2)
	inventory := property.NewGameObject(property.NewName("Inventory"))
	inventory.Names = []property.Name{property.NameWithInstance("Inventory", 4)}

	pool := NewPool([]*property.Object{a, b}, []*property.Object{a, other, inventory})

	assert.True(t, pool.HasItemID(10))
	assert.True(t, pool.HasItemID(20))
	assert.False(t, pool.HasItemID(30), "ids come from the target inventory only")
	assert.True(t, pool.HasName(property.NameWithInstance("Foo", 1)))
	assert.True(t, pool.HasName(property.NameWithInstance("Bar", 1)))
	assert.True(t, pool.HasName(property.NameWithInstance("Inventory", 4)))
}

func TestPoolReserve(t *testing.T) {
	enc := NewEncoder(utils.NewScriptedSource(1, 1, 2))
	pool := &Pool{}

	first := liveItem(t, enc, pool, "Foo", 0)
	pool.Reserve(first)
	second := liveItem(t, enc, pool, "Foo", 0)

	firstID, _ := ItemIDOf(first)
	secondID, _ := ItemIDOf(second)
	assert.Equal(t, uint64(1), firstID)
	assert.Equal(t, uint64(2), secondID)
	assert.Equal(t, "Foo_2", second.Names[0].String())
}

func TestNilPool(t *testing.T) {
	var pool *Pool
	assert.False(t, pool.HasItemID(1))
	assert.False(t, pool.HasName(property.NewName("Foo")))
}
