package domain

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewItemDefaults(t *testing.T) {
	it := NewItem()

	assert.True(t, it.CanEquip)
	assert.True(t, it.CanSlot)
	assert.True(t, it.CanRemove)
	assert.True(t, it.CanRemoveFromCluster)
	assert.False(t, it.IsEngram)
	assert.False(t, it.IsBlueprint)
	assert.False(t, it.IsHidden)
	assert.Equal(t, int32(1), it.Quantity)
	assert.False(t, it.HasBlueprint())
	assert.Len(t, it.ItemStatValues, StatCount)
	assert.Len(t, it.EggLevelups, AttributeCount)
}

func TestBlueprintPath(t *testing.T) {
	it := NewItem()
	it.BlueprintGeneratedClass = BlueprintClassPrefix + "/Game/Items/PrimalItem_Foo.PrimalItem_Foo_C"

	assert.True(t, it.HasBlueprint())
	assert.Equal(t, "/Game/Items/PrimalItem_Foo.PrimalItem_Foo_C", it.BlueprintPath())

	it.BlueprintGeneratedClass = ""
	assert.False(t, it.HasBlueprint())
}

func TestClampQuantity(t *testing.T) {
	tests := []struct {
		in   int64
		want int32
	}{
		{-5, 1},
		{0, 1},
		{1, 1},
		{42, 42},
		{math.MaxInt64, math.MaxInt32},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, ClampQuantity(tt.in))
		})
	}
}

func TestItemLogValue(t *testing.T) {
	it := NewItem()
	it.ClassName = "PrimalItemArmor_Hat"
	it.ItemStatValues[1] = 250

	v := it.LogValue()
	assert.Equal(t, slog.KindGroup, v.Kind())

	keys := map[string]bool{}
	for _, a := range v.Group() {
		keys[a.Key] = true
	}
	assert.True(t, keys["class"])
	assert.True(t, keys["armor"])
	assert.False(t, keys["weight"])
}

func TestIsBatchFatal(t *testing.T) {
	assert.True(t, IsBatchFatal(fmt.Errorf("%w: Foo", ErrExhaustedNameSpace)))
	assert.True(t, IsBatchFatal(ErrExhaustedIDSpace))
	assert.False(t, IsBatchFatal(ErrUnresolvedBlueprint))
	assert.False(t, IsBatchFatal(errors.New("other")))
}
