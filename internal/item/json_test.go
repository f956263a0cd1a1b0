package item

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ArkTools_Go/internal/domain"
)

func TestToJSON(t *testing.T) {
	t.Run("dense keys", func(t *testing.T) {
		r := ToJSON(sampleItem())

		assert.Equal(t, testClassName, r[KeyClassName])
		assert.Equal(t, testBlueprintPath, r[KeyBlueprintGeneratedClass])
		assert.Equal(t, false, r[KeyCanSlot])
		assert.Contains(t, r, indexedKey(KeyItemStatsValue, domain.StatCount-1))
		assert.Contains(t, r, indexedKey(KeyEggLevelup, domain.AttributeCount-1))
		assert.Contains(t, r, indexedKey(KeyEggColor, domain.ColorSlotCount-1))
		assert.NotContains(t, r, KeyUploadOffset)
	})

	t.Run("unset blueprint omitted", func(t *testing.T) {
		it := domain.NewItem()
		it.ClassName = "Foo"
		it.UploadOffset = 30
		r := ToJSON(it)
		assert.NotContains(t, r, KeyBlueprintGeneratedClass)
		assert.Equal(t, int32(30), r[KeyUploadOffset])
	})

	t.Run("round trip through encoding/json", func(t *testing.T) {
		it := sampleItem()
		it.UploadOffset = -120

		data, err := json.Marshal(ToJSON(it))
		require.NoError(t, err)
		var r Record
		require.NoError(t, json.Unmarshal(data, &r))

		back, err := FromJSON(r)
		require.NoError(t, err)
		assert.Equal(t, it, back)
	})
}

func TestRecordAccessors(t *testing.T) {
	r := parseRecord(t, `{
		"flag": true,
		"text": "x",
		"big": 9007199254740993,
		"frac": 2.9,
		"neg": -2.9,
		"null": null,
		"str": "12",
		"edge": 9223372036854775808,
		"huge": 1e300
	}`)

	assert.True(t, r.Bool("flag", false))
	assert.True(t, r.Bool("text", true))
	assert.Equal(t, "x", r.String("text", "d"))
	assert.Equal(t, "d", r.String("flag", "d"))
	assert.Equal(t, int64(9007199254740993), r.Int("big", 0))
	assert.Equal(t, int64(2), r.Int("frac", 0))
	assert.Equal(t, int64(-2), r.Int("neg", 0))
	assert.Equal(t, int64(7), r.Int("null", 7))
	assert.Equal(t, int64(7), r.Int("str", 7))
	assert.Equal(t, int64(7), r.Int("missing", 7))
	assert.Equal(t, int64(7), r.Int("edge", 7), "2^63 does not fit int64")
	assert.Equal(t, int64(7), r.Int("huge", 7))
	assert.Equal(t, float32(2.9), r.Float("frac", 0))
	assert.Equal(t, float32(1), r.Float("null", 1))
	assert.Equal(t, float32(1), r.Float("str", 1))
}
