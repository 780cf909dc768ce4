package sniffer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairwaydata/roundsniff/internal/jsonval"
)

func addRecord(t *testing.T, agg *Aggregate, doc string) {
	t.Helper()
	v, err := jsonval.Parse([]byte(doc))
	require.NoError(t, err)
	agg.Add(v)
}

func TestAggregateCounts(t *testing.T) {
	agg := NewAggregate(5)
	addRecord(t, agg, `{"player": "A", "score": 70}`)
	addRecord(t, agg, `{"player": "B", "score": 68, "course": "Old Course"}`)
	addRecord(t, agg, `{"player": "C"}`)

	assert.Equal(t, 3, agg.Count("player"))
	assert.Equal(t, 2, agg.Count("score"))
	assert.Equal(t, 1, agg.Count("course"))
	assert.Equal(t, 0, agg.Count("never_seen"))
}

func TestAggregateKeysInEncounterOrder(t *testing.T) {
	agg := NewAggregate(5)
	addRecord(t, agg, `{"z_last_alpha": 1, "m_mid": 2}`)
	addRecord(t, agg, `{"a_first_alpha": 3, "z_last_alpha": 4}`)

	assert.Equal(t, []string{"z_last_alpha", "m_mid", "a_first_alpha"}, agg.Keys())
}

func TestAggregateSampleCap(t *testing.T) {
	agg := NewAggregate(5)
	for i := 1; i <= 8; i++ {
		addRecord(t, agg, fmt.Sprintf(`{"score": %d}`, i*10))
	}

	samples := agg.Samples("score")
	require.Len(t, samples, 5)

	// The first five occurrence values, in encounter order.
	for i, want := range []string{"10", "20", "30", "40", "50"} {
		assert.Equal(t, want, samples[i].Num.String())
	}
}

func TestAggregateSamplesStoredAsIs(t *testing.T) {
	agg := NewAggregate(5)
	addRecord(t, agg, `{"meta": {"weather": "wind"}, "holes": [4, 5, 3]}`)

	meta := agg.Samples("meta")
	require.Len(t, meta, 1)
	assert.Equal(t, jsonval.Object, meta[0].Kind)

	holes := agg.Samples("holes")
	require.Len(t, holes, 1)
	assert.Equal(t, jsonval.Array, holes[0].Kind)
	assert.Len(t, holes[0].Arr, 3)
}

func TestShapeFingerprintIsOrderIndependent(t *testing.T) {
	agg := NewAggregate(5)
	addRecord(t, agg, `{"player": "A", "score": 70}`)
	addRecord(t, agg, `{"score": 68, "player": "B"}`)

	shapes := agg.TopShapes(5)
	require.Len(t, shapes, 1)
	assert.Equal(t, 2, shapes[0].Count)
	assert.Equal(t, []string{"player", "score"}, shapes[0].Keys)
}

func TestShapeFingerprintSeparatesKeySets(t *testing.T) {
	agg := NewAggregate(5)
	addRecord(t, agg, `{"player": "A", "score": 70}`)
	addRecord(t, agg, `{"player": "B", "score": 68}`)
	addRecord(t, agg, `{"player": "C"}`)

	shapes := agg.TopShapes(5)
	require.Len(t, shapes, 2)
	assert.Equal(t, []string{"player", "score"}, shapes[0].Keys)
	assert.Equal(t, 2, shapes[0].Count)
	assert.Equal(t, []string{"player"}, shapes[1].Keys)
	assert.Equal(t, 1, shapes[1].Count)
}

func TestTopKeysRankingAndTies(t *testing.T) {
	agg := NewAggregate(5)
	addRecord(t, agg, `{"common": 1, "tie_one": 1, "tie_two": 1}`)
	addRecord(t, agg, `{"common": 2, "tie_one": 2, "tie_two": 2}`)
	addRecord(t, agg, `{"common": 3}`)

	top := agg.TopKeys(40)
	require.Len(t, top, 3)
	assert.Equal(t, KeyCount{Key: "common", Count: 3}, top[0])
	// Equal counts keep first-encounter order.
	assert.Equal(t, KeyCount{Key: "tie_one", Count: 2}, top[1])
	assert.Equal(t, KeyCount{Key: "tie_two", Count: 2}, top[2])
}

func TestTopKeysTruncates(t *testing.T) {
	agg := NewAggregate(5)
	for i := 0; i < 10; i++ {
		addRecord(t, agg, fmt.Sprintf(`{"k%d": 1}`, i))
	}

	assert.Len(t, agg.TopKeys(4), 4)
	assert.Len(t, agg.TopShapes(4), 4)
}

func TestAggregateEmpty(t *testing.T) {
	agg := NewAggregate(5)

	assert.Empty(t, agg.Keys())
	assert.Empty(t, agg.TopKeys(40))
	assert.Empty(t, agg.TopShapes(5))
	assert.Empty(t, agg.Samples("anything"))
}
