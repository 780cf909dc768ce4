package sniffer

import (
	"sort"
	"strings"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/fairwaydata/roundsniff/internal/jsonval"
)

// shapeSep joins sorted keys into a fingerprint. The unit separator cannot
// collide with anything a sane field name contains.
const shapeSep = "\x1f"

// KeyCount pairs a key with its occurrence count.
type KeyCount struct {
	Key   string
	Count int
}

// ShapeCount is one record shape: the sorted key set and how many sampled
// records had exactly that set.
type ShapeCount struct {
	Keys  []string
	Count int
}

// Aggregate holds the counters for one run. Both counters are insertion
// ordered: ranking ties break by first encounter, and the sample-value
// section walks keys in the order they first appeared.
type Aggregate struct {
	keyCounts  *orderedmap.OrderedMap[string, int]
	samples    map[string][]jsonval.Value
	shapes     *orderedmap.OrderedMap[string, *ShapeCount]
	maxSamples int
}

// NewAggregate returns an empty Aggregate keeping up to maxSamples example
// values per key.
func NewAggregate(maxSamples int) *Aggregate {
	return &Aggregate{
		keyCounts:  orderedmap.NewOrderedMap[string, int](),
		samples:    make(map[string][]jsonval.Value),
		shapes:     orderedmap.NewOrderedMap[string, *ShapeCount](),
		maxSamples: maxSamples,
	}
}

// Add folds one object record into the counters.
func (a *Aggregate) Add(rec jsonval.Value) {
	members := rec.Members()

	keys := make([]string, len(members))
	for i, m := range members {
		keys[i] = m.Key
	}
	sort.Strings(keys)

	fp := strings.Join(keys, shapeSep)
	if sc, ok := a.shapes.Get(fp); ok {
		sc.Count++
	} else {
		a.shapes.Set(fp, &ShapeCount{Keys: keys, Count: 1})
	}

	for _, m := range members {
		n, _ := a.keyCounts.Get(m.Key)
		a.keyCounts.Set(m.Key, n+1)

		if len(a.samples[m.Key]) < a.maxSamples {
			a.samples[m.Key] = append(a.samples[m.Key], m.Value)
		}
	}
}

// Keys returns every distinct key seen, in first-encounter order.
func (a *Aggregate) Keys() []string {
	keys := make([]string, 0, a.keyCounts.Len())
	for el := a.keyCounts.Front(); el != nil; el = el.Next() {
		keys = append(keys, el.Key)
	}
	return keys
}

// Count returns the occurrence count for one key.
func (a *Aggregate) Count(key string) int {
	n, _ := a.keyCounts.Get(key)
	return n
}

// Samples returns the cached example values for key, in first-seen order.
func (a *Aggregate) Samples(key string) []jsonval.Value {
	return a.samples[key]
}

// TopKeys returns up to n keys ranked by count, descending. Equal counts keep
// first-encounter order.
func (a *Aggregate) TopKeys(n int) []KeyCount {
	out := make([]KeyCount, 0, a.keyCounts.Len())
	for el := a.keyCounts.Front(); el != nil; el = el.Next() {
		out = append(out, KeyCount{Key: el.Key, Count: el.Value})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })

	if len(out) > n {
		out = out[:n]
	}
	return out
}

// TopShapes returns up to n shapes ranked by count, descending. Equal counts
// keep first-encounter order. Key slices are shared, not copied.
func (a *Aggregate) TopShapes(n int) []ShapeCount {
	out := make([]ShapeCount, 0, a.shapes.Len())
	for el := a.shapes.Front(); el != nil; el = el.Next() {
		out = append(out, *el.Value)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })

	if len(out) > n {
		out = out[:n]
	}
	return out
}
