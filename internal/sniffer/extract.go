package sniffer

import "github.com/fairwaydata/roundsniff/internal/jsonval"

// roundAliases are the wrapper fields tried, in order, when a file's top
// level is an object. The first alias present wins, even if its value is
// empty or not an array.
var roundAliases = [...]string{"rounds", "data", "items"}

// extractRecords resolves a parsed document's record sequence and returns up
// to maxRecords object records from it. Entries that are not objects are
// dropped and counted in discarded. A document with no usable sequence yields
// (nil, 0, false); callers treat that as a skip, not an error.
func extractRecords(doc jsonval.Value, maxRecords int) (records []jsonval.Value, discarded int, ok bool) {
	seq := resolveSequence(doc)
	if len(seq) == 0 {
		return nil, 0, false
	}

	if len(seq) > maxRecords {
		seq = seq[:maxRecords]
	}
	for _, r := range seq {
		if r.Kind != jsonval.Object {
			discarded++
			continue
		}
		records = append(records, r)
	}
	return records, discarded, true
}

// resolveSequence finds the record sequence of one document: the document
// itself when it is an array, otherwise the first round alias present on a
// top-level object. Anything else resolves to nothing.
func resolveSequence(doc jsonval.Value) []jsonval.Value {
	switch doc.Kind {
	case jsonval.Array:
		return doc.Arr
	case jsonval.Object:
		for _, alias := range roundAliases {
			if v, ok := doc.Get(alias); ok {
				if v.Kind == jsonval.Array {
					return v.Arr
				}
				// Alias present but not an array: resolved, just unusable.
				return nil
			}
		}
	}
	return nil
}
