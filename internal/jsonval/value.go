// Package jsonval provides a tagged representation of arbitrary JSON values.
//
// It exists because the sniffer report exposes two things encoding/json's
// map[string]interface{} decoding cannot preserve: the document order of
// object members (keys are ranked by first encounter across records) and the
// original text of numbers (sample values are printed back, not re-rounded).
package jsonval

import (
	"encoding/json"
	"strings"
)

// Kind identifies which JSON type a Value holds.
type Kind uint8

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

// String returns the JSON type name for the kind.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "invalid"
	}
}

// Member is a single key/value pair of a JSON object, in document order.
type Member struct {
	Key   string
	Value Value
}

// Value is a JSON value of any kind. Exactly one payload field is meaningful,
// selected by Kind. The zero Value is null.
type Value struct {
	Kind Kind
	Bool bool
	Num  json.Number
	Str  string
	Arr  []Value
	Obj  []Member
}

// Get returns the value of the first member with the given key.
func (v Value) Get(key string) (Value, bool) {
	for _, m := range v.Obj {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}

// Keys returns the object's distinct keys in document order. Duplicate keys
// (legal JSON, collapsed by most parsers) are reported once.
func (v Value) Keys() []string {
	if len(v.Obj) == 0 {
		return nil
	}
	keys := make([]string, 0, len(v.Obj))
	seen := make(map[string]struct{}, len(v.Obj))
	for _, m := range v.Obj {
		if _, ok := seen[m.Key]; ok {
			continue
		}
		seen[m.Key] = struct{}{}
		keys = append(keys, m.Key)
	}
	return keys
}

// Members returns the object's members with duplicate keys collapsed: the
// first occurrence keeps its position, the last occurrence keeps its value.
func (v Value) Members() []Member {
	if len(v.Obj) == 0 {
		return nil
	}
	members := make([]Member, 0, len(v.Obj))
	index := make(map[string]int, len(v.Obj))
	for _, m := range v.Obj {
		if i, ok := index[m.Key]; ok {
			members[i].Value = m.Value
			continue
		}
		index[m.Key] = len(members)
		members = append(members, m)
	}
	return members
}

// String renders the value as compact JSON.
func (v Value) String() string {
	var b strings.Builder
	v.write(&b)
	return b.String()
}

func (v Value) write(b *strings.Builder) {
	switch v.Kind {
	case Null:
		b.WriteString("null")
	case Bool:
		if v.Bool {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case Number:
		b.WriteString(v.Num.String())
	case String:
		writeQuoted(b, v.Str)
	case Array:
		b.WriteByte('[')
		for i, e := range v.Arr {
			if i > 0 {
				b.WriteString(", ")
			}
			e.write(b)
		}
		b.WriteByte(']')
	case Object:
		b.WriteByte('{')
		for i, m := range v.Obj {
			if i > 0 {
				b.WriteString(", ")
			}
			writeQuoted(b, m.Key)
			b.WriteString(": ")
			m.Value.write(b)
		}
		b.WriteByte('}')
	}
}

func writeQuoted(b *strings.Builder, s string) {
	data, err := json.Marshal(s)
	if err != nil {
		// json.Marshal of a string cannot fail; fall back to raw text anyway.
		b.WriteString(s)
		return
	}
	b.Write(data)
}
