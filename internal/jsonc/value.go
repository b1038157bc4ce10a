package jsonc

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// Kind identifies the JSON type held by a Value.
type Kind int

// Value kinds
const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "boolean"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	}
	return "unknown"
}

// Member is a single key/value pair of an object, kept in source order.
type Member struct {
	Key   string
	Value *Value
}

// Value is a node of a parsed document. Scalars keep their raw JSON text so
// numbers and escaped strings round-trip exactly.
type Value struct {
	Kind    Kind
	raw     string   // scalars only
	str     string   // decoded string for Kind == String
	members []Member // Object
	items   []*Value // Array
}

// NewObject returns an empty object with the given members appended in order.
func NewObject(members ...Member) *Value {
	v := &Value{Kind: Object}
	for _, m := range members {
		v.Set(m.Key, m.Value)
	}
	return v
}

// NewArray returns an array holding items.
func NewArray(items ...*Value) *Value {
	return &Value{Kind: Array, items: items}
}

// NewString returns a string value.
func NewString(s string) *Value {
	return &Value{Kind: String, raw: quote(s), str: s}
}

// NewBool returns a boolean value.
func NewBool(b bool) *Value {
	return &Value{Kind: Bool, raw: strconv.FormatBool(b)}
}

// NewNull returns the null value.
func NewNull() *Value {
	return &Value{Kind: Null, raw: "null"}
}

// fromResult converts a gjson result into a Value tree, preserving key order.
func fromResult(r gjson.Result) *Value {
	switch r.Type {
	case gjson.Null:
		return NewNull()
	case gjson.False, gjson.True:
		return &Value{Kind: Bool, raw: r.Raw}
	case gjson.Number:
		return &Value{Kind: Number, raw: r.Raw}
	case gjson.String:
		return &Value{Kind: String, raw: r.Raw, str: r.Str}
	}

	if r.IsArray() {
		v := &Value{Kind: Array}
		r.ForEach(func(_, item gjson.Result) bool {
			v.items = append(v.items, fromResult(item))
			return true
		})
		return v
	}

	v := &Value{Kind: Object}
	r.ForEach(func(key, item gjson.Result) bool {
		v.members = append(v.members, Member{Key: key.String(), Value: fromResult(item)})
		return true
	})
	return v
}

// Get returns the member value stored under key.
func (v *Value) Get(key string) (*Value, bool) {
	if v == nil || v.Kind != Object {
		return nil, false
	}
	for _, m := range v.members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Has reports whether the object has a member named key, whatever its value.
func (v *Value) Has(key string) bool {
	_, ok := v.Get(key)
	return ok
}

// Set replaces the member named key in place, or appends it when absent.
// Set on a non-object is a no-op.
func (v *Value) Set(key string, val *Value) {
	if v == nil || v.Kind != Object {
		return
	}
	for i, m := range v.members {
		if m.Key == key {
			v.members[i].Value = val
			return
		}
	}
	v.members = append(v.members, Member{Key: key, Value: val})
}

// Keys returns the object's member names in order.
func (v *Value) Keys() []string {
	if v == nil || v.Kind != Object {
		return nil
	}
	keys := make([]string, 0, len(v.members))
	for _, m := range v.members {
		keys = append(keys, m.Key)
	}
	return keys
}

// Items returns the elements of an array.
func (v *Value) Items() []*Value {
	if v == nil || v.Kind != Array {
		return nil
	}
	return v.items
}

// Str returns the decoded string of a String value, or "" for other kinds.
func (v *Value) Str() string {
	if v == nil || v.Kind != String {
		return ""
	}
	return v.str
}

// Truthy follows JavaScript truthiness: null, false, 0, NaN and "" are falsy,
// everything else (including empty arrays and objects) is truthy.
func (v *Value) Truthy() bool {
	if v == nil {
		return false
	}
	switch v.Kind {
	case Null:
		return false
	case Bool:
		return v.raw == "true"
	case Number:
		f, err := strconv.ParseFloat(v.raw, 64)
		return err == nil && f != 0
	case String:
		return v.str != ""
	}
	return true
}

// Clone returns a deep copy.
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	c := &Value{Kind: v.Kind, raw: v.raw, str: v.str}
	if v.members != nil {
		c.members = make([]Member, len(v.members))
		for i, m := range v.members {
			c.members[i] = Member{Key: m.Key, Value: m.Value.Clone()}
		}
	}
	if v.items != nil {
		c.items = make([]*Value, len(v.items))
		for i, item := range v.items {
			c.items[i] = item.Clone()
		}
	}
	return c
}

// JSON returns the compact JSON encoding.
func (v *Value) JSON() string {
	var b strings.Builder
	v.writeJSON(&b)
	return b.String()
}

func (v *Value) writeJSON(b *strings.Builder) {
	switch v.Kind {
	case Object:
		b.WriteByte('{')
		for i, m := range v.members {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(quote(m.Key))
			b.WriteByte(':')
			m.Value.writeJSON(b)
		}
		b.WriteByte('}')
	case Array:
		b.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				b.WriteByte(',')
			}
			item.writeJSON(b)
		}
		b.WriteByte(']')
	default:
		b.WriteString(v.raw)
	}
}

// Format renders v as indented JSON. Every line after the first is prefixed
// with prefix so the result can be spliced in at that nesting level. Arrays
// that fit on one line stay inline.
func (v *Value) Format(prefix, indent string) string {
	if v.Kind != Object && v.Kind != Array {
		return v.JSON()
	}
	out := pretty.PrettyOptions([]byte(v.JSON()), &pretty.Options{
		Width:    80,
		Indent:   indent,
		SortKeys: false,
	})
	s := strings.TrimRight(string(out), "\n")
	if prefix == "" {
		return s
	}
	return strings.ReplaceAll(s, "\n", "\n"+prefix)
}

// quote encodes s as a JSON string literal without HTML escaping.
func quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	return strings.TrimRight(buf.String(), "\n")
}
