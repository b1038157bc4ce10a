// Package jsonc models JSON-with-comments configuration files such as
// tsconfig.json. Documents are parsed into an ordered tree for inspection,
// while edits are computed as byte ranges against the original text so that
// comments and formatting outside the edited region survive untouched.
package jsonc

import (
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"
)

// EmptyDocument is the text callers substitute for a missing file.
const EmptyDocument = "{}"

// Document is a parsed JSONC text.
type Document struct {
	text      string
	stripped  string // same length as text; comments and trailing commas blanked
	root      *Value
	malformed bool
}

// Parse parses text, tolerating comments and trailing commas. Input that is
// not a JSON object at all parses as an empty document and is flagged
// Malformed; Parse never fails.
func Parse(text string) *Document {
	stripped := strip(text)
	doc := &Document{text: text, stripped: stripped}

	if !gjson.Valid(stripped) {
		doc.root = NewObject()
		doc.malformed = true
		return doc
	}

	res := gjson.Parse(stripped)
	if !res.IsObject() {
		doc.root = NewObject()
		doc.malformed = true
		return doc
	}

	doc.root = fromResult(res)
	return doc
}

// byteOrderMark is the UTF-8 BOM some editors put in front of config files.
const byteOrderMark = "\ufeff"

// strip blanks comments, trailing commas and a leading byte order mark. The
// result has the same length as text so offsets map back one to one.
func strip(text string) string {
	if rest, ok := strings.CutPrefix(text, byteOrderMark); ok {
		return strings.Repeat(" ", len(byteOrderMark)) + string(jsonc.ToJSON([]byte(rest)))
	}
	return string(jsonc.ToJSON([]byte(text)))
}

// Root returns the top-level object.
func (d *Document) Root() *Value {
	return d.root
}

// Text returns the original source text. An unmodified document always
// re-serializes byte for byte.
func (d *Document) Text() string {
	return d.text
}

// Malformed reports whether the source could not be read as a JSON object.
func (d *Document) Malformed() bool {
	return d.malformed
}

// Lookup resolves a key path against the tree.
func (d *Document) Lookup(path ...string) (*Value, bool) {
	v := d.root
	for _, key := range path {
		next, ok := v.Get(key)
		if !ok {
			return nil, false
		}
		v = next
	}
	return v, true
}

// span returns the byte range [start, end) of the value at path within the
// stripped text. ok is false when the offset cannot be determined.
func (d *Document) span(path []string) (start, end int, ok bool) {
	if len(path) == 0 {
		trimmed := strings.TrimRight(d.stripped, whitespace)
		start = len(d.stripped) - len(strings.TrimLeft(d.stripped, whitespace))
		return start, len(trimmed), true
	}

	res := gjson.Get(d.stripped, escapePath(path))
	if !res.Exists() || res.Index <= 0 {
		return 0, 0, false
	}
	return res.Index, res.Index + len(res.Raw), true
}

const whitespace = " \t\r\n"

// escapePath joins keys into a gjson path, escaping gjson's special characters
// so keys like "@/*" are matched literally.
func escapePath(path []string) string {
	parts := make([]string, len(path))
	for i, key := range path {
		var b strings.Builder
		for _, c := range key {
			switch c {
			case '\\', '.', '*', '?', '|', '#', '@', '!', '=', '<', '>', '%', '"':
				b.WriteByte('\\')
			}
			b.WriteRune(c)
		}
		parts[i] = b.String()
	}
	return strings.Join(parts, ".")
}
