package jsonc

import (
	"sort"
	"strings"
)

// FormatOptions controls the layout of regenerated values.
type FormatOptions struct {
	Indent  string
	Newline string
}

// DefaultFormat indents with two spaces and ends lines with "\n".
var DefaultFormat = FormatOptions{Indent: "  ", Newline: "\n"}

// DetectFormat returns the indent unit and line ending text already uses,
// falling back to DefaultFormat for whatever it cannot tell.
func DetectFormat(text string) FormatOptions {
	opts := DefaultFormat
	if strings.Contains(text, "\r\n") {
		opts.Newline = "\r\n"
	}

	unit := ""
	for _, line := range strings.Split(strip(strings.TrimPrefix(text, byteOrderMark)), "\n") {
		content := strings.TrimLeft(line, " \t")
		if strings.TrimSpace(content) == "" || len(content) == len(line) {
			continue
		}
		indent := line[:len(line)-len(content)]
		if indent[0] == '\t' {
			unit = "\t"
			break
		}
		if spaces := len(indent) - len(strings.TrimLeft(indent, " ")); spaces > 0 && (unit == "" || spaces < len(unit)) {
			unit = strings.Repeat(" ", spaces)
		}
	}
	if unit != "" {
		opts.Indent = unit
	}
	return opts
}

// Edit replaces Length bytes at Offset with Content.
type Edit struct {
	Offset  int    `json:"offset"`
	Length  int    `json:"length"`
	Content string `json:"content"`
}

// EditScript is a set of non-overlapping edits against one text.
type EditScript []Edit

// Operation sets the value at Path.
type Operation struct {
	Path  []string
	Value *Value
}

// EditPlan is an ordered list of operations. Each operation is computed
// against the text produced by the previous one.
type EditPlan []Operation

// Apply runs every operation of the plan against text.
func (p EditPlan) Apply(text string, opts FormatOptions) string {
	for _, op := range p {
		text = Apply(text, ComputeEdit(text, op.Path, op.Value, opts))
	}
	return text
}

// ComputeEdit returns the minimal edit that sets path to value inside text.
// An existing value at path is replaced as a whole; a missing member is
// inserted into its deepest existing parent object, creating intermediate
// objects as needed. Text that is not a JSON object is replaced entirely.
func ComputeEdit(text string, path []string, value *Value, opts FormatOptions) EditScript {
	if opts.Indent == "" {
		opts.Indent = DefaultFormat.Indent
	}
	if opts.Newline == "" {
		opts.Newline = DefaultFormat.Newline
	}

	doc := Parse(text)
	if doc.malformed {
		return doc.rewrite(path, value, opts)
	}
	if len(path) == 0 {
		return doc.replace(nil, value, opts)
	}

	cur := doc.root
	for i, key := range path {
		next, ok := cur.Get(key)
		if !ok {
			return doc.insert(path[:i], key, wrap(path[i+1:], value), opts)
		}
		if i == len(path)-1 {
			return doc.replace(path, value, opts)
		}
		if next.Kind != Object {
			return doc.replace(path[:i+1], wrap(path[i+1:], value), opts)
		}
		cur = next
	}
	return nil
}

// Apply applies script to text. It is pure: the same inputs always produce
// the same output. Edits falling outside text are ignored.
func Apply(text string, script EditScript) string {
	if len(script) == 0 {
		return text
	}

	edits := make(EditScript, len(script))
	copy(edits, script)
	sort.SliceStable(edits, func(i, j int) bool {
		return edits[i].Offset > edits[j].Offset
	})

	for _, e := range edits {
		if e.Offset < 0 || e.Length < 0 || e.Offset+e.Length > len(text) {
			continue
		}
		text = text[:e.Offset] + e.Content + text[e.Offset+e.Length:]
	}
	return text
}

func (d *Document) replace(path []string, value *Value, opts FormatOptions) EditScript {
	start, end, ok := d.span(path)
	if !ok {
		return d.rewrite(path, value, opts)
	}
	return EditScript{{
		Offset:  start,
		Length:  end - start,
		Content: layout(value, lineIndent(d.text, start), opts),
	}}
}

func (d *Document) insert(parentPath []string, key string, value *Value, opts FormatOptions) EditScript {
	start, end, ok := d.span(parentPath)
	parent, found := d.Lookup(parentPath...)
	if !ok || !found || end-start < 2 {
		return d.rewrite(append(parentPath[:len(parentPath):len(parentPath)], key), value, opts)
	}

	parentIndent := lineIndent(d.text, start)
	closing := end - 1

	if len(parent.members) == 0 {
		memberIndent := parentIndent + opts.Indent
		// Blank space between the braces is replaced; comments stay.
		length := 0
		if strings.Trim(d.text[start+1:closing], whitespace) == "" {
			length = closing - start - 1
		}
		return EditScript{{
			Offset: start + 1,
			Length: length,
			Content: opts.Newline + memberIndent + quote(key) + ": " +
				layout(value, memberIndent, opts) + opts.Newline + parentIndent,
		}}
	}

	// Insert right after the last member's value. Comments and trailing
	// commas are blank in the stripped text, so they stay after the insertion.
	insertAt := len(strings.TrimRight(d.stripped[:closing], whitespace))
	memberIndent := lineIndent(d.text, insertAt)
	if !strings.Contains(d.text[start:insertAt], "\n") {
		memberIndent = parentIndent + opts.Indent
	}
	return EditScript{{
		Offset:  insertAt,
		Content: "," + opts.Newline + memberIndent + quote(key) + ": " + layout(value, memberIndent, opts),
	}}
}

// rewrite regenerates the whole document with path set to value. It is the
// fallback when the original text cannot be edited in place.
func (d *Document) rewrite(path []string, value *Value, opts FormatOptions) EditScript {
	root := d.root.Clone()
	if len(path) == 0 {
		root = value
	} else {
		setPath(root, path, value)
	}
	return EditScript{{
		Offset:  0,
		Length:  len(d.text),
		Content: layout(root, "", opts) + opts.Newline,
	}}
}

func setPath(obj *Value, path []string, value *Value) {
	for _, key := range path[:len(path)-1] {
		next, ok := obj.Get(key)
		if !ok || next.Kind != Object {
			next = NewObject()
			obj.Set(key, next)
		}
		obj = next
	}
	obj.Set(path[len(path)-1], value)
}

// layout formats value with opts, continuation lines starting at prefix.
func layout(value *Value, prefix string, opts FormatOptions) string {
	s := value.Format(prefix, opts.Indent)
	if opts.Newline == "\n" {
		return s
	}
	return strings.ReplaceAll(s, "\n", opts.Newline)
}

// wrap nests value under keys, innermost last.
func wrap(keys []string, value *Value) *Value {
	for i := len(keys) - 1; i >= 0; i-- {
		value = NewObject(Member{Key: keys[i], Value: value})
	}
	return value
}

// lineIndent returns the leading whitespace of the line containing pos.
func lineIndent(text string, pos int) string {
	if pos > len(text) {
		pos = len(text)
	}
	lineStart := strings.LastIndexByte(text[:pos], '\n') + 1
	end := lineStart
	for end < len(text) && (text[end] == ' ' || text[end] == '\t') {
		end++
	}
	return text[lineStart:end]
}
