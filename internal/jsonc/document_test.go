package jsonc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	text := `// project settings
{
  /* block comment */
  "name": "demo",
  "count": 3,
  "flags": [true, false, null],
  "nested": { "inner": "x", },
}
`
	doc := Parse(text)
	require.False(t, doc.Malformed())
	assert.Equal(t, text, doc.Text())
	assert.Equal(t, []string{"name", "count", "flags", "nested"}, doc.Root().Keys())

	name, ok := doc.Lookup("name")
	require.True(t, ok)
	assert.Equal(t, "demo", name.Str())

	count, ok := doc.Lookup("count")
	require.True(t, ok)
	assert.Equal(t, Number, count.Kind)
	assert.Equal(t, "3", count.JSON())

	flags, ok := doc.Lookup("flags")
	require.True(t, ok)
	assert.Len(t, flags.Items(), 3)

	inner, ok := doc.Lookup("nested", "inner")
	require.True(t, ok)
	assert.Equal(t, "x", inner.Str())

	_, ok = doc.Lookup("nested", "missing")
	assert.False(t, ok)
}

func TestParse_MalformedIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "garbage", text: "not json at all"},
		{name: "empty", text: ""},
		{name: "unterminated", text: `{"a": 1`},
		{name: "array root", text: `[1, 2]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Parse(tt.text)
			assert.True(t, doc.Malformed())
			assert.Empty(t, doc.Root().Keys())
			assert.Equal(t, tt.text, doc.Text())
		})
	}
}

func TestComputeEdit(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		path  []string
		value *Value
		want  string
	}{
		{
			name:  "replace existing scalar keeps comments",
			text:  "{\n  // c\n  \"a\": 1,\n  \"b\": 2\n}\n",
			path:  []string{"b"},
			value: NewString("x"),
			want:  "{\n  // c\n  \"a\": 1,\n  \"b\": \"x\"\n}\n",
		},
		{
			name:  "insert after last member before trailing comment",
			text:  "{\n  \"a\": 1 // note\n}",
			path:  []string{"b"},
			value: NewBool(true),
			want:  "{\n  \"a\": 1,\n  \"b\": true // note\n}",
		},
		{
			name:  "insert keeps trailing comma",
			text:  "{\n  \"a\": 1,\n}",
			path:  []string{"b"},
			value: NewBool(true),
			want:  "{\n  \"a\": 1,\n  \"b\": true,\n}",
		},
		{
			name:  "insert into empty object",
			text:  "{}",
			path:  []string{"a"},
			value: NewString("."),
			want:  "{\n  \"a\": \".\"\n}",
		},
		{
			name:  "creates missing parents",
			text:  "{}",
			path:  []string{"o", "k"},
			value: NewBool(true),
			want:  "{\n  \"o\": {\n    \"k\": true\n  }\n}",
		},
		{
			name:  "insert into nested object",
			text:  "{\n  \"o\": {\n    \"a\": 1\n  }\n}",
			path:  []string{"o", "b"},
			value: NewNull(),
			want:  "{\n  \"o\": {\n    \"a\": 1,\n    \"b\": null\n  }\n}",
		},
		{
			name:  "replaces non-object parent",
			text:  "{\n  \"o\": 5\n}",
			path:  []string{"o", "k"},
			value: NewBool(false),
			want:  "{\n  \"o\": {\n    \"k\": false\n  }\n}",
		},
		{
			name:  "malformed text is rewritten",
			text:  "not json",
			path:  []string{"a"},
			value: NewBool(true),
			want:  "{\n  \"a\": true\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script := ComputeEdit(tt.text, tt.path, tt.value, DefaultFormat)
			require.NotEmpty(t, script)
			assert.Equal(t, tt.want, Apply(tt.text, script))
		})
	}
}

func TestComputeEdit_SpecialKeys(t *testing.T) {
	text := "{\n  \"paths\": {\n    \"@/*\": [\"./old/*\"],\n    \"~/*\": [\"./lib/*\"]\n  }\n}"

	out := Apply(text, ComputeEdit(text, []string{"paths", "@/*"}, NewArray(NewString("./src/*")), DefaultFormat))

	doc := Parse(out)
	require.False(t, doc.Malformed())
	alias, ok := doc.Lookup("paths", "@/*")
	require.True(t, ok)
	require.Len(t, alias.Items(), 1)
	assert.Equal(t, "./src/*", alias.Items()[0].Str())

	sibling, ok := doc.Lookup("paths", "~/*")
	require.True(t, ok)
	assert.Equal(t, "./lib/*", sibling.Items()[0].Str())
	assert.Contains(t, out, `"~/*": ["./lib/*"]`)
}

func TestApply(t *testing.T) {
	text := "0123456789"
	script := EditScript{
		{Offset: 1, Length: 2, Content: "ab"},
		{Offset: 8, Length: 0, Content: "X"},
		{Offset: 50, Length: 1, Content: "ignored"},
	}

	first := Apply(text, script)
	assert.Equal(t, "0ab34567X89", first)
	assert.Equal(t, first, Apply(text, script))
	assert.Equal(t, text, Apply(text, nil))
}

func TestEditPlan_Apply(t *testing.T) {
	plan := EditPlan{
		{Path: []string{"a"}, Value: NewString("1")},
		{Path: []string{"b"}, Value: NewString("2")},
	}

	out := plan.Apply("{}", DefaultFormat)
	assert.Equal(t, "{\n  \"a\": \"1\",\n  \"b\": \"2\"\n}", out)
}

func TestValue_Truthy(t *testing.T) {
	doc := Parse(`{"n": null, "f": false, "t": true, "z": 0, "one": 1, "e": "", "s": "x", "a": [], "o": {}}`)

	tests := map[string]bool{
		"n": false, "f": false, "t": true, "z": false, "one": true,
		"e": false, "s": true, "a": true, "o": true,
	}
	for key, want := range tests {
		v, ok := doc.Lookup(key)
		require.True(t, ok, key)
		assert.Equal(t, want, v.Truthy(), key)
	}

	var missing *Value
	assert.False(t, missing.Truthy())
}

func TestValue_CloneIsDeep(t *testing.T) {
	orig := NewObject(Member{Key: "inner", Value: NewObject()})
	clone := orig.Clone()

	inner, _ := clone.Get("inner")
	inner.Set("added", NewBool(true))

	origInner, _ := orig.Get("inner")
	assert.False(t, origInner.Has("added"))
}

func TestValue_Format(t *testing.T) {
	v := NewObject(
		Member{Key: "baseUrl", Value: NewString(".")},
		Member{Key: "paths", Value: NewObject(
			Member{Key: "@/*", Value: NewArray(NewString("./src/*"))},
		)},
	)

	assert.Equal(t, `{"baseUrl":".","paths":{"@/*":["./src/*"]}}`, v.JSON())

	formatted := v.Format("  ", "  ")
	assert.Contains(t, formatted, "\n    \"baseUrl\": \".\"")
	assert.Contains(t, formatted, `["./src/*"]`)
	assert.True(t, len(formatted) > 0 && formatted[0] == '{')

	assert.Equal(t, `"<b>"`, NewString("<b>").Format("", "  "))
}

func TestParse_ByteOrderMark(t *testing.T) {
	text := "\ufeff{\n  // keep\n  \"a\": 1\n}\n"

	doc := Parse(text)
	require.False(t, doc.Malformed())
	a, ok := doc.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, "1", a.JSON())

	out := Apply(text, ComputeEdit(text, []string{"b"}, NewBool(true), DetectFormat(text)))
	assert.Equal(t, "\ufeff{\n  // keep\n  \"a\": 1,\n  \"b\": true\n}\n", out)
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		text string
		want FormatOptions
	}{
		{name: "empty object", text: "{}", want: DefaultFormat},
		{name: "two spaces", text: "{\n  \"a\": {\n    \"b\": 1\n  }\n}", want: FormatOptions{Indent: "  ", Newline: "\n"}},
		{name: "four spaces", text: "{\n    \"a\": 1\n}", want: FormatOptions{Indent: "    ", Newline: "\n"}},
		{name: "tabs", text: "{\n\t\"a\": 1\n}", want: FormatOptions{Indent: "\t", Newline: "\n"}},
		{name: "crlf", text: "{\r\n  \"a\": 1\r\n}\r\n", want: FormatOptions{Indent: "  ", Newline: "\r\n"}},
		{name: "comment lines ignored", text: "{\n      // deep comment\n   \n    \"a\": 1\n}", want: FormatOptions{Indent: "    ", Newline: "\n"}},
		{name: "byte order mark", text: "\ufeff{\n    \"a\": 1\n}", want: FormatOptions{Indent: "    ", Newline: "\n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat(tt.text))
		})
	}
}

func TestComputeEdit_FollowsExistingLayout(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "crlf with tabs",
			text: "{\r\n\t\"a\": 1\r\n}\r\n",
			want: "{\r\n\t\"a\": 1,\r\n\t\"o\": {\r\n\t\t\"k\": true\r\n\t}\r\n}\r\n",
		},
		{
			name: "empty object with crlf",
			text: "{\r\n}",
			want: "{\r\n  \"o\": {\r\n    \"k\": true\r\n  }\r\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script := ComputeEdit(tt.text, []string{"o", "k"}, NewBool(true), DetectFormat(tt.text))
			assert.Equal(t, tt.want, Apply(tt.text, script))
		})
	}
}
