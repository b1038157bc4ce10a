// Package alias keeps the "@/*" compiler path alias present in tsconfig.json,
// tsconfig.app.json and jsconfig.json.
package alias

import (
	"github.com/yacobolo/vitecn/internal/jsonc"
)

// The mapping every reconciled config must carry.
const (
	BaseURL = "."
	Pattern = "@/*"
	Target  = "./src/*"
)

const compilerOptions = "compilerOptions"

// Reconcile decides whether doc needs the alias. When it does, the returned
// plan rewrites the whole compilerOptions object in one operation: the full
// desired sub-object is built in memory and diffed against the text once, so
// baseUrl and paths always land together.
func Reconcile(doc *jsonc.Document) (bool, jsonc.EditPlan) {
	needed := false

	opts, ok := doc.Root().Get(compilerOptions)
	if !ok || opts.Kind != jsonc.Object {
		opts = jsonc.NewObject()
		needed = true
	} else {
		opts = opts.Clone()
	}

	if !opts.Has("baseUrl") {
		opts.Set("baseUrl", jsonc.NewString(BaseURL))
		needed = true
	}

	paths, ok := opts.Get("paths")
	switch {
	case !ok || paths.Kind != jsonc.Object:
		opts.Set("paths", jsonc.NewObject(jsonc.Member{Key: Pattern, Value: target()}))
		needed = true
	default:
		if mapping, ok := paths.Get(Pattern); !ok || !mapping.Truthy() {
			paths.Set(Pattern, target())
			needed = true
		}
	}

	if !needed {
		return false, nil
	}
	return true, jsonc.EditPlan{{Path: []string{compilerOptions}, Value: opts}}
}

// EnsureText reconciles text and returns the edited text, keeping the
// indentation and line endings text already uses. When changed is
// false, out is text itself.
func EnsureText(text string) (out string, changed bool) {
	needed, plan := Reconcile(jsonc.Parse(text))
	if !needed {
		return text, false
	}
	return plan.Apply(text, jsonc.DetectFormat(text)), true
}

func target() *jsonc.Value {
	return jsonc.NewArray(jsonc.NewString(Target))
}
