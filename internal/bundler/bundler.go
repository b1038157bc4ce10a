// Package bundler decides whether a Vite config already wires the styling
// plugin and the "@" alias. Detection is textual; a config missing either
// feature is replaced wholesale by the language template, never merged.
package bundler

import (
	"fmt"
	"regexp"

	"github.com/yacobolo/vitecn/internal/project"
)

var (
	stylingPluginPattern = regexp.MustCompile(`@tailwindcss/vite`)
	aliasEntryPattern    = regexp.MustCompile(`alias\s*:\s*\{[^}]*@`)
)

// Markers records which required features were found in a config.
type Markers struct {
	StylingPlugin bool `json:"styling_plugin"`
	AliasEntry    bool `json:"alias_entry"`
}

// Complete reports whether both features are present.
func (m Markers) Complete() bool {
	return m.StylingPlugin && m.AliasEntry
}

// Missing names the absent features.
func (m Markers) Missing() []string {
	var missing []string
	if !m.StylingPlugin {
		missing = append(missing, "styling plugin import")
	}
	if !m.AliasEntry {
		missing = append(missing, "alias entry")
	}
	return missing
}

// Classify inspects raw config text.
func Classify(text string) Markers {
	return Markers{
		StylingPlugin: stylingPluginPattern.MatchString(text),
		AliasEntry:    aliasEntryPattern.MatchString(text),
	}
}

// TemplateProvider returns the known-good config text for a language.
type TemplateProvider func(lang project.Language) (string, error)

// Result is the outcome of Patch.
type Result struct {
	Changed bool
	Text    string
	Markers Markers
}

// Patch leaves existing untouched when both features are present, and
// otherwise returns the full template for lang in its place.
func Patch(existing string, lang project.Language, templates TemplateProvider) (Result, error) {
	markers := Classify(existing)
	if markers.Complete() {
		return Result{Text: existing, Markers: markers}, nil
	}

	text, err := templates(lang)
	if err != nil {
		return Result{Markers: markers}, fmt.Errorf("loading %s template: %w", lang.ViteConfig(), err)
	}
	return Result{Changed: true, Text: text, Markers: markers}, nil
}
