// Package project knows the layout of a Vite project: which language it is
// written in, where its config files live and how to materialize missing ones.
package project

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

// Language selects the template set used for every later step.
type Language string

// Supported languages
const (
	TypeScript Language = "typescript"
	JavaScript Language = "javascript"
)

// Languages lists the choices in prompt order.
var Languages = []Language{JavaScript, TypeScript}

var (
	// ErrUnknownLanguage is returned by ParseLanguage for unrecognized input.
	ErrUnknownLanguage = errors.New("unknown language")
	// ErrLanguageUndetected is returned when no root component file is found.
	ErrLanguageUndetected = errors.New("could not detect project language")
)

// Probe patterns for the root component file, relative to the project root.
const (
	typeScriptProbe = "src/{App,main}.tsx"
	javaScriptProbe = "src/{App,main}.jsx"
)

// ParseLanguage accepts "ts", "typescript", "js", "javascript" in any case.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ts", "typescript":
		return TypeScript, nil
	case "js", "javascript":
		return JavaScript, nil
	}
	return "", fmt.Errorf("%w: %q (want typescript or javascript)", ErrUnknownLanguage, s)
}

// String returns the display name.
func (l Language) String() string {
	switch l {
	case TypeScript:
		return "TypeScript"
	case JavaScript:
		return "JavaScript"
	}
	return string(l)
}

// Dir is the template directory name for the language.
func (l Language) Dir() string {
	if l == TypeScript {
		return "ts"
	}
	return "js"
}

// ViteConfig is the bundler config file name for the language.
func (l Language) ViteConfig() string {
	if l == TypeScript {
		return "vite.config.ts"
	}
	return "vite.config.js"
}

// CompilerConfig is a compiler config file that must carry the path alias.
type CompilerConfig struct {
	Name string
	// FromTemplate materializes the file from the language template when it
	// is missing; otherwise a missing file is reconciled from "{}".
	FromTemplate bool
}

// CompilerConfigs lists the compiler config files reconciled for l, in order.
func (l Language) CompilerConfigs() []CompilerConfig {
	if l == TypeScript {
		return []CompilerConfig{
			{Name: "tsconfig.json"},
			{Name: "tsconfig.app.json", FromTemplate: true},
		}
	}
	return []CompilerConfig{
		{Name: "jsconfig.json", FromTemplate: true},
	}
}

// DetectLanguage probes src/ for a TypeScript or plain root component file.
// TypeScript wins when both are present.
func DetectLanguage(fsys afero.Fs) (Language, error) {
	iofs := afero.NewIOFS(fsys)

	for _, probe := range []struct {
		pattern string
		lang    Language
	}{
		{typeScriptProbe, TypeScript},
		{javaScriptProbe, JavaScript},
	} {
		matches, err := doublestar.Glob(iofs, probe.pattern)
		if err != nil {
			return "", fmt.Errorf("probing %s: %w", probe.pattern, err)
		}
		if len(matches) > 0 {
			return probe.lang, nil
		}
	}

	return "", fmt.Errorf("%w: no %s or %s found", ErrLanguageUndetected, typeScriptProbe, javaScriptProbe)
}
