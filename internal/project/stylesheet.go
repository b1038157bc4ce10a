package project

import (
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Stylesheet entry point and the single line it is rewritten to.
const (
	StylesheetPath   = "src/index.css"
	StylesheetImport = "@import \"tailwindcss\";\n"
	SourceDir        = "src"
)

// StylesheetInfo summarizes a stylesheet that is about to be replaced.
type StylesheetInfo struct {
	Imports []string // @import targets, unquoted
	Rules   int      // top-level rule and at-rule blocks
}

// Discards reports whether replacing the stylesheet loses anything besides
// the framework import itself.
func (s StylesheetInfo) Discards() bool {
	if s.Rules > 0 {
		return true
	}
	for _, imp := range s.Imports {
		if imp != "tailwindcss" {
			return true
		}
	}
	return false
}

// InspectStylesheet lexes content and counts its imports and top-level blocks.
func InspectStylesheet(content string) StylesheetInfo {
	var info StylesheetInfo
	lexer := css.NewLexer(parse.NewInputString(content))

	depth := 0
	inImport := false
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal
			break
		}

		switch tt {
		case css.AtKeywordToken:
			inImport = depth == 0 && strings.EqualFold(string(text), "@import")
		case css.StringToken:
			if inImport {
				info.Imports = append(info.Imports, strings.Trim(string(text), `"'`))
				inImport = false
			}
		case css.URLToken:
			if inImport {
				info.Imports = append(info.Imports, unwrapURL(string(text)))
				inImport = false
			}
		case css.SemicolonToken:
			inImport = false
		case css.LeftBraceToken:
			if depth == 0 {
				info.Rules++
			}
			depth++
		case css.RightBraceToken:
			if depth > 0 {
				depth--
			}
		}
	}

	return info
}

// unwrapURL turns url("x") or url(x) into x.
func unwrapURL(s string) string {
	s = strings.TrimSuffix(strings.TrimPrefix(s, "url("), ")")
	return strings.Trim(strings.TrimSpace(s), `"'`)
}
