// Package templates bundles the known-good per-language files written into
// a project. The assets are read-only at run time.
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/yacobolo/vitecn/internal/project"
)

// FS holds files/<lang>/<name> for every supported language.
//
//go:embed files
var FS embed.FS

// Path returns the location of name for lang inside FS.
func Path(lang project.Language, name string) string {
	return path.Join("files", lang.Dir(), name)
}

// Read returns the template text of name for lang.
func Read(lang project.Language, name string) (string, error) {
	data, err := fs.ReadFile(FS, Path(lang, name))
	if err != nil {
		return "", fmt.Errorf("no %s template for %s: %w", name, lang, err)
	}
	return string(data), nil
}

// ViteConfig returns the bundler config template for lang.
func ViteConfig(lang project.Language) (string, error) {
	return Read(lang, lang.ViteConfig())
}
