package vitecn

import (
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
	"github.com/spf13/afero"
)

// loadGitIgnore compiles the project's .gitignore. A missing or unreadable
// file yields nil; nothing is treated as ignored then.
func loadGitIgnore(fsys afero.Fs) *ignore.GitIgnore {
	data, err := afero.ReadFile(fsys, ".gitignore")
	if err != nil {
		return nil
	}
	return ignore.CompileIgnoreLines(strings.Split(string(data), "\n")...)
}

// isIgnored reports whether path is matched by gi.
func isIgnored(gi *ignore.GitIgnore, path string) bool {
	return gi != nil && gi.MatchesPath(path)
}
