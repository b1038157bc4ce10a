package project

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// PackageManager is the Node package manager used for installs and for
// running the component library's initializer.
type PackageManager string

// Supported package managers
const (
	NPM  PackageManager = "npm"
	PNPM PackageManager = "pnpm"
	Yarn PackageManager = "yarn"
	Bun  PackageManager = "bun"
)

// ErrUnknownPackageManager is returned by ParsePackageManager.
var ErrUnknownPackageManager = errors.New("unknown package manager")

// lockfiles maps lockfile names to their package manager, checked in order.
var lockfiles = []struct {
	name string
	pm   PackageManager
}{
	{"pnpm-lock.yaml", PNPM},
	{"yarn.lock", Yarn},
	{"bun.lockb", Bun},
	{"bun.lock", Bun},
	{"package-lock.json", NPM},
}

// ParsePackageManager validates a package manager name.
func ParsePackageManager(s string) (PackageManager, error) {
	pm := PackageManager(strings.ToLower(strings.TrimSpace(s)))
	switch pm {
	case NPM, PNPM, Yarn, Bun:
		return pm, nil
	}
	return "", fmt.Errorf("%w: %q (want npm, pnpm, yarn or bun)", ErrUnknownPackageManager, s)
}

// DetectPackageManager picks the package manager from the project's lockfile,
// falling back to npm.
func DetectPackageManager(fsys afero.Fs) PackageManager {
	for _, lf := range lockfiles {
		if ok, _ := afero.Exists(fsys, lf.name); ok {
			return lf.pm
		}
	}
	return NPM
}

// Install returns the argv installing pkgs, as dev dependencies when dev is set.
func (pm PackageManager) Install(pkgs []string, dev bool) []string {
	verb := "add"
	if pm == NPM {
		verb = "install"
	}

	argv := []string{string(pm), verb}
	if dev {
		argv = append(argv, "-D")
	}
	return append(argv, pkgs...)
}

// Exec returns the argv running a package binary without installing it.
func (pm PackageManager) Exec(pkg string, args ...string) []string {
	var argv []string
	switch pm {
	case PNPM:
		argv = []string{"pnpm", "dlx", pkg}
	case Yarn:
		argv = []string{"yarn", "dlx", pkg}
	case Bun:
		argv = []string{"bunx", "--bun", pkg}
	default:
		argv = []string{"npx", pkg}
	}
	return append(argv, args...)
}
