package vitecn

import (
	"context"

	"github.com/spf13/afero"

	"github.com/yacobolo/vitecn/internal/project"
	"github.com/yacobolo/vitecn/internal/runner"
)

// State is a step of the setup pipeline. States only ever advance.
type State int

// Pipeline states, in execution order
const (
	StateSelectLanguage State = iota
	StateInstallDependencies
	StateWriteStylesheet
	StateReconcileAliasConfig
	StatePatchBundlerConfig
	StateRunInitializer
	StateDone
	StateFailed
)

var stateNames = map[State]string{
	StateSelectLanguage:       "select language",
	StateInstallDependencies:  "install dependencies",
	StateWriteStylesheet:      "write stylesheet",
	StateReconcileAliasConfig: "reconcile alias config",
	StatePatchBundlerConfig:   "patch bundler config",
	StateRunInitializer:       "run shadcn initializer",
	StateDone:                 "done",
	StateFailed:               "failed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// MarshalText renders the state name in JSON output.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// StepStatus is the outcome of one step.
type StepStatus string

// Step outcomes
const (
	StatusOK      StepStatus = "ok"
	StatusSkipped StepStatus = "skipped"
	StatusFailed  StepStatus = "failed"
)

// StepResult records one executed step.
type StepResult struct {
	Step   State      `json:"step"`
	Status StepStatus `json:"status"`
	Detail string     `json:"detail,omitempty"`
}

// FileAction describes what happened to a file.
type FileAction string

// File actions
const (
	ActionUnchanged FileAction = "unchanged"
	ActionPatched   FileAction = "patched"
	ActionReplaced  FileAction = "replaced"
	ActionCreated   FileAction = "created"
)

// FileChange records the outcome for one project file.
type FileChange struct {
	Path   string     `json:"path"`
	Action FileAction `json:"action"`
	Reason string     `json:"reason,omitempty"`
	// Diff is a unified diff of the change; empty for unchanged files.
	Diff      string `json:"diff,omitempty"`
	Additions int    `json:"additions"`
	Deletions int    `json:"deletions"`
}

// Result is the outcome of a Setup run.
type Result struct {
	Language       project.Language       `json:"language,omitempty"`
	PackageManager project.PackageManager `json:"package_manager"`
	State          State                  `json:"state"`
	DryRun         bool                   `json:"dry_run"`
	Steps          []StepResult           `json:"steps"`
	Files          []FileChange           `json:"files"`
	Commands       []string               `json:"commands"`
	Warnings       []string               `json:"warnings,omitempty"`
	NextSteps      []string               `json:"next_steps,omitempty"`
	Error          string                 `json:"error,omitempty"`
}

// Changed returns the files that were written.
func (r *Result) Changed() []FileChange {
	var changed []FileChange
	for _, f := range r.Files {
		if f.Action != ActionUnchanged {
			changed = append(changed, f)
		}
	}
	return changed
}

// LanguagePrompt asks the user for the project language.
type LanguagePrompt func(ctx context.Context) (project.Language, error)

// Options configures a Setup run.
type Options struct {
	// Dir is the project root; external commands run here.
	Dir string
	// FS is the project filesystem rooted at Dir. Paths are relative. When nil
	// the operating system filesystem below Dir is used.
	FS afero.Fs
	// Runner executes package-manager commands.
	Runner runner.Runner

	// Language skips selection when set.
	Language project.Language
	// Prompt is consulted when Language is empty. When nil the language is
	// detected from the filesystem.
	Prompt LanguagePrompt

	// PackageManager overrides lockfile detection when set.
	PackageManager project.PackageManager
	// Packages are installed as dependencies; defaults to DefaultPackages.
	Packages []string
	// DevPackages are installed as dev dependencies for TypeScript projects;
	// defaults to DefaultDevPackages.
	DevPackages []string
	SkipInstall bool

	// InitCommand overrides the shadcn initializer command line.
	InitCommand string
	SkipInit    bool

	// DryRun computes every change without writing files or running commands.
	DryRun bool
}

// Default package sets
var (
	DefaultPackages    = []string{"tailwindcss", "@tailwindcss/vite", "@shadcn/ui"}
	DefaultDevPackages = []string{"@types/node"}
)
