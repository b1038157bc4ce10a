package vitecn

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
	"github.com/spf13/afero"

	"github.com/yacobolo/vitecn/internal/alias"
	"github.com/yacobolo/vitecn/internal/bundler"
	"github.com/yacobolo/vitecn/internal/jsonc"
	"github.com/yacobolo/vitecn/internal/logging"
	"github.com/yacobolo/vitecn/internal/project"
	"github.com/yacobolo/vitecn/internal/runner"
	"github.com/yacobolo/vitecn/internal/templates"
)

// Initializer invocation and the follow-up hint printed after success.
var (
	initializerArgs = []string{"init", "-y"}
	nextStepArgs    = []string{"add", "button"}
)

const initializerPackage = "shadcn@latest"

// Setup runs the pipeline against the project described by opts. The
// returned Result is never nil; on failure its State is StateFailed, its last
// step is the failing one and the error is a *StepError.
func Setup(ctx context.Context, opts Options) (*Result, error) {
	p := newPipeline(opts)

	steps := []struct {
		state State
		run   func(context.Context) (StepStatus, string, error)
	}{
		{StateSelectLanguage, p.selectLanguage},
		{StateInstallDependencies, p.installDependencies},
		{StateWriteStylesheet, p.writeStylesheet},
		{StateReconcileAliasConfig, p.reconcileAliasConfig},
		{StatePatchBundlerConfig, p.patchBundlerConfig},
		{StateRunInitializer, p.runInitializer},
	}

	for _, step := range steps {
		p.result.State = step.state
		logging.Debug().Str("step", step.state.String()).Msg("Starting step")

		err := ctx.Err()
		status, detail := StatusFailed, ""
		if err == nil {
			status, detail, err = step.run(ctx)
		}
		if err != nil {
			return p.fail(step.state, err)
		}

		p.result.Steps = append(p.result.Steps, StepResult{Step: step.state, Status: status, Detail: detail})
		logging.Info().Str("step", step.state.String()).Str("status", string(status)).Msg(detail)
	}

	p.result.State = StateDone
	p.result.NextSteps = []string{runner.New(p.pm.Exec(initializerPackage, nextStepArgs...)...).String()}
	return p.result, nil
}

type pipeline struct {
	opts      Options
	fs        afero.Fs
	run       runner.Runner
	lang      project.Language
	pm        project.PackageManager
	gitignore *ignore.GitIgnore
	result    *Result
}

func newPipeline(opts Options) *pipeline {
	if opts.Dir == "" {
		opts.Dir = "."
	}

	fsys := opts.FS
	if fsys == nil {
		root, err := filepath.Abs(opts.Dir)
		if err != nil {
			root = opts.Dir
		}
		fsys = afero.NewBasePathFs(afero.NewOsFs(), root)
	}
	if opts.DryRun {
		// Writes land in memory; reads fall through to the project.
		fsys = afero.NewCopyOnWriteFs(afero.NewReadOnlyFs(fsys), afero.NewMemMapFs())
	}

	run := opts.Runner
	if run == nil {
		run = &runner.Exec{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
	}

	return &pipeline{
		opts:      opts,
		fs:        fsys,
		run:       run,
		gitignore: loadGitIgnore(fsys),
		result: &Result{
			DryRun:   opts.DryRun,
			Steps:    []StepResult{},
			Files:    []FileChange{},
			Commands: []string{},
		},
	}
}

func (p *pipeline) fail(state State, err error) (*Result, error) {
	stepErr := &StepError{Step: state, Err: err}
	p.result.Steps = append(p.result.Steps, StepResult{Step: state, Status: StatusFailed, Detail: err.Error()})
	p.result.State = StateFailed
	p.result.Error = stepErr.Error()
	logging.Error().Err(err).Str("step", state.String()).Msg("Setup failed")
	return p.result, stepErr
}

func (p *pipeline) warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	p.result.Warnings = append(p.result.Warnings, msg)
	logging.Warn().Msg(msg)
}

func (p *pipeline) selectLanguage(ctx context.Context) (StepStatus, string, error) {
	p.pm = p.opts.PackageManager
	if p.pm == "" {
		p.pm = project.DetectPackageManager(p.fs)
	}
	p.result.PackageManager = p.pm

	var (
		lang   project.Language
		source string
		err    error
	)
	switch {
	case p.opts.Language != "":
		lang, source = p.opts.Language, "configured"
	case p.opts.Prompt != nil:
		lang, err = p.opts.Prompt(ctx)
		source = "selected"
	default:
		lang, err = project.DetectLanguage(p.fs)
		source = "detected"
	}
	if err != nil {
		return StatusFailed, "", err
	}

	p.lang = lang
	p.result.Language = lang
	return StatusOK, fmt.Sprintf("%s (%s)", lang, source), nil
}

func (p *pipeline) installDependencies(ctx context.Context) (StepStatus, string, error) {
	if p.opts.SkipInstall {
		return StatusSkipped, "install disabled", nil
	}

	packages := p.opts.Packages
	if len(packages) == 0 {
		packages = DefaultPackages
	}
	cmds := []runner.Command{runner.New(p.pm.Install(packages, false)...)}

	if p.lang == project.TypeScript {
		devPackages := p.opts.DevPackages
		if devPackages == nil {
			devPackages = DefaultDevPackages
		}
		if len(devPackages) > 0 {
			cmds = append(cmds, runner.New(p.pm.Install(devPackages, true)...))
		}
	}

	for _, cmd := range cmds {
		if err := p.exec(ctx, cmd); err != nil {
			return StatusFailed, "", err
		}
	}
	if p.opts.DryRun {
		return StatusSkipped, "dry run", nil
	}
	return StatusOK, fmt.Sprintf("installed with %s", p.pm), nil
}

func (p *pipeline) writeStylesheet(ctx context.Context) (StepStatus, string, error) {
	isDir, err := afero.DirExists(p.fs, project.SourceDir)
	if err != nil {
		return StatusFailed, "", fmt.Errorf("checking %s: %w", project.SourceDir, err)
	}
	if !isDir {
		return StatusFailed, "", ErrNotProjectRoot
	}

	before, existed, err := p.read(project.StylesheetPath)
	if err != nil {
		return StatusFailed, "", err
	}
	if existed && project.InspectStylesheet(before).Discards() {
		p.warn("%s had other content; it was replaced by the tailwindcss import", project.StylesheetPath)
	}

	action, reason := ActionCreated, "stylesheet did not exist"
	if existed {
		action, reason = ActionReplaced, "stylesheet is always rewritten"
		if before == project.StylesheetImport {
			action, reason = ActionUnchanged, "already imports tailwindcss"
		}
	}
	if err := p.write(project.StylesheetPath, before, project.StylesheetImport, action, reason); err != nil {
		return StatusFailed, "", err
	}
	return StatusOK, project.StylesheetPath, nil
}

func (p *pipeline) reconcileAliasConfig(ctx context.Context) (StepStatus, string, error) {
	var names []string
	for _, cfg := range p.lang.CompilerConfigs() {
		if err := p.reconcileFile(cfg); err != nil {
			return StatusFailed, "", err
		}
		names = append(names, cfg.Name)
	}
	return StatusOK, strings.Join(names, ", "), nil
}

func (p *pipeline) reconcileFile(cfg project.CompilerConfig) error {
	before, existed, err := p.read(cfg.Name)
	if err != nil {
		return err
	}

	source := before
	action, reason := ActionPatched, "added the path alias"
	switch {
	case !existed && cfg.FromTemplate:
		if _, err := project.Materialize(p.fs, cfg.Name, templates.FS, templates.Path(p.lang, cfg.Name)); err != nil {
			return err
		}
		if source, _, err = p.read(cfg.Name); err != nil {
			return err
		}
		action, reason = ActionCreated, "created from template"
	case !existed:
		source = jsonc.EmptyDocument
		action, reason = ActionCreated, "created with the path alias"
	case jsonc.Parse(before).Malformed():
		p.warn("%s could not be parsed; it was rewritten", cfg.Name)
	}

	after, changed := alias.EnsureText(source)
	if existed && !changed {
		action, reason = ActionUnchanged, "already has the path alias"
	}
	return p.write(cfg.Name, before, after, action, reason)
}

func (p *pipeline) patchBundlerConfig(ctx context.Context) (StepStatus, string, error) {
	name := p.lang.ViteConfig()

	before, existed, err := p.read(name)
	if err != nil {
		return StatusFailed, "", err
	}

	if !existed {
		if _, err := project.Materialize(p.fs, name, templates.FS, templates.Path(p.lang, name)); err != nil {
			return StatusFailed, "", err
		}
		after, _, err := p.read(name)
		if err != nil {
			return StatusFailed, "", err
		}
		p.record(name, "", after, ActionCreated, "created from template")
		return StatusOK, name, nil
	}

	res, err := bundler.Patch(before, p.lang, templates.ViteConfig)
	if err != nil {
		return StatusFailed, "", err
	}

	action, reason := ActionUnchanged, "styling plugin and alias already configured"
	if res.Changed {
		action, reason = ActionReplaced, "missing "+strings.Join(res.Markers.Missing(), " and ")
		p.warn("%s was replaced by the template; reapply any custom settings", name)
	}
	if err := p.write(name, before, res.Text, action, reason); err != nil {
		return StatusFailed, "", err
	}
	return StatusOK, name, nil
}

func (p *pipeline) runInitializer(ctx context.Context) (StepStatus, string, error) {
	if p.opts.SkipInit {
		return StatusSkipped, "initializer disabled", nil
	}

	cmd := runner.New(p.pm.Exec(initializerPackage, initializerArgs...)...)
	if p.opts.InitCommand != "" {
		parsed, err := runner.Parse(p.opts.InitCommand)
		if err != nil {
			return StatusFailed, "", err
		}
		cmd = parsed
	}

	if err := p.exec(ctx, cmd); err != nil {
		return StatusFailed, "", err
	}
	if p.opts.DryRun {
		return StatusSkipped, "dry run", nil
	}
	return StatusOK, cmd.String(), nil
}

// exec records cmd and runs it unless this is a dry run.
func (p *pipeline) exec(ctx context.Context, cmd runner.Command) error {
	p.result.Commands = append(p.result.Commands, cmd.String())
	if p.opts.DryRun {
		logging.Debug().Str("command", cmd.String()).Msg("Dry run, not executing")
		return nil
	}

	logging.Info().Str("command", cmd.String()).Str("dir", p.opts.Dir).Msg("Running command")
	return p.run.Run(ctx, p.opts.Dir, cmd)
}

// read returns the content of name and whether it exists.
func (p *pipeline) read(name string) (string, bool, error) {
	data, err := afero.ReadFile(p.fs, name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("reading %s: %w", name, err)
	}
	return string(data), true, nil
}

// write stores after at name when it differs from before and records the
// outcome.
func (p *pipeline) write(name, before, after string, action FileAction, reason string) error {
	if action != ActionUnchanged && (action == ActionCreated || before != after) {
		if dir := filepath.Dir(name); dir != "." {
			if err := p.fs.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("creating %s: %w", dir, err)
			}
		}
		if err := afero.WriteFile(p.fs, name, []byte(after), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
	}
	p.record(name, before, after, action, reason)
	return nil
}

func (p *pipeline) record(name, before, after string, action FileAction, reason string) {
	change := FileChange{Path: name, Action: action, Reason: reason}
	if action != ActionUnchanged {
		change.Diff, change.Additions, change.Deletions = buildDiff(name, before, after)
		if isIgnored(p.gitignore, name) {
			p.warn("%s is ignored by .gitignore", name)
		}
	}
	p.result.Files = append(p.result.Files, change)
	logging.Debug().Str("file", name).Str("action", string(action)).Msg(reason)
}
