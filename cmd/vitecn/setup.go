package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/vitecn"
	"github.com/yacobolo/vitecn/internal/logging"
	"github.com/yacobolo/vitecn/internal/project"
	"github.com/yacobolo/vitecn/internal/prompt"
	"github.com/yacobolo/vitecn/internal/runner"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Install and configure Tailwind CSS and shadcn/ui",
	Long: `Run the full setup pipeline: select the language, install dependencies,
rewrite src/index.css, reconcile the path alias, patch the Vite config and
run the shadcn initializer. The first failing step aborts the run.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runSetup,
}

func init() {
	addSetupFlags(setupCmd)
}

// addSetupFlags registers the setup flags on cmd. The root command carries
// them too so that a bare "vitecn --dry-run" works.
func addSetupFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("language", "", "Project language: ts|js (default: prompt or detect)")
	f.BoolP("yes", "y", false, "Never prompt; detect the language from src/")
	f.String("package-manager", "", "Package manager: npm|pnpm|yarn|bun (default: from lockfile)")
	f.Bool("skip-install", false, "Do not install dependencies")
	f.Bool("skip-init", false, "Do not run the shadcn initializer")
	f.String("init-command", "", "Override the shadcn initializer command line")
	f.Bool("dry-run", false, "Show what would change without writing files or running commands")
	f.Duration("timeout", 0, "Timeout for each external command (0 = none)")
	f.String("output-format", "text", "Output format: text|json")
}

func runSetup(cmd *cobra.Command, _ []string) error {
	config, err := buildSetupConfig()
	if err != nil {
		return err
	}

	logging.Init(logging.Config{
		Level:   config.logLevel(),
		Output:  os.Stderr,
		Pretty:  true,
		NoColor: !config.Color && !stderrIsTerminal(),
	})

	format := vitecn.DetermineOutputFormat(config.OutputFormat)

	// Child output must not interleave with a JSON report on stdout.
	childOut := os.Stdout
	if format == vitecn.OutputJSON || config.Quiet {
		childOut = os.Stderr
	}

	opts := vitecn.Options{
		Dir: config.Dir,
		Runner: &runner.Exec{
			Stdin:   os.Stdin,
			Stdout:  childOut,
			Stderr:  os.Stderr,
			Timeout: config.Timeout,
		},
		Language:       config.Language,
		PackageManager: config.PackageManager,
		Packages:       config.Packages,
		DevPackages:    config.DevPackages,
		SkipInstall:    config.SkipInstall,
		SkipInit:       config.SkipInit,
		InitCommand:    config.InitCommand,
		DryRun:         config.DryRun,
	}
	if config.Language == "" && !config.Yes && stdinIsTerminal() {
		opts.Prompt = func(ctx context.Context) (project.Language, error) {
			return prompt.Language(ctx, os.Stdin, os.Stderr)
		}
	}

	result, err := vitecn.Setup(cmd.Context(), opts)

	if !config.Quiet {
		vitecn.WriteOutput(os.Stdout, result, format, vitecn.ReportConfig{
			UseColors: config.Color,
			ShowDiffs: config.Verbose || config.DryRun,
		})
	}

	if err != nil {
		return fmt.Errorf("setup failed at %w", err)
	}
	return nil
}

// logLevel resolves the log level. Quiet always disables logging.
func (c setupConfig) logLevel() logging.Level {
	if c.LogLevel != "" && !c.Quiet {
		return logging.ParseLevel(c.LogLevel)
	}
	return logging.LevelFor(c.Verbose, c.Quiet)
}

func stdinIsTerminal() bool {
	fileInfo, err := os.Stdin.Stat()
	return err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0
}

func stderrIsTerminal() bool {
	fileInfo, err := os.Stderr.Stat()
	return err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0
}
