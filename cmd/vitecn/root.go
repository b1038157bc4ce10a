package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vitecn",
	Short: "Add Tailwind CSS and shadcn/ui to a Vite project",
	Long: `Installs Tailwind CSS and shadcn/ui into an existing Vite app, points
src/index.css at Tailwind, adds the "@/*" path alias to the compiler
config and wires the Tailwind plugin into the Vite config.
Running it again leaves an already configured project untouched.`,
	// Default behavior: run setup when no subcommand is given.
	// loadConfig is called here because PreRunE of setupCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runSetup(cmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging and show diffs")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code and errors only)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug|info|warn|error|off (overrides --verbose)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".vitecn.yaml", "Config file path")
	rootCmd.PersistentFlags().StringP("dir", "C", ".", "Project root directory")

	addSetupFlags(rootCmd)

	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
