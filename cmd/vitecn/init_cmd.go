package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .vitecn.yaml config file",
	Long:  `Create a .vitecn.yaml configuration file (or the path given by --config) with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")
		path, _ := cmd.Flags().GetString("config")
		if path == "" {
			path = ".vitecn.yaml"
		}

		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Printf("Created %s\n", path)
		return nil
	},
}

const defaultConfig = `# vitecn configuration
# Flags override VITECN_* environment variables, which override this file.

# language: typescript     # typescript | javascript (default: prompt or detect)
# package-manager: pnpm    # npm | pnpm | yarn | bun (default: from lockfile)
yes: false
dry-run: false
timeout: 0s                # per external command, 0s = no limit
output-format: text        # text | json
verbose: false
# log-level: info          # debug | info | warn | error | off (overrides verbose)

# Dependency installation
install:
  skip: false
  packages:
    - tailwindcss
    - "@tailwindcss/vite"
    - "@shadcn/ui"
  dev-packages:            # TypeScript projects only
    - "@types/node"

# shadcn initializer
init:
  skip: false
  # command: npx shadcn@latest init -y
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
