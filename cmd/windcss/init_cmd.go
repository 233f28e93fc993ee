package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .windcss.yaml config file",
	Long:  `Create a .windcss.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".windcss.yaml"); err == nil && !force {
			return fmt.Errorf(".windcss.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".windcss.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .windcss.yaml")
		return nil
	},
}

const defaultConfig = `# windcss configuration
# Docs: https://github.com/yacobolo/windcss

# Shared settings
verbose: false

# Build settings
build:
  paths:
    - "**/*.html"
    - "**/*.templ"
    - "**/*.go"
  output: windcss.min.css
  dark-mode: media         # media | class
  safelist: []             # tokens to always include
  include: []              # handwritten CSS files to prepend
  no-shake: false
  strict: false
  format: text             # text | json
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
