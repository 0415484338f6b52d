package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .twsort.yaml config file",
	Long:  `Create a .twsort.yaml configuration file in the current directory with commented examples.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigFile); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigFile)
		}

		if err := os.WriteFile(defaultConfigFile, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigFile)
		return nil
	},
}

const defaultConfig = `# twsort configuration
# Command line flags and TWSORT_* environment variables override these keys.

# Keep repeated classes instead of dropping them
allowDuplicates: false

# Files processed at once (0 = number of CPUs)
jobs: 0

# Replace the built-in class order; classes rank by position
# sortOrder:
#   - container
#   - flex
#   - p-4

# Take the class order from a generated stylesheet instead
# outputCssFile: dist/output.css

# Extra patterns locating class strings; group 1 holds the classes.
# A [container, class] pair sorts every class match inside the container.
# customRegex:
#   - '@apply ([^;]*);'
#   - ['\bcx\(([^)]*)\)', '"([^"]*)"']

# Files or globs to leave untouched
# ignoredFiles:
#   - "vendor/**"
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
