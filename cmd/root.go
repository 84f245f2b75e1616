package cmd

import (
	"fmt"
	"os"

	"github.com/Yates-Labs/lens/internal/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "lens [directory]",
	Short: "Lens - project inspection and reporting tool",
	Long: `Lens flattens a project directory into a single context blob, analyzes it,
and renders a plain-text report.

The pipeline runs strictly forward: the directory is validated, its contents
are packaged by an external tool (repomix by default), the packaged context is
analyzed (by an external analysis tool or in-process via OpenAI), and the
resulting summary and recommendations are formatted into a report.

Examples:
  lens /path/to/project
  lens /path/to/project --output report.txt
  lens /path/to/project --engine openai --verbose`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

// Execute runs the root command
func Execute() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "config file path")
}
