package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/Yates-Labs/lens/internal/config"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the required external tools are available",
	Long: `Doctor verifies the environment before a run: the packaging tool must be on
PATH, and the selected analysis engine must be usable (its binary on PATH for
the command engine, an API key configured for the openai engine).`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().StringVar(&engineFlag, "engine", "", "Analysis engine to check: command or openai (default: command)")
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if engineFlag != "" {
		cfg.Engine = engineFlag
	}

	healthy := true

	if checkBinary(cfg.PackagerBin) {
		fmt.Println(successStyle.Render(fmt.Sprintf("✓ packaging tool %q found", cfg.PackagerBin)))
	} else {
		fmt.Println(errorStyle.Render(fmt.Sprintf("✗ packaging tool %q not found on PATH", cfg.PackagerBin)))
		healthy = false
	}

	switch cfg.Engine {
	case config.EngineCommand:
		if checkBinary(cfg.AnalyzerBin) {
			fmt.Println(successStyle.Render(fmt.Sprintf("✓ analysis tool %q found", cfg.AnalyzerBin)))
		} else {
			fmt.Println(errorStyle.Render(fmt.Sprintf("✗ analysis tool %q not found on PATH", cfg.AnalyzerBin)))
			healthy = false
		}
	case config.EngineOpenAI:
		if os.Getenv("OPENAI_API_KEY") != "" {
			fmt.Println(successStyle.Render("✓ OPENAI_API_KEY is set"))
		} else {
			fmt.Println(errorStyle.Render("✗ OPENAI_API_KEY is not set"))
			healthy = false
		}
	default:
		return fmt.Errorf("%w: %q", config.ErrUnknownEngine, cfg.Engine)
	}

	if !healthy {
		return fmt.Errorf("environment is not ready")
	}
	return nil
}

func checkBinary(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
