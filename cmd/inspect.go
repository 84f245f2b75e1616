package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/Yates-Labs/lens/internal/analyzer"
	"github.com/Yates-Labs/lens/internal/config"
	"github.com/Yates-Labs/lens/internal/inspector"
	"github.com/Yates-Labs/lens/internal/report"
	"github.com/Yates-Labs/lens/internal/source"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	outputFile string
	verbose    bool
	engineFlag string
)

// Console styles. The report body stays unstyled so file and console output
// carry identical bytes; only status messages get color.
var (
	progressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6272A4")).Italic(true)
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#50FA7B"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555")).Bold(true)
)

func init() {
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file to save the report (default: stdout)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Echo external commands and surface their stderr on failure")
	rootCmd.Flags().StringVar(&engineFlag, "engine", "", "Analysis engine: command or openai (default: command)")
}

func runInspect(cmd *cobra.Command, args []string) error {
	dir := args[0]
	ctx := context.Background()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if engineFlag != "" {
		cfg.Engine = engineFlag
	}

	ctxAnalyzer, err := newAnalyzer(cfg)
	if err != nil {
		return fmt.Errorf("%s %w", errorStyle.Render("Error:"), err)
	}

	insp := &inspector.Inspector{
		Source:   &source.RepomixSource{Bin: cfg.PackagerBin, Verbose: verbose},
		Analyzer: ctxAnalyzer,
		Progress: func(msg string) {
			fmt.Println(progressStyle.Render("→ " + msg))
		},
	}

	result, err := insp.Run(ctx, dir)
	if err != nil {
		return fmt.Errorf("%s %w", errorStyle.Render("Error:"), err)
	}

	rendered := report.Render(report.Params{
		Directory:   result.Directory,
		Analysis:    result.Analysis,
		Repo:        result.Repo,
		GeneratedAt: result.GeneratedAt,
	})

	if outputFile != "" {
		if err := writeReport(rendered, outputFile); err != nil {
			return fmt.Errorf("%s %w", errorStyle.Render("Error:"), err)
		}
		fmt.Println(successStyle.Render(fmt.Sprintf("✓ Report saved to %q", outputFile)))
	} else {
		fmt.Println()
		fmt.Print(rendered)
	}

	fmt.Println(successStyle.Render("✓ Analysis complete"))
	return nil
}

// newAnalyzer builds the analyzer backend selected by the configuration.
func newAnalyzer(cfg config.Config) (analyzer.ContextAnalyzer, error) {
	switch cfg.Engine {
	case config.EngineOpenAI:
		llmCfg := analyzer.DefaultLLMConfig()
		llmCfg.Model = cfg.Model
		llm, err := analyzer.NewOpenAILLM(llmCfg)
		if err != nil {
			return nil, err
		}
		return analyzer.NewLLMAnalyzer(llm, llmCfg), nil
	case config.EngineCommand:
		return &analyzer.CommandAnalyzer{
			Bin:     cfg.AnalyzerBin,
			Args:    cfg.AnalyzerArgs,
			Verbose: verbose,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownEngine, cfg.Engine)
	}
}

// writeReport writes the rendered report to path, byte for byte.
func writeReport(rendered, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	if _, err := file.WriteString(rendered); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
