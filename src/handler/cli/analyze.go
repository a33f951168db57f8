package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"complexity-analyzer/src/controller"
	"complexity-analyzer/src/model"
	"complexity-analyzer/src/util"
)

func (h *Handler) analyzeCmd() *cobra.Command {
	var (
		fromStdin bool
		lang      string
		name      string
		outputDir string
		format    string
		timeout   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "analyze [paths...]",
		Short: "Analyze source files for complexity",
		Long: `Estimates line counts, cyclomatic and cognitive complexity, maintainability,
and a Big-O class for each file. Directories are walked recursively.

Examples:
  complexity-analyzer analyze main.go
  complexity-analyzer analyze --format=markdown ./src
  cat script.py | complexity-analyzer analyze --stdin --language=python`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !fromStdin && len(args) == 0 {
				return fmt.Errorf("at least one path or --stdin is required")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			analysisCtrl := controller.NewAnalysisController(h.cfg)

			var batch *model.BatchReport
			switch {
			case fromStdin:
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
				report := analysisCtrl.Analyze(controller.AnalyzeRequest{
					Source:   string(data),
					Language: lang,
					FileName: name,
				})
				batch = &model.BatchReport{Reports: []model.AnalysisReport{*report}}
			case len(args) == 1 && isFile(args[0]):
				report, err := analysisCtrl.AnalyzeFile(args[0], lang)
				if err != nil {
					return err
				}
				batch = &model.BatchReport{Reports: []model.AnalysisReport{*report}}
			default:
				util.Info("Analyzing paths: %v (timeout: %v)", args, timeout)
				var err error
				batch, err = analysisCtrl.AnalyzePaths(ctx, controller.AnalyzePathsRequest{
					Paths:    args,
					Language: lang,
				})
				if err != nil {
					util.Error("Analysis failed: %v", err)
					return err
				}
			}

			if err := h.writeOutput(cmd, batch, outputDir, format); err != nil {
				return err
			}

			printSummary(cmd.ErrOrStderr(), batch)
			return nil
		},
	}

	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "Read source text from stdin")
	cmd.Flags().StringVarP(&lang, "language", "l", "", "Language tag (default: detected from file extension)")
	cmd.Flags().StringVarP(&name, "name", "n", "stdin", "File name reported for --stdin input")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory path")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (json, yaml, markdown, sarif)")
	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 5*time.Minute, "Analysis timeout")

	return cmd
}

func (h *Handler) writeOutput(cmd *cobra.Command, batch *model.BatchReport, outputDir, format string) error {
	reportCtrl := controller.NewReportController(h.cfg)

	if outputDir != "" {
		h.cfg.Output.OutputDir = outputDir
		if format != "" {
			h.cfg.Output.Formats = []string{format}
		}

		paths, err := reportCtrl.GenerateReports(batch)
		if err != nil {
			return fmt.Errorf("generating reports: %w", err)
		}
		for _, path := range paths {
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
		}
		return nil
	}

	if format == "" {
		format = "json"
	}
	output, err := reportCtrl.GenerateToString(batch, format)
	if err != nil {
		return fmt.Errorf("generating report: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}

func printSummary(w io.Writer, batch *model.BatchReport) {
	fmt.Fprintf(w, "\nAnalysis complete:\n")
	if len(batch.Reports) == 1 && batch.RunID == "" {
		r := batch.Reports[0]
		fmt.Fprintf(w, "  Cyclomatic complexity: %d (%s)\n", r.CyclomaticComplexity, r.Summary.ComplexityLevel)
		fmt.Fprintf(w, "  Maintainability: %d/100 (%s)\n", r.MaintainabilityIndex, r.Summary.MaintainabilityLevel)
		fmt.Fprintf(w, "  Big-O: time %s, space %s (%d%% confidence)\n",
			r.BigO.TimeComplexity, r.BigO.SpaceComplexity, r.BigO.Confidence)
		return
	}
	fmt.Fprintf(w, "  Files: %d\n", batch.Summary.FileCount)
	fmt.Fprintf(w, "  Average maintainability: %.1f/100\n", batch.Summary.AvgMaintainability)
	fmt.Fprintf(w, "  Worst time complexity: %s\n", batch.Summary.WorstTimeComplexity)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
