package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/kyp-analysis/internal/funds"
	"github.com/jonathan/kyp-analysis/internal/observability"
	"github.com/jonathan/kyp-analysis/internal/rendering"
	"github.com/jonathan/kyp-analysis/internal/schemas"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var renderDOCXCmd = &cobra.Command{
	Use:   "render-docx",
	Short: "Render a KYP analysis report from a JSON form state",
	Long:  "Validates a JSON FormState against form_state.schema.json, assembles the KYP analysis report and writes it as a .docx file.",
	RunE:  runRenderDOCX,
}

var (
	renderDOCXInputFile  string
	renderDOCXOutputFile string
	renderDOCXDate       string
	renderDOCXVerbose    bool
)

func init() {
	renderDOCXCmd.Flags().StringVarP(&renderDOCXInputFile, "input", "i", "", "Path to FormState JSON file (required)")
	renderDOCXCmd.Flags().StringVarP(&renderDOCXOutputFile, "out", "o", rendering.ReportFilename, "Path to output .docx file")
	renderDOCXCmd.Flags().StringVar(&renderDOCXDate, "date", "", "Report date as YYYY-MM-DD (default: today)")
	renderDOCXCmd.Flags().BoolVarP(&renderDOCXVerbose, "verbose", "v", false, "Print an outline of the assembled report")

	_ = renderDOCXCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(renderDOCXCmd)
}

func runRenderDOCX(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	return renderReport(renderRequest{
		InputFile:  renderDOCXInputFile,
		OutputFile: renderDOCXOutputFile,
		Date:       renderDOCXDate,
		Verbose:    renderDOCXVerbose,
		Options:    rendering.DOCXOptions{Font: cfg.Report.Font, FontSize: cfg.Report.FontSize},
	}, cmd.OutOrStdout(), logger)
}

type renderRequest struct {
	InputFile  string
	OutputFile string
	Date       string
	Verbose    bool
	Options    rendering.DOCXOptions
}

func renderReport(req renderRequest, stdout io.Writer, logger zerolog.Logger) error {
	clock := time.Now
	if req.Date != "" {
		date, err := time.Parse(rendering.DateLayout, req.Date)
		if err != nil {
			return fmt.Errorf("invalid --date %q: expected YYYY-MM-DD", req.Date)
		}
		clock = func() time.Time { return date }
	}

	content, err := os.ReadFile(req.InputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	state, err := schemas.DecodeFormState(content)
	if err != nil {
		return fmt.Errorf("invalid form state: %w", err)
	}

	catalog, err := funds.Default()
	if err != nil {
		return err
	}

	doc, missing := rendering.NewAssembler(catalog, clock).Assemble(&state)
	for _, m := range missing {
		logger.Warn().Str("group", m.Group).Str("fund", m.Name).Msg("fund description unavailable")
	}

	data, err := rendering.RenderDOCX(doc, req.Options)
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	outputDir := filepath.Dir(req.OutputFile)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(req.OutputFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	if req.Verbose {
		printer := observability.NewPrinter(stdout)
		printer.PrintReportOutline(doc)
		printer.PrintMissingFunds(missing)
	}

	_, _ = fmt.Fprintf(stdout, "Successfully rendered KYP analysis report\n")
	_, _ = fmt.Fprintf(stdout, "Output: %s\n", req.OutputFile)
	return nil
}
