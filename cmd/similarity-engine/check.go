// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/similarity-engine/internal/extract"
	"github.com/pdiddy/similarity-engine/internal/pipeline"
	"github.com/pdiddy/similarity-engine/internal/record"
	"github.com/pdiddy/similarity-engine/internal/render"
	"github.com/pdiddy/similarity-engine/internal/report"
	"github.com/pdiddy/similarity-engine/pkg/types"
)

var checkCmd = &cobra.Command{
	Use:   "check [document.pdf]",
	Short: "Check a document against published reference works",
	Long: `Check extracts the document's text, queries the enabled reference sources,
scores each candidate for similarity, and writes a report PDF and YAML export
to the output directory. The verification code printed at the end is recorded
so the report can later be re-authenticated with the verify subcommand.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := buildConfig()

		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		asJSON, _ := cmd.Flags().GetBool("json")
		if out, _ := cmd.Flags().GetString("out"); out != "" {
			cfg.Report.OutputDir = out
		}
		if divisor, _ := cmd.Flags().GetString("divisor"); divisor != "" {
			switch types.DivisorPolicy(divisor) {
			case types.DivisorFixed, types.DivisorActual:
				cfg.Report.AverageDivisor = types.DivisorPolicy(divisor)
			default:
				return fmt.Errorf("unknown divisor policy %q (want fixed or actual)", divisor)
			}
		}

		srcs := enabledSources(cfg.Sources)
		if len(srcs) == 0 {
			return fmt.Errorf("no reference sources enabled")
		}

		store, err := record.Open(cfg.Records)
		if err != nil {
			return err
		}
		defer store.Close()

		requester := types.Requester{Name: name, Email: email}
		res, err := pipeline.Run(cmd.Context(), args[0], requester, pipeline.Deps{
			Extractor: extract.PDF{},
			Sources:   srcs,
			Store:     store,
			Renderer:  render.PDFRenderer{},
		}, cfg, os.Stderr)
		if errors.Is(err, extract.ErrUnreadableDocument) {
			return fmt.Errorf("cannot read %s: %w", args[0], err)
		}
		if err != nil {
			return err
		}

		if asJSON {
			if err := report.FormatJSON(res.Report, os.Stdout); err != nil {
				return err
			}
		} else {
			report.FormatTable(res.Report, os.Stdout)
		}

		if err := writeReportFiles(cfg.Report.OutputDir, res); err != nil {
			return err
		}
		return nil
	},
}

// writeReportFiles writes the rendered PDF and the YAML export, named
// after the verification code so reruns of the same text overwrite
// their own files.
func writeReportFiles(dir string, res pipeline.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	base := filepath.Join(dir, "report-"+res.Report.VerificationCode)
	if len(res.PDF) > 0 {
		if err := os.WriteFile(base+".pdf", res.PDF, 0o644); err != nil {
			return fmt.Errorf("writing report PDF: %w", err)
		}
		fmt.Fprintf(os.Stderr, "wrote %s.pdf\n", base)
	}

	data, err := render.YAML(res.Report)
	if err != nil {
		return err
	}
	if err := os.WriteFile(base+".yaml", data, 0o644); err != nil {
		return fmt.Errorf("writing report YAML: %w", err)
	}
	fmt.Fprintf(os.Stderr, "wrote %s.yaml\n", base)
	return nil
}

func init() {
	checkCmd.Flags().String("name", "", "requester name printed on the report")
	checkCmd.Flags().String("email", "", "requester email printed on the report")
	checkCmd.Flags().Bool("json", false, "output the report as JSON instead of a table")
	checkCmd.Flags().String("out", "", "output directory for report files")
	checkCmd.Flags().String("divisor", "", "average divisor policy: fixed or actual")

	rootCmd.AddCommand(checkCmd)
}
