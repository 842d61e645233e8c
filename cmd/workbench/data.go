package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hairizuanbinnoorazman/qa-workbench/app"
	"github.com/hairizuanbinnoorazman/qa-workbench/logger"
	"github.com/hairizuanbinnoorazman/qa-workbench/pdfexport"
	"github.com/hairizuanbinnoorazman/qa-workbench/spreadsheet"
	"github.com/spf13/cobra"
)

var (
	outputDir  string
	assumeYes  bool
	archivePDF bool
)

// openApp loads the configuration and opens the stores, logging to stderr.
func openApp(ctx context.Context) (*app.App, error) {
	cfg, err := LoadConfig(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	log := logger.NewLogrusLoggerWithOutput(cfg.Log.Level, "text", os.Stderr)
	return app.New(ctx, cfg.App(), log)
}

func writeOutput(cmd *cobra.Command, filename string, data []byte) error {
	path := filepath.Join(outputDir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

var exportCmd = &cobra.Command{
	Use:   "export <entity>",
	Short: "Export an entity list to an .xlsx workbook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := lookupEntity(args[0])
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		a, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		data, filename, err := e.export(ctx, a)
		if err != nil {
			return err
		}
		return writeOutput(cmd, filename, data)
	},
}

var exportPDFCmd = &cobra.Command{
	Use:   "pdf <qareport|testplan> <id>",
	Short: "Render a QA report or test plan as PDF",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		var artifact *pdfexport.Artifact
		switch strings.ToLower(args[0]) {
		case "qareport":
			rep, ok := a.QAReports.Get(ctx, args[1])
			if !ok {
				return fmt.Errorf("qa report %q not found", args[1])
			}
			artifact, err = pdfexport.QAReport(rep)
		case "testplan":
			plan, ok := a.TestPlans.Get(ctx, args[1])
			if !ok {
				return fmt.Errorf("test plan %q not found", args[1])
			}
			artifact, err = pdfexport.TestPlan(plan)
		default:
			return fmt.Errorf("unknown document %q, expected qareport or testplan", args[0])
		}
		if err != nil {
			return err
		}

		if archivePDF {
			url, err := pdfexport.Archive(ctx, a.Blobs, artifact)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		}
		return writeOutput(cmd, artifact.Filename, artifact.Data)
	},
}

var importCmd = &cobra.Command{
	Use:   "import <entity> <file>",
	Short: "Append records from an .xlsx, .xls or .csv file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := lookupEntity(args[0])
		if err != nil {
			return err
		}
		format, err := spreadsheet.FormatFromFilename(args[1])
		if err != nil {
			return err
		}
		f, err := os.Open(args[1])
		if err != nil {
			return err
		}
		defer f.Close()

		ctx := cmd.Context()
		a, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		n, err := e.load(ctx, a, f, format)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d record(s) into %s\n", n, args[0])
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <entity> <id>",
	Short: "Delete every record with an ID, after confirmation",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := lookupEntity(args[0])
		if err != nil {
			return err
		}
		if !assumeYes && !confirm(cmd, fmt.Sprintf("Delete %s %s? [y/N] ", args[0], args[1])) {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
			return nil
		}

		ctx := cmd.Context()
		a, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		n, err := e.delete(ctx, a, args[1])
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("%s %q not found", args[0], args[1])
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d record(s)\n", n)
		return nil
	},
}

func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	answer, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

func init() {
	exportCmd.PersistentFlags().StringVarP(&outputDir, "output", "o", ".", "output directory")
	exportPDFCmd.Flags().BoolVar(&archivePDF, "archive", false, "store the document in blob storage instead of writing a file")
	exportCmd.AddCommand(exportPDFCmd)
	deleteCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "skip the confirmation prompt")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(deleteCmd)
}
