package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/salesmax-cli/internal/stats"
	"github.com/KaramelBytes/salesmax-cli/internal/utils"
	"github.com/spf13/cobra"
)

var (
	repOutDir     string
	repDelimiter  string
	repSheetName  string
	repSheetIndex int
)

var reportCmd = &cobra.Command{
	Use:   "report <file>",
	Short: "Compute the maximum sales statistics for one sales file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		exts := []string{".csv", ".tsv", ".xlsx"}
		if cfg != nil && len(cfg.Extensions) > 0 {
			exts = cfg.Extensions
		}
		if err := utils.ValidateInputFile(path, exts); err != nil {
			return err
		}

		opt := stats.DefaultOptions()
		if cfg != nil {
			if cfg.Delimiter != "" {
				opt.Delimiter = cfg.Delimiter
			}
			if cfg.SheetIndex > 0 {
				opt.SheetIndex = cfg.SheetIndex
			}
		}
		if repDelimiter != "" {
			switch repDelimiter {
			case ",", ";":
				opt.Delimiter = repDelimiter
			case "\t", "tab":
				opt.Delimiter = "\t"
			default:
				return fmt.Errorf("unsupported --delimiter: %s", repDelimiter)
			}
		}
		if repSheetName != "" {
			opt.SheetName = repSheetName
		}
		if cmd.Flags().Changed("sheet-index") {
			opt.SheetIndex = repSheetIndex
		}

		outDir := repOutDir
		if outDir == "" && cfg != nil {
			outDir = cfg.OutDir
		}
		if outDir != "" {
			if err := utils.ValidateOutputDir(outDir); err != nil {
				return err
			}
		}

		// choose analyzer by extension
		var rep *stats.Report
		var err error
		if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
			rep, err = stats.AnalyzeXLSX(path, opt)
		} else {
			rep, err = stats.AnalyzeCSV(path, opt)
		}
		if err != nil {
			return err
		}
		if debug {
			fmt.Fprintf(os.Stderr, "processed %d data rows from %s\n", rep.Rows, rep.Name)
		}

		if outDir == "" {
			fmt.Println(rep.Text())
			return nil
		}
		b, err := rep.JSON()
		if err != nil {
			return err
		}
		base := filepath.Base(path)
		out := filepath.Join(outDir, strings.TrimSuffix(base, filepath.Ext(base))+".json")
		if err := utils.SafeWriteFile(out, b); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Printf("✓ Wrote report to %s\n", out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVarP(&repOutDir, "out-dir", "o", "", "directory to write <input>.json (prints text to stdout when omitted)")
	reportCmd.Flags().StringVar(&repDelimiter, "delimiter", "", "field delimiter: ',' | ';' | 'tab' (default by extension)")
	reportCmd.Flags().StringVar(&repSheetName, "sheet-name", "", "XLSX: sheet name to read")
	reportCmd.Flags().IntVar(&repSheetIndex, "sheet-index", 1, "XLSX: 1-based sheet index (used if --sheet-name not provided)")
}
