package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/labelgen/internal/core"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var schemaFlag string
	var profileFlag string

	cmd := &cobra.Command{
		Use:   "generate <input.tsv> [output.prn]",
		Short: "Parse a tab-separated article list and write a printer document",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			inputPath, err := expandPath(args[0])
			if err != nil {
				return fmt.Errorf("resolve input path: %w", err)
			}

			raw, err := os.ReadFile(inputPath)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			// Spreadsheet exports regularly carry a UTF-8 BOM.
			raw = bytes.TrimPrefix(raw, utf8BOM)

			schemaKey := schemaFlag
			if schemaKey == "" {
				schemaKey = cfg.Defaults.Schema
			}
			schema, ok := core.GetSchema(schemaKey)
			if !ok {
				return fmt.Errorf("unknown input schema %q (run `labelgen schemas` to list them)", schemaKey)
			}

			profileKey := profileFlag
			if profileKey == "" {
				profileKey = cfg.Defaults.Profile
			}
			profile, ok := core.GetProfile(profileKey)
			if !ok {
				return fmt.Errorf("unknown format profile %q (run `labelgen profiles` to list them)", profileKey)
			}

			var ids core.IDSequence
			result, err := core.Parse(string(raw), schema, &ids)
			if err != nil {
				return fmt.Errorf("parse %s: %w", filepath.Base(inputPath), err)
			}

			doc, err := core.EncodeDocument(result.Records, profile)
			if err != nil {
				return fmt.Errorf("encode document: %w", err)
			}

			outputPath := deriveOutputPath(args, inputPath, cfg.Output.Extension)
			if err := os.WriteFile(outputPath, doc, 0o644); err != nil {
				return fmt.Errorf("write document: %w", err)
			}

			info, err := core.InspectDocument(doc)
			if err != nil {
				return fmt.Errorf("inspect generated document: %w", err)
			}

			out := cmd.OutOrStdout()
			color := colorEnabled(cfg.Output.Color, out)

			rows := [][]string{
				{"Rows read", strconv.Itoa(result.DataRows)},
				{"Records", strconv.Itoa(len(result.Records))},
				{"Skipped lines", strconv.Itoa(result.Skipped)},
				{"Print blocks", strconv.Itoa(len(info.Blocks))},
				{"Labels", strconv.Itoa(info.TotalLabels)},
				{"Bytes written", strconv.Itoa(len(doc))},
			}
			fmt.Fprintln(out, renderTable([]string{"Result", "Count"}, rows, 1))

			if result.Skipped > 0 {
				warning := fmt.Sprintf("Skipped input lines: %s", joinLineNumbers(result.SkippedLines))
				fmt.Fprintln(out, colorize(warning, ansiYellow, color))
			}
			fmt.Fprintln(out, colorize(fmt.Sprintf("Wrote %s", outputPath), ansiGreen, color))
			return nil
		},
	}

	cmd.Flags().StringVar(&schemaFlag, "schema", "", "Input schema key (default from config)")
	cmd.Flags().StringVar(&profileFlag, "profile", "", "Format profile key (default from config)")
	return cmd
}

// deriveOutputPath uses the explicit output argument when present, and
// otherwise swaps the input extension for the configured one.
func deriveOutputPath(args []string, inputPath, extension string) string {
	if len(args) > 1 {
		return args[1]
	}
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + extension
}

func joinLineNumbers(lines []int) string {
	parts := make([]string, len(lines))
	for i, n := range lines {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}
