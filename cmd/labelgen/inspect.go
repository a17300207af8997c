package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/labelgen/internal/core"
)

func newInspectCommand() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:         "inspect <file.prn>",
		Short:       "Verify a printer document and show what it will print",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := expandPath(args[0])
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}

			doc, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read document: %w", err)
			}

			out := cmd.OutOrStdout()

			if raw {
				fmt.Fprint(out, core.HumanReadable(doc))
				return nil
			}

			info, err := core.InspectDocument(doc)
			if err != nil {
				return fmt.Errorf("inspect %s: %w", path, err)
			}

			summary := [][]string{
				{"Commands", strconv.Itoa(info.Commands)},
				{"Header commands", strconv.Itoa(info.HeaderCommands)},
				{"Print blocks", strconv.Itoa(len(info.Blocks))},
				{"Labels", strconv.Itoa(info.TotalLabels)},
			}
			fmt.Fprintln(out, renderTable([]string{"Document", "Count"}, summary, 1))

			if len(info.Blocks) == 0 {
				return nil
			}

			rows := make([][]string, 0, len(info.Blocks))
			for i, block := range info.Blocks {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					block.Barcode,
					block.Line1,
					block.Line2,
					strconv.Itoa(block.Copies),
				})
			}
			fmt.Fprintln(out, renderTable([]string{"#", "Barcode", "Line 1", "Line 2", "Copies"}, rows, 0, 4))
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print the full command listing instead of the summary")
	return cmd
}
