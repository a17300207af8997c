package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/labelgen/internal/core"
)

func newSchemasCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schemas",
		Short: "List the registered input schemas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0)
			for _, s := range core.Schemas() {
				rows = append(rows, []string{
					s.Key,
					s.Label,
					s.CodeColumn,
					s.DescriptionColumn,
					s.QuantityColumn,
					string(s.Rule),
				})
			}
			headers := []string{"Key", "Label", "Code column", "Description column", "Quantity column", "Rule"}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows))
			return nil
		},
	}
}

func newProfilesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the registered format profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0)
			for _, p := range core.Profiles() {
				rows = append(rows, []string{
					p.Key,
					p.Label,
					string(p.Layout),
					string(p.QuantityPolicy),
					string(p.LineTermination),
					strconv.Itoa(p.TextWidth),
				})
			}
			headers := []string{"Key", "Label", "Layout", "Quantity policy", "Termination", "Text width"}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, 5))
			return nil
		},
	}
}
