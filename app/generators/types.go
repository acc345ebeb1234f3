package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/jrazmi/crudkit/app/generators/fieldspec"
	"github.com/spf13/cobra"
)

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the field types generate-crud understands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TYPE\tGO\tSQL\tALSO ACCEPTED")
			for _, k := range fieldspec.Kinds() {
				m := fieldspec.MapKind(k)
				goType := m.GoType
				if m.Nullable {
					goType = "*" + goType
				}
				sqlType := m.SQLType
				if m.Default != "" {
					sqlType += " DEFAULT " + m.Default
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", k, goType, sqlType, strings.Join(fieldspec.Synonyms(k)[1:], ", "))
			}
			return tw.Flush()
		},
	}
}
