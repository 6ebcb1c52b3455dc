// Command fdschema inspects the declared table schema: it lists the
// registered tables and dumps their descriptors as JSON.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/femtodream/femtotables/codec"
	"github.com/femtodream/femtotables/table"

	// Register the table descriptors.
	_ "github.com/femtodream/femtotables/collision"
	_ "github.com/femtodream/femtotables/hf"
	_ "github.com/femtodream/femtotables/mcparticle"
	_ "github.com/femtodream/femtotables/mixing"
	_ "github.com/femtodream/femtotables/particle"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "fdschema",
		Short:         "Inspect the femtoscopy table schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newDumpCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TAG\tNAME\tCOLUMNS")
			for _, d := range table.Descriptors() {
				fmt.Fprintf(w, "%s\t%s\t%d\n", d.Tag, d.Name, len(d.Columns))
			}
			return w.Flush()
		},
	}
}

func newDumpCmd() *cobra.Command {
	var codecName string

	cmd := &cobra.Command{
		Use:   "dump [tag...]",
		Short: "Dump table descriptors as JSON",
		Long: `Dump prints the full descriptor of the given tables, or of every
registered table when no tag is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ok := codec.ByName(codecName)
			if !ok {
				return fmt.Errorf("unknown codec %q", codecName)
			}

			var ds []table.Descriptor
			if len(args) == 0 {
				ds = table.Descriptors()
			} else {
				for _, tag := range args {
					d, ok := table.Lookup(tag)
					if !ok {
						return fmt.Errorf("unknown table tag %q", tag)
					}
					ds = append(ds, d)
				}
			}

			data, err := c.Marshal(ds)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&codecName, "codec", codec.Default.Name(), "codec used for output (json, go-json)")

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
