package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func inspectCmd(a *app) *cobra.Command {
	var (
		output string
		list   bool
	)

	cmd := &cobra.Command{
		Use:   "inspect [component]",
		Short: "Describe a generated component class",
		Long: `Print the tag, props and defaults, data keys, methods, computed
properties, watchers, slots and hooks of a showcase component's class.

Examples:
  vbridge inspect --list
  vbridge inspect counter
  vbridge inspect card -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if list || len(args) == 0 {
				return a.writeList(out)
			}

			entry, err := a.catalog.Get(args[0])
			if err != nil {
				return err
			}
			desc := entry.Class.Describe()

			switch output {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(desc)
			case "yaml", "":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(desc); err != nil {
					return err
				}
				return enc.Close()
			}
			return fmt.Errorf("unknown output format %q (want json or yaml)", output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "Output format: json or yaml")
	cmd.Flags().BoolVarP(&list, "list", "l", false, "List the showcase components")

	return cmd
}

func (a *app) writeList(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, name := range a.catalog.Names() {
		entry, _ := a.catalog.Get(name)
		fmt.Fprintf(tw, "%s\t<%s>\t%s\n", name, entry.Class.Tag(), entry.Description)
	}
	return tw.Flush()
}
