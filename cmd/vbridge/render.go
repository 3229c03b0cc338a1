package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vbridge/pkg/vdom"
)

func renderCmd(a *app) *cobra.Command {
	var (
		sets      []string
		propsFile string
		pretty    bool
		example   bool
	)

	cmd := &cobra.Command{
		Use:   "render <component>",
		Short: "Render a showcase component to HTML",
		Long: `Mount a showcase component in the reference host and print the
committed tree as HTML.

Props come from, in increasing precedence: the component's example props
(--example), a YAML or JSON props file, and --set assignments. Values given
with --set are parsed as YAML scalars.

Examples:
  vbridge render label --set text=Hello
  vbridge render counter --set start=3 --pretty
  vbridge render todo-list --props-file todos.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var sources []vdom.Props

			if example {
				entry, err := a.catalog.Get(args[0])
				if err != nil {
					return err
				}
				sources = append(sources, entry.Example)
			}
			if propsFile != "" {
				props, err := loadPropsFile(propsFile)
				if err != nil {
					return err
				}
				sources = append(sources, props)
			}
			set, err := parseAssignments(sets)
			if err != nil {
				return err
			}
			sources = append(sources, set)

			html, err := a.renderHTML(cmd.Context(), args[0], mergeProps(sources...), pretty)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), html)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "Set a prop (name=value), repeatable")
	cmd.Flags().StringVarP(&propsFile, "props-file", "f", "", "YAML or JSON file of props")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Indent the output")
	cmd.Flags().BoolVarP(&example, "example", "e", false, "Start from the component's example props")

	return cmd
}
