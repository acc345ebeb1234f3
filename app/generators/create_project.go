package main

import (
	"fmt"

	"github.com/jrazmi/crudkit/app/generators/projectgen"
	"github.com/spf13/cobra"
)

func newCreateProjectCmd(cfg func() (*settings, error)) *cobra.Command {
	var (
		dir    string
		module string
	)

	cmd := &cobra.Command{
		Use:     "create-project <name>",
		Aliases: []string{"create_project"},
		Short:   "Create a new Go HTTP service project",
		Example: "  scaffold create-project my-api\n  scaffold create-project shop --module github.com/acme/shop",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := cfg()
			if err != nil {
				return err
			}
			if module == "" {
				module = s.Module
			}

			name := args[0]
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Creating project: %s\n", name)

			res, err := projectgen.Create(name, projectgen.Config{Dir: dir, Module: module})
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Project '%s' created with %d files\n\n", name, len(res.Files))
			fmt.Fprint(out, res.NextSteps)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "parent directory of the new project")
	cmd.Flags().StringVar(&module, "module", "", "module path (default: module from config, else the slugified name)")
	return cmd
}
