package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jrazmi/crudkit/app/generators/crudgen"
	"github.com/jrazmi/crudkit/app/generators/fieldspec"
	"github.com/jrazmi/crudkit/bridge/scaffolding/errs"
	"github.com/jrazmi/crudkit/sdk/logger"
	"github.com/spf13/cobra"
)

func newGenerateCrudCmd(log *logger.Logger, cfg func() (*settings, error)) *cobra.Command {
	var (
		fields   []string
		manifest string
	)

	cmd := &cobra.Command{
		Use:     "generate-crud [resource] [--fields name:type ...] [--from file.yaml]",
		Aliases: []string{"generate_crud"},
		Short:   "Generate model, schema and router files for a resource",
		Long: `Generate app/models, app/schemas and app/routers files with list, get,
create, update and delete endpoints for a resource. Files are overwritten on
every run. Field declarations are name:type pairs and may follow --fields or
the resource name; a trailing "?" marks a field nullable. Run
"scaffold types" for the supported types.`,
		Example: "  scaffold generate-crud product\n" +
			"  scaffold generate-crud product --fields name:str price:float stock:int\n" +
			"  scaffold generate-crud --from article.yaml",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := cfg()
			if err != nil {
				return err
			}

			var resource string
			if len(args) > 0 {
				resource = strings.ToLower(args[0])
				fields = append(fields, args[1:]...)
			}

			var (
				specs    []fieldspec.Field
				warnings []string
			)
			switch {
			case manifest != "":
				m, err := fieldspec.LoadManifest(manifest)
				if err != nil {
					return err
				}
				if len(fields) > 0 {
					return errs.Newf(errs.InvalidArgument, "use either --from or field declarations, not both")
				}
				if resource == "" {
					resource = strings.ToLower(m.Resource)
				} else if m.Resource != "" && !strings.EqualFold(m.Resource, resource) {
					return errs.Newf(errs.InvalidArgument, "manifest resource %q does not match %q", m.Resource, resource)
				}
				specs, warnings, err = m.Build()
				if err != nil {
					return err
				}
			case len(fields) > 0:
				specs, warnings, err = fieldspec.Parse(fields)
				if err != nil {
					return err
				}
			default:
				specs, warnings, err = fieldspec.Parse(s.DefaultFields)
				if err != nil {
					return fmt.Errorf("default_fields: %w", err)
				}
			}

			if resource == "" {
				return errs.Newf(errs.InvalidArgument, "resource name is required")
			}

			for _, w := range warnings {
				log.Warn(w)
			}

			def, err := fieldspec.NewDefinition(resource, specs)
			if err != nil {
				return err
			}

			module := s.Module
			if module == "" {
				// Generate reports a missing module after checking the app dir.
				module, _ = crudgen.DetectModulePath(filepath.Dir(s.AppDir))
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Generating CRUD for resource: %s\n", def.Naming.Resource)

			res, err := crudgen.Generate(def, crudgen.Config{AppDir: s.AppDir, ModulePath: module})
			if err != nil {
				return err
			}

			for _, f := range res.Files() {
				fmt.Fprintf(out, "  Created %s\n", f)
			}
			fmt.Fprintf(out, "\n%s", res.NextSteps)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&fields, "fields", nil, "field declarations, name:type")
	cmd.Flags().StringVar(&manifest, "from", "", "YAML manifest with resource and fields")
	return cmd
}
