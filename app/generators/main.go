// Command scaffold creates Go service projects and generates CRUD
// resources inside them.
package main

import (
	"fmt"
	"os"

	"github.com/jrazmi/crudkit/sdk/logger"
	"github.com/spf13/cobra"
)

func main() {
	log := logger.NewDefault(logger.WithFormat("text"), logger.WithOutput(os.Stderr), logger.WithLevel("warn"))

	if err := newRootCmd(log).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:   "scaffold",
		Short: "Scaffold Go HTTP services and CRUD resources",
		Long: `scaffold writes a ready to run Go HTTP service (create-project) and adds
resources with list, get, create, update and delete endpoints to it
(generate-crud).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: ./scaffold.yaml)")

	cfg := func() (*settings, error) {
		return loadSettings(configFile)
	}

	root.AddCommand(newCreateProjectCmd(cfg))
	root.AddCommand(newGenerateCrudCmd(log, cfg))
	root.AddCommand(newTypesCmd())
	return root
}
