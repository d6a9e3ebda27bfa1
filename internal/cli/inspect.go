package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"autoloader/internal/app"
)

type inspectOptions struct {
	Prefix string
}

func newInspectCommand(cfg *RootConfig) *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show the namespace table and class map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd, cfg, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Prefix, "prefix", "", "Show every directory searched for this namespace prefix")
	return cmd
}

func runInspect(cmd *cobra.Command, cfg *RootConfig, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(cmd.Context(), app.InspectRequest{
		LoadRequest: loadRequest(cmd, cfg),
		Prefix:      opts.Prefix,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "base dir: %s\n", result.BaseDir)
	fmt.Fprintf(out, "namespaces: %d\n", len(result.Namespaces))
	for _, namespace := range result.Namespaces {
		fmt.Fprintf(out, "- %s %s\n", namespace.Prefix, strings.Join(namespace.Paths, ", "))
	}
	fmt.Fprintf(out, "classmap: %d\n", len(result.ClassMap))
	for _, class := range result.ClassMap {
		fmt.Fprintf(out, "- %s %s\n", class.Symbol, class.Path)
	}
	if result.Prefix != "" {
		fmt.Fprintf(out, "search path for %s:\n", result.Prefix)
		for _, dir := range result.PrefixPaths {
			fmt.Fprintf(out, "- %s\n", dir)
		}
	}
	return nil
}
