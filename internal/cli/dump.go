package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"autoloader/internal/app"
)

type dumpOptions struct {
	Output   string
	Excludes []string
}

func newDumpCommand(cfg *RootConfig) *cobra.Command {
	opts := dumpOptions{}
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Write an optimized manifest listing every reachable symbol",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDump(cmd, cfg, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Output, "output", "autoload.yaml", "Manifest file to write")
	cmd.Flags().StringSliceVar(&opts.Excludes, "exclude", nil, "Extra doublestar patterns to leave out of the class map")
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("excludes", cmd.Flags().Lookup("exclude"))
	return cmd
}

func runDump(cmd *cobra.Command, cfg *RootConfig, opts dumpOptions) error {
	service := newAppService()
	result, err := service.Dump(cmd.Context(), app.DumpRequest{
		LoadRequest: loadRequest(cmd, cfg),
		Output:      resolveString(cmd, opts.Output, "output", "output"),
		Excludes:    resolveStrings(cmd, opts.Excludes, "excludes", "exclude"),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: %d classes, %d namespaces\n", result.Output, result.Classes, result.Namespaces)
	return nil
}
