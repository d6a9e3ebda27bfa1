package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"autoloader/internal/app"
	"autoloader/internal/types"
)

type resolveOptions struct {
	ShowLoaded bool
}

func newResolveCommand(cfg *RootConfig) *cobra.Command {
	opts := resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve SYMBOL...",
		Short: "Resolve symbols and load their source units",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd.Context(), cmd, cfg, opts, args)
		},
	}
	cmd.Flags().BoolVar(&opts.ShowLoaded, "show-loaded", false, "Print every loaded source unit")
	_ = viper.BindPFlag("show_loaded", cmd.Flags().Lookup("show-loaded"))
	return cmd
}

func runResolve(ctx context.Context, cmd *cobra.Command, cfg *RootConfig, opts resolveOptions, symbols []string) error {
	service := newAppService()
	result, err := service.Resolve(ctx, app.ResolveRequest{
		LoadRequest: loadRequest(cmd, cfg),
		Symbols:     symbols,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, entry := range result.Entries {
		source := "namespace"
		if entry.Kind == types.ResultResolved {
			source = "classmap"
		}
		fmt.Fprintf(out, "%s -> %s (%s)\n", entry.Symbol, entry.Path, source)
	}
	if resolveBool(cmd, opts.ShowLoaded, "show_loaded", "show-loaded") {
		fmt.Fprintln(out, "loaded units:")
		for _, path := range result.LoadedFiles {
			fmt.Fprintf(out, "- %s\n", path)
		}
	}
	if len(result.Missing) > 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("unknown symbols: " + strings.Join(result.Missing, ", "))
	}
	return nil
}
