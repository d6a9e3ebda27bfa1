package cli

import (
	"errors"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"autoloader/internal/app"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "AUTOLOADER"

type RootConfig struct {
	ConfigFile string
	LogLevel   string
	BaseDir    string
	Manifests  []string
	ClassMap   []string
	Namespaces []string
}

func Execute() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	cfg := &RootConfig{}
	cmd := &cobra.Command{
		Use:          "autoloader",
		Short:        "Resolve namespaced symbols to Go source units",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"))
			return nil
		},
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	flags.StringVar(&cfg.LogLevel, "log-level", "info", "Log level")
	flags.StringVar(&cfg.BaseDir, "base-dir", "", "Base directory for relative paths (default: working directory)")
	flags.StringSliceVar(&cfg.Manifests, "manifest", nil, "Manifest files (yaml, json, toml or go), loaded in order")
	flags.StringArrayVar(&cfg.ClassMap, "classmap", nil, `Class map entry "Symbol=path"`)
	flags.StringArrayVar(&cfg.Namespaces, "namespace", nil, `Namespace entry "Prefix=dir[,dir...]"`)
	_ = viper.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("base_dir", flags.Lookup("base-dir"))
	_ = viper.BindPFlag("manifests", flags.Lookup("manifest"))
	_ = viper.BindPFlag("classmap", flags.Lookup("classmap"))
	_ = viper.BindPFlag("namespaces", flags.Lookup("namespace"))

	cmd.AddCommand(newResolveCommand(cfg))
	cmd.AddCommand(newInspectCommand(cfg))
	cmd.AddCommand(newDumpCommand(cfg))
	return cmd
}

func initConfig(configFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read config file").
				WithCause(err)
		}
		return nil
	}

	viper.SetConfigName("autoloader")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/autoloader")
	if err := viper.ReadInConfig(); err != nil {
		return nil
	}
	return nil
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.DefaultContextLogger = &log.Logger
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func newAppService() app.Service {
	return app.NewService()
}

// loadRequest merges the persistent flags with config and environment values.
func loadRequest(cmd *cobra.Command, cfg *RootConfig) app.LoadRequest {
	return app.LoadRequest{
		BaseDir:    resolveString(cmd, cfg.BaseDir, "base_dir", "base-dir"),
		Manifests:  resolveStrings(cmd, cfg.Manifests, "manifests", "manifest"),
		ClassMap:   resolveStrings(cmd, cfg.ClassMap, "classmap", "classmap"),
		Namespaces: resolveStrings(cmd, cfg.Namespaces, "namespaces", "namespace"),
	}
}

func exitCodeForError(err error) int {
	switch errbuilder.CodeOf(err) {
	case errbuilder.CodeInvalidArgument:
		return 2
	case errbuilder.CodeNotFound:
		return 3
	case errbuilder.CodeFailedPrecondition:
		return 4
	case errbuilder.CodeInternal:
		return 5
	default:
		return 1
	}
}

func errorMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}
