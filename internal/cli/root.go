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

	"dcat-packages/internal/app"
	"dcat-packages/internal/core"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "DCAT_PACKAGES"

type RootConfig struct {
	ConfigFile      string
	LogLevel        string
	LicenseRegistry string
	FormatCatalogs  []string
}

func Execute() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg(errorMessage(err))
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	cmd := &cobra.Command{
		Use:     "dcat-packages",
		Short:   "Convert DCAT datasets to catalog packages and back",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"))
			return nil
		},
	}
	// Errors are logged once by Execute.
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	cmd.PersistentFlags().StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	cmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", "info", "Log level")
	cmd.PersistentFlags().StringVar(&cfg.LicenseRegistry, "license-registry", "", "License registry file replacing the built-in list")
	cmd.PersistentFlags().StringSliceVar(&cfg.FormatCatalogs, "format-catalog", nil, "Format table(s) layered over the built-in one")
	_ = viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("license_registry", cmd.PersistentFlags().Lookup("license-registry"))
	_ = viper.BindPFlag("format_catalog", cmd.PersistentFlags().Lookup("format-catalog"))

	cmd.AddCommand(newToPackageCommand())
	cmd.AddCommand(newToDcatCommand())
	cmd.AddCommand(newConvertCatalogCommand())
	cmd.AddCommand(newExportCommand())
	cmd.AddCommand(newInspectCommand())
	cmd.AddCommand(newFormatsCommand())
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

	viper.SetConfigName("dcat-packages")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/dcat-packages")
	if err := viper.ReadInConfig(); err != nil {
		return nil
	}
	return nil
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
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

func exitCodeForError(err error) int {
	if core.IsConversionError(err) {
		return 2
	}
	code := errbuilder.CodeOf(err)
	switch code {
	case errbuilder.CodeInvalidArgument, errbuilder.CodeAlreadyExists:
		return 2
	case errbuilder.CodeFailedPrecondition, errbuilder.CodePermissionDenied:
		return 3
	case errbuilder.CodeNotFound:
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

func newAppService() (app.Service, error) {
	return app.NewService(app.ServiceConfig{
		LicenseRegistry: viper.GetString("license_registry"),
		FormatCatalogs:  viper.GetStringSlice("format_catalog"),
	})
}
