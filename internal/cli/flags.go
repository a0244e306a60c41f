package cli

import (
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"dcat-packages/internal/types"
)

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}

// configFlag binds a config key to a command-local flag.
type configFlag struct {
	key  string
	flag string
}

// bindCommandFlags binds config keys to the flags of the command that is
// about to run. Subcommands share keys such as output_format, and viper
// keeps only the last binding per key.
func bindCommandFlags(cmd *cobra.Command, bindings ...configFlag) error {
	for _, binding := range bindings {
		if err := viper.BindPFlag(binding.key, cmd.Flags().Lookup(binding.flag)); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to bind flag --" + binding.flag).
				WithCause(err)
		}
	}
	return nil
}

func parseOutputFormat(value string) (types.OutputFormat, error) {
	switch format := types.OutputFormat(strings.ToLower(strings.TrimSpace(value))); format {
	case "", types.OutputFormatJSON:
		return types.OutputFormatJSON, nil
	case types.OutputFormatYAML, "yml":
		return types.OutputFormatYAML, nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unsupported output format: " + value)
	}
}
