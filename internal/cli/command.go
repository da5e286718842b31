package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"codeberg.org/snonux/phonconv/internal"
	"codeberg.org/snonux/phonconv/internal/logging"
)

// configKeys maps flag names onto their viper configuration keys
var configKeys = map[string]string{
	"from":       "notation.from",
	"to":         "notation.to",
	"format":     "output.format",
	"output":     "output.file",
	"workers":    "batch.workers",
	"db":         "lexicon.path",
	"log-level":  "log.level",
	"log-pretty": "log.pretty",
}

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "phonconv [transcription]",
		Short: "Convert phonemic transcriptions between ARPABET, X-SAMPA and IPA",
		Long: `phonconv rewrites space separated phonemic transcriptions of English
from ARPABET or X-SAMPA into ARPABET, X-SAMPA or IPA, moving stress
marks to the start of the syllable when writing IPA.

Examples:
  phonconv g uu 1 . g ax 0 l                    # ARPABET to IPA (default)
  phonconv --from xsampa --to arpabet 'S i: " p'
  phonconv --batch words.txt --to xsampa --format json
  phonconv --batch words.txt --db lexicon.db    # also store all spellings
  phonconv table                                # list the phoneme catalog
  phonconv lookup google --db lexicon.db`,
		Args:          cobra.ArbitraryArgs,
		Version:       internal.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

// CreateTableCommand creates the command listing the phoneme catalog
func CreateTableCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "List every phoneme with its ARPABET, X-SAMPA and IPA spelling",
		Args:  cobra.NoArgs,
	}
}

// CreateLookupCommand creates the command querying the lexicon database
func CreateLookupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup [word]",
		Short: "Show stored pronunciations from the lexicon database",
		Long: `lookup prints the pronunciations of a word stored by a previous
run with --db. Without a word every stored pronunciation is listed.`,
		Args: cobra.MaximumNArgs(1),
	}
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.phonconv.yaml)")
	cmd.PersistentFlags().StringVarP(&flags.Format, "format", "f", flags.Format, "Output format: text, csv, json, yaml or table")
	cmd.PersistentFlags().StringVarP(&flags.OutputFile, "output", "o", "", "Write output to file instead of stdout")
	cmd.PersistentFlags().StringVar(&flags.LexiconPath, "db", "", "SQLite lexicon database to store or look up pronunciations")
	cmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn or error")
	cmd.PersistentFlags().BoolVar(&flags.LogPretty, "log-pretty", false, "Human readable log output")

	// Local flags
	cmd.Flags().StringVar(&flags.From, "from", flags.From, "Input notation: arpabet or xsampa")
	cmd.Flags().StringVar(&flags.To, "to", flags.To, "Output notation: arpabet, xsampa or ipa")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Convert transcriptions from file (one per line, optionally 'word = transcription')")
	cmd.Flags().IntVarP(&flags.Workers, "workers", "w", flags.Workers, "Number of concurrent conversions in batch mode")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Move an existing lexicon database to archive/ before writing")

	bindFlagsToViper(cmd)
}

func lookupFlag(cmd *cobra.Command, name string) *pflag.Flag {
	if f := cmd.Flags().Lookup(name); f != nil {
		return f
	}
	return cmd.PersistentFlags().Lookup(name)
}

func bindFlagsToViper(cmd *cobra.Command) {
	for name, key := range configKeys {
		if f := lookupFlag(cmd, name); f != nil {
			viper.BindPFlag(key, f)
		}
	}
}

// ApplyConfig copies the effective settings back into flags. Values given
// on the command line win over the environment, which wins over the config
// file, which wins over the flag defaults.
func ApplyConfig(flags *Flags) {
	flags.From = viper.GetString("notation.from")
	flags.To = viper.GetString("notation.to")
	flags.Format = viper.GetString("output.format")
	flags.OutputFile = viper.GetString("output.file")
	flags.Workers = viper.GetInt("batch.workers")
	flags.LexiconPath = viper.GetString("lexicon.path")
	flags.LogLevel = viper.GetString("log.level")
	flags.LogPretty = viper.GetBool("log.pretty")
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".phonconv" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".phonconv")
	}

	// Environment variables, e.g. PHONCONV_NOTATION_TO=xsampa
	viper.SetEnvPrefix("PHONCONV")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// No config file in the default locations is fine
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log := logging.Get()
			log.Warn().Str("config", cfgFile).Err(err).Msg("failed to read config file")
		}
	}
}

// ConfigFileUsed returns the config file viper loaded, if any
func ConfigFileUsed() string {
	return viper.ConfigFileUsed()
}
