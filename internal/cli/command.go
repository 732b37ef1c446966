package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/kirlot/internal"
)

// DefaultHistoryPath returns the default location of the history database
func DefaultHistoryPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "kirlot", "history.db")
}

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kirlot [text]",
		Short: "Uzbek Cyrillic/Latin transliterator",
		Long: `kirlot converts Uzbek text between the Cyrillic and Latin alphabets.

Without --to the direction is detected from the dominant script of the
input. Text is taken from the arguments, from --file or from stdin.

Examples:
  kirlot Ўзбекистон                   # O'zbekiston
  kirlot --to cyrillic "yo'q"         # йўқ
  kirlot --file letter.txt -o out.txt # Convert a whole file
  kirlot --batch words.txt --csv .    # Convert and check a word list
  kirlot repl                         # Interactive mode
  kirlot serve --addr :9090           # Start the HTTP service`,
		Args:    cobra.ArbitraryArgs,
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

// CreateServeCommand creates the "serve" subcommand
func CreateServeCommand(flags *Flags) *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP conversion service",
		Long: `serve exposes the transliterator over HTTP.

  GET  /healthz
  POST /v1/convert/{latin|cyrillic|auto}   {"text": "..."}`,
		Args: cobra.NoArgs,
	}

	serveCmd.Flags().StringVar(&flags.Addr, "addr", flags.Addr, "Listen address")
	viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))

	return serveCmd
}

// CreateReplCommand creates the interactive "repl" subcommand
func CreateReplCommand(flags *Flags) *cobra.Command {
	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "Convert lines interactively",
		Long: `repl converts every line typed as soon as Enter is pressed.

Commands:
  :lat :cyr :auto   switch the target script
  :q                quit (or <ctrl>D)`,
		Args: cobra.NoArgs,
	}

	// --to is kept apart from flags.Direction so that LoadConfig, which runs
	// after flag parsing, cannot overwrite a value given on the command line.
	var to string
	replCmd.Flags().StringVarP(&to, "to", "t", flags.Direction, "Target script: latin, cyrillic or auto")
	replCmd.PreRun = func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("to") {
			flags.Direction = to
		}
	}

	return replCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.kirlot.yaml)")
	cmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")
	cmd.PersistentFlags().BoolVar(&flags.History, "history", false, "Record conversions in the history database")
	cmd.PersistentFlags().StringVar(&flags.HistoryDB, "history-db", flags.HistoryDB, "History database path")
	cmd.PersistentFlags().IntVar(&flags.MaxWords, "max-words", 0, "Truncate input to this many words (0 means no limit)")

	// Local flags
	cmd.Flags().StringVarP(&flags.Direction, "to", "t", flags.Direction, "Target script: latin, cyrillic or auto")
	cmd.Flags().StringVar(&flags.InputFile, "file", "", "Convert the contents of a file")
	cmd.Flags().StringVarP(&flags.OutputPath, "output", "o", "", "Write the result to a file instead of stdout")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Convert a file line by line; 'source = expected' lines are checked")
	cmd.Flags().StringVar(&flags.CSVPath, "csv", "", "Export batch results as CSV (file or directory)")
	cmd.Flags().BoolVar(&flags.Stats, "stats", false, "Print word count and truncation info to stderr")
	cmd.Flags().IntVar(&flags.ListHistory, "list-history", 0, "Print the N most recent history entries")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Move the history database to a timestamped archive")

	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("convert.direction", cmd.Flags().Lookup("to"))
	viper.BindPFlag("convert.max_words", cmd.PersistentFlags().Lookup("max-words"))
	viper.BindPFlag("output.path", cmd.Flags().Lookup("output"))
	viper.BindPFlag("history.enabled", cmd.PersistentFlags().Lookup("history"))
	viper.BindPFlag("history.path", cmd.PersistentFlags().Lookup("history-db"))
	viper.BindPFlag("log.level", cmd.PersistentFlags().Lookup("log-level"))
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

		// Search config in home directory with name ".kirlot" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".kirlot")
	}

	// Environment variables, e.g. KIRLOT_CONVERT_DIRECTION
	viper.SetEnvPrefix("KIRLOT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// LoadConfig copies values set in the config file, the environment or on
// the command line into flags. Keys that are not set anywhere keep the
// flag defaults.
func LoadConfig(flags *Flags) {
	if viper.IsSet("convert.direction") {
		flags.Direction = viper.GetString("convert.direction")
	}
	if viper.IsSet("convert.max_words") {
		flags.MaxWords = viper.GetInt("convert.max_words")
	}
	if viper.IsSet("output.path") {
		flags.OutputPath = expandHome(viper.GetString("output.path"))
	}
	if viper.IsSet("history.enabled") {
		flags.History = viper.GetBool("history.enabled")
	}
	if viper.IsSet("history.path") {
		flags.HistoryDB = expandHome(viper.GetString("history.path"))
	}
	if viper.IsSet("log.level") {
		flags.LogLevel = viper.GetString("log.level")
	}
	if viper.IsSet("server.addr") {
		flags.Addr = viper.GetString("server.addr")
	}
	if viper.IsSet("server.read_timeout") {
		flags.ReadTimeout = viper.GetDuration("server.read_timeout")
	}
	if viper.IsSet("server.write_timeout") {
		flags.WriteTimeout = viper.GetDuration("server.write_timeout")
	}
	if viper.IsSet("server.max_body_bytes") {
		flags.MaxBodyBytes = viper.GetInt64("server.max_body_bytes")
	}
}

// expandHome replaces a leading "~/" with the home directory
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
