// Package cli implements the motifscan command tree.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"motifscan/internal/logger"
	"motifscan/internal/output"
)

// errNoMatches marks a clean run that found nothing; Execute maps it to
// exit code 1 without printing an error.
var errNoMatches = errors.New("no matches found")

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "motifscan",
	Short: "motifscan finds DNA motifs in linear time",
	Long: `motifscan locates exact occurrences of short DNA patterns (A/C/G/T/N)
inside longer sequences, using a KMP-style automaton for single patterns
and an Aho-Corasick automaton for pattern sets.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and maps errors to exit codes:
// 0 ok, 1 no matches, 2 usage or input error.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errNoMatches) {
			return 1
		}
		fmt.Fprintln(os.Stderr, "motifscan:", err)
		return 2
	}
	return 0
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(searchCmd, scanCmd, motifsCmd, benchCmd, versionCmd)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.motifscan.yaml)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "output format: "+strings.Join(output.Formats(), " | "))
	rootCmd.PersistentFlags().Bool("no-header", false, "suppress the header row in tabular output")
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("no-header", rootCmd.PersistentFlags().Lookup("no-header"))
}

func initConfig() {
	if verbose {
		logger.SetLevel(slog.LevelDebug)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".motifscan")
	}

	viper.SetEnvPrefix("MOTIFSCAN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		logger.Debug("using config file", "path", viper.ConfigFileUsed())
	}
}
