package main

import (
	"errors"
	"strings"

	"github.com/grindlemire/go-panels"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const version = "0.1.0"

// NewCli builds the panels command tree.
func NewCli() *cobra.Command {
	cobra.OnInitialize(initCobra)

	rootCmd := &cobra.Command{
		Use:               "panels",
		Short:             "Lay out, render and browse custom layout panels",
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: configureLogging,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Print only errors")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print debug output, including every layout pass")
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(
		newListCmd(),
		newRenderCmd(),
		newBenchCmd(),
		newGalleryCmd(),
	)
	return rootCmd
}

func initCobra() {
	viper.SetEnvPrefix("PANELS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()
}

// configureLogging applies -q and -v and routes panel diagnostics through
// the CLI logger.
func configureLogging(cmd *cobra.Command, args []string) error {
	verbose := viper.GetBool("verbose")
	quiet := viper.GetBool("quiet")
	if quiet && verbose {
		return errors.New("both \"-q\" and \"-v\" were specified, please pick only one")
	}

	log.SetLevel(log.InfoLevel)
	if quiet {
		log.SetLevel(log.ErrorLevel)
	}
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	panels.SetLogger(log.StandardLogger())
	return nil
}
