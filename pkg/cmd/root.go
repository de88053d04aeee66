package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"f1champsseason/pkg/config"
	"f1champsseason/pkg/log"
	"f1champsseason/pkg/settings"
)

const envPrefix = "F1S"

var cfgFile string

// NewRootCmd builds the command tree. Running it without a subcommand starts
// the interactive season menu.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "f1season",
		Short: "Track the standings of a Formula 1 season",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initConfig(cmd.Root())
			return log.Init(config.LogLevel, config.LogFormat)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeason(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.f1season.yml)")
	rootCmd.PersistentFlags().StringVar(&config.LogLevel, "log-level", "info",
		"controls the log level (debug, info, warn, error, fatal)")
	rootCmd.PersistentFlags().StringVar(&config.LogFormat, "log-format", "dev",
		"controls the log output format (dev, json)")
	rootCmd.PersistentFlags().StringVar(&config.ChampionsFile, "champions-file", "f1info.csv",
		"csv file with year,driver champion rows")
	rootCmd.PersistentFlags().StringVar(&config.ConstructorsFile, "constructors-file", "f1info2.csv",
		"csv file with year,constructor champion rows")
	rootCmd.PersistentFlags().StringVar(&config.CrashStatsURL, "crash-stats-url", "https://f1-dnf-stats.fly.dev/",
		"page holding the DNF statistics table")
	rootCmd.PersistentFlags().StringVar(&config.HTTPTimeout, "http-timeout", "10s",
		"timeout for the crash statistics request")
	rootCmd.PersistentFlags().StringVar(&config.WebserverAddress, "webserver-address", "",
		"listen address for the live standings server (disabled when empty)")
	rootCmd.PersistentFlags().StringVar(&config.TelegramToken, "telegram-token", "",
		"telegram bot token (bot and announcements disabled when empty)")
	rootCmd.PersistentFlags().StringVar(&config.SettingsDB, "settings-db", settings.DbName,
		"sqlite file holding telegram subscriptions")

	rootCmd.AddCommand(NewChampionCmd())
	rootCmd.AddCommand(NewConstructorCmd())
	rootCmd.AddCommand(NewCrashesCmd())
	return rootCmd
}

// Execute is called by main.main().
func Execute() {
	defer log.Sync()
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig(rootCmd *cobra.Command) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".f1season")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	bindFlags(rootCmd, viper.GetViper())
	for _, cmd := range rootCmd.Commands() {
		bindFlags(cmd, viper.GetViper())
	}
}

// bindFlags applies config file and environment values to flags not set on
// the command line. --log-level is read from F1S_LOG_LEVEL.
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name,
				fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				fmt.Fprintf(os.Stderr, "Could not bind env var %s: %v", f.Name, err)
			}
		}
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				fmt.Fprintf(os.Stderr, "Could set flag value for %s: %v", f.Name, err)
			}
		}
	})
}
