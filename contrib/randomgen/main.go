package main

import (
	"fmt"
	"os"

	"github.com/inconshreveable/log15"
	"github.com/spf13/cobra"

	"github.com/spikeekips/chacharand/contract"
	"github.com/spikeekips/chacharand/host"
)

var config Config

func newRootCmd() *cobra.Command {
	resetFlags()

	rootCmd := &cobra.Command{
		Use:           "randomgen",
		Short:         "randomgen runs the deterministic random number contract",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			config = c

			lvl, _ := log15.LvlFromString(config.Log.Level)
			if err := setLogging(lvl, config.Log.Format, config.Log.Out); err != nil {
				return err
			}

			log.Debug("parsed flags", "flags", printFlags(cmd, config.Log.Format))
			log.Debug("config loaded", "config", config)

			return nil
		},
	}

	rootCmd.PersistentFlags().Var(&flagLogLevel, "log-level", "log level: {debug error warn info crit}")
	rootCmd.PersistentFlags().Var(&flagLogFormat, "log-format", "log format: {json terminal}")
	rootCmd.PersistentFlags().StringVar(&flagLogOut, "log", flagLogOut, "log output file")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", flagConfig, "yaml config file")
	rootCmd.PersistentFlags().Var(&flagOutputFormat, "output", "output format: {hex decimal json}")

	rootCmd.AddCommand(
		newCallCmd(),
		newExecCmd(),
		newDeriveCmd(),
		newEncodeCmd(),
		newDecodeCmd(),
		newSelectorCmd(),
		newABICmd(),
		newBatchCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func resetFlags() {
	flagLogLevel = FlagLogLevel{lvl: log15.LvlError}
	flagLogFormat = FlagLogFormat{f: "json"}
	flagOutputFormat = FlagOutputFormat{f: "hex"}
	flagLogOut = ""
	flagConfig = ""
	flagWorkers = 0
}

func resolveConfig(cmd *cobra.Command) (Config, error) {
	c := defaultConfig()
	if len(flagConfig) > 0 {
		log.Debug("trying to load config", "file", flagConfig)

		l, err := loadConfig(flagConfig)
		if err != nil {
			return Config{}, err
		}
		c = l
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		c.Log.Level = flagLogLevel.String()
	}
	if flags.Changed("log-format") {
		c.Log.Format = flagLogFormat.String()
	}
	if flags.Changed("log") {
		c.Log.Out = flagLogOut
	}
	if flags.Changed("output") {
		c.Output.Format = flagOutputFormat.String()
	}
	if flags.Lookup("workers") != nil && flags.Changed("workers") {
		c.Batch.Workers = flagWorkers
	}

	if err := c.IsValid(); err != nil {
		return Config{}, err
	}

	return c, nil
}

func exitStatus(err error) int {
	if err == nil {
		return 0
	}

	switch code := contract.ExitCodeFromError(err); code {
	case host.ExitMalformedInput, host.ExitUnknownSelector:
		return 1 + int(code)
	default:
		return 1
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
		os.Exit(exitStatus(err))
	}

	os.Exit(0)
}
