package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	configErr error
	Config    *AppConfig
	Logger    *log.Logger
)

var RootCmd = &cobra.Command{
	Use:   "hanzi-namer",
	Short: "Generate a Chinese name from an English name",
	Long: `
 _                    _
| |__   __ _ _ __  __(_)   _ __   __ _ _ __ ___   ___ _ __
| '_ \ / _' | '_ \|_  / | | '_ \ / _' | '_ ' _ \ / _ \ '__|
| | | | (_| | | | |/ /| | | | | | (_| | | | | | |  __/ |
|_| |_|\__,_|_| |_/___|_| |_| |_|\__,_|_| |_| |_|\___|_|

HANZI NAMER 字 - three characters from your name, interests and birthday
`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := LoadConfig()
		if err != nil {
			return err
		}
		logger, err := NewLogger(cfg.Log, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		Config = cfg
		Logger = logger
		if used := viper.ConfigFileUsed(); used != "" {
			Logger.Debug("using config file", "path", used)
		}
		return nil
	},
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(bindConfig, initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./hanzi-namer.yaml)")
	RootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	RootCmd.PersistentFlags().Int64("seed", 0, "random seed, 0 picks a random one")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	configErr = nil
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// 1. Executable Directory (Priority 1)
		if ex, err := os.Executable(); err == nil {
			viper.AddConfigPath(filepath.Dir(ex))
		}
		// 2. Current Directory (Priority 2)
		viper.AddConfigPath(".")

		viper.SetConfigName("hanzi-namer")
		viper.SetConfigType("yaml")
	}

	// HANZI_NAMER_SERVER_ADDR overrides server.addr
	viper.SetEnvPrefix("HANZI_NAMER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Only an explicit --config or a broken file is an error.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			configErr = fmt.Errorf("failed to read config: %w", err)
		}
	}
}
