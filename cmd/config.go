package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

type AppConfig struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Generator GeneratorConfig `mapstructure:"generator"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	Mode            string        `mapstructure:"mode"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type GeneratorConfig struct {
	Seed int64 `mapstructure:"seed"`
}

// bindConfig registers defaults and flag bindings on every Execute.
func bindConfig() {
	setDefaults()

	viper.BindPFlag("log.level", RootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("generator.seed", RootCmd.PersistentFlags().Lookup("seed"))
	viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	viper.BindPFlag("server.mode", serveCmd.Flags().Lookup("mode"))
}

func setDefaults() {
	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("server.mode", gin.ReleaseMode)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
	viper.SetDefault("generator.seed", 0)
}

// LoadConfig resolves the configuration (Flag > Env > Config file > Default).
func LoadConfig() (*AppConfig, error) {
	if configErr != nil {
		return nil, configErr
	}

	var cfg AppConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	switch cfg.Server.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return nil, fmt.Errorf("invalid server.mode %q (want debug, release or test)", cfg.Server.Mode)
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		return nil, fmt.Errorf("server.shutdown_timeout must be positive, got %s", cfg.Server.ShutdownTimeout)
	}

	return &cfg, nil
}

// NewLogger builds the process logger from the log section.
func NewLogger(cfg LogConfig, w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log.level %q: %w", cfg.Level, err)
	}

	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "hanzi-namer",
		Level:           level,
		ReportTimestamp: true,
	})

	switch cfg.Format {
	case "", "text":
	case "json":
		logger.SetFormatter(log.JSONFormatter)
	case "logfmt":
		logger.SetFormatter(log.LogfmtFormatter)
	default:
		return nil, fmt.Errorf("invalid log.format %q (want text, json or logfmt)", cfg.Format)
	}
	return logger, nil
}
