package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// Version is set at build time via -ldflags.
var Version = "dev"

type ServerConfig struct {
	Port             int           `mapstructure:"port"`
	GracefulShutdown time.Duration `mapstructure:"graceful-shutdown"`
	ReadTimeout      time.Duration `mapstructure:"read-timeout"`
	WriteTimeout     time.Duration `mapstructure:"write-timeout"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type DBConfig struct {
	DataSource  string `mapstructure:"data-source"`
	PrepareStmt bool   `mapstructure:"prepare-stmt"`
	LogLevel    string `mapstructure:"log-level"`
	Pool        struct {
		Enable             bool          `mapstructure:"enable"`
		MaxOpenConnections int           `mapstructure:"max-open-connections"`
		MaxIdleConnections int           `mapstructure:"max-idle-connections"`
		MaxLifetime        time.Duration `mapstructure:"max-lifetime"`
	} `mapstructure:"pool"`
}

type CronJobConfig struct {
	Enable           bool          `mapstructure:"enable"`
	PurgeInterval    time.Duration `mapstructure:"purge-interval"`
	DeletedRetention time.Duration `mapstructure:"deleted-retention"`
}

type ServerCmdConfig struct {
	Server   ServerConfig  `mapstructure:"server"`
	Log      LoggingConfig `mapstructure:"log"`
	DB       DBConfig      `mapstructure:"db"`
	CronJobs CronJobConfig `mapstructure:"cronjobs"`
}

type ConfigLoader struct {
	v *viper.Viper
}

func NewConfigLoader() *ConfigLoader {
	return &ConfigLoader{
		v: viper.New(),
	}
}

func StringToDurationHook() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		if t != reflect.TypeOf(time.Duration(0)) {
			return data, nil
		}
		str, ok := data.(string)
		if !ok {
			return data, nil
		}
		return time.ParseDuration(str)
	}
}

func (cl *ConfigLoader) InitializeConfig(cmd *cobra.Command) error {
	cl.v.SetConfigType("toml")

	cfgFile := cmd.Flags().Lookup("config").Value.String()

	if cfgFile != "" {
		cl.v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("error getting home directory: %v", err)
		}
		cl.v.AddConfigPath(filepath.Join(home, ".sanchara"))
		cl.v.AddConfigPath(".")
		cl.v.SetConfigName("config")
	}

	cl.v.SetEnvPrefix("sanchara")
	cl.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	cl.v.AutomaticEnv()

	if err := cl.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("error binding flags: %v", err)
	}

	if err := cl.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %v", err)
		}
	}

	return nil
}

func (cl *ConfigLoader) Load(cfg interface{}) error {
	config := &mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			StringToDurationHook(),
		),
		WeaklyTypedInput: true,
		Result:           cfg,
	}

	decoder, err := mapstructure.NewDecoder(config)
	if err != nil {
		return fmt.Errorf("failed to create decoder: %v", err)
	}

	if err := decoder.Decode(cl.v.AllSettings()); err != nil {
		return fmt.Errorf("failed to decode config: %v", err)
	}

	return nil
}

func AddCommonFlags(flags *pflag.FlagSet, config *ServerCmdConfig) {
	flags.StringP("config", "c", "", "Config file path (default $HOME/.sanchara/config.toml)")

	// Log config
	flags.StringVar(&config.Log.Level, "log-level", zapcore.InfoLevel.String(), "Logging level")
	flags.StringVar(&config.Log.File, "log-file", "", "Logging file path")

	// DB config
	flags.StringVar(&config.DB.DataSource, "db-data-source", "", "Database connection string")
	flags.StringVar(&config.DB.LogLevel, "db-log-level", zapcore.WarnLevel.String(), "Database log level")
	flags.BoolVar(&config.DB.PrepareStmt, "db-prepare-stmt", true, "Enable prepared statements")
	flags.BoolVar(&config.DB.Pool.Enable, "db-pool-enable", true, "Enable database pool")
	flags.IntVar(&config.DB.Pool.MaxOpenConnections, "db-pool-max-open-connections", 25, "Database max open connections")
	flags.IntVar(&config.DB.Pool.MaxIdleConnections, "db-pool-max-idle-connections", 25, "Database max idle connections")
	flags.DurationVar(&config.DB.Pool.MaxLifetime, "db-pool-max-lifetime", 10*time.Minute, "Database max connection lifetime")
}

func AddServerFlags(flags *pflag.FlagSet, config *ServerCmdConfig) {
	flags.IntVar(&config.Server.Port, "server-port", 8080, "Server port")
	flags.DurationVar(&config.Server.GracefulShutdown, "server-graceful-shutdown", 15*time.Second, "Server graceful shutdown timeout")
	flags.DurationVar(&config.Server.ReadTimeout, "server-read-timeout", 1*time.Minute, "Server read timeout")
	flags.DurationVar(&config.Server.WriteTimeout, "server-write-timeout", 1*time.Minute, "Server write timeout")

	flags.BoolVar(&config.CronJobs.Enable, "cronjobs-enable", true, "Run background maintenance jobs")
	flags.DurationVar(&config.CronJobs.PurgeInterval, "cronjobs-purge-interval", 1*time.Hour, "Interval between purge runs for soft-deleted events")
	flags.DurationVar(&config.CronJobs.DeletedRetention, "cronjobs-deleted-retention", 30*24*time.Hour, "How long soft-deleted events are kept before purge")
}
