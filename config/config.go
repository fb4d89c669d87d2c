package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
	"github.com/worldmbti/insights/consts"
)

// Config holds the runtime settings of the server and tools.
type Config struct {
	Port        string `mapstructure:"port"`
	DataFolder  string `mapstructure:"data_folder"`
	DataFile    string `mapstructure:"data_file"`
	TopN        int    `mapstructure:"top_n"`
	ReloadCron  string `mapstructure:"reload_cron"`
	ExportCron  string `mapstructure:"export_cron"`
	ExportOnRun bool   `mapstructure:"export_on_run"`
}

// DataPath returns the default table's path. Relative data files live in DataFolder.
func (c *Config) DataPath() string {
	if filepath.IsAbs(c.DataFile) {
		return c.DataFile
	}
	return filepath.Join(c.DataFolder, c.DataFile)
}

// ChartDataDir returns where charts.json is exported.
func (c *Config) ChartDataDir() string {
	return filepath.Join(c.DataFolder, consts.ChartDataDir)
}

// Load reads configuration from defaults, an optional config file and the
// environment. Variables are read with the MBTI_ prefix (MBTI_TOP_N); PORT and
// DATA_FOLDER are also accepted without it.
// Precedence: env > config file > defaults.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("MBTI")
	v.AutomaticEnv()

	v.SetDefault("port", consts.DefaultPort)
	v.SetDefault("data_folder", ".")
	v.SetDefault("data_file", consts.DefaultDataFile)
	v.SetDefault("top_n", consts.DefaultTopN)
	v.SetDefault("reload_cron", consts.CronReload)
	v.SetDefault("export_cron", consts.CronGenerateChart)
	v.SetDefault("export_on_run", true)

	for key, env := range map[string]string{
		"port":        "PORT",
		"data_folder": "DATA_FOLDER",
	} {
		if err := v.BindEnv(key, "MBTI_"+env, env); err != nil {
			return nil, fmt.Errorf("binding env %s: %w", env, err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", cfgFile, err)
		}
	} else {
		v.SetConfigName(consts.ConfigFileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		// optional file, but a present one must parse
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.TopN < 1 || c.TopN > consts.MaxTopN {
		return nil, fmt.Errorf("top_n must be between 1 and %d, got %d", consts.MaxTopN, c.TopN)
	}
	return &c, nil
}
