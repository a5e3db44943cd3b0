package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/julianstephens/studyplan/internal/constants"
)

// Config is the application-level configuration. User profiles and plans live
// in the store; this covers only how the app itself runs.
type Config struct {
	DataDir            string `mapstructure:"data_dir"`
	Backend            string `mapstructure:"backend"` // json, sqlite or postgres
	Debug              bool   `mapstructure:"debug"`
	DefaultUser        string `mapstructure:"default_user"`
	NotificationWindow int    `mapstructure:"notification_window_min"`

	// DBConnection is the postgres connection string. Credentials must not be
	// embedded here: store them with 'studyplan keyring set' or the
	// STUDYPLAN_DB_CONNECTION environment variable instead.
	DBConnection string `mapstructure:"db_connection"`
}

// Load reads configuration from the given file, or from the default lookup
// paths when the path is empty. Missing config files are fine: defaults and
// STUDYPLAN_* environment variables still apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if configDir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(configDir, constants.AppName))
		}
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(strings.ToUpper(constants.AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && configPath != "" {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.DataDir = expandHome(cfg.DataDir)

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data_dir", constants.DefaultDataDir)
	v.SetDefault("backend", constants.DefaultBackend)
	v.SetDefault("debug", false)
	v.SetDefault("default_user", "")
	v.SetDefault("notification_window_min", constants.DefaultNotificationWindowMin)
	v.SetDefault("db_connection", "")
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
