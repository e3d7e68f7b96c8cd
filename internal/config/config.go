package config

import "fmt"

// Config is the root application configuration.
type Config struct {
	App        AppConfig        `yaml:"app"`
	Storage    StorageConfig    `yaml:"storage"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Log        LogConfig        `yaml:"log"`
}

// AppConfig holds window and application identity settings.
type AppConfig struct {
	ID           string `yaml:"id"            env:"APP_ID"            env-default:"com.chineselearning.helper"`
	Name         string `yaml:"name"          env:"APP_NAME"          env-default:"Chinese Learning Helper"`
	WindowWidth  int    `yaml:"window_width"  env:"APP_WINDOW_WIDTH"  env-default:"900"`
	WindowHeight int    `yaml:"window_height" env:"APP_WINDOW_HEIGHT" env-default:"700"`
}

// StorageConfig holds lesson file storage settings.
type StorageConfig struct {
	DataDir string `yaml:"data_dir" env:"STORAGE_DATA_DIR" env-default:"data"`
}

// DictionaryConfig holds CC-CEDICT dictionary settings. An empty or
// unreadable path degrades translation to a placeholder instead of
// failing startup.
type DictionaryConfig struct {
	Path string `yaml:"path" env:"DICTIONARY_PATH" env-default:"cedict_ts.u8"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

// Validate checks settings that have no safe fallback.
func (c *Config) Validate() error {
	if c.Storage.DataDir == "" {
		return fmt.Errorf("storage data_dir must not be empty")
	}
	if c.App.WindowWidth <= 0 || c.App.WindowHeight <= 0 {
		return fmt.Errorf("window dimensions must be positive, got %dx%d",
			c.App.WindowWidth, c.App.WindowHeight)
	}
	return nil
}
