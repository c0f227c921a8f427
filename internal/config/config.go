package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/jask/wanderlist/internal/logging"
)

// Config holds application configuration.
type Config struct {
	Drag  DragConfig     `mapstructure:"drag"`
	Store StoreConfig    `mapstructure:"store"`
	Log   logging.Config `mapstructure:"log"`
	UI    UIConfig       `mapstructure:"ui"`
}

// DragConfig holds activation distances, in terminal cells. A drag starts
// once the pointer has moved strictly further than the distance.
type DragConfig struct {
	MouseDistance int `mapstructure:"mouse_distance"`
	TouchDistance int `mapstructure:"touch_distance"`
}

// StoreConfig holds sqlite settings. The store is off unless enabled.
type StoreConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	PreviewWidth int `mapstructure:"preview_width"`
	CardWidth    int `mapstructure:"card_width"`
}

const defaultDragDistance = 2

// Path returns the config file location: $WANDERLIST_CONFIG, or
// ~/.config/wanderlist/config.toml.
func Path() string {
	if p := os.Getenv("WANDERLIST_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "wanderlist", "config.toml")
}

// Default returns the built-in settings. Mouse and touch share one
// activation distance.
func Default() Config {
	home := os.Getenv("HOME")
	return Config{
		Drag: DragConfig{MouseDistance: defaultDragDistance, TouchDistance: defaultDragDistance},
		Store: StoreConfig{
			Path: filepath.Join(home, ".local", "share", "wanderlist", "wanderlist.db"),
		},
		Log: logging.Config{
			Path:  filepath.Join(home, ".local", "state", "wanderlist", "wanderlist.log"),
			Level: "info",
		},
		UI: UIConfig{PreviewWidth: 30, CardWidth: 60},
	}
}

// Load reads configuration from file and env. Env var overrides use prefix WANDERLIST_.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetConfigType("toml")
	v.SetConfigFile(Path())

	v.SetEnvPrefix("WANDERLIST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the UI cannot honour.
func (c Config) Validate() error {
	if c.Drag.MouseDistance < 0 || c.Drag.TouchDistance < 0 {
		return fmt.Errorf("drag distances must not be negative (mouse %d, touch %d)", c.Drag.MouseDistance, c.Drag.TouchDistance)
	}
	if c.UI.PreviewWidth < 8 {
		return fmt.Errorf("ui.preview_width %d is below the minimum of 8", c.UI.PreviewWidth)
	}
	if c.UI.CardWidth < c.UI.PreviewWidth {
		return fmt.Errorf("ui.card_width %d is narrower than ui.preview_width %d", c.UI.CardWidth, c.UI.PreviewWidth)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Store.Enabled && strings.TrimSpace(c.Store.Path) == "" {
		return errors.New("store.path is required when the store is enabled")
	}
	return nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	for key, value := range flatten(cfg) {
		v.Set(key, value)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func flatten(c Config) map[string]any {
	return map[string]any{
		"drag.mouse_distance": c.Drag.MouseDistance,
		"drag.touch_distance": c.Drag.TouchDistance,
		"store.enabled":       c.Store.Enabled,
		"store.path":          c.Store.Path,
		"log.path":            c.Log.Path,
		"log.level":           c.Log.Level,
		"ui.preview_width":    c.UI.PreviewWidth,
		"ui.card_width":       c.UI.CardWidth,
	}
}

func setDefaults(v *viper.Viper, c Config) {
	for key, value := range flatten(c) {
		v.SetDefault(key, value)
	}
}
