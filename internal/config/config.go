package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/jask/pagenav/internal/nav"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Audit    AuditConfig    `mapstructure:"audit"`
	Log      LogConfig      `mapstructure:"log"`
	Nav      NavConfig      `mapstructure:"nav"`
	UI       UIConfig       `mapstructure:"ui"`
}

// DatabaseConfig holds sqlite settings for the audit store.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// AuditConfig toggles persisting context actions.
type AuditConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// LogConfig holds the file logger settings.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// NavConfig seeds the navigator.
type NavConfig struct {
	Active     int          `mapstructure:"active"`
	NameOffset int          `mapstructure:"name_offset"`
	Pages      []PageConfig `mapstructure:"pages"`
}

// PageConfig is one seed page. ID may be empty.
type PageConfig struct {
	ID       string `mapstructure:"id"`
	Name     string `mapstructure:"name"`
	Type     string `mapstructure:"type"`
	Disabled bool   `mapstructure:"disabled"`
}

// UIConfig holds terminal settings.
type UIConfig struct {
	Mouse     bool `mapstructure:"mouse"`
	AltScreen bool `mapstructure:"alt_screen"`
}

// Load reads configuration from file and env. An explicit path wins over
// PAGENAV_CONFIG, which wins over ~/.config/pagenav/config.toml. Env var
// overrides use prefix PAGENAV_.
func Load(path string) (Config, error) {
	v := viper.New()
	home := os.Getenv("HOME")

	// default values
	v.SetDefault("database.path", filepath.Join(home, ".local", "share", "pagenav", "audit.db"))
	v.SetDefault("audit.enabled", true)
	v.SetDefault("log.path", filepath.Join(home, ".local", "state", "pagenav", "pagenav.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("nav.active", 1)
	v.SetDefault("nav.name_offset", nav.DefaultNameOffset)
	v.SetDefault("nav.pages", defaultPages())
	v.SetDefault("ui.mouse", true)
	v.SetDefault("ui.alt_screen", true)

	v.SetConfigType("toml")

	explicit := path != ""
	if !explicit {
		path = os.Getenv("PAGENAV_CONFIG")
		explicit = path != ""
	}
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "pagenav"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("PAGENAV")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

func defaultPages() []map[string]any {
	seeds := nav.DefaultPages()
	out := make([]map[string]any, 0, len(seeds))
	for _, p := range seeds {
		out = append(out, map[string]any{"name": p.Name, "type": string(p.Type)})
	}
	return out
}

// NavOptions converts the nav section into navigator options.
func (c Config) NavOptions() nav.Options {
	pages := make([]nav.Page, 0, len(c.Nav.Pages))
	for _, p := range c.Nav.Pages {
		pages = append(pages, nav.Page{
			ID:       strings.TrimSpace(p.ID),
			Name:     p.Name,
			Type:     nav.PageType(strings.ToLower(strings.TrimSpace(p.Type))),
			Disabled: p.Disabled,
		})
	}
	return nav.Options{
		Pages:       pages,
		ActiveIndex: c.Nav.Active,
		NameOffset:  c.Nav.NameOffset,
	}
}
