package config

import (
    "errors"
    "fmt"
    "os"
    "path/filepath"
    "strings"

    "github.com/spf13/viper"
)

// Config holds the host settings. Values come from defaults, then an
// optional config file, then CODETOOL_* environment variables.
type Config struct {
    Placeholder string        `mapstructure:"placeholder"`
    Theme       string        `mapstructure:"theme"`     // chroma style
    Formatter   string        `mapstructure:"formatter"` // chroma terminal formatter
    Width       int           `mapstructure:"width"`
    Height      int           `mapstructure:"height"`
    NoColor     bool          `mapstructure:"no_color"`
    Strings     []Translation `mapstructure:"strings"`
}

// Translation maps one UI message to its localized text. A list is used
// instead of a table because config keys are case-folded.
type Translation struct {
    Msg  string `mapstructure:"msg"`
    Text string `mapstructure:"text"`
}

// Dict returns the translations as a lookup map.
func (c Config) Dict() map[string]string {
    out := make(map[string]string, len(c.Strings))
    for _, t := range c.Strings {
        if t.Msg != "" {
            out[t.Msg] = t.Text
        }
    }
    return out
}

// Dir is the per-user config directory.
func Dir() string {
    return filepath.Join(os.Getenv("HOME"), ".config", "codetool")
}

// Load reads configuration. An explicit path must exist; otherwise a
// codetool.{toml,yaml,json} in the working directory or Dir() is used when
// present. Env var overrides use prefix CODETOOL_.
func Load(path string) (Config, error) {
    v := viper.New()

    v.SetDefault("placeholder", "")
    v.SetDefault("theme", "dracula")
    v.SetDefault("formatter", "terminal256")
    v.SetDefault("width", 0)
    v.SetDefault("height", 0)
    v.SetDefault("no_color", false)
    v.SetDefault("strings", []Translation{})

    if path != "" {
        v.SetConfigFile(path)
    } else {
        v.SetConfigName("codetool")
        v.AddConfigPath(".")
        v.AddConfigPath(Dir())
    }

    v.SetEnvPrefix("CODETOOL")
    v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
    v.AutomaticEnv()

    if err := v.ReadInConfig(); err != nil {
        var nf viper.ConfigFileNotFoundError
        if path != "" || !errors.As(err, &nf) {
            return Config{}, fmt.Errorf("read config: %w", err)
        }
    }

    var c Config
    if err := v.Unmarshal(&c); err != nil {
        return Config{}, fmt.Errorf("unmarshal config: %w", err)
    }
    if c.Width < 0 || c.Height < 0 {
        return Config{}, fmt.Errorf("config: width and height must not be negative")
    }
    return c, nil
}

// Used reports the config file viper would read for path, or "" if none.
func Used(path string) string {
    if path != "" {
        return path
    }
    for _, dir := range []string{".", Dir()} {
        for _, ext := range []string{"toml", "yaml", "yml", "json"} {
            p := filepath.Join(dir, "codetool."+ext)
            if _, err := os.Stat(p); err == nil {
                return p
            }
        }
    }
    return ""
}
