package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/syssam/pgc/compiler/request"
)

const (
	maxWalkDepth = 25
)

// ConfigNames are the file names searched for by LoadConfig.
var ConfigNames = []string{"pgc.yaml", "pgc.yml"}

// Config represents the pgc configuration from pgc.yaml.
type Config struct {
	// Request is the path of the request payload.
	Request string `mapstructure:"request"`
	// Format of the request payload. Derived from the request file
	// extension when empty.
	Format string `mapstructure:"format"`
	// Out is the output directory. The codegen "out" of the request is
	// used when empty.
	Out string `mapstructure:"out"`
	// Templates is a directory replacing the bundled templates.
	Templates string `mapstructure:"templates"`
	// Types is a YAML file of type overrides.
	Types string `mapstructure:"types"`

	Watch WatchConfig `mapstructure:"watch"`
}

// WatchConfig holds the settings of the watch command.
type WatchConfig struct {
	// Debounce is the quiet period after a change before regenerating.
	Debounce time.Duration `mapstructure:"debounce"`
}

// LoadConfig discovers and loads configuration with proper precedence:
// flags > env > config file > defaults.
//
// Returns the loaded config, the path to the config file (empty if none found),
// and any error encountered.
func LoadConfig(explicitConfigPath string) (*Config, string, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("PGC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath, err := findConfigFile(explicitConfigPath)
	if err != nil {
		return nil, "", err
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, configPath, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, configPath, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, configPath, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("request", "")
	v.SetDefault("format", "")
	v.SetDefault("out", "")
	v.SetDefault("templates", "")
	v.SetDefault("types", "")
	v.SetDefault("watch.debounce", 200*time.Millisecond)
}

// findConfigFile finds the config file to use.
// If explicitPath is provided, it validates the file exists.
// Otherwise, it walks up from cwd looking for pgc.yaml or pgc.yml,
// stopping at a .git directory or after maxWalkDepth levels.
func findConfigFile(explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("config file not found: %s", explicitPath)
		}
		return explicitPath, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting cwd: %w", err)
	}

	dir := cwd
	for range maxWalkDepth {
		for _, name := range ConfigNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}

		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			break
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", nil
}

// RequestFormat returns the format of the request payload.
func (c *Config) RequestFormat() (request.Format, error) {
	if c.Format != "" {
		return request.ParseFormat(c.Format)
	}
	return request.ParseFormat(filepath.Ext(c.Request))
}

// ResolvedOut returns the output directory: the configured one, then the
// codegen out of the request, then the current directory.
func (c *Config) ResolvedOut(req *request.Request) string {
	switch {
	case c.Out != "":
		return c.Out
	case req != nil && req.Config.Codegen.Out != "":
		return req.Config.Codegen.Out
	default:
		return "."
	}
}

// LoadTypeOverrides reads a YAML file mapping catalog-qualified type names
// to their replacement:
//
//	pg_catalog.int8:
//	  annotation: str
//	public.mood:
//	  annotation: app.Mood
//	  import: ["import app"]
func LoadTypeOverrides(fs afero.Fs, path string) (map[string]request.TypeConfig, error) {
	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading type overrides: %w", err)
	}
	var overrides map[string]request.TypeConfig
	if err := yaml.Unmarshal(b, &overrides); err != nil {
		return nil, fmt.Errorf("parsing type overrides %s: %w", path, err)
	}
	return overrides, nil
}
