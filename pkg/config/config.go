package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/karabuild/pkg/errors"
	"github.com/arthur-debert/karabuild/pkg/logging"
	"github.com/arthur-debert/karabuild/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read as configuration.
// A double underscore separates nested keys:
// KARABUILD_KARABINER__CONFIG_FILE sets karabiner.config_file.
const EnvPrefix = "KARABUILD_"

// Config is the effective karabuild configuration.
type Config struct {
	Profile   string          `koanf:"profile" toml:"profile"`
	Karabiner KarabinerConfig `koanf:"karabiner" toml:"karabiner"`
	Rules     RulesConfig     `koanf:"rules" toml:"rules"`
	Output    OutputConfig    `koanf:"output" toml:"output"`

	// Sources lists the configuration files that were loaded, in order.
	Sources []string `koanf:"-" toml:"-"`
}

type KarabinerConfig struct {
	ConfigFile string `koanf:"config_file" toml:"config_file"`
}

type RulesConfig struct {
	File string `koanf:"file" toml:"file"`
}

type OutputConfig struct {
	Format string `koanf:"format" toml:"format"`
}

// Options control where Load looks for configuration.
type Options struct {
	// ConfigFile replaces the user config file. It must exist.
	ConfigFile string
	// WorkDir is searched for a project .karabuild.toml. Empty means the
	// current directory.
	WorkDir string
	// Overrides are applied last, keyed by dotted path ("rules.file").
	// Empty string values are ignored so unset flags do not clear settings.
	Overrides map[string]interface{}
}

// Load builds the effective configuration.
func Load(opts Options) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")
	var sources []string

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config
	userFile := paths.ConfigFile()
	if opts.ConfigFile != "" {
		userFile = paths.ExpandHome(opts.ConfigFile)
		if _, err := os.Stat(userFile); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", userFile).
				WithDetail("path", userFile)
		}
	}
	loaded, err := loadFile(k, userFile)
	if err != nil {
		return nil, err
	}
	if loaded {
		sources = append(sources, userFile)
	}

	// 3. Project config
	workDir := opts.WorkDir
	if workDir == "" {
		workDir = "."
	}
	projectFile := filepath.Join(workDir, paths.ProjectConfigFile)
	loaded, err = loadFile(k, projectFile)
	if err != nil {
		return nil, err
	}
	if loaded {
		sources = append(sources, projectFile)
	}

	// 4. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to read environment")
	}

	// 5. Overrides
	overrides := make(map[string]interface{}, len(opts.Overrides))
	for key, value := range opts.Overrides {
		if s, ok := value.(string); ok && s == "" {
			continue
		}
		overrides[key] = value
	}
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	cfg.Sources = sources

	logger.Debug().
		Strs("sources", sources).
		Str("profile", cfg.Profile).
		Str("rules", cfg.Rules.File).
		Msg("Configuration loaded")
	return &cfg, nil
}

// KarabinerJSON returns the karabiner.json path, falling back to the
// Karabiner-Elements default location.
func (c *Config) KarabinerJSON() string {
	if c.Karabiner.ConfigFile != "" {
		return paths.ExpandHome(c.Karabiner.ConfigFile)
	}
	return paths.KarabinerConfigFile()
}

func loadFile(k *koanf.Koanf, path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		return false, nil
	}
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return false, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
			WithDetail("path", path)
	}
	return true, nil
}

func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}
